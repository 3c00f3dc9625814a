// Package filectx turns a local file or directory into the context payload
// fragment attached to a prompt.
package filectx

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/KimSchm/gh-models-cli/common"
	"github.com/KimSchm/gh-models-cli/logger"
	"github.com/KimSchm/gh-models-cli/model"
)

// Variant tags the shape of a built context.
type Variant int

const (
	// None means no context was requested.
	None Variant = iota
	// Text is the single-file variant: the file's literal text content.
	Text
	// Files is the directory variant: one record per regular file directly
	// inside the directory.
	Files
)

// Context is the optional payload fragment attached to a prompt. At most one
// of Text and Files is populated, selected by Variant. A Context is built,
// serialized into one request and dropped.
type Context struct {
	Variant Variant
	Text    string
	Files   []model.FileContext
}

// Build stats path and dispatches to the single-file or directory builder.
// A missing path wraps common.ErrNotFound.
func Build(path string) (Context, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Context{}, fmt.Errorf("%w: %s", common.ErrNotFound, path)
		}
		return Context{}, fmt.Errorf("failed to stat %s: %w", path, err)
	}

	if info.IsDir() {
		return buildDir(path)
	}
	return buildFile(path)
}

func buildFile(path string) (Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Context{}, fmt.Errorf("failed to read context file %s: %w", path, err)
	}

	if kind := DetectKind(path, data); kind != KindText {
		return Context{}, fmt.Errorf("%w: %s is %s", common.ErrUnsupportedKind, path, kind)
	}

	logger.Debugf("Attached file context from %s (%d bytes)", path, len(data))
	return Context{Variant: Text, Text: string(data)}, nil
}

// buildDir collects every regular file directly inside dir, in name order.
// Subdirectories are not descended into.
func buildDir(dir string) (Context, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return Context{}, fmt.Errorf("failed to read context directory %s: %w", dir, err)
	}

	files := []model.FileContext{}
	for _, entry := range entries {
		if !entry.Type().IsRegular() {
			logger.Debugf("Skipping non-regular entry %s", entry.Name())
			continue
		}

		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return Context{}, fmt.Errorf("failed to read context file %s: %w", entry.Name(), err)
		}

		files = append(files, model.FileContext{
			Path:     entry.Name(),
			Content:  string(data),
			Encoding: model.EncodingUTF8,
		})
	}

	logger.Debugf("Attached directory context from %s (%d files)", dir, len(files))
	return Context{Variant: Files, Files: files}, nil
}
