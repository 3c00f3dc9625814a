// Package config turns the raw command line into a validated invocation and
// loads the optional settings file.
package config

import (
	"fmt"

	"github.com/KimSchm/gh-models-cli/common"
)

// Mode selects which operation one invocation performs.
type Mode int

const (
	// ModeHelp prints the usage text (single-positional form).
	ModeHelp Mode = iota
	// ModeListModels lists the model catalog.
	ModeListModels
	// ModeRateTier looks up a model's rate-limit tier.
	ModeRateTier
	// ModeComplete sends a chat-completion request.
	ModeComplete
)

// Flags carries the raw flag values parsed from the command line.
type Flags struct {
	ListModels bool
	FilePath   string
	DirPath    string
	RateModel  string
}

// Invocation is the validated form of one command-line invocation. It is
// constructed exactly once at startup; nothing downstream reads flag state.
type Invocation struct {
	Mode      Mode
	FilePath  string
	DirPath   string
	RateModel string
	Prompt    string
	Model     string
	Token     string
}

// NewInvocation orders the positional arguments according to the requested
// mode and rejects invalid combinations before any file or network I/O.
// Every rejection wraps common.ErrUsage.
func NewInvocation(flags Flags, args []string) (Invocation, error) {
	if flags.FilePath != "" && flags.DirPath != "" {
		return Invocation{}, fmt.Errorf("%w: -f and -d are mutually exclusive", common.ErrUsage)
	}

	hasContext := flags.FilePath != "" || flags.DirPath != ""

	switch {
	case flags.ListModels:
		if hasContext {
			return Invocation{}, fmt.Errorf("%w: context flags are not valid with --list-models", common.ErrUsage)
		}
		if len(args) != 1 {
			return Invocation{}, fmt.Errorf("%w: --list-models expects exactly one argument: <token>", common.ErrUsage)
		}
		return Invocation{Mode: ModeListModels, Token: args[0]}, nil

	case flags.RateModel != "":
		if hasContext {
			return Invocation{}, fmt.Errorf("%w: context flags are not valid with --rate", common.ErrUsage)
		}
		if len(args) != 1 {
			return Invocation{}, fmt.Errorf("%w: --rate expects exactly one argument: <token>", common.ErrUsage)
		}
		return Invocation{Mode: ModeRateTier, RateModel: flags.RateModel, Token: args[0]}, nil

	case len(args) == 1 && !hasContext:
		// A lone token asks for the usage text.
		return Invocation{Mode: ModeHelp, Token: args[0]}, nil

	case len(args) == 3:
		return Invocation{
			Mode:     ModeComplete,
			FilePath: flags.FilePath,
			DirPath:  flags.DirPath,
			Prompt:   args[0],
			Model:    args[1],
			Token:    args[2],
		}, nil
	}

	return Invocation{}, fmt.Errorf("%w: expected <prompt> <model> <token>", common.ErrUsage)
}

// ContextPath returns the requested context source, or "" when the prompt
// goes out bare.
func (inv Invocation) ContextPath() string {
	if inv.FilePath != "" {
		return inv.FilePath
	}
	return inv.DirPath
}
