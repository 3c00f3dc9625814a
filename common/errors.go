package common

import "errors"

var (
	// ErrUsage marks a malformed command-line invocation. The command prints
	// its usage text and the process exits with code 1.
	ErrUsage = errors.New("usage error")

	// ErrNotFound marks a referenced file or directory that does not exist.
	ErrNotFound = errors.New("not found")

	// ErrUnsupportedKind marks a context file whose content kind has no
	// converter. Only plain text is attachable.
	ErrUnsupportedKind = errors.New("unsupported content kind")
)
