// Package errors routes user-facing messages to the CLI or the TUI.
package errors

// ErrorHandler is the interface for error handling.
// Different implementations can handle errors differently based on context.
type ErrorHandler interface {
	Error(msg string)
	Warning(msg string)
	Info(msg string)
	Success(msg string)
}

// ColorOutput is the console sink a CLIHandler writes through.
type ColorOutput interface {
	Error(msgs ...string)
	Warning(msgs ...string)
	Info(msgs ...string)
	Success(msgs ...string)
}

// CLIHandler handles errors by printing to stdout/stderr.
type CLIHandler struct {
	colors ColorOutput
	quiet  bool
}

var _ ErrorHandler = (*CLIHandler)(nil)

// NewCLIHandler creates a CLI handler writing through colors.
func NewCLIHandler(colors ColorOutput) *CLIHandler {
	return &CLIHandler{colors: colors}
}

// SetQuiet suppresses info and success output. Errors and warnings still print.
func (h *CLIHandler) SetQuiet(quiet bool) {
	h.quiet = quiet
}

func (h *CLIHandler) Error(msg string) {
	h.colors.Error(msg)
}

func (h *CLIHandler) Warning(msg string) {
	h.colors.Warning(msg)
}

func (h *CLIHandler) Info(msg string) {
	if h.quiet {
		return
	}
	h.colors.Info(msg)
}

func (h *CLIHandler) Success(msg string) {
	if h.quiet {
		return
	}
	h.colors.Success(msg)
}
