package main

import (
	"os"

	"github.com/cristianoliveira/swipewaifu/cmd"
	"github.com/cristianoliveira/swipewaifu/internal/colors"
	"github.com/cristianoliveira/swipewaifu/internal/logging"
)

func main() {
	code := run(os.Args[1:], cmd.Execute)
	if err := app.Close(); err != nil {
		colors.Warning("failed to close storage: " + err.Error())
	}
	_ = logging.ShutdownGlobal()
	os.Exit(code)
}

// run executes the CLI and returns the process exit code. Structured
// startup entries are skipped for the full-screen commands.
func run(args []string, execute func() error) int {
	tui := isTUICommand(args)
	if !tui {
		colors.StructuredInfo("startup", "main", "started", nil, nil)
	}
	if err := execute(); err != nil {
		if !tui {
			colors.StructuredError("startup", "main", "failed", err, nil)
		}
		colors.Error(err.Error())
		return 1
	}
	if !tui {
		colors.StructuredInfo("startup", "main", "completed", nil, nil)
	}
	return 0
}

// isTUICommand reports whether args open the browser: no command, only
// browser flags, or the slideshow command.
func isTUICommand(args []string) bool {
	if len(args) == 0 {
		return true
	}
	switch args[0] {
	case "slideshow":
		return true
	case "-h", "--help", "-v", "--version":
		return false
	}
	return args[0][0] == '-'
}
