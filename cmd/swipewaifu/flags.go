package main

import (
	"fmt"
	"os"

	"github.com/cristianoliveira/swipewaifu/internal/config"
	"github.com/cristianoliveira/swipewaifu/internal/domain"
	"github.com/cristianoliveira/swipewaifu/internal/preferences"
	"github.com/mattn/go-isatty"
)

// errAgeNotVerified is returned when restricted mode is requested before the
// age acknowledgement was given.
var errAgeNotVerified = fmt.Errorf("restricted mode requires the age acknowledgement: press n in the browser once, or run `swipewaifu prefs set %s true`", preferences.KeyAgeVerified)

var stdoutIsTerminal = func() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

var stdinIsTerminal = func() bool {
	fd := os.Stdin.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// resolveMode parses --mode and checks the age acknowledgement for
// restricted mode.
func resolveMode(flag string, prefs *preferences.Store) (domain.Mode, error) {
	if flag == "" {
		return domain.ModeStandard, nil
	}
	mode, err := domain.ParseMode(flag)
	if err != nil {
		return "", err
	}
	if mode == domain.ModeRestricted && !prefs.Get().AgeVerified {
		return "", errAgeNotVerified
	}
	return mode, nil
}

// resolveCategory applies default_category and rejects unknown names.
func resolveCategory(mode domain.Mode, flag string) (string, error) {
	if flag == "" {
		flag = config.Get("default_category", domain.DefaultCategory)
	}
	if mode == domain.ModeStandard && !domain.IsKnownCategory(mode, flag) {
		return "", fmt.Errorf("unknown category %q (see `swipewaifu categories`)", flag)
	}
	return domain.ResolveCategory(mode, flag), nil
}
