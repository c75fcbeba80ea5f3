package preferences

import "fmt"

func validateTheme(theme string) error {
	switch theme {
	case ThemeDark, ThemeLight:
		return nil
	default:
		return fmt.Errorf("invalid theme value: %s", theme)
	}
}
