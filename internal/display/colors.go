// FILE: internal/display/colors.go
package display

import "fmt"

// Terminal color codes
const (
	Reset  = "\033[0m"
	Red    = "\033[31m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

type Theme string

const (
	ThemeOff   Theme = "off"
	ThemeBrown Theme = "brown"
	ThemeGreen Theme = "green"
	ThemeGray  Theme = "gray"
)

type themeColors struct {
	lightBg string
	darkBg  string
	white   string
	black   string
	label   string
	reset   string
}

var themes = map[Theme]themeColors{
	ThemeOff: {},
	ThemeBrown: {
		lightBg: "\033[48;5;230m", // Beige
		darkBg:  "\033[48;5;94m",  // Brown
		white:   "\033[97m",
		black:   "\033[30m",
		label:   Cyan,
		reset:   Reset,
	},
	ThemeGreen: {
		lightBg: "\033[48;5;157m", // Light green
		darkBg:  "\033[48;5;22m",  // Dark green
		white:   "\033[97m",
		black:   "\033[30m",
		label:   Cyan,
		reset:   Reset,
	},
	ThemeGray: {
		lightBg: "\033[48;5;251m", // Light gray
		darkBg:  "\033[48;5;240m", // Dark gray
		white:   "\033[97m",
		black:   "\033[30m",
		label:   Cyan,
		reset:   Reset,
	},
}

// ThemeNames lists the accepted theme names, as used in validate tags
const ThemeNames = "off brown green gray"

func ParseTheme(name string) (Theme, error) {
	theme := Theme(name)
	if _, ok := themes[theme]; !ok {
		return ThemeOff, fmt.Errorf("invalid theme: %s (use: off, brown, green, gray)", name)
	}
	return theme, nil
}

// Colorize wraps text in a foreground color unless the theme is off
func Colorize(theme Theme, color, text string) string {
	if theme == ThemeOff || color == "" {
		return text
	}
	return color + text + Reset
}
