package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	colorHeader = color.New(color.FgCyan, color.Bold).SprintFunc()
	colorKey    = color.New(color.FgBlue).SprintFunc()
	colorDomain = color.New(color.FgYellow, color.Bold).SprintFunc()
	colorGood   = color.New(color.FgGreen).SprintFunc()
	colorBad    = color.New(color.FgRed).SprintFunc()
	colorDim    = color.New(color.Faint).SprintFunc()
)

// applyColorMode maps the --color mode onto the package-level color switch.
// "auto" keeps the library's own terminal detection, except that dumb or
// unset TERM disables color outright.
func applyColorMode(mode string) error {
	switch mode {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	case "auto":
		if term := os.Getenv("TERM"); term == "" || term == "dumb" {
			color.NoColor = true
		}
	default:
		return fmt.Errorf("invalid --color mode %q (must be always, auto, or never)", mode)
	}
	return nil
}

// formatOptionalBool renders an undeclared flag as a dimmed None so readers
// can tell it apart from an explicit False.
func formatOptionalBool(v *bool) string {
	switch {
	case v == nil:
		return colorDim("None")
	case *v:
		return colorGood("True")
	default:
		return colorBad("False")
	}
}
