package crossforge

import (
	"fmt"

	"github.com/gookit/color"
)

// Severity tags a message for the terminal. Formatting is stateless: the
// same severity always yields the same prefix and style.
type Severity int

const (
	SevInfo Severity = iota
	SevSuccess
	SevWarning
	SevError
)

func (s Severity) label() string {
	switch s {
	case SevInfo:
		return "[INFO]"
	case SevSuccess:
		return "[SUCCESS]"
	case SevWarning:
		return "[WARNING]"
	case SevError:
		return "[ERROR]"
	}
	return "[?]"
}

func (s Severity) style() *color.Theme {
	switch s {
	case SevSuccess:
		return color.Success
	case SevWarning:
		return color.Warn
	case SevError:
		return color.Error
	}
	return color.Info
}

// FormatMessage returns the severity-prefixed form of msg, uncolored.
// Used by tests and by log sinks that must not carry escape codes.
func FormatMessage(sev Severity, msg string) string {
	return fmt.Sprintf("%s %s", sev.label(), msg)
}

func printStatus(format string, a ...any) {
	colArrow.Print("-> ")
	SevInfo.style().Printf(format+"\n", a...)
}

func printSuccess(format string, a ...any) {
	colArrow.Print("-> ")
	SevSuccess.style().Printf(format+"\n", a...)
}

func printWarning(format string, a ...any) {
	colArrow.Print("-> ")
	SevWarning.style().Printf(format+"\n", a...)
}

func printError(format string, a ...any) {
	colArrow.Print("-> ")
	SevError.style().Printf(format+"\n", a...)
}

// debugf prints debug messages when Debug is true
func debugf(format string, args ...any) {
	if Debug {
		fmt.Printf(format, args...)
	}
}

func humanReadableSize(b int64) string {
	const unit = 1024
	if b < unit {
		return fmt.Sprintf("%d B", b)
	}
	div, exp := int64(unit), 0
	for n := b / unit; n >= unit; n /= unit {
		div *= unit
		exp++
	}
	return fmt.Sprintf("%.1f %ciB", float64(b)/float64(div), "KMGTPE"[exp])
}
