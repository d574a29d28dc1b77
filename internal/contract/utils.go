package contract

import (
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/huangsam/readiness/schema"
)

// Color variables for console output, one per readiness severity.
var (
	GreenColor  = color.New(color.FgGreen, color.Bold) // GreenColor represents launch-ready.
	BlueColor   = color.New(color.FgBlue, color.Bold)  // BlueColor represents a strong candidate.
	OrangeColor = color.New(color.FgYellow)            // OrangeColor represents standard caution, not bold.
	RedColor    = color.New(color.FgRed, color.Bold)   // RedColor represents major issues.
)

// SeverityColor returns the console color for a readiness severity.
func SeverityColor(sev schema.Severity) *color.Color {
	switch sev {
	case schema.GreenSeverity:
		return GreenColor
	case schema.BlueSeverity:
		return BlueColor
	case schema.OrangeSeverity:
		return OrangeColor
	default:
		return RedColor
	}
}

// GetColorLabel returns a colored text label for console output (table).
func GetColorLabel(label schema.Label, sev schema.Severity) string {
	return SeverityColor(sev).Sprint(string(label))
}

// SelectOutputFile returns the appropriate file handle for output, based on the provided
// file path. It returns os.Stdout when no path is given.
func SelectOutputFile(filePath string) (*os.File, error) {
	if filePath == "" {
		return os.Stdout, nil
	}
	return os.Create(filePath)
}

// LogFatal logs an error and exits the program.
func LogFatal(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Fatal %s: %v\n", msg, err)
	os.Exit(1)
}

// LogWarn logs a warning message to stderr.
func LogWarn(msg string, err error) {
	_, _ = fmt.Fprintf(os.Stderr, "Warn %s: %v\n", msg, err)
}

// LogWarnings prints informational warnings (rubric weights, unknown inputs) to stderr.
func LogWarnings(warnings []string, useEmojis bool) {
	prefix := "Warn"
	if useEmojis {
		prefix = "⚠️ "
	}
	for _, w := range warnings {
		_, _ = fmt.Fprintf(os.Stderr, "%s %s\n", prefix, w)
	}
}

// Truncate shortens text to maxWidth runes with an ellipsis suffix.
// Requires maxWidth > 3 so there is room for the ellipsis and some content.
func Truncate(text string, maxWidth int) string {
	runes := []rune(text)
	if len(runes) > maxWidth && maxWidth > 3 {
		return string(runes[:maxWidth-3]) + "..."
	}
	return text
}

// ParseBoolString parses a string value into a boolean.
// Accepts "yes", "no", "true", "false", "1", "0" (case-insensitive).
// Returns an error for invalid values.
func ParseBoolString(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "yes", "true", "1":
		return true, nil
	case "no", "false", "0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean string: %s (expected yes/no/true/false/1/0)", s)
	}
}
