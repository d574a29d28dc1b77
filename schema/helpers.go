package schema

import (
	"math"
	"strconv"
	"strings"
)

// FormatNumber renders a float without trailing zeros (60 rather than 60.000000).
func FormatNumber(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

// Round rounds f to the given number of decimal places.
func Round(f float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(f*p) / p
}

// SafeFileName turns a jurisdiction name into a file name stem,
// replacing spaces and path separators with underscores.
func SafeFileName(jurisdiction string) string {
	name := strings.TrimSpace(jurisdiction)
	if name == "" {
		return "readiness"
	}
	return strings.NewReplacer(" ", "_", "/", "_", "\\", "_").Replace(name)
}
