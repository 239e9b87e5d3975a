package formatter

import (
	"fmt"
	"math"
)

// binaryUnits are the prefixes tried in order before falling back to Yi
var binaryUnits = []string{"", "Ki", "Mi", "Gi", "Ti", "Pi", "Ei", "Zi"}

// HumanReadableSize formats a byte count with 1024-based units,
// e.g. 1024 -> "1.0 KiB" and 0 -> "0.0 B"
func HumanReadableSize(size int64) string {
	value := float64(size)
	for _, unit := range binaryUnits {
		if math.Abs(value) < 1024.0 {
			return fmt.Sprintf("%3.1f %sB", value, unit)
		}
		value /= 1024.0
	}
	return fmt.Sprintf("%3.1f YiB", value)
}
