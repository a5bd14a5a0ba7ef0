package download

import (
	"math"
	"strconv"
)

var sizeUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB"}

// UnknownSize is shown when the size is missing or unparseable
const UnknownSize = "Unknown size"

// FormatBytes renders a byte count with 1024-based units and at most two
// decimals. nil is rendered as UnknownSize so an absent size never reads as
// "0 Bytes".
func FormatBytes(size *int64) string {
	if size == nil || *size < 0 {
		return UnknownSize
	}
	if *size == 0 {
		return "0 Bytes"
	}

	value := float64(*size)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	rounded := math.Round(value*100) / 100
	return strconv.FormatFloat(rounded, 'f', -1, 64) + " " + sizeUnits[unit]
}
