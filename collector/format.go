package collector

import (
	"math"
	"strconv"
)

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB"}

// FormatBytes renders a byte count using base-1024 units, picking the
// largest unit where the value is at least 1 and rounding to two decimals
// with trailing zeros trimmed ("1 KB", "1.5 KB"). Zero maps to "0 Bytes".
func FormatBytes(b uint64) string {
	if b == 0 {
		return "0 Bytes"
	}
	exp := int(math.Floor(math.Log(float64(b)) / math.Log(1024)))
	if exp >= len(byteUnits) {
		exp = len(byteUnits) - 1
	}
	value := Round2(float64(b) / math.Pow(1024, float64(exp)))
	return strconv.FormatFloat(value, 'f', -1, 64) + " " + byteUnits[exp]
}

// Round2 rounds to two decimal places.
func Round2(f float64) float64 {
	return math.Round(f*100) / 100
}
