package fsutils

import "strconv"

const (
	KiB = 1024
	MiB = 1024 * KiB
	GiB = 1024 * MiB
)

// GetSizeText formats size for the entries table: plain bytes below 1 KiB,
// KiB or MiB with one decimal above.
func GetSizeText(size int64) string {
	switch {
	case size < KiB:
		return strconv.FormatInt(size, 10) + " B"
	case size < MiB:
		return strconv.FormatFloat(float64(size)/KiB, 'f', 1, 64) + " KiB"
	default:
		return strconv.FormatFloat(float64(size)/MiB, 'f', 1, 64) + " MiB"
	}
}

// WholeGiB truncates a byte count to whole gibibytes.
func WholeGiB(bytes uint64) uint64 {
	return bytes / GiB
}
