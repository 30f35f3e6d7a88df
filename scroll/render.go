package scroll

import "strings"

// blockLines normalizes a rendered item to exactly height lines, truncating
// extra lines and padding missing ones with empty strings.
func blockLines(block string, height int) []string {
	lines := strings.Split(block, "\n")
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

// ceilDiv returns n divided by d, rounded up. d must be positive.
func ceilDiv(n, d int) int {
	return (n + d - 1) / d
}
