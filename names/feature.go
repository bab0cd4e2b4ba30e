// SPDX-License-Identifier: MIT

package names

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature returns the 0-based feature label used by the tree and chain
// simulators: 0→"f_000", 12→"f_012", 1234→"f_1234".
func Feature(i int) string {
	return fmt.Sprintf("f_%03d", i)
}

// PaddedFeature returns the 1-based feature label used by the swamp
// simulator: ordinal i zero-padded to the number of digits in total.
// PaddedFeature(1, 313) = "f001", PaddedFeature(7, 9) = "f7".
func PaddedFeature(i, total int) string {
	width := len(strconv.Itoa(total))
	s := strconv.Itoa(i)
	if len(s) < width {
		s = strings.Repeat("0", width-len(s)) + s
	}
	return "f" + s
}
