package board

import (
	"strconv"
	"strings"
)

// Format renders b as n lines of right-aligned cell values, with the blank
// printed as spaces. Column width follows the widest tile value so grids of
// any supported size stay aligned.
func Format(n int, b Board) string {
	w := len(strconv.Itoa(n*n - 1))
	var sb strings.Builder
	for r := 0; r < n; r++ {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := 0; c < n; c++ {
			if c > 0 {
				sb.WriteByte(' ')
			}
			v := b[r*n+c]
			if v == Blank {
				sb.WriteString(strings.Repeat(" ", w))
				continue
			}
			s := strconv.Itoa(v)
			sb.WriteString(strings.Repeat(" ", w-len(s)))
			sb.WriteString(s)
		}
	}

	return sb.String()
}
