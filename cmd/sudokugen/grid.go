package main

import (
	"fmt"
	"strings"

	"svw.info/sudokugen/internal/domain"
)

// parseGrid reads an 81-character row-major grid string; '0' and '.' mark
// empty cells, whitespace is ignored.
func parseGrid(s string) (domain.Grid, error) {
	var g domain.Grid
	i := 0
	for _, ch := range s {
		switch {
		case ch == ' ' || ch == '\n' || ch == '\t' || ch == '|' || ch == '+' || ch == '-':
			continue
		case ch == '.' || ch == '0':
			i++
		case ch >= '1' && ch <= '9':
			if i < 81 {
				g[i/9][i%9] = uint8(ch - '0')
			}
			i++
		default:
			return domain.Grid{}, fmt.Errorf("invalid grid character %q", ch)
		}
	}
	if i != 81 {
		return domain.Grid{}, fmt.Errorf("grid needs 81 cells, got %d", i)
	}
	return g, nil
}

// formatGrid renders a grid with boxes separated by extra spacing.
func formatGrid(g domain.Grid) string {
	var b strings.Builder
	for r := 0; r < 9; r++ {
		for c := 0; c < 9; c++ {
			if g[r][c] == 0 {
				b.WriteByte('.')
			} else {
				b.WriteByte('0' + g[r][c])
			}
			if c < 8 {
				b.WriteByte(' ')
				if c%3 == 2 {
					b.WriteByte(' ')
				}
			}
		}
		b.WriteByte('\n')
		if r%3 == 2 && r < 8 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}
