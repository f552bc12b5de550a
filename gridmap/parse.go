package gridmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseLines builds a Map from rows of single decimal digits, top to bottom.
// Trailing blank lines and carriage returns are ignored.
func ParseLines(lines []string) (*Map, error) {
	for len(lines) > 0 && strings.TrimRight(lines[len(lines)-1], "\r") == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil, malformed(0, -1, ErrEmptyGrid)
	}
	values := make([][]int64, len(lines))
	for y, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]int64, len(line))
		for x := 0; x < len(line); x++ {
			c := line[x]
			if c < '0' || c > '9' {
				return nil, malformed(y, x, fmt.Errorf("%w: %q", ErrNonDigit, c))
			}
			row[x] = int64(c - '0')
		}
		values[y] = row
	}

	return New(values)
}

// MaxRowWidth is the widest row, in cells, that Parse accepts.
const MaxRowWidth = 1 << 24

// Parse reads digit rows from r until EOF and builds a Map.
// Rows wider than MaxRowWidth fail with a read error.
func Parse(r io.Reader) (*Map, error) {
	var lines []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxRowWidth+2) // room for "\r\n"
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("gridmap: reading grid: %w", err)
	}

	return ParseLines(lines)
}
