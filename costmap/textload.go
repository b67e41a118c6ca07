package costmap

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/oceanic-robotics/gridplanner/logging"
)

// LoadText builds a Grid from a small ASCII scenario format, adapted
// from a stdin map protocol (parse.BuildGrid): a header
// line "map <width> <height>" followed by height rows of width
// characters, read top row first. '#' is Occupied, '?' is Unknown, a
// digit '0'-'9' is that literal ordinary traversal cost, anything else
// (conventionally '.') is Free.
//
// This exists for CLI demos and test fixtures; the core packages never
// read files themselves (spec §1/§6: parameter/costmap loading is an
// external collaborator's job).
func LoadText(r io.Reader, logger logging.Logger) (*Grid, error) {
	if logger == nil {
		logger = logging.Discard
	}
	scanner := bufio.NewScanner(r)
	if !scanner.Scan() {
		return nil, fmt.Errorf("costmap: empty scenario")
	}
	var width, height int
	if _, err := fmt.Sscanf(scanner.Text(), "map %d %d", &width, &height); err != nil {
		return nil, fmt.Errorf("costmap: parsing header %q: %w", scanner.Text(), err)
	}
	logger.Debug("building grid from text scenario", "width", width, "height", height)

	grid := NewGrid(width, height)
	for y := height - 1; y >= 0; y-- {
		if !scanner.Scan() {
			return nil, fmt.Errorf("costmap: expected %d map rows, ran out at row %d", height, y)
		}
		line := scanner.Text()
		for x, ch := range line {
			if x >= width {
				break
			}
			grid.SetCost(x, y, charToCost(ch))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("costmap: scanning scenario: %w", err)
	}
	return grid, nil
}

func charToCost(ch rune) Cost {
	switch {
	case ch == '#':
		return Occupied
	case ch == '?':
		return Unknown
	case ch >= '1' && ch <= '9':
		return Cost(ch - '0')
	default:
		return Free
	}
}

// DumpText renders a Grid back to the ASCII format LoadText accepts,
// for debug output — mirroring common.Grid.Dump, but for the whole
// cost band instead of just blocked/unblocked.
func DumpText(g *Grid) string {
	var b strings.Builder
	fmt.Fprintf(&b, "map %d %d\n", g.SizeX(), g.SizeY())
	for y := g.SizeY() - 1; y >= 0; y-- {
		for x := 0; x < g.SizeX(); x++ {
			switch c := g.GetCost(x, y); {
			case c == Occupied || c == Inscribed:
				b.WriteByte('#')
			case c == Unknown:
				b.WriteByte('?')
			case c == Free:
				b.WriteByte('.')
			default:
				b.WriteByte(byte('0' + c%10))
			}
		}
		b.WriteByte('\n')
	}
	return b.String()
}
