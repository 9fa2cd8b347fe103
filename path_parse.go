package pathops

import (
	"fmt"
	"strings"

	"github.com/tdewolff/parse/v2/strconv"
)

func skipCommaWhitespace(path []byte) int {
	i := 0
	for i < len(path) && (path[i] == ' ' || path[i] == ',' || path[i] == '\n' || path[i] == '\r' || path[i] == '\t') {
		i++
	}
	return i
}

func parseNum(path []byte) (float64, int, error) {
	i := skipCommaWhitespace(path)
	f, n := strconv.ParseFloat(path[i:])
	if n == 0 {
		return 0.0, i, fmt.Errorf("expected number")
	}
	return f, i + n, nil
}

// ParseSVGPath parses SVG path data into a Path. It supports the moveto,
// lineto, horizontal/vertical lineto, cubic Bezier (including smooth) and
// closepath commands, in absolute and relative form.
func ParseSVGPath(sPath string) (*Path, error) {
	path := []byte(sPath)
	p := &Path{}

	var prevCmd byte
	cpx, cpy := 0.0, 0.0 // last cubic control point for smooth curveto

	i := 0
	for {
		i += skipCommaWhitespace(path[i:])
		if len(path) <= i {
			break
		}
		cmd := prevCmd
		if 'A' <= path[i] {
			cmd = path[i]
			i++
		}
		if cmd == 0 {
			return nil, fmt.Errorf("bad path: must start with command")
		}

		nums := [6]float64{}
		var n int
		switch cmd {
		case 'Z', 'z':
			n = 0
		case 'H', 'h', 'V', 'v':
			n = 1
		case 'M', 'm', 'L', 'l':
			n = 2
		case 'S', 's':
			n = 4
		case 'C', 'c':
			n = 6
		default:
			return nil, fmt.Errorf("bad path: unknown command '%c' at position %d", cmd, i)
		}
		for j := 0; j < n; j++ {
			num, ni, err := parseNum(path[i:])
			if err != nil {
				return nil, fmt.Errorf("bad path: %v at position %d", err, i)
			}
			nums[j] = num
			i += ni
		}

		x, y := p.Pos()
		switch cmd {
		case 'M', 'm':
			a, b := nums[0], nums[1]
			if cmd == 'm' {
				a += x
				b += y
			}
			p.MoveTo(a, b)
		case 'Z', 'z':
			p.Close()
		case 'L', 'l':
			a, b := nums[0], nums[1]
			if cmd == 'l' {
				a += x
				b += y
			}
			p.LineTo(a, b)
		case 'H', 'h':
			a := nums[0]
			if cmd == 'h' {
				a += x
			}
			p.LineTo(a, y)
		case 'V', 'v':
			b := nums[0]
			if cmd == 'v' {
				b += y
			}
			p.LineTo(x, b)
		case 'C', 'c':
			a, b, c, d, e, f := nums[0], nums[1], nums[2], nums[3], nums[4], nums[5]
			if cmd == 'c' {
				a += x
				b += y
				c += x
				d += y
				e += x
				f += y
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		case 'S', 's':
			c, d, e, f := nums[0], nums[1], nums[2], nums[3]
			if cmd == 's' {
				c += x
				d += y
				e += x
				f += y
			}
			a, b := x, y
			if prevCmd == 'C' || prevCmd == 'c' || prevCmd == 'S' || prevCmd == 's' {
				a, b = 2.0*x-cpx, 2.0*y-cpy
			}
			p.CubeTo(a, b, c, d, e, f)
			cpx, cpy = c, d
		}
		// after a moveto, implicit repetition draws lines
		if cmd == 'M' {
			prevCmd = 'L'
		} else if cmd == 'm' {
			prevCmd = 'l'
		} else {
			prevCmd = cmd
		}
	}
	return p, nil
}

// MustParseSVGPath parses SVG path data and panics on failure.
func MustParseSVGPath(sPath string) *Path {
	p, err := ParseSVGPath(sPath)
	if err != nil {
		panic(err)
	}
	return p
}

// String returns the path as SVG path data.
func (p *Path) String() string {
	sb := strings.Builder{}
	i := 0
	for _, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%g %g", p.d[i], p.d[i+1])
		case LineToCmd:
			fmt.Fprintf(&sb, "L%g %g", p.d[i], p.d[i+1])
		case CubeToCmd:
			fmt.Fprintf(&sb, "C%g %g %g %g %g %g", p.d[i], p.d[i+1], p.d[i+2], p.d[i+3], p.d[i+4], p.d[i+5])
		case CloseCmd:
			fmt.Fprintf(&sb, "z")
		}
		i += cmdLen(cmd)
	}
	return sb.String()
}
