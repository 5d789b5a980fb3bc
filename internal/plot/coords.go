package plot

import (
	"strconv"
	"strings"
)

// ParseCoordinates parses a literal point list of the form "x,y;x,y;...".
// A single malformed segment rejects the whole list; order is preserved and
// duplicates are kept.
func ParseCoordinates(input string) ([]Point, error) {
	segments := strings.Split(input, ";")
	points := make([]Point, 0, len(segments))
	for _, seg := range segments {
		trimmed := strings.TrimSpace(seg)
		if trimmed == "" {
			// tolerate a trailing semicolon
			continue
		}
		xs, ys, found := strings.Cut(trimmed, ",")
		if !found {
			return nil, &PointError{Segment: trimmed}
		}
		x, err := strconv.ParseFloat(strings.TrimSpace(xs), 64)
		if err != nil {
			return nil, &PointError{Segment: trimmed}
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(ys), 64)
		if err != nil {
			return nil, &PointError{Segment: trimmed}
		}
		points = append(points, Point{X: x, Y: y})
	}
	if len(points) == 0 {
		return nil, ErrNoPoints
	}
	return points, nil
}
