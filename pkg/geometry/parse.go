package geometry

import (
	"fmt"
	"strconv"
	"strings"
)

// ParseUILength parses a number with an optional unit suffix: "4", "4dip",
// "1.5em" or "0.5sem". A bare number is in DIP. The empty string parses
// to the none length.
func ParseUILength(s string) (UILength, error) {
	s = strings.TrimSpace(strings.ToLower(s))
	if s == "" || s == "none" {
		return UILength{}, nil
	}
	unit := UnitDIP
	for _, u := range []Unit{UnitSEM, UnitDIP, UnitEM} {
		if strings.HasSuffix(s, u.String()) {
			unit = u
			s = strings.TrimSpace(strings.TrimSuffix(s, u.String()))
			break
		}
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return UILength{}, fmt.Errorf("invalid length %q: %w", s, err)
	}
	return UILength{Unit: unit, Value: v}, nil
}

// ParseUIMargin parses one, two or four lengths in CSS order: all sides;
// vertical and horizontal; or top, right, bottom and left.
func ParseUIMargin(parts []string) (UIMargin, error) {
	ls := make([]UILength, len(parts))
	for i, p := range parts {
		l, err := ParseUILength(p)
		if err != nil {
			return UIMargin{}, err
		}
		ls[i] = l
	}
	switch len(ls) {
	case 1:
		return UniformMargin(ls[0]), nil
	case 2:
		return SymmetricMargin(ls[0], ls[1]), nil
	case 4:
		return UIMargin{Top: ls[0], Right: ls[1], Bottom: ls[2], Left: ls[3]}, nil
	default:
		return UIMargin{}, fmt.Errorf("margin needs 1, 2 or 4 lengths, got %d", len(ls))
	}
}

func (l UILength) String() string {
	if l.IsNone() {
		return "none"
	}
	return strconv.FormatFloat(l.Value, 'g', -1, 64) + l.Unit.String()
}
