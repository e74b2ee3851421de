package geometry

// Margin is an inset in native pixels.
type Margin struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// Horizontal returns Left+Right.
func (m Margin) Horizontal() int { return m.Left + m.Right }

// Vertical returns Top+Bottom.
func (m Margin) Vertical() int { return m.Top + m.Bottom }

// Unit identifies how a UILength is interpreted.
type Unit int

const (
	// UnitNone is an empty length; it converts to zero pixels.
	UnitNone Unit = iota
	// UnitDIP is a device-independent unit, scaled by the widget's scale factor.
	UnitDIP
	// UnitEM is relative to the widget's own font size.
	UnitEM
	// UnitSEM is relative to the system font size.
	UnitSEM
)

func (u Unit) String() string {
	switch u {
	case UnitDIP:
		return "dip"
	case UnitEM:
		return "em"
	case UnitSEM:
		return "sem"
	default:
		return "none"
	}
}

// UILength is a length in one of the abstract units.
type UILength struct {
	Unit  Unit
	Value float64
}

// DIP returns a length of v device-independent units.
func DIP(v float64) UILength { return UILength{Unit: UnitDIP, Value: v} }

// EM returns a length of v times the widget font size.
func EM(v float64) UILength { return UILength{Unit: UnitEM, Value: v} }

// SEM returns a length of v times the system font size.
func SEM(v float64) UILength { return UILength{Unit: UnitSEM, Value: v} }

// IsNone reports whether the length is empty.
func (l UILength) IsNone() bool { return l.Unit == UnitNone }

// UIMargin is an inset expressed in UILengths.
type UIMargin struct {
	Top    UILength
	Right  UILength
	Bottom UILength
	Left   UILength
}

// UniformMargin returns a margin with l on every side.
func UniformMargin(l UILength) UIMargin {
	return UIMargin{Top: l, Right: l, Bottom: l, Left: l}
}

// SymmetricMargin returns a margin with vertical on top and bottom and
// horizontal on left and right.
func SymmetricMargin(vertical, horizontal UILength) UIMargin {
	return UIMargin{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}
