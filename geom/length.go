package geom

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit tags the meaning of a Length value.
type Unit uint8

const (
	// Unbounded is the zero unit: no limit at all.
	Unbounded Unit = iota
	// Pixels is an absolute length.
	Pixels
	// Percent is a share of a reference length, usually the parent's width.
	Percent
)

// Length is a configured size that is either absolute, relative, or absent.
// The zero value is unbounded.
type Length struct {
	Unit  Unit
	Value float64
}

// Px returns an absolute length.
func Px(v float64) Length { return Length{Unit: Pixels, Value: v} }

// Pct returns a relative length; 50 means half of the reference.
func Pct(v float64) Length { return Length{Unit: Percent, Value: v} }

// None is the unbounded length.
var None = Length{}

// Bounded reports whether l imposes a limit.
func (l Length) Bounded() bool {
	return l.Unit != Unbounded
}

// Resolve converts l to pixels against ref. Unbounded resolves to +Inf so it
// never wins a min comparison.
func (l Length) Resolve(ref float64) float64 {
	switch l.Unit {
	case Pixels:
		return l.Value
	case Percent:
		return ref * l.Value / 100
	default:
		return math.Inf(1)
	}
}

func (l Length) String() string {
	switch l.Unit {
	case Pixels:
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "px"
	case Percent:
		return strconv.FormatFloat(l.Value, 'f', -1, 64) + "%"
	default:
		return "none"
	}
}

// UnitError reports a size string that is neither a number, a pixel value
// nor a percentage.
type UnitError struct {
	Value  string
	Reason string
}

func (e *UnitError) Error() string {
	return fmt.Sprintf("invalid length %q: %s", e.Value, e.Reason)
}

// ParseLength reads "120", "120px", "50%" or "none". Anything else is an
// error, so malformed units are caught once, where configuration is read.
func ParseLength(s string) (Length, error) {
	v := strings.TrimSpace(s)
	switch {
	case v == "" || strings.EqualFold(v, "none") || strings.EqualFold(v, "auto"):
		return None, nil
	case strings.HasSuffix(v, "%"):
		n, err := parseNumber(s, strings.TrimSuffix(v, "%"))
		if err != nil {
			return None, err
		}
		return Pct(n), nil
	case strings.HasSuffix(v, "px"):
		n, err := parseNumber(s, strings.TrimSuffix(v, "px"))
		if err != nil {
			return None, err
		}
		return Px(n), nil
	default:
		n, err := parseNumber(s, v)
		if err != nil {
			return None, err
		}
		return Px(n), nil
	}
}

func parseNumber(orig, num string) (float64, error) {
	n, err := strconv.ParseFloat(strings.TrimSpace(num), 64)
	if err != nil {
		return 0, &UnitError{Value: orig, Reason: "not a number, pixel or percent value"}
	}
	if err := validNumber(orig, n); err != nil {
		return 0, err
	}
	return n, nil
}

func validNumber(orig string, n float64) error {
	if n < 0 || math.IsNaN(n) || math.IsInf(n, 0) {
		return &UnitError{Value: orig, Reason: "must be a finite, non-negative number"}
	}
	return nil
}

// UnmarshalYAML accepts a bare number or any string ParseLength accepts.
func (l *Length) UnmarshalYAML(unmarshal func(any) error) error {
	var n float64
	if err := unmarshal(&n); err == nil {
		if err := validNumber(strconv.FormatFloat(n, 'f', -1, 64), n); err != nil {
			return err
		}
		*l = Px(n)
		return nil
	}
	var s string
	if err := unmarshal(&s); err != nil {
		return err
	}
	parsed, err := ParseLength(s)
	if err != nil {
		return err
	}
	*l = parsed
	return nil
}

// MaxSize is a size ceiling per dimension. The zero value is unbounded.
type MaxSize struct {
	Width, Height Length
}
