package blacklog

import (
	"io"
	"math"
	"strconv"
	"unicode/utf8"
)

// Alignment selects which side of a padded value receives the fill rune.
type Alignment uint8

const (
	AlignLeft Alignment = iota
	AlignRight
	AlignCenter
	// AlignUnknown defers the choice to the value being rendered: numbers
	// align right, everything else aligns left.
	AlignUnknown
)

// Format spec flags.
const (
	// FlagSignPlus prints an explicit '+' before non-negative numbers.
	FlagSignPlus uint32 = 1 << iota
	// FlagAlternate prints the radix prefix (0x, 0o, 0b) before the digits.
	FlagAlternate
	// FlagZeroPad overrides the fill rune with '0' for numeric values.
	FlagZeroPad
)

// FormatSpec describes how a single value is padded, aligned, truncated and
// converted. The zero value is not useful; start from DefaultSpec.
type FormatSpec struct {
	Fill      rune
	Align     Alignment
	Flags     uint32
	Precision int // number of runes to keep, negative when unset
	Width     int
	Type      byte // radix or float form letter, 0 when unset
}

// DefaultSpec returns the spec equivalent to an empty format string: space
// fill, deferred alignment, no width, no precision, no type.
func DefaultSpec() FormatSpec {
	return FormatSpec{Fill: ' ', Align: AlignUnknown, Precision: -1}
}

// Formatter writes a single value to an underlying writer according to a
// format spec. It is cheap to construct, one per rendered placeholder.
type Formatter struct {
	w    io.Writer
	spec FormatSpec
}

func NewFormatter(w io.Writer, spec FormatSpec) *Formatter {
	return &Formatter{w: w, spec: spec}
}

// Spec returns the spec this formatter applies.
func (f *Formatter) Spec() FormatSpec { return f.spec }

// Precision reports the rune limit and whether one was set.
func (f *Formatter) Precision() (int, bool) {
	return f.spec.Precision, f.spec.Precision >= 0
}

func (f *Formatter) signPlus() bool  { return f.spec.Flags&FlagSignPlus != 0 }
func (f *Formatter) alternate() bool { return f.spec.Flags&FlagAlternate != 0 }
func (f *Formatter) zeroPad() bool   { return f.spec.Flags&FlagZeroPad != 0 }

// WriteRaw bypasses the spec and writes p verbatim.
func (f *Formatter) WriteRaw(p []byte) error {
	_, err := f.w.Write(p)
	return err
}

// WriteStr writes s truncated to the precision and padded to the width.
// Truncation and width are measured in runes and never split a rune.
func (f *Formatter) WriteStr(s string) error {
	if p, ok := f.Precision(); ok {
		s = truncateRunes(s, p)
	} else if f.spec.Width == 0 {
		_, err := io.WriteString(f.w, s)
		return err
	}
	pad := f.spec.Width - utf8.RuneCountInString(s)
	if pad < 0 {
		pad = 0
	}
	return f.withPad(pad, AlignLeft, func() error {
		_, err := io.WriteString(f.w, s)
		return err
	})
}

// WriteBool writes "true" or "false" with string padding rules.
func (f *Formatter) WriteBool(v bool) error {
	if v {
		return f.WriteStr("true")
	}
	return f.WriteStr("false")
}

// WriteInt writes a signed integer in the radix selected by the spec type.
// The sign and radix prefix land before the padding so zero padding reads as
// a number, not as fill.
func (f *Formatter) WriteInt(v int64) error {
	base, prefix, digits := f.radix()
	var buf [64]byte
	pos := len(buf)
	u := v
	for {
		pos--
		d := u % int64(base)
		if d < 0 {
			d = -d
		}
		buf[pos] = digits[d]
		u /= int64(base)
		if u == 0 {
			break
		}
	}
	return f.writeNumber(v < 0, prefix, buf[pos:])
}

// WriteUint writes an unsigned integer in the radix selected by the spec type.
func (f *Formatter) WriteUint(v uint64) error {
	base, prefix, digits := f.radix()
	var buf [64]byte
	pos := len(buf)
	for {
		pos--
		buf[pos] = digits[v%uint64(base)]
		v /= uint64(base)
		if v == 0 {
			break
		}
	}
	return f.writeNumber(false, prefix, buf[pos:])
}

// WriteFloat writes a float in fixed or exponent form. The precision is the
// digit count after the point; without one the shortest round-tripping form
// is used. Sign, zero padding and alignment follow the integer rules.
func (f *Formatter) WriteFloat(v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		s := "NaN"
		switch {
		case math.IsInf(v, 1):
			s = "+Inf"
		case math.IsInf(v, -1):
			s = "-Inf"
		}
		pad := f.spec.Width - len(s)
		if pad < 0 {
			pad = 0
		}
		return f.withPad(pad, AlignRight, func() error {
			_, err := io.WriteString(f.w, s)
			return err
		})
	}
	prec := -1
	if p, ok := f.Precision(); ok {
		prec = p
	}
	form := byte('f')
	switch f.spec.Type {
	case 'e', 'E':
		form = f.spec.Type
	}
	var buf [32]byte
	staged := strconv.AppendFloat(buf[:0], math.Abs(v), form, prec, 64)
	return f.writeNumber(math.Signbit(v), "", staged)
}

func (f *Formatter) radix() (base int, prefix string, digits string) {
	const lower = "0123456789abcdef"
	const upper = "0123456789ABCDEF"
	switch f.spec.Type {
	case 'x':
		return 16, "0x", lower
	case 'X':
		return 16, "0x", upper
	case 'o':
		return 8, "0o", lower
	case 'b':
		return 2, "0b", lower
	default:
		return 10, "", lower
	}
}

func (f *Formatter) writeNumber(neg bool, prefix string, digits []byte) error {
	pad := f.spec.Width - len(digits)
	if neg {
		if err := f.writeByte('-'); err != nil {
			return err
		}
		pad--
	} else if f.signPlus() {
		if err := f.writeByte('+'); err != nil {
			return err
		}
		pad--
	}
	if f.alternate() && prefix != "" {
		if _, err := io.WriteString(f.w, prefix); err != nil {
			return err
		}
		pad -= len(prefix)
	}
	if f.zeroPad() {
		f.spec.Fill = '0'
	}
	if pad < 0 {
		pad = 0
	}
	return f.withPad(pad, AlignRight, func() error {
		_, err := f.w.Write(digits)
		return err
	})
}

// withPad distributes pad fill runes around body according to the alignment,
// falling back to def when the spec leaves it unknown.
func (f *Formatter) withPad(pad int, def Alignment, body func() error) error {
	align := f.spec.Align
	if align == AlignUnknown {
		align = def
	}
	var left, right int
	switch align {
	case AlignLeft:
		right = pad
	case AlignCenter:
		left, right = pad/2, pad-pad/2
	default:
		left = pad
	}
	if err := f.fill(left); err != nil {
		return err
	}
	if err := body(); err != nil {
		return err
	}
	return f.fill(right)
}

func (f *Formatter) fill(n int) error {
	if n <= 0 {
		return nil
	}
	var enc [utf8.UTFMax]byte
	k := utf8.EncodeRune(enc[:], f.spec.Fill)
	for range n {
		if _, err := f.w.Write(enc[:k]); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) writeByte(c byte) error {
	buf := [1]byte{c}
	_, err := f.w.Write(buf[:])
	return err
}

func truncateRunes(s string, n int) string {
	if n >= len(s) {
		return s
	}
	count := 0
	for i := range s {
		if count == n {
			return s[:i]
		}
		count++
	}
	return s
}
