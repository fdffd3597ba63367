package blacklog

import (
	"bytes"
	"math"
	"testing"
)

func render(t *testing.T, spec FormatSpec, write func(f *Formatter) error) string {
	t.Helper()
	var buf bytes.Buffer
	if err := write(NewFormatter(&buf, spec)); err != nil {
		t.Fatalf("write: %v", err)
	}
	return buf.String()
}

func TestWriteIntDefaultSpec(t *testing.T) {
	tests := []struct {
		name string
		val  int64
		want string
	}{
		{"positive", 42, "42"},
		{"negative", -42, "-42"},
		{"zero", 0, "0"},
		{"min", math.MinInt64, "-9223372036854775808"},
		{"max", math.MaxInt64, "9223372036854775807"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, DefaultSpec(), func(f *Formatter) error { return f.WriteInt(tc.val) })
			if got != tc.want {
				t.Fatalf("WriteInt(%d) = %q, want %q", tc.val, got, tc.want)
			}
		})
	}
}

func TestWriteIntRadix(t *testing.T) {
	tests := []struct {
		ty   byte
		val  int64
		want string
	}{
		{'x', 42, "2a"},
		{'X', 42, "2A"},
		{'o', 42, "52"},
		{'b', 42, "101010"},
		{0, 42, "42"},
	}
	for _, tc := range tests {
		spec := DefaultSpec()
		spec.Type = tc.ty
		got := render(t, spec, func(f *Formatter) error { return f.WriteInt(tc.val) })
		if got != tc.want {
			t.Fatalf("type %q: got %q, want %q", tc.ty, got, tc.want)
		}
	}
}

func TestWriteIntFlagsAndPadding(t *testing.T) {
	tests := []struct {
		name string
		spec func() FormatSpec
		val  int64
		want string
	}{
		{
			name: "center fill",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Fill = '/'
				s.Align = AlignCenter
				s.Width = 10
				return s
			},
			val:  42,
			want: "////42////",
		},
		{
			name: "sign alternate zero pad right",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Align = AlignRight
				s.Flags = FlagSignPlus | FlagAlternate | FlagZeroPad
				s.Width = 10
				s.Type = 'x'
				return s
			},
			val:  42,
			want: "+0x000002a",
		},
		{
			name: "sign alternate zero pad left",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Align = AlignLeft
				s.Flags = FlagSignPlus | FlagAlternate | FlagZeroPad
				s.Width = 10
				s.Type = 'x'
				return s
			},
			val:  42,
			want: "+0x2a00000",
		},
		{
			name: "negative zero pad",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Flags = FlagZeroPad
				s.Width = 6
				return s
			},
			val:  -42,
			want: "-00042",
		},
		{
			name: "width defaults right",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Width = 5
				return s
			},
			val:  42,
			want: "   42",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, tc.spec(), func(f *Formatter) error { return f.WriteInt(tc.val) })
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteUintMaxBinary(t *testing.T) {
	spec := DefaultSpec()
	spec.Type = 'b'
	got := render(t, spec, func(f *Formatter) error { return f.WriteUint(math.MaxUint64) })
	want := "1111111111111111111111111111111111111111111111111111111111111111"
	if got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

func TestWriteFloat(t *testing.T) {
	tests := []struct {
		name string
		spec func() FormatSpec
		val  float64
		want string
	}{
		{"shortest", func() FormatSpec { return DefaultSpec() }, 3.1415, "3.1415"},
		{"negative", func() FormatSpec { return DefaultSpec() }, -3.1415, "-3.1415"},
		{
			name: "precision sign zero pad left",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Align = AlignLeft
				s.Flags = FlagSignPlus | FlagZeroPad
				s.Precision = 3
				s.Width = 10
				return s
			},
			val:  3.1415,
			want: "+3.1420000",
		},
		{
			name: "precision sign zero pad right",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Align = AlignRight
				s.Flags = FlagSignPlus | FlagZeroPad
				s.Precision = 3
				s.Width = 10
				return s
			},
			val:  3.1415,
			want: "+00003.142",
		},
		{
			name: "exponent",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Type = 'e'
				return s
			},
			val:  100500.0,
			want: "1.005e+05",
		},
		{
			name: "exponent upper with precision",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Type = 'E'
				s.Precision = 4
				return s
			},
			val:  100500.0,
			want: "1.0050E+05",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, tc.spec(), func(f *Formatter) error { return f.WriteFloat(tc.val) })
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteFloatNonFinite(t *testing.T) {
	spec := DefaultSpec()
	spec.Width = 6
	for val, want := range map[float64]string{
		math.Inf(1):  "  +Inf",
		math.Inf(-1): "  -Inf",
		math.NaN():   "   NaN",
	} {
		got := render(t, spec, func(f *Formatter) error { return f.WriteFloat(val) })
		if got != want {
			t.Fatalf("WriteFloat(%v) = %q, want %q", val, got, want)
		}
	}
}

func TestWriteStr(t *testing.T) {
	tests := []struct {
		name string
		spec func() FormatSpec
		in   string
		want string
	}{
		{"plain", func() FormatSpec { return DefaultSpec() }, "hello", "hello"},
		{
			name: "pad left default",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Width = 8
				return s
			},
			in:   "hello",
			want: "hello   ",
		},
		{
			name: "truncate center pad",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Fill = '/'
				s.Align = AlignCenter
				s.Width = 10
				s.Precision = 8
				return s
			},
			in:   "le message",
			want: "/le messa/",
		},
		{
			name: "precision longer than value",
			spec: func() FormatSpec {
				s := DefaultSpec()
				s.Precision = 10
				return s
			},
			in:   "short",
			want: "short",
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := render(t, tc.spec(), func(f *Formatter) error { return f.WriteStr(tc.in) })
			if got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestWriteStrUnicodeSafe(t *testing.T) {
	spec := DefaultSpec()
	spec.Precision = 2
	got := render(t, spec, func(f *Formatter) error { return f.WriteStr("héllo") })
	if got != "hé" {
		t.Fatalf("truncation split a rune: %q", got)
	}

	spec = DefaultSpec()
	spec.Fill = '•'
	spec.Align = AlignRight
	spec.Width = 5
	got = render(t, spec, func(f *Formatter) error { return f.WriteStr("héé") })
	if got != "••héé" {
		t.Fatalf("rune width math wrong: %q", got)
	}
}

func TestWriteBool(t *testing.T) {
	got := render(t, DefaultSpec(), func(f *Formatter) error { return f.WriteBool(true) })
	if got != "true" {
		t.Fatalf("got %q", got)
	}
	spec := DefaultSpec()
	spec.Width = 7
	got = render(t, spec, func(f *Formatter) error { return f.WriteBool(false) })
	if got != "false  " {
		t.Fatalf("got %q", got)
	}
}

func TestFormatValueDispatch(t *testing.T) {
	tests := []struct {
		name string
		val  any
		want string
	}{
		{"string", "x", "x"},
		{"int", 42, "42"},
		{"uint", uint(42), "42"},
		{"float", 3.5, "3.5"},
		{"bool", true, "true"},
		{"bytes", []byte("raw"), "raw"},
		{"nil", nil, "nil"},
		{"stringer", bytes.NewBufferString("buf"), "buf"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			if err := formatValue(NewFormatter(&buf, DefaultSpec()), tc.val); err != nil {
				t.Fatalf("formatValue: %v", err)
			}
			if buf.String() != tc.want {
				t.Fatalf("got %q, want %q", buf.String(), tc.want)
			}
		})
	}
}

func TestMetaFuncDefersEvaluation(t *testing.T) {
	calls := 0
	fn := MetaFunc(func() any {
		calls++
		return 7
	})
	var buf bytes.Buffer
	if err := formatValue(NewFormatter(&buf, DefaultSpec()), fn); err != nil {
		t.Fatalf("formatValue: %v", err)
	}
	if buf.String() != "7" || calls != 1 {
		t.Fatalf("got %q after %d calls", buf.String(), calls)
	}
}
