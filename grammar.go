package blacklog

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// SeverityType selects how a severity placeholder renders: as the raw number
// or through the record's severity format.
type SeverityType uint8

const (
	SeverityString SeverityType = iota
	SeverityNum
)

// Timezone selects the zone a timestamp placeholder renders in.
type Timezone uint8

const (
	TimezoneUTC Timezone = iota
	TimezoneLocal
)

// TokenKind discriminates the variants of Token.
type TokenKind uint8

const (
	TokenLiteral TokenKind = iota
	TokenMessage
	TokenSeverity
	TokenTimestamp
	TokenTimestampNum
	TokenLine
	TokenModule
	TokenMeta
	TokenMetaList
)

// DefaultTimePattern is the strftime pattern used when a timestamp
// placeholder does not embed its own: an ISO 8601 date and time.
const DefaultTimePattern = "%+"

// Token is one parsed unit of a pattern: literal text or a typed
// placeholder. A layout compiles a pattern into a token sequence once and
// holds it immutably thereafter.
type Token struct {
	Kind     TokenKind
	Text     string       // literal text, TokenLiteral only
	Name     string       // attribute name, TokenMeta only
	Pattern  string       // strftime sub-pattern, TokenTimestamp only
	Timezone Timezone     // TokenTimestamp only
	Severity SeverityType // TokenSeverity only
	Spec     *FormatSpec  // nil when the placeholder carries no format spec
}

// ParseError reports a malformed pattern with the byte offset of the
// failure. It surfaces once, at layout construction.
type ParseError struct {
	Pattern string
	Pos     int
	Reason  string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse pattern %q: %s at offset %d", e.Pattern, e.Reason, e.Pos)
}

// Parse compiles a pattern string into a token sequence. It is a pure
// function: the same pattern always yields the same tokens. An empty pattern
// yields an empty sequence.
func Parse(pattern string) ([]Token, error) {
	p := parser{src: pattern}
	var tokens []Token
	for !p.eof() {
		switch {
		case p.lit("{{"):
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: "{"})
		case p.lit("}}"):
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: "}"})
		case p.peek() == '{':
			tok, err := p.placeholder()
			if err != nil {
				return nil, err
			}
			tokens = append(tokens, tok)
		case p.peek() == '}':
			return nil, p.errf("unbalanced '}'")
		default:
			tokens = append(tokens, Token{Kind: TokenLiteral, Text: p.text()})
		}
	}
	return tokens, nil
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool { return p.pos >= len(p.src) }

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.src[p.pos]
}

// lit consumes s if it is next in the input.
func (p *parser) lit(s string) bool {
	if strings.HasPrefix(p.src[p.pos:], s) {
		p.pos += len(s)
		return true
	}
	return false
}

func (p *parser) errf(format string, args ...any) *ParseError {
	return &ParseError{Pattern: p.src, Pos: p.pos, Reason: fmt.Sprintf(format, args...)}
}

// text consumes a run of characters up to the next brace.
func (p *parser) text() string {
	start := p.pos
	for !p.eof() && p.peek() != '{' && p.peek() != '}' {
		p.pos++
	}
	return p.src[start:p.pos]
}

// placeholder parses "{keyword[:spec]}" with the cursor on the opening
// brace. Reserved keywords get their context-specific spec rules; any other
// identifier becomes a named attribute reference.
func (p *parser) placeholder() (Token, error) {
	p.pos++ // '{'
	if p.lit("...") {
		return p.metaList()
	}
	name := p.ident()
	if name == "" {
		return Token{}, p.errf("expected placeholder name")
	}
	if p.lit("}") {
		switch name {
		case "message":
			return Token{Kind: TokenMessage}, nil
		case "severity":
			return Token{Kind: TokenSeverity, Severity: SeverityString}, nil
		case "timestamp":
			return Token{Kind: TokenTimestamp, Pattern: DefaultTimePattern, Timezone: TimezoneUTC}, nil
		case "line":
			return Token{Kind: TokenLine}, nil
		case "module":
			return Token{Kind: TokenModule}, nil
		default:
			return Token{Kind: TokenMeta, Name: name}, nil
		}
	}
	if !p.lit(":") {
		return Token{}, p.errf("expected ':' or '}' after placeholder name")
	}
	switch name {
	case "message":
		spec := p.spec()
		if err := p.close(); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenMessage, Spec: spec}, nil
	case "severity":
		return p.severity()
	case "timestamp":
		return p.timestamp()
	case "line":
		spec := p.spec()
		p.numericType(spec)
		if err := p.close(); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenLine, Spec: spec}, nil
	case "module":
		spec := p.spec()
		if err := p.close(); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenModule, Spec: spec}, nil
	default:
		spec := p.spec()
		p.numericType(spec)
		if err := p.close(); err != nil {
			return Token{}, err
		}
		return Token{Kind: TokenMeta, Name: name, Spec: spec}, nil
	}
}

// metaList parses the remainder of "{...[:spec]}". The grammar accepts a
// spec here so the layout can reject it with a useful error instead of a
// parse failure pointing at the dots.
func (p *parser) metaList() (Token, error) {
	if p.lit("}") {
		return Token{Kind: TokenMetaList}, nil
	}
	if !p.lit(":") {
		return Token{}, p.errf("expected ':' or '}' after '...'")
	}
	spec := p.spec()
	if err := p.close(); err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenMetaList, Spec: spec}, nil
}

// severity parses the remainder of "{severity:...}". The bare "s" and "d"
// forms carry no spec at all, keeping the common case on the fast path.
func (p *parser) severity() (Token, error) {
	if p.lit("s}") {
		return Token{Kind: TokenSeverity, Severity: SeverityString}, nil
	}
	if p.lit("d}") {
		return Token{Kind: TokenSeverity, Severity: SeverityNum}, nil
	}
	spec := p.spec()
	ty := SeverityString
	switch p.peek() {
	case 'd':
		ty = SeverityNum
		p.pos++
	case 's':
		p.pos++
	}
	if err := p.close(); err != nil {
		return Token{}, err
	}
	return Token{Kind: TokenSeverity, Severity: ty, Spec: spec}, nil
}

// timestamp parses the remainder of "{timestamp:...}": an optional embedded
// strftime sub-pattern in its own braces, an optional spec, then a trailing
// letter choosing numeric form ('d'), UTC ('s') or local time ('l'). The
// zone defaults to UTC.
func (p *parser) timestamp() (Token, error) {
	if p.lit("d}") {
		return Token{Kind: TokenTimestampNum}, nil
	}
	pattern, hasPattern := p.strftime()
	spec := p.spec()
	tz := TimezoneUTC
	numeric := false
	switch p.peek() {
	case 'd':
		numeric = true
		p.pos++
	case 's':
		p.pos++
	case 'l':
		tz = TimezoneLocal
		p.pos++
	}
	if err := p.close(); err != nil {
		return Token{}, err
	}
	if numeric {
		if hasPattern {
			return Token{}, p.errf("numeric timestamp cannot carry a sub-pattern")
		}
		return Token{Kind: TokenTimestampNum, Spec: spec}, nil
	}
	if !hasPattern {
		pattern = DefaultTimePattern
	}
	return Token{Kind: TokenTimestamp, Pattern: pattern, Timezone: tz, Spec: spec}, nil
}

// strftime captures a brace-delimited sub-pattern, honouring the "{{"/"}}"
// doubling rule inside it. Reports false without consuming anything when no
// well formed sub-pattern is present.
func (p *parser) strftime() (string, bool) {
	if p.peek() != '{' {
		return "", false
	}
	save := p.pos
	p.pos++
	var b strings.Builder
	for {
		if p.eof() {
			p.pos = save
			return "", false
		}
		if p.lit("{{") {
			b.WriteByte('{')
			continue
		}
		if p.lit("}}") {
			b.WriteByte('}')
			continue
		}
		c := p.src[p.pos]
		if c == '}' {
			p.pos++
			return b.String(), true
		}
		if c == '{' {
			p.pos = save
			return "", false
		}
		b.WriteByte(c)
		p.pos++
	}
}

// spec parses fill, align, width and precision. Every part is optional, so
// spec always succeeds; trailing type letters are the caller's business. A
// fill rune is consumed only when the character after it is an align marker,
// which keeps a bare digit run parsing as width.
func (p *parser) spec() *FormatSpec {
	spec := DefaultSpec()
	if r, size := utf8.DecodeRuneInString(p.src[p.pos:]); size > 0 {
		if _, ok := alignMarker(p.peekAt(p.pos + size)); ok {
			spec.Fill = r
			p.pos += size
		}
	}
	if a, ok := alignMarker(p.peek()); ok {
		spec.Align = a
		p.pos++
	}
	if n, ok := p.digits(); ok {
		spec.Width = n
	}
	if p.peek() == '.' {
		p.pos++
		if n, ok := p.digits(); ok {
			spec.Precision = n
		} else {
			// Let close() report the stray dot.
			p.pos--
		}
	}
	return &spec
}

// numericType consumes an integer radix letter into the spec if present.
func (p *parser) numericType(spec *FormatSpec) {
	switch p.peek() {
	case 'x', 'X', 'o', 'b':
		spec.Type = p.peek()
		p.pos++
	}
}

func (p *parser) close() error {
	if !p.lit("}") {
		if p.eof() {
			return p.errf("unterminated placeholder")
		}
		return p.errf("unexpected %q in placeholder", p.src[p.pos])
	}
	return nil
}

func (p *parser) peekAt(pos int) byte {
	if pos >= len(p.src) {
		return 0
	}
	return p.src[pos]
}

func alignMarker(c byte) (Alignment, bool) {
	switch c {
	case '<':
		return AlignLeft, true
	case '>':
		return AlignRight, true
	case '^':
		return AlignCenter, true
	}
	return 0, false
}

func (p *parser) ident() string {
	start := p.pos
	if p.eof() {
		return ""
	}
	c := p.peek()
	if !isAlpha(c) {
		return ""
	}
	p.pos++
	for !p.eof() && (isAlpha(p.peek()) || isDigit(p.peek())) {
		p.pos++
	}
	return p.src[start:p.pos]
}

// digits parses a decimal run, clamped at a bound no sane pattern reaches so
// width math cannot overflow.
func (p *parser) digits() (int, bool) {
	const limit = 1 << 20
	start := p.pos
	n := 0
	for !p.eof() && isDigit(p.peek()) {
		n = n*10 + int(p.peek()-'0')
		if n > limit {
			n = limit
		}
		p.pos++
	}
	return n, p.pos > start
}

func isAlpha(c byte) bool { return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' }
func isDigit(c byte) bool { return c >= '0' && c <= '9' }
