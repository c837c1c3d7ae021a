package fixednum

import (
	"fmt"
	"strconv"
	"strings"
)

// Align selects the padding side when a [Style] width exceeds the
// rendered number.
type Align int

const (
	// AlignNone pads on the left, like AlignRight. It is the zero value
	// and the historical default.
	AlignNone Align = iota
	AlignLeft
	AlignRight
	AlignCenter
)

// Style configures [D19.Text] rendering.
type Style struct {
	// Separator groups the whole part in threes from the right and the
	// fractional part in threes from the left. Zero disables grouping.
	Separator rune
	// Precision is the exact number of fractional digits; values above
	// 19 render 19 digits. A negative
	// precision keeps the natural digits of the value with trailing
	// zeros trimmed.
	Precision int
	// Width is the minimum rendered width; shorter output is padded.
	// Zero disables padding.
	Width int
	// Align selects the padding side.
	Align Align
	// Fill is the padding rune. Zero means space.
	Fill rune
	// PlusSign prefixes non-negative values with '+'.
	PlusSign bool
}

// DefaultStyle renders the canonical form: natural precision, no
// grouping, no padding, sign only when negative. [D19.String] uses it.
var DefaultStyle = Style{Precision: -1}

// String renders d in canonical form: the round trip
// Parse(d.String()) == d holds for every value.
func (d D19) String() string {
	return d.Text(DefaultStyle)
}

// Text renders d according to the style.
func (d D19) Text(st Style) string {
	if st.Precision >= 0 {
		p := st.Precision
		if p > 19 {
			p = 19
		}
		d = d.RoundTo(p)
	}

	neg := d.repr.isNeg()
	whole, frac := d.repr.mag().split()

	intStr := strconv.FormatUint(whole, 10)
	fracStr := fracDigits(frac, st.Precision)

	if st.Separator != 0 {
		intStr = groupRight(intStr, st.Separator)
		fracStr = groupLeft(fracStr, st.Separator)
	}

	var b strings.Builder
	switch {
	case neg:
		b.WriteByte('-')
	case st.PlusSign:
		b.WriteByte('+')
	}
	b.WriteString(intStr)
	if fracStr != "" {
		b.WriteByte('.')
		b.WriteString(fracStr)
	}
	return pad(b.String(), st)
}

// fracDigits renders the fractional representation as its 19 zero-padded
// digits, trims trailing zeros, then restores zeros up to the requested
// precision.
func fracDigits(frac uint64, precision int) string {
	var buf [19]byte
	for i := 18; i >= 0; i-- {
		buf[i] = byte(frac%10) + '0'
		frac /= 10
	}
	s := strings.TrimRight(string(buf[:]), "0")
	if precision > len(s) {
		if precision > 19 {
			precision = 19
		}
		s += strings.Repeat("0", precision-len(s))
	}
	return s
}

// groupRight inserts the separator every three digits counted from the
// right, for the whole part.
func groupRight(s string, sep rune) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(s[:lead])
	for i := lead; i < len(s); i += 3 {
		b.WriteRune(sep)
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// groupLeft inserts the separator every three digits counted from the
// left, for the fractional part.
func groupLeft(s string, sep rune) string {
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	b.WriteString(s[:3])
	for i := 3; i < len(s); i += 3 {
		b.WriteRune(sep)
		end := i + 3
		if end > len(s) {
			end = len(s)
		}
		b.WriteString(s[i:end])
	}
	return b.String()
}

// pad widens s to the style width with the fill rune. AlignLeft pads on
// the right, AlignCenter splits the padding, and both AlignRight and the
// AlignNone default pad on the left.
func pad(s string, st Style) string {
	n := st.Width - len(s)
	if n <= 0 {
		return s
	}
	fill := st.Fill
	if fill == 0 {
		fill = ' '
	}
	f := strings.Repeat(string(fill), n)
	switch st.Align {
	case AlignLeft:
		return s + f
	case AlignCenter:
		left := n / 2
		return strings.Repeat(string(fill), left) + s + strings.Repeat(string(fill), n-left)
	}
	return f + s
}

// Format implements [fmt.Formatter]. The verbs 'v', 's', 'f' and 'q'
// are supported; width, precision and the '+', '-' and '0' flags map
// onto the equivalent [Style] fields.
func (d D19) Format(state fmt.State, verb rune) {
	switch verb {
	case 'v', 's', 'f', 'F', 'q':
	default:
		fmt.Fprintf(state, "%%!%c(fixednum.D19=%s)", verb, d.Text(DefaultStyle))
		return
	}

	st := Style{Precision: -1}
	if p, ok := state.Precision(); ok && (verb == 'f' || verb == 'F') {
		st.Precision = p
	}
	if w, ok := state.Width(); ok {
		st.Width = w
	}
	if state.Flag('+') {
		st.PlusSign = true
	}
	if state.Flag('-') {
		st.Align = AlignLeft
	} else if state.Flag('0') {
		st.Fill = '0'
	}

	if verb == 'q' {
		inner := st
		inner.Width = 0
		s := `"` + d.Text(inner) + `"`
		//nolint:errcheck
		state.Write([]byte(pad(s, st)))
		return
	}

	//nolint:errcheck
	state.Write([]byte(d.Text(st)))
}
