package gettext

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Formatter substitutes placeholders of a translated template.
type Formatter interface {
	FormatPositional(template string, args []string) (string, error)
	FormatNamed(template string, args Lookup) (string, error)
}

// PythonFormatter implements printf style substitution with Python's
// %-operator grammar: %[(key)][flags][width][.precision][length]type.
// Supported types are s r a d i u o x X e E f F g G c and %%.
//
// Positional references past the end of args and named references that the
// lookup cannot resolve are errors. Unused positional arguments are ignored.
type PythonFormatter struct{}

var _ Formatter = PythonFormatter{}

func (PythonFormatter) FormatPositional(template string, args []string) (string, error) {
	return pyformat(template, &positionalSource{args: args})
}

func (PythonFormatter) FormatNamed(template string, args Lookup) (string, error) {
	return pyformat(template, namedSource{lookup: args})
}

type argSource interface {
	next() (string, error)
	named(key string) (string, error)
}

type positionalSource struct {
	args []string
	pos  int
}

func (s *positionalSource) next() (string, error) {
	if s.pos >= len(s.args) {
		return "", fmt.Errorf("missing argument: %d", s.pos)
	}
	arg := s.args[s.pos]
	s.pos++
	return arg, nil
}

func (s *positionalSource) named(string) (string, error) {
	return "", fmt.Errorf("format requires an argument map")
}

type namedSource struct {
	lookup Lookup
}

func (namedSource) next() (string, error) {
	return "", fmt.Errorf("format requires an argument list")
}

func (s namedSource) named(key string) (string, error) {
	if s.lookup != nil {
		if value, ok := s.lookup.Lookup(key); ok {
			return value, nil
		}
	}
	return "", fmt.Errorf("missing argument: %s", key)
}

type conversion struct {
	key       string
	keyed     bool
	flags     string
	width     string
	precision string
	hasPrec   bool
	verb      byte
}

func pyformat(template string, src argSource) (string, error) {
	var out strings.Builder
	out.Grow(len(template))

	for i := 0; i < len(template); {
		idx := strings.IndexByte(template[i:], '%')
		if idx < 0 {
			out.WriteString(template[i:])
			break
		}
		out.WriteString(template[i : i+idx])
		i += idx

		conv, size, err := parseConversion(template[i:])
		if err != nil {
			return "", fmt.Errorf("%s at index %d", err, i)
		}
		i += size

		if conv.verb == '%' {
			out.WriteByte('%')
			continue
		}

		var arg string
		if conv.keyed {
			arg, err = src.named(conv.key)
		} else {
			arg, err = src.next()
		}
		if err != nil {
			return "", err
		}

		rendered, err := conv.render(arg)
		if err != nil {
			return "", err
		}
		out.WriteString(rendered)
	}

	return out.String(), nil
}

func parseConversion(s string) (conversion, int, error) {
	var conv conversion
	pos := 1

	if pos < len(s) && s[pos] == '(' {
		depth := 1
		end := pos + 1
		for ; end < len(s) && depth > 0; end++ {
			switch s[end] {
			case '(':
				depth++
			case ')':
				depth--
			}
		}
		if depth > 0 {
			return conv, 0, fmt.Errorf("incomplete format key")
		}
		conv.key = s[pos+1 : end-1]
		conv.keyed = true
		pos = end
	}

	start := pos
	for pos < len(s) && strings.IndexByte("-+ #0", s[pos]) >= 0 {
		pos++
	}
	conv.flags = s[start:pos]

	start = pos
	for pos < len(s) && isDigit(s[pos]) {
		pos++
	}
	conv.width = s[start:pos]
	if pos < len(s) && s[pos] == '*' {
		return conv, 0, fmt.Errorf("unsupported '*' width")
	}

	if pos < len(s) && s[pos] == '.' {
		pos++
		start = pos
		for pos < len(s) && isDigit(s[pos]) {
			pos++
		}
		conv.precision = s[start:pos]
		conv.hasPrec = true
		if pos < len(s) && s[pos] == '*' {
			return conv, 0, fmt.Errorf("unsupported '*' precision")
		}
	}

	for pos < len(s) && strings.IndexByte("hlL", s[pos]) >= 0 {
		pos++
	}

	if pos >= len(s) {
		return conv, 0, fmt.Errorf("incomplete format")
	}
	conv.verb = s[pos]
	pos++

	if strings.IndexByte("sradiuoxXeEfFgGc%", conv.verb) < 0 {
		return conv, 0, fmt.Errorf("unsupported format character %q (0x%x)", rune(conv.verb), conv.verb)
	}

	return conv, pos, nil
}

func (c conversion) render(arg string) (string, error) {
	switch c.verb {
	case 's':
		return fmt.Sprintf(c.spec(stringFlags(c.flags), 's'), arg), nil
	case 'r', 'a':
		return fmt.Sprintf(c.spec(stringFlags(c.flags), 's'), pyrepr(arg)), nil
	case 'c':
		if utf8.RuneCountInString(arg) == 1 {
			return fmt.Sprintf(c.specNoPrec(stringFlags(c.flags), 's'), arg), nil
		}
		code, err := strconv.ParseInt(strings.TrimSpace(arg), 10, 32)
		if err != nil {
			return "", fmt.Errorf("%%c requires int or char, got %q", arg)
		}
		return fmt.Sprintf(c.specNoPrec(stringFlags(c.flags), 's'), string(rune(code))), nil
	case 'd', 'i', 'u':
		n, err := parseInteger(arg, true)
		if errors.Is(err, errNotANumber) {
			return "", fmt.Errorf("%%%c format: a number is required, got %q", c.verb, arg)
		}
		if err != nil {
			return "", fmt.Errorf("%%%c format: %w", c.verb, err)
		}
		return fmt.Sprintf(c.spec(c.flags, 'd'), n), nil
	case 'o', 'x', 'X':
		n, err := parseInteger(arg, false)
		if err != nil {
			return "", fmt.Errorf("%%%c format: an integer is required, got %q", c.verb, arg)
		}
		verb := c.verb
		flags := c.flags
		if verb == 'o' && strings.Contains(flags, "#") {
			verb = 'O'
			flags = strings.ReplaceAll(flags, "#", "")
		}
		return fmt.Sprintf(c.spec(flags, verb), n), nil
	default:
		f, err := strconv.ParseFloat(strings.TrimSpace(arg), 64)
		if err != nil {
			return "", fmt.Errorf("%%%c format: a number is required, got %q", c.verb, arg)
		}
		return fmt.Sprintf(c.spec(c.flags, c.verb), f), nil
	}
}

func (c conversion) spec(flags string, verb byte) string {
	var b strings.Builder
	b.WriteByte('%')
	b.WriteString(flags)
	b.WriteString(c.width)
	if c.hasPrec {
		b.WriteByte('.')
		if c.precision == "" {
			b.WriteByte('0')
		} else {
			b.WriteString(c.precision)
		}
	}
	b.WriteByte(verb)
	return b.String()
}

func (c conversion) specNoPrec(flags string, verb byte) string {
	c.hasPrec = false
	return c.spec(flags, verb)
}

// stringFlags keeps the only flag Python honors for string conversions.
func stringFlags(flags string) string {
	if strings.Contains(flags, "-") {
		return "-"
	}
	return ""
}

var errNotANumber = errors.New("not a number")

// parseInteger accepts integer text and, when truncateFloat is set, float
// text that truncates to an int64.
func parseInteger(arg string, truncateFloat bool) (int64, error) {
	trimmed := strings.TrimSpace(arg)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n, nil
	}
	if !truncateFloat {
		return 0, errNotANumber
	}

	f, err := strconv.ParseFloat(trimmed, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return 0, errNotANumber
	}
	switch {
	case math.IsNaN(f):
		return 0, errors.New("cannot convert float NaN to integer")
	case math.IsInf(f, 0):
		return 0, errors.New("cannot convert float infinity to integer")
	case f >= math.MaxInt64 || f < math.MinInt64:
		return 0, fmt.Errorf("%s is out of range for an integer", trimmed)
	}
	return int64(f), nil
}

func pyrepr(s string) string {
	quote := "'"
	if strings.Contains(s, "'") && !strings.Contains(s, `"`) {
		quote = `"`
	}
	var b strings.Builder
	b.WriteString(quote)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case string(r) == quote:
			b.WriteString(`\` + quote)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\r':
			b.WriteString(`\r`)
		default:
			b.WriteRune(r)
		}
	}
	b.WriteString(quote)
	return b.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
