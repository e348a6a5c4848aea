package gettext

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPythonFormatterNamed(t *testing.T) {
	args := MapLookup{"name": "Grace", "n": "3", "pi": "3.14159", "word": "it's"}

	tests := []struct {
		template string
		want     string
	}{
		{"Hello %(name)s!", "Hello Grace!"},
		{"%(n)d items", "3 items"},
		{"%(n)03d", "003"},
		{"%(pi).2f", "3.14"},
		{"[%(name)10s]", "[     Grace]"},
		{"[%(name)-8s]", "[Grace   ]"},
		{"%(name).2s", "Gr"},
		{"%(n)x %(n)o", "3 3"},
		{"%(name)r", "'Grace'"},
		{"%(word)r", `"it's"`},
		{"%(n)5.1f%%", "  3.0%"},
		{"no placeholders", "no placeholders"},
		{"%%(name)s", "%(name)s"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()
			got, err := PythonFormatter{}.FormatNamed(tt.template, args)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPythonFormatterPositional(t *testing.T) {
	tests := []struct {
		template string
		args     []string
		want     string
	}{
		{"Hello %s!", []string{"Grace"}, "Hello Grace!"},
		{"%s + %s = %d", []string{"1", "2", "3"}, "1 + 2 = 3"},
		{"%d", []string{"4.9"}, "4"},
		{"%c%c", []string{"72", "i"}, "Hi"},
		{"unused", []string{"a"}, "unused"},
		{"%#x", []string{"255"}, "0xff"},
		{"%+d", []string{"5"}, "+5"},
	}

	for _, tt := range tests {
		t.Run(tt.template, func(t *testing.T) {
			t.Parallel()
			got, err := PythonFormatter{}.FormatPositional(tt.template, tt.args)
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestPythonFormatterErrors(t *testing.T) {
	tests := []struct {
		name       string
		template   string
		positional []string
		named      Lookup
		want       string
	}{
		{name: "missing key", template: "%(x)s", named: MapLookup{}, want: "missing argument: x"},
		{name: "nil lookup", template: "%(x)s", want: "missing argument: x"},
		{name: "key with positional", template: "%(x)s", positional: []string{"a"}, want: "format requires an argument map"},
		{name: "positional with lookup", template: "%s", named: MapLookup{}, want: "format requires an argument list"},
		{name: "out of range", template: "%s %s", positional: []string{"a"}, want: "missing argument: 1"},
		{name: "unsupported verb", template: "%y", positional: []string{"a"}, want: "unsupported format character 'y' (0x79) at index 0"},
		{name: "unclosed key", template: "x %(name", named: MapLookup{}, want: "incomplete format key at index 2"},
		{name: "trailing percent", template: "100%", positional: []string{}, want: "incomplete format at index 3"},
		{name: "not a number", template: "%d", positional: []string{"abc"}, want: `%d format: a number is required, got "abc"`},
		{name: "star width", template: "%*d", positional: []string{"1", "2"}, want: "unsupported '*' width at index 0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			var err error
			if tt.positional != nil {
				_, err = PythonFormatter{}.FormatPositional(tt.template, tt.positional)
			} else {
				_, err = PythonFormatter{}.FormatNamed(tt.template, tt.named)
			}
			require.EqualError(t, err, tt.want)
		})
	}
}

func TestOverlayLookup(t *testing.T) {
	t.Parallel()

	overlay := Overlay{
		Local: map[string]string{"name": "Marie", "empty": ""},
		Base:  map[string]string{"name": "Grace", "city": "Paris", "empty": "base"},
	}

	got, ok := overlay.Lookup("name")
	require.True(t, ok)
	require.Equal(t, "Marie", got)

	got, ok = overlay.Lookup("city")
	require.True(t, ok)
	require.Equal(t, "Paris", got)

	got, ok = overlay.Lookup("empty")
	require.True(t, ok)
	require.Empty(t, got)

	_, ok = overlay.Lookup("missing")
	require.False(t, ok)

	_, ok = Overlay{}.Lookup("name")
	require.False(t, ok)
}

func TestPythonFormatterIntegerRange(t *testing.T) {
	tests := []struct {
		arg  string
		want string
	}{
		{"inf", "%d format: cannot convert float infinity to integer"},
		{"-inf", "%d format: cannot convert float infinity to integer"},
		{"NaN", "%d format: cannot convert float NaN to integer"},
		{"1e30", "%d format: 1e30 is out of range for an integer"},
		{"1e400", "%d format: cannot convert float infinity to integer"},
		{"99999999999999999999", "%d format: 99999999999999999999 is out of range for an integer"},
		{"9223372036854775808.0", "%d format: 9223372036854775808.0 is out of range for an integer"},
	}

	for _, tt := range tests {
		t.Run(tt.arg, func(t *testing.T) {
			t.Parallel()
			_, err := PythonFormatter{}.FormatPositional("%d", []string{tt.arg})
			require.EqualError(t, err, tt.want)
		})
	}

	got, err := PythonFormatter{}.FormatPositional("%d %i", []string{"-9223372036854775808", "-1e18"})
	require.NoError(t, err)
	require.Equal(t, "-9223372036854775808 -1000000000000000000", got)

	_, err = PythonFormatter{}.FormatPositional("%x", []string{"1.5"})
	require.EqualError(t, err, `%x format: an integer is required, got "1.5"`)
}

func TestResolveIntegerConversionOfSpecialFloats(t *testing.T) {
	for _, f := range []Float{Float(math.Inf(1)), Float(math.Inf(-1)), Float(math.NaN()), 1e30} {
		_, err := Resolve(FormattedText{Text: "%d", Args: Positional{f}}, nil)
		var formatErr *FormatError
		require.ErrorAs(t, err, &formatErr, "%v", f)
	}
}
