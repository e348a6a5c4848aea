package gettext

import (
	"errors"
	"strings"
	"testing"
	"text/template"

	"github.com/stretchr/testify/require"
)

func renderTemplate(t *testing.T, funcs map[string]any, src string, data any) string {
	t.Helper()

	tmpl, err := template.New("test").Funcs(funcs).Parse(src)
	require.NoError(t, err)

	var out strings.Builder
	require.NoError(t, tmpl.Execute(&out, data))
	return out.String()
}

func TestTemplateHelpersResolveMessage(t *testing.T) {
	t.Parallel()

	r := NewResolver(dictOracle{"Hello %(name)s!": "Bonjour %(name)s !"})
	funcs := TemplateHelpers(r, HelperConfig{BaseArgsKey: "args"})

	notice := NewMessage(GetText{MsgID: "Hello %(name)s!"})
	data := map[string]any{
		"notice": notice,
		"value":  Array{Text("-"), Integer(1), Integer(2)},
		"raw":    map[string]any{"text": "%(who)s here"},
		"args":   map[string]string{"name": "Grace", "who": "Ada"},
	}

	got := renderTemplate(t, funcs, `{{ resolve_message .notice . }}|{{ resolve_message .value }}|{{ resolve_message .raw . }}`, data)
	require.Equal(t, "Bonjour Grace !|1-2|Ada here", got)

	notice.SetArg("name", "Marie")
	got = renderTemplate(t, funcs, `{{ resolve_message .notice . }}`, data)
	require.Equal(t, "Bonjour Marie !", got)
}

func TestTemplateHelpersGettext(t *testing.T) {
	t.Parallel()

	funcs := TemplateHelpers(nil, HelperConfig{})
	data := map[string]any{"Name": "Grace", "Count": 3, "Kw": map[string]any{"who": "Ada", "ok": true}}

	got := renderTemplate(t, funcs, `{{ gettext "Hello %s!" .Name }} {{ gettext "%(who)s: %(ok)s" .Kw }} {{ ngettext "%(n)s file" "%(n)s files" .Count }}`, data)
	require.Equal(t, "Hello Grace! Ada: yes 3 files", got)
}

func TestTemplateHelpersErrors(t *testing.T) {
	t.Parallel()

	var errs []error
	funcs := TemplateHelpers(nil, HelperConfig{OnError: func(err error) string {
		errs = append(errs, err)
		return "??"
	}})

	got := renderTemplate(t, funcs, `{{ gettext "%(missing)s" }} {{ ngettext "a" "b" -1 }} {{ resolve_message .bad }}`, map[string]any{
		"bad": map[string]any{"custom": 1},
	})
	require.Equal(t, "?? ?? ??", got)
	require.Len(t, errs, 3)

	var formatErr *FormatError
	require.True(t, errors.As(errs[0], &formatErr))
	require.ErrorIs(t, errs[2], ErrNoVariantMatched)

	silent := TemplateHelpers(nil, HelperConfig{})
	require.Equal(t, "x", renderTemplate(t, silent, `x{{ gettext "%(missing)s" }}`, nil))
}
