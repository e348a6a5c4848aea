package gettext

import (
	"fmt"
	"maps"
)

// HelperConfig configures template helper exports
type HelperConfig struct {
	// BaseArgsKey names the entry of the template data map holding base
	// arguments. Empty disables base argument inference.
	BaseArgsKey string
	// OnError renders a resolution failure. The default prints nothing.
	OnError func(err error) string
}

// TemplateHelpers exposes message resolution helpers for go-template:
//
//	{{ resolve_message .Notice . }}
//	{{ gettext "Hello %s!" .Name }}
//	{{ ngettext "%(n)s file" "%(n)s files" .Count }}
func TemplateHelpers(r *Resolver, cfg HelperConfig) map[string]any {
	if r == nil {
		r = defaultResolver
	}

	onError := cfg.OnError
	if onError == nil {
		onError = func(error) string { return "" }
	}

	render := func(v Value, base map[string]string) string {
		out, err := r.Resolve(v, base)
		if err != nil {
			return onError(err)
		}
		return out
	}

	return map[string]any{
		"resolve_message": func(msg any, data ...any) string {
			base := baseArgsFrom(cfg.BaseArgsKey, data)
			switch m := msg.(type) {
			case *Message:
				if m == nil {
					return onError(ErrNoVariantMatched)
				}
				return render(m.Value, mergeArgs(base, m.Args))
			case Message:
				return render(m.Value, mergeArgs(base, m.Args))
			case Value:
				return render(m, base)
			}
			v, err := Decode(msg)
			if err != nil {
				return onError(err)
			}
			return render(v, base)
		},
		"gettext": func(msgid string, args ...any) string {
			return render(GetText{MsgID: msgid, Args: helperArgs(args)}, nil)
		},
		"ngettext": func(singular, plural string, n any, args ...any) string {
			count, ok := asUint32(n)
			if !ok {
				return onError(fmt.Errorf("gettext: ngettext count %v is not a valid count", n))
			}
			return render(NGetText{Singular: singular, Plural: plural, N: count, Args: helperArgs(args)}, nil)
		},
	}
}

// helperArgs maps template arguments to an Argument: a single map becomes
// Keyword, anything else Positional.
func helperArgs(args []any) Argument {
	if len(args) == 0 {
		return nil
	}
	if len(args) == 1 {
		if obj, ok := asObject(args[0]); ok {
			out := make(Keyword, len(obj))
			for key, item := range obj {
				out[key] = helperValue(item)
			}
			return out
		}
	}
	out := make(Positional, 0, len(args))
	for _, arg := range args {
		out = append(out, helperValue(arg))
	}
	return out
}

func helperValue(raw any) Value {
	if v, ok := raw.(Value); ok {
		return v
	}
	if v, err := Decode(raw); err == nil {
		return v
	}
	return Text(fmt.Sprint(raw))
}

func baseArgsFrom(key string, data []any) map[string]string {
	if key == "" || len(data) == 0 {
		return nil
	}
	obj, ok := asObject(data[0])
	if !ok {
		return nil
	}
	switch args := obj[key].(type) {
	case map[string]string:
		return args
	case map[string]any:
		out := make(map[string]string, len(args))
		for k, v := range args {
			out[k] = fmt.Sprint(v)
		}
		return out
	}
	return nil
}

// mergeArgs layers the message's own base arguments over the template ones.
func mergeArgs(outer, own map[string]string) map[string]string {
	if len(outer) == 0 {
		return own
	}
	if len(own) == 0 {
		return outer
	}
	out := maps.Clone(outer)
	maps.Copy(out, own)
	return out
}
