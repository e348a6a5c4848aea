package gettext

import "fmt"

// Encode converts v into the generic tree understood by Decode, ready to be
// serialized as JSON or YAML.
func Encode(v Value) (any, error) {
	switch node := v.(type) {
	case nil, Unit:
		return nil, nil
	case Text:
		return string(node), nil
	case Integer:
		return int64(node), nil
	case Float:
		return float64(node), nil
	case Bool:
		return bool(node), nil
	case Datetime:
		return map[string]any{"strftime": node.Pattern, "epoch": node.Epoch}, nil
	case Array:
		out := make([]any, 0, len(node))
		for _, item := range node {
			encoded, err := Encode(item)
			if err != nil {
				return nil, err
			}
			out = append(out, encoded)
		}
		return out, nil
	case FormattedText:
		return withArgs(map[string]any{"text": node.Text}, node.Args)
	case GetText:
		return withArgs(map[string]any{"gettext": node.MsgID}, node.Args)
	case NGetText:
		return withArgs(map[string]any{
			"ngettext": map[string]any{"singular": node.Singular, "plural": node.Plural, "n": node.N},
		}, node.Args)
	case PGetText:
		return withArgs(map[string]any{
			"pgettext": map[string]any{"ctx": node.Context, "msgid": node.MsgID},
		}, node.Args)
	case DGetText:
		return withArgs(map[string]any{
			"dgettext": map[string]any{"domain": node.Domain, "msgid": node.MsgID},
		}, node.Args)
	case DNGetText:
		return withArgs(map[string]any{
			"dngettext": map[string]any{
				"domain": node.Domain, "singular": node.Singular, "plural": node.Plural, "n": node.N,
			},
		}, node.Args)
	case NPGetText:
		return withArgs(map[string]any{
			"npgettext": map[string]any{
				"ctx": node.Context, "singular": node.Singular, "plural": node.Plural, "n": node.N,
			},
		}, node.Args)
	case DCNGetText:
		return withArgs(map[string]any{
			"dcngettext": map[string]any{
				"domain":   node.Domain,
				"singular": node.Singular,
				"plural":   node.Plural,
				"n":        node.N,
				"category": node.Category.String(),
			},
		}, node.Args)
	default:
		return nil, fmt.Errorf("%w %T", ErrUnknownValue, v)
	}
}

func withArgs(obj map[string]any, args Argument) (map[string]any, error) {
	switch args := args.(type) {
	case Positional:
		items := make([]any, 0, len(args))
		for _, item := range args {
			encoded, err := Encode(item)
			if err != nil {
				return nil, err
			}
			items = append(items, encoded)
		}
		obj["args"] = items
	case Keyword:
		kwargs := make(map[string]any, len(args))
		for key, item := range args {
			encoded, err := Encode(item)
			if err != nil {
				return nil, err
			}
			kwargs[key] = encoded
		}
		obj["args"] = kwargs
	}
	return obj, nil
}
