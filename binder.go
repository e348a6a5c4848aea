package gettext

import (
	"maps"
	"slices"
)

// substitute binds args (resolving nested values against base first) and
// renders template through the formatter. count, when non-nil, is added to
// keyword lookups under "n"; positional arguments never see it.
func (r *Resolver) substitute(template string, args Argument, count *string, base map[string]string) (string, error) {
	switch args := args.(type) {
	case Positional:
		values := make([]string, 0, len(args))
		for _, arg := range args {
			value, err := r.Resolve(arg, base)
			if err != nil {
				return "", err
			}
			values = append(values, value)
		}
		return wrapFormat(r.formatter.FormatPositional(template, values))

	case Keyword:
		local := make(map[string]string, len(args)+1)
		if count != nil {
			local["n"] = *count
		}
		// sorted so that the reported error does not depend on map order
		for _, key := range slices.Sorted(maps.Keys(args)) {
			value, err := r.Resolve(args[key], base)
			if err != nil {
				return "", err
			}
			local[key] = value
		}
		return wrapFormat(r.formatter.FormatNamed(template, Overlay{Local: local, Base: base}))

	default:
		var local map[string]string
		if count != nil {
			local = map[string]string{"n": *count}
		}
		return wrapFormat(r.formatter.FormatNamed(template, Overlay{Local: local, Base: base}))
	}
}

func wrapFormat(out string, err error) (string, error) {
	if err == nil {
		return out, nil
	}
	if formatErr, ok := err.(*FormatError); ok {
		return "", formatErr
	}
	return "", &FormatError{Diagnostic: err.Error()}
}
