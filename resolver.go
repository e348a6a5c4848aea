package gettext

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Resolver turns a Value tree into its final string. It is immutable after
// construction; concurrent calls are safe as long as the trees and base maps
// passed in are not mutated concurrently.
type Resolver struct {
	oracle    Oracle
	formatter Formatter
	renderer  DatetimeRenderer
}

// ResolverOption configures a Resolver during construction.
type ResolverOption func(*Resolver)

// WithResolverFormatter overrides the placeholder formatter.
func WithResolverFormatter(formatter Formatter) ResolverOption {
	return func(r *Resolver) {
		if formatter != nil {
			r.formatter = formatter
		}
	}
}

// WithResolverRenderer overrides the datetime renderer.
func WithResolverRenderer(renderer DatetimeRenderer) ResolverOption {
	return func(r *Resolver) {
		if renderer != nil {
			r.renderer = renderer
		}
	}
}

// NewResolver builds a Resolver on top of oracle. A nil oracle leaves every
// message untranslated.
func NewResolver(oracle Oracle, opts ...ResolverOption) *Resolver {
	if oracle == nil {
		oracle = IdentityOracle{}
	}

	r := &Resolver{
		oracle:    oracle,
		formatter: PythonFormatter{},
		renderer:  NewStrftimeRenderer(nil),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

var defaultResolver = NewResolver(IdentityOracle{})

// Resolve renders v with the default resolver: no translation, Python style
// placeholders and strftime in the local timezone.
func Resolve(v Value, base map[string]string) (string, error) {
	return defaultResolver.Resolve(v, base)
}

// Oracle returns the translation oracle backing r.
func (r *Resolver) Oracle() Oracle {
	return r.oracle
}

// Resolve renders v. base supplies placeholder values that the tree itself
// does not carry; node local keyword arguments take precedence over it.
// The first failing child aborts the whole call.
func (r *Resolver) Resolve(v Value, base map[string]string) (string, error) {
	switch node := v.(type) {
	case nil:
		return r.oracle.Gettext("n/a"), nil
	case Text:
		return string(node), nil
	case Integer:
		return strconv.FormatInt(int64(node), 10), nil
	case Float:
		return formatFloat(float64(node)), nil
	case Bool:
		if node {
			return r.oracle.Gettext("yes"), nil
		}
		return r.oracle.Gettext("no"), nil
	case Unit:
		return r.oracle.Gettext("n/a"), nil
	case Datetime:
		return r.renderer.Render(node.Pattern, node.Epoch), nil
	case Array:
		return r.join(node, base)
	case FormattedText:
		return r.substitute(node.Text, node.Args, nil, base)
	case GetText:
		return r.substitute(r.oracle.Gettext(node.MsgID), node.Args, nil, base)
	case NGetText:
		template := r.oracle.NGettext(node.Singular, node.Plural, node.N)
		return r.substitute(template, node.Args, countBinding(node.N), base)
	case PGetText:
		return r.substitute(r.oracle.PGettext(node.Context, node.MsgID), node.Args, nil, base)
	case DGetText:
		return r.substitute(r.oracle.DGettext(node.Domain, node.MsgID), node.Args, nil, base)
	case DNGetText:
		template := r.oracle.DNGettext(node.Domain, node.Singular, node.Plural, node.N)
		return r.substitute(template, node.Args, countBinding(node.N), base)
	case NPGetText:
		template := r.oracle.NPGettext(node.Context, node.Singular, node.Plural, node.N)
		return r.substitute(template, node.Args, countBinding(node.N), base)
	case DCNGetText:
		template := r.oracle.DCNGettext(node.Domain, node.Singular, node.Plural, node.N, node.Category)
		return r.substitute(template, node.Args, countBinding(node.N), base)
	default:
		return "", fmt.Errorf("%w %T", ErrUnknownValue, v)
	}
}

func (r *Resolver) join(items Array, base map[string]string) (string, error) {
	if len(items) == 0 {
		return "", ErrMissingJoinSeparator
	}

	sep, err := r.Resolve(items[0], base)
	if err != nil {
		return "", err
	}

	parts := make([]string, 0, len(items)-1)
	for _, item := range items[1:] {
		part, err := r.Resolve(item, base)
		if err != nil {
			return "", err
		}
		parts = append(parts, part)
	}
	return strings.Join(parts, sep), nil
}

// countBinding is the implicit "n" injected for plural calls. Only keyword
// lookups see it.
func countBinding(n uint32) *string {
	s := strconv.FormatUint(uint64(n), 10)
	return &s
}

func formatFloat(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "NaN"
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
