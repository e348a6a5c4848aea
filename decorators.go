package gettext

import (
	"context"
	"log/slog"
)

// LookupCall names the oracle entry point of a lookup.
type LookupCall string

const (
	CallGettext    LookupCall = "gettext"
	CallNGettext   LookupCall = "ngettext"
	CallPGettext   LookupCall = "pgettext"
	CallDGettext   LookupCall = "dgettext"
	CallDNGettext  LookupCall = "dngettext"
	CallNPGettext  LookupCall = "npgettext"
	CallDCNGettext LookupCall = "dcngettext"
)

type LookupHook interface {
	BeforeLookup(ctx *LookupHookContext)
	AfterLookup(ctx *LookupHookContext)
}

// LookupHookContext describes one oracle lookup. Before hooks may rewrite
// the inputs; after hooks may rewrite Result.
type LookupHookContext struct {
	Call     LookupCall
	Domain   string
	Context  string
	MsgID    string
	Plural   string
	N        uint32
	Category LocaleCategory
	Result   string
	Metadata map[string]any
}

// IsPlural reports whether the lookup carries a count.
func (ctx *LookupHookContext) IsPlural() bool {
	switch ctx.Call {
	case CallNGettext, CallDNGettext, CallNPGettext, CallDCNGettext:
		return true
	}
	return false
}

// Untranslated reports whether Result is the gettext fallback for the
// inputs, which usually means the catalog has no entry.
func (ctx *LookupHookContext) Untranslated() bool {
	if ctx.IsPlural() {
		return ctx.Result == pluralFallback(ctx.MsgID, ctx.Plural, ctx.N)
	}
	return ctx.Result == ctx.MsgID
}

func (ctx *LookupHookContext) SetMetadata(key string, value any) {
	if ctx == nil || key == "" {
		return
	}
	if ctx.Metadata == nil {
		ctx.Metadata = make(map[string]any)
	}
	ctx.Metadata[key] = value
}

func (ctx *LookupHookContext) MetadataValue(key string) (any, bool) {
	if ctx == nil || ctx.Metadata == nil {
		return nil, false
	}
	val, ok := ctx.Metadata[key]
	return val, ok
}

type LookupHookFuncs struct {
	Before func(ctx *LookupHookContext)
	After  func(ctx *LookupHookContext)
}

func (h LookupHookFuncs) BeforeLookup(ctx *LookupHookContext) {
	if h.Before != nil {
		h.Before(ctx)
	}
}

func (h LookupHookFuncs) AfterLookup(ctx *LookupHookContext) {
	if h.After != nil {
		h.After(ctx)
	}
}

// NewLogHook logs every lookup at debug level.
func NewLogHook(logger *slog.Logger) LookupHook {
	if logger == nil {
		logger = slog.Default()
	}
	return LookupHookFuncs{
		After: func(ctx *LookupHookContext) {
			attrs := []slog.Attr{
				slog.String("call", string(ctx.Call)),
				slog.String("msgid", ctx.MsgID),
				slog.Bool("untranslated", ctx.Untranslated()),
			}
			if ctx.Domain != "" {
				attrs = append(attrs, slog.String("domain", ctx.Domain))
			}
			if ctx.Context != "" {
				attrs = append(attrs, slog.String("context", ctx.Context))
			}
			if ctx.IsPlural() {
				attrs = append(attrs, slog.Uint64("n", uint64(ctx.N)))
			}
			if ctx.Call == CallDCNGettext {
				attrs = append(attrs, slog.String("category", ctx.Category.String()))
			}
			logger.LogAttrs(context.Background(), slog.LevelDebug, "gettext lookup", attrs...)
		},
	}
}

var _ Oracle = &HookedOracle{}

type HookedOracle struct {
	next  Oracle
	hooks []LookupHook
}

func WrapOracleWithHooks(next Oracle, hooks ...LookupHook) Oracle {
	if next == nil || len(hooks) == 0 {
		return next
	}

	filtered := make([]LookupHook, 0, len(hooks))
	for _, hook := range hooks {
		if hook == nil {
			continue
		}
		filtered = append(filtered, hook)
	}

	if len(filtered) == 0 {
		return next
	}

	return &HookedOracle{next: next, hooks: filtered}
}

func (o *HookedOracle) Gettext(msgid string) string {
	return o.run(&LookupHookContext{Call: CallGettext, MsgID: msgid})
}

func (o *HookedOracle) NGettext(singular, plural string, n uint32) string {
	return o.run(&LookupHookContext{Call: CallNGettext, MsgID: singular, Plural: plural, N: n})
}

func (o *HookedOracle) PGettext(ctx, msgid string) string {
	return o.run(&LookupHookContext{Call: CallPGettext, Context: ctx, MsgID: msgid})
}

func (o *HookedOracle) DGettext(domain, msgid string) string {
	return o.run(&LookupHookContext{Call: CallDGettext, Domain: domain, MsgID: msgid})
}

func (o *HookedOracle) DNGettext(domain, singular, plural string, n uint32) string {
	return o.run(&LookupHookContext{Call: CallDNGettext, Domain: domain, MsgID: singular, Plural: plural, N: n})
}

func (o *HookedOracle) NPGettext(ctx, singular, plural string, n uint32) string {
	return o.run(&LookupHookContext{Call: CallNPGettext, Context: ctx, MsgID: singular, Plural: plural, N: n})
}

func (o *HookedOracle) DCNGettext(domain, singular, plural string, n uint32, category LocaleCategory) string {
	return o.run(&LookupHookContext{
		Call:     CallDCNGettext,
		Domain:   domain,
		MsgID:    singular,
		Plural:   plural,
		N:        n,
		Category: category,
	})
}

func (o *HookedOracle) run(ctx *LookupHookContext) string {
	for _, hook := range o.hooks {
		hook.BeforeLookup(ctx)
	}

	ctx.Result = o.dispatch(ctx)

	for _, hook := range o.hooks {
		hook.AfterLookup(ctx)
	}
	return ctx.Result
}

func (o *HookedOracle) dispatch(ctx *LookupHookContext) string {
	switch ctx.Call {
	case CallGettext:
		return o.next.Gettext(ctx.MsgID)
	case CallNGettext:
		return o.next.NGettext(ctx.MsgID, ctx.Plural, ctx.N)
	case CallPGettext:
		return o.next.PGettext(ctx.Context, ctx.MsgID)
	case CallDGettext:
		return o.next.DGettext(ctx.Domain, ctx.MsgID)
	case CallDNGettext:
		return o.next.DNGettext(ctx.Domain, ctx.MsgID, ctx.Plural, ctx.N)
	case CallNPGettext:
		return o.next.NPGettext(ctx.Context, ctx.MsgID, ctx.Plural, ctx.N)
	default:
		return o.next.DCNGettext(ctx.Domain, ctx.MsgID, ctx.Plural, ctx.N, ctx.Category)
	}
}
