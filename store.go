package gettext

import (
	"maps"
)

// Catalog is the lookup surface of a parsed gettext catalog. Both
// *gotext.Po and *gotext.Mo satisfy it.
type Catalog interface {
	Get(str string, vars ...any) string
	GetN(str, plural string, n int, vars ...any) string
	GetC(str, ctx string, vars ...any) string
	GetNC(str, plural string, n int, ctx string, vars ...any) string
	IsTranslated(str string) bool
	IsTranslatedC(str, ctx string) bool
}

// CatalogKey identifies one catalog file of a language, mirroring the
// <lang>/<LC_CATEGORY>/<domain>.mo layout.
type CatalogKey struct {
	Category LocaleCategory
	Domain   string
}

// LanguageCatalogs groups the catalogs found for one language directory.
type LanguageCatalogs struct {
	Language string
	Catalogs map[CatalogKey]Catalog
}

// Catalogs lists languages from most to least preferred.
type Catalogs []LanguageCatalogs

// Loader retrieves the catalogs used to seed a CatalogOracle.
type Loader interface {
	Load() (Catalogs, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Catalogs, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Catalogs, error) {
	return fn()
}

// DefaultDomain is the text domain used by Gettext, NGettext, PGettext and
// NPGettext unless configured otherwise.
const DefaultDomain = "messages"

// CatalogOracle answers lookups from gettext catalogs, trying languages in
// order and falling back to the untranslated input. Read only after
// construction.
type CatalogOracle struct {
	domain    string
	languages Catalogs
}

var _ Oracle = &CatalogOracle{}

// CatalogOracleOption configures a CatalogOracle.
type CatalogOracleOption func(*CatalogOracle)

// WithTextDomain sets the domain used by the domain-less calls.
func WithTextDomain(domain string) CatalogOracleOption {
	return func(o *CatalogOracle) {
		if domain != "" {
			o.domain = domain
		}
	}
}

// NewCatalogOracle builds a snapshot of catalogs. Later changes to the input
// maps are not observed.
func NewCatalogOracle(catalogs Catalogs, opts ...CatalogOracleOption) *CatalogOracle {
	o := &CatalogOracle{domain: DefaultDomain}
	for _, opt := range opts {
		if opt != nil {
			opt(o)
		}
	}

	o.languages = make(Catalogs, 0, len(catalogs))
	for _, lang := range catalogs {
		if len(lang.Catalogs) == 0 {
			continue
		}
		o.languages = append(o.languages, LanguageCatalogs{
			Language: lang.Language,
			Catalogs: maps.Clone(lang.Catalogs),
		})
	}
	return o
}

// NewCatalogOracleFromLoader hydrates a CatalogOracle using the provided loader
func NewCatalogOracleFromLoader(loader Loader, opts ...CatalogOracleOption) (*CatalogOracle, error) {
	if loader == nil {
		return NewCatalogOracle(nil, opts...), nil
	}

	catalogs, err := loader.Load()
	if err != nil {
		return nil, err
	}
	return NewCatalogOracle(catalogs, opts...), nil
}

// Domain returns the default text domain.
func (o *CatalogOracle) Domain() string {
	return o.domain
}

// Languages returns the languages holding at least one catalog.
func (o *CatalogOracle) Languages() []string {
	out := make([]string, 0, len(o.languages))
	for _, lang := range o.languages {
		out = append(out, lang.Language)
	}
	return out
}

func (o *CatalogOracle) Gettext(msgid string) string {
	if o == nil {
		return msgid
	}
	return o.DGettext(o.domain, msgid)
}

func (o *CatalogOracle) NGettext(singular, plural string, n uint32) string {
	if o == nil {
		return pluralFallback(singular, plural, n)
	}
	return o.DNGettext(o.domain, singular, plural, n)
}

func (o *CatalogOracle) PGettext(ctx, msgid string) string {
	if o == nil {
		return msgid
	}
	return o.lookup(CatalogKey{Category: LcMessages, Domain: o.domain}, msgid, func(c Catalog) (string, bool) {
		return c.GetC(msgid, ctx), c.IsTranslatedC(msgid, ctx)
	})
}

func (o *CatalogOracle) DGettext(domain, msgid string) string {
	return o.lookup(CatalogKey{Category: LcMessages, Domain: domain}, msgid, func(c Catalog) (string, bool) {
		return c.Get(msgid), c.IsTranslated(msgid)
	})
}

func (o *CatalogOracle) DNGettext(domain, singular, plural string, n uint32) string {
	return o.DCNGettext(domain, singular, plural, n, LcMessages)
}

func (o *CatalogOracle) NPGettext(ctx, singular, plural string, n uint32) string {
	fallback := pluralFallback(singular, plural, n)
	if o == nil {
		return fallback
	}
	return o.lookup(CatalogKey{Category: LcMessages, Domain: o.domain}, fallback, func(c Catalog) (string, bool) {
		return c.GetNC(singular, plural, int(n), ctx), c.IsTranslatedC(singular, ctx)
	})
}

func (o *CatalogOracle) DCNGettext(domain, singular, plural string, n uint32, category LocaleCategory) string {
	fallback := pluralFallback(singular, plural, n)
	return o.lookup(CatalogKey{Category: category, Domain: domain}, fallback, func(c Catalog) (string, bool) {
		return c.GetN(singular, plural, int(n)), c.IsTranslated(singular)
	})
}

// lookup returns the first translated result, walking languages in
// preference order. A catalog without the entry answers with its own
// plural rule applied to the msgids, so its output is only used when the
// entry is translated.
func (o *CatalogOracle) lookup(key CatalogKey, fallback string, get func(Catalog) (string, bool)) string {
	if o == nil {
		return fallback
	}
	for _, lang := range o.languages {
		catalog, ok := lang.Catalogs[key]
		if !ok || catalog == nil {
			continue
		}
		if out, translated := get(catalog); translated && out != "" {
			return out
		}
	}
	return fallback
}
