package gettext

import (
	"encoding/json"
	"fmt"
	"io/fs"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// contextSeparator joins msgctxt and msgid, as in compiled gettext catalogs.
const contextSeparator = "\x04"

// ContextID is the message ID a BundleOracle uses for msgid under ctx.
func ContextID(ctx, msgid string) string {
	if ctx == "" {
		return msgid
	}
	return ctx + contextSeparator + msgid
}

// BundleOracle answers lookups from go-i18n bundles, one bundle per text
// domain. Message IDs are the gettext msgids (ContextID for contextual
// calls); plural selection follows the CLDR rules go-i18n applies for
// PluralCount. Locale categories have no meaning for bundles and are ignored.
type BundleOracle struct {
	domain     string
	localizers map[string]*i18n.Localizer
}

var _ Oracle = &BundleOracle{}

// BundleOracleOption configures a BundleOracle.
type BundleOracleOption func(*bundleOracleConfig)

type bundleOracleConfig struct {
	domain  string
	bundles map[string]*i18n.Bundle
}

// WithBundleDomain serves domain from bundle.
func WithBundleDomain(domain string, bundle *i18n.Bundle) BundleOracleOption {
	return func(cfg *bundleOracleConfig) {
		if domain == "" || bundle == nil {
			return
		}
		cfg.bundles[domain] = bundle
	}
}

// WithBundleTextDomain sets the domain used by the domain-less calls.
func WithBundleTextDomain(domain string) BundleOracleOption {
	return func(cfg *bundleOracleConfig) {
		if domain != "" {
			cfg.domain = domain
		}
	}
}

// NewBundleOracle serves the default text domain from bundle, localized for
// languages in preference order.
func NewBundleOracle(bundle *i18n.Bundle, languages []string, opts ...BundleOracleOption) *BundleOracle {
	cfg := &bundleOracleConfig{
		domain:  DefaultDomain,
		bundles: make(map[string]*i18n.Bundle),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(cfg)
		}
	}
	if bundle != nil {
		if _, ok := cfg.bundles[cfg.domain]; !ok {
			cfg.bundles[cfg.domain] = bundle
		}
	}

	o := &BundleOracle{
		domain:     cfg.domain,
		localizers: make(map[string]*i18n.Localizer, len(cfg.bundles)),
	}
	for domain, b := range cfg.bundles {
		o.localizers[domain] = i18n.NewLocalizer(b, languages...)
	}
	return o
}

// NewBundle creates a go-i18n bundle able to read TOML, YAML and JSON
// message files, loading every path from fsys.
func NewBundle(defaultLanguage string, fsys fs.FS, paths ...string) (*i18n.Bundle, error) {
	tag, err := language.Parse(defaultLanguage)
	if err != nil {
		return nil, fmt.Errorf("gettext: parse language %q: %w", defaultLanguage, err)
	}

	bundle := i18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("yml", yaml.Unmarshal)
	bundle.RegisterUnmarshalFunc("json", json.Unmarshal)

	for _, p := range paths {
		if _, err := bundle.LoadMessageFileFS(fsys, p); err != nil {
			return nil, fmt.Errorf("gettext: load %s: %w", p, err)
		}
	}
	return bundle, nil
}

func (o *BundleOracle) Gettext(msgid string) string {
	return o.lookup(o.textDomain(), msgid, msgid, nil)
}

func (o *BundleOracle) NGettext(singular, plural string, n uint32) string {
	return o.lookup(o.textDomain(), singular, pluralFallback(singular, plural, n), &n)
}

func (o *BundleOracle) PGettext(ctx, msgid string) string {
	return o.lookup(o.textDomain(), ContextID(ctx, msgid), msgid, nil)
}

func (o *BundleOracle) DGettext(domain, msgid string) string {
	return o.lookup(domain, msgid, msgid, nil)
}

func (o *BundleOracle) DNGettext(domain, singular, plural string, n uint32) string {
	return o.lookup(domain, singular, pluralFallback(singular, plural, n), &n)
}

func (o *BundleOracle) NPGettext(ctx, singular, plural string, n uint32) string {
	return o.lookup(o.textDomain(), ContextID(ctx, singular), pluralFallback(singular, plural, n), &n)
}

func (o *BundleOracle) DCNGettext(domain, singular, plural string, n uint32, _ LocaleCategory) string {
	return o.DNGettext(domain, singular, plural, n)
}

// textDomain is safe on a nil oracle, which answers every lookup with the
// untranslated input.
func (o *BundleOracle) textDomain() string {
	if o == nil {
		return DefaultDomain
	}
	return o.domain
}

func (o *BundleOracle) lookup(domain, id, fallback string, n *uint32) string {
	if o == nil {
		return fallback
	}
	localizer, ok := o.localizers[domain]
	if !ok {
		return fallback
	}

	cfg := &i18n.LocalizeConfig{MessageID: id}
	if n != nil {
		cfg.PluralCount = int(*n)
	}

	out, err := localizer.Localize(cfg)
	if err != nil || out == "" {
		return fallback
	}
	return out
}
