package gettext

import (
	"fmt"
	"log/slog"
	"time"
)

// Config captures oracle, formatter and renderer setup
type Config struct {
	Languages []string
	Domain    string
	Loader    Loader
	Oracle    Oracle
	Formatter Formatter
	Renderer  DatetimeRenderer
	Fallbacks FallbackResolver
	Hooks     []LookupHook
	Location  *time.Location
	Logger    *slog.Logger
}

// Option mutates Config during construction
type Option func(*Config) error

// NewConfig builds Config via supplied options. When no oracle is given a
// CatalogOracle is built from the loader; without a loader every message is
// left untranslated.
func NewConfig(opts ...Option) (*Config, error) {
	cfg := &Config{}

	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	cfg.normalizeLanguages()

	if cfg.Domain == "" {
		cfg.Domain = DefaultDomain
	}

	if cfg.Fallbacks == nil {
		cfg.Fallbacks = NewStaticFallbackResolver()
	}

	if cfg.Oracle == nil {
		if cfg.Loader != nil {
			// the caller's loader is left as given; the config gets a copy
			// extended with its own languages and fallbacks.
			if fl, ok := cfg.Loader.(*FileLoader); ok && fl != nil {
				fl = fl.clone()
				fl.WithLanguages(missingLanguages(fl.languages, cfg.Languages)...)
				if fl.resolver == nil {
					fl.WithFallbackResolver(cfg.Fallbacks)
				}
				cfg.Loader = fl
			}
			oracle, err := NewCatalogOracleFromLoader(cfg.Loader, WithTextDomain(cfg.Domain))
			if err != nil {
				return nil, err
			}
			cfg.Oracle = oracle
		} else {
			cfg.Oracle = IdentityOracle{}
		}
	}

	if cfg.Formatter == nil {
		cfg.Formatter = PythonFormatter{}
	}

	if cfg.Renderer == nil {
		cfg.Renderer = NewStrftimeRenderer(cfg.Location)
	}

	return cfg, nil
}

// WithLanguage sets the most preferred language
func WithLanguage(lang string) Option {
	return func(c *Config) error {
		if lang == "" {
			return nil
		}
		c.Languages = append([]string{lang}, c.Languages...)
		return nil
	}
}

// WithLanguages registers languages in preference order
func WithLanguages(languages ...string) Option {
	return func(c *Config) error {
		c.Languages = append(c.Languages, languages...)
		return nil
	}
}

// WithDomain sets the text domain used by domain-less lookups
func WithDomain(domain string) Option {
	return func(c *Config) error {
		c.Domain = domain
		return nil
	}
}

func WithLoader(loader Loader) Option {
	return func(c *Config) error {
		c.Loader = loader
		return nil
	}
}

func WithOracle(oracle Oracle) Option {
	return func(c *Config) error {
		c.Oracle = oracle
		return nil
	}
}

func WithFormatter(formatter Formatter) Option {
	return func(c *Config) error {
		c.Formatter = formatter
		return nil
	}
}

func WithRenderer(renderer DatetimeRenderer) Option {
	return func(c *Config) error {
		c.Renderer = renderer
		return nil
	}
}

func WithFallbackResolver(resolver FallbackResolver) Option {
	return func(c *Config) error {
		c.Fallbacks = resolver
		return nil
	}
}

func WithFallback(locale string, fallbacks ...string) Option {
	return func(c *Config) error {
		if locale == "" {
			return nil
		}
		resolver, ok := c.Fallbacks.(*StaticFallbackResolver)
		if !ok {
			if c.Fallbacks != nil {
				return nil
			}
			resolver = NewStaticFallbackResolver()
			c.Fallbacks = resolver
		}
		resolver.Set(locale, fallbacks...)
		return nil
	}
}

// WithLocation renders datetimes in location instead of time.Local
func WithLocation(location *time.Location) Option {
	return func(c *Config) error {
		c.Location = location
		return nil
	}
}

// WithTimezone loads an IANA zone name such as "Europe/Paris"
func WithTimezone(name string) Option {
	return func(c *Config) error {
		if name == "" {
			return nil
		}
		location, err := time.LoadLocation(name)
		if err != nil {
			return fmt.Errorf("gettext: load timezone %q: %w", name, err)
		}
		c.Location = location
		return nil
	}
}

func WithLookupHooks(hooks ...LookupHook) Option {
	return func(c *Config) error {
		for _, hook := range hooks {
			if hook == nil {
				continue
			}
			c.Hooks = append(c.Hooks, hook)
		}
		return nil
	}
}

// WithLogger logs every oracle lookup at debug level
func WithLogger(logger *slog.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// BuildOracle returns the configured oracle wrapped with lookup hooks.
func (cfg *Config) BuildOracle() Oracle {
	if cfg == nil {
		return IdentityOracle{}
	}

	hooks := append([]LookupHook(nil), cfg.Hooks...)
	if cfg.Logger != nil {
		hooks = append(hooks, NewLogHook(cfg.Logger))
	}

	return WrapOracleWithHooks(cfg.Oracle, hooks...)
}

func (cfg *Config) BuildResolver() (*Resolver, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	return NewResolver(cfg.BuildOracle(),
		WithResolverFormatter(cfg.Formatter),
		WithResolverRenderer(cfg.Renderer)), nil
}

func (cfg *Config) normalizeLanguages() {
	seen := make(map[string]struct{}, len(cfg.Languages))
	out := make([]string, 0, len(cfg.Languages))
	for _, lang := range cfg.Languages {
		lang = normalizeLocale(lang)
		if lang == "" {
			continue
		}
		if _, ok := seen[lang]; ok {
			continue
		}
		seen[lang] = struct{}{}
		out = append(out, lang)
	}
	cfg.Languages = out
}

func missingLanguages(have, want []string) []string {
	seen := make(map[string]struct{}, len(have))
	for _, lang := range have {
		seen[normalizeLocale(lang)] = struct{}{}
	}
	var out []string
	for _, lang := range want {
		if _, ok := seen[normalizeLocale(lang)]; ok {
			continue
		}
		out = append(out, lang)
	}
	return out
}
