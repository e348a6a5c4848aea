package gettext

// Oracle looks up localized text with the gettext contract: it never fails
// and returns the singular (n == 1) or plural input verbatim when no
// translation exists.
type Oracle interface {
	Gettext(msgid string) string
	NGettext(singular, plural string, n uint32) string
	PGettext(ctx, msgid string) string
	DGettext(domain, msgid string) string
	DNGettext(domain, singular, plural string, n uint32) string
	NPGettext(ctx, singular, plural string, n uint32) string
	DCNGettext(domain, singular, plural string, n uint32, category LocaleCategory) string
}

// IdentityOracle returns every message untranslated.
type IdentityOracle struct{}

var _ Oracle = IdentityOracle{}

func (IdentityOracle) Gettext(msgid string) string { return msgid }

func (IdentityOracle) NGettext(singular, plural string, n uint32) string {
	return pluralFallback(singular, plural, n)
}

func (IdentityOracle) PGettext(_, msgid string) string { return msgid }

func (IdentityOracle) DGettext(_, msgid string) string { return msgid }

func (IdentityOracle) DNGettext(_, singular, plural string, n uint32) string {
	return pluralFallback(singular, plural, n)
}

func (IdentityOracle) NPGettext(_, singular, plural string, n uint32) string {
	return pluralFallback(singular, plural, n)
}

func (IdentityOracle) DCNGettext(_, singular, plural string, n uint32, _ LocaleCategory) string {
	return pluralFallback(singular, plural, n)
}

func pluralFallback(singular, plural string, n uint32) string {
	if n == 1 {
		return singular
	}
	return plural
}
