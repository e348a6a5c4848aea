package gettext

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

const frMessagesPO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Language: fr\n"
"Plural-Forms: nplurals=2; plural=(n > 1);\n"

msgid "Hello!"
msgstr "Bonjour !"

msgid "yes"
msgstr "oui"

msgid "Hello %(name)s!"
msgstr "Bonjour %(name)s !"

msgid "%(n)s element"
msgid_plural "%(n)s elements"
msgstr[0] "%(n)s élément"
msgstr[1] "%(n)s éléments"

msgctxt "menu"
msgid "File"
msgstr "Fichier"

msgctxt "menu"
msgid "%(n)s file"
msgid_plural "%(n)s files"
msgstr[0] "%(n)s fichier"
msgstr[1] "%(n)s fichiers"
`

const frMailPO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Plural-Forms: nplurals=2; plural=(n > 1);\n"

msgid "Inbox"
msgstr "Boîte de réception"

msgid "%(n)s message"
msgid_plural "%(n)s messages"
msgstr[0] "%(n)s message"
msgstr[1] "%(n)s messages reçus"
`

const frClockPO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"
"Plural-Forms: nplurals=2; plural=(n > 1);\n"

msgid "%(n)s hour"
msgid_plural "%(n)s hours"
msgstr[0] "%(n)s heure"
msgstr[1] "%(n)s heures"
`

const frCAMessagesPO = `msgid ""
msgstr ""
"Content-Type: text/plain; charset=UTF-8\n"

msgid "Hello!"
msgstr "Allô !"
`

func catalogFS() fstest.MapFS {
	return fstest.MapFS{
		"fr/LC_MESSAGES/messages.po": {Data: []byte(frMessagesPO)},
		"fr/LC_MESSAGES/mail.po":     {Data: []byte(frMailPO)},
		"fr/LC_MESSAGES/README.txt":  {Data: []byte("not a catalog")},
		"fr/LC_TIME/clock.po":        {Data: []byte(frClockPO)},
		"fr_CA/LC_MESSAGES/messages.po": {
			Data: []byte(frCAMessagesPO),
		},
	}
}

func newTestCatalogOracle(t *testing.T, languages ...string) *CatalogOracle {
	t.Helper()
	oracle, err := NewCatalogOracleFromLoader(NewFileLoader(catalogFS(), languages...))
	require.NoError(t, err)
	return oracle
}

func TestCatalogOracleLookups(t *testing.T) {
	t.Parallel()

	oracle := newTestCatalogOracle(t, "fr")
	require.Equal(t, []string{"fr"}, oracle.Languages())
	require.Equal(t, DefaultDomain, oracle.Domain())

	require.Equal(t, "Bonjour !", oracle.Gettext("Hello!"))
	require.Equal(t, "Untranslated", oracle.Gettext("Untranslated"))
	require.Equal(t, "%(n)s élément", oracle.NGettext("%(n)s element", "%(n)s elements", 1))
	require.Equal(t, "%(n)s éléments", oracle.NGettext("%(n)s element", "%(n)s elements", 5))
	require.Equal(t, "Fichier", oracle.PGettext("menu", "File"))
	require.Equal(t, "File", oracle.PGettext("toolbar", "File"))
	require.Equal(t, "%(n)s fichiers", oracle.NPGettext("menu", "%(n)s file", "%(n)s files", 2))
	require.Equal(t, "Boîte de réception", oracle.DGettext("mail", "Inbox"))
	require.Equal(t, "Inbox", oracle.DGettext("unknown", "Inbox"))
	require.Equal(t, "%(n)s messages reçus", oracle.DNGettext("mail", "%(n)s message", "%(n)s messages", 3))
	require.Equal(t, "%(n)s heure", oracle.DCNGettext("clock", "%(n)s hour", "%(n)s hours", 1, LcTime))
	require.Equal(t, "%(n)s hours", oracle.DCNGettext("clock", "%(n)s hour", "%(n)s hours", 2, LcMessages))
	require.Equal(t, "%(n)s things", oracle.NGettext("%(n)s thing", "%(n)s things", 0))
}

func TestCatalogOracleLanguageOrder(t *testing.T) {
	t.Parallel()

	oracle := newTestCatalogOracle(t, "fr_CA")
	require.Equal(t, []string{"fr-CA", "fr"}, oracle.Languages())

	require.Equal(t, "Allô !", oracle.Gettext("Hello!"))
	require.Equal(t, "oui", oracle.Gettext("yes"))
}

func TestCatalogOracleWithTextDomain(t *testing.T) {
	t.Parallel()

	oracle, err := NewCatalogOracleFromLoader(NewFileLoader(catalogFS(), "fr"), WithTextDomain("mail"))
	require.NoError(t, err)
	require.Equal(t, "mail", oracle.Domain())
	require.Equal(t, "Boîte de réception", oracle.Gettext("Inbox"))
	require.Equal(t, "Hello!", oracle.Gettext("Hello!"))
}

func TestCatalogOracleSnapshot(t *testing.T) {
	t.Parallel()

	catalog, err := ParseCatalog(".po", []byte(frMessagesPO))
	require.NoError(t, err)

	catalogs := map[CatalogKey]Catalog{{Category: LcMessages, Domain: DefaultDomain}: catalog}
	oracle := NewCatalogOracle(Catalogs{
		{Language: "fr", Catalogs: catalogs},
		{Language: "empty"},
	})
	delete(catalogs, CatalogKey{Category: LcMessages, Domain: DefaultDomain})

	require.Equal(t, []string{"fr"}, oracle.Languages())
	require.Equal(t, "Bonjour !", oracle.Gettext("Hello!"))
}

func TestCatalogOracleNilLoader(t *testing.T) {
	t.Parallel()

	oracle, err := NewCatalogOracleFromLoader(nil)
	require.NoError(t, err)
	require.Empty(t, oracle.Languages())
	require.Equal(t, "b", oracle.NGettext("a", "b", 2))

	var nilOracle *CatalogOracle
	require.Equal(t, "x", nilOracle.DGettext("d", "x"))
}

func TestResolveWithCatalogOracle(t *testing.T) {
	t.Parallel()

	r := NewResolver(newTestCatalogOracle(t, "fr"))

	got, err := r.Resolve(Array{
		Text(" | "),
		GetText{MsgID: "Hello %(name)s!", Args: Keyword{"name": Text("Grace")}},
		NGetText{Singular: "%(n)s element", Plural: "%(n)s elements", N: 1},
		DNGetText{Domain: "mail", Singular: "%(n)s message", Plural: "%(n)s messages", N: 4},
		Bool(true),
	}, nil)
	require.NoError(t, err)
	require.Equal(t, "Bonjour Grace ! | 1 élément | 4 messages reçus | oui", got)
}

func TestCatalogOracleUntranslatedPluralFallback(t *testing.T) {
	t.Parallel()

	oracle := newTestCatalogOracle(t, "fr")

	for _, tt := range []struct {
		n    uint32
		want string
	}{
		{0, "%(n)s things"},
		{1, "%(n)s thing"},
		{2, "%(n)s things"},
	} {
		require.Equal(t, tt.want, oracle.NGettext("%(n)s thing", "%(n)s things", tt.n))
		require.Equal(t, tt.want, oracle.NPGettext("menu", "%(n)s thing", "%(n)s things", tt.n))
		require.Equal(t, tt.want, oracle.DNGettext("mail", "%(n)s thing", "%(n)s things", tt.n))
		require.Equal(t, tt.want, oracle.DCNGettext("clock", "%(n)s thing", "%(n)s things", tt.n, LcTime))
	}

	// translated entries still follow the catalog's own plural rule
	require.Equal(t, "%(n)s élément", oracle.NGettext("%(n)s element", "%(n)s elements", 0))
}

func TestCatalogOracleNilReceiver(t *testing.T) {
	t.Parallel()

	var oracle *CatalogOracle
	require.Equal(t, "m", oracle.Gettext("m"))
	require.Equal(t, "p", oracle.NGettext("s", "p", 2))
	require.Equal(t, "m", oracle.PGettext("c", "m"))
	require.Equal(t, "m", oracle.DGettext("d", "m"))
	require.Equal(t, "s", oracle.DNGettext("d", "s", "p", 1))
	require.Equal(t, "p", oracle.NPGettext("c", "s", "p", 0))
	require.Equal(t, "p", oracle.DCNGettext("d", "s", "p", 5, LcTime))
}
