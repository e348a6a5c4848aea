package gettext

import (
	"testing"
	"testing/fstest"

	"github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func newFrenchBundle(t *testing.T) *i18n.Bundle {
	t.Helper()

	bundle := i18n.NewBundle(language.English)
	require.NoError(t, bundle.AddMessages(language.French,
		&i18n.Message{ID: "Hello!", Other: "Bonjour !"},
		&i18n.Message{ID: "%(n)s element", One: "%(n)s élément", Other: "%(n)s éléments"},
		&i18n.Message{ID: ContextID("menu", "File"), Other: "Fichier"},
		&i18n.Message{ID: ContextID("menu", "%(n)s file"), One: "%(n)s fichier", Other: "%(n)s fichiers"},
	))
	return bundle
}

func TestBundleOracleLookups(t *testing.T) {
	t.Parallel()

	mail := i18n.NewBundle(language.English)
	require.NoError(t, mail.AddMessages(language.French,
		&i18n.Message{ID: "Inbox", Other: "Boîte de réception"},
		&i18n.Message{ID: "%(n)s message", One: "%(n)s message", Other: "%(n)s messages reçus"},
	))

	oracle := NewBundleOracle(newFrenchBundle(t), []string{"fr"}, WithBundleDomain("mail", mail))

	require.Equal(t, "Bonjour !", oracle.Gettext("Hello!"))
	require.Equal(t, "Missing", oracle.Gettext("Missing"))
	require.Equal(t, "%(n)s élément", oracle.NGettext("%(n)s element", "%(n)s elements", 1))
	require.Equal(t, "%(n)s éléments", oracle.NGettext("%(n)s element", "%(n)s elements", 2))
	require.Equal(t, "b", oracle.NGettext("a", "b", 2))
	require.Equal(t, "Fichier", oracle.PGettext("menu", "File"))
	require.Equal(t, "File", oracle.PGettext("toolbar", "File"))
	require.Equal(t, "%(n)s fichiers", oracle.NPGettext("menu", "%(n)s file", "%(n)s files", 3))
	require.Equal(t, "Boîte de réception", oracle.DGettext("mail", "Inbox"))
	require.Equal(t, "Inbox", oracle.DGettext("nope", "Inbox"))
	require.Equal(t, "%(n)s messages reçus", oracle.DNGettext("mail", "%(n)s message", "%(n)s messages", 4))
	require.Equal(t, "%(n)s message", oracle.DCNGettext("mail", "%(n)s message", "%(n)s messages", 1, LcTime))
}

func TestBundleOracleTextDomain(t *testing.T) {
	t.Parallel()

	oracle := NewBundleOracle(newFrenchBundle(t), []string{"fr"}, WithBundleTextDomain("ui"))
	require.Equal(t, "Bonjour !", oracle.Gettext("Hello!"))
	require.Equal(t, "Bonjour !", oracle.DGettext("ui", "Hello!"))
	require.Equal(t, "Hello!", oracle.DGettext(DefaultDomain, "Hello!"))

	var nilOracle *BundleOracle
	require.Equal(t, "x", nilOracle.Gettext("x"))
}

func TestNewBundleFromFiles(t *testing.T) {
	t.Parallel()

	fsys := fstest.MapFS{
		"locales/active.fr.toml": {Data: []byte(`"Hello!" = "Bonjour !"
"Hello %(name)s!" = "Bonjour %(name)s !"
`)},
		"locales/active.de.yaml": {Data: []byte(`"Hello!": "Hallo!"
`)},
	}

	bundle, err := NewBundle("en", fsys, "locales/active.fr.toml", "locales/active.de.yaml")
	require.NoError(t, err)

	r := NewResolver(NewBundleOracle(bundle, []string{"fr-CA", "fr"}))
	got, err := r.Resolve(GetText{MsgID: "Hello %(name)s!", Args: Keyword{"name": Text("Grace")}}, nil)
	require.NoError(t, err)
	require.Equal(t, "Bonjour Grace !", got)

	de := NewBundleOracle(bundle, []string{"de"})
	require.Equal(t, "Hallo!", de.Gettext("Hello!"))

	_, err = NewBundle("not a tag!", fsys)
	require.ErrorContains(t, err, `gettext: parse language "not a tag!"`)

	_, err = NewBundle("en", fsys, "locales/missing.fr.toml")
	require.ErrorContains(t, err, "gettext: load locales/missing.fr.toml")
}

func TestContextID(t *testing.T) {
	t.Parallel()

	require.Equal(t, "File", ContextID("", "File"))
	require.Equal(t, "menu\x04File", ContextID("menu", "File"))
}

func TestBundleOracleNilReceiver(t *testing.T) {
	t.Parallel()

	var oracle *BundleOracle
	require.Equal(t, "m", oracle.Gettext("m"))
	require.Equal(t, "p", oracle.NGettext("s", "p", 2))
	require.Equal(t, "m", oracle.PGettext("c", "m"))
	require.Equal(t, "m", oracle.DGettext("d", "m"))
	require.Equal(t, "s", oracle.DNGettext("d", "s", "p", 1))
	require.Equal(t, "p", oracle.NPGettext("c", "s", "p", 0))
	require.Equal(t, "p", oracle.DCNGettext("d", "s", "p", 5, LcTime))

	got, err := NewResolver(oracle).Resolve(NGetText{Singular: "%(n)s s", Plural: "%(n)s p", N: 3}, nil)
	require.NoError(t, err)
	require.Equal(t, "3 p", got)
}
