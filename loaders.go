package gettext

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"slices"
	"sort"
	"strings"

	"github.com/leonelquinteros/gotext"
)

// FileLoader reads gettext catalogs laid out as
// <root>/<lang>/<LC_CATEGORY>/<domain>.po (or .mo).
type FileLoader struct {
	fsys      fs.FS
	languages []string
	resolver  FallbackResolver
}

// NewFileLoader searches fsys for the given languages, most preferred first.
func NewFileLoader(fsys fs.FS, languages ...string) *FileLoader {
	return &FileLoader{fsys: fsys, languages: append([]string(nil), languages...)}
}

// NewDirLoader is NewFileLoader over a directory on disk.
func NewDirLoader(root string, languages ...string) *FileLoader {
	return NewFileLoader(os.DirFS(root), languages...)
}

// WithFallbackResolver adds configured fallback chains to the searched
// languages.
func (l *FileLoader) WithFallbackResolver(resolver FallbackResolver) *FileLoader {
	if l == nil {
		return l
	}
	l.resolver = resolver
	return l
}

// WithLanguages appends languages to search.
func (l *FileLoader) WithLanguages(languages ...string) *FileLoader {
	if l == nil {
		return l
	}
	l.languages = append(l.languages, languages...)
	return l
}

func (l *FileLoader) clone() *FileLoader {
	out := *l
	out.languages = slices.Clone(l.languages)
	return &out
}

func (l *FileLoader) Load() (Catalogs, error) {
	if l == nil || l.fsys == nil {
		return nil, errors.New("gettext: no catalog filesystem configured")
	}
	if len(l.languages) == 0 {
		return nil, errors.New("gettext: no loader languages configured")
	}

	var out Catalogs
	for _, locale := range languageCandidates(l.languages, l.resolver) {
		for _, dir := range localeDirs(locale) {
			catalogs, err := l.loadLanguageDir(dir)
			if err != nil {
				return nil, err
			}
			if len(catalogs) == 0 {
				continue
			}
			out = append(out, LanguageCatalogs{Language: locale, Catalogs: catalogs})
			break
		}
	}

	if len(out) == 0 {
		return nil, fmt.Errorf("%w for languages %s", ErrMissingCatalog, strings.Join(l.languages, ", "))
	}
	return out, nil
}

// localeDirs lists the directory spellings tried for locale, e.g. "fr_CA"
// then "fr-CA".
func localeDirs(locale string) []string {
	posix := posixLocale(locale)
	if posix == locale {
		return []string{locale}
	}
	return []string{posix, locale}
}

func (l *FileLoader) loadLanguageDir(dir string) (map[CatalogKey]Catalog, error) {
	catalogs := make(map[CatalogKey]Catalog)

	for _, category := range LocaleCategories() {
		categoryDir := path.Join(dir, category.String())
		entries, err := fs.ReadDir(l.fsys, categoryDir)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return nil, fmt.Errorf("gettext: read %s: %w", categoryDir, err)
		}

		names := make([]string, 0, len(entries))
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			names = append(names, entry.Name())
		}
		// .mo sorts after .po, so compiled catalogs win for the same domain
		sort.Strings(names)

		for _, name := range names {
			filePath := path.Join(categoryDir, name)
			catalog, ok, err := l.loadCatalog(filePath)
			if err != nil {
				return nil, err
			}
			if !ok {
				continue
			}
			domain := strings.TrimSuffix(name, path.Ext(name))
			catalogs[CatalogKey{Category: category, Domain: domain}] = catalog
		}
	}

	return catalogs, nil
}

func (l *FileLoader) loadCatalog(filePath string) (Catalog, bool, error) {
	ext := strings.ToLower(path.Ext(filePath))
	if ext != ".po" && ext != ".mo" {
		return nil, false, nil
	}

	data, err := fs.ReadFile(l.fsys, filePath)
	if err != nil {
		return nil, false, fmt.Errorf("gettext: read %s: %w", filePath, err)
	}

	catalog, err := ParseCatalog(ext, data)
	if err != nil {
		return nil, false, fmt.Errorf("gettext: decode %s: %w", filePath, err)
	}
	return catalog, true, nil
}

// ParseCatalog parses a catalog in PO (".po") or MO (".mo") format.
func ParseCatalog(ext string, data []byte) (Catalog, error) {
	switch strings.ToLower(ext) {
	case ".po", "po":
		po := gotext.NewPo()
		po.Parse(data)
		return po, nil
	case ".mo", "mo":
		mo := gotext.NewMo()
		mo.Parse(data)
		return mo, nil
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}
