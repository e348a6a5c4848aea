package gettext

// Lookup resolves named placeholder values.
type Lookup interface {
	Lookup(key string) (string, bool)
}

// MapLookup adapts a plain map to Lookup.
type MapLookup map[string]string

func (m MapLookup) Lookup(key string) (string, bool) {
	value, ok := m[key]
	return value, ok
}

// Overlay layers a node local mapping over the caller supplied base mapping.
// Local always wins, including when both define the same key.
type Overlay struct {
	Local map[string]string
	Base  map[string]string
}

var _ Lookup = Overlay{}

func (o Overlay) Lookup(key string) (string, bool) {
	if value, ok := o.Local[key]; ok {
		return value, true
	}
	value, ok := o.Base[key]
	return value, ok
}
