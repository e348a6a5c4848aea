package gettext

import (
	"fmt"
	"strings"
)

// LocaleCategory selects the locale facet that governs a DCNGetText lookup.
type LocaleCategory int

const (
	LcCType LocaleCategory = iota
	LcNumeric
	LcTime
	LcCollate
	LcMonetary
	LcMessages
	LcAll
	LcPaper
	LcName
	LcAddress
	LcTelephone
	LcMeasurement
	LcIdentification
)

// localeCategoryNames maps every enumerator to its POSIX name. Catalog
// directories and the wire format both use these names, so the table is the
// only place where enumerators meet their external representation.
var localeCategoryNames = map[LocaleCategory]string{
	LcCType:          "LC_CTYPE",
	LcNumeric:        "LC_NUMERIC",
	LcTime:           "LC_TIME",
	LcCollate:        "LC_COLLATE",
	LcMonetary:       "LC_MONETARY",
	LcMessages:       "LC_MESSAGES",
	LcAll:            "LC_ALL",
	LcPaper:          "LC_PAPER",
	LcName:           "LC_NAME",
	LcAddress:        "LC_ADDRESS",
	LcTelephone:      "LC_TELEPHONE",
	LcMeasurement:    "LC_MEASUREMENT",
	LcIdentification: "LC_IDENTIFICATION",
}

var localeCategoryByName = func() map[string]LocaleCategory {
	out := make(map[string]LocaleCategory, len(localeCategoryNames))
	for category, name := range localeCategoryNames {
		out[name] = category
	}
	return out
}()

// String returns the POSIX name, e.g. "LC_MESSAGES".
func (c LocaleCategory) String() string {
	if name, ok := localeCategoryNames[c]; ok {
		return name
	}
	return fmt.Sprintf("LocaleCategory(%d)", int(c))
}

// Valid reports whether c is one of the declared enumerators.
func (c LocaleCategory) Valid() bool {
	_, ok := localeCategoryNames[c]
	return ok
}

// ParseLocaleCategory accepts "LC_MESSAGES", "lc_messages" or "messages".
func ParseLocaleCategory(raw string) (LocaleCategory, error) {
	name := strings.ToUpper(strings.TrimSpace(raw))
	if !strings.HasPrefix(name, "LC_") {
		name = "LC_" + name
	}
	if category, ok := localeCategoryByName[name]; ok {
		return category, nil
	}
	return 0, fmt.Errorf("gettext: unknown locale category %q", raw)
}

// LocaleCategories returns every category in declaration order.
func LocaleCategories() []LocaleCategory {
	return []LocaleCategory{
		LcCType, LcNumeric, LcTime, LcCollate, LcMonetary, LcMessages, LcAll,
		LcPaper, LcName, LcAddress, LcTelephone, LcMeasurement, LcIdentification,
	}
}
