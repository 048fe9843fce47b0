// Package labels translates user facing names of tile types and cache keys.
package labels

import (
	"go.eeva.app/hub/internal/core/domain"
	"golang.org/x/text/feature/plural"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

var supported = []language.Tag{language.English, language.Spanish}

var (
	matcher = language.NewMatcher(supported)
	entries = buildCatalog()
)

// Labels renders names in one language.
type Labels struct {
	tag     language.Tag
	printer *message.Printer
}

// New returns labels for the supported language closest to locale. Unknown or
// malformed locales fall back to English.
func New(locale string) *Labels {
	tag := language.English
	if parsed, err := language.Parse(locale); err == nil {
		_, idx, _ := matcher.Match(parsed)
		tag = supported[idx]
	}
	return &Labels{
		tag:     tag,
		printer: message.NewPrinter(tag, message.Catalog(entries)),
	}
}

// Tag is the language the labels are rendered in.
func (l *Labels) Tag() language.Tag { return l.tag }

// TileType names a tile type.
func (l *Labels) TileType(t domain.TileType) string {
	return l.printer.Sprintf("tile." + t.String())
}

// CacheKey names the collection behind a cache key.
func (l *Labels) CacheKey(k domain.CacheKey) string {
	return l.printer.Sprintf("key." + k.String())
}

// Count renders "n items" with the plural form of the language.
func (l *Labels) Count(n int) string {
	return l.printer.Sprintf("%d items", n)
}

// Refreshing is shown while a revalidation is in flight.
func (l *Labels) Refreshing() string {
	return l.printer.Sprintf("refreshing")
}

// NeverFetched is shown for keys that have not been fetched yet.
func (l *Labels) NeverFetched() string {
	return l.printer.Sprintf("never fetched")
}

func buildCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))

	strs := map[string][2]string{
		"tile.space":     {"Space", "Espacio"},
		"tile.appliance": {"Appliance", "Electrodoméstico"},
		"tile.utility":   {"Utility", "Suministro"},
		"tile.unknown":   {"Other", "Otro"},
		"key.tiles":      {"Tiles", "Elementos"},
		"key.contacts":   {"Contacts", "Contactos"},
		"key.providers":  {"Providers", "Proveedores"},
		"key.notes":      {"Notes", "Notas"},
		"key.tasks":      {"Tasks", "Tareas"},
		"key.events":     {"Events", "Eventos"},
		"refreshing":     {"refreshing", "actualizando"},
		"never fetched":  {"never fetched", "sin datos"},
	}
	for key, v := range strs {
		_ = b.SetString(language.English, key, v[0])
		_ = b.SetString(language.Spanish, key, v[1])
	}

	_ = b.Set(language.English, "%d items", plural.Selectf(1, "%d",
		"=0", "no items",
		plural.One, "%[1]d item",
		plural.Other, "%[1]d items",
	))
	_ = b.Set(language.Spanish, "%d items", plural.Selectf(1, "%d",
		"=0", "sin elementos",
		plural.One, "%[1]d elemento",
		plural.Other, "%[1]d elementos",
	))
	return b
}
