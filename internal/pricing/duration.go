package pricing

import (
	"fmt"
	"math"

	"github.com/samber/lo"

	"opeec-backend/internal/domain"
)

// CatalogLookup finds duration catalog entries. Implementations must not block;
// callers load the catalog before resolving.
type CatalogLookup interface {
	CatalogByID(id string) (*domain.DurationCatalogEntry, bool)
	CatalogByName(name domain.CatalogName) (*domain.DurationCatalogEntry, bool)
}

// StaticCatalog is an in-memory CatalogLookup over a loaded set of entries.
type StaticCatalog struct {
	byID   map[string]*domain.DurationCatalogEntry
	byName map[domain.CatalogName]*domain.DurationCatalogEntry
}

func NewStaticCatalog(entries []domain.DurationCatalogEntry) *StaticCatalog {
	c := &StaticCatalog{
		byID:   make(map[string]*domain.DurationCatalogEntry, len(entries)),
		byName: make(map[domain.CatalogName]*domain.DurationCatalogEntry, len(entries)),
	}
	for i := range entries {
		e := &entries[i]
		c.byID[e.ID] = e
		c.byName[e.Name] = e
	}
	return c
}

func (c *StaticCatalog) CatalogByID(id string) (*domain.DurationCatalogEntry, bool) {
	e, ok := c.byID[id]
	return e, ok
}

func (c *StaticCatalog) CatalogByName(name domain.CatalogName) (*domain.DurationCatalogEntry, bool) {
	e, ok := c.byName[name]
	return e, ok
}

// Resolve turns a duration reference into a concrete count and label. name is
// the catalog a legacy pair is matched against. It never fails: anything that
// cannot be resolved yields defaultValue.
func Resolve(ref domain.DurationReference, catalog CatalogLookup, name domain.CatalogName, defaultValue int) domain.ResolvedDuration {
	switch ref.Kind() {
	case domain.ReferenceDays:
		days, _ := ref.Days()
		return canonical(days)

	case domain.ReferenceCatalog:
		pointer, _ := ref.Pointer()
		if entry, ok := lookupByID(catalog, pointer.DropdownID); ok {
			return fromCatalog(entry, pointer.SelectedValue)
		}
		if legacy, ok := ref.Legacy(); ok {
			return resolveLegacy(legacy, catalog, name, defaultValue)
		}
		return canonical(defaultValue)

	case domain.ReferenceLegacy:
		legacy, _ := ref.Legacy()
		return resolveLegacy(legacy, catalog, name, defaultValue)

	default:
		return canonical(defaultValue)
	}
}

func canonical(n int) domain.ResolvedDuration {
	return domain.ResolvedDuration{Type: "", Count: n, Label: fmt.Sprintf("%d", n)}
}

func fromCatalog(entry *domain.DurationCatalogEntry, selected int) domain.ResolvedDuration {
	resolved := domain.ResolvedDuration{
		Type:  entry.Unit.Singular(),
		Count: selected,
		Label: fmt.Sprintf("%d %s", selected, entry.Unit),
	}
	if opt, ok := lo.Find(entry.Options, func(o domain.DurationOption) bool { return o.Value == selected }); ok {
		resolved.Label = opt.Label
	}
	return resolved
}

func resolveLegacy(legacy domain.LegacyDuration, catalog CatalogLookup, name domain.CatalogName, defaultValue int) domain.ResolvedDuration {
	unit, ok := domain.ParseDurationUnit(legacy.Type)
	if !ok || legacy.Count < 0 {
		return canonical(defaultValue)
	}

	entry, found := lookupByName(catalog, name)
	if !found || !entry.Unit.Valid() || len(entry.Options) == 0 {
		return domain.ResolvedDuration{
			Type:  unit.Singular(),
			Count: legacy.Count,
			Label: fmt.Sprintf("%d %s", legacy.Count, unit),
		}
	}

	target := float64(legacy.Count) * float64(unit.Hours()) / float64(entry.Unit.Hours())
	opt := entry.Options[nearestOption(entry.Options, target)]
	return domain.ResolvedDuration{
		Type:  entry.Unit.Singular(),
		Count: opt.Value,
		Label: opt.Label,
	}
}

// nearestOption returns the index of the option closest to target. An exact
// match has distance zero, so it always wins; equal distances keep the lowest index.
func nearestOption(options []domain.DurationOption, target float64) int {
	best := 0
	bestDiff := math.Inf(1)
	for i, opt := range options {
		diff := math.Abs(float64(opt.Value) - target)
		if diff < bestDiff {
			best, bestDiff = i, diff
		}
	}
	return best
}

func lookupByID(catalog CatalogLookup, id string) (*domain.DurationCatalogEntry, bool) {
	if catalog == nil || id == "" {
		return nil, false
	}
	return catalog.CatalogByID(id)
}

func lookupByName(catalog CatalogLookup, name domain.CatalogName) (*domain.DurationCatalogEntry, bool) {
	if catalog == nil {
		return nil, false
	}
	return catalog.CatalogByName(name)
}
