package domain

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
)

type ReferenceKind int

const (
	ReferenceMissing ReferenceKind = iota
	ReferenceDays
	ReferenceLegacy
	ReferenceCatalog
)

func (k ReferenceKind) String() string {
	switch k {
	case ReferenceDays:
		return "days"
	case ReferenceLegacy:
		return "legacy"
	case ReferenceCatalog:
		return "catalog"
	default:
		return "missing"
	}
}

// LegacyDuration is the pre-catalog {type, count} shape, e.g. {"days", 2}.
type LegacyDuration struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
}

// CatalogPointer points at an option of a DurationCatalogEntry.
type CatalogPointer struct {
	DropdownID    string `json:"dropdownId"`
	SelectedValue int    `json:"selectedValue"`
}

// DurationReference is how an equipment record expresses a duration. Stored
// documents carry one of three shapes; the zero value is a missing reference.
// A catalog reference may also carry the legacy pair it was created from,
// which resolution falls back to when the catalog entry cannot be found.
type DurationReference struct {
	kind    ReferenceKind
	days    int
	legacy  *LegacyDuration
	pointer *CatalogPointer
}

// DaysReference is the canonical post-migration form, in days.
func DaysReference(days int) DurationReference {
	if days < 0 {
		return DurationReference{}
	}
	return DurationReference{kind: ReferenceDays, days: days}
}

func LegacyReference(unit string, count int) DurationReference {
	if unit == "" || count < 0 {
		return DurationReference{}
	}
	return DurationReference{kind: ReferenceLegacy, legacy: &LegacyDuration{Type: unit, Count: count}}
}

func CatalogReference(dropdownID string, selectedValue int) DurationReference {
	if dropdownID == "" {
		return DurationReference{}
	}
	return DurationReference{kind: ReferenceCatalog, pointer: &CatalogPointer{DropdownID: dropdownID, SelectedValue: selectedValue}}
}

// WithLegacyFallback attaches a legacy pair to a catalog reference. Other kinds
// are returned unchanged.
func (r DurationReference) WithLegacyFallback(unit string, count int) DurationReference {
	if r.kind != ReferenceCatalog || unit == "" || count < 0 {
		return r
	}
	r.legacy = &LegacyDuration{Type: unit, Count: count}
	return r
}

func (r DurationReference) Kind() ReferenceKind {
	return r.kind
}

func (r DurationReference) IsMissing() bool {
	return r.kind == ReferenceMissing
}

func (r DurationReference) Days() (int, bool) {
	return r.days, r.kind == ReferenceDays
}

// Legacy returns the legacy pair of a legacy reference or the fallback of a
// catalog reference.
func (r DurationReference) Legacy() (LegacyDuration, bool) {
	if r.legacy == nil {
		return LegacyDuration{}, false
	}
	return *r.legacy, true
}

func (r DurationReference) Pointer() (CatalogPointer, bool) {
	if r.pointer == nil {
		return CatalogPointer{}, false
	}
	return *r.pointer, true
}

func (r DurationReference) String() string {
	switch r.kind {
	case ReferenceDays:
		return fmt.Sprintf("%d days", r.days)
	case ReferenceLegacy:
		return fmt.Sprintf("%d %s", r.legacy.Count, r.legacy.Type)
	case ReferenceCatalog:
		return fmt.Sprintf("dropdown %s value %d", r.pointer.DropdownID, r.pointer.SelectedValue)
	default:
		return "missing"
	}
}

type durationDocument struct {
	Type          *string  `json:"type,omitempty"`
	Count         *float64 `json:"count,omitempty"`
	DropdownID    *string  `json:"dropdownId,omitempty"`
	SelectedValue *float64 `json:"selectedValue,omitempty"`
}

func (r DurationReference) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case ReferenceDays:
		return json.Marshal(r.days)
	case ReferenceLegacy:
		return json.Marshal(r.legacy)
	case ReferenceCatalog:
		value := float64(r.pointer.SelectedValue)
		doc := durationDocument{DropdownID: &r.pointer.DropdownID, SelectedValue: &value}
		if r.legacy != nil {
			count := float64(r.legacy.Count)
			doc.Type = &r.legacy.Type
			doc.Count = &count
		}
		return json.Marshal(doc)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalJSON never fails: shapes it does not recognise decode as missing.
func (r *DurationReference) UnmarshalJSON(data []byte) error {
	*r = DurationReference{}
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return nil
	}

	var number float64
	if err := json.Unmarshal(data, &number); err == nil {
		if n, ok := wholeNumber(&number); ok {
			*r = DaysReference(n)
		}
		return nil
	}

	var doc durationDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil
	}

	legacyType, legacyCount, hasLegacy := "", 0, false
	if doc.Type != nil && *doc.Type != "" {
		if n, ok := wholeNumber(doc.Count); ok {
			legacyType, legacyCount, hasLegacy = *doc.Type, n, true
		}
	}

	if doc.DropdownID != nil && *doc.DropdownID != "" {
		if value, ok := wholeNumber(doc.SelectedValue); ok {
			ref := CatalogReference(*doc.DropdownID, value)
			if hasLegacy {
				ref = ref.WithLegacyFallback(legacyType, legacyCount)
			}
			*r = ref
			return nil
		}
	}

	if hasLegacy {
		*r = LegacyReference(legacyType, legacyCount)
	}
	return nil
}

// MaxDurationCount bounds every stored duration count. Larger numbers decode as missing.
const MaxDurationCount = math.MaxInt32

func wholeNumber(f *float64) (int, bool) {
	if f == nil || math.IsNaN(*f) || math.IsInf(*f, 0) || *f < 0 || *f > MaxDurationCount || *f != math.Trunc(*f) {
		return 0, false
	}
	return int(*f), true
}

// Value stores the reference as JSONB; a missing reference is NULL.
func (r DurationReference) Value() (driver.Value, error) {
	if r.kind == ReferenceMissing {
		return nil, nil
	}
	return r.MarshalJSON()
}

func (r *DurationReference) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*r = DurationReference{}
		return nil
	case []byte:
		return r.UnmarshalJSON(v)
	case string:
		return r.UnmarshalJSON([]byte(v))
	default:
		return fmt.Errorf("unsupported duration reference column type %T", src)
	}
}

// ResolvedDuration is a concrete duration plus a display label.
type ResolvedDuration struct {
	Type  string `json:"type"`
	Count int    `json:"count"`
	Label string `json:"label"`
}

// Days converts the resolved duration to whole days, rounding partial days up.
// An empty type is canonical and already in days.
func (d ResolvedDuration) Days() int {
	unit, ok := ParseDurationUnit(d.Type)
	if d.Type == "" || !ok {
		return saturate(float64(d.Count))
	}
	return saturate(math.Ceil(float64(d.Count) * float64(unit.Hours()) / 24))
}

// Hours converts the resolved duration to hours. An empty type is in days.
func (d ResolvedDuration) Hours() int {
	unit, ok := ParseDurationUnit(d.Type)
	if d.Type == "" || !ok {
		return saturate(float64(d.Count) * 24)
	}
	return saturate(float64(d.Count) * float64(unit.Hours()))
}

// saturate clamps v to [0, MaxDurationCount].
func saturate(v float64) int {
	switch {
	case v <= 0:
		return 0
	case v >= MaxDurationCount:
		return MaxDurationCount
	}
	return int(v)
}
