package domain

import (
	"strings"
	"time"
)

type CatalogName string

const (
	CatalogAdvanceNotice   CatalogName = "advance-notice"
	CatalogMinimumDuration CatalogName = "minimum-duration"
	CatalogMaximumDuration CatalogName = "maximum-duration"
)

type DurationUnit string

const (
	DurationUnitHours  DurationUnit = "hours"
	DurationUnitDays   DurationUnit = "days"
	DurationUnitWeeks  DurationUnit = "weeks"
	DurationUnitMonths DurationUnit = "months"
)

var hoursPerUnit = map[DurationUnit]int{
	DurationUnitHours:  1,
	DurationUnitDays:   24,
	DurationUnitWeeks:  24 * 7,
	DurationUnitMonths: 24 * 30,
}

// ParseDurationUnit accepts singular or plural, any case ("Day", "weeks").
func ParseDurationUnit(s string) (DurationUnit, bool) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return "", false
	}
	if !strings.HasSuffix(s, "s") {
		s += "s"
	}
	u := DurationUnit(s)
	_, ok := hoursPerUnit[u]
	return u, ok
}

// Singular returns the unit without its trailing plural "s".
func (u DurationUnit) Singular() string {
	return strings.TrimSuffix(string(u), "s")
}

// Hours is the fixed length of one unit: 1 day = 24h, 1 week = 7d, 1 month = 30d.
func (u DurationUnit) Hours() int {
	return hoursPerUnit[u]
}

func (u DurationUnit) Valid() bool {
	_, ok := hoursPerUnit[u]
	return ok
}

type DurationOption struct {
	Label       string `json:"label"`
	Value       int    `json:"value"`
	Recommended bool   `json:"recommended"`
}

// DurationCatalogEntry is one named dropdown of duration choices.
type DurationCatalogEntry struct {
	ID        string           `json:"id"`
	Name      CatalogName      `json:"name"`
	Unit      DurationUnit     `json:"unit"`
	Options   []DurationOption `json:"options"`
	UpdatedOn time.Time        `json:"updated_on"`
}

// CatalogOptionInput is the client shape of an option. Pointers let validation
// tell a missing value apart from a zero one.
type CatalogOptionInput struct {
	Label       string `json:"label" validate:"required"`
	Value       *int   `json:"value" validate:"required,gte=0"`
	Recommended *bool  `json:"recommended" validate:"required"`
}

type CatalogEntryInput struct {
	Name    CatalogName          `json:"name" validate:"required,oneof=advance-notice minimum-duration maximum-duration"`
	Unit    DurationUnit         `json:"unit" validate:"required,oneof=hours days weeks months"`
	Options []CatalogOptionInput `json:"options" validate:"required,min=1,dive"`
}

// CatalogUpsertResult reports per-entry outcome of a batch upsert.
type CatalogUpsertResult struct {
	Applied []CatalogName          `json:"applied"`
	Failed  map[CatalogName]string `json:"failed,omitempty"`
}

// Fail records why the entry named name was not applied.
func (r *CatalogUpsertResult) Fail(name CatalogName, reason string) {
	if r.Failed == nil {
		r.Failed = make(map[CatalogName]string)
	}
	r.Failed[name] = reason
}
