package jobs

import (
	"context"

	"opeec-backend/internal/domain"
	"opeec-backend/internal/logger"
	"opeec-backend/internal/pricing"
)

// DurationMigrationName identifies the duration rewrite in data_migrations.
const DurationMigrationName = "migrate-duration-references"

// MigrationStats summarises one duration migration run.
type MigrationStats struct {
	AlreadyApplied bool
	Scanned        int
	Migrated       int
	Failed         int
}

// MigrateDurationReferences rewrites every legacy or catalog duration reference
// into canonical days. It runs once; later invocations are no-ops.
func (jr *JobRunner) MigrateDurationReferences() {
	jr.runWithRecovery("MigrateDurationReferences", func() {
		stats, err := jr.migrateDurations(context.Background())
		if err != nil {
			logger.Error("Duration migration aborted", "error", err, "scanned", stats.Scanned, "migrated", stats.Migrated)
			return
		}
		if stats.AlreadyApplied {
			logger.Info("Duration migration already applied, skipping", "migration", DurationMigrationName)
			return
		}
		logger.Info("Duration migration finished", "scanned", stats.Scanned, "migrated", stats.Migrated, "failed", stats.Failed)
	})
}

func (jr *JobRunner) migrateDurations(ctx context.Context) (MigrationStats, error) {
	var stats MigrationStats

	applied, err := jr.store.IsApplied(ctx, DurationMigrationName)
	if err != nil {
		return stats, err
	}
	if applied {
		stats.AlreadyApplied = true
		return stats, nil
	}

	// The catalog is required here: resolving without it would bake defaults into stored data.
	lookup, err := jr.services.Catalog.Lookup(ctx)
	if err != nil {
		return stats, err
	}
	defaults := jr.config.Pricing

	afterID := ""
	for {
		records, err := jr.store.ListDurations(ctx, afterID, jr.batchSize)
		if err != nil {
			return stats, err
		}

		for _, rec := range records {
			stats.Scanned++
			migrated := domain.DurationRecord{
				EquipmentID:     rec.EquipmentID,
				AdvanceNotice:   canonicalize(rec.AdvanceNotice, lookup, domain.CatalogAdvanceNotice, defaults.DefaultAdvanceNotice),
				MinimumDuration: canonicalize(rec.MinimumDuration, lookup, domain.CatalogMinimumDuration, defaults.DefaultMinimumDuration),
				MaximumDuration: canonicalize(rec.MaximumDuration, lookup, domain.CatalogMaximumDuration, defaults.DefaultMaximumDuration),
			}
			if migrated == rec {
				continue
			}
			if err := jr.store.UpdateDurations(ctx, migrated); err != nil {
				logger.Error("Failed to migrate equipment durations", "equipment_id", rec.EquipmentID, "error", err)
				stats.Failed++
				continue
			}
			stats.Migrated++
		}

		if len(records) < jr.batchSize {
			break
		}
		afterID = records[len(records)-1].EquipmentID
	}

	// Leave the migration open so a rerun retries the failed rows.
	if stats.Failed > 0 {
		return stats, nil
	}
	return stats, jr.store.MarkApplied(ctx, DurationMigrationName)
}

// canonicalize keeps days and missing references as they are and resolves
// everything else to whole days.
func canonicalize(ref domain.DurationReference, lookup pricing.CatalogLookup, name domain.CatalogName, defaultValue int) domain.DurationReference {
	switch ref.Kind() {
	case domain.ReferenceDays, domain.ReferenceMissing:
		return ref
	default:
		return domain.DaysReference(pricing.Resolve(ref, lookup, name, defaultValue).Days())
	}
}
