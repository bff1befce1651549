package jobs

import (
	"context"

	"opeec-backend/internal/geo"
	"opeec-backend/internal/logger"
)

// RepairStats summarises one coordinate repair pass.
type RepairStats struct {
	Scanned      int
	WrongOrdered int
	Repaired     int
	Failed       int
}

// RepairLocationCoordinates rewrites equipment coordinates that disagree with
// their lat/lng, including documents stored as [lat, lng].
func (jr *JobRunner) RepairLocationCoordinates() {
	jr.runWithRecovery("RepairLocationCoordinates", func() {
		stats, err := jr.repairLocations(context.Background())
		if err != nil {
			logger.Error("Coordinate repair aborted", "error", err, "scanned", stats.Scanned, "repaired", stats.Repaired)
			return
		}
		logger.Info("Coordinate repair finished",
			"scanned", stats.Scanned,
			"wrong_ordered", stats.WrongOrdered,
			"repaired", stats.Repaired,
			"failed", stats.Failed,
		)
	})
}

func (jr *JobRunner) repairLocations(ctx context.Context) (RepairStats, error) {
	var stats RepairStats
	afterID := ""
	for {
		records, err := jr.store.ListLocations(ctx, afterID, jr.batchSize)
		if err != nil {
			return stats, err
		}

		for _, rec := range records {
			stats.Scanned++
			repaired, changed := geo.Repair(rec.Location)
			if !changed {
				continue
			}
			if geo.IsWrongOrdered(rec.Location) {
				stats.WrongOrdered++
			}
			if err := jr.store.UpdateLocation(ctx, rec.EquipmentID, repaired); err != nil {
				logger.Error("Failed to repair equipment coordinates", "equipment_id", rec.EquipmentID, "error", err)
				stats.Failed++
				continue
			}
			stats.Repaired++
		}

		if len(records) < jr.batchSize {
			return stats, nil
		}
		afterID = records[len(records)-1].EquipmentID
	}
}
