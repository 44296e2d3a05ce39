// internal/repositories/ledger_repo.go
package repositories

import (
	"context"
	"encoding/json"
	"fmt"

	"gorm.io/gorm"

	dbm "globetrek/internal/models/db_models"
	dm "globetrek/internal/models/domain_models"
	"globetrek/pkg/logger"
	"globetrek/pkg/utils"
)

// LedgerRepository is the durable visit ledger: an append-only sequence of
// saved trips. There is no update or delete path.
type LedgerRepository interface {
	Append(ctx context.Context, trip dm.SavedTrip) error
	ListAll(ctx context.Context) ([]dm.SavedTrip, error)
}

type ledgerRepository struct {
	db  *gorm.DB
	log logger.Logger
}

func NewLedgerRepository(db *gorm.DB, log logger.Logger) LedgerRepository {
	return &ledgerRepository{db: db, log: log}
}

func (r *ledgerRepository) Append(ctx context.Context, trip dm.SavedTrip) error {
	row, err := toStampRow(trip)
	if err != nil {
		return fmt.Errorf("encode stamp: %w", err)
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return nil
}

// ListAll returns the ledger in insertion order. Rows whose snapshots no
// longer decode are skipped; a corrupt ledger reads as a shorter one,
// never as an error.
func (r *ledgerRepository) ListAll(ctx context.Context) ([]dm.SavedTrip, error) {
	var rows []dbm.VisitStamp
	if err := r.db.WithContext(ctx).
		Order("created_at asc, id asc").
		Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("%w: %v", utils.ErrDatabaseError, err)
	}
	return decodeStampRows(rows, r.log), nil
}

func toStampRow(trip dm.SavedTrip) (dbm.VisitStamp, error) {
	countryJSON, err := json.Marshal(trip.Country)
	if err != nil {
		return dbm.VisitStamp{}, err
	}
	completedJSON, err := json.Marshal(trip.Completed)
	if err != nil {
		return dbm.VisitStamp{}, err
	}

	row := dbm.VisitStamp{
		BaseModel:   dbm.BaseModel{ID: trip.ID},
		CountryName: trip.Country.Name.Common,
		VisitDate:   trip.VisitDate,
		Country:     countryJSON,
		Completed:   completedJSON,
	}
	if trip.Itinerary != nil {
		itineraryJSON, err := json.Marshal(trip.Itinerary)
		if err != nil {
			return dbm.VisitStamp{}, err
		}
		row.Itinerary = itineraryJSON
	}
	return row, nil
}

func decodeStampRows(rows []dbm.VisitStamp, log logger.Logger) []dm.SavedTrip {
	out := make([]dm.SavedTrip, 0, len(rows))
	for _, row := range rows {
		trip, err := fromStampRow(row)
		if err != nil {
			log.Warnf("skipping unreadable stamp %s: %v", row.ID, err)
			continue
		}
		out = append(out, trip)
	}
	return out
}

func fromStampRow(row dbm.VisitStamp) (dm.SavedTrip, error) {
	var country dm.Country
	if err := json.Unmarshal(row.Country, &country); err != nil {
		return dm.SavedTrip{}, fmt.Errorf("country snapshot: %w", err)
	}
	if country.Name.Common == "" {
		return dm.SavedTrip{}, fmt.Errorf("country snapshot missing name")
	}

	trip := dm.SavedTrip{
		ID:        row.ID,
		Country:   country,
		VisitDate: row.VisitDate,
		Completed: []string{},
	}
	if len(row.Completed) > 0 {
		// Completed markers are cosmetic; ignore a bad column.
		_ = json.Unmarshal(row.Completed, &trip.Completed)
	}
	if len(row.Itinerary) > 0 && string(row.Itinerary) != "null" {
		var itinerary dm.Itinerary
		if err := json.Unmarshal(row.Itinerary, &itinerary); err == nil {
			trip.Itinerary = &itinerary
		}
	}
	return trip, nil
}
