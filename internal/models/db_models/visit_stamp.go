package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// VisitStamp is one appended ledger row. The country and itinerary columns
// hold the frozen JSON snapshots; rows are never updated or deleted.
type VisitStamp struct {
	BaseModel
	CountryName string         `gorm:"index"`
	VisitDate   time.Time      `gorm:"index"`
	Country     datatypes.JSON `gorm:"type:jsonb"`
	Itinerary   datatypes.JSON `gorm:"type:jsonb"`
	Completed   datatypes.JSON `gorm:"type:jsonb;default:'[]'"`
}
