package domain_models

import (
	"time"

	"github.com/google/uuid"
)

// SavedTrip is one passport entry. The country and itinerary are deep
// snapshots taken at save time; the ledger owns them from then on.
type SavedTrip struct {
	ID        uuid.UUID  `json:"id"`
	Country   Country    `json:"country"`
	VisitDate time.Time  `json:"visit_date"`
	Completed []string   `json:"completed"`
	Itinerary *Itinerary `json:"itinerary,omitempty"`
}
