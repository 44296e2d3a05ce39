package domain_models

type CulturalFact struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type LanguageLesson struct {
	Phrase        string `json:"phrase"`
	Translation   string `json:"translation"`
	Pronunciation string `json:"pronunciation,omitempty"`
}

type Image struct {
	ID         int    `json:"id"`
	SmallURL   string `json:"small_url"`
	RegularURL string `json:"regular_url"`
	AltText    string `json:"alt_text"`
}

// SlotState tracks one enrichment result slot. Slots only move forward:
// pending -> ready, or pending -> failed.
type SlotState string

const (
	SlotPending SlotState = "pending"
	SlotReady   SlotState = "ready"
	SlotFailed  SlotState = "failed"
)

type FactsSlot struct {
	State   SlotState      `json:"state"`
	Loading bool           `json:"loading"`
	Items   []CulturalFact `json:"items"`
}

type LessonsSlot struct {
	State   SlotState        `json:"state"`
	Loading bool             `json:"loading"`
	Items   []LanguageLesson `json:"items"`
}

type ImagesSlot struct {
	State   SlotState `json:"state"`
	Loading bool      `json:"loading"`
	Items   []Image   `json:"items"`
}

type ItinerarySlot struct {
	State   SlotState  `json:"state"`
	Loading bool       `json:"loading"`
	Plan    *Itinerary `json:"plan,omitempty"`
}
