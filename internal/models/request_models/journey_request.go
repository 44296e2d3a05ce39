package request_models

// StartJourneyRequest optionally pins the journey to a named country instead
// of a random pick.
type StartJourneyRequest struct {
	CountryName string `json:"country_name"`
}
