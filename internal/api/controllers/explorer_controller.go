package controllers

import (
	"github.com/gin-gonic/gin"

	"globetrek/internal/models/request_models"
	"globetrek/internal/services"
	"globetrek/pkg/utils"
)

type ExplorerController struct {
	explorerService services.ExplorerServiceInterface
}

func NewExplorerController(explorerService services.ExplorerServiceInterface) *ExplorerController {
	return &ExplorerController{
		explorerService: explorerService,
	}
}

// StartJourney begins a new journey. The body may pin a country by name;
// otherwise one is picked at random.
func (e *ExplorerController) StartJourney(c *gin.Context) {
	var req request_models.StartJourneyRequest
	// An empty body means a random country.
	_ = c.ShouldBindJSON(&req)

	journey, err := e.explorerService.StartJourney(c.Request.Context(), req.CountryName)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, journey, "Journey started")
}

// GetCurrentJourney returns the aggregate explorer view. Partial results
// are normal: each slot reports its own state.
func (e *ExplorerController) GetCurrentJourney(c *gin.Context) {
	view, err := e.explorerService.CurrentView(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, view, "Current journey fetched")
}

// SaveTrip commits the current country into the passport ledger.
func (e *ExplorerController) SaveTrip(c *gin.Context) {
	saved, err := e.explorerService.SaveTrip(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, saved, "Trip saved")
}
