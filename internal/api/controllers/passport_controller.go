package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"globetrek/internal/services"
	"globetrek/pkg/utils"
)

type PassportController struct {
	passportService services.PassportServiceInterface
}

func NewPassportController(passportService services.PassportServiceInterface) *PassportController {
	return &PassportController{
		passportService: passportService,
	}
}

func (p *PassportController) GetSummary(c *gin.Context) {
	summary, err := p.passportService.Summary(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, summary, "Passport summary fetched")
}

func (p *PassportController) GetStamps(c *gin.Context) {
	pageStr := c.DefaultQuery("page", "1")
	pageSizeStr := c.DefaultQuery("pageSize", "5")

	page, err := strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page number")
		return
	}

	pageSize, err := strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		utils.RespondError(c, http.StatusBadRequest, "Invalid page size (must be 1-100)")
		return
	}

	stamps, err := p.passportService.UniqueStamps(c.Request.Context(), page, pageSize)
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, stamps, "Stamps fetched")
}

func (p *PassportController) GetBook(c *gin.Context) {
	book, err := p.passportService.Book(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, book, "Book state fetched")
}

func (p *PassportController) ToggleBook(c *gin.Context) {
	book, err := p.passportService.ToggleBook(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, book, "Book toggled")
}

func (p *PassportController) NextPage(c *gin.Context) {
	book, err := p.passportService.NextPage(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, book, "Page turned")
}

func (p *PassportController) PreviousPage(c *gin.Context) {
	book, err := p.passportService.PreviousPage(c.Request.Context())
	if err != nil {
		utils.HandleServiceError(c, err)
		return
	}

	utils.RespondSuccess(c, book, "Page turned")
}
