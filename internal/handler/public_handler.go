package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/response"
)

type publicTechStackService interface {
	ListPublic(ctx context.Context) []models.TechStack
}

type publicCareerService interface {
	ListPublic(ctx context.Context) []models.Career
}

type publicAboutService interface {
	GetPublic(ctx context.Context) *models.About
}

type siteService interface {
	Summary(ctx context.Context) dto.SiteSummary
}

type contactSubmitService interface {
	Submit(ctx context.Context, req dto.CreateContactRequest) (*models.Contact, error)
}

// PublicHandler serves the unauthenticated site endpoints. Read endpoints
// never fail: persistence trouble degrades to empty payloads so the site
// still renders.
type PublicHandler struct {
	techStacks publicTechStackService
	careers    publicCareerService
	about      publicAboutService
	site       siteService
	contacts   contactSubmitService
}

// NewPublicHandler builds a new handler.
func NewPublicHandler(techStacks publicTechStackService, careers publicCareerService, about publicAboutService, site siteService, contacts contactSubmitService) *PublicHandler {
	return &PublicHandler{
		techStacks: techStacks,
		careers:    careers,
		about:      about,
		site:       site,
		contacts:   contacts,
	}
}

// ListTechStacks godoc
// @Summary List tech stack entries for the public site
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /tech-stacks [get]
func (h *PublicHandler) ListTechStacks(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.techStacks.ListPublic(c.Request.Context()))
}

// ListCareers godoc
// @Summary List career entries for the public site
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /careers [get]
func (h *PublicHandler) ListCareers(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.careers.ListPublic(c.Request.Context()))
}

// GetAbout godoc
// @Summary Get the about profile for the public site
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /about [get]
func (h *PublicHandler) GetAbout(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.about.GetPublic(c.Request.Context()))
}

// SiteSummary godoc
// @Summary Get derived site metadata
// @Tags Public
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /site/summary [get]
func (h *PublicHandler) SiteSummary(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.site.Summary(c.Request.Context()))
}

// SubmitContact godoc
// @Summary Submit a contact message
// @Tags Public
// @Accept json
// @Produce json
// @Param payload body dto.CreateContactRequest true "Contact payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /contacts [post]
func (h *PublicHandler) SubmitContact(c *gin.Context) {
	var req dto.CreateContactRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid payload"))
		return
	}

	item, err := h.contacts.Submit(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, item)
}
