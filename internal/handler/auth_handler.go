package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fendiRahmans/portofolio-api/internal/dto"
	"github.com/fendiRahmans/portofolio-api/internal/middleware"
	"github.com/fendiRahmans/portofolio-api/internal/models"
	appErrors "github.com/fendiRahmans/portofolio-api/pkg/errors"
	"github.com/fendiRahmans/portofolio-api/pkg/response"
)

type authService interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	CurrentUser(ctx context.Context, claims *models.SessionClaims) (*dto.UserInfo, error)
}

// AuthHandler wires the login/logout surfaces to the auth service and owns
// the session cookie.
type AuthHandler struct {
	service      authService
	cookieMaxAge int
	secureCookie bool
}

// NewAuthHandler creates a new handler. secureCookie should be true outside
// local development.
func NewAuthHandler(svc authService, cookieMaxAge int, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: svc, cookieMaxAge: cookieMaxAge, secureCookie: secureCookie}
}

// Login godoc
// @Summary Authenticate the admin
// @Description Authenticate by email and password, setting the session cookie
// @Tags Auth
// @Accept json
// @Produce json
// @Param payload body dto.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBind(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	res, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	h.setSessionCookie(c, res.Token)
	response.JSON(c, http.StatusOK, res)
}

// Logout godoc
// @Summary Log out the current session
// @Description Clears the session cookie; idempotent
// @Tags Auth
// @Produce json
// @Success 204 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.clearSessionCookie(c)
	response.NoContent(c)
}

// Me godoc
// @Summary Get the authenticated admin
// @Description Lightweight authentication probe for client UI hints
// @Tags Auth
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	claims := middleware.Claims(c)
	if claims == nil {
		response.Error(c, appErrors.ErrUnauthorized)
		return
	}

	info, err := h.service.CurrentUser(c.Request.Context(), claims)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, info)
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(models.SessionCookieName, token, h.cookieMaxAge, "/", "", h.secureCookie, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(models.SessionCookieName, "", -1, "/", "", h.secureCookie, true)
}
