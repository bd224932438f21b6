package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
	"github.com/noah-isme/alpstech-academy-api/pkg/response"
)

type sessionService interface {
	Login(ctx context.Context, req models.LoginRequest) (*models.PublicAccount, error)
	Signup(ctx context.Context, req models.SignupRequest) (*models.PublicAccount, error)
	Logout(ctx context.Context)
	View() models.SessionView
}

// AuthHandler wires HTTP endpoints to the session manager.
type AuthHandler struct {
	service sessionService
}

// NewAuthHandler creates a new handler.
func NewAuthHandler(svc sessionService) *AuthHandler {
	return &AuthHandler{service: svc}
}

// Login godoc
// @Summary Open a session
// @Description Authenticate by email and password, replacing any active session
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.LoginRequest true "Login payload"
// @Success 200 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid login payload"))
		return
	}

	account, err := h.service.Login(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.JSON(c, http.StatusOK, sessionView(account))
}

// Signup godoc
// @Summary Register a student account
// @Description Create a student account and log it in
// @Tags Authentication
// @Accept json
// @Produce json
// @Param payload body models.SignupRequest true "Signup payload"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /auth/signup [post]
func (h *AuthHandler) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid signup payload"))
		return
	}

	account, err := h.service.Signup(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, sessionView(account))
}

// Logout godoc
// @Summary Close the session
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	h.service.Logout(c.Request.Context())
	response.JSON(c, http.StatusOK, models.SessionView{State: models.SessionAnonymous})
}

// Session godoc
// @Summary Current session
// @Tags Authentication
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /auth/session [get]
func (h *AuthHandler) Session(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.service.View())
}

func sessionView(account *models.PublicAccount) models.SessionView {
	return models.SessionView{State: models.SessionAuthenticated, User: account}
}
