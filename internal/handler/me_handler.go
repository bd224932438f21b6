package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alpstech-academy-api/internal/catalog"
	"github.com/noah-isme/alpstech-academy-api/internal/models"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
	"github.com/noah-isme/alpstech-academy-api/pkg/export"
	"github.com/noah-isme/alpstech-academy-api/pkg/response"
)

type studentViews interface {
	StudentDashboard(ctx context.Context) (*models.StudentDashboard, error)
	StudentResults(ctx context.Context, filter catalog.ResultFilter) ([]models.Result, models.Statistics, error)
}

type studentExporter interface {
	StudentResults(ctx context.Context, format export.Format, filter catalog.ResultFilter) (*export.Document, error)
}

// MeHandler serves the signed-in student's own views.
type MeHandler struct {
	views    studentViews
	exporter studentExporter
}

// NewMeHandler constructs the handler.
func NewMeHandler(views studentViews, exporter studentExporter) *MeHandler {
	return &MeHandler{views: views, exporter: exporter}
}

// Dashboard godoc
// @Summary Student dashboard
// @Tags Me
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Router /me/dashboard [get]
func (h *MeHandler) Dashboard(c *gin.Context) {
	dash, err := h.views.StudentDashboard(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, dash)
}

// Results godoc
// @Summary Student results with statistics
// @Tags Me
// @Produce json
// @Param q query string false "Search course name"
// @Param grade query string false "Grade or all"
// @Success 200 {object} response.Envelope
// @Router /me/results [get]
func (h *MeHandler) Results(c *gin.Context) {
	results, stats, err := h.views.StudentResults(c.Request.Context(), studentFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, results, map[string]interface{}{
		"statistics": stats,
		"grades":     catalog.GradeLadder(),
	})
}

// ExportResults godoc
// @Summary Download student results
// @Tags Me
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv|pdf"
// @Success 200 {file} file
// @Router /me/results/export [get]
func (h *MeHandler) ExportResults(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unsupported export format"))
		return
	}
	doc, err := h.exporter.StudentResults(c.Request.Context(), format, studentFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, doc.Filename, doc.ContentType, doc.Payload)
}

func studentFilter(c *gin.Context) catalog.ResultFilter {
	return catalog.ResultFilter{Text: c.Query("q"), Grade: c.Query("grade"), Scope: catalog.ScopeStudent}
}
