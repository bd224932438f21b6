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

type adminConsole interface {
	AdminDashboard(ctx context.Context) models.AdminDashboard
	Students(ctx context.Context) []models.StudentSummary
	AdminCourses(filter catalog.CourseFilter) []models.Course
	NewCourseDraft() models.Course
	AddCourse(course models.Course) (*models.Course, error)
	ApplyCourseEdit(id string, edit models.Course) (*models.Course, error)
	UpdateCourseStatus(id string, req models.CourseStatusRequest) (*models.Course, error)
	DeleteCourse(id string) error
	AdminResults(filter catalog.ResultFilter) []models.AdminResult
	NewResultDraft() models.AdminResult
	AddResult(draft models.ResultDraft) (*models.AdminResult, error)
	DeleteResult(id string) error
	DemoStudents() []models.DemoStudent
}

type adminExporter interface {
	AdminResults(format export.Format, filter catalog.ResultFilter) (*export.Document, error)
}

// AdminHandler exposes the admin console. Edits only live until the next session change.
type AdminHandler struct {
	console  adminConsole
	exporter adminExporter
}

// NewAdminHandler constructs the handler.
func NewAdminHandler(console adminConsole, exporter adminExporter) *AdminHandler {
	return &AdminHandler{console: console, exporter: exporter}
}

// Dashboard godoc
// @Summary Admin dashboard
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Failure 403 {object} response.Envelope
// @Router /admin/dashboard [get]
func (h *AdminHandler) Dashboard(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.console.AdminDashboard(c.Request.Context()))
}

// Students godoc
// @Summary Registered students
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/students [get]
func (h *AdminHandler) Students(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.console.Students(c.Request.Context()))
}

// ListCourses godoc
// @Summary Manage courses
// @Tags Admin
// @Produce json
// @Param q query string false "Search title, description or instructor"
// @Param level query string false "Level or all"
// @Param status query string false "Enrollment status or all"
// @Success 200 {object} response.Envelope
// @Router /admin/courses [get]
func (h *AdminHandler) ListCourses(c *gin.Context) {
	courses := h.console.AdminCourses(catalog.CourseFilter{
		Text:   c.Query("q"),
		Level:  c.Query("level"),
		Status: c.Query("status"),
	})
	response.JSON(c, http.StatusOK, courses, map[string]interface{}{"total": len(courses)})
}

// CourseDraft godoc
// @Summary Prefilled course for the add form
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/courses/draft [get]
func (h *AdminHandler) CourseDraft(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.console.NewCourseDraft())
}

// CreateCourse godoc
// @Summary Add a course
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.Course true "Course"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/courses [post]
func (h *AdminHandler) CreateCourse(c *gin.Context) {
	var req models.Course
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.console.AddCourse(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, course)
}

// UpdateCourse godoc
// @Summary Replace a course
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body models.Course true "Course"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /admin/courses/{id} [put]
func (h *AdminHandler) UpdateCourse(c *gin.Context) {
	var req models.Course
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid course payload"))
		return
	}
	course, err := h.console.ApplyCourseEdit(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// UpdateCourseStatus godoc
// @Summary Change enrollment status
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Course ID"
// @Param payload body models.CourseStatusRequest true "Status"
// @Success 200 {object} response.Envelope
// @Router /admin/courses/{id}/status [patch]
func (h *AdminHandler) UpdateCourseStatus(c *gin.Context) {
	var req models.CourseStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid status payload"))
		return
	}
	course, err := h.console.UpdateCourseStatus(c.Param("id"), req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// DeleteCourse godoc
// @Summary Remove a course
// @Tags Admin
// @Param id path string true "Course ID"
// @Success 204
// @Router /admin/courses/{id} [delete]
func (h *AdminHandler) DeleteCourse(c *gin.Context) {
	if err := h.console.DeleteCourse(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ListResults godoc
// @Summary All student results
// @Tags Admin
// @Produce json
// @Param q query string false "Search student or course"
// @Param courseId query string false "Course ID or all"
// @Param grade query string false "Grade or all"
// @Success 200 {object} response.Envelope
// @Router /admin/results [get]
func (h *AdminHandler) ListResults(c *gin.Context) {
	results := h.console.AdminResults(adminResultFilter(c))
	response.JSON(c, http.StatusOK, results, map[string]interface{}{"total": len(results)})
}

// ResultDraft godoc
// @Summary Prefilled result for the add form
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/results/draft [get]
func (h *AdminHandler) ResultDraft(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.console.NewResultDraft(), map[string]interface{}{
		"students": h.console.DemoStudents(),
	})
}

// CreateResult godoc
// @Summary Record a result
// @Tags Admin
// @Accept json
// @Produce json
// @Param payload body models.ResultDraft true "Result"
// @Success 201 {object} response.Envelope
// @Failure 400 {object} response.Envelope
// @Router /admin/results [post]
func (h *AdminHandler) CreateResult(c *gin.Context) {
	var req models.ResultDraft
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "invalid result payload"))
		return
	}
	result, err := h.console.AddResult(req)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, result)
}

// DeleteResult godoc
// @Summary Remove a result
// @Tags Admin
// @Param id path string true "Result ID"
// @Success 204
// @Router /admin/results/{id} [delete]
func (h *AdminHandler) DeleteResult(c *gin.Context) {
	if err := h.console.DeleteResult(c.Param("id")); err != nil {
		response.Error(c, err)
		return
	}
	response.NoContent(c)
}

// ExportResults godoc
// @Summary Download all student results
// @Tags Admin
// @Produce text/csv
// @Produce application/pdf
// @Param format query string false "csv|pdf"
// @Success 200 {file} file
// @Router /admin/results/export [get]
func (h *AdminHandler) ExportResults(c *gin.Context) {
	format, err := export.ParseFormat(c.Query("format"))
	if err != nil {
		response.Error(c, appErrors.Wrap(err, appErrors.ErrValidation.Code, http.StatusBadRequest, "unsupported export format"))
		return
	}
	doc, err := h.exporter.AdminResults(format, adminResultFilter(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Attachment(c, doc.Filename, doc.ContentType, doc.Payload)
}

// DemoStudents godoc
// @Summary Students results can be attributed to
// @Tags Admin
// @Produce json
// @Success 200 {object} response.Envelope
// @Router /admin/demo-students [get]
func (h *AdminHandler) DemoStudents(c *gin.Context) {
	response.JSON(c, http.StatusOK, h.console.DemoStudents())
}

func adminResultFilter(c *gin.Context) catalog.ResultFilter {
	return catalog.ResultFilter{
		Text:     c.Query("q"),
		CourseID: c.Query("courseId"),
		Grade:    c.Query("grade"),
		Scope:    catalog.ScopeAdmin,
	}
}
