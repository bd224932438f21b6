package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/noah-isme/alpstech-academy-api/internal/catalog"
	"github.com/noah-isme/alpstech-academy-api/internal/middleware"
	"github.com/noah-isme/alpstech-academy-api/internal/models"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
	"github.com/noah-isme/alpstech-academy-api/pkg/notice"
	"github.com/noah-isme/alpstech-academy-api/pkg/response"
)

type courseCatalog interface {
	ListCourses(filter catalog.CourseFilter, key catalog.SortKey) []models.Course
	Course(id string) (*models.Course, error)
}

type enrollmentLedger interface {
	IsEnrolled(courseID string) bool
	Enroll(ctx context.Context, courseID string) error
}

type currentSession interface {
	Current() *models.PublicAccount
}

// CourseHandler serves the public catalog and course enrollment.
type CourseHandler struct {
	catalog    courseCatalog
	enrollment enrollmentLedger
	sessions   currentSession
}

// NewCourseHandler constructs the handler.
func NewCourseHandler(catalog courseCatalog, enrollment enrollmentLedger, sessions currentSession) *CourseHandler {
	return &CourseHandler{catalog: catalog, enrollment: enrollment, sessions: sessions}
}

// List godoc
// @Summary Browse courses
// @Tags Courses
// @Produce json
// @Param q query string false "Search title, description or instructor"
// @Param level query string false "beginner|intermediate|advanced|all"
// @Param sort query string false "default|price-asc|price-desc|title-asc|title-desc"
// @Success 200 {object} response.Envelope
// @Router /courses [get]
func (h *CourseHandler) List(c *gin.Context) {
	filter := catalog.CourseFilter{Text: c.Query("q"), Level: c.Query("level")}
	courses := h.catalog.ListCourses(filter, catalog.ParseSortKey(c.Query("sort")))
	middleware.SetMeta(c, "total", len(courses))
	response.JSON(c, http.StatusOK, courses)
}

// Get godoc
// @Summary Course details
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Router /courses/{id} [get]
func (h *CourseHandler) Get(c *gin.Context) {
	course, err := h.catalog.Course(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, course)
}

// Enrollment godoc
// @Summary Enrollment state of the current session for a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Router /courses/{id}/enrollment [get]
func (h *CourseHandler) Enrollment(c *gin.Context) {
	id := c.Param("id")
	response.JSON(c, http.StatusOK, models.EnrollmentView{CourseID: id, Enrolled: h.enrollment.IsEnrolled(id)})
}

// Enroll godoc
// @Summary Enroll the current session in a course
// @Tags Courses
// @Produce json
// @Param id path string true "Course ID"
// @Success 200 {object} response.Envelope
// @Failure 401 {object} response.Envelope
// @Failure 404 {object} response.Envelope
// @Failure 409 {object} response.Envelope
// @Router /courses/{id}/enroll [post]
func (h *CourseHandler) Enroll(c *gin.Context) {
	ctx := c.Request.Context()
	if h.sessions.Current() == nil {
		notice.Add(ctx, notice.Notice{Level: notice.LevelError, Message: "Please log in to enroll in this course"})
		response.Error(c, appErrors.ErrNoActiveSession)
		return
	}

	course, err := h.catalog.Course(c.Param("id"))
	if err != nil {
		response.Error(c, err)
		return
	}
	if course.EnrollmentStatus == models.EnrollmentClosed {
		notice.Add(ctx, notice.Notice{Level: notice.LevelError, Message: "This course is currently closed for enrollment"})
		response.Error(c, appErrors.ErrCourseClosed)
		return
	}

	if err := h.enrollment.Enroll(ctx, course.ID); err != nil {
		response.Error(c, err)
		return
	}
	response.JSON(c, http.StatusOK, models.EnrollmentView{CourseID: course.ID, Enrolled: h.enrollment.IsEnrolled(course.ID)})
}
