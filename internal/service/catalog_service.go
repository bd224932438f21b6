package service

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/catalog"
	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
)

const (
	dateLayout         = "2006-01-02"
	recentResultsLimit = 5
	draftResultGrade   = "C"
	draftResultMax     = 100
)

type sessionReader interface {
	Current() *models.PublicAccount
	Accounts(ctx context.Context) []models.PublicAccount
}

type enrolledCourseLister interface {
	EnrolledCourses(ctx context.Context) []models.EnrolledCourse
}

// Datasets bundles the read-only reference data the catalog serves.
type Datasets struct {
	Courses      []models.Course
	Results      []models.Result
	AdminResults []models.AdminResult
	Students     []models.DemoStudent
}

// SeedDatasets returns the shipped sample data.
func SeedDatasets() Datasets {
	return Datasets{
		Courses:      seed.Courses(),
		Results:      seed.Results(),
		AdminResults: seed.AdminResults(),
		Students:     seed.DemoStudents(),
	}
}

// CatalogService serves the public catalog, the student views and the admin console. Admin
// edits land in an overlay copy that lives until the next session transition.
type CatalogService struct {
	data      Datasets
	sessions  sessionReader
	enrolled  enrolledCourseLister
	validator *validator.Validate
	logger    *zap.Logger
	now       func() time.Time

	mu      sync.Mutex
	overlay *adminOverlay
}

type adminOverlay struct {
	courses []models.Course
	results []models.AdminResult
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(data Datasets, sessions sessionReader, enrolled enrolledCourseLister, validate *validator.Validate, logger *zap.Logger) *CatalogService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &CatalogService{
		data:      data,
		sessions:  sessions,
		enrolled:  enrolled,
		validator: validate,
		logger:    logger,
		now:       time.Now,
	}
}

// ResetOverlay discards admin edits. It is registered as a session observer.
func (s *CatalogService) ResetOverlay(previous, next *models.PublicAccount) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.overlay != nil {
		s.logger.Debug("admin overlay discarded")
	}
	s.overlay = nil
}

// ListCourses filters and sorts the public catalog.
func (s *CatalogService) ListCourses(filter catalog.CourseFilter, key catalog.SortKey) []models.Course {
	return catalog.SortCourses(catalog.FilterCourses(s.data.Courses, filter), key)
}

// Course returns a public catalog entry.
func (s *CatalogService) Course(id string) (*models.Course, error) {
	course, ok := catalog.FindCourse(s.data.Courses, id)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	return &course, nil
}

// StudentDashboard summarises the active session's courses and results.
func (s *CatalogService) StudentDashboard(ctx context.Context) (*models.StudentDashboard, error) {
	current := s.sessions.Current()
	if current == nil {
		return nil, appErrors.ErrNoActiveSession
	}
	results := catalog.VisibleResults(s.data.Results, *current)
	stats, err := catalog.ComputeStatistics(results)
	if err != nil {
		return nil, err
	}
	return &models.StudentDashboard{
		Student:         *current,
		EnrolledCourses: s.enrolled.EnrolledCourses(ctx),
		Results:         results,
		LatestResult:    catalog.LatestResult(results),
		Statistics:      stats,
	}, nil
}

// StudentResults returns the session's visible results after filtering, with statistics over
// the filtered set.
func (s *CatalogService) StudentResults(ctx context.Context, filter catalog.ResultFilter) ([]models.Result, models.Statistics, error) {
	current := s.sessions.Current()
	if current == nil {
		return nil, models.Statistics{}, appErrors.ErrNoActiveSession
	}
	results := catalog.FilterStudentResults(catalog.VisibleResults(s.data.Results, *current), filter)
	stats, err := catalog.ComputeStatistics(results)
	if err != nil {
		return nil, models.Statistics{}, err
	}
	return results, stats, nil
}

// AdminDashboard summarises the admin's current view of the catalog.
func (s *CatalogService) AdminDashboard(ctx context.Context) models.AdminDashboard {
	s.mu.Lock()
	o := s.overlayLocked()
	courses := append([]models.Course{}, o.courses...)
	results := append([]models.AdminResult{}, o.results...)
	s.mu.Unlock()

	open := 0
	for _, c := range courses {
		if c.EnrollmentStatus == models.EnrollmentOpen {
			open++
		}
	}
	recent := results
	if len(recent) > recentResultsLimit {
		recent = recent[:recentResultsLimit]
	}
	return models.AdminDashboard{
		TotalCourses:    len(courses),
		TotalStudents:   len(s.Students(ctx)),
		TotalResults:    len(results),
		OpenEnrollments: open,
		RecentResults:   recent,
	}
}

// Students lists student accounts with their enrollment and result counts.
func (s *CatalogService) Students(ctx context.Context) []models.StudentSummary {
	out := make([]models.StudentSummary, 0)
	for _, a := range s.sessions.Accounts(ctx) {
		if a.Role != models.RoleStudent {
			continue
		}
		out = append(out, models.StudentSummary{
			ID:              a.ID,
			Name:            a.Name,
			Email:           a.Email,
			EnrolledCourses: len(a.EnrolledCourses),
			Results:         len(a.Results),
		})
	}
	return out
}

// AdminCourses filters the overlay courses.
func (s *CatalogService) AdminCourses(filter catalog.CourseFilter) []models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return catalog.FilterCourses(s.overlayLocked().courses, filter)
}

// NewCourseDraft returns a prefilled course for the add form.
func (s *CatalogService) NewCourseDraft() models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.Course{
		ID:               nextID(courseIDs(s.overlayLocked().courses)),
		Level:            models.LevelBeginner,
		Price:            0,
		Image:            seed.DefaultCourseImage,
		EnrollmentStatus: models.EnrollmentOpen,
	}
}

// AddCourse appends a course to the overlay under a fresh id.
func (s *CatalogService) AddCourse(course models.Course) (*models.Course, error) {
	if course.Image == "" {
		course.Image = seed.DefaultCourseImage
	}
	if err := s.validator.Struct(course); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.overlayLocked()
	course.ID = nextID(courseIDs(o.courses))
	o.courses = append(o.courses, course)
	s.logger.Info("course added", zap.String("course_id", course.ID))
	return &course, nil
}

// ApplyCourseEdit replaces every editable field of an overlay course.
func (s *CatalogService) ApplyCourseEdit(id string, edit models.Course) (*models.Course, error) {
	if edit.Image == "" {
		edit.Image = seed.DefaultCourseImage
	}
	if err := s.validator.Struct(edit); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid course payload")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.overlayLocked()
	idx := courseIndex(o.courses, id)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	edit.ID = id
	o.courses[idx] = edit
	return &edit, nil
}

// UpdateCourseStatus changes only the enrollment status of an overlay course.
func (s *CatalogService) UpdateCourseStatus(id string, req models.CourseStatusRequest) (*models.Course, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid enrollment status")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.overlayLocked()
	idx := courseIndex(o.courses, id)
	if idx < 0 {
		return nil, appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	o.courses[idx].EnrollmentStatus = req.EnrollmentStatus
	course := o.courses[idx]
	return &course, nil
}

// DeleteCourse removes a course from the overlay.
func (s *CatalogService) DeleteCourse(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.overlayLocked()
	idx := courseIndex(o.courses, id)
	if idx < 0 {
		return appErrors.Clone(appErrors.ErrNotFound, "course not found")
	}
	o.courses = append(o.courses[:idx], o.courses[idx+1:]...)
	return nil
}

// AdminResults filters the overlay results.
func (s *CatalogService) AdminResults(filter catalog.ResultFilter) []models.AdminResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	filter.Scope = catalog.ScopeAdmin
	return catalog.FilterResults(s.overlayLocked().results, filter)
}

// NewResultDraft returns a prefilled result for the add form.
func (s *CatalogService) NewResultDraft() models.AdminResult {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.AdminResult{Result: models.Result{
		ID:       nextID(resultIDs(s.overlayLocked().results)),
		MaxScore: draftResultMax,
		Grade:    draftResultGrade,
		Date:     s.now().Format(dateLayout),
	}}
}

// AddResult records a result in the overlay. The grade and names are derived from the draft.
func (s *CatalogService) AddResult(draft models.ResultDraft) (*models.AdminResult, error) {
	if draft.Date == "" {
		draft.Date = s.now().Format(dateLayout)
	}
	if err := s.validator.Struct(draft); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid result payload")
	}
	grade, err := catalog.ComputeGrade(draft.Score, draft.MaxScore)
	if err != nil {
		return nil, err
	}
	student, ok := s.demoStudent(draft.StudentID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown student")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.overlayLocked()
	course, ok := catalog.FindCourse(o.courses, draft.CourseID)
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrValidation, "unknown course")
	}
	result := models.AdminResult{
		Result: models.Result{
			ID:         nextID(resultIDs(o.results)),
			CourseID:   course.ID,
			CourseName: course.Title,
			Score:      draft.Score,
			MaxScore:   draft.MaxScore,
			Grade:      grade,
			Date:       draft.Date,
			Feedback:   draft.Feedback,
		},
		StudentID:   student.ID,
		StudentName: student.Name,
	}
	o.results = append(o.results, result)
	s.logger.Info("result recorded", zap.String("result_id", result.ID), zap.String("grade", grade))
	return &result, nil
}

// DeleteResult removes a result from the overlay.
func (s *CatalogService) DeleteResult(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	o := s.overlayLocked()
	for i, r := range o.results {
		if r.ID == id {
			o.results = append(o.results[:i], o.results[i+1:]...)
			return nil
		}
	}
	return appErrors.Clone(appErrors.ErrNotFound, "result not found")
}

// DemoStudents lists the students results can be attributed to.
func (s *CatalogService) DemoStudents() []models.DemoStudent {
	return append([]models.DemoStudent{}, s.data.Students...)
}

func (s *CatalogService) demoStudent(id string) (models.DemoStudent, bool) {
	for _, st := range s.data.Students {
		if st.ID == id {
			return st, true
		}
	}
	return models.DemoStudent{}, false
}

func (s *CatalogService) overlayLocked() *adminOverlay {
	if s.overlay == nil {
		s.overlay = &adminOverlay{
			courses: append([]models.Course{}, s.data.Courses...),
			results: append([]models.AdminResult{}, s.data.AdminResults...),
		}
	}
	return s.overlay
}

func courseIndex(courses []models.Course, id string) int {
	for i, c := range courses {
		if c.ID == id {
			return i
		}
	}
	return -1
}

func courseIDs(courses []models.Course) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = c.ID
	}
	return out
}

func resultIDs(results []models.AdminResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

// nextID returns one more than the largest numeric id. Non-numeric ids are ignored.
func nextID(ids []string) string {
	highest := 0
	for _, id := range ids {
		if n, err := strconv.Atoi(id); err == nil && n > highest {
			highest = n
		}
	}
	return strconv.Itoa(highest + 1)
}
