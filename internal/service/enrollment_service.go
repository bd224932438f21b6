package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/noah-isme/alpstech-academy-api/internal/catalog"
	"github.com/noah-isme/alpstech-academy-api/internal/models"
)

type sessionAccess interface {
	Current() *models.PublicAccount
	UpdateCurrent(ctx context.Context, fn func(account *models.PublicAccount) (bool, error)) (*models.PublicAccount, error)
}

type enrollmentWriter interface {
	SetEnrolledCourses(ctx context.Context, accountID string, courseIDs []string) error
}

// EnrollmentService maintains the enrolled course set of the active session's account.
type EnrollmentService struct {
	sessions sessionAccess
	roster   enrollmentWriter
	courses  []models.Course
	notifier Notifier
	metrics  *MetricsService
	logger   *zap.Logger
	now      func() time.Time
}

// NewEnrollmentService constructs an EnrollmentService over the given course catalog.
func NewEnrollmentService(sessions sessionAccess, roster enrollmentWriter, courses []models.Course, notifier Notifier, metrics *MetricsService, logger *zap.Logger) *EnrollmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if notifier == nil {
		notifier = NewLogNotifier(logger)
	}
	return &EnrollmentService{
		sessions: sessions,
		roster:   roster,
		courses:  courses,
		notifier: notifier,
		metrics:  metrics,
		logger:   logger,
		now:      time.Now,
	}
}

// IsEnrolled reports whether the active session is enrolled in courseID. False when anonymous.
func (s *EnrollmentService) IsEnrolled(courseID string) bool {
	current := s.sessions.Current()
	return current != nil && current.HasCourse(courseID)
}

// Enroll adds courseID to the session account's enrolled set, updating the stored session and
// the roster. It does nothing without a session and does not check the course status.
func (s *EnrollmentService) Enroll(ctx context.Context, courseID string) error {
	added := false
	updated, err := s.sessions.UpdateCurrent(ctx, func(account *models.PublicAccount) (bool, error) {
		if account.HasCourse(courseID) {
			return false, nil
		}
		next := append(append([]string{}, account.EnrolledCourses...), courseID)
		if err := s.roster.SetEnrolledCourses(ctx, account.ID, next); err != nil {
			return false, err
		}
		account.EnrolledCourses = next
		added = true
		return true, nil
	})
	if err != nil {
		s.logger.Error("enrollment failed", zap.String("course_id", courseID), zap.Error(err))
		return err
	}
	if updated == nil {
		s.logger.Debug("enroll ignored without session", zap.String("course_id", courseID))
		return nil
	}
	if added {
		s.metrics.RecordEnrollment()
		s.logger.Info("course enrolled", zap.String("account_id", updated.ID), zap.String("course_id", courseID))
	}
	s.notifier.Notify(ctx, success("You've successfully enrolled in this course!"))
	return nil
}

// EnrolledCourses maps the session's enrolled ids onto the catalog, skipping unknown ids.
// Enrollment dates are not recorded, so each course carries today's date.
func (s *EnrollmentService) EnrolledCourses(ctx context.Context) []models.EnrolledCourse {
	current := s.sessions.Current()
	if current == nil {
		return []models.EnrolledCourse{}
	}
	today := s.now().Format(dateLayout)
	out := make([]models.EnrolledCourse, 0, len(current.EnrolledCourses))
	for _, id := range current.EnrolledCourses {
		course, ok := catalog.FindCourse(s.courses, id)
		if !ok {
			continue
		}
		out = append(out, models.EnrolledCourse{Course: course, EnrollmentDate: today})
	}
	return out
}
