// Package catalog holds the pure query operations behind the course and result views:
// filtering, sorting, grading and statistics. Nothing here touches session or storage state.
package catalog

import (
	"sort"
	"strings"
	"sync"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
)

// All disables a categorical filter.
const All = "all"

// CourseFilter narrows a course listing. Empty fields and "all" match everything.
type CourseFilter struct {
	Text   string
	Level  string
	Status string
}

// SortKey orders a course listing.
type SortKey string

const (
	SortDefault   SortKey = "default"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
	SortTitleAsc  SortKey = "title-asc"
	SortTitleDesc SortKey = "title-desc"
)

// ParseSortKey maps unknown keys to SortDefault.
func ParseSortKey(raw string) SortKey {
	switch key := SortKey(strings.ToLower(strings.TrimSpace(raw))); key {
	case SortPriceAsc, SortPriceDesc, SortTitleAsc, SortTitleDesc:
		return key
	default:
		return SortDefault
	}
}

// FilterCourses keeps courses whose title, description or instructor contains the text
// (case-insensitive) and whose level and status match. Input order is preserved.
func FilterCourses(courses []models.Course, f CourseFilter) []models.Course {
	needle := strings.ToLower(f.Text)
	out := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if needle != "" &&
			!strings.Contains(strings.ToLower(c.Title), needle) &&
			!strings.Contains(strings.ToLower(c.Description), needle) &&
			!strings.Contains(strings.ToLower(c.Instructor), needle) {
			continue
		}
		if !matchesCategory(f.Level, string(c.Level)) || !matchesCategory(f.Status, string(c.EnrollmentStatus)) {
			continue
		}
		out = append(out, c)
	}
	return out
}

// SortCourses returns a sorted copy. Ties keep their input order.
func SortCourses(courses []models.Course, key SortKey) []models.Course {
	out := make([]models.Course, len(courses))
	copy(out, courses)

	var less func(a, b models.Course) bool
	switch key {
	case SortPriceAsc:
		less = func(a, b models.Course) bool { return a.Price < b.Price }
	case SortPriceDesc:
		less = func(a, b models.Course) bool { return a.Price > b.Price }
	case SortTitleAsc:
		less = func(a, b models.Course) bool { return compareTitles(a.Title, b.Title) < 0 }
	case SortTitleDesc:
		less = func(a, b models.Course) bool { return compareTitles(a.Title, b.Title) > 0 }
	default:
		return out
	}
	sort.SliceStable(out, func(i, j int) bool { return less(out[i], out[j]) })
	return out
}

// FindCourse returns the course with id or false.
func FindCourse(courses []models.Course, id string) (models.Course, bool) {
	for _, c := range courses {
		if c.ID == id {
			return c, true
		}
	}
	return models.Course{}, false
}

// collate.Collator is not safe for concurrent use.
var (
	collatorMu sync.Mutex
	collator   = collate.New(language.English)
)

func compareTitles(a, b string) int {
	collatorMu.Lock()
	defer collatorMu.Unlock()
	return collator.CompareString(a, b)
}

func matchesCategory(want, got string) bool {
	return want == "" || strings.EqualFold(want, All) || want == got
}
