package catalog

import (
	"strings"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
)

// Scope selects which fields free-text search inspects.
type Scope int

const (
	// ScopeStudent searches the course name only.
	ScopeStudent Scope = iota
	// ScopeAdmin also searches the student name and id.
	ScopeAdmin
)

// ResultFilter narrows a result listing. Empty fields and "all" match everything.
type ResultFilter struct {
	Text     string
	CourseID string
	Grade    string
	Scope    Scope
}

// FilterResults keeps results matching every predicate of f, in input order.
func FilterResults(results []models.AdminResult, f ResultFilter) []models.AdminResult {
	needle := strings.ToLower(f.Text)
	out := make([]models.AdminResult, 0, len(results))
	for _, r := range results {
		if needle != "" && !matchesText(r, needle, f.Scope) {
			continue
		}
		if !matchesCategory(f.CourseID, r.CourseID) || !matchesCategory(f.Grade, r.Grade) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// FilterStudentResults applies f with student scope to plain results.
func FilterStudentResults(results []models.Result, f ResultFilter) []models.Result {
	wrapped := make([]models.AdminResult, len(results))
	for i, r := range results {
		wrapped[i] = models.AdminResult{Result: r}
	}
	f.Scope = ScopeStudent
	filtered := FilterResults(wrapped, f)
	out := make([]models.Result, len(filtered))
	for i, r := range filtered {
		out[i] = r.Result
	}
	return out
}

// VisibleResults returns the results whose ids the account lists, in dataset order.
func VisibleResults(results []models.Result, account models.PublicAccount) []models.Result {
	out := make([]models.Result, 0, len(account.Results))
	for _, r := range results {
		if account.HasResult(r.ID) {
			out = append(out, r)
		}
	}
	return out
}

// LatestResult returns the most recent result by date. Dates are YYYY-MM-DD so they order
// lexically; the first of equal dates wins.
func LatestResult(results []models.Result) *models.Result {
	if len(results) == 0 {
		return nil
	}
	latest := results[0]
	for _, r := range results[1:] {
		if r.Date > latest.Date {
			latest = r
		}
	}
	return &latest
}

func matchesText(r models.AdminResult, needle string, scope Scope) bool {
	if strings.Contains(strings.ToLower(r.CourseName), needle) {
		return true
	}
	if scope != ScopeAdmin {
		return false
	}
	return strings.Contains(strings.ToLower(r.StudentName), needle) ||
		strings.Contains(strings.ToLower(r.StudentID), needle)
}
