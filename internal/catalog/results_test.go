package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/noah-isme/alpstech-academy-api/internal/models"
	"github.com/noah-isme/alpstech-academy-api/internal/seed"
)

func resultIDs(results []models.AdminResult) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.ID
	}
	return out
}

func TestFilterResultsAdminScope(t *testing.T) {
	rows := seed.AdminResults()

	got := FilterResults(rows, ResultFilter{Text: "jane", Scope: ScopeAdmin})
	assert.Equal(t, []string{"2"}, resultIDs(got))

	got = FilterResults(rows, ResultFilter{Text: "stu003", Scope: ScopeAdmin})
	assert.Equal(t, []string{"3"}, resultIDs(got))

	got = FilterResults(rows, ResultFilter{Text: "jane", Scope: ScopeStudent})
	assert.Empty(t, got)
}

func TestFilterResultsCategorical(t *testing.T) {
	rows := seed.AdminResults()

	got := FilterResults(rows, ResultFilter{CourseID: "5", Grade: All, Scope: ScopeAdmin})
	assert.Equal(t, []string{"3"}, resultIDs(got))

	got = FilterResults(rows, ResultFilter{Text: "fundamentals", Grade: "B+"})
	assert.Equal(t, []string{"1"}, resultIDs(got))
}

func TestFilterStudentResults(t *testing.T) {
	got := FilterStudentResults(seed.Results(), ResultFilter{Text: "javascript"})
	require.Len(t, got, 1)
	assert.Equal(t, "2", got[0].ID)
}

func TestVisibleResults(t *testing.T) {
	account := models.PublicAccount{Results: []string{"3", "1"}}
	got := VisibleResults(seed.Results(), account)
	require.Len(t, got, 2)
	assert.Equal(t, "1", got[0].ID)
	assert.Equal(t, "3", got[1].ID)

	assert.Empty(t, VisibleResults(seed.Results(), models.PublicAccount{}))
}

func TestLatestResult(t *testing.T) {
	assert.Nil(t, LatestResult(nil))
	latest := LatestResult(seed.Results())
	require.NotNil(t, latest)
	assert.Equal(t, "2023-11-10", latest.Date)
}

func TestFilterResultsKeepsNeedleWhitespace(t *testing.T) {
	rows := []models.AdminResult{
		{Result: models.Result{ID: "1", CourseName: "Web Basics"}, StudentName: "Jane"},
		{Result: models.Result{ID: "2", CourseName: "Modern web apps"}, StudentName: "John"},
	}
	assert.Equal(t, []string{"2"}, resultIDs(FilterResults(rows, ResultFilter{Text: " web", Scope: ScopeAdmin})))
}
