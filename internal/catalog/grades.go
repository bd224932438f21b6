package catalog

import (
	"github.com/noah-isme/alpstech-academy-api/internal/models"
	appErrors "github.com/noah-isme/alpstech-academy-api/pkg/errors"
)

// NoGrade is reported as the top grade of an empty result set.
const NoGrade = "N/A"

type band struct {
	min   float64
	grade string
	rank  float64
}

// Lower bounds are inclusive; the first matching band wins.
var ladder = []band{
	{90, "A+", 5},
	{80, "A", 4},
	{75, "B+", 3.5},
	{70, "B", 3},
	{65, "C+", 2.5},
	{60, "C", 2},
	{50, "D", 1},
	{0, "F", 0},
}

// GradeLadder lists every grade from best to worst.
func GradeLadder() []string {
	out := make([]string, len(ladder))
	for i, b := range ladder {
		out[i] = b.grade
	}
	return out
}

// Percentage returns score as a percentage of maxScore.
func Percentage(score, maxScore int) (float64, error) {
	if maxScore <= 0 {
		return 0, appErrors.ErrDivisionByZero
	}
	return float64(score) / float64(maxScore) * 100, nil
}

// ComputeGrade maps score/maxScore onto the grade ladder.
func ComputeGrade(score, maxScore int) (string, error) {
	pct, err := Percentage(score, maxScore)
	if err != nil {
		return "", err
	}
	for _, b := range ladder {
		if pct >= b.min {
			return b.grade, nil
		}
	}
	return "F", nil
}

// GradeRank orders grades; unknown labels rank below F.
func GradeRank(grade string) float64 {
	for _, b := range ladder {
		if b.grade == grade {
			return b.rank
		}
	}
	return -1
}

// ComputeStatistics reports the count, the mean of per-result percentages and the best grade.
// Ties on grade keep the first result seen.
func ComputeStatistics(results []models.Result) (models.Statistics, error) {
	if len(results) == 0 {
		return models.Statistics{TopGrade: NoGrade}, nil
	}
	var sum float64
	top := results[0].Grade
	for i, r := range results {
		pct, err := Percentage(r.Score, r.MaxScore)
		if err != nil {
			return models.Statistics{}, err
		}
		sum += pct
		if i > 0 && GradeRank(r.Grade) > GradeRank(top) {
			top = r.Grade
		}
	}
	return models.Statistics{
		Count:        len(results),
		AverageScore: sum / float64(len(results)),
		TopGrade:     top,
	}, nil
}
