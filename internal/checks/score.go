package checks

import "notelint/internal/domain"

const (
	errorPenalty   = 10
	warningPenalty = 5
)

// Tally fills in the severity counts and the aggregate score of a result
// bundle. Scoring starts at 100 and subtracts a fixed penalty per failed
// error or warning finding; notices and infos are advisory. The score never
// goes below 0.
func Tally(result *domain.CheckResult) {
	result.IssuesCount = 0
	result.WarningsCount = 0
	result.NoticesCount = 0

	score := 100
	for _, findings := range result.Checks {
		for _, f := range findings {
			if f.Passed {
				continue
			}
			if !f.Severity.Penalizing() {
				result.NoticesCount++
				continue
			}
			if f.Severity == domain.SeverityError {
				result.IssuesCount++
				score -= errorPenalty
			} else {
				result.WarningsCount++
				score -= warningPenalty
			}
		}
	}

	if score < 0 {
		score = 0
	}
	result.Score = score
}
