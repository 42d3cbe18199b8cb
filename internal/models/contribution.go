package models

import (
	"fmt"
	"time"
)

type (
	// PullRequestRef identifies a GitHub pull request parsed from its URL.
	PullRequestRef struct {
		Owner  string
		Repo   string
		Number int
	}

	// Breakdown holds the six sub-scores that make up a contribution score.
	Breakdown struct {
		CodeQuality   int `json:"codeQuality" yaml:"codeQuality"`
		TestCoverage  int `json:"testCoverage" yaml:"testCoverage"`
		Documentation int `json:"documentation" yaml:"documentation"`
		PRDescription int `json:"prDescription" yaml:"prDescription"`
		CodeStyle     int `json:"codeStyle" yaml:"codeStyle"`
		Impact        int `json:"impact" yaml:"impact"`
	}

	// ScoreResult is the outcome of scoring one contribution.
	ScoreResult struct {
		Score     int       `json:"score" yaml:"score"`
		Breakdown Breakdown `json:"breakdown" yaml:"breakdown"`
		Feedback  string    `json:"feedback" yaml:"feedback"`
	}

	// PRDetails is the metadata reported for a pull request.
	PRDetails struct {
		Owner     string    `json:"owner" yaml:"owner"`
		Repo      string    `json:"repo" yaml:"repo"`
		PRNumber  int       `json:"prNumber" yaml:"prNumber"`
		URL       string    `json:"url" yaml:"url"`
		Title     string    `json:"title" yaml:"title"`
		State     string    `json:"state" yaml:"state"`
		Author    string    `json:"author" yaml:"author"`
		CreatedAt time.Time `json:"createdAt" yaml:"createdAt"`
	}

	// ScoredContribution is the per-URL outcome of a batch run.
	ScoredContribution struct {
		URL    string       `json:"url" yaml:"url"`
		Result *ScoreResult `json:"result,omitempty" yaml:"result,omitempty"`
		Err    error        `json:"-" yaml:"-"`
		Error  string       `json:"error,omitempty" yaml:"error,omitempty"`
		Cached bool         `json:"cached" yaml:"cached"`
		// ReviewerNotes are optional AI notes. They never affect Result.
		ReviewerNotes string `json:"reviewerNotes,omitempty" yaml:"reviewerNotes,omitempty"`
	}
)

// String renders the reference in owner/repo#number form.
func (r PullRequestRef) String() string {
	return fmt.Sprintf("%s/%s#%d", r.Owner, r.Repo, r.Number)
}
