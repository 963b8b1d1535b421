package domain

// Quiz option weights. An option's weight expresses how strongly it aligns
// with the position statements candidates declare in that policy area; the
// observed range in the dataset is -1 to 5.
const (
	// MaxOptionWeight is the theoretical maximum weight per question. The
	// scoring denominator accrues this amount for every answered question,
	// independent of the candidate.
	MaxOptionWeight = 5

	// StrongAlignmentWeight is the cutoff at or above which an answer counts
	// fully toward a candidate's match score and the category is recorded as
	// matched.
	StrongAlignmentWeight = 3
)

// QuizOption is one selectable answer to a quiz question.
type QuizOption struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Weight int    `json:"weight"`
}

// QuizQuestion is a policy-preference question scoped to one election level.
type QuizQuestion struct {
	ID       string       `json:"id"`
	Level    Level        `json:"level"`
	Category string       `json:"category"`
	Question string       `json:"question"`
	Options  []QuizOption `json:"options"`
}

// OptionByID returns the question option with the given id, or nil.
func (q *QuizQuestion) OptionByID(id string) *QuizOption {
	for i := range q.Options {
		if q.Options[i].ID == id {
			return &q.Options[i]
		}
	}
	return nil
}

// AnswerSet maps question IDs to the chosen option ID, at most one choice per
// question. It is built incrementally and cleared on level change or retake.
type AnswerSet map[string]string

// QuizResult is one candidate's computed alignment with an answer set. It is
// derived data, recomputed on every answer-set or level change and never
// persisted.
type QuizResult struct {
	CandidateID     string   `json:"candidate_id"`
	CandidateName   string   `json:"candidate_name"`
	MatchPercentage int      `json:"match_percentage"`
	MatchedPolicies []string `json:"matched_policies"`
}
