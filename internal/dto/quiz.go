package dto

import "civicvoter/internal/domain"

// QuizQuestionResponse is one quiz question as served to clients. Option
// weights stay server-side; exposing them would let answers be gamed against
// specific candidates.
type QuizQuestionResponse struct {
	ID       string               `json:"id"`
	Level    string               `json:"level"`
	Category string               `json:"category"`
	Question string               `json:"question"`
	Options  []QuizOptionResponse `json:"options"`
}

type QuizOptionResponse struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// NewQuizQuestionResponse maps a domain question onto its API shape.
func NewQuizQuestionResponse(q domain.QuizQuestion) QuizQuestionResponse {
	resp := QuizQuestionResponse{
		ID:       q.ID,
		Level:    string(q.Level),
		Category: q.Category,
		Question: q.Question,
	}
	for _, opt := range q.Options {
		resp.Options = append(resp.Options, QuizOptionResponse{ID: opt.ID, Text: opt.Text})
	}
	return resp
}

// ScoreQuizRequest is the payload for POST /api/quiz/score. Answers maps
// question IDs to the chosen option ID.
type ScoreQuizRequest struct {
	Level   string            `json:"level" example:"state"`
	Answers map[string]string `json:"answers"`
}

// ScoreQuizResponse carries ranked quiz results for one level.
type ScoreQuizResponse struct {
	Level   string              `json:"level"`
	Results []domain.QuizResult `json:"results"`
}
