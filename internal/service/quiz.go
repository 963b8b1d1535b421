package service

import (
	"math"
	"sort"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
)

// QuizService serves the policy-preference quiz and scores candidates
// against a set of answers.
type QuizService interface {
	GetQuestions(level string) ([]dto.QuizQuestionResponse, error)
	Score(level string, answers domain.AnswerSet) (*dto.ScoreQuizResponse, error)
}

type quizService struct {
	questions  domain.QuestionRepository
	candidates domain.CandidateRepository
}

func NewQuizService(questions domain.QuestionRepository, candidates domain.CandidateRepository) QuizService {
	return &quizService{questions: questions, candidates: candidates}
}

func (s *quizService) GetQuestions(level string) ([]dto.QuizQuestionResponse, error) {
	parsed, err := domain.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	questions := s.questions.GetByLevel(parsed)
	resp := make([]dto.QuizQuestionResponse, 0, len(questions))
	for _, q := range questions {
		resp = append(resp, dto.NewQuizQuestionResponse(q))
	}
	return resp, nil
}

func (s *quizService) Score(level string, answers domain.AnswerSet) (*dto.ScoreQuizResponse, error) {
	parsed, err := domain.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	questions := s.questions.GetByLevel(parsed)
	candidates, err := s.candidates.GetByLevel(parsed)
	if err != nil {
		return nil, err
	}
	return &dto.ScoreQuizResponse{
		Level:   string(parsed),
		Results: ScoreCandidates(answers, questions, candidates),
	}, nil
}

// ScoreCandidates computes a match percentage for every candidate against
// the answer set. The denominator is the theoretical maximum weight per
// answered question, identical for all candidates; a candidate with no
// declared policy in a question's category earns nothing for that question
// but still pays the denominator. Results are sorted descending by score;
// ties keep dataset order.
func ScoreCandidates(answers domain.AnswerSet, questions []domain.QuizQuestion, candidates []domain.Candidate) []domain.QuizResult {
	denominator := 0
	type answered struct {
		question *domain.QuizQuestion
		weight   int
	}
	var chosen []answered
	for i := range questions {
		q := &questions[i]
		optionID, ok := answers[q.ID]
		if !ok {
			continue
		}
		option := q.OptionByID(optionID)
		if option == nil {
			continue
		}
		denominator += domain.MaxOptionWeight
		chosen = append(chosen, answered{question: q, weight: option.Weight})
	}

	results := make([]domain.QuizResult, 0, len(candidates))
	for i := range candidates {
		c := &candidates[i]
		numerator := 0.0
		var matched []string
		for _, a := range chosen {
			if c.PolicyFor(a.question.Category) == nil {
				continue
			}
			switch {
			case a.weight >= domain.StrongAlignmentWeight:
				numerator += float64(a.weight)
				matched = append(matched, a.question.Category)
			case a.weight >= 1:
				numerator += float64(a.weight) / 2
			}
		}

		percentage := 0
		if denominator > 0 {
			percentage = int(math.Round(100 * numerator / float64(denominator)))
		}
		results = append(results, domain.QuizResult{
			CandidateID:     c.ID,
			CandidateName:   c.Name,
			MatchPercentage: percentage,
			MatchedPolicies: matched,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].MatchPercentage > results[j].MatchPercentage
	})
	return results
}
