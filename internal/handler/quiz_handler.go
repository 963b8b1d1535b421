package handler

import (
	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
	"civicvoter/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz question and scoring requests
type QuizHandler struct {
	quiz service.QuizService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quiz service.QuizService) *QuizHandler {
	return &QuizHandler{quiz: quiz}
}

// GetQuestions godoc
// @Summary Get the quiz questions for a level
// @Tags quiz
// @Produce json
// @Param level query string true "Election level"
// @Success 200 {array} dto.QuizQuestionResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /quiz/questions [get]
func (h *QuizHandler) GetQuestions(c *fiber.Ctx) error {
	questions, err := h.quiz.GetQuestions(c.Query("level"))
	if err != nil {
		return err
	}
	return c.JSON(questions)
}

// ScoreQuiz godoc
// @Summary Score candidates against quiz answers
// @Description Ranks the level's candidates by alignment with the submitted answers
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.ScoreQuizRequest true "Level and answers"
// @Success 200 {object} dto.ScoreQuizResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Failure 503 {object} middleware.ErrorResponse
// @Router /quiz/score [post]
func (h *QuizHandler) ScoreQuiz(c *fiber.Ctx) error {
	var req dto.ScoreQuizRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("Invalid request body")
	}
	resp, err := h.quiz.Score(req.Level, req.Answers)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
