package repository

import "civicvoter/internal/domain"

// StaticQuestionRepository serves the curated policy-preference question set.
// Questions are grouped by election level; option weights run from -1 to 5.
type StaticQuestionRepository struct {
	questions []domain.QuizQuestion
	byLevel   map[domain.Level][]domain.QuizQuestion
	byID      map[string]*domain.QuizQuestion
}

// NewStaticQuestionRepository returns the built-in question set.
func NewStaticQuestionRepository() *StaticQuestionRepository {
	repo := &StaticQuestionRepository{
		questions: quizQuestions,
		byLevel:   make(map[domain.Level][]domain.QuizQuestion),
		byID:      make(map[string]*domain.QuizQuestion),
	}
	for i := range repo.questions {
		q := &repo.questions[i]
		repo.byLevel[q.Level] = append(repo.byLevel[q.Level], *q)
		repo.byID[q.ID] = q
	}
	return repo
}

// GetAll returns every question.
func (r *StaticQuestionRepository) GetAll() []domain.QuizQuestion {
	return r.questions
}

// GetByLevel returns the questions for one election level.
func (r *StaticQuestionRepository) GetByLevel(level domain.Level) []domain.QuizQuestion {
	return r.byLevel[level]
}

// GetByID returns a single question, or nil if unknown.
func (r *StaticQuestionRepository) GetByID(id string) *domain.QuizQuestion {
	return r.byID[id]
}

var quizQuestions = []domain.QuizQuestion{
	{
		ID:       "state-edu-1",
		Level:    domain.LevelState,
		Category: "Education",
		Question: "How should the state fund public education?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Significantly increase funding through progressive taxation", Weight: 5},
			{ID: "b", Text: "Moderately increase funding", Weight: 3},
			{ID: "c", Text: "Maintain current funding levels", Weight: 1},
			{ID: "d", Text: "Reduce funding and increase local control", Weight: -1},
		},
	},
	{
		ID:       "state-housing-1",
		Level:    domain.LevelState,
		Category: "Housing",
		Question: "What should be the state's approach to housing affordability?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Heavy investment in subsidized affordable housing", Weight: 5},
			{ID: "b", Text: "Incentivize private developers to build affordable units", Weight: 3},
			{ID: "c", Text: "Reduce zoning restrictions to increase supply", Weight: 2},
			{ID: "d", Text: "Let the market determine housing prices", Weight: -1},
		},
	},
	{
		ID:       "state-transit-1",
		Level:    domain.LevelState,
		Category: "Transportation",
		Question: "What transportation investments should the state prioritize?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Expand public transit (light rail, buses)", Weight: 5},
			{ID: "b", Text: "Balance transit and road improvements", Weight: 3},
			{ID: "c", Text: "Focus on road maintenance and expansion", Weight: 1},
			{ID: "d", Text: "Minimize state transportation spending", Weight: -1},
		},
	},
	{
		ID:       "county-env-1",
		Level:    domain.LevelCounty,
		Category: "Environment",
		Question: "How aggressively should King County pursue climate action?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Aggressive action with mandatory emissions reductions", Weight: 5},
			{ID: "b", Text: "Strong but voluntary programs", Weight: 3},
			{ID: "c", Text: "Moderate incentive-based programs", Weight: 1},
			{ID: "d", Text: "Minimal county involvement", Weight: -1},
		},
	},
	{
		ID:       "county-safety-1",
		Level:    domain.LevelCounty,
		Category: "Public Safety",
		Question: "What should be King County's approach to criminal justice?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Focus on rehabilitation and alternatives to jail", Weight: 5},
			{ID: "b", Text: "Balance rehabilitation with enforcement", Weight: 3},
			{ID: "c", Text: "Prioritize enforcement and incarceration", Weight: 1},
			{ID: "d", Text: "Strict enforcement with longer sentences", Weight: -1},
		},
	},
	{
		ID:       "city-homeless-1",
		Level:    domain.LevelCity,
		Category: "Homelessness",
		Question: "How should the city address homelessness?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Housing-first approach with comprehensive services", Weight: 5},
			{ID: "b", Text: "Balance shelter, services, and enforcement", Weight: 3},
			{ID: "c", Text: "Prioritize clearing encampments", Weight: 1},
			{ID: "d", Text: "Strict enforcement of camping bans", Weight: -1},
		},
	},
	{
		ID:       "city-business-1",
		Level:    domain.LevelCity,
		Category: "Small Business",
		Question: "What policies should the city adopt for small businesses?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Reduce fees and streamline permitting", Weight: 5},
			{ID: "b", Text: "Balance support with regulation", Weight: 3},
			{ID: "c", Text: "Maintain current regulations", Weight: 1},
			{ID: "d", Text: "Increase regulation for public benefit", Weight: -1},
		},
	},
	{
		ID:       "school-funding-1",
		Level:    domain.LevelSchool,
		Category: "Education Funding",
		Question: "How should the school district address funding shortfalls?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Pass levies to increase local funding", Weight: 5},
			{ID: "b", Text: "Advocate for more state funding", Weight: 3},
			{ID: "c", Text: "Make budget cuts while maintaining quality", Weight: 1},
			{ID: "d", Text: "Significant cuts to reduce tax burden", Weight: -1},
		},
	},
	{
		ID:       "school-equity-1",
		Level:    domain.LevelSchool,
		Category: "Equity",
		Question: "What should be the priority for closing achievement gaps?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Invest heavily in underserved schools and students", Weight: 5},
			{ID: "b", Text: "Balanced approach across all schools", Weight: 3},
			{ID: "c", Text: "Focus on overall system improvement", Weight: 1},
			{ID: "d", Text: "Let schools compete for resources", Weight: -1},
		},
	},
	{
		ID:       "port-env-1",
		Level:    domain.LevelPort,
		Category: "Environment",
		Question: "How should the Port of Seattle balance environment and commerce?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Prioritize environmental sustainability even if costly", Weight: 5},
			{ID: "b", Text: "Balance environmental and economic goals", Weight: 3},
			{ID: "c", Text: "Prioritize economic efficiency", Weight: 1},
			{ID: "d", Text: "Minimize environmental regulations", Weight: -1},
		},
	},
	{
		ID:       "special-services-1",
		Level:    domain.LevelSpecial,
		Category: "Emergency Services",
		Question: "How should fire districts fund emergency services?",
		Options: []domain.QuizOption{
			{ID: "a", Text: "Increase levies to expand services and equipment", Weight: 5},
			{ID: "b", Text: "Maintain current service levels", Weight: 3},
			{ID: "c", Text: "Find efficiencies without service cuts", Weight: 1},
			{ID: "d", Text: "Reduce costs even if it means fewer services", Weight: -1},
		},
	},
}
