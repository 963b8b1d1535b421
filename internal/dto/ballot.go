package dto

import "civicvoter/internal/domain"

// SessionResponse is the payload for POST /api/sessions.
type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// ElectionResponse is one election calendar entry with its countdown.
type ElectionResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Date      string `json:"date"`
	Type      string `json:"type"`
	DaysUntil int    `json:"days_until"`
}

// CandidateResponse mirrors one candidate record for API consumers.
type CandidateResponse struct {
	ID           string `json:"id"`
	Jurisdiction string `json:"jurisdiction"`
	BallotTitle  string `json:"ballot_title"`
	Name         string `json:"name"`
	Party        string `json:"party"`

	Email   string `json:"email,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Website string `json:"website,omitempty"`

	ElectedExperience      string `json:"elected_experience,omitempty"`
	ProfessionalExperience string `json:"professional_experience,omitempty"`
	Education              string `json:"education,omitempty"`
	CommunityService       string `json:"community_service,omitempty"`
	Statement              string `json:"statement,omitempty"`

	Level    string          `json:"level"`
	Policies []domain.Policy `json:"policies,omitempty"`
	Selected bool            `json:"selected"`
}

// NewCandidateResponse maps a domain candidate onto its API shape.
func NewCandidateResponse(c domain.Candidate, selected bool) CandidateResponse {
	return CandidateResponse{
		ID:                     c.ID,
		Jurisdiction:           c.Jurisdiction,
		BallotTitle:            c.BallotTitle,
		Name:                   c.Name,
		Party:                  c.Party,
		Email:                  c.Email,
		Phone:                  c.Phone,
		Website:                c.Website,
		ElectedExperience:      c.ElectedExperience,
		ProfessionalExperience: c.ProfessionalExperience,
		Education:              c.Education,
		CommunityService:       c.CommunityService,
		Statement:              c.Statement,
		Level:                  string(c.Level),
		Policies:               c.Policies,
		Selected:               selected,
	}
}

// CandidateListResponse is a filtered or level-scoped candidate listing.
type CandidateListResponse struct {
	Level      string              `json:"level,omitempty"`
	Filtered   bool                `json:"filtered"`
	Candidates []CandidateResponse `json:"candidates"`
}

// ToggleSelectionRequest is the payload for POST /api/selection/toggle.
type ToggleSelectionRequest struct {
	Level       string `json:"level" example:"city"`
	CandidateID string `json:"candidate_id" example:"3"`
}

// SelectionResponse is the current comparison selection for a session.
type SelectionResponse struct {
	Level        string   `json:"level"`
	CandidateIDs []string `json:"candidate_ids"`
	Changed      bool     `json:"changed"`
}

// CompareResponse holds the selected candidates side by side, plus the union
// of the policy categories any of them declares.
type CompareResponse struct {
	Level      string              `json:"level"`
	Candidates []CandidateResponse `json:"candidates"`
	Categories []string            `json:"categories"`
}
