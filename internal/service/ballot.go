package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
)

// ElectionRepository provides the static election calendar.
type ElectionRepository interface {
	GetAll() []domain.Election
}

// BallotService serves elections and candidate listings, including the
// jurisdiction-relevance filter driven by a session's resolved districts.
type BallotService interface {
	ListElections(now time.Time) []dto.ElectionResponse
	ListCandidates(ctx context.Context, sessionID, level string, relevantOnly bool) (*dto.CandidateListResponse, error)
	GetCandidate(ctx context.Context, id string) (*dto.CandidateResponse, error)
}

type ballotService struct {
	candidates domain.CandidateRepository
	elections  ElectionRepository
	sessions   SessionService
}

func NewBallotService(
	candidates domain.CandidateRepository,
	elections ElectionRepository,
	sessions SessionService,
) BallotService {
	return &ballotService{
		candidates: candidates,
		elections:  elections,
		sessions:   sessions,
	}
}

func (s *ballotService) ListElections(now time.Time) []dto.ElectionResponse {
	all := s.elections.GetAll()
	resp := make([]dto.ElectionResponse, 0, len(all))
	for _, e := range all {
		resp = append(resp, dto.ElectionResponse{
			ID:        e.ID,
			Name:      e.Name,
			Date:      e.Date,
			Type:      string(e.Type),
			DaysUntil: e.DaysUntil(now),
		})
	}
	return resp
}

func (s *ballotService) ListCandidates(ctx context.Context, sessionID, level string, relevantOnly bool) (*dto.CandidateListResponse, error) {
	var candidates []domain.Candidate
	var err error

	resp := &dto.CandidateListResponse{Candidates: []dto.CandidateResponse{}}

	if level != "" {
		parsed, perr := domain.ParseLevel(level)
		if perr != nil {
			return nil, perr
		}
		resp.Level = string(parsed)
		candidates, err = s.candidates.GetByLevel(parsed)
	} else {
		candidates, err = s.candidates.GetAll()
	}
	if err != nil {
		return nil, err
	}

	if relevantOnly {
		saved, err := s.sessions.GetAddress(ctx, sessionID)
		if err != nil {
			return nil, err
		}
		if saved != nil {
			candidates = FilterCandidates(saved.Districts, saved.Address.City, candidates)
			resp.Filtered = true
		}
	}

	selection, err := s.sessions.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	for _, c := range candidates {
		selected := string(selection.Level) == string(c.Level) && selection.Contains(c.ID)
		resp.Candidates = append(resp.Candidates, dto.NewCandidateResponse(c, selected))
	}
	return resp, nil
}

func (s *ballotService) GetCandidate(ctx context.Context, id string) (*dto.CandidateResponse, error) {
	c, err := s.candidates.GetByID(id)
	if err != nil {
		return nil, err
	}
	resp := dto.NewCandidateResponse(*c, false)
	return &resp, nil
}

// FilterCandidates returns the candidates whose jurisdiction label matches
// any relevance rule for the given bundle and city. An empty match set means
// the filter was inconclusive; the full input is returned instead.
func FilterCandidates(bundle domain.DistrictBundle, city string, candidates []domain.Candidate) []domain.Candidate {
	if len(candidates) == 0 {
		return candidates
	}
	var matched []domain.Candidate
	for _, c := range candidates {
		if jurisdictionRelevant(c.Jurisdiction, bundle, city) {
			matched = append(matched, c)
		}
	}
	if len(matched) == 0 {
		return candidates
	}
	return matched
}

// RelevantJurisdictions filters a set of jurisdiction labels by the same
// rules, with the same inconclusive-filter fallback.
func RelevantJurisdictions(bundle domain.DistrictBundle, city string, labels []string) []string {
	if len(labels) == 0 {
		return labels
	}
	var matched []string
	for _, label := range labels {
		if jurisdictionRelevant(label, bundle, city) {
			matched = append(matched, label)
		}
	}
	if len(matched) == 0 {
		return labels
	}
	return matched
}

// jurisdictionRelevant evaluates the relevance rules for one label. The rules
// are ORed; label matching is deliberately recall-favoring: the substring
// rules for school districts and city-embedded special districts can
// over-match, which is accepted given the free-text jurisdiction labels.
func jurisdictionRelevant(label string, bundle domain.DistrictBundle, city string) bool {
	// County-wide offices apply to every address in the county.
	if label == "King County" || label == "Port of Seattle" {
		return true
	}

	if domain.IsResolved(bundle.LegislativeDistrict) &&
		label == "Legislative District "+bundle.LegislativeDistrict {
		return true
	}
	if domain.IsResolved(bundle.CongressionalDistrict) &&
		label == "Congressional District "+bundle.CongressionalDistrict {
		return true
	}
	if domain.IsResolved(bundle.CountyCouncilDistrict) &&
		label == "King County Council District "+bundle.CountyCouncilDistrict {
		return true
	}
	if domain.IsResolved(bundle.SchoolDistrict) &&
		strings.Contains(label, bundle.SchoolDistrict) {
		return true
	}

	if city != "" {
		if label == "City of "+city || label == "Town of "+city {
			return true
		}
		lowerLabel := strings.ToLower(label)
		lowerCity := strings.ToLower(city)
		if strings.Contains(lowerLabel, lowerCity) ||
			strings.Contains(lowerLabel, strings.ReplaceAll(lowerCity, " ", "")) {
			return true
		}
	}
	return false
}

// policyCategoryUnion collects the distinct policy categories declared by any
// of the given candidates, sorted for stable output.
func policyCategoryUnion(candidates []domain.Candidate) []string {
	seen := make(map[string]struct{})
	for _, c := range candidates {
		for _, p := range c.Policies {
			seen[p.Category] = struct{}{}
		}
	}
	categories := make([]string, 0, len(seen))
	for category := range seen {
		categories = append(categories, category)
	}
	sort.Strings(categories)
	return categories
}
