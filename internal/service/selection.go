package service

import (
	"context"
	"errors"

	"civicvoter/internal/domain"
	"civicvoter/internal/dto"
)

// SelectionService manages the bounded comparison selection for a session.
type SelectionService interface {
	// Toggle adds or removes a candidate from the session's selection.
	// Switching to a different level clears the previous selection first;
	// selections are scoped to one level at a time.
	Toggle(ctx context.Context, sessionID string, req dto.ToggleSelectionRequest) (*dto.SelectionResponse, error)

	Get(ctx context.Context, sessionID string) (*dto.SelectionResponse, error)

	// Compare returns the selected candidates side by side with the union of
	// their declared policy categories.
	Compare(ctx context.Context, sessionID string) (*dto.CompareResponse, error)
}

type selectionService struct {
	candidates domain.CandidateRepository
	sessions   SessionService
}

func NewSelectionService(candidates domain.CandidateRepository, sessions SessionService) SelectionService {
	return &selectionService{candidates: candidates, sessions: sessions}
}

func (s *selectionService) Toggle(ctx context.Context, sessionID string, req dto.ToggleSelectionRequest) (*dto.SelectionResponse, error) {
	level, err := domain.ParseLevel(req.Level)
	if err != nil {
		return nil, err
	}
	candidate, err := s.candidates.GetByID(req.CandidateID)
	if err != nil {
		return nil, err
	}
	if candidate.Level != level {
		return nil, domain.NewInvalidInputError("Candidate does not belong to level: " + req.Level)
	}

	sel, err := s.sessions.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if sel.Level != level {
		// Level switch starts a fresh selection.
		sel = domain.Selection{Level: level}
	}

	changed := sel.Toggle(req.CandidateID)
	if changed {
		if err := s.sessions.SaveSelection(ctx, sessionID, sel); err != nil {
			return nil, err
		}
	}

	return &dto.SelectionResponse{
		Level:        string(sel.Level),
		CandidateIDs: sel.CandidateIDs,
		Changed:      changed,
	}, nil
}

func (s *selectionService) Get(ctx context.Context, sessionID string) (*dto.SelectionResponse, error) {
	sel, err := s.sessions.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	return &dto.SelectionResponse{
		Level:        string(sel.Level),
		CandidateIDs: sel.CandidateIDs,
	}, nil
}

func (s *selectionService) Compare(ctx context.Context, sessionID string) (*dto.CompareResponse, error) {
	sel, err := s.sessions.GetSelection(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	resp := &dto.CompareResponse{
		Level:      string(sel.Level),
		Candidates: []dto.CandidateResponse{},
		Categories: []string{},
	}

	var selected []domain.Candidate
	for _, id := range sel.CandidateIDs {
		c, err := s.candidates.GetByID(id)
		if err != nil {
			// A dataset reload can invalidate stored IDs; skip them rather
			// than failing the whole comparison.
			var domainErr *domain.DomainError
			if errors.As(err, &domainErr) && domainErr.Code == domain.ErrCandidateNotFound {
				continue
			}
			return nil, err
		}
		selected = append(selected, *c)
		resp.Candidates = append(resp.Candidates, dto.NewCandidateResponse(*c, true))
	}
	resp.Categories = policyCategoryUnion(selected)
	return resp, nil
}
