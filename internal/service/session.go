package service

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"
	"time"

	"civicvoter/internal/cache"
	"civicvoter/internal/domain"
	"civicvoter/internal/logger"
	"civicvoter/internal/util"

	"go.uber.org/zap"
)

// Checklist names accepted by the checklist endpoints.
const (
	ChecklistGetReady = "get-ready"
	ChecklistHome     = "home"
)

// SavedAddress is the per-session address record: the raw input, its parsed
// form, and the district bundle resolved for it.
type SavedAddress struct {
	Input     string                `json:"input"`
	Address   domain.Address        `json:"address"`
	Districts domain.DistrictBundle `json:"districts"`
	Source    string                `json:"source"`
}

// SessionService owns all per-session state: the saved address, the
// comparison selection, the checklists, and the resolution token used to
// discard stale address resolutions.
type SessionService interface {
	NewSession(ctx context.Context) (string, error)

	SaveAddress(ctx context.Context, sessionID string, record SavedAddress) error
	GetAddress(ctx context.Context, sessionID string) (*SavedAddress, error)

	SaveSelection(ctx context.Context, sessionID string, sel domain.Selection) error
	GetSelection(ctx context.Context, sessionID string) (domain.Selection, error)
	ClearSelection(ctx context.Context, sessionID string) error

	GetChecklist(ctx context.Context, sessionID, name string) (map[string]bool, error)
	PutChecklist(ctx context.Context, sessionID, name string, items map[string]bool) error

	// NextResolutionToken issues a new monotonically increasing token for an
	// address resolution on this session.
	NextResolutionToken(ctx context.Context, sessionID string) (int64, error)

	// CurrentResolutionToken returns the most recently issued token, zero if
	// none was ever issued.
	CurrentResolutionToken(ctx context.Context, sessionID string) (int64, error)
}

type sessionService struct {
	cache domain.Cache
	ttl   time.Duration
}

// NewSessionService creates a SessionService backed by the given cache.
func NewSessionService(c domain.Cache, ttl time.Duration) SessionService {
	return &sessionService{cache: c, ttl: ttl}
}

func (s *sessionService) NewSession(ctx context.Context) (string, error) {
	id := util.NewULID()
	key := cache.GenerateCacheKey("session", "meta", id)
	if err := s.cache.Set(ctx, key, time.Now().UTC().Format(time.RFC3339), s.ttl); err != nil {
		return "", domain.NewInternalError("Failed to create session", err)
	}
	return id, nil
}

func (s *sessionService) SaveAddress(ctx context.Context, sessionID string, record SavedAddress) error {
	data, err := json.Marshal(record)
	if err != nil {
		return domain.NewInternalError("Failed to encode saved address", err)
	}
	key := cache.GenerateCacheKey("session", "address", sessionID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError("Failed to save address", err)
	}
	return nil
}

// GetAddress returns nil when no address is saved. Malformed stored JSON is
// treated as absent state, not an error.
func (s *sessionService) GetAddress(ctx context.Context, sessionID string) (*SavedAddress, error) {
	key := cache.GenerateCacheKey("session", "address", sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, nil
		}
		return nil, domain.NewInternalError("Failed to read saved address", err)
	}
	var record SavedAddress
	if err := json.Unmarshal([]byte(data), &record); err != nil {
		logger.Get().Warn("Discarding malformed saved address",
			zap.String("sessionID", sessionID), zap.Error(err))
		return nil, nil
	}
	return &record, nil
}

func (s *sessionService) SaveSelection(ctx context.Context, sessionID string, sel domain.Selection) error {
	data, err := json.Marshal(sel)
	if err != nil {
		return domain.NewInternalError("Failed to encode selection", err)
	}
	key := cache.GenerateCacheKey("session", "selection", sessionID)
	if err := s.cache.Set(ctx, key, string(data), s.ttl); err != nil {
		return domain.NewInternalError("Failed to save selection", err)
	}
	return nil
}

// GetSelection returns an empty selection when none is stored or the stored
// value is malformed.
func (s *sessionService) GetSelection(ctx context.Context, sessionID string) (domain.Selection, error) {
	key := cache.GenerateCacheKey("session", "selection", sessionID)
	data, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return domain.Selection{}, nil
		}
		return domain.Selection{}, domain.NewInternalError("Failed to read selection", err)
	}
	var sel domain.Selection
	if err := json.Unmarshal([]byte(data), &sel); err != nil {
		logger.Get().Warn("Discarding malformed selection",
			zap.String("sessionID", sessionID), zap.Error(err))
		return domain.Selection{}, nil
	}
	return sel, nil
}

func (s *sessionService) ClearSelection(ctx context.Context, sessionID string) error {
	key := cache.GenerateCacheKey("session", "selection", sessionID)
	if err := s.cache.Delete(ctx, key); err != nil {
		return domain.NewInternalError("Failed to clear selection", err)
	}
	return nil
}

func validChecklistName(name string) bool {
	return name == ChecklistGetReady || name == ChecklistHome
}

func (s *sessionService) GetChecklist(ctx context.Context, sessionID, name string) (map[string]bool, error) {
	if !validChecklistName(name) {
		return nil, domain.NewInvalidInputError("Unknown checklist: " + name)
	}
	key := cache.GenerateCacheKey("session", "checklist", sessionID, name)
	fields, err := s.cache.HGetAll(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return map[string]bool{}, nil
		}
		return nil, domain.NewInternalError("Failed to read checklist", err)
	}
	items := make(map[string]bool, len(fields))
	for item, raw := range fields {
		done, err := strconv.ParseBool(raw)
		if err != nil {
			// Corrupt field, treat as not done.
			continue
		}
		items[item] = done
	}
	return items, nil
}

func (s *sessionService) PutChecklist(ctx context.Context, sessionID, name string, items map[string]bool) error {
	if !validChecklistName(name) {
		return domain.NewInvalidInputError("Unknown checklist: " + name)
	}
	key := cache.GenerateCacheKey("session", "checklist", sessionID, name)
	for item, done := range items {
		if err := s.cache.HSet(ctx, key, item, strconv.FormatBool(done)); err != nil {
			return domain.NewInternalError("Failed to update checklist", err)
		}
	}
	if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
		return domain.NewInternalError("Failed to update checklist expiry", err)
	}
	return nil
}

func (s *sessionService) NextResolutionToken(ctx context.Context, sessionID string) (int64, error) {
	key := cache.GenerateCacheKey("session", "token", sessionID)
	token, err := s.cache.Incr(ctx, key)
	if err != nil {
		return 0, domain.NewInternalError("Failed to issue resolution token", err)
	}
	if err := s.cache.Expire(ctx, key, s.ttl); err != nil {
		logger.Get().Warn("Failed to set token expiry", zap.String("sessionID", sessionID), zap.Error(err))
	}
	return token, nil
}

func (s *sessionService) CurrentResolutionToken(ctx context.Context, sessionID string) (int64, error) {
	key := cache.GenerateCacheKey("session", "token", sessionID)
	raw, err := s.cache.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return 0, nil
		}
		return 0, domain.NewInternalError("Failed to read resolution token", err)
	}
	token, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, nil
	}
	return token, nil
}
