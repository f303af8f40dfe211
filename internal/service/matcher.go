package service

import (
	"fmt"
	"strings"
	"sync"

	"gamecenter-backend/internal/repository"

	"github.com/google/uuid"
)

// GameMatch is the result of resolving an event title against the mapping
// table. A zero Confidence means no match; GameID is nil in that case.
type GameMatch struct {
	GameID              *uuid.UUID `json:"game_id"`
	GameName            string     `json:"game_name"`
	AverageDuration     int        `json:"average_duration"`
	MinimumBreakMinutes int        `json:"minimum_break_minutes"`
	Confidence          int        `json:"confidence"`
}

// Matched reports whether a game was resolved
func (m *GameMatch) Matched() bool {
	return m.GameID != nil
}

type mappingEntry struct {
	pattern             string
	gameID              uuid.UUID
	gameName            string
	averageDuration     int
	minimumBreakMinutes int
}

// MatcherService resolves free-text event titles to catalog games using the
// active mapping patterns. The working set is cached in process; callers
// mutating mappings or games must call RefreshCache.
type MatcherService struct {
	mappingRepo repository.GameMappingRepositoryInterface

	mu      sync.RWMutex
	entries []mappingEntry
	loaded  bool
}

// NewMatcherService creates a new matcher service
func NewMatcherService(mappingRepo repository.GameMappingRepositoryInterface) *MatcherService {
	return &MatcherService{mappingRepo: mappingRepo}
}

// RefreshCache reloads the active mapping patterns from the store
func (s *MatcherService) RefreshCache() error {
	mappings, err := s.mappingRepo.GetActiveWithGames()
	if err != nil {
		return fmt.Errorf("failed to load game mappings: %w", err)
	}

	entries := make([]mappingEntry, 0, len(mappings))
	for _, m := range mappings {
		pattern := strings.TrimSpace(m.EventNamePattern)
		if pattern == "" {
			continue
		}
		entries = append(entries, mappingEntry{
			pattern:             pattern,
			gameID:              m.GameID,
			gameName:            m.Game.Name,
			averageDuration:     m.Game.AverageDuration,
			minimumBreakMinutes: m.Game.MinimumBreakMinutes,
		})
	}

	s.mu.Lock()
	s.entries = entries
	s.loaded = true
	s.mu.Unlock()
	return nil
}

// FindMatchingGame resolves the title to a game. A pattern matches when it
// occurs as a case-insensitive substring of the title; the longest pattern
// wins. Confidence is 100 for a full-title match, otherwise scaled by the
// pattern's coverage of the title and clamped to [1,99]. No match returns
// a zero-confidence result, never an error.
func (s *MatcherService) FindMatchingGame(title string) (*GameMatch, error) {
	if err := s.ensureLoaded(); err != nil {
		return nil, err
	}

	normalized := strings.ToLower(strings.TrimSpace(title))
	if normalized == "" {
		return &GameMatch{}, nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var best *mappingEntry
	for i := range s.entries {
		entry := &s.entries[i]
		if !strings.Contains(normalized, strings.ToLower(entry.pattern)) {
			continue
		}
		if best == nil || len(entry.pattern) > len(best.pattern) {
			best = entry
		}
	}

	if best == nil {
		return &GameMatch{}, nil
	}

	gameID := best.gameID
	return &GameMatch{
		GameID:              &gameID,
		GameName:            best.gameName,
		AverageDuration:     best.averageDuration,
		MinimumBreakMinutes: best.minimumBreakMinutes,
		Confidence:          confidence(best.pattern, normalized),
	}, nil
}

func (s *MatcherService) ensureLoaded() error {
	s.mu.RLock()
	loaded := s.loaded
	s.mu.RUnlock()
	if loaded {
		return nil
	}
	return s.RefreshCache()
}

// confidence scores a substring match. Full-title equality scores 100;
// partial matches score by proportional coverage, clamped so any match
// stays strictly between 0 and 100.
func confidence(pattern, normalizedTitle string) int {
	if strings.EqualFold(strings.TrimSpace(pattern), normalizedTitle) {
		return 100
	}
	score := len(pattern) * 100 / len(normalizedTitle)
	if score < 1 {
		score = 1
	}
	if score > 99 {
		score = 99
	}
	return score
}
