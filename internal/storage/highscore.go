package storage

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/engine"
)

// HighScoreSlot is the single persisted high score of one board.
type HighScoreSlot struct {
	store  *Store
	gameID string
}

var _ engine.Persistence = (*HighScoreSlot)(nil)

// HighScoreSlot returns the high score slot for gameID.
func (s *Store) HighScoreSlot(gameID string) *HighScoreSlot {
	return &HighScoreSlot{store: s, gameID: gameID}
}

// Load returns the stored value. It wraps engine.ErrHighScoreMissing when
// nothing is stored and engine.ErrHighScoreCorrupt when the value is not an
// integer.
func (h *HighScoreSlot) Load() (int, error) {
	raw, ok, err := h.store.readSlot(h.gameID)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, fmt.Errorf("storage: %s: %w", h.gameID, engine.ErrHighScoreMissing)
	}

	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("storage: %s value %q: %w", h.gameID, raw, engine.ErrHighScoreCorrupt)
	}
	return v, nil
}

// Save records score if it beats the stored value. Several engines can
// share one slot, so a lower score never overwrites a higher one.
func (h *HighScoreSlot) Save(score int) error {
	return h.store.raiseSlot(h.gameID, score)
}

// Clear removes the stored value.
func (h *HighScoreSlot) Clear() error {
	return h.store.clearSlot(h.gameID)
}

// GameID returns the board key this slot belongs to.
func (h *HighScoreSlot) GameID() string { return h.gameID }
