// FILE: internal/service/service.go
package service

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"pawns/internal/board"
	"pawns/internal/core"
	"pawns/internal/game"

	"github.com/google/uuid"
)

var (
	ErrGameNotFound = errors.New("game not found")
	ErrGameOver     = errors.New("game is over")
)

// Service is an in-memory registry of pawns-only games. Every call into a
// game goes through the service lock.
type Service struct {
	games map[string]*game.Game
	mu    sync.RWMutex
}

// New creates a new service instance
func New() *Service {
	return &Service{
		games: make(map[string]*game.Game),
	}
}

// CreateGame creates a game with player configuration. An empty fen starts
// from the initial position.
func (s *Service) CreateGame(id string, whiteConfig, blackConfig core.PlayerConfig, fen string) error {
	whiteConfig.Name = strings.TrimSpace(whiteConfig.Name)
	blackConfig.Name = strings.TrimSpace(blackConfig.Name)
	if err := core.Validate(whiteConfig); err != nil {
		return fmt.Errorf("white player: %w", err)
	}
	if err := core.Validate(blackConfig); err != nil {
		return fmt.Errorf("black player: %w", err)
	}

	whitePlayer := core.NewPlayer(whiteConfig, core.ColorWhite)
	blackPlayer := core.NewPlayer(blackConfig, core.ColorBlack)

	var g *game.Game
	if fen == "" {
		g = game.New(whitePlayer, blackPlayer)
	} else {
		var err error
		g, err = game.NewFromFEN(fen, whitePlayer, blackPlayer)
		if err != nil {
			return &core.CodedError{Code: core.ErrInvalidFEN, Message: "invalid position", Details: err.Error()}
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; exists {
		return fmt.Errorf("game %s already exists", id)
	}
	s.games[id] = g
	return nil
}

// GetGame retrieves a game by ID
func (s *Service) GetGame(gameID string) (*game.Game, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g, nil
}

// GenerateGameID creates a new unique game ID
func (s *Service) GenerateGameID() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for {
		id := uuid.New().String()
		if _, exists := s.games[id]; !exists {
			return id
		}
	}
}

// MakeMove attempts one move in coordinate notation. Rejected moves are
// reported through the result, not the error.
func (s *Service) MakeMove(gameID, text string) (game.MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return game.MoveInvalidInput, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	if g.State().IsTerminal() {
		return game.MoveInvalidInput, fmt.Errorf("%w: %s", ErrGameOver, g.State())
	}
	return g.AttemptMove(text), nil
}

// LegalMoves lists the moves of the pawn on square, given as e.g. "e2"
func (s *Service) LegalMoves(gameID, square string) ([]board.Move, error) {
	from, err := board.ParsePosition(square)
	if err != nil {
		return nil, fmt.Errorf("square %q: %w", square, err)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[gameID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g.LegalMoves(from), nil
}

// UndoMoves removes the specified number of moves from game history
func (s *Service) UndoMoves(gameID string, count int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, ok := s.games[gameID]
	if !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}
	return g.Undo(count)
}

// DeleteGame removes a game from memory
func (s *Service) DeleteGame(gameID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.games[gameID]; !ok {
		return fmt.Errorf("%w: %s", ErrGameNotFound, gameID)
	}

	delete(s.games, gameID)
	return nil
}

// Close drops all games
func (s *Service) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]*game.Game)
	return nil
}
