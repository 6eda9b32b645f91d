// FILE: internal/service/service_test.go
package service

import (
	"errors"
	"testing"

	"pawns/internal/core"
	"pawns/internal/game"
)

func newService(t *testing.T, fen string) (*Service, string) {
	t.Helper()
	svc := New()
	id := svc.GenerateGameID()
	white := core.PlayerConfig{Name: "Alice"}
	black := core.PlayerConfig{Name: "Bob"}
	if err := svc.CreateGame(id, white, black, fen); err != nil {
		t.Fatalf("CreateGame failed: %v", err)
	}
	return svc, id
}

func TestCreateGame(t *testing.T) {
	svc, id := newService(t, "")
	g, err := svc.GetGame(id)
	if err != nil {
		t.Fatalf("GetGame failed: %v", err)
	}
	if g.Player(core.ColorWhite).Name != "Alice" || g.Player(core.ColorBlack).Name != "Bob" {
		t.Fatalf("players not bound")
	}
	if err := svc.CreateGame(id, core.PlayerConfig{Name: "A"}, core.PlayerConfig{Name: "B"}, ""); err == nil {
		t.Fatalf("duplicate id accepted")
	}
}

func TestCreateGameRejects(t *testing.T) {
	svc := New()
	var coded *core.CodedError

	err := svc.CreateGame("a", core.PlayerConfig{Name: "   "}, core.PlayerConfig{Name: "Bob"}, "")
	if !errors.As(err, &coded) || coded.Code != core.ErrInvalidRequest {
		t.Fatalf("blank name: %v", err)
	}

	err = svc.CreateGame("b", core.PlayerConfig{Name: "Alice"}, core.PlayerConfig{Name: "Bob"}, "8/8/8/8/8/8/8/8 w -")
	if !errors.As(err, &coded) || coded.Code != core.ErrInvalidFEN {
		t.Fatalf("bad FEN: %v", err)
	}

	if _, err := svc.GetGame("a"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("rejected game was stored")
	}
}

func TestMakeMove(t *testing.T) {
	svc, id := newService(t, "8/8/8/3p4/4P3/8/8/8 w -")

	result, err := svc.MakeMove(id, "e7e5")
	if err != nil || result != game.MoveNoPiece {
		t.Fatalf("MakeMove = %v, %v", result, err)
	}
	result, err = svc.MakeMove(id, "e4d5")
	if err != nil || result != game.MoveCapture {
		t.Fatalf("MakeMove = %v, %v", result, err)
	}

	if _, err := svc.MakeMove(id, "d5d6"); !errors.Is(err, ErrGameOver) {
		t.Fatalf("move after the end: %v", err)
	}
	if _, err := svc.MakeMove("missing", "e2e4"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: %v", err)
	}
}

func TestLegalMoves(t *testing.T) {
	svc, id := newService(t, "")

	moves, err := svc.LegalMoves(id, "a2")
	if err != nil || len(moves) != 2 {
		t.Fatalf("LegalMoves = %v, %v", moves, err)
	}
	if _, err := svc.LegalMoves(id, "z9"); err == nil {
		t.Fatalf("bad square accepted")
	}
	if _, err := svc.LegalMoves("missing", "a2"); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("unknown game: %v", err)
	}
}

func TestUndoAndDelete(t *testing.T) {
	svc, id := newService(t, "")
	if _, err := svc.MakeMove(id, "e2e4"); err != nil {
		t.Fatalf("MakeMove failed: %v", err)
	}
	if err := svc.UndoMoves(id, 1); err != nil {
		t.Fatalf("UndoMoves failed: %v", err)
	}
	if err := svc.UndoMoves(id, 1); err == nil {
		t.Fatalf("undo past the start succeeded")
	}

	if err := svc.DeleteGame(id); err != nil {
		t.Fatalf("DeleteGame failed: %v", err)
	}
	if err := svc.DeleteGame(id); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("second delete: %v", err)
	}
}

func TestClose(t *testing.T) {
	svc, id := newService(t, "")
	if err := svc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}
	if _, err := svc.GetGame(id); !errors.Is(err, ErrGameNotFound) {
		t.Fatalf("game survived Close")
	}
}
