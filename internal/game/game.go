// FILE: internal/game/game.go
package game

import (
	"fmt"

	"pawns/internal/board"
	"pawns/internal/core"
)

// MoveResult is the outcome of one AttemptMove call
type MoveResult int

const (
	MoveOkay MoveResult = iota
	MoveCapture
	MoveInvalidInput
	MoveNoPiece
)

func (r MoveResult) String() string {
	switch r {
	case MoveOkay:
		return "okay"
	case MoveCapture:
		return "capture"
	case MoveInvalidInput:
		return "invalid input"
	case MoveNoPiece:
		return "no piece"
	default:
		return "unknown"
	}
}

// Applied reports whether the move changed the position
func (r MoveResult) Applied() bool {
	return r == MoveOkay || r == MoveCapture
}

// Code maps a rejection to its error code, empty for applied moves
func (r MoveResult) Code() string {
	switch r {
	case MoveInvalidInput:
		return core.ErrInvalidMove
	case MoveNoPiece:
		return core.ErrNoPiece
	default:
		return ""
	}
}

// Snapshot is one entry of the game history. NextTurnColor and PlayerID
// follow the side-to-move field of FEN. Once a game is won that field names
// the loser, while Game.Turn reports the winner.
type Snapshot struct {
	FEN           string     `json:"fen"`
	PreviousMove  string     `json:"previousMove"`
	NextTurnColor core.Color `json:"nextTurnColor"`
	PlayerID      string     `json:"playerId"` // ID of the player to move in FEN
}

// LastMove describes the most recent applied move
type LastMove struct {
	Move        string     `json:"move"`
	PlayerColor core.Color `json:"playerColor"`
	Result      MoveResult `json:"result"`
	GameState   core.State `json:"gameState"`
}

// Game is the pawns-only state machine. It is not safe for concurrent use;
// service.Service serializes access.
type Game struct {
	board     *board.Board
	turn      core.Color
	enPassant map[core.Color]board.Position
	state     core.State
	snapshots []Snapshot
	players   map[core.Color]*core.Player
	lastMove  *LastMove
}

// New starts a game from the initial position with White to move
func New(whitePlayer, blackPlayer *core.Player) *Game {
	g := newGame(whitePlayer, blackPlayer)
	g.load(&board.Setup{Board: board.New(), Turn: core.ColorWhite})
	g.snapshots = []Snapshot{g.snapshot(board.StartingFEN, "", core.ColorWhite)}
	return g
}

// NewFromFEN resumes a game from a position. The position is evaluated at
// once, so a setup without moves for the side to move starts as stalemate.
func NewFromFEN(fen string, whitePlayer, blackPlayer *core.Player) (*Game, error) {
	setup, err := board.ParseFEN(fen)
	if err != nil {
		return nil, err
	}

	g := newGame(whitePlayer, blackPlayer)
	g.load(setup)
	g.snapshots = []Snapshot{g.snapshot(setup.FEN(), "", setup.Turn)}
	g.evaluate()
	return g, nil
}

func newGame(whitePlayer, blackPlayer *core.Player) *Game {
	return &Game{
		players: map[core.Color]*core.Player{
			core.ColorWhite: whitePlayer,
			core.ColorBlack: blackPlayer,
		},
	}
}

func (g *Game) load(setup *board.Setup) {
	g.board = setup.Board
	g.turn = setup.Turn
	g.enPassant = make(map[core.Color]board.Position, 2)
	if setup.EnPassant != nil {
		g.enPassant[core.OppositeColor(setup.Turn)] = *setup.EnPassant
	}
	g.state = core.StateOngoing
}

// evaluate settles the result of a loaded position: the side that moved last
// may already have won, otherwise the side to move may be stalemated
func (g *Game) evaluate() {
	mover := core.OppositeColor(g.turn)
	if g.board.RowHas(mover.PromotionRow(), mover) || g.board.Count(g.turn) == 0 {
		g.state = core.WinFor(mover)
		g.turn = mover
		return
	}
	if !canMove(g.board, g.turn, g.marker(mover)) {
		g.state = core.StateStalemate
	}
}

// marker returns the en passant marker of c, nil when c has none
func (g *Game) marker(c core.Color) *board.Position {
	if p, ok := g.enPassant[c]; ok {
		return &p
	}
	return nil
}

// AttemptMove validates and applies one move given as text such as "e2e4".
// Rejected moves leave the game untouched.
func (g *Game) AttemptMove(text string) MoveResult {
	if g.state.IsTerminal() {
		return MoveInvalidInput
	}

	move, err := board.ParseMove(text)
	if err != nil {
		return MoveInvalidInput
	}

	mover := g.turn
	if !g.board.IsOccupiedBy(move.From, mover) {
		return MoveNoPiece
	}

	other := core.OppositeColor(mover)
	capturing := !move.IsForward()

	var moves []board.Move
	if capturing {
		moves = captureMoves(g.board, mover, move.From, g.marker(other))
	} else {
		moves = forwardMoves(g.board, mover, move.From)
	}
	if !containsTarget(moves, move.To) {
		return MoveInvalidInput
	}

	g.board.Remove(move.From)
	if capturing && g.board.IsEmpty(move.To) {
		// en passant: the captured pawn stands beside the origin square
		g.board.Remove(board.Position{Row: move.From.Row, Col: move.To.Col})
	}
	g.board.Place(move.To, mover)

	if !capturing && abs(move.Delta().Row) == 2 {
		g.enPassant[mover] = move.To
	} else {
		delete(g.enPassant, mover)
	}
	delete(g.enPassant, other)

	switch {
	case move.To.Row == mover.PromotionRow():
		g.state = core.WinFor(mover)
	case g.board.Count(other) == 0:
		g.state = core.WinFor(mover)
	default:
		g.turn = other
		if !canMove(g.board, other, g.marker(mover)) {
			g.state = core.StateStalemate
		}
	}

	result := MoveOkay
	if capturing {
		result = MoveCapture
	}
	g.record(move, mover, result)
	return result
}

func (g *Game) record(move board.Move, mover core.Color, result MoveResult) {
	// the stored position always names the opponent as side to move, so a
	// finished game reloads as the same finished game
	next := core.OppositeColor(mover)
	setup := &board.Setup{Board: g.board, Turn: next, EnPassant: g.marker(mover)}
	g.snapshots = append(g.snapshots, g.snapshot(setup.FEN(), move.String(), next))
	g.lastMove = &LastMove{
		Move:        move.String(),
		PlayerColor: mover,
		Result:      result,
		GameState:   g.state,
	}
}

func (g *Game) snapshot(fen, move string, next core.Color) Snapshot {
	snap := Snapshot{
		FEN:           fen,
		PreviousMove:  move,
		NextTurnColor: next,
	}
	if p := g.players[next]; p != nil {
		snap.PlayerID = p.ID
	}
	return snap
}

// LegalMoves lists the moves available to the pawn at from. Squares without
// a pawn of the side to move, and finished games, yield nothing.
func (g *Game) LegalMoves(from board.Position) []board.Move {
	if g.state.IsTerminal() {
		return nil
	}
	return candidates(g.board, g.turn, from, g.marker(core.OppositeColor(g.turn)))
}

// Undo takes back count moves and resumes play from the earlier position
func (g *Game) Undo(count int) error {
	if count < 1 {
		return fmt.Errorf("invalid undo count: %d", count)
	}

	availableMoves := len(g.snapshots) - 1
	if availableMoves < count {
		return fmt.Errorf("cannot undo %d moves: only %d moves available", count, availableMoves)
	}

	target := g.snapshots[len(g.snapshots)-1-count]
	setup, err := board.ParseFEN(target.FEN)
	if err != nil {
		return fmt.Errorf("failed to restore position: %w", err)
	}

	g.snapshots = g.snapshots[:len(g.snapshots)-count]
	g.load(setup)
	g.evaluate()
	g.lastMove = nil
	return nil
}

// Turn returns the color to move. After a win it stays with the winner.
func (g *Game) Turn() core.Color {
	return g.turn
}

func (g *Game) State() core.State {
	return g.state
}

func (g *Game) PieceAt(p board.Position) core.Color {
	return g.board.PieceAt(p)
}

// Board returns a copy of the current board
func (g *Game) Board() *board.Board {
	return g.board.Clone()
}

// EnPassant returns the live en passant marker of c
func (g *Game) EnPassant(c core.Color) (board.Position, bool) {
	p, ok := g.enPassant[c]
	return p, ok
}

func (g *Game) Player(c core.Color) *core.Player {
	return g.players[c]
}

func (g *Game) CurrentPlayer() *core.Player {
	return g.players[g.turn]
}

func (g *Game) LastMove() *LastMove {
	return g.lastMove
}

// CurrentSnapshot returns the latest game snapshot
func (g *Game) CurrentSnapshot() Snapshot {
	return g.snapshots[len(g.snapshots)-1]
}

// FEN returns the current position in pawns-only FEN
func (g *Game) FEN() string {
	return g.CurrentSnapshot().FEN
}

func (g *Game) InitialFEN() string {
	return g.snapshots[0].FEN
}

func (g *Game) Snapshots() []Snapshot {
	out := make([]Snapshot, len(g.snapshots))
	copy(out, g.snapshots)
	return out
}

func (g *Game) Moves() []string {
	moves := []string{}
	for i := 1; i < len(g.snapshots); i++ {
		if g.snapshots[i].PreviousMove != "" {
			moves = append(moves, g.snapshots[i].PreviousMove)
		}
	}
	return moves
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}
