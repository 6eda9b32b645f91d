// FILE: internal/game/movegen.go
package game

import (
	"pawns/internal/board"
	"pawns/internal/core"
)

// maxCandidates bounds the fan-out of one pawn: two forward, two diagonal
const maxCandidates = 4

// forwardMoves lists the single and double steps open to the pawn of side at from
func forwardMoves(b *board.Board, side core.Color, from board.Position) []board.Move {
	moves := make([]board.Move, 0, 2)

	step := from.Add(board.Position{Row: side.Direction()})
	if !b.IsEmpty(step) {
		return moves
	}
	moves = append(moves, board.Move{From: from, To: step})

	if from.Row == side.StartRow() {
		jump := step.Add(board.Position{Row: side.Direction()})
		if b.IsEmpty(jump) {
			moves = append(moves, board.Move{From: from, To: jump})
		}
	}
	return moves
}

// captureMoves lists the diagonal moves open to the pawn of side at from.
// passant is the opponent's en passant marker, nil when it has none.
func captureMoves(b *board.Board, side core.Color, from board.Position, passant *board.Position) []board.Move {
	moves := make([]board.Move, 0, 2)
	other := core.OppositeColor(side)

	for _, d := range [2]int{-1, 1} {
		target := from.Add(board.Position{Row: side.Direction(), Col: d})
		switch {
		case b.IsOccupiedBy(target, other):
			moves = append(moves, board.Move{From: from, To: target})
		case b.IsEmpty(target) && passant != nil:
			// the opponent pawn stands beside us on the target's file
			if *passant == from.Add(board.Position{Col: d}) {
				moves = append(moves, board.Move{From: from, To: target})
			}
		}
	}
	return moves
}

// candidates returns every legal move of the pawn at from for side,
// nothing when the square does not hold a pawn of side
func candidates(b *board.Board, side core.Color, from board.Position, passant *board.Position) []board.Move {
	if !b.IsOccupiedBy(from, side) {
		return nil
	}
	moves := make([]board.Move, 0, maxCandidates)
	moves = append(moves, forwardMoves(b, side, from)...)
	moves = append(moves, captureMoves(b, side, from, passant)...)
	return moves
}

// canMove reports whether any pawn of side has at least one legal move
func canMove(b *board.Board, side core.Color, passant *board.Position) bool {
	for _, from := range b.Pieces(side) {
		if len(forwardMoves(b, side, from)) > 0 || len(captureMoves(b, side, from, passant)) > 0 {
			return true
		}
	}
	return false
}

func containsTarget(moves []board.Move, to board.Position) bool {
	for _, m := range moves {
		if m.To == to {
			return true
		}
	}
	return false
}
