// FILE: internal/board/board.go
package board

import (
	"pawns/internal/core"
)

// Board maps squares to the color of the pawn standing there.
// ColorNone marks an empty square, so one pawn per square holds by construction.
type Board struct {
	squares [core.BoardSize][core.BoardSize]core.Color
}

// New returns a board with both sides on their start rows
func New() *Board {
	b := &Board{}
	for _, c := range core.Colors {
		for col := 0; col < core.BoardSize; col++ {
			b.squares[c.StartRow()][col] = c
		}
	}
	return b
}

// Empty returns a board without pawns
func Empty() *Board {
	return &Board{}
}

// PieceAt returns the owner of the pawn at p, ColorNone when empty or off the board
func (b *Board) PieceAt(p Position) core.Color {
	if !p.InBounds() {
		return core.ColorNone
	}
	return b.squares[p.Row][p.Col]
}

// IsOccupiedBy reports whether p is on the board and holds exactly color c.
// Passing ColorNone asks for an empty square.
func (b *Board) IsOccupiedBy(p Position, c core.Color) bool {
	return p.InBounds() && b.squares[p.Row][p.Col] == c
}

func (b *Board) IsEmpty(p Position) bool {
	return b.IsOccupiedBy(p, core.ColorNone)
}

// Place puts a pawn of color c on p, replacing whatever stood there
func (b *Board) Place(p Position, c core.Color) {
	if p.InBounds() {
		b.squares[p.Row][p.Col] = c
	}
}

func (b *Board) Remove(p Position) {
	b.Place(p, core.ColorNone)
}

// Pieces lists the squares holding pawns of color c, rank by rank from row 0
func (b *Board) Pieces(c core.Color) []Position {
	var out []Position
	for r := 0; r < core.BoardSize; r++ {
		for f := 0; f < core.BoardSize; f++ {
			if b.squares[r][f] == c {
				out = append(out, Position{Row: r, Col: f})
			}
		}
	}
	return out
}

func (b *Board) Count(c core.Color) int {
	n := 0
	for r := 0; r < core.BoardSize; r++ {
		for f := 0; f < core.BoardSize; f++ {
			if b.squares[r][f] == c {
				n++
			}
		}
	}
	return n
}

// RowHas reports whether any pawn of color c stands on row
func (b *Board) RowHas(row int, c core.Color) bool {
	if row < 0 || row >= core.BoardSize {
		return false
	}
	for f := 0; f < core.BoardSize; f++ {
		if b.squares[row][f] == c {
			return true
		}
	}
	return false
}

func (b *Board) Clone() *Board {
	cp := *b
	return &cp
}
