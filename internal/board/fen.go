// FILE: internal/board/fen.go
package board

import (
	"fmt"
	"strings"

	"pawns/internal/core"
)

// StartingFEN is the initial position: both full pawn ranks, White to move
const StartingFEN = "8/pppppppp/8/8/8/8/PPPPPPPP/8 w -"

// Setup is a complete position in pawns-only FEN:
// "<placement> <turn> <en passant>". Placement lists ranks 8 to 1, 'P' for
// White and 'p' for Black pawns. The en passant field names the square the
// last double-stepping pawn passed over and belongs to the side not to move.
type Setup struct {
	Board *Board
	Turn  core.Color
	// EnPassant is the landing square of the pawn that just double-stepped,
	// nil when the previous move was not a double step
	EnPassant *Position
}

func ParseFEN(fen string) (*Setup, error) {
	parts := strings.Fields(fen)
	if len(parts) != 3 {
		return nil, fmt.Errorf("invalid FEN: expected 3 parts, got %d", len(parts))
	}

	b := Empty()

	ranks := strings.Split(parts[0], "/")
	if len(ranks) != core.BoardSize {
		return nil, fmt.Errorf("invalid FEN: expected %d ranks", core.BoardSize)
	}

	for i, rank := range ranks {
		row := core.BoardSize - 1 - i
		file := 0
		for _, ch := range rank {
			switch {
			case ch >= '1' && ch <= '0'+core.BoardSize:
				file += int(ch - '0')
			case ch == 'P' || ch == 'p':
				if file >= core.BoardSize {
					return nil, fmt.Errorf("invalid FEN: too many squares in rank %d", row+1)
				}
				color := core.ColorWhite
				if ch == 'p' {
					color = core.ColorBlack
				}
				if row == color.HomeRow() {
					return nil, fmt.Errorf("invalid FEN: %s pawn on its home rank %d", color.Name(), row+1)
				}
				b.squares[row][file] = color
				file++
			default:
				return nil, fmt.Errorf("invalid FEN: unexpected %q in rank %d", ch, row+1)
			}
		}
		if file != core.BoardSize {
			return nil, fmt.Errorf("invalid FEN: rank %d has %d files", row+1, file)
		}
	}

	if b.Count(core.ColorWhite)+b.Count(core.ColorBlack) == 0 {
		return nil, fmt.Errorf("invalid FEN: no pawns on the board")
	}

	s := &Setup{Board: b}
	switch parts[1] {
	case "w":
		s.Turn = core.ColorWhite
	case "b":
		s.Turn = core.ColorBlack
	default:
		return nil, fmt.Errorf("invalid FEN: turn must be 'w' or 'b'")
	}

	if b.RowHas(s.Turn.PromotionRow(), s.Turn) {
		return nil, fmt.Errorf("invalid FEN: %s to move with a pawn already on its promotion rank", s.Turn.Name())
	}

	if parts[2] != "-" {
		passed, err := ParsePosition(parts[2])
		if err != nil {
			return nil, fmt.Errorf("invalid FEN: en passant square %q", parts[2])
		}
		landing, err := checkEnPassant(b, core.OppositeColor(s.Turn), passed)
		if err != nil {
			return nil, err
		}
		s.EnPassant = &landing
	}

	return s, nil
}

// checkEnPassant verifies that a pawn of owner has just stepped over passed
// and returns the square it landed on
func checkEnPassant(b *Board, owner core.Color, passed Position) (Position, error) {
	step := Position{Row: owner.Direction()}
	if passed.Row != owner.StartRow()+owner.Direction() {
		return Position{}, fmt.Errorf("invalid FEN: en passant square %s is not on %s's skip rank", passed, owner.Name())
	}
	landing := passed.Add(step)
	if !b.IsOccupiedBy(landing, owner) {
		return Position{}, fmt.Errorf("invalid FEN: no %s pawn on %s for en passant", owner.Name(), landing)
	}
	if !b.IsEmpty(passed) || !b.IsEmpty(passed.Sub(step)) {
		return Position{}, fmt.Errorf("invalid FEN: en passant path through %s is not clear", passed)
	}
	return landing, nil
}

// FEN encodes the setup
func (s *Setup) FEN() string {
	var sb strings.Builder

	for row := core.BoardSize - 1; row >= 0; row-- {
		empty := 0
		for col := 0; col < core.BoardSize; col++ {
			switch s.Board.squares[row][col] {
			case core.ColorWhite, core.ColorBlack:
				if empty > 0 {
					sb.WriteByte(byte('0' + empty))
					empty = 0
				}
				if s.Board.squares[row][col] == core.ColorWhite {
					sb.WriteByte('P')
				} else {
					sb.WriteByte('p')
				}
			default:
				empty++
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if row > 0 {
			sb.WriteByte('/')
		}
	}

	sb.WriteByte(' ')
	sb.WriteString(s.Turn.String())
	sb.WriteByte(' ')

	if s.EnPassant == nil {
		sb.WriteByte('-')
	} else {
		owner := core.OppositeColor(s.Turn)
		sb.WriteString(s.EnPassant.Sub(Position{Row: owner.Direction()}).String())
	}

	return sb.String()
}
