// FILE: internal/board/position.go
package board

import (
	"errors"

	"pawns/internal/core"
)

// ErrInvalidFormat is returned for square and move text that does not parse
var ErrInvalidFormat = errors.New("invalid format")

// Position is a square on the board. Row 0 is White's home rank.
type Position struct {
	Row int
	Col int
}

// ParsePosition reads a two character square code such as "e2"
func ParsePosition(s string) (Position, error) {
	if len(s) != 2 {
		return Position{}, ErrInvalidFormat
	}
	if s[0] < 'a' || s[0] > 'a'+core.BoardSize-1 || s[1] < '1' || s[1] > '1'+core.BoardSize-1 {
		return Position{}, ErrInvalidFormat
	}
	return Position{Row: int(s[1] - '1'), Col: int(s[0] - 'a')}, nil
}

func (p Position) String() string {
	if !p.InBounds() {
		return "--"
	}
	return string([]byte{byte('a' + p.Col), byte('1' + p.Row)})
}

func (p Position) Add(d Position) Position {
	return Position{Row: p.Row + d.Row, Col: p.Col + d.Col}
}

func (p Position) Sub(d Position) Position {
	return Position{Row: p.Row - d.Row, Col: p.Col - d.Col}
}

func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < core.BoardSize && p.Col >= 0 && p.Col < core.BoardSize
}

// Move is a from/to pair in coordinate notation, e.g. "e2e4"
type Move struct {
	From Position
	To   Position
}

func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, ErrInvalidFormat
	}
	from, err := ParsePosition(s[:2])
	if err != nil {
		return Move{}, err
	}
	to, err := ParsePosition(s[2:])
	if err != nil {
		return Move{}, err
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// IsForward reports a move along a single file, as opposed to a capture
func (m Move) IsForward() bool {
	return m.From.Col == m.To.Col
}

// Delta is the displacement from From to To
func (m Move) Delta() Position {
	return m.To.Sub(m.From)
}
