// FILE: internal/core/core.go
package core

// BoardSize is the number of rows and columns on the board
const BoardSize = 8

type State int

const (
	StateOngoing State = iota
	StateWhiteWins
	StateBlackWins
	StateStalemate
)

func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StateWhiteWins:
		return "white wins"
	case StateBlackWins:
		return "black wins"
	case StateStalemate:
		return "stalemate"
	default:
		return "unknown"
	}
}

// Announcement is the line printed when a game ends
func (s State) Announcement() string {
	switch s {
	case StateWhiteWins:
		return "White Wins!"
	case StateBlackWins:
		return "Black Wins!"
	case StateStalemate:
		return "Stalemate!"
	default:
		return ""
	}
}

// IsTerminal reports whether no further moves can be made
func (s State) IsTerminal() bool {
	return s != StateOngoing
}

// Winner returns the winning color, or ColorNone for ongoing and stalemated games
func (s State) Winner() Color {
	switch s {
	case StateWhiteWins:
		return ColorWhite
	case StateBlackWins:
		return ColorBlack
	default:
		return ColorNone
	}
}

// WinFor returns the terminal state in which c has won
func WinFor(c Color) State {
	if c == ColorWhite {
		return StateWhiteWins
	}
	return StateBlackWins
}

// Color identifies a side. ColorNone marks an empty square.
type Color byte

const (
	ColorNone Color = iota
	ColorWhite
	ColorBlack
)

func (c Color) String() string {
	switch c {
	case ColorWhite:
		return "w"
	case ColorBlack:
		return "b"
	default:
		return "-"
	}
}

// Name is the display name of the side
func (c Color) Name() string {
	switch c {
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	default:
		return "None"
	}
}

// Symbol is the board glyph for a pawn of this color
func (c Color) Symbol() byte {
	switch c {
	case ColorWhite:
		return 'W'
	case ColorBlack:
		return 'B'
	default:
		return ' '
	}
}

// Direction is the row delta of a forward step
func (c Color) Direction() int {
	if c == ColorBlack {
		return -1
	}
	return 1
}

// StartRow is the row the pawns of this color start on, the only row
// a double step may begin from
func (c Color) StartRow() int {
	if c == ColorBlack {
		return BoardSize - 2
	}
	return 1
}

// PromotionRow is the row that wins the game when reached
func (c Color) PromotionRow() int {
	if c == ColorBlack {
		return 0
	}
	return BoardSize - 1
}

// HomeRow is the row behind the start row, never occupied by own pawns
func (c Color) HomeRow() int {
	return OppositeColor(c).PromotionRow()
}

func OppositeColor(c Color) Color {
	if c == ColorWhite {
		return ColorBlack
	}
	return ColorWhite
}

// Colors lists both sides in turn order
var Colors = [2]Color{ColorWhite, ColorBlack}
