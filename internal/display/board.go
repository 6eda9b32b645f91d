// FILE: internal/display/board.go
package display

import (
	"strings"

	"pawns/internal/board"
	"pawns/internal/core"
)

// Squares is anything that can report the pawn on a square
type Squares interface {
	PieceAt(p board.Position) core.Color
}

type Layout int

const (
	LayoutFull Layout = iota
	LayoutCompact
)

const separator = "  +---+---+---+---+---+---+---+---+"

// RenderBoard draws the board, rank 8 at the top. The result has no
// trailing newline.
func RenderBoard(sq Squares, layout Layout, theme Theme) string {
	colors, ok := themes[theme]
	if !ok {
		colors = themes[ThemeOff]
	}

	var sb strings.Builder
	if layout == LayoutFull {
		sb.WriteString(separator)
		sb.WriteByte('\n')
	}

	for row := core.BoardSize - 1; row >= 0; row-- {
		sb.WriteString(colors.label)
		sb.WriteByte(byte('1' + row))
		sb.WriteString(colors.reset)
		if layout == LayoutFull {
			sb.WriteString(" |")
		} else {
			sb.WriteByte('|')
		}

		for col := 0; col < core.BoardSize; col++ {
			piece := sq.PieceAt(board.Position{Row: row, Col: col})
			cell := string(piece.Symbol())
			if layout == LayoutFull {
				cell = " " + cell + " "
			}
			sb.WriteString(colors.square(row, col, piece, cell))
			if layout == LayoutFull {
				sb.WriteByte('|')
			}
		}

		if layout == LayoutFull {
			sb.WriteByte('\n')
			sb.WriteString(separator)
		} else {
			sb.WriteByte('|')
		}
		sb.WriteByte('\n')
	}

	sb.WriteString(colors.label)
	if layout == LayoutFull {
		sb.WriteString(" ")
		for col := 0; col < core.BoardSize; col++ {
			sb.WriteString("   ")
			sb.WriteByte(byte('a' + col))
		}
	} else {
		sb.WriteString("  ")
		for col := 0; col < core.BoardSize; col++ {
			sb.WriteByte(byte('a' + col))
		}
	}
	sb.WriteString(colors.reset)

	return sb.String()
}

// square paints one cell; a1 is a dark square
func (c themeColors) square(row, col int, piece core.Color, cell string) string {
	if c.reset == "" {
		return cell
	}
	bg := c.darkBg
	if (row+col)%2 == 1 {
		bg = c.lightBg
	}
	fg := c.black
	if piece == core.ColorWhite {
		fg = c.white
	}
	return bg + fg + cell + c.reset
}
