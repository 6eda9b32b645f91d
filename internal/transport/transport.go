// FILE: internal/transport/transport.go
package transport

import (
	"pawns/internal/board"
	"pawns/internal/cli"
	"pawns/internal/core"
	"pawns/internal/display"
	"pawns/internal/game"
)

// View abstracts input and output of the terminal game loop
type View interface {
	ReadLine(prompt string) (string, error)
	GetCommand(prompt string) (*cli.Command, error)
	DisplayBoard(sq display.Squares)
	ShowMessage(msg string)
	ShowError(err error)
	ShowRejection(result game.MoveResult, move string, mover core.Color)
	ShowResult(state core.State)
	ShowLegalMoves(square string, moves []board.Move)
	ShowGameHistory(g *game.Game)
	ShowWelcome()
	ShowHelp()
	SetTheme(name string) error
	ToggleCompact() bool
}
