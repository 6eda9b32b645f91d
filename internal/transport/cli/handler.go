// FILE: internal/transport/cli/handler.go
package cli

import (
	"errors"
	"fmt"
	"log"
	"strconv"
	"strings"

	"pawns/internal/cli"
	"pawns/internal/core"
	"pawns/internal/service"
	"pawns/internal/transport"
)

type CLIHandler struct {
	svc    *service.Service
	view   transport.View
	gameID string
	white  core.PlayerConfig
	black  core.PlayerConfig
}

func New(svc *service.Service, view transport.View) *CLIHandler {
	return &CLIHandler{
		svc:  svc,
		view: view,
	}
}

// Run plays games until the user quits, input ends or a game is decided
func (h *CLIHandler) Run() error {
	defer h.view.ShowMessage("Bye!")

	h.view.ShowWelcome()
	if !h.askPlayers() {
		return nil
	}
	if !h.startGame("") {
		return nil
	}

	for {
		g, err := h.svc.GetGame(h.gameID)
		if err != nil {
			return err
		}
		if g.State().IsTerminal() {
			h.view.ShowResult(g.State())
			return nil
		}

		cmd, err := h.view.GetCommand(fmt.Sprintf("%s's turn:", g.CurrentPlayer().DisplayName()))
		if err != nil {
			return err
		}

		if !h.ProcessCommand(cmd) {
			return nil
		}
	}
}

// askPlayers reads both names, asking again until each one validates.
// It returns false when input ends.
func (h *CLIHandler) askPlayers() bool {
	white, ok := h.askName("First Player's name:")
	if !ok {
		return false
	}
	black, ok := h.askName("Second Player's name:")
	if !ok {
		return false
	}
	h.white, h.black = white, black
	return true
}

func (h *CLIHandler) askName(prompt string) (core.PlayerConfig, bool) {
	for {
		name, err := h.view.ReadLine(prompt)
		if err != nil {
			return core.PlayerConfig{}, false
		}
		config := core.PlayerConfig{Name: strings.TrimSpace(name)}
		if err := core.Validate(config); err != nil {
			h.view.ShowError(err)
			continue
		}
		return config, true
	}
}

// startGame replaces the current game with a new one and draws it.
// It returns false if no game could be started.
func (h *CLIHandler) startGame(fen string) bool {
	id := h.svc.GenerateGameID()
	if err := h.svc.CreateGame(id, h.white, h.black, fen); err != nil {
		h.view.ShowError(fmt.Errorf("could not start the game: %w", err))
		return false
	}

	if h.gameID != "" {
		if err := h.svc.DeleteGame(h.gameID); err != nil {
			log.Printf("Warning: failed to drop previous game: %v", err)
		}
	}
	h.gameID = id
	h.drawBoard()
	return true
}

func (h *CLIHandler) drawBoard() {
	if g, err := h.svc.GetGame(h.gameID); err == nil {
		h.view.DisplayBoard(g)
	}
}

// ProcessCommand handles one command between moves and returns false to exit
func (h *CLIHandler) ProcessCommand(cmd *cli.Command) bool {
	switch cmd.Type {
	case cli.CmdQuit:
		return false

	case cli.CmdNone:
		h.view.ShowMessage("Invalid Input")

	case cli.CmdMove:
		h.handleMove(cmd.Raw)

	case cli.CmdNew:
		if h.askPlayers() {
			h.startGame("")
		} else {
			return false
		}

	case cli.CmdResume:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: resume <FEN string>")
			return true
		}
		h.startGame(strings.Join(cmd.Args, " "))

	case cli.CmdUndo:
		count := 1
		if len(cmd.Args) > 0 {
			if n, err := strconv.Atoi(cmd.Args[0]); err == nil && n > 0 {
				count = n
			} else {
				h.view.ShowMessage("Invalid undo count. Usage: undo [count]")
				return true
			}
		}

		if err := h.svc.UndoMoves(h.gameID, count); err != nil {
			h.view.ShowError(err)
			return true
		}
		if count == 1 {
			h.view.ShowMessage("Move undone")
		} else {
			h.view.ShowMessage(fmt.Sprintf("%d moves undone", count))
		}
		h.drawBoard()

	case cli.CmdMoves:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: moves <square>")
			return true
		}
		moves, err := h.svc.LegalMoves(h.gameID, cmd.Args[0])
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowLegalMoves(cmd.Args[0], moves)

	case cli.CmdHistory:
		g, err := h.svc.GetGame(h.gameID)
		if err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowGameHistory(g)

	case cli.CmdBoard:
		h.drawBoard()

	case cli.CmdCompact:
		h.view.ToggleCompact()
		h.drawBoard()

	case cli.CmdColor:
		if len(cmd.Args) < 1 {
			h.view.ShowMessage("Usage: color <off|brown|green|gray>")
			return true
		}
		if err := h.view.SetTheme(cmd.Args[0]); err != nil {
			h.view.ShowError(err)
			return true
		}
		h.view.ShowMessage(fmt.Sprintf("Color theme set to: %s", cmd.Args[0]))
		h.drawBoard()

	case cli.CmdHelp:
		h.view.ShowHelp()
	}

	return true
}

func (h *CLIHandler) handleMove(move string) {
	g, err := h.svc.GetGame(h.gameID)
	if err != nil {
		h.view.ShowError(err)
		return
	}
	mover := g.Turn()

	result, err := h.svc.MakeMove(h.gameID, move)
	if err != nil {
		if errors.Is(err, service.ErrGameOver) {
			h.view.ShowResult(g.State())
			return
		}
		h.view.ShowError(err)
		return
	}

	if !result.Applied() {
		h.view.ShowRejection(result, move, mover)
		return
	}
	h.drawBoard()
}
