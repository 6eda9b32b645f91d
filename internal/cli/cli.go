// FILE: internal/cli/cli.go
package cli

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"pawns/internal/board"
	"pawns/internal/core"
	"pawns/internal/display"
	"pawns/internal/game"
)

// Title is printed once when the program starts
const Title = "Pawns-Only Chess"

type CommandType int

const (
	CmdNone CommandType = iota
	CmdNew
	CmdResume
	CmdMove
	CmdUndo
	CmdColor
	CmdCompact
	CmdBoard
	CmdMoves
	CmdHistory
	CmdHelp
	CmdQuit
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

// LineReader yields one line of input per call and io.EOF at the end.
// *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

type scannerReader struct {
	scanner *bufio.Scanner
}

// NewScannerReader reads lines from a plain stream such as a pipe
func NewScannerReader(r io.Reader) LineReader {
	return &scannerReader{scanner: bufio.NewScanner(r)}
}

func (s *scannerReader) Readline() (string, error) {
	if !s.scanner.Scan() {
		if err := s.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.scanner.Text(), nil
}

// Options configures the terminal view
type Options struct {
	Compact     bool
	Theme       string `validate:"required,oneof=off brown green gray"`
	HistoryFile string `validate:"omitempty,max=4096"`
	Plain       bool
}

func (o Options) Validate() error {
	return core.Validate(o)
}

type CLI struct {
	input  LineReader
	output io.Writer
	theme  display.Theme
	layout display.Layout
}

func New(input LineReader, output io.Writer, opts Options) (*CLI, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	theme, err := display.ParseTheme(opts.Theme)
	if err != nil {
		return nil, err
	}

	c := &CLI{
		input:  input,
		output: output,
		theme:  theme,
		layout: display.LayoutFull,
	}
	if opts.Compact {
		c.layout = display.LayoutCompact
	}
	return c, nil
}

// ReadLine prints prompt on its own line and reads the answer as typed.
// End of input is reported as io.EOF.
func (c *CLI) ReadLine(prompt string) (string, error) {
	c.ShowMessage(prompt)
	line, err := c.input.Readline()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return "", io.EOF
		}
		return "", err
	}
	return line, nil
}

// GetCommand prompts and parses one command. End of input quits.
func (c *CLI) GetCommand(prompt string) (*Command, error) {
	line, err := c.ReadLine(prompt)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return &Command{Type: CmdQuit}, nil
		}
		return nil, err
	}

	if strings.TrimSpace(line) == "" {
		return &Command{Type: CmdNone}, nil
	}
	return c.parseCommand(line), nil
}

func (c *CLI) parseCommand(line string) *Command {
	input := strings.TrimSpace(line)
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return &Command{Type: CmdNone}
	}

	cmd := parts[0]
	args := parts[1:]

	switch cmd {
	case "new":
		return &Command{Type: CmdNew, Args: args}
	case "resume":
		return &Command{Type: CmdResume, Args: args, Raw: input}
	case "undo":
		return &Command{Type: CmdUndo, Args: args}
	case "color":
		return &Command{Type: CmdColor, Args: args}
	case "compact":
		return &Command{Type: CmdCompact}
	case "board":
		return &Command{Type: CmdBoard}
	case "moves":
		return &Command{Type: CmdMoves, Args: args}
	case "history":
		return &Command{Type: CmdHistory}
	case "help", "?":
		return &Command{Type: CmdHelp}
	case "quit", "exit":
		return &Command{Type: CmdQuit}
	default:
		// Anything else is a move, judged exactly as typed
		return &Command{Type: CmdMove, Args: []string{line}, Raw: line}
	}
}

func (c *CLI) SetTheme(name string) error {
	theme, err := display.ParseTheme(name)
	if err != nil {
		return err
	}
	c.theme = theme
	return nil
}

// ToggleCompact switches between the boxed and compact board and
// reports whether compact is now on
func (c *CLI) ToggleCompact() bool {
	if c.layout == display.LayoutCompact {
		c.layout = display.LayoutFull
		return false
	}
	c.layout = display.LayoutCompact
	return true
}

func (c *CLI) ShowMessage(msg string) {
	fmt.Fprintln(c.output, msg)
}

func (c *CLI) ShowError(err error) {
	c.ShowMessage(display.Colorize(c.theme, display.Red, fmt.Sprintf("Error: %v", err)))
}

func (c *CLI) DisplayBoard(sq display.Squares) {
	c.ShowMessage(display.RenderBoard(sq, c.layout, c.theme))
}

// ShowRejection reports a move that was not applied
func (c *CLI) ShowRejection(result game.MoveResult, move string, mover core.Color) {
	switch result.Code() {
	case core.ErrNoPiece:
		c.ShowMessage(fmt.Sprintf("No %s pawn at %s", mover.Name(), move[:2]))
	default:
		c.ShowMessage("Invalid Input")
	}
}

func (c *CLI) ShowResult(state core.State) {
	if msg := state.Announcement(); msg != "" {
		c.ShowMessage(msg)
	}
}

func (c *CLI) ShowLegalMoves(square string, moves []board.Move) {
	if len(moves) == 0 {
		c.ShowMessage(fmt.Sprintf("No moves from %s", square))
		return
	}
	list := make([]string, len(moves))
	for i, m := range moves {
		list[i] = m.String()
	}
	c.ShowMessage(fmt.Sprintf("Moves from %s: %s", square, strings.Join(list, " ")))
}

func (c *CLI) ShowHelp() {
	help := `Commands:
  <move>           - Make a move (e.g., e2e4, d5e6)
  new              - Start a new game with new players
  resume <FEN>     - Resume from a position, e.g. 8/pppppppp/8/8/8/8/PPPPPPPP/8 w -
  undo [count]     - Undo last move(s), default 1
  moves <square>   - List the moves of the pawn on a square
  history          - Show game move history and positions
  board            - Draw the board again
  compact          - Toggle the compact board
  color <theme>    - Set board color theme (off|brown|green|gray)
  quit/exit        - Exit the program
  help/?           - Show this help message`

	c.ShowMessage(help)
}

func (c *CLI) ShowWelcome() {
	c.ShowMessage(display.Colorize(c.theme, display.Yellow, Title))
}

func (c *CLI) ShowGameHistory(g *game.Game) {
	c.ShowMessage(fmt.Sprintf("Starting FEN: %s", g.InitialFEN()))

	moves := g.Moves()
	first := g.Snapshots()[0].NextTurnColor
	// a game resumed with Black to move opens with a black move
	offset := 0
	if first == core.ColorBlack {
		offset = 1
	}
	for i := -offset; i < len(moves); i += 2 {
		moveNum := (i+offset)/2 + 1
		white := "..."
		if i >= 0 {
			white = moves[i]
		}
		if i+1 < len(moves) {
			c.ShowMessage(fmt.Sprintf("%d. %s | %s", moveNum, white, moves[i+1]))
		} else {
			c.ShowMessage(fmt.Sprintf("%d. %s | ...", moveNum, white))
		}
	}
	c.ShowMessage(fmt.Sprintf("Current FEN: %s", g.FEN()))
	c.ShowMessage(fmt.Sprintf("Game state: %s", g.State()))
}
