// FILE: internal/transport/cli/handler_test.go
package cli

import (
	"bytes"
	"log"
	"os"
	"strings"
	"testing"

	"pawns/internal/cli"
	"pawns/internal/core"
	"pawns/internal/display"
	"pawns/internal/game"
	"pawns/internal/service"
)

func run(t *testing.T, opts cli.Options, lines ...string) string {
	t.Helper()
	var out bytes.Buffer
	input := cli.NewScannerReader(strings.NewReader(strings.Join(lines, "\n") + "\n"))
	view, err := cli.New(input, &out, opts)
	if err != nil {
		t.Fatalf("cli.New failed: %v", err)
	}
	svc := service.New()
	defer svc.Close()

	if err := New(svc, view).Run(); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	return out.String()
}

func newPlayers() (*core.Player, *core.Player) {
	return core.NewPlayer(core.PlayerConfig{Name: "John"}, core.ColorWhite),
		core.NewPlayer(core.PlayerConfig{Name: "Amelia"}, core.ColorBlack)
}

func compact() cli.Options {
	return cli.Options{Theme: "off", Compact: true}
}

func TestRunExit(t *testing.T) {
	got := run(t, cli.Options{Theme: "off"}, "John", "Amelia", "exit")

	white, black := newPlayers()
	start := display.RenderBoard(game.New(white, black), display.LayoutFull, display.ThemeOff)
	want := "Pawns-Only Chess\n" +
		"First Player's name:\n" +
		"Second Player's name:\n" +
		start + "\n" +
		"John's turn:\n" +
		"Bye!\n"
	if got != want {
		t.Fatalf("output mismatch:\n%s\nwant:\n%s", got, want)
	}
}

func TestRunRejections(t *testing.T) {
	got := run(t, compact(), "John", "Amelia", "e2e5", "e7e5", "", "a1z1", "e2e4", "e2e3", "exit")

	for _, line := range []string{
		"Invalid Input",
		"No White pawn at e7",
		"Amelia's turn:",
		"No Black pawn at e2",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("output lacks %q:\n%s", line, got)
		}
	}
	if n := strings.Count(got, "Invalid Input\n"); n != 3 {
		t.Errorf("Invalid Input printed %d times, want 3", n)
	}
	if n := strings.Count(got, "John's turn:\n"); n != 5 {
		t.Errorf("John prompted %d times, want 5", n)
	}
}

func TestRunWhiteWins(t *testing.T) {
	got := run(t, compact(), "John", "Amelia",
		"e2e4", "d7d5", "e4d5", "c7c6", "d5d6", "c6c5", "d6d7", "c5c4", "d7d8",
		"a2a3")

	if !strings.HasSuffix(got, "  abcdefgh\nWhite Wins!\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
	if !strings.Contains(got, "8|   W    |\n") {
		t.Fatalf("promoted pawn not drawn:\n%s", got)
	}
}

func TestRunStalemateFromResume(t *testing.T) {
	got := run(t, compact(), "John", "Amelia",
		"resume 8/3P2P1/8/7p/8/p7/1PP1PPPP/8 w -",
		"b2a3", "h5h4", "h2h3")

	if !strings.Contains(got, "3|W       |\n2|  W WWWW|\n") {
		t.Fatalf("capture not drawn:\n%s", got)
	}
	if !strings.HasSuffix(got, "Stalemate!\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
}

func TestRunNameValidation(t *testing.T) {
	got := run(t, compact(), "", "John", "Amelia", "exit")

	if strings.Count(got, "First Player's name:\n") != 2 {
		t.Fatalf("blank name not asked again:\n%s", got)
	}
	if !strings.Contains(got, "Error: validation failed: Name is required\n") {
		t.Fatalf("validation error not shown:\n%s", got)
	}
}

func TestRunEndOfInput(t *testing.T) {
	got := run(t, compact(), "John")
	if !strings.HasSuffix(got, "Second Player's name:\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}

	got = run(t, compact(), "John", "Amelia", "e2e4")
	if !strings.HasSuffix(got, "Amelia's turn:\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
}

func TestRunCommands(t *testing.T) {
	got := run(t, compact(), "John", "Amelia",
		"moves e2",
		"moves e4",
		"moves zz",
		"e2e4",
		"undo",
		"undo",
		"undo x",
		"d2d4",
		"history",
		"color neon",
		"color green",
		"compact",
		"help",
		"exit")

	for _, line := range []string{
		"Moves from e2: e2e3 e2e4",
		"No moves from e4",
		"Move undone",
		"Error: cannot undo 1 moves: only 0 moves available",
		"Invalid undo count. Usage: undo [count]",
		"Starting FEN: 8/pppppppp/8/8/8/8/PPPPPPPP/8 w -",
		"1. d2d4 | ...",
		"Current FEN: 8/pppppppp/8/8/3P4/8/PPP1PPPP/8 b d3",
		"Game state: ongoing",
		"Error: invalid theme: neon (use: off, brown, green, gray)",
		"Color theme set to: green",
		"Commands:",
	} {
		if !strings.Contains(got, line+"\n") {
			t.Errorf("output lacks %q", line)
		}
	}
	if !strings.Contains(got, "+---+") {
		t.Errorf("compact toggle did not switch to the full board")
	}
	if !strings.HasSuffix(got, "Amelia's turn:\nBye!\n") {
		t.Errorf("unexpected ending:\n%s", got)
	}
}

func TestRunNewGame(t *testing.T) {
	got := run(t, compact(), "John", "Amelia", "e2e4", "new", "Ann", "Ben", "exit")
	if !strings.HasSuffix(got, "Ann's turn:\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
}

func TestRunBadResume(t *testing.T) {
	got := run(t, compact(), "John", "Amelia", "resume 8/8/8/8/8/8/8/8 w -", "resume", "exit")
	if !strings.Contains(got, "Error: could not start the game: invalid position: ") {
		t.Fatalf("bad FEN not reported:\n%s", got)
	}
	if !strings.Contains(got, "Usage: resume <FEN string>\n") {
		t.Fatalf("usage not shown:\n%s", got)
	}
	if !strings.HasSuffix(got, "John's turn:\nBye!\n") {
		t.Fatalf("unexpected ending:\n%s", got)
	}
}

func TestRunPaddedMoveRejected(t *testing.T) {
	got := run(t, compact(), "  John ", "Amelia", " a2a3 ", "a2a3 ", "exit")
	if n := strings.Count(got, "Invalid Input\n"); n != 2 {
		t.Fatalf("Invalid Input printed %d times, want 2:\n%s", n, got)
	}
	if !strings.HasSuffix(got, "John's turn:\nBye!\n") {
		t.Fatalf("padded move was applied:\n%s", got)
	}
}

func TestStartGameLogsStaleGame(t *testing.T) {
	var logs bytes.Buffer
	log.SetOutput(&logs)
	defer log.SetOutput(os.Stderr)

	view, err := cli.New(cli.NewScannerReader(strings.NewReader("")), &bytes.Buffer{}, compact())
	if err != nil {
		t.Fatalf("cli.New failed: %v", err)
	}
	h := New(service.New(), view)
	h.white = core.PlayerConfig{Name: "John"}
	h.black = core.PlayerConfig{Name: "Amelia"}
	h.gameID = "gone"

	if !h.startGame("") {
		t.Fatalf("startGame failed")
	}
	if h.gameID == "gone" {
		t.Fatalf("game not replaced")
	}
	if !strings.Contains(logs.String(), "failed to drop previous game: game not found: gone") {
		t.Fatalf("log = %q", logs.String())
	}
}
