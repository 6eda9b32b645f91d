// FILE: cmd/pawns/main.go
// Package main implements the interactive pawns-only chess game
package main

import (
	"errors"
	"flag"
	"io"
	"log"
	"os"

	"pawns/internal/cli"
	"pawns/internal/service"
	clitransport "pawns/internal/transport/cli"

	"github.com/adrg/xdg"
	"github.com/chzyer/readline"
	"golang.org/x/term"
)

func main() {
	compact := flag.Bool("compact", false, "Draw the compact board")
	theme := flag.String("theme", "off", "Board color theme (off|brown|green|gray)")
	history := flag.String("history", "", "Line history file (default: XDG data dir)")
	plain := flag.Bool("plain", false, "Read plain lines without line editing")
	flag.Parse()

	opts := cli.Options{
		Compact:     *compact,
		Theme:       *theme,
		HistoryFile: *history,
		Plain:       *plain || !term.IsTerminal(int(os.Stdin.Fd())),
	}
	if err := opts.Validate(); err != nil {
		log.Fatalf("Invalid options: %v", err)
	}

	var (
		input  cli.LineReader
		output io.Writer = os.Stdout
	)
	if opts.Plain {
		input = cli.NewScannerReader(os.Stdin)
	} else {
		rl, err := newReadline(opts.HistoryFile)
		if err != nil {
			log.Fatalf("Failed to start line editor: %v", err)
		}
		defer rl.Close()
		input = interruptReader{rl: rl}
		output = rl.Stdout()
	}

	view, err := cli.New(input, output, opts)
	if err != nil {
		log.Fatalf("Failed to start: %v", err)
	}

	svc := service.New()
	defer svc.Close()

	handler := clitransport.New(svc, view)
	if err := handler.Run(); err != nil {
		log.Printf("Input error: %v", err)
	}
}

func newReadline(historyFile string) (*readline.Instance, error) {
	if historyFile == "" {
		path, err := xdg.DataFile("pawns/history")
		if err != nil {
			log.Printf("History disabled: %v", err)
		} else {
			historyFile = path
		}
	}

	return readline.NewEx(&readline.Config{
		HistoryFile:     historyFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
}

// interruptReader ends input on Ctrl-C as on Ctrl-D
type interruptReader struct {
	rl *readline.Instance
}

func (r interruptReader) Readline() (string, error) {
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", io.EOF
	}
	return line, err
}
