// Package shell implements the interactive control loop: read a line,
// parse it, dispatch it, print the reply.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mserignese/gopro-control/internal/command"
)

// Dispatcher executes a parsed message and returns the reply text.
type Dispatcher interface {
	Do(command.Message) (string, error)
}

// StreamHandler runs after the stream command dispatches successfully.
// The control loop pauses until it returns.
type StreamHandler func(ctx context.Context) error

// Shell couples the line reader with the dispatcher.
type Shell struct {
	dispatcher Dispatcher
	logger     *slog.Logger
	out        io.Writer
	onStream   StreamHandler

	// Stdin overrides the line reader's input. Nil means the process
	// stdin.
	Stdin io.ReadCloser
}

func New(d Dispatcher, logger *slog.Logger, out io.Writer, onStream StreamHandler) *Shell {
	return &Shell{dispatcher: d, logger: logger, out: out, onStream: onStream}
}

// ProcessLine handles one input line. Parse and dispatch failures are
// logged and swallowed so the loop keeps accepting input; only replies
// with content are printed.
func (s *Shell) ProcessLine(ctx context.Context, line string) {
	tokens := strings.Fields(line)
	msg, err := command.Parse(tokens)
	if err != nil {
		if errors.Is(err, command.ErrEmptyInput) {
			return
		}
		s.logger.Error("cannot parse line", "error", err)
		return
	}

	reply, err := s.dispatcher.Do(msg)
	if err != nil {
		s.logger.Error("command failed", "command", msg.Def.Name, "error", err)
		return
	}
	if reply != "" {
		fmt.Fprintln(s.out, reply)
	}

	if msg.Def.Kind == command.KindStream && s.onStream != nil {
		if reply != "1" {
			s.logger.Warn("camera refused stream restart, not launching player")
			return
		}
		if err := s.onStream(ctx); err != nil {
			s.logger.Error("stream player failed", "error", err)
		}
	}
}

// Run drives the readline loop until EOF, interrupt, or cancellation
// of ctx.
func (s *Shell) Run(ctx context.Context) error {
	completions := make([]readline.PrefixCompleterInterface, 0, len(command.Names()))
	for _, name := range command.Names() {
		completions = append(completions, readline.PcItem(name))
	}

	cfg := &readline.Config{
		Prompt:          "gopro> ",
		HistoryFile:     filepath.Join(os.TempDir(), ".gopro-control_history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    readline.NewPrefixCompleter(completions...),
	}
	if s.Stdin != nil {
		cfg.Stdin = s.Stdin
	}

	rl, err := readline.NewEx(cfg)
	if err != nil {
		return fmt.Errorf("initializing line reader: %w", err)
	}
	defer rl.Close()

	// Closing the reader is the only thing that unblocks a pending
	// Readline when ctx is cancelled, e.g. on SIGINT while stdin is a
	// pipe.
	watchDone := make(chan struct{})
	defer close(watchDone)
	go func() {
		select {
		case <-ctx.Done():
			rl.Close()
		case <-watchDone:
		}
	}()

	for {
		line, err := rl.Readline()
		if ctx.Err() != nil {
			return nil
		}
		if err == readline.ErrInterrupt {
			return nil
		} else if err == io.EOF {
			return nil
		} else if err != nil {
			return fmt.Errorf("reading line: %w", err)
		}
		s.ProcessLine(ctx, line)
	}
}
