// Package shell runs the interactive command loop over a versioned sequence
// of integers.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"

	"github.com/kevinxiao27/revlist/internal/command"
	"github.com/kevinxiao27/revlist/internal/config"
	"github.com/kevinxiao27/revlist/versioned"
)

var errQuit = errors.New("quit")

type Shell struct {
	seq *versioned.Sequence[int]
	in  LineReader
	out io.Writer
	cfg config.Config
	log *slog.Logger

	errColor  *color.Color
	infoColor *color.Color
}

func New(seq *versioned.Sequence[int], in LineReader, out io.Writer, cfg config.Config, log *slog.Logger) *Shell {
	s := &Shell{
		seq:       seq,
		in:        in,
		out:       out,
		cfg:       cfg,
		log:       log,
		errColor:  color.New(color.FgRed),
		infoColor: color.New(color.FgCyan),
	}
	if !cfg.Color {
		s.errColor.DisableColor()
		s.infoColor.DisableColor()
	}
	return s
}

// Run reads commands until quit, end of input, an interrupt or ctx is done.
// Errors from the sequence or from parsing are reported and never end the loop.
func (s *Shell) Run(ctx context.Context) error {
	s.banner()
	defer fmt.Fprintln(s.out, "bye")

	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		line, err := s.readLine(ctx, s.cfg.Prompt)
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			return endOfInput(err)
		}

		err = s.handle(ctx, line)
		switch {
		case err == nil:
		case ctx.Err() != nil:
			return ctx.Err()
		case errors.Is(err, errQuit):
			return nil
		case errors.Is(err, io.EOF), errors.Is(err, ErrInterrupted):
			return nil
		default:
			s.fail(err)
		}
	}
}

type readResult struct {
	line string
	err  error
}

// readLine returns the next line, or ctx.Err() as soon as ctx is done. A read
// abandoned on cancellation finishes in the background and is dropped.
func (s *Shell) readLine(ctx context.Context, prompt string) (string, error) {
	resCh := make(chan readResult, 1)
	go func() {
		line, err := s.in.ReadLine(prompt)
		resCh <- readResult{line: line, err: err}
	}()

	select {
	case res := <-resCh:
		return res.line, res.err
	case <-ctx.Done():
		return "", ctx.Err()
	}
}

func endOfInput(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, ErrInterrupted) {
		return nil
	}
	return fmt.Errorf("read input: %w", err)
}

func (s *Shell) handle(ctx context.Context, line string) error {
	cmd, err := command.Parse(line, s.cfg.Separator)
	if errors.Is(err, command.ErrBlank) {
		return nil
	}
	if err != nil {
		s.log.Warn("parse failed", "line", line, "err", err)
		return err
	}

	if cmd.NeedsArgs() {
		if cmd, err = s.collectArgs(ctx, cmd); err != nil {
			return err
		}
	}

	s.log.Debug("dispatch", "command", cmd.Kind.String(), "pos", cmd.Pos, "value", cmd.Value)
	return s.exec(cmd)
}

// collectArgs prompts for the arguments a long-form command needs.
func (s *Shell) collectArgs(ctx context.Context, cmd command.Command) (command.Command, error) {
	if cmd.TakesPosition() {
		line, err := s.readLine(ctx, fmt.Sprintf("%s position: ", cmd.Kind))
		if err != nil {
			return cmd, err
		}
		if cmd.Pos, err = command.ParsePosition(line); err != nil {
			return cmd, err
		}
	}
	if cmd.TakesValue() {
		line, err := s.readLine(ctx, fmt.Sprintf("%s value: ", cmd.Kind))
		if err != nil {
			return cmd, err
		}
		if cmd.Value, err = command.ParseValue(line); err != nil {
			return cmd, err
		}
	}
	cmd.Inline = true
	return cmd, nil
}

func (s *Shell) exec(cmd command.Command) error {
	changed := true

	switch cmd.Kind {
	case command.Insert:
		s.seq.Insert(cmd.Pos, cmd.Value)
		fmt.Fprintf(s.out, "insert %d at %d\n", cmd.Value, cmd.Pos)
	case command.Erase:
		s.seq.Erase(cmd.Pos)
		fmt.Fprintf(s.out, "erase %d\n", cmd.Pos)
	case command.Append:
		s.seq.Append(cmd.Value)
		fmt.Fprintf(s.out, "append %d\n", cmd.Value)
	case command.PushFront:
		s.seq.PushFront(cmd.Value)
		fmt.Fprintf(s.out, "push_front %d\n", cmd.Value)
	case command.PopBack:
		s.seq.PopBack()
		fmt.Fprintln(s.out, "pop_back")
	case command.PopFront:
		s.seq.PopFront()
		fmt.Fprintln(s.out, "pop_front")
	case command.Undo:
		s.seq.Undo()
		fmt.Fprintln(s.out, "undo")
	case command.Redo:
		if err := s.seq.Redo(); err != nil {
			return err
		}
		fmt.Fprintln(s.out, "redo")
	default:
		changed = false
	}

	if changed {
		if s.cfg.Debug {
			s.dump()
		}
		return nil
	}

	switch cmd.Kind {
	case command.Get:
		v, err := s.seq.Get(cmd.Pos)
		if err != nil {
			return err
		}
		fmt.Fprintf(s.out, "get %d: %d\n", cmd.Pos, v)
	case command.History:
		s.showHistory()
	case command.Current:
		s.showCurrent()
	case command.Dump:
		s.dump()
	case command.Help:
		s.help()
	case command.Quit:
		return errQuit
	}
	return nil
}

// fail reports an error and lets the loop continue.
func (s *Shell) fail(err error) {
	var prefix string
	switch {
	case errors.Is(err, versioned.ErrIndexOutOfRange):
		prefix = "out of range"
	case errors.Is(err, versioned.ErrNoMoreRedo):
		prefix = "cannot redo"
	case errors.Is(err, command.ErrUnknownCommand):
		prefix = "unknown command"
	default:
		prefix = "input error"
	}
	s.errColor.Fprintf(s.out, "%s: %v\n", prefix, err)
}
