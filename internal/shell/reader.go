package shell

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/chzyer/readline"
	"golang.org/x/term"

	"github.com/kevinxiao27/revlist/internal/config"
)

// ErrInterrupted is returned by a LineReader when the user presses Ctrl+C on
// an empty line.
var ErrInterrupted = errors.New("interrupted")

// LineReader supplies input lines. ReadLine returns io.EOF at end of input.
type LineReader interface {
	ReadLine(prompt string) (string, error)
	Close() error
}

// NewLineReader uses readline when in is a terminal and a plain line scanner
// otherwise, so piped input works without a tty.
func NewLineReader(cfg config.Config, in *os.File, out io.Writer) (LineReader, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return NewScanner(in, out), nil
	}

	rl, err := readline.NewEx(&readline.Config{
		Prompt:          cfg.Prompt,
		HistoryFile:     cfg.HistoryFile,
		InterruptPrompt: "^C",
		EOFPrompt:       "q",

		Stdin:  readline.NewCancelableStdin(in),
		Stdout: out,
		Stderr: os.Stderr,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize readline: %w", err)
	}
	return &readlineReader{rl: rl}, nil
}

type readlineReader struct {
	rl *readline.Instance
}

func (r *readlineReader) ReadLine(prompt string) (string, error) {
	r.rl.SetPrompt(prompt)
	line, err := r.rl.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		if len(line) == 0 {
			return "", ErrInterrupted
		}
		// drop the partial line
		return "", nil
	}
	return line, err
}

func (r *readlineReader) Close() error {
	return r.rl.Close()
}

type scanner struct {
	sc  *bufio.Scanner
	out io.Writer
}

// NewScanner reads lines from in, writing each prompt to out first.
func NewScanner(in io.Reader, out io.Writer) LineReader {
	return &scanner{sc: bufio.NewScanner(in), out: out}
}

func (s *scanner) ReadLine(prompt string) (string, error) {
	fmt.Fprint(s.out, prompt)
	if !s.sc.Scan() {
		if err := s.sc.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return s.sc.Text(), nil
}

func (s *scanner) Close() error {
	return nil
}
