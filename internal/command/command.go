// Package command turns shell input lines into commands.
//
// A line is either a long form, a single letter or a full command name such as
// push_front whose arguments are prompted for separately, or a shortcut
// carrying its arguments inline: a20, e3, f5, g1, i1 7 (or i1,7).
package command

import (
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/pkg/errors"
)

type Kind byte

const (
	Insert    Kind = 'i'
	Erase     Kind = 'e'
	Append    Kind = 'a'
	PushFront Kind = 'f'
	PopBack   Kind = 'p'
	PopFront  Kind = 'P'
	Get       Kind = 'g'
	History   Kind = 's'
	Current   Kind = 'c'
	Undo      Kind = 'u'
	Redo      Kind = 'r'
	Dump      Kind = 'd'
	Help      Kind = 'h'
	Quit      Kind = 'q'
)

var kindNames = map[Kind]string{
	Insert:    "insert",
	Erase:     "erase",
	Append:    "append",
	PushFront: "push_front",
	PopBack:   "pop_back",
	PopFront:  "pop_front",
	Get:       "get",
	History:   "show history",
	Current:   "current",
	Undo:      "undo",
	Redo:      "redo",
	Dump:      "dump",
	Help:      "help",
	Quit:      "quit",
}

// kindsByName resolves full command names. push_back and show are aliases.
var kindsByName = func() map[string]Kind {
	m := map[string]Kind{
		"push_back": Append,
		"show":      History,
	}
	for k, name := range kindNames {
		m[name] = k
	}
	return m
}()

func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "unknown(" + string(rune(k)) + ")"
}

var (
	// kinds that accept inline arguments
	shortcutKinds = mapset.NewSet(Append, Erase, Insert, PushFront, Get)
	// kinds that need a position argument
	positionKinds = mapset.NewSet(Insert, Erase, Get)
	// kinds that need a value argument
	valueKinds = mapset.NewSet(Insert, Append, PushFront)
)

var (
	ErrBlank            = errors.New("blank line")
	ErrUnknownCommand   = errors.New("unknown command")
	ErrMalformed        = errors.New("invalid input")
	ErrMissingSeparator = errors.New("missing separator")
)

// Command is one parsed input line.
type Command struct {
	Kind  Kind
	Pos   int
	Value int
	// Inline is set when the arguments came on the command line itself.
	Inline bool
}

func (c Command) TakesPosition() bool {
	return positionKinds.Contains(c.Kind)
}

func (c Command) TakesValue() bool {
	return valueKinds.Contains(c.Kind)
}

// NeedsArgs reports whether the caller still has to collect arguments.
func (c Command) NeedsArgs() bool {
	return !c.Inline && (c.TakesPosition() || c.TakesValue())
}

// Parse reads one line. A long form is either the command letter or its full
// name, so "undo" and "u" are the same command but "ux" is not.
func Parse(line string, sep Separator) (Command, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return Command{}, ErrBlank
	}

	if kind, ok := kindsByName[strings.Join(strings.Fields(line), " ")]; ok {
		return Command{Kind: kind}, nil
	}

	kind := Kind(line[0])
	if _, ok := kindNames[kind]; !ok {
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", line)
	}

	switch {
	case len(line) == 1:
		return Command{Kind: kind}, nil
	case shortcutKinds.Contains(kind):
		return parseShortcut(kind, line[1:], sep)
	default:
		return Command{}, errors.Wrapf(ErrUnknownCommand, "%q", line)
	}
}

func parseShortcut(kind Kind, args string, sep Separator) (Command, error) {
	cmd := Command{Kind: kind, Inline: true}
	args = strings.TrimSpace(args)

	var err error
	switch kind {
	case Insert:
		i := sep.index(args)
		if i < 0 {
			return Command{}, errors.Wrapf(ErrMissingSeparator, "use i<pos>%s<val>", sep.example())
		}
		if cmd.Pos, err = ParsePosition(args[:i]); err != nil {
			return Command{}, err
		}
		cmd.Value, err = ParseValue(args[i+1:])
	case Erase, Get:
		cmd.Pos, err = ParsePosition(args)
	default:
		cmd.Value, err = ParseValue(args)
	}
	if err != nil {
		return Command{}, err
	}
	return cmd, nil
}

// ParsePosition parses a non-negative index.
func ParsePosition(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return 0, errors.Wrapf(ErrMalformed, "position %q", s)
	}
	return n, nil
}

// ParseValue parses an element value.
func ParseValue(s string) (int, error) {
	s = strings.TrimSpace(s)
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, errors.Wrapf(ErrMalformed, "value %q", s)
	}
	return n, nil
}
