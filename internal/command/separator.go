package command

import (
	"strings"

	"github.com/pkg/errors"
)

// Separator selects what splits position and value in the insert shortcut.
type Separator string

const (
	SeparatorAny   Separator = "any"
	SeparatorSpace Separator = "space"
	SeparatorComma Separator = "comma"
)

var ErrBadSeparator = errors.New("separator must be one of any, space, comma")

func ParseSeparator(s string) (Separator, error) {
	switch sep := Separator(strings.ToLower(strings.TrimSpace(s))); sep {
	case SeparatorAny, SeparatorSpace, SeparatorComma:
		return sep, nil
	case "":
		return SeparatorAny, nil
	default:
		return "", errors.Wrapf(ErrBadSeparator, "got %q", s)
	}
}

func (s Separator) index(args string) int {
	switch s {
	case SeparatorSpace:
		return strings.IndexByte(args, ' ')
	case SeparatorComma:
		return strings.IndexByte(args, ',')
	default:
		return strings.IndexAny(args, " ,")
	}
}

func (s Separator) example() string {
	switch s {
	case SeparatorComma:
		return ","
	default:
		return " "
	}
}
