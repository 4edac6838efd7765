package shell

import (
	"fmt"

	"github.com/sanity-io/litter"

	"github.com/kevinxiao27/revlist/internal/command"
	"github.com/kevinxiao27/revlist/ol"
	"github.com/kevinxiao27/revlist/util"
)

var dumper = litter.Options{
	StripPackageNames: true,
	HidePrivateFields: false,
}

func (s *Shell) banner() {
	s.infoColor.Fprintln(s.out, "commands: i(insert) e(erase) a(append) f(push_front) p(pop_back) P(pop_front) g(get) s(show history) c(current) u(undo) r(redo) d(dump) h(help) q(quit)")
	s.infoColor.Fprintf(s.out, "shortcuts: a20, e3, f5, g1, %s\n", insertExample(s.cfg.Separator))
}

func insertExample(sep command.Separator) string {
	return util.Choose(sep == command.SeparatorComma, "i1,7", "i1 7")
}

func (s *Shell) help() {
	s.banner()
	fmt.Fprintln(s.out, "full names work too: push_front, pop_back, pop_front, show history.")
	fmt.Fprintln(s.out, "undo at the first step does nothing; redo past the newest step is an error.")
	fmt.Fprintln(s.out, "an edit after undo drops every later step.")
}

// showHistory prints every step oldest first. The step under the cursor is
// marked with '*'.
func (s *Shell) showHistory() {
	cursor := s.seq.Cursor()

	fmt.Fprintln(s.out, "show history:")
	for step, snap := range s.seq.Steps() {
		mark := util.Choose(step == cursor, "*", " ")
		fmt.Fprint(s.out, withElems(fmt.Sprintf("%s Step %d:", mark, step), snap))
		if step == cursor {
			fmt.Fprintf(s.out, " (%s)", snap.Op())
		}
		fmt.Fprintln(s.out)
	}
}

func (s *Shell) showCurrent() {
	fmt.Fprintln(s.out, withElems("current state:", s.seq.Current()))
}

func withElems(head string, snap fmt.Stringer) string {
	if elems := snap.String(); elems != "" {
		return head + " " + elems
	}
	return head
}

type state struct {
	Step    int
	Steps   int
	Op      ol.OpType
	Current []int
}

func (s *Shell) dump() {
	cur := s.seq.Current()
	fmt.Fprintln(s.out, dumper.Sdump(state{
		Step:    s.seq.Cursor(),
		Steps:   s.seq.Len(),
		Op:      cur.Op(),
		Current: cur.Slice(),
	}))
}
