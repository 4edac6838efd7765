package main

import (
	"fmt"
	"io"
	"os"

	"github.com/kevinxiao27/revlist/versioned"
	"github.com/sanity-io/litter"
)

func printHistory(w io.Writer, list *versioned.Sequence[int]) {
	fmt.Fprintln(w, "show history:")
	for step, snap := range list.Steps() {
		fmt.Fprintf(w, "Step %d:", step)
		for v := range snap.All() {
			fmt.Fprintf(w, " %d", v)
		}
		fmt.Fprintln(w)
	}
}

func run(w io.Writer) {
	list := versioned.New[int]()
	list.PushBack(10)
	list.PushFront(1)
	list.PushBack(20)
	list.PopFront()
	printHistory(w, list)

	list.Undo() // back to 1 10 20
	list.PushFront(99)
	printHistory(w, list)

	if v, err := list.Get(1); err == nil {
		fmt.Fprintf(w, "current 2nd element: %d\n", v)
	}
	if _, err := list.Get(5); err != nil {
		fmt.Fprintf(w, "exception: %v\n", err)
	}

	dumper := litter.Options{StripPackageNames: true}
	fmt.Fprintln(w, dumper.Sdump(list.Current()))
}

func main() {
	run(os.Stdout)
}
