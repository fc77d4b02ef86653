// Command outline is a small demo: it parses a file-string document
// from stdin or a path argument, prints its visible form, and
// optionally exercises collapse/expand on a line offset given by flag.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	rope "github.com/outlinerope/outlinerope"
)

func main() {
	collapseAt := flag.Int("collapse", -1, "offset to collapse (0 or greater to try)")
	expandAt := flag.Int("expand", -1, "offset to expand (0 or greater to try)")
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		fmt.Println(rope.GetBuildInfo().String())
		return
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "outline:", err)
		os.Exit(1)
	}

	doc := rope.DocumentFromText(text)
	fmt.Printf("visible_string:\n%s\n\n", doc.VisibleString())
	fmt.Printf("length=%d file_length=%d revision=%s\n", doc.Length(), doc.FileLength(), doc.RevisionID)

	if *collapseAt >= 0 {
		if err := doc.Collapse(*collapseAt, 0); err != nil {
			fmt.Fprintln(os.Stderr, "collapse:", err)
		} else {
			fmt.Printf("\nafter collapse(%d):\n%s\n", *collapseAt, doc.VisibleString())
		}
	}

	if *expandAt >= 0 {
		if err := doc.Expand(*expandAt, 0); err != nil {
			fmt.Fprintln(os.Stderr, "expand:", err)
		} else {
			fmt.Printf("\nafter expand(%d):\n%s\n", *expandAt, doc.VisibleString())
		}
	}
}

func readInput(path string) (string, error) {
	var r io.Reader = os.Stdin
	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return "", err
		}
		defer f.Close()
		r = f
	}
	b, err := io.ReadAll(bufio.NewReader(r))
	if err != nil {
		return "", err
	}
	return string(b), nil
}
