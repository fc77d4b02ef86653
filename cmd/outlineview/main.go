// Command outlineview is a terminal viewer for an outline document: it
// renders each visible line with its indentation and a fold marker for
// any leaf holding a collapsed subtree, colored by indentation depth.
package main

import (
	"flag"
	"io"
	"log"
	"os"

	"github.com/gdamore/encoding"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	rope "github.com/outlinerope/outlinerope"
)

func main() {
	showVersion := flag.Bool("version", false, "print build info and exit")
	flag.Parse()

	if *showVersion {
		log.Println(rope.GetBuildInfo().String())
		return
	}

	text, err := readInput(flag.Arg(0))
	if err != nil {
		log.Fatal(err)
	}
	doc := rope.DocumentFromText(text)

	encoding.Register()

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatal(err)
	}
	if err := screen.Init(); err != nil {
		log.Fatal(err)
	}
	defer screen.Fini()
	screen.EnableMouse()

	if err := run(screen, doc); err != nil {
		log.Fatal(err)
	}
}

func readInput(path string) (string, error) {
	if path == "" {
		return "", nil
	}
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()
	b, err := io.ReadAll(f)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// run draws doc's visible lines and handles key events until the user
// quits ('q' or Ctrl-C). Up/Down move the selection; Enter or 'c'
// collapses the selected line, or expands it if it cannot collapse.
func run(screen tcell.Screen, doc *rope.Document) error {
	selected := 0
	for {
		draw(screen, doc, selected)
		screen.Show()

		ev := screen.PollEvent()
		switch e := ev.(type) {
		case *tcell.EventKey:
			switch {
			case e.Key() == tcell.KeyCtrlC, e.Rune() == 'q':
				return nil
			case e.Key() == tcell.KeyDown:
				selected++
			case e.Key() == tcell.KeyUp && selected > 0:
				selected--
			case e.Key() == tcell.KeyEnter, e.Rune() == 'c':
				toggleFold(doc, selected)
			}
		case *tcell.EventResize:
			screen.Sync()
		}
	}
}

func toggleFold(doc *rope.Document, line int) {
	start, _, err := doc.RangeOfLine(lineOffset(doc, line))
	if err != nil {
		return
	}
	if err := doc.Collapse(start, 0); err == nil {
		return
	}
	doc.Expand(start, 0)
}

// lineOffset walks the visible lines to find the offset at which the
// nth line (0-indexed) begins.
func lineOffset(doc *rope.Document, line int) int {
	offset := 0
	for i := 0; i < line; i++ {
		start, length, err := doc.RangeOfLine(offset)
		if err != nil {
			break
		}
		offset = start + length
	}
	return offset
}

func draw(screen tcell.Screen, doc *rope.Document, selected int) {
	screen.Clear()
	w, h := screen.Size()

	offset := 0
	row := 0
	for offset <= doc.Length() && row < h {
		depth, err := doc.Depth(offset)
		if err != nil {
			break
		}
		start, length, err := doc.RangeOfLine(offset)
		if err != nil {
			break
		}

		style := depthStyle(depth)
		if row == selected {
			style = style.Reverse(true)
		}

		col := 0
		for i := uint32(0); i < depth; i++ {
			screen.SetContent(col, row, ' ', nil, style)
			col++
			screen.SetContent(col, row, ' ', nil, style)
			col++
		}

		line, hasFold := lineText(doc, start, length)
		if hasFold {
			screen.SetContent(col, row, '▸', nil, style)
			col++
		}
		for _, r := range line {
			if col >= w {
				break
			}
			screen.SetContent(col, row, r, nil, style)
			col++
		}

		row++
		offset = start + length
	}
}

// lineText returns the leaf's text without its own trailing '\n' and
// whether it owns a collapsed subtree.
func lineText(doc *rope.Document, start, length int) (string, bool) {
	leaf, _, ok := rope.LeafAt(doc.Root, start)
	if !ok {
		return "", false
	}
	s := leaf.Content
	if len(s) > 0 && s[len(s)-1] == '\n' {
		s = s[:len(s)-1]
	}
	return s, leaf.Collapsed != nil
}

// depthStyle ramps hue with indentation depth so deeper lines are
// visually distinguishable at a glance.
func depthStyle(depth uint32) tcell.Style {
	hue := float64((depth * 47) % 360)
	c := colorful.Hsv(hue, 0.45, 0.9)
	r, g, b := c.RGB255()
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
}
