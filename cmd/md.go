package cmd

import (
	"fmt"

	"github.com/charmbracelet/glamour"
)

// printMarkdown renders a markdown document for the terminal, printing the
// raw markdown when rendering fails so the output stays usable in pipes.
func printMarkdown(doc string) {
	r, err := glamour.NewTermRenderer(glamour.WithAutoStyle(), glamour.WithWordWrap(100))
	if err == nil {
		if out, err := r.Render(doc); err == nil {
			fmt.Print(out)
			return
		}
	}
	fmt.Println(doc)
}
