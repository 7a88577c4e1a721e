// Package cmd implements the CLI application to manage an investment book.
package cmd

import (
	"flag"

	"github.com/google/subcommands"
	"github.com/gverdier/folio"
)

// Register registers every subcommand on the commander. A main package
// calls Register() and then Execute() on the user-selected one.
func Register(c *subcommands.Commander) {
	c.Register(c.HelpCommand(), "")
	c.Register(c.FlagsCommand(), "")
	c.Register(c.CommandsCommand(), "")
	c.Register(&topicCmd{}, "")

	c.Register(&buyCmd{}, "recording")
	c.Register(&sellCmd{}, "recording")
	c.Register(&dividendCmd{}, "recording")
	c.Register(&budgetCmd{}, "recording")

	c.Register(&holdingCmd{}, "reports")
	c.Register(&reviewCmd{}, "reports")
	c.Register(&ledgerCmd{}, "reports")
	c.Register(&projectCmd{}, "reports")

	c.Register(&updateCmd{}, "book")
	c.Register(&exportCmd{}, "book")
	c.Register(&importCmd{}, "book")
}

// Names lists every subcommand name, for shell completion.
func Names() []string {
	return []string{
		"buy", "sell", "dividend", "budget",
		"holding", "review", "ledger", "project",
		"update", "export", "import", "topic",
	}
}

// as a CLI application it is short lived, so global flags are fine.

var bookFile = flag.String("book-file", "folio.json", "Path to the book file")

// LoadBook reads the book from the application book file, yielding an empty
// book when the file does not exist yet.
func LoadBook() (*folio.Book, error) {
	return folio.NewFileRepository(*bookFile).Load()
}

// SaveBook atomically replaces the application book file.
func SaveBook(b *folio.Book) error {
	return folio.NewFileRepository(*bookFile).Save(b)
}
