package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/lehtoroni/shorthand"
	"github.com/lehtoroni/shorthand/pkg/dom"
)

func queryCmd() *cobra.Command {
	var (
		textOnly  bool
		firstOnly bool
		attrName  string
	)

	cmd := &cobra.Command{
		Use:   "query <selector> [file]",
		Short: "Run a CSS selector against an HTML document",
		Long: `Run a CSS selector against an HTML document and print the
matches' outer HTML. Reads from stdin when no file is given.

Examples:
  shorthand query "a[href]" page.html
  shorthand query --text "h1, h2" page.html
  shorthand query --attr href a < page.html`,
		Args: cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			in := io.Reader(os.Stdin)
			if len(args) == 2 {
				f, err := os.Open(args[1])
				if err != nil {
					return err
				}
				defer f.Close()
				in = f
			}
			return runQuery(cmd.OutOrStdout(), in, args[0], textOnly, firstOnly, attrName)
		},
	}

	cmd.Flags().BoolVarP(&textOnly, "text", "t", false, "Print text content instead of markup")
	cmd.Flags().BoolVarP(&firstOnly, "first", "1", false, "Print only the first match")
	cmd.Flags().StringVarP(&attrName, "attr", "a", "", "Print the named attribute of each match")

	return cmd
}

func runQuery(out io.Writer, in io.Reader, selector string, textOnly, firstOnly bool, attrName string) error {
	doc, err := dom.ParseDocument(in)
	if err != nil {
		return fmt.Errorf("parse document: %w", err)
	}
	sh, err := shorthand.NewRegistry().Install(doc)
	if err != nil {
		return err
	}

	col, err := sh.Query(selector)
	if err != nil {
		return fmt.Errorf("selector %q: %w", selector, err)
	}
	if firstOnly {
		col = col.First()
	}

	col.Each(func(one *shorthand.Collection) {
		switch {
		case attrName != "":
			if v, ok := one.Attr(attrName); ok {
				fmt.Fprintln(out, v)
			}
		case textOnly:
			fmt.Fprintln(out, one.Text())
		default:
			fmt.Fprintln(out, dom.OuterHTML(one.Get(0)))
		}
	})
	return nil
}
