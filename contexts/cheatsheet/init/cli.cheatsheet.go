package init

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"

	"github.com/iseif/devbelt/cmd"
	"github.com/iseif/devbelt/contexts/cheatsheet/internal/application"
)

func (cc *CheatsheetContext) cli() *cobra.Command {
	var (
		query string
		raw   bool
		width int
	)

	sheet := cmd.AddIOFlags(&cobra.Command{
		Use:   "cheatsheet [language]",
		Short: "Show the cheat sheet of a language, without one all sheets are listed",
		Example: `  devbelt cheatsheet
  devbelt cheatsheet go -q error
  devbelt cheatsheet python --raw > python.md`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			if len(args) == 0 {
				res, err := cc.app.ListSheets.H(c.Context(), application.ListSheetsRequest{Query: query})
				if err != nil {
					return err //nolint:wrapcheck // the use case error is the message
				}

				lines := make([]string, 0, len(res.Sheets))
				for _, s := range res.Sheets {
					line := fmt.Sprintf("%-12s %-12s %3d items", s.Language, s.Title, s.Items)
					if len(s.Aliases) > 0 {
						line += "  (" + strings.Join(s.Aliases, ", ") + ")"
					}

					lines = append(lines, line)
				}

				return cmd.WriteResult(c, strings.Join(lines, "\n"))
			}

			res, err := cc.app.GetSheet.H(c.Context(), application.GetSheetRequest{Language: args[0], Query: query})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if raw {
				return cmd.WriteResult(c, strings.TrimSuffix(res.Markdown, "\n"))
			}

			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("could not create markdown renderer: %w", err)
			}

			out, err := renderer.Render(res.Markdown)
			if err != nil {
				return fmt.Errorf("could not render cheat sheet: %w", err)
			}

			return cmd.WriteResult(c, out)
		},
	})
	sheet.Flags().StringVarP(&query, "query", "q", "", "only show items containing this text")
	sheet.Flags().BoolVar(&raw, "raw", false, "print markdown instead of rendering it")
	sheet.Flags().IntVarP(&width, "width", "w", 100, "wrap the rendered sheet at this width") //nolint:mnd // columns

	return sheet
}
