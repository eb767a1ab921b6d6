package init

import (
	"errors"
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/iseif/devbelt/cmd"
	"github.com/iseif/devbelt/contexts/text/internal/application"
)

func (tc *TextContext) cli() *cobra.Command {
	text := &cobra.Command{
		Use:   contextName,
		Short: "Slugify, count, test regular expressions and format JSON",
	}

	text.AddCommand(
		tc.slugCmd(),
		tc.countCmd(),
		tc.regexCmd(),
		tc.jsonCmd(),
	)

	return text
}

func (tc *TextContext) slugCmd() *cobra.Command {
	var req application.SlugifyRequest

	slug := cmd.AddIOFlags(&cobra.Command{
		Use:   "slug [text]",
		Short: "Turn text into a URL friendly slug",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			req.Text = in

			res, err := tc.app.Slugify.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Slug)
		},
	})
	slug.Flags().StringVarP(&req.Separator, "separator", "s", "-", "one of: - _ .")
	slug.Flags().IntVarP(&req.MaxLength, "max-length", "l", 0, "cut the slug at a word boundary")
	slug.Flags().BoolVarP(&req.KeepCase, "keep-case", "k", false, "do not lower case")
	slug.Flags().BoolVar(&req.SplitCamel, "split-camel", false, "split camelCase words")
	slug.Flags().IntVar(&req.SuffixLength, "suffix", 0, "append a random suffix of this length")

	return slug
}

func (tc *TextContext) countCmd() *cobra.Command {
	return cmd.AddIOFlags(&cobra.Command{
		Use:   "count [text]",
		Short: "Count characters, words, lines and more",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil && !errors.Is(err, cmd.ErrNoInput) {
				return err
			}

			res, err := tc.app.Count.H(c.Context(), application.CountRequest{Text: in})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			rows := [][2]any{
				{"characters", res.Characters},
				{"runes", res.Runes},
				{"bytes", res.Bytes},
				{"words", res.Words},
				{"lines", res.Lines},
				{"sentences", res.Sentences},
				{"paragraphs", res.Paragraphs},
				{"spaces", res.Spaces},
				{"reading", res.ReadingTime},
				{"speaking", res.SpeakingTime},
			}

			lines := make([]string, 0, len(rows))
			for _, r := range rows {
				lines = append(lines, fmt.Sprintf("%-11s %v", r[0], r[1]))
			}

			return cmd.WriteResult(c, strings.Join(lines, "\n"))
		},
	})
}

func (tc *TextContext) regexCmd() *cobra.Command {
	var (
		req     application.MatchRegexRequest
		replace string
	)

	regex := cmd.AddIOFlags(&cobra.Command{
		Use:   "regex <pattern> [text]",
		Short: "Test a regular expression and highlight its matches",
		Example: `  devbelt text regex '\d+' 'a1 b22' -g
  cat access.log | devbelt text regex -f - --flavor extended '(?<=GET )\S+'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args[1:])
			if err != nil {
				return err
			}

			req.Pattern = args[0]
			req.Text = in

			if global, _ := c.Flags().GetBool("global"); global && !strings.Contains(req.Flags, "g") {
				req.Flags += "g"
			}

			if c.Flags().Changed("replace") {
				req.Replace = &replace
			}

			res, err := tc.app.MatchRegex.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if res.Replaced != nil {
				return cmd.WriteResult(c, *res.Replaced)
			}

			highlight := color.New(color.FgBlack, color.BgYellow).SprintFunc()

			var b strings.Builder
			for _, s := range res.Segments {
				if s.Match {
					b.WriteString(highlight(s.Text))

					continue
				}

				b.WriteString(s.Text)
			}

			fmt.Fprintln(c.OutOrStdout(), b.String())
			cmd.Heading(c, fmt.Sprintf("%d match(es)", len(res.Matches)))

			lines := make([]string, 0, len(res.Matches))
			for _, m := range res.Matches {
				line := fmt.Sprintf("%d-%d %q", m.Index, m.Index+m.Length, m.Text)
				for i, g := range m.Groups {
					name := g.Name
					if name == "" {
						name = fmt.Sprint(i + 1)
					}

					line += fmt.Sprintf(" %s=%q", name, g.Text)
				}

				lines = append(lines, line)
			}

			return cmd.WriteResult(c, strings.Join(lines, "\n"))
		},
	})
	regex.Flags().StringVar(&req.Flags, "flags", "", "any of g, i, m, s")
	regex.Flags().BoolP("global", "g", false, "find all matches, same as --flags g")
	regex.Flags().StringVar(&req.Flavor, "flavor", "re2", "re2 or extended (lookarounds, backreferences)")
	regex.Flags().StringVarP(&replace, "replace", "r", "", "print the text with the matches replaced, $1 and ${name} are expanded")

	return regex
}

func (tc *TextContext) jsonCmd() *cobra.Command {
	var (
		req  application.FormatJSONRequest
		tree bool
		yaml bool
	)

	json := cmd.AddIOFlags(&cobra.Command{
		Use:   "json [document]",
		Short: "Format, minify or convert JSON",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			switch {
			case yaml:
				res, err := tc.app.JSONToYAML.H(c.Context(), application.JSONToYAMLRequest{JSON: in})
				if err != nil {
					return err //nolint:wrapcheck // the use case error is the message
				}

				return cmd.WriteResult(c, strings.TrimSuffix(res.Result, "\n"))
			case tree:
				res, err := tc.app.TreeJSON.H(c.Context(), application.TreeJSONRequest{JSON: in})
				if err != nil {
					return err //nolint:wrapcheck // the use case error is the message
				}

				lines := make([]string, 0, len(res.Nodes))
				for _, n := range res.Nodes {
					line := fmt.Sprintf("%s%s (%s)", strings.Repeat("  ", n.Depth), n.Path, n.Type)
					if n.Type != "object" && n.Type != "array" {
						line += " " + n.Value
					}

					lines = append(lines, line)
				}

				return cmd.WriteResult(c, strings.Join(lines, "\n"))
			}

			req.JSON = in

			res, err := tc.app.FormatJSON.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Result)
		},
	})
	json.Flags().IntVarP(&req.Indent, "indent", "i", 2, "spaces per level") //nolint:mnd // default indentation
	json.Flags().BoolVarP(&req.Tabs, "tabs", "t", false, "indent with tabs")
	json.Flags().BoolVarP(&req.SortKeys, "sort", "s", false, "sort the keys of objects")
	json.Flags().BoolVarP(&req.Minify, "minify", "m", false, "remove all whitespace")
	json.Flags().BoolVar(&tree, "tree", false, "print every node with its path")
	json.Flags().BoolVar(&yaml, "yaml", false, "convert to YAML")

	return json
}
