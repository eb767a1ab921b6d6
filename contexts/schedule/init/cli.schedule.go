package init

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iseif/devbelt/cmd"
	"github.com/iseif/devbelt/contexts/schedule/internal/application"
)

const runLayout = "Mon 2006-01-02 15:04:05 MST"

func (sc *ScheduleContext) cli() *cobra.Command {
	cron := &cobra.Command{
		Use:   "cron",
		Short: "Explain and build cron expressions",
	}

	cron.AddCommand(
		sc.explainCmd(),
		sc.buildCmd(),
	)

	return cron
}

func (sc *ScheduleContext) explainCmd() *cobra.Command {
	var (
		req  application.ExplainCronRequest
		from string
	)

	explain := cmd.AddIOFlags(&cobra.Command{
		Use:   "explain [expression]",
		Short: "Describe a cron expression and list its next runs",
		Example: `  devbelt cron explain '*/15 9-17 * * MON-FRI'
  devbelt cron explain @daily --tz Europe/Berlin -n 3
  devbelt cron explain '0 30 8 * * *' --seconds`,
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			req.Expression = in
			req.From = nil

			if from != "" {
				t, err := time.Parse(time.RFC3339, from)
				if err != nil {
					return fmt.Errorf("invalid --from, use RFC 3339: %w", err)
				}

				req.From = &t
			}

			res, err := sc.app.ExplainCron.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			cmd.Heading(c, res.Description)

			for _, f := range res.Fields {
				fmt.Fprintf(c.OutOrStdout(), "%-11s %s\n", f.Name, f.Value)
			}

			runs := make([]string, 0, len(res.Next))
			for _, t := range res.Next {
				runs = append(runs, t.Format(runLayout))
			}

			return cmd.WriteResult(c, strings.Join(runs, "\n"))
		},
	})
	explain.Flags().IntVarP(&req.Count, "count", "n", 5, "number of next runs")
	explain.Flags().StringVar(&req.Timezone, "tz", "", "IANA timezone of the runs, default UTC")
	explain.Flags().BoolVar(&req.Seconds, "seconds", false, "the expression starts with a seconds field")
	explain.Flags().StringVar(&from, "from", "", "list the runs after this time instead of now, RFC 3339")

	return explain
}

func (sc *ScheduleContext) buildCmd() *cobra.Command {
	var req application.BuildCronRequest

	build := cmd.AddIOFlags(&cobra.Command{
		Use:     "build",
		Short:   "Build a cron expression from its fields, missing fields match every value",
		Example: `  devbelt cron build --minute 0 --hour 9 --dow MON-FRI`,
		Args:    cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			res, err := sc.app.BuildCron.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			cmd.Heading(c, res.Description)

			return cmd.WriteResult(c, res.Expression)
		},
	})
	build.Flags().StringVar(&req.Second, "second", "", "seconds field, adds a leading seconds field")
	build.Flags().StringVar(&req.Minute, "minute", "", "minute field")
	build.Flags().StringVar(&req.Hour, "hour", "", "hour field")
	build.Flags().StringVar(&req.DayOfMonth, "dom", "", "day of month field")
	build.Flags().StringVar(&req.Month, "month", "", "month field")
	build.Flags().StringVar(&req.DayOfWeek, "dow", "", "day of week field")

	return build
}
