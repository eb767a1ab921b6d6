package init

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"

	"github.com/iseif/devbelt/cmd"
	"github.com/iseif/devbelt/contexts/web/internal/application"
)

func (wc *WebContext) cli() *cobra.Command {
	web := &cobra.Command{
		Use:   contextName,
		Short: "Parse user agents, look up ip addresses, build gradients and minify sources",
	}

	web.AddCommand(
		wc.userAgentCmd(),
		wc.ipCmd(),
		wc.gradientCmd(),
		wc.minifyCmd(),
	)

	return web
}

func (wc *WebContext) userAgentCmd() *cobra.Command {
	return cmd.AddIOFlags(&cobra.Command{
		Use:   "useragent [user agent]",
		Short: "Show browser, OS and device of a user agent",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := wc.app.ParseUserAgent.H(c.Context(), application.ParseUserAgentRequest{UserAgent: in})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			cmd.Heading(c, res.Summary)

			return cmd.WriteResult(c, rows(
				"browser", res.Browser,
				"version", res.BrowserVersion,
				"os", res.OS,
				"os version", res.OSVersion,
				"device", res.Device,
				"type", res.Type,
				"url", res.URL,
			))
		},
	})
}

func (wc *WebContext) ipCmd() *cobra.Command {
	return cmd.AddIOFlags(&cobra.Command{
		Use:   "ip [address]",
		Short: "Show the location of an ip address, without one your public address is used",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			var req application.LookupIPRequest
			if len(args) == 1 {
				req.IP = args[0]
			}

			res, err := wc.app.LookupIP.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			kv := []string{"ipv4", res.IPv4, "ipv6", res.IPv6}
			if loc := res.Location; loc != nil {
				kv = append(kv,
					"city", loc.City,
					"region", loc.Region,
					"country", strings.TrimSpace(loc.Country+" "+loc.CountryCode),
					"postal", loc.Postal,
					"coordinates", fmt.Sprintf("%g, %g", loc.Latitude, loc.Longitude),
					"timezone", loc.Timezone,
					"org", loc.Org,
				)
			}

			return cmd.WriteResult(c, rows(kv...))
		},
	})
}

func (wc *WebContext) gradientCmd() *cobra.Command {
	var (
		req    application.GradientRequest
		random bool
	)

	gradient := cmd.AddIOFlags(&cobra.Command{
		Use:   "gradient [color[@position]]...",
		Short: "Build a CSS gradient and its color palette",
		Example: `  devbelt web gradient red blue
  devbelt web gradient '#ff0000' lime@30 'rgb(0, 0, 255)' --type radial --shape circle
  devbelt web gradient --random --angle 45`,
		RunE: func(c *cobra.Command, args []string) error {
			var (
				res application.GradientResponse
				err error
			)

			if random {
				angle := req.Angle
				res, err = wc.app.RandomGradient.H(c.Context(), application.RandomGradientRequest{Angle: &angle, Steps: req.Steps})
			} else {
				req.Stops, err = parseStops(args)
				if err != nil {
					return err
				}

				res, err = wc.app.Gradient.H(c.Context(), req)
			}

			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			fmt.Fprintln(c.OutOrStdout(), swatches(res.Palette))

			return cmd.WriteResult(c, res.Background)
		},
	})
	gradient.Flags().StringVarP(&req.Type, "type", "t", "linear", "linear, radial or conic")
	gradient.Flags().Float64VarP(&req.Angle, "angle", "a", 90, "angle in degrees, for linear and conic gradients")
	gradient.Flags().StringVar(&req.Shape, "shape", "", "circle or ellipse, for radial gradients")
	gradient.Flags().BoolVar(&req.Repeating, "repeating", false, "repeat the gradient")
	gradient.Flags().IntVarP(&req.Steps, "steps", "n", 5, "number of palette colors")
	gradient.Flags().BoolVar(&random, "random", false, "use two random colors")

	return gradient
}

func (wc *WebContext) minifyCmd() *cobra.Command {
	var (
		req   application.MinifyRequest
		stats bool
	)

	minify := cmd.AddIOFlags(&cobra.Command{
		Use:   "minify [source]",
		Short: "Minify CSS, JS, SVG, HTML, JSON or XML",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			req.Source = in

			res, err := wc.app.Minify.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if stats {
				fmt.Fprintf(c.ErrOrStderr(), "%d -> %d bytes, saved %g%%\n", res.OriginalSize, res.MinifiedSize, res.SavedPercent)
			}

			return cmd.WriteResult(c, res.Result)
		},
	})
	minify.Flags().StringVarP(&req.Type, "type", "t", "", "one of: css, js, svg, html, json, xml")
	minify.Flags().BoolVarP(&stats, "stats", "s", false, "print the saved size to stderr")
	_ = minify.MarkFlagRequired("type")

	return minify
}

// parseStops reads stops in the form color or color@position.
func parseStops(args []string) ([]application.StopRequest, error) {
	stops := make([]application.StopRequest, 0, len(args))

	for _, arg := range args {
		stop := application.StopRequest{Color: arg}

		if c, pos, found := strings.Cut(arg, "@"); found {
			p, err := strconv.ParseFloat(strings.TrimSuffix(pos, "%"), 64)
			if err != nil {
				return nil, fmt.Errorf("invalid position of %q: %w", arg, err)
			}

			stop = application.StopRequest{Color: c, Position: &p}
		}

		stops = append(stops, stop)
	}

	return stops, nil
}

// swatches renders each color as a colored block followed by its hex value.
func swatches(palette []string) string {
	parts := make([]string, 0, len(palette))

	for _, hex := range palette {
		c, err := colorful.Hex(hex)
		if err != nil {
			continue
		}

		r, g, b := c.RGB255()
		parts = append(parts, color.BgRGB(int(r), int(g), int(b)).Sprint("  ")+" "+hex)
	}

	return strings.Join(parts, "  ")
}

// rows formats key value pairs as aligned lines, pairs with an empty value are skipped.
func rows(kv ...string) string {
	lines := make([]string, 0, len(kv)/2) //nolint:mnd // pairs

	for i := 0; i+1 < len(kv); i += 2 {
		if kv[i+1] == "" {
			continue
		}

		lines = append(lines, fmt.Sprintf("%-12s %s", kv[i], kv[i+1]))
	}

	return strings.Join(lines, "\n")
}
