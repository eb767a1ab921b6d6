package init

import (
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iseif/devbelt/cmd"
	"github.com/iseif/devbelt/contexts/codec/internal/application"
	"github.com/iseif/devbelt/contexts/codec/internal/domain"
)

func (cc *CodecContext) cli() *cobra.Command {
	codec := &cobra.Command{
		Use:   contextName,
		Short: "Encode and decode base64, base58, number bases, hex dumps and escapes",
	}

	codec.AddCommand(
		cc.base64Cmd(),
		cc.base58Cmd(),
		cc.numbaseCmd(),
		cc.hexdumpCmd(),
		cc.escapeCmd(),
	)

	return codec
}

func (cc *CodecContext) base64Cmd() *cobra.Command {
	b64 := &cobra.Command{
		Use:   "base64",
		Short: "Base64 encode, decode or create data URIs",
	}

	var urlSafe, noPadding bool

	encode := cmd.AddIOFlags(&cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text as base64",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.EncodeBase64.H(c.Context(), application.EncodeBase64Request{
				Text:      in,
				URLSafe:   urlSafe,
				NoPadding: noPadding,
			})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Result)
		},
	})
	encode.Flags().BoolVarP(&urlSafe, "url-safe", "u", false, "use the URL and filename safe alphabet")
	encode.Flags().BoolVarP(&noPadding, "no-padding", "n", false, "omit the trailing padding")

	decode := cmd.AddIOFlags(&cobra.Command{
		Use:   "decode [text]",
		Short: "Decode standard or URL-safe base64, with or without padding",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.DecodeBase64.H(c.Context(), application.DecodeBase64Request{Text: in})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if !res.IsUTF8 {
				return cmd.WriteResult(c, res.Hex)
			}

			return cmd.WriteResult(c, res.Result)
		},
	})

	file := cmd.AddIOFlags(&cobra.Command{
		Use:   "file <path>",
		Short: "Turn a file into a data URI",
		Args:  cobra.ExactArgs(1),
		RunE: func(c *cobra.Command, args []string) error {
			data, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("could not read file: %w", err)
			}

			res, err := cc.app.EncodeDataURI.H(c.Context(), application.EncodeDataURIRequest{Data: data})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.DataURI)
		},
	})

	b64.AddCommand(encode, decode, file)

	return b64
}

func (cc *CodecContext) base58Cmd() *cobra.Command {
	b58 := &cobra.Command{
		Use:   "base58",
		Short: "Base58 encode or decode with the bitcoin alphabet",
	}

	encode := cmd.AddIOFlags(&cobra.Command{
		Use:   "encode [text]",
		Short: "Encode text as base58",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.EncodeBase58.H(c.Context(), application.EncodeBase58Request{Text: in})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Result)
		},
	})

	decode := cmd.AddIOFlags(&cobra.Command{
		Use:   "decode [text]",
		Short: "Decode base58",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.DecodeBase58.H(c.Context(), application.DecodeBase58Request{Text: in})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if !res.IsUTF8 {
				return cmd.WriteResult(c, res.Hex)
			}

			return cmd.WriteResult(c, res.Result)
		},
	})

	b58.AddCommand(encode, decode)

	return b58
}

func (cc *CodecContext) numbaseCmd() *cobra.Command {
	var from, to int

	numbase := cmd.AddIOFlags(&cobra.Command{
		Use:   "numbase [value]",
		Short: "Convert a number between bases 2 to 36",
		Example: `  devbelt codec numbase 0xff --to 2
  devbelt codec numbase zz --from 36`,
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.ConvertBase.H(c.Context(), application.ConvertBaseRequest{Value: in, From: from, To: to})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if to != 0 {
				return cmd.WriteResult(c, res.Result)
			}

			fmt.Fprintf(c.OutOrStdout(), "bin: %s\noct: %s\nhex: %s\n", res.Binary, res.Octal, res.Hexadecimal)

			return cmd.WriteResult(c, res.Decimal)
		},
	})
	numbase.Flags().IntVar(&from, "from", 0, "base of the value, 0 detects 0b, 0o and 0x prefixes")
	numbase.Flags().IntVar(&to, "to", 0, "target base, if not set the common bases are printed")

	return numbase
}

func (cc *CodecContext) hexdumpCmd() *cobra.Command {
	var (
		bytesPerRow int
		uppercase   bool
		isHex       bool
	)

	hexdump := cmd.AddIOFlags(&cobra.Command{
		Use:   "hexdump [text]",
		Short: "Show the bytes of the input as hex dump",
		RunE: func(c *cobra.Command, args []string) error {
			req := application.HexdumpRequest{BytesPerRow: bytesPerRow, Uppercase: uppercase}

			if len(args) > 0 {
				req.Text = strings.Join(args, " ")
			} else {
				data, err := cmd.ReadInputBytes(c)
				if err != nil {
					return err
				}

				// raw bytes are passed as base64, so binary input survives unchanged.
				req.Base64 = base64.StdEncoding.EncodeToString(data)
			}

			if isHex {
				req.Hex, req.Text, req.Base64 = req.Text, "", ""
				if req.Hex == "" {
					return fmt.Errorf("%w: --hex needs the digits as argument", domain.ErrInvalidHex)
				}
			}

			res, err := cc.app.Hexdump.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Dump)
		},
	})
	hexdump.Flags().IntVarP(&bytesPerRow, "bytes-per-row", "w", 0, "bytes shown in each row, 1 to 64")
	hexdump.Flags().BoolVarP(&uppercase, "uppercase", "U", false, "print hex digits in upper case")
	hexdump.Flags().BoolVarP(&isHex, "hex", "x", false, "the argument is hex digits instead of text")

	return hexdump
}

func (cc *CodecContext) escapeCmd() *cobra.Command {
	var (
		mode     string
		unescape bool
	)

	escape := cmd.AddIOFlags(&cobra.Command{
		Use:   "escape [text]",
		Short: "Escape or unescape text for html, url, urlpath, json or unicode",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.Escape.H(c.Context(), application.EscapeRequest{Text: in, Mode: mode, Unescape: unescape})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Result)
		},
	})
	escape.Flags().StringVarP(&mode, "mode", "m", string(domain.EscapeHTML), "one of: html, url, urlpath, json, unicode")
	escape.Flags().BoolVarP(&unescape, "unescape", "d", false, "revert the escaping")

	return escape
}
