package init

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/iseif/devbelt/cmd"
	"github.com/iseif/devbelt/contexts/crypto/internal/application"
	"github.com/iseif/devbelt/secret"
)

func (cc *CryptoContext) cli() *cobra.Command {
	crypto := &cobra.Command{
		Use:   contextName,
		Short: "Hash, HMAC, bcrypt, UUID, ULID and JWT tools",
	}

	crypto.AddCommand(
		cc.hashCmd(),
		cc.hmacCmd(),
		cc.bcryptCmd(),
		cc.uuidCmd(),
		cc.ulidCmd(),
		cc.jwtCmd(),
	)

	return crypto
}

func (cc *CryptoContext) hashCmd() *cobra.Command {
	var algorithm, encoding string

	hash := cmd.AddIOFlags(&cobra.Command{
		Use:   "hash [text]",
		Short: "Calculate the digest of the input, all algorithms if none is given",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.Hash.H(c.Context(), application.HashRequest{
				Text:      in,
				Algorithm: algorithm,
				Encoding:  encoding,
			})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if algorithm != "" {
				return cmd.WriteResult(c, res.Digests[0].Digest)
			}

			lines := make([]string, 0, len(res.Digests))
			for _, d := range res.Digests {
				lines = append(lines, fmt.Sprintf("%-12s %s", d.Algorithm, d.Digest))
			}

			return cmd.WriteResult(c, strings.Join(lines, "\n"))
		},
	})
	hash.Flags().StringVarP(&algorithm, "algorithm", "a", "", "e.g. md5, sha256, sha3-256, blake3, crc32")
	hash.Flags().StringVarP(&encoding, "encoding", "e", "hex", "one of: hex, HEX, base64")

	return hash
}

func (cc *CryptoContext) hmacCmd() *cobra.Command {
	var key, algorithm, encoding string

	hmac := cmd.AddIOFlags(&cobra.Command{
		Use:   "hmac [text]",
		Short: "Calculate the HMAC of the input with a key",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.HMAC.H(c.Context(), application.HMACRequest{
				Text:      in,
				Key:       secret.New(key),
				Algorithm: algorithm,
				Encoding:  encoding,
			})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Digest)
		},
	})
	hmac.Flags().StringVarP(&key, "key", "k", "", "the secret key")
	hmac.Flags().StringVarP(&algorithm, "algorithm", "a", "sha256", "hash function of the HMAC")
	hmac.Flags().StringVarP(&encoding, "encoding", "e", "hex", "one of: hex, HEX, base64")
	_ = hmac.MarkFlagRequired("key")

	return hmac
}

func (cc *CryptoContext) bcryptCmd() *cobra.Command {
	bcrypt := &cobra.Command{
		Use:   "bcrypt",
		Short: "Hash passwords with bcrypt or verify them",
	}

	var cost int

	hash := cmd.AddIOFlags(&cobra.Command{
		Use:   "hash [password]",
		Short: "Hash a password",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.BcryptHash.H(c.Context(), application.BcryptHashRequest{Password: in, Cost: cost})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, res.Hash)
		},
	})
	hash.Flags().IntVar(&cost, "cost", 0, "work factor 4 to 31, defaults to 10")

	var hashed string

	compare := cmd.AddIOFlags(&cobra.Command{
		Use:   "compare [password]",
		Short: "Check a password against a bcrypt hash",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.BcryptCompare.H(c.Context(), application.BcryptCompareRequest{Password: in, Hash: hashed})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			if res.Match {
				return cmd.WriteResult(c, "match")
			}

			return cmd.WriteResult(c, "no match")
		},
	})
	compare.Flags().StringVar(&hashed, "hash", "", "the bcrypt hash to compare with")
	_ = compare.MarkFlagRequired("hash")

	bcrypt.AddCommand(hash, compare)

	return bcrypt
}

func (cc *CryptoContext) uuidCmd() *cobra.Command {
	var (
		req     application.GenerateUUIDRequest
		inspect string
	)

	uuid := cmd.AddIOFlags(&cobra.Command{
		Use:   "uuid",
		Short: "Generate or inspect UUIDs",
		Example: `  devbelt crypto uuid -n 5 -v 7
  devbelt crypto uuid -v 5 --namespace dns --name example.com
  devbelt crypto uuid --inspect cfbff0d1-9375-5685-968c-48ce8b15ae17`,
		Args: cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if inspect != "" {
				res, err := cc.app.InspectUUID.H(c.Context(), application.InspectUUIDRequest{UUID: inspect})
				if err != nil {
					return err //nolint:wrapcheck // the use case error is the message
				}

				out := fmt.Sprintf("version: %d\nvariant: %s", res.Version, res.Variant)
				if res.Time != nil {
					out += "\ntime:    " + res.Time.Format(time.RFC3339Nano)
				}

				return cmd.WriteResult(c, out)
			}

			res, err := cc.app.GenerateUUID.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, strings.Join(res.UUIDs, "\n"))
		},
	})
	uuid.Flags().StringVarP(&req.Version, "version", "v", "4", "one of: nil, 1, 3, 4, 5, 6, 7")
	uuid.Flags().IntVarP(&req.Count, "count", "n", 1, "number of UUIDs")
	uuid.Flags().StringVar(&req.Namespace, "namespace", "", "dns, url, oid, x500 or a UUID, for version 3 and 5")
	uuid.Flags().StringVar(&req.Name, "name", "", "name for version 3 and 5")
	uuid.Flags().BoolVarP(&req.Uppercase, "uppercase", "U", false, "print in upper case")
	uuid.Flags().BoolVar(&req.NoHyphens, "no-hyphens", false, "omit the hyphens")
	uuid.Flags().StringVar(&inspect, "inspect", "", "show version, variant and time of a UUID")

	return uuid
}

func (cc *CryptoContext) ulidCmd() *cobra.Command {
	var (
		req     application.GenerateULIDRequest
		inspect string
	)

	ulid := cmd.AddIOFlags(&cobra.Command{
		Use:   "ulid",
		Short: "Generate monotonic ULIDs or show the time of one",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			if inspect != "" {
				res, err := cc.app.InspectULID.H(c.Context(), application.InspectULIDRequest{ULID: inspect})
				if err != nil {
					return err //nolint:wrapcheck // the use case error is the message
				}

				return cmd.WriteResult(c, res.Time.Format(time.RFC3339Nano))
			}

			res, err := cc.app.GenerateULID.H(c.Context(), req)
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			return cmd.WriteResult(c, strings.Join(res.ULIDs, "\n"))
		},
	})
	ulid.Flags().IntVarP(&req.Count, "count", "n", 1, "number of ULIDs")
	ulid.Flags().BoolVarP(&req.Lowercase, "lowercase", "l", false, "print in lower case")
	ulid.Flags().StringVar(&inspect, "inspect", "", "show the time encoded in a ULID")

	return ulid
}

func (cc *CryptoContext) jwtCmd() *cobra.Command {
	var key string

	jwt := cmd.AddIOFlags(&cobra.Command{
		Use:   "jwt [token]",
		Short: "Decode a JWT and verify HMAC signatures",
		RunE: func(c *cobra.Command, args []string) error {
			in, err := cmd.ReadInput(c, args)
			if err != nil {
				return err
			}

			res, err := cc.app.DecodeJWT.H(c.Context(), application.DecodeJWTRequest{Token: in, Secret: secret.New(key)})
			if err != nil {
				return err //nolint:wrapcheck // the use case error is the message
			}

			out, err := json.MarshalIndent(res, "", "  ")
			if err != nil {
				return fmt.Errorf("could not render token: %w", err)
			}

			return cmd.WriteResult(c, string(out))
		},
	})
	jwt.Flags().StringVarP(&key, "secret", "s", "", "HMAC secret to verify the signature")

	return jwt
}
