// Package secret keeps sensitive configuration values, like API keys,
// from accidentally ending up in logs, JSON responses or error messages.
package secret

import (
	"encoding/json"
	"log/slog"
)

const mask = "******"

func New(secret string) Secret {
	return Secret{secret: &secret}
}

// Secret masks its value in every textual representation.
// Use Secret() to get access to the actual value.
type Secret struct {
	// secret being a pointer does make it harder to access the value via reflection.
	secret *string
}

// Secret returns the actual value of the Secret.
func (s Secret) Secret() string {
	if s.secret == nil {
		return ""
	}

	return *s.secret
}

// IsEmpty reports whether the Secret carries no value.
func (s Secret) IsEmpty() bool {
	return s.Secret() == ""
}

func (s Secret) String() string {
	return mask
}

// LogValue implements slog.LogValuer.
func (s Secret) LogValue() slog.Value {
	return slog.StringValue(mask)
}

func (s Secret) MarshalJSON() ([]byte, error) {
	return json.Marshal(mask) //nolint:wrapcheck // export the underlying error
}

func (s *Secret) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return err //nolint:wrapcheck // export the underlying error
	}

	s.secret = &value

	return nil
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(mask), nil
}

// UnmarshalText allows viper to decode a Secret with mapstructure.TextUnmarshallerHookFunc.
func (s *Secret) UnmarshalText(data []byte) error {
	text := string(data)
	s.secret = &text

	return nil
}
