package domain

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/oklog/ulid/v2"
)

var (
	ErrUnknownVersion   = errors.New("unknown uuid version")
	ErrMissingName      = errors.New("namespace and name are required")
	ErrInvalidNamespace = errors.New("invalid namespace")
	ErrInvalidUUID      = errors.New("invalid uuid")
	ErrInvalidULID      = errors.New("invalid ulid")
)

// UUIDOptions control the generation of UUIDs.
type UUIDOptions struct {
	// Version is one of nil, 1, 3, 4, 5, 6, 7. Empty defaults to 4.
	Version   string
	Namespace string
	Name      string
	Uppercase bool
	NoHyphens bool
}

// GenerateUUIDs returns count UUIDs.
// For the name based versions 3 and 5 all UUIDs are equal, as they only depend on namespace and name.
func GenerateUUIDs(count int, opts UUIDOptions) ([]string, error) {
	newUUID, err := uuidGenerator(opts)
	if err != nil {
		return nil, err
	}

	ids := make([]string, 0, count)

	for range count {
		id, err := newUUID()
		if err != nil {
			return nil, fmt.Errorf("could not generate uuid: %w", err)
		}

		ids = append(ids, formatUUID(id, opts))
	}

	return ids, nil
}

func uuidGenerator(opts UUIDOptions) (func() (uuid.UUID, error), error) {
	switch strings.ToLower(opts.Version) {
	case "nil", "0":
		return func() (uuid.UUID, error) { return uuid.Nil, nil }, nil
	case "1":
		return uuid.NewUUID, nil
	case "4", "":
		return uuid.NewRandom, nil
	case "6":
		return uuid.NewV6, nil
	case "7":
		return uuid.NewV7, nil
	case "3", "5":
		if opts.Namespace == "" || opts.Name == "" {
			return nil, ErrMissingName
		}

		ns, err := namespace(opts.Namespace)
		if err != nil {
			return nil, err
		}

		if opts.Version == "3" {
			return func() (uuid.UUID, error) { return uuid.NewMD5(ns, []byte(opts.Name)), nil }, nil
		}

		return func() (uuid.UUID, error) { return uuid.NewSHA1(ns, []byte(opts.Name)), nil }, nil
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownVersion, opts.Version)
}

func namespace(ns string) (uuid.UUID, error) {
	switch strings.ToLower(ns) {
	case "dns":
		return uuid.NameSpaceDNS, nil
	case "url":
		return uuid.NameSpaceURL, nil
	case "oid":
		return uuid.NameSpaceOID, nil
	case "x500":
		return uuid.NameSpaceX500, nil
	}

	id, err := uuid.Parse(ns)
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: use dns, url, oid, x500 or a uuid", ErrInvalidNamespace)
	}

	return id, nil
}

func formatUUID(id uuid.UUID, opts UUIDOptions) string {
	s := id.String()

	if opts.NoHyphens {
		s = strings.ReplaceAll(s, "-", "")
	}

	if opts.Uppercase {
		s = strings.ToUpper(s)
	}

	return s
}

// UUIDInfo describes a parsed UUID.
type UUIDInfo struct {
	UUID    string
	Version int
	Variant string
	// Time is only set for the time based versions 1, 6 and 7.
	Time *time.Time
}

func InspectUUID(s string) (UUIDInfo, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return UUIDInfo{}, fmt.Errorf("%w: %v", ErrInvalidUUID, err) //nolint:errorlint // prevent err in api
	}

	info := UUIDInfo{
		UUID:    id.String(),
		Version: int(id.Version()),
		Variant: id.Variant().String(),
	}

	if id == uuid.Nil {
		return info, nil
	}

	switch id.Version() {
	case 1, 6, 7: //nolint:mnd // the time based versions
		sec, nsec := id.Time().UnixTime()
		t := time.Unix(sec, nsec).UTC()
		info.Time = &t
	}

	return info, nil
}

// GenerateULIDs returns count ULIDs with the timestamp now.
// The ULIDs are monotonic, so they sort in the order of generation.
func GenerateULIDs(count int, now time.Time, entropy io.Reader, lowercase bool) ([]string, error) {
	monotonic := ulid.Monotonic(entropy, 0)
	ids := make([]string, 0, count)

	for range count {
		id, err := ulid.New(ulid.Timestamp(now), monotonic)
		if err != nil {
			return nil, fmt.Errorf("could not generate ulid: %w", err)
		}

		s := id.String()
		if lowercase {
			s = strings.ToLower(s)
		}

		ids = append(ids, s)
	}

	return ids, nil
}

// InspectULID returns the time encoded in a ULID.
func InspectULID(s string) (time.Time, error) {
	id, err := ulid.ParseStrict(strings.ToUpper(strings.TrimSpace(s)))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %v", ErrInvalidULID, err) //nolint:errorlint // prevent err in api
	}

	return ulid.Time(id.Time()).UTC(), nil
}
