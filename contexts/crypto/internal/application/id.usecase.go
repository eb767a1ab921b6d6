package application

import (
	"context"
	"crypto/rand"
	"fmt"
	"time"

	"github.com/iseif/devbelt/app"
	"github.com/iseif/devbelt/contexts/crypto/internal/domain"
)

func NewGenerateUUIDRequestHandler(maxBatch int) app.Request[GenerateUUIDRequest, GenerateUUIDResponse] {
	return &generateUUIDRequestHandler{maxBatch: maxBatch}
}

type generateUUIDRequestHandler struct {
	maxBatch int
}

type (
	GenerateUUIDRequest struct {
		Version   string `json:"version"   validate:"omitempty,oneof=nil 1 3 4 5 6 7"`
		Count     int    `json:"count"     validate:"gte=0"`
		Namespace string `json:"namespace"`
		Name      string `json:"name"`
		Uppercase bool   `json:"uppercase"`
		NoHyphens bool   `json:"noHyphens"`
	}
	GenerateUUIDResponse struct {
		UUIDs []string `json:"uuids"`
	}
)

func (h *generateUUIDRequestHandler) H(_ context.Context, req GenerateUUIDRequest) (GenerateUUIDResponse, error) {
	count, err := batchSize(req.Count, h.maxBatch)
	if err != nil {
		return GenerateUUIDResponse{}, err
	}

	ids, err := domain.GenerateUUIDs(count, domain.UUIDOptions{
		Version:   req.Version,
		Namespace: req.Namespace,
		Name:      req.Name,
		Uppercase: req.Uppercase,
		NoHyphens: req.NoHyphens,
	})
	if err != nil {
		return GenerateUUIDResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	return GenerateUUIDResponse{UUIDs: ids}, nil
}

type (
	InspectUUIDRequest struct {
		UUID string `json:"uuid" validate:"required"`
	}
	InspectUUIDResponse struct {
		UUID    string     `json:"uuid"`
		Version int        `json:"version"`
		Variant string     `json:"variant"`
		Time    *time.Time `json:"time,omitempty"`
	}
)

func NewInspectUUIDRequestHandler() app.Request[InspectUUIDRequest, InspectUUIDResponse] {
	return app.RequestFunc[InspectUUIDRequest, InspectUUIDResponse](
		func(_ context.Context, req InspectUUIDRequest) (InspectUUIDResponse, error) {
			info, err := domain.InspectUUID(req.UUID)
			if err != nil {
				return InspectUUIDResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return InspectUUIDResponse{
				UUID:    info.UUID,
				Version: info.Version,
				Variant: info.Variant,
				Time:    info.Time,
			}, nil
		},
	)
}

// NewGenerateULIDRequestHandler uses now as clock, pass time.Now outside of tests.
func NewGenerateULIDRequestHandler(maxBatch int, now func() time.Time) app.Request[GenerateULIDRequest, GenerateULIDResponse] {
	return &generateULIDRequestHandler{maxBatch: maxBatch, now: now}
}

type generateULIDRequestHandler struct {
	maxBatch int
	now      func() time.Time
}

type (
	GenerateULIDRequest struct {
		Count     int  `json:"count"     validate:"gte=0"`
		Lowercase bool `json:"lowercase"`
	}
	GenerateULIDResponse struct {
		ULIDs []string `json:"ulids"`
	}
)

func (h *generateULIDRequestHandler) H(_ context.Context, req GenerateULIDRequest) (GenerateULIDResponse, error) {
	count, err := batchSize(req.Count, h.maxBatch)
	if err != nil {
		return GenerateULIDResponse{}, err
	}

	ids, err := domain.GenerateULIDs(count, h.now(), rand.Reader, req.Lowercase)
	if err != nil {
		return GenerateULIDResponse{}, err //nolint:wrapcheck // domain errors are the api
	}

	return GenerateULIDResponse{ULIDs: ids}, nil
}

type (
	InspectULIDRequest struct {
		ULID string `json:"ulid" validate:"required"`
	}
	InspectULIDResponse struct {
		ULID string    `json:"ulid"`
		Time time.Time `json:"time"`
	}
)

func NewInspectULIDRequestHandler() app.Request[InspectULIDRequest, InspectULIDResponse] {
	return app.RequestFunc[InspectULIDRequest, InspectULIDResponse](
		func(_ context.Context, req InspectULIDRequest) (InspectULIDResponse, error) {
			ts, err := domain.InspectULID(req.ULID)
			if err != nil {
				return InspectULIDResponse{}, err //nolint:wrapcheck // domain errors are the api
			}

			return InspectULIDResponse{ULID: req.ULID, Time: ts}, nil
		},
	)
}

// batchSize defaults count to 1 and limits it to maxBatch, if maxBatch is positive.
func batchSize(count int, maxBatch int) (int, error) {
	if count == 0 {
		return 1, nil
	}

	if maxBatch > 0 && count > maxBatch {
		return 0, fmt.Errorf("%w: at most %d per request", ErrBatchTooLarge, maxBatch)
	}

	return count, nil
}
