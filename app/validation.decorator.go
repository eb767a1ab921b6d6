package app

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/iseif/devbelt"
)

const CtxValidated devbelt.CTXKey = "devbelt.validated"

// ErrInvalidInput is returned, if a request does not pass the validation of its struct tags.
var ErrInvalidInput = errors.New("invalid input")

// PassedValidation is a helper giving you feedback, if a request passed validation of this decorator.
// Use it in case you want to ensure that the decorator was called before continuing with your business logic.
func PassedValidation(ctx context.Context) bool {
	if v, ok := ctx.Value(CtxValidated).(bool); ok {
		return v
	}

	return false
}

// NewValidatedRequest validates the incoming request according to its `validate` tags.
// If you don't pass a validator a default one is used.
func NewValidatedRequest[Req any, Res any](validate *validator.Validate, req Request[Req, Res]) Request[Req, Res] {
	if validate == nil {
		validate = validator.New(validator.WithRequiredStructEnabled())
	}

	return &requestValidatingDecorator[Req, Res]{
		validate: validate,
		base:     req,
	}
}

// NewValidatedQuery validates the incoming query according to its `validate` tags, see NewValidatedRequest.
func NewValidatedQuery[Q any, Res any](validate *validator.Validate, query Query[Q, Res]) Query[Q, Res] {
	return NewValidatedRequest[Q, Res](validate, query)
}

type requestValidatingDecorator[Req any, Res any] struct {
	validate *validator.Validate
	base     Request[Req, Res]
}

func (d *requestValidatingDecorator[Req, Res]) H(ctx context.Context, req Req) (Res, error) { //nolint:ireturn // valid use of generics
	if err := d.validate.Struct(req); err != nil {
		return *new(Res), fmt.Errorf("%w: %s", ErrInvalidInput, describe(err))
	}

	return d.base.H(context.WithValue(ctx, CtxValidated, true), req) //nolint:wrapcheck // decorate but not change anything
}

// describe turns validation errors into a single line, e.g.: "count must be lte 100".
func describe(err error) string {
	var vErrs validator.ValidationErrors
	if !errors.As(err, &vErrs) {
		return err.Error()
	}

	msgs := make([]string, 0, len(vErrs))

	for _, e := range vErrs {
		msg := strings.ToLower(e.Field()) + " must be " + e.Tag()
		if e.Param() != "" {
			msg += " " + e.Param()
		}

		msgs = append(msgs, msg)
	}

	return strings.Join(msgs, ", ")
}
