package app_test

import (
	"context"
	"errors"
)

var (
	ctx          = context.Background()
	errSomeError = errors.New("some-error")
)

type (
	request struct {
		Name  string `validate:"omitempty,min=3"`
		Count int    `validate:"gte=0,lte=10"`
	}
	response struct {
		Greeting string
	}
)

func greet(_ context.Context, req request) (response, error) {
	return response{Greeting: "hello " + req.Name}, nil
}

func fail(_ context.Context, _ request) (response, error) {
	return response{}, errSomeError
}
