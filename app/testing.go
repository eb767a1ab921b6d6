package app

import (
	"context"
	"errors"
)

//
// This file contains convenience helpers you can use to easier test
// your calling code relying on the Request pattern.
//

var ErrUseCaseFailed = errors.New("usecase failed")

// TestRequestHandler turns f into a Request, so a test can assert on the input it receives.
func TestRequestHandler[Req any, Res any](f func(ctx context.Context, req Req) (Res, error)) Request[Req, Res] {
	return RequestFunc[Req, Res](f)
}

func TestSuccessRequestHandler[Req any, Res any]() Request[Req, Res] {
	return RequestFunc[Req, Res](func(_ context.Context, _ Req) (Res, error) {
		var result Res

		return result, nil
	})
}

func TestFailureRequestHandler[Req any, Res any]() Request[Req, Res] {
	return RequestFunc[Req, Res](func(_ context.Context, _ Req) (Res, error) {
		var result Res

		return result, ErrUseCaseFailed
	})
}
