// Package infrastructure contains the adapters to the services used to look up ip addresses.
package infrastructure

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/cenkalti/backoff/v4"

	"github.com/iseif/devbelt/contexts/web/internal/domain"
)

const (
	maxResponseSize = 1 << 20
	retryInterval   = 200 * time.Millisecond
)

// getJSON decodes the JSON response of a GET request into v.
// Network errors, 429 and 5xx responses are retried up to retries times.
func getJSON(ctx context.Context, client *http.Client, url string, retries int, v any) error {
	policy := backoff.NewExponentialBackOff()
	policy.InitialInterval = retryInterval

	b := backoff.WithContext(backoff.WithMaxRetries(policy, uint64(max(retries, 0))), ctx)

	err := backoff.Retry(func() error { return get(ctx, client, url, v) }, b)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrLookupFailed, err) //nolint:errorlint // prevent err in api
	}

	return nil
}

func get(ctx context.Context, client *http.Client, url string, v any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return backoff.Permanent(err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "devbelt")

	res, err := client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return backoff.Permanent(err)
		}

		return err //nolint:wrapcheck // wrapped by getJSON
	}
	defer res.Body.Close()

	body := io.LimitReader(res.Body, maxResponseSize)

	switch {
	case res.StatusCode == http.StatusTooManyRequests || res.StatusCode >= http.StatusInternalServerError:
		_, _ = io.Copy(io.Discard, body)

		return fmt.Errorf("%s responded %s", req.URL.Host, res.Status) //nolint:err113 // retried, not part of the api
	case res.StatusCode != http.StatusOK:
		return backoff.Permanent(fmt.Errorf("%s responded %s", req.URL.Host, res.Status)) //nolint:err113 // see above
	}

	if err := json.NewDecoder(body).Decode(v); err != nil {
		return backoff.Permanent(fmt.Errorf("could not decode response of %s: %w", req.URL.Host, err))
	}

	return nil
}
