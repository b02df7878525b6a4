package sources

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"opendata/internal/payload"
)

// ── HTTP Source ─────────────────────────────────────────────
// Fetches one collection from the open-data REST API.
// One GET per endpoint, no retries, no timeout beyond the client's own.

// FetchError reports a failed request: a transport error or a non-2xx status.
type FetchError struct {
	Endpoint   string
	StatusCode int // 0 when the request never got a response
	Err        error
}

func (e *FetchError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("failed to fetch %s: %d", e.Endpoint, e.StatusCode)
	}
	return fmt.Sprintf("failed to fetch %s: %v", e.Endpoint, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// HTTPSource implements etl.Source against a REST base URL.
type HTTPSource struct {
	BaseURL string
	Limit   int
	Client  *http.Client // nil uses http.DefaultClient
}

// URL builds the request URL for endpoint.
func (s *HTTPSource) URL(endpoint string) string {
	return s.BaseURL + endpoint + "?limit=" + strconv.Itoa(s.Limit)
}

func (s *HTTPSource) Fetch(ctx context.Context, endpoint string) (any, error) {
	client := s.Client
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.URL(endpoint), nil)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: fmt.Errorf("create request: %w", err)}
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &FetchError{Endpoint: endpoint, StatusCode: resp.StatusCode}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &FetchError{Endpoint: endpoint, Err: fmt.Errorf("read body: %w", err)}
	}

	v, err := payload.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", endpoint, err)
	}
	return v, nil
}
