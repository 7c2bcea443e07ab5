package downloader

import (
	"context"
	"fmt"
	"io/ioutil"
	"net/http"
	"time"
)

// Service describes downloader interface.
type Service interface {
	Download(context.Context, string) ([]byte, error)
}

// StatusError is returned when the server answers with a non-success status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("error downloading %s, status code is: %d", e.URL, e.StatusCode)
}

type impl struct {
	client *http.Client
}

// New returns downloader implementation. A nil client falls back to http.DefaultClient.
func New(client *http.Client) Service {
	if client == nil {
		client = http.DefaultClient
	}
	return &impl{client}
}

// NewClient returns http client with an overall timeout and a cap on followed redirects.
func NewClient(timeout time.Duration, maxRedirects int) *http.Client {
	return &http.Client{
		Timeout: timeout,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			if len(via) >= maxRedirects {
				return fmt.Errorf("stopped after %d redirects", maxRedirects)
			}
			return nil
		},
	}
}

// Download issues a single GET and returns the response body.
func (s *impl) Download(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	res, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}

	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &StatusError{URL: url, StatusCode: res.StatusCode}
	}

	b, err := ioutil.ReadAll(res.Body)
	if err != nil {
		return nil, fmt.Errorf("reading body for: %s failed with error: %w", url, err)
	}

	return b, nil
}
