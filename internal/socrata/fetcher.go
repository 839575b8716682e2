package socrata

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/rs/zerolog"
)

const defaultPageSize = 1000

// Fetcher pages through one Socrata resource with $limit/$offset, yielding
// records in feed order. The sequence is finite and non-restartable; retry
// policy, if any, belongs to the HTTP client handed in.
type Fetcher struct {
	url      string
	pageSize int
	client   *http.Client
	log      zerolog.Logger
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithPageSize overrides the page size used for $limit.
func WithPageSize(size int) Option {
	return func(f *Fetcher) {
		if size > 0 {
			f.pageSize = size
		}
	}
}

// WithHTTPClient swaps the HTTP client, e.g. for tests or custom timeouts.
func WithHTTPClient(client *http.Client) Option {
	return func(f *Fetcher) {
		if client != nil {
			f.client = client
		}
	}
}

// WithLogger attaches a logger; page fetches are logged at debug level.
func WithLogger(log zerolog.Logger) Option {
	return func(f *Fetcher) {
		f.log = log
	}
}

func NewFetcher(resourceURL string, opts ...Option) *Fetcher {
	f := &Fetcher{
		url:      resourceURL,
		pageSize: defaultPageSize,
		client:   &http.Client{Timeout: 60 * time.Second},
		log:      zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Each streams every record of the resource through fn. Iteration stops at
// the first short page, or at the first fetch, decode, or handler error.
func (f *Fetcher) Each(ctx context.Context, fn func(Record) error) error {
	for offset := 0; ; offset += f.pageSize {
		page, err := f.fetchPage(ctx, offset)
		if err != nil {
			return err
		}
		for _, rec := range page {
			if err := fn(rec); err != nil {
				return err
			}
		}
		if len(page) < f.pageSize {
			return nil
		}
	}
}

func (f *Fetcher) fetchPage(ctx context.Context, offset int) ([]Record, error) {
	u, err := url.Parse(f.url)
	if err != nil {
		return nil, fmt.Errorf("parse feed url: %w", err)
	}
	q := u.Query()
	q.Set("$limit", strconv.Itoa(f.pageSize))
	q.Set("$offset", strconv.Itoa(offset))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, fmt.Errorf("build feed request: %w", err)
	}
	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page at offset %d: %w", offset, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("fetch page at offset %d: unexpected status %s", offset, resp.Status)
	}

	var page []Record
	if err := json.NewDecoder(resp.Body).Decode(&page); err != nil {
		return nil, fmt.Errorf("decode page at offset %d: %w", offset, err)
	}
	f.log.Debug().Int("offset", offset).Int("records", len(page)).Msg("fetched feed page")
	return page, nil
}
