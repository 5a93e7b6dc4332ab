package engine

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/tartampluch/go-addressbook/internal/config"
)

var (
	// ErrRemoteStatus is returned when the contact server answers with anything but 200.
	ErrRemoteStatus = errors.New(config.ErrRemoteStatus)
	// ErrBodyTooLarge is returned by the body reader once MaxBytes is exceeded.
	ErrBodyTooLarge = errors.New(config.ErrBodyTooLarge)
)

// VCardFetcher retrieves a remote vCard stream for the importer.
// The importer only depends on this contract, so tests can serve cards
// from memory or from an httptest server.
type VCardFetcher interface {
	Fetch(ctx context.Context, url, user, pass string) (io.ReadCloser, error)
}

// HTTPFetcher downloads address books over HTTP(S), optionally with basic auth.
type HTTPFetcher struct {
	Client *http.Client

	// MaxBytes caps the body size. Zero means config.MaxHTTPResponseSize.
	MaxBytes int64
}

// NewHTTPFetcher creates a fetcher whose requests give up after timeout.
// The timeout comes from the import_timeout setting.
func NewHTTPFetcher(timeout time.Duration) *HTTPFetcher {
	return &HTTPFetcher{
		Client: &http.Client{
			Timeout: timeout,
		},
		MaxBytes: config.MaxHTTPResponseSize,
	}
}

// Fetch starts the download of an address book.
// The returned body fails with ErrBodyTooLarge instead of silently
// truncating a card, which would otherwise surface as a confusing parse error.
func (f *HTTPFetcher) Fetch(ctx context.Context, targetURL, user, pass string) (io.ReadCloser, error) {
	u, err := url.Parse(targetURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrInvalidURL, err)
	}

	// Only plain web URLs; file:// and friends go through the local path branch.
	if u.Scheme != config.SchemeHTTP && u.Scheme != config.SchemeHTTPS {
		return nil, fmt.Errorf("%s: %s", config.ErrProtocol, u.Scheme)
	}

	// Query strings of shared address books often carry access tokens.
	safeURL := u.Scheme + "://" + u.Host + u.Path

	log := slog.With(
		slog.String(config.LogKeyComponent, config.CompFetcher),
		slog.String(config.LogKeyURL, safeURL),
	)
	log.Debug(config.MsgFetchStart, slog.Bool(config.LogKeyAuth, user != ""))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, targetURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrRequestBuild, err)
	}
	req.Header.Set(config.HeaderUserAgent, config.UserAgent)
	req.Header.Set(config.HeaderAccept, config.MimeVCard)

	// Credentials come from the keyring; anonymous imports send no header.
	if user != "" || pass != "" {
		req.SetBasicAuth(user, pass)
	}

	resp, err := f.client().Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", config.ErrNetwork, err)
	}

	if resp.StatusCode != http.StatusOK {
		_ = resp.Body.Close()
		log.Warn(config.MsgFetchStatus,
			slog.Int(config.LogKeyStatus, resp.StatusCode),
		)
		return nil, fmt.Errorf("%w: %s", ErrRemoteStatus, resp.Status)
	}

	log.Info(config.MsgFetchBody,
		slog.Int64(config.LogKeyLength, resp.ContentLength),
	)

	limit := f.MaxBytes
	if limit <= 0 {
		limit = config.MaxHTTPResponseSize
	}
	return &cappedBody{body: resp.Body, left: limit}, nil
}

func (f *HTTPFetcher) client() *http.Client {
	if f.Client == nil {
		return http.DefaultClient
	}
	return f.Client
}

// cappedBody passes reads through until left bytes were consumed, then
// fails on the next byte the server still sends.
type cappedBody struct {
	body io.ReadCloser
	left int64
}

func (c *cappedBody) Read(p []byte) (int, error) {
	if c.left <= 0 {
		// One more byte tells an exact fit from an overflow.
		var one [1]byte
		n, err := c.body.Read(one[:])
		if n > 0 {
			return 0, ErrBodyTooLarge
		}
		return 0, err
	}
	if int64(len(p)) > c.left {
		p = p[:c.left]
	}
	n, err := c.body.Read(p)
	c.left -= int64(n)
	return n, err
}

func (c *cappedBody) Close() error {
	return c.body.Close()
}
