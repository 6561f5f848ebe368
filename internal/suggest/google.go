package suggest

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"mime"
	"net/http"
	"net/url"
	"strings"

	"github.com/tidwall/gjson"
	"golang.org/x/text/encoding/htmlindex"

	"github.com/JaimeStill/qit/internal/keyword"
)

// Google queries the Google autocomplete endpoint. Responses use the
// OpenSearch suggestion format: [query, [suggestion, ...], ...].
type Google struct {
	hc     *http.Client
	cfg    Config
	logger *slog.Logger
}

// NewGoogle creates a Google provider. A nil client gets one with the
// configured timeout.
func NewGoogle(cfg *Config, hc *http.Client, logger *slog.Logger) *Google {
	if hc == nil {
		hc = &http.Client{Timeout: cfg.TimeoutDuration()}
	}
	return &Google{
		hc:     hc,
		cfg:    *cfg,
		logger: logger.With("provider", "google"),
	}
}

// Suggest performs a single lookup for seed. Locale codes are forwarded as
// hl/gl hints, falling back to the configured defaults.
func (g *Google) Suggest(ctx context.Context, seed string, locale keyword.Locale) ([]string, error) {
	req, err := g.request(ctx, seed, locale)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", ErrProvider, err)
	}

	resp, err := g.hc.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrProvider, resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, g.cfg.MaxBodySize.Int64()))
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", ErrProvider, err)
	}

	body, err = decodeCharset(body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	suggestions, err := parseSuggestions(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrProvider, err)
	}

	g.logger.DebugContext(ctx, "suggestions fetched",
		"seed", seed,
		"locale", locale.String(),
		"count", len(suggestions),
	)
	return suggestions, nil
}

func (g *Google) request(ctx context.Context, seed string, locale keyword.Locale) (*http.Request, error) {
	u, err := url.Parse(g.cfg.Endpoint)
	if err != nil {
		return nil, err
	}

	hl := locale.Language
	if hl == "" {
		hl = g.cfg.Language
	}
	gl := locale.Region
	if gl == "" {
		gl = g.cfg.Region
	}

	q := u.Query()
	q.Set("client", g.cfg.Client)
	q.Set("q", seed)
	q.Set("hl", hl)
	q.Set("gl", gl)
	q.Set("ie", "utf-8")
	q.Set("oe", "utf-8")
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", g.cfg.UserAgent)
	return req, nil
}

// decodeCharset converts body to UTF-8 when the Content-Type declares a
// different charset.
func decodeCharset(body []byte, contentType string) ([]byte, error) {
	if contentType == "" {
		return body, nil
	}
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return body, nil
	}
	charset := strings.ToLower(params["charset"])
	if charset == "" || charset == "utf-8" || charset == "utf8" {
		return body, nil
	}

	enc, err := htmlindex.Get(charset)
	if err != nil {
		return nil, fmt.Errorf("unsupported charset %q", charset)
	}
	decoded, err := enc.NewDecoder().Bytes(body)
	if err != nil {
		return nil, fmt.Errorf("decode %s body: %w", charset, err)
	}
	return decoded, nil
}

func parseSuggestions(body []byte) ([]string, error) {
	if !gjson.ValidBytes(body) {
		return nil, fmt.Errorf("malformed response: invalid json")
	}

	root := gjson.ParseBytes(body)
	if !root.IsArray() {
		return nil, fmt.Errorf("malformed response: expected array")
	}

	list := root.Get("1")
	if !list.IsArray() {
		return nil, fmt.Errorf("malformed response: missing suggestion list")
	}

	suggestions := []string{}
	for _, item := range list.Array() {
		if item.Type != gjson.String {
			return nil, fmt.Errorf("malformed response: non-string suggestion")
		}
		if s := strings.TrimSpace(item.String()); s != "" {
			suggestions = append(suggestions, s)
		}
	}
	return suggestions, nil
}
