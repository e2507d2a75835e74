package tick

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/nicou/tick-api/internal/requestid"
)

const (
	defaultBaseURL = "https://www.tickspot.com"
	apiVersion     = "v2"
	requestTimeout = 30 * time.Second
)

// HTTPClient abstracts the transport for testing.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Tick is the API client. Each instance holds its own configuration by value;
// instances are safe for concurrent use and never share credential state.
type Tick struct {
	cfg        Config
	baseURL    string
	httpClient HTTPClient
	logger     zerolog.Logger
	metrics    *Metrics
}

// New validates cfg and returns a client bound to it. Validation collects
// every violated field into a single *ConfigurationError. Only the three
// recognized fields are retained, trimmed of surrounding whitespace.
func New(cfg Config, opts ...Option) (*Tick, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	t := &Tick{
		cfg:        cfg.trimmed(),
		baseURL:    defaultBaseURL,
		httpClient: &http.Client{Timeout: requestTimeout},
		logger:     zerolog.Nop(),
	}
	for _, o := range opts {
		o(t)
	}
	t.logger = t.logger.With().Str("component", "tick").Logger()
	return t, nil
}

// SubscriptionID returns the subscription the client is bound to.
func (t *Tick) SubscriptionID() string { return t.cfg.SubscriptionID }

// buildURL composes <origin>/<subscription>/api/v2/<path>[?query].
func (t *Tick) buildURL(path string, query url.Values) (string, error) {
	if t == nil || t.cfg.SubscriptionID == "" {
		return "", errNoConfiguration()
	}
	u := fmt.Sprintf("%s/%s/api/%s/%s", t.baseURL, t.cfg.SubscriptionID, apiVersion, path)
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u, nil
}

// setHeaders applies the fixed header set. The JSON content type is included
// only for requests that carry a body (POST/PUT).
func (t *Tick) setHeaders(req *http.Request, includeContentType bool) error {
	if t.cfg.APIToken == "" || t.cfg.UserAgent == "" {
		return errNoConfiguration()
	}
	req.Header.Set("Authorization", "Token token="+t.cfg.APIToken)
	req.Header.Set("User-Agent", t.cfg.UserAgent)
	req.Header.Set("Accept", "application/json")
	if includeContentType {
		req.Header.Set("Content-Type", "application/json; charset=utf-8")
	}
	return nil
}

// callSpec describes one endpoint invocation of the shared four-step pattern.
type callSpec struct {
	resource  string // metrics label
	op        string // error/log prefix, e.g. "createClient"
	method    string
	path      string
	query     url.Values
	body      any    // JSON-serialized for POST/PUT; nil otherwise
	forbidden string // 403 message; empty selects the generic one
	conflict  string // 406 message; empty falls through to RequestError
}

// call performs exactly one transport round trip: build URL and headers, send,
// map the status, and decode the body into dest (dest nil skips decoding, for
// deletes). Input validation happens in the resource methods before call.
func (t *Tick) call(ctx context.Context, spec callSpec, dest any) error {
	u, err := t.buildURL(spec.path, spec.query)
	if err != nil {
		return err
	}

	var payload io.Reader
	if spec.body != nil {
		raw, err := json.Marshal(spec.body)
		if err != nil {
			return fmt.Errorf("%s: encoding request body: %w", spec.op, err)
		}
		payload = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, spec.method, u, payload)
	if err != nil {
		return fmt.Errorf("%s: creating request: %w", spec.op, err)
	}
	if err := t.setHeaders(req, spec.body != nil); err != nil {
		return err
	}
	id := requestid.From(ctx)
	req.Header.Set("X-Request-Id", id)

	start := time.Now()
	resp, err := t.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: executing request: %w", spec.op, err)
	}
	defer func() { _ = resp.Body.Close() }()

	t.logger.Debug().
		Str("request_id", id).
		Str("method", spec.method).
		Str("url", u).
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("api request")
	if t.metrics != nil {
		t.metrics.recordRequest(spec.resource, spec.method, resp.StatusCode)
		t.metrics.observeDuration(spec.resource, time.Since(start).Seconds())
	}

	if err := mapStatus(spec, resp); err != nil {
		return err
	}
	if dest == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &ResponseValidationError{Op: spec.op, Err: err}
	}
	return nil
}

// mapStatus turns a non-success status into the operation's failure.
func mapStatus(spec callSpec, resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}
	switch {
	case resp.StatusCode == http.StatusForbidden:
		msg := spec.forbidden
		if msg == "" {
			msg = "You are not authorized to perform this operation"
		}
		return &ForbiddenError{Op: spec.op, Message: msg}
	case resp.StatusCode == http.StatusNotAcceptable && spec.conflict != "":
		return &ConflictError{Op: spec.op, Message: spec.conflict}
	}
	return &RequestError{
		Op:         spec.op,
		StatusCode: resp.StatusCode,
		Status:     statusText(resp),
	}
}

func statusText(resp *http.Response) string {
	text := strings.TrimSpace(strings.TrimPrefix(resp.Status, strconv.Itoa(resp.StatusCode)))
	if text == "" {
		text = http.StatusText(resp.StatusCode)
	}
	return text
}
