package backand

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"time"

	"github.com/clok/kemba"
	"github.com/goccy/go-json"

	"github.com/backand/backand-go/api"
)

var transportKemba = kemba.New("backand:transport")

const defaultTimeout = 30 * time.Second

// Transport carries one assembled request to the wire and returns the
// raw response. Implementations must not retry; the client issues
// exactly one exchange per call.
type Transport interface {
	Do(ctx context.Context, req *api.Request) (*api.RawResponse, error)
}

// HTTPTransport is the net/http-backed Transport.
type HTTPTransport struct {
	Client *http.Client
}

var _ Transport = (*HTTPTransport)(nil)

func NewHTTPTransport() *HTTPTransport {
	return &HTTPTransport{
		Client: &http.Client{Timeout: defaultTimeout},
	}
}

func (t *HTTPTransport) Do(ctx context.Context, req *api.Request) (*api.RawResponse, error) {
	k := transportKemba.Extend("Do")

	var body io.Reader
	if req.Body != nil {
		raw, err := json.Marshal(req.Body)
		if err != nil {
			return nil, err
		}
		k.Printf("[%s] %s %s body=%s", req.ID, req.Method, req.URL, raw)
		body = bytes.NewReader(raw)
	} else {
		k.Printf("[%s] %s %s", req.ID, req.Method, req.URL)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.Method, req.URL, body)
	if err != nil {
		return nil, err
	}
	for _, h := range req.Headers {
		// Assigned directly: MIME canonicalization would rewrite
		// AnonymousToken to Anonymoustoken, which the backend does
		// not recognize.
		httpReq.Header[h.Name] = []string{h.Value}
	}

	resp, err := t.Client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	k.Printf("[%s] got %s, %d bytes", req.ID, resp.Status, len(raw))

	return &api.RawResponse{
		StatusCode: resp.StatusCode,
		Status:     resp.Status,
		Header:     resp.Header,
		Body:       raw,
	}, nil
}
