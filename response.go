package backand

import (
	"net/http"

	"github.com/goccy/go-json"
	"github.com/tidwall/gjson"
)

// Response is a 2xx reply from the API.
type Response struct {
	StatusCode int
	Header     http.Header
	Body       []byte
}

// Decode unmarshals the body into v. Bodies may be objects, arrays or
// bare scalars depending on the operation. An empty body leaves v
// untouched.
func (r *Response) Decode(v any) error {
	if len(r.Body) == 0 {
		return nil
	}
	if err := json.Unmarshal(r.Body, v); err != nil {
		return newDecodeError(err)
	}
	return nil
}

// Get pulls one value out of the body by gjson path, e.g. "data.0.name"
// or "totalRows".
func (r *Response) Get(path string) gjson.Result {
	return gjson.GetBytes(r.Body, path)
}
