package domain

// ForwardRequest is a caller request relayed to the upstream API.
type ForwardRequest struct {
	Method      string
	Path        string
	RawQuery    string
	Token       string
	ContentType string
	Body        []byte
}

// ForwardResponse is the upstream answer to a ForwardRequest.
type ForwardResponse struct {
	StatusCode  int
	ContentType string
	Body        []byte
}

// OK reports whether the upstream answered with a 2xx status.
func (r *ForwardResponse) OK() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}
