package lambda

import "context"

// BodyKind discriminates the request body variants
type BodyKind int

const (
	// BodyAbsent means the event carried no body field
	BodyAbsent BodyKind = iota
	// BodyText means the body arrived as a string
	BodyText
	// BodyBinary means the body arrived as raw bytes (base64-decoded transport payload)
	BodyBinary
)

// Body is a tagged variant over the three shapes a request body can take.
// Branch on Kind(); only the accessor matching the kind returns data.
type Body struct {
	kind BodyKind
	text string
	raw  []byte
}

// NoBody returns the absent-body variant
func NoBody() Body {
	return Body{kind: BodyAbsent}
}

// TextBody returns a textual body variant
func TextBody(text string) Body {
	return Body{kind: BodyText, text: text}
}

// BinaryBody returns a raw-bytes body variant
func BinaryBody(raw []byte) Body {
	return Body{kind: BodyBinary, raw: raw}
}

// Kind returns the variant tag
func (b Body) Kind() BodyKind {
	return b.kind
}

// Text returns the textual payload; valid only for BodyText
func (b Body) Text() string {
	return b.text
}

// Raw returns the byte payload; valid only for BodyBinary
func (b Body) Raw() []byte {
	return b.raw
}

// Request represents a generic HTTP request for serverless functions
type Request struct {
	Method      string            `json:"method"`
	Path        string            `json:"path"`
	Headers     map[string]string `json:"headers"`
	QueryParams map[string]string `json:"query_params"`
	Body        Body              `json:"-"`
}

// Response represents a generic HTTP response for serverless functions
type Response struct {
	StatusCode int               `json:"status_code"`
	Headers    map[string]string `json:"headers"`
	Body       []byte            `json:"body"`
}

// HandlerFunc is a framework-agnostic handler interface. Handlers convert
// every failure into a response; they never propagate errors to the host.
type HandlerFunc func(ctx context.Context, req *Request) *Response
