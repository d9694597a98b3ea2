package tracing

// Context carries per-request identifiers used in server-side logs. It is
// stored on the request context by the tracing middleware.
type Context struct {
	RequestID     string
	RequestSource string
}
