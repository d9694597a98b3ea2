package values

// Status words returned by helpers and repos. util.StatusCode maps them to
// HTTP status codes when the response is written.
const (
	Success        = "success"
	Created        = "created"
	Failed         = "failed"
	Error          = "error"
	BadRequestBody = "bad-request"
	NotAuthorised  = "not-authorised"
	TokenExpired   = "token-expired"
	NotAllowed     = "not-allowed"
	NotFound       = "not-found"
	Conflict       = "conflict"
	Unprocessable  = "unprocessable"
)

const (
	HeaderRequestSource = "X-Request-Source"
	HeaderRequestID     = "X-Request-Id"
)

type ContextKey string

const ContextTracingKey = ContextKey("tracing-context")

// Community membership roles. Promotion defaults to moderator when the
// request does not name a role.
const (
	RoleMember    = "member"
	RoleModerator = "moderator"
)

// Livestream participant roles. Only streamers may publish.
const (
	RoleStreamer = "streamer"
	RoleViewer   = "viewer"
)

// Friendship statuses as stored, plus the two synthetic statuses the status
// endpoint returns without touching the store.
const (
	FriendStatusPending  = "pending"
	FriendStatusAccepted = "accepted"
	FriendStatusSelf     = "self"
	FriendStatusNone     = "none"
)
