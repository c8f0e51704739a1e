package constants

// Context keys
const (
	ContextKeyIdentity  = "identity"
	ContextKeyRequestID = "request_id"
)

// Headers
const (
	HeaderRequestID = "X-Request-ID"
)

const (
	MinPasswordLength = 8

	// ComplaintIDPrefix prefixes every public complaint identifier.
	ComplaintIDPrefix = "GRP"
	// ComplaintIDRandomLength is the number of base36 characters in the random part.
	ComplaintIDRandomLength = 8

	AnonymousSubmitter = "Anonymous"
)
