package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	// Default pagination. Page size is request-supplied via the "perpage"
	// query parameter.
	DefaultPage     = 1
	DefaultPageSize = 10
	MaxPageSize     = 100
	PerPageParam    = "perpage"
	PageParam       = "page"

	// MaxAttachmentBytes is the upper bound for a single attachment upload.
	MaxAttachmentBytes = 4 * 1024 * 1024

	// AttachmentDir is the subdirectory of the media root where attachment
	// files are stored.
	AttachmentDir = "ticket_files"

	// HTTP Headers
	HeaderContentType   = "Content-Type"
	HeaderAuthorization = "Authorization"
	HeaderXRequestID    = "X-Request-ID"

	// Context keys
	ContextKeyCaller    = "caller"
	ContextKeyRequestID = "request_id"

	// Database table names
	TableTickets         = "tickets"
	TableTicketFollowUps = "ticket_follow_ups"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgResourceNotFound    = "Resource not found"
	ErrMsgUnauthorized        = "Unauthorized access"
	ErrMsgForbidden           = "Access Denied"
	ErrMsgValidationFailed    = "Validation failed"
)
