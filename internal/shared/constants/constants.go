package constants

const (
	// Environment constants
	EnvDevelopment = "development"
	EnvTest        = "test"
	EnvProduction  = "production"

	ServiceName    = "Smartlock API"
	ServiceVersion = "0.1.0"

	// skip/limit pagination
	DefaultSkip  = 0
	DefaultLimit = 100

	// HTTP Headers
	HeaderContentType     = "Content-Type"
	HeaderAuthorization   = "Authorization"
	HeaderXRequestID      = "X-Request-ID"
	HeaderWWWAuthenticate = "WWW-Authenticate"

	// Context keys
	ContextKeyRequestID = "request_id"
	ContextKeyClaims    = "identity_claims"

	// Database table names
	TableCategories        = "categories"
	TableItems             = "items"
	TableLockers           = "lockers"
	TableStock             = "stock"
	TableLockerPermissions = "locker_permissions"
	TablePendingCards      = "pending_cards"

	// Error messages
	ErrMsgInternalServerError = "Internal server error occurred"
	ErrMsgValidationFailed    = "Validation failed"
)
