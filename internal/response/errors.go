package response

// ErrCode is a typed error code enum for consistent API error identification.
type ErrCode string

const (
	// ─── Validation ────────────────────────────────────────────────────
	ErrValidation         ErrCode = "VALIDATION_ERROR"
	ErrInvalidPayload     ErrCode = "INVALID_PAYLOAD"
	ErrInvalidID          ErrCode = "INVALID_ID"
	ErrInvalidContentType ErrCode = "INVALID_CONTENT_TYPE"

	// ─── Authentication ────────────────────────────────────────────────
	ErrRegistrationClosed ErrCode = "REGISTRATION_CLOSED"
	ErrInvalidCredentials ErrCode = "INVALID_CREDENTIALS"
	ErrTokenRequired      ErrCode = "TOKEN_REQUIRED"
	ErrTokenInvalid       ErrCode = "TOKEN_INVALID"

	// ─── Authorization ─────────────────────────────────────────────────
	ErrForbidden         ErrCode = "FORBIDDEN"
	ErrAdminRoleRequired ErrCode = "ADMIN_ROLE_REQUIRED"

	// ─── Resources ─────────────────────────────────────────────────────
	ErrNotFound ErrCode = "NOT_FOUND"
	ErrConflict ErrCode = "CONFLICT"

	// ─── Infrastructure ────────────────────────────────────────────────
	ErrDatabaseUnavailable ErrCode = "DATABASE_UNAVAILABLE"
	ErrDeliveryFailed      ErrCode = "DELIVERY_FAILED"
	ErrRateLimitExceeded   ErrCode = "RATE_LIMIT_EXCEEDED"
	ErrInternal            ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidPayload:
		return "Invalid request payload."
	case ErrInvalidID:
		return "Invalid ID format."
	case ErrInvalidContentType:
		return "Invalid content type."
	case ErrRegistrationClosed:
		return "Admin registration closed. Contact existing admin."
	case ErrInvalidCredentials:
		return "Invalid username or password."
	case ErrTokenRequired:
		return "No token provided."
	case ErrTokenInvalid:
		return "Invalid or expired token."
	case ErrForbidden:
		return "You do not have permission to access this resource."
	case ErrAdminRoleRequired:
		return "Admin privileges required."
	case ErrNotFound:
		return "Resource not found."
	case ErrConflict:
		return "Username or email already exists."
	case ErrDatabaseUnavailable:
		return "Database unavailable."
	case ErrDeliveryFailed:
		return "Failed to send email."
	case ErrRateLimitExceeded:
		return "Too many requests. Please try again later."
	case ErrInternal:
		return "An internal server error occurred."
	default:
		return "An unexpected error occurred."
	}
}
