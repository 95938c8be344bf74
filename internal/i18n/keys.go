// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Authentication
	KeyAuthRequired           = "auth.required"
	KeyAuthInvalidToken       = "auth.invalid_token"
	KeyAuthTokenExpired       = "auth.token_expired"
	KeyAuthInvalidCredentials = "auth.invalid_credentials"
	KeyAuthUserExists         = "auth.user_exists"
	KeyAuthLoginSuccess       = "auth.login_success"
	KeyAuthLogoutSuccess      = "auth.logout_success"
	KeyAuthRegisterSuccess    = "auth.register_success"

	// Projects
	KeyProjectCreated      = "project.created"
	KeyProjectUpdated      = "project.updated"
	KeyProjectNotFound     = "project.not_found"
	KeyProjectCodeRequired = "project.code_file_required"

	// Purchases / payments
	KeyPurchaseAlreadyOwned = "purchase.already_owned"
	KeyPurchaseNotCompleted = "purchase.payment_not_completed"
	KeyPurchaseSuccess      = "purchase.success"

	// Reviews
	KeyReviewCreated     = "review.created"
	KeyReviewNotEligible = "review.not_eligible"

	// Messages
	KeyMessageSent = "message.sent"

	// Reports
	KeyReportCreated  = "report.created"
	KeyReportNotFound = "report.not_found"
	KeyReportNotOwner = "report.not_owner"

	// Validation / files
	KeyValidationInvalid = "validation.invalid"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileUploadSuccess = "file.upload_success"
)
