// Package messages holds the user-facing copy shown by commands and the
// dashboard. Raw transport errors are never surfaced directly; they are
// mapped to one of these strings at the API boundary.
package messages

const (
	LoginSuccess   = "Successfully logged in"
	LoginError     = "Invalid email or password"
	LogoutSuccess  = "Successfully logged out"
	SessionExpired = "Your session has expired. Please log in again"
	Unauthorized   = "You are not authorized to access this resource"

	BanSuccess   = "User has been banned successfully"
	UnbanSuccess = "User has been unbanned successfully"

	VerifySuccess   = "Business has been verified successfully"
	UnverifySuccess = "Business has been unverified successfully"
	StatusUpdated   = "Business status has been updated successfully"

	CategoryCreated = "Category created successfully"
	CategoryUpdated = "Category updated successfully"
	CategoryDeleted = "Category deleted successfully"

	ContactResolved   = "Contact message marked as resolved"
	ContactUnresolved = "Contact message marked as unresolved"

	UnknownError    = "An unknown error occurred"
	NetworkError    = "Network error. Please check your connection"
	ValidationError = "Please check your input and try again"
	Forbidden       = "You don't have permission to perform this action"
	ServerError     = "Server error. Please try again later"
)
