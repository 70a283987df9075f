package utils

// User facing messages returned in the "message" field.
const (
	MsgUnauthorized       = "Unauthorized. Please log in again."
	MsgInvalidCredentials = "Invalid username or password."
	MsgMissingFields      = "Missing required fields"
	MsgInvalidID          = "Invalid id"
	MsgScreenshotTooLarge = "Screenshot must be 3MB or smaller"
	MsgInvalidForm        = "Invalid form data"
	MsgServerError        = "Something went wrong. Please try again later."

	MsgOrderReceived      = "Order received"
	MsgInquiryReceived    = "Inquiry received"
	MsgSuggestionReceived = "Suggestion received"
	MsgLoggedIn           = "Logged in"
	MsgLoggedOut          = "Logged out"
	MsgStatusUpdated      = "Status updated"
	MsgDeleted            = "Deleted"
	MsgReplySent          = "Reply sent"
	MsgMessageSent        = "Message sent"
)
