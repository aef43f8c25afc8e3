package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Auth error messages
	ErrMsgUsernameMissing       = "Username missing"
	ErrMsgPasswordTooShort      = "Password must be at least 8 characters"
	ErrMsgUserDoesNotExist      = "User does not exist"
	ErrMsgInvalidPassword       = "Invalid password"
	ErrMsgUsernameTakenHTTP     = "Username already taken"
	ErrMsgChangePasswordFailed  = "Unable to change password"
	ErrMsgPermissionDeniedHTTP  = "You don't have permission for that"
	ErrMsgUserNotFoundHTTP      = "Cannot find user"

	// Friend error messages
	ErrMsgSelfFriendHTTP     = "Cannot add yourself as a friend"
	ErrMsgAddFriendFailed    = "Failed to add friend"
	ErrMsgRemoveFriendFailed = "Failed to remove friend"
	ErrMsgListFriendsFailed  = "Failed to retrieve friends"

	// User management error messages
	ErrMsgListUsersFailed  = "Failed to retrieve users"
	ErrMsgDeleteUserFailed = "Failed to delete user"

	// Relay error messages
	ErrMsgSendMessageFailed = "Failed to send message"
)

// Success messages for API responses
const (
	MsgRegistered      = "Successfully registered"
	MsgLoggedIn        = "Successfully logged in"
	MsgPasswordChanged = "Successfully changed password"
	MsgUserDeleted     = "Successfully deleted user"
	MsgFriendsCleared  = "Successfully removed all friends"
	MsgMessageSent     = "Message sent"
)
