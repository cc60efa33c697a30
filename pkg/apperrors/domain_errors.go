package apperrors

// Domain errors shared across services and handlers.
var (
	ErrSelfRelationship     = InvalidArg("cannot send a friend request to yourself")
	ErrUserNotFound         = NotFound("user not found")
	ErrRelationshipNotFound = NotFound("relationship not found")
	ErrRequestExists        = AlreadyExists("friend request already exists")
	ErrAlreadyFriends       = AlreadyExists("already friends")
	ErrBlocked              = Forbidden("relationship is blocked")
	ErrNotFriends           = Forbidden("messaging requires an accepted relationship")
	ErrNotRequestRecipient  = Forbidden("only the request recipient may accept")
	ErrNotBlocker           = Forbidden("only the blocker may unblock")
	ErrNoLongerPending      = Conflict("relationship is no longer pending")
	ErrTransitionConflict   = Conflict("relationship changed concurrently, re-fetch current state")
	ErrMessageNotFound      = NotFound("message not found")
	ErrEmptyContent         = InvalidArg("message content is required")
	ErrBadMessageType       = InvalidArg("unknown message type")
	ErrSubscriptionNotFound = NotFound("push subscription not found")
)
