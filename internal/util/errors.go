package util

import "errors"

var (
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrUnauthorized          = errors.New("unauthorized")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrContentNotFound       = errors.New("content not found")
	ErrContentLocked         = errors.New("content requires a subscription or purchase")
	ErrNoDailyFreeDrill      = errors.New("no daily free drill selected")
	ErrOrderNotCompleted     = errors.New("paypal order is not completed")
	ErrOrderAmountMismatch   = errors.New("paypal order amount does not match price")
	ErrOrderAlreadyProcessed = errors.New("order already processed")
	ErrInvalidImageExt       = errors.New("only png and jpeg images are allowed")
)
