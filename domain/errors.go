package domain

import "errors"

// Service errors. Handlers pick the HTTP status with errors.Is; anything not
// listed here surfaces as a 500 with the error message as-is.
var (
	ErrMissingFields            = errors.New("missing required fields")
	ErrDuplicateEmail           = errors.New("email already exists")
	ErrInvalidCredentials       = errors.New("invalid credentials")
	ErrUserNotFound             = errors.New("user not found")
	ErrInvalidVendorCredentials = errors.New("invalid vendor credentials")
	ErrOrderNotFound            = errors.New("order not found")
	ErrDuplicateOTP             = errors.New("otp already held by an active order")
	ErrOTPExhausted             = errors.New("could not generate unique OTP")
)
