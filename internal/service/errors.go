package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrWrongPassword           = errors.New("wrong password")
	ErrPasswordRequired        = errors.New("password is required")
	ErrTokenVerificationFailed = errors.New("access token verification failed")
	ErrAuthMethodMismatch      = errors.New("login method does not match the account")

	ErrHashingPassword = errors.New("error hashing password")
)
