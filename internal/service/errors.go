package service

import "errors"

var (
	ErrValidation         = errors.New("invalid request")
	ErrDuplicateEmail     = errors.New("email is already registered")
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidToken       = errors.New("invalid token")
	ErrExpired            = errors.New("token expired")
	ErrForbidden          = errors.New("forbidden: role does not permit this action")
)
