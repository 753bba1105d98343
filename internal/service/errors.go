package service

import "errors"

var (
	ErrFamilyNotFound  = errors.New("family not found")
	ErrMemberNotFound  = errors.New("family member not found")
	ErrNotMemberOwner  = errors.New("family member belongs to another account")
	ErrProfileNotFound = errors.New("profile not found")
	ErrInvalidScope    = errors.New("invalid migration scope")
)
