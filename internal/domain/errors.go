package domain

import "errors"

var (
	ErrPackageNotFound    = errors.New("package not found")
	ErrVersionNotFound    = errors.New("package version not found")
	ErrInvalidPackageName = errors.New("package name is required")
	ErrIndexUnavailable   = errors.New("package index unreachable")
	ErrInvalidIndex       = errors.New("package index failed validation")
)
