package config

import "errors"

var (
	// ErrInvalidServerConfigs is returned when the HTTP server section is
	// unusable (empty listen address).
	ErrInvalidServerConfigs = errors.New("invalid server configs")

	// ErrInvalidStorageConfigs is returned when any of the three table
	// names is empty.
	ErrInvalidStorageConfigs = errors.New("invalid storage configs")

	// ErrInvalidUploadsConfigs is returned when the uploads section is
	// unusable (empty bucket or non-positive credential lifetime).
	ErrInvalidUploadsConfigs = errors.New("invalid uploads configs")
)
