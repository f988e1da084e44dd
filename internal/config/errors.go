package config

import (
	"errors"
)

var (
	// ErrInvalidConfig wraps every validation failure of the toml config.
	ErrInvalidConfig = errors.New("invalid config")

	// ErrEmptyPath error if an env file entry is an empty string.
	ErrEmptyPath = errors.New("toml config env.files can not contain an empty path")
)
