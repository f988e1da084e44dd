package config

import (
	"github.com/appsettings/appsettings/internal/logger"
)

// Env lists the dotenv files loaded before the settings record is built.
type Env struct {
	Files []string // later files do not override variables set by earlier ones
}

// Config overall data structure.
type Config struct {
	Title string `validate:"required"`
	Env   Env
	Log   logger.Log
}
