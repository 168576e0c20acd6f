package modkit

import (
	"spamjar/internal/platform/config"
	"spamjar/internal/platform/logger"
)

// Deps holds core dependencies passed to modules
// this is wiring only and does not introduce new abstractions
type Deps struct {
	Log logger.Logger
	Cfg config.Conf
}

// ZeroOK returns true when deps are safe to use with zero values in tests
// modules read config through Cfg with defaults so an empty Conf is valid
func (d Deps) ZeroOK() bool { return true }
