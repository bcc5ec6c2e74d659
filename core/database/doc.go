// Package database handles the optional MySQL connection used by the operation journal.
//
// It provides a wrapper around GORM to configure MySQL connections based on the
// application's configuration. The connection is opt-in (database.enabled); when
// disabled Connect returns ErrDisabled and callers fall back to a no-op journal.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    logger.Warn("Optional database connection failed", zap.Error(err))
//	}
package database
