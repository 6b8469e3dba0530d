// Package database handles database connections.
//
// It provides a wrapper around GORM to properly configure MySQL connections
// based on the application's configuration, including DSN-level timeouts and
// connection pool limits.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
package database
