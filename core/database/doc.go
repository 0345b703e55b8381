// Package database handles database connections and schema inspection.
//
// It wraps GORM to configure MySQL, PostgreSQL (through lib/pq) or SQLite
// connections from the application's configuration.
//
// # Connect
//
// Connect opens the configured driver, applies pool settings and verifies the
// connection with a bounded ping. SQLite connections are limited to a single
// open connection so that in-memory databases behave as one database.
//
// # Schema Inspection
//
// When automatic migration is disabled the content store verifies that an
// existing schema carries the columns it needs. GetTableColumns and
// MissingColumns back that check for every supported dialect.
//
// # Usage
//
//	db, err := database.Connect(cfg.Database)
//	if err != nil {
//	    log.Fatal("Database connection failed", err)
//	}
//
//	missing, err := database.MissingColumns(db, "posts", []string{"source_post_id"})
package database
