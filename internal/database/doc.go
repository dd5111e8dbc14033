// Package database provides the data access layer for the application.
//
// # Architecture
//
//	database/
//	├── database.go      # Connection setup, pool limits, WAL and busy timeout
//	├── migrate.go       # Embedded golang-migrate migrations
//	├── migrations/      # Versioned SQL files
//	└── words/           # Stored vocabulary words
//
// # Using Sub-packages
//
//	db, err := database.NewDatabase(path, database.Options{Logger: logger})
//	if err != nil {
//		return err
//	}
//	defer db.Close()
//
//	repo := words.NewRepository(db.DB)
//	stored, err := repo.List(ctx)
//
// # Schema Changes
//
// Add a new pair of NNNNNN_name.up.sql / NNNNNN_name.down.sql files to
// migrations/. They are embedded into the binary and applied by
// NewDatabase on the next start.
package database
