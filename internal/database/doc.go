// Package database provides the data access layer for the application.
//
// # Architecture
//
// The database layer is organized into domain-specific sub-packages:
//
//	database/
//	├── database.go      # Connection setup, migrations
//	├── users/           # Account storage
//	└── contacts/        # Contact storage, ownership-scoped
//
// # Using Sub-packages
//
// Each sub-package provides a Repository type with domain-specific
// operations:
//
//	db, err := database.NewDatabase(cfg.Database.DSN())
//
//	usersRepo := users.NewRepository(db.DB)
//	contactsRepo := contacts.NewRepository(db.DB)
//
// All contact reads and writes are keyed by the owning user id; the
// contacts repository never exposes a lookup by contact id alone.
package database
