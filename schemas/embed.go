// Package schemas provides the embedded SQL migrations for the MySQL dictionary backend.
package schemas

import "embed"

// MigrationsDir is the directory inside Migrations holding the .sql files.
const MigrationsDir = "migrations"

// Migrations contains all SQL migration files.
//
//go:embed migrations/*.sql
var Migrations embed.FS
