// Package careeros holds assets shared by the CareerOS binaries.
package careeros

import "embed"

// Migrations contains the goose SQL migrations under migrations/.
//
//go:embed migrations/*.sql
var Migrations embed.FS
