package web

import "embed"

// FS holds the static assets served under /static and copied by the export command.
//
//go:embed static
var FS embed.FS
