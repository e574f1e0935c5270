// Package modules contains the landing page's interactive features.
//
// Each subdirectory is a module implementing `module.Module`. Modules are
// listed in `internal/app/modules.go` and booted by the server at start-up,
// where each one registers its routes and event subscribers.
package modules
