// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// Services are pure Go with no CGO. They import domain and the ports
// packages only, plus uuid for run identifiers and errgroup for the
// download worker pool.
package services
