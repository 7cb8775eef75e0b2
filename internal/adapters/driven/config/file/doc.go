// Package file provides the TOML-backed configuration store.
//
// The file lives at ~/.rfamops/config.toml unless another directory is
// given. Nested tables are flattened to dot keys on load ("fetch.workers")
// and nested again on save, so the file stays readable by hand:
//
//	environment = "cluster"
//
//	[fetch]
//	workers = 8
//	timeout_seconds = 60
package file
