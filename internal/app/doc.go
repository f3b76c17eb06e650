// Package app assembles the dashboard backend: configuration, logging,
// the in-memory dataset store, the dashboard service and the HTTP server
// with its middleware chain.
package app
