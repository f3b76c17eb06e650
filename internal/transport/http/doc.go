// Package http contains the chi HTTP handlers for the dashboard API. The
// handlers validate requests, delegate to the service layer, and render
// JSON envelopes; they hold no business logic of their own.
package http
