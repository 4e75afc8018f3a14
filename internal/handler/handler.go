// Package handler is the first entry point for business logic after the
// router.
//
// It parses requests, handles input binding and shape validation using
// the validation package, and calls the appropriate service. It acts as
// the interface between the HTTP request and the core business logic.
package handler
