// Package errs defines the application error taxonomy and the shape
// errors take on the wire.
//
// Every failure in the service is classified into one of four kinds
// (validation, business rule, not found, or internal) so that the HTTP
// layer can perform a single, total mapping from
// error kind to status code and response body.
package errs
