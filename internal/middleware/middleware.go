// Package middleware stores global and route-specific middleware.
//
// These intercept requests to handle cross-cutting concerns such as
// request correlation, request logging, CORS, panic recovery, and the
// final translation of application errors into HTTP responses.
package middleware
