// Package service contains the business logic.
//
// It sits between the handler and repository layers: it receives bound
// request data from the handler, enforces input shape and domain rules,
// and calls repository methods to interact with the data. All
// domain-meaningful errors (validation, business, not found) originate
// here; the repository only ever reports absence or technical failure.
package service
