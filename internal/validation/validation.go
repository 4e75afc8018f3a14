// Package validation contains the logic for binding and validating
// request data.
//
// It binds incoming payloads into request structs, runs their
// self-validation, and converts shape failures into the application's
// ValidationError so clients always see the same error envelope.
package validation
