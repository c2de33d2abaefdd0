// Package httperror classifies errors raised while serving a request.
//
// An error is a "framework HTTP error" when it carries a status code: either
// it is (or wraps) an *Error from this package, or anything in its chain
// implements
//
//	interface{ HTTPStatus() int }
//
// Everything else is an opaque application error. The request tracer uses
// StatusCode to decide whether the error is suppressed by the ignore-list and
// what status to stamp on the request span.
package httperror
