// Package http implements the REST transport of the task tracker.
//
// Routes are served by a chi router. Every request gets a trace id and a
// request-scoped logger, an access log line, optional CORS headers, gzip
// handling and a deadline. Routes under /users and /tasks require a bearer
// token; the authenticated user id is read from the request context only.
//
// Errors returned by the service layer are turned into JSON ErrorResponse
// bodies through a single error-to-status table.
package http
