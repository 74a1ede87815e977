// Package errs defines the client-facing error shape of the API.
//
// Every error that leaves a handler ends up as an HTTPError, either because
// a layer returned one directly or because the global error handler
// converted it (see sqlerr for driver errors).
package errs
