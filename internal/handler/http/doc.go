// Package http implements the HTTP transport layer of the salon API.
//
// It exposes route wiring, request handlers, and middleware. Cross-cutting
// concerns such as request tracing, access logging, CORS, panic recovery and
// the two authorization guards (token verification and admin check) are
// handled in this package before requests are delegated to the service layer.
package http
