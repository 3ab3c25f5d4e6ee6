// Package http implements the JSON transport layer of the smart-cards API.
//
// It exposes route wiring, request handlers, and middleware used by the REST
// API. Cross-cutting concerns such as CORS, session authentication, guest
// rate limiting, request tracing, access logging and response compression
// are handled in this package before requests are delegated to the service
// layer. Every failure is rendered through a single error table as a
// {"kind", "message"} body.
package http
