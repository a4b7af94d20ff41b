// Package client contains the JobHub client's outbound and local plumbing.
//
// # Overview
//
//  1. Client is the contract for the authentication service: Login and
//     Signup. HTTPClient implements it over JSON/HTTP, with a per-request
//     timeout, a client-side rate limiter and an X-Request-ID on every call.
//  2. InitDatabase and RunMigrations open the local SQLite database that
//     backs persistent session storage and apply the embedded goose
//     migrations.
//
// # Error Handling
//
// Transport failures wrap ErrUnavailable; undecodable success bodies wrap
// ErrMalformedResponse; non-2xx replies are returned as *StatusError. Use
// errors.Is / errors.As to tell them apart.
package client
