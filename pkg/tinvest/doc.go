// Package tinvest is a thin gRPC client for the T-Invest brokerage API.
//
// The package owns connection setup only: it dials the public API over
// TLS, attaches authentication metadata to every call, and hands out the
// generated service clients from pkg/investapi. Call semantics, retries
// and error mapping stay with gRPC itself.
package tinvest
