// Package client is the CLI's connection to the moodkeeper backend.
//
// Client is the transport-agnostic contract the CLI depends on. GRPCClient
// implements it over the moodkeeper.Wellness gRPC service: it keeps the
// token pair from the last login, attaches the access token to every call
// and transparently refreshes it once when the server reports it expired.
//
// gRPC status codes are mapped to the sentinel errors in errors.go so that
// callers can use errors.Is without importing grpc.
package client
