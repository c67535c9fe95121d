// Package api is the wire contract shared by the server transports and the
// CLI client: message types, the gRPC service description for
// moodkeeper.Wellness and a JSON codec the service is spoken over.
package api
