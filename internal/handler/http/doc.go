// Package http implements the REST transport of the stub exoplanet API.
//
// It exposes route wiring, request handlers and middleware over
// [stubapi.Backend]. Request tracing, access logging, response compression,
// rate limiting and bearer authentication are handled here before requests
// reach the backend. Every failure is answered with the
// {timestamp,status,error,message} envelope the client decodes.
package http
