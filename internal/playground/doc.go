// Package playground runs the shorthand development server.
//
// The server loads an HTML file into a live dom.Document, serves its
// current serialization, and exposes a JSON query endpoint that runs
// CSS selectors through a shorthand Collection. With watching enabled
// the source file is polled for changes, re-parsed, and connected
// browsers are told to reload over WebSocket. Query traffic is traced
// with OpenTelemetry and counted in Prometheus metrics.
package playground
