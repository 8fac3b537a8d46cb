// Package http provides the HTTP surface of the discovery backend.
//
// The server exposes:
//   - GET /api/health — fixed liveness document
//   - GET /api/sample-graph — the sample graph JSON, re-read per request
//   - GET /metrics — Prometheus metrics
//   - everything else — static files from the configured root
package http
