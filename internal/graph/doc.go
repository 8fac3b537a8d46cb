// Package graph provides read-only access to the sample graph document
// served by the /api/sample-graph endpoint.
//
// The document is an opaque JSON value; no schema is enforced. It is read
// fresh from disk on every access, never cached.
package graph
