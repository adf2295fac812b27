// Package http provides the HTTP API implementation.
//
// The API server exposes the price resource:
//   - GET /price
//   - PATCH /price
//   - DELETE /price
//
// The admin server runs on its own listener and exposes:
//   - Health and readiness checks
//   - Prometheus metrics
package http
