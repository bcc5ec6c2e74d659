// Package health provides liveness and storage reachability checks.
//
// # HTTP Endpoints
//
//   - GET /health : Liveness.
//   - GET /health/storage : Checks the configured probe bucket (storage.probe_bucket).
//     Returns 503 when the provider cannot answer and "skipped" when no probe bucket is set.
package health
