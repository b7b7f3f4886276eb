// Package server holds pieces shared by the portfolio API server setup.
package server

import "context"

// HealthChecker answers the /health endpoint for one backing dependency.
type HealthChecker interface {
	Healthy(ctx context.Context) bool
}

// OkHealthChecker always reports healthy. It backs /health when the API
// runs without external dependencies to probe.
type OkHealthChecker struct{}

func NewOkHealthChecker() *OkHealthChecker {
	return &OkHealthChecker{}
}

func (hc *OkHealthChecker) Healthy(ctx context.Context) bool {
	return true
}
