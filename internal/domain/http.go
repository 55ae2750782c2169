package domain

import "net/http"

//go:generate mockgen -destination mocks/mock_http_client.go -package mocks github.com/Notifuse/designer/internal/domain HTTPClient

// HTTPClient is the subset of *http.Client the store client needs
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
