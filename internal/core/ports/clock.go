// Package ports defines the core interfaces for the application.
package ports

// TimeProvider supplies the current time used for cache expiry decisions.
//
//go:generate go run go.uber.org/mock/mockgen -source=clock.go -destination=mocks/mock_clock.go -package=mocks
type TimeProvider interface {
	// CurrentTime returns the current time in epoch milliseconds.
	CurrentTime() int64
}
