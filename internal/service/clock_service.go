// Package service contains business logic for the application.
package service

import "time"

// Clock provides the current time. Allows for testable time.
type Clock interface {
	Now() time.Time
}

// RealClock is the production Clock backed by time.Now.
type RealClock struct{}

func (RealClock) Now() time.Time { return time.Now().UTC() }
