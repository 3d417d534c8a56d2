// Package permission queries and requests camera access.
// It hides the platform permission store behind a two-method interface and
// reduces every outcome to a binary granted/denied decision.
package permission

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
)

// Status is a platform permission result.
type Status int

// The zero value is Denied so an unset status never grants access.
const (
	// Denied means access is not granted yet but may still be requested.
	Denied Status = iota
	// Granted means the camera may be used.
	Granted
	// Blocked means the user refused and must change it in settings.
	Blocked
	// Restricted means policy forbids access.
	Restricted
	// Unavailable means there is no camera device.
	Unavailable
)

// ErrUnknownStatus indicates a status string that does not name a Status.
var ErrUnknownStatus = errors.New("unknown permission status")

func (s Status) String() string {
	switch s {
	case Granted:
		return "granted"
	case Denied:
		return "denied"
	case Blocked:
		return "blocked"
	case Restricted:
		return "restricted"
	case Unavailable:
		return "unavailable"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// ParseStatus converts a status name back into a Status.
func ParseStatus(s string) (Status, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "granted":
		return Granted, nil
	case "denied":
		return Denied, nil
	case "blocked":
		return Blocked, nil
	case "restricted":
		return Restricted, nil
	case "unavailable":
		return Unavailable, nil
	}
	return Denied, fmt.Errorf("%w: %q", ErrUnknownStatus, s)
}

// Store is the platform permission store.
// Check must not prompt; Request may.
type Store interface {
	Check(ctx context.Context) (Status, error)
	Request(ctx context.Context) (Status, error)
}

// Resolve runs the camera permission flow:
// 1. Check the current status
// 2. If it is Denied (still askable), issue an interactive Request
// 3. Report granted only when the final status is Granted
//
// Any error from the store is logged and treated as denied.
func Resolve(ctx context.Context, store Store) bool {
	status, err := store.Check(ctx)
	if err != nil {
		log.Printf("permission check failed: %v", err)
		return false
	}

	if status == Denied {
		status, err = store.Request(ctx)
		if err != nil {
			log.Printf("permission request failed: %v", err)
			return false
		}
	}

	return status == Granted
}
