package pipeline

import (
	"fmt"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

// Status transition engine for the booking/production pipeline.
//
// Transitions are monotonic forward (pending -> onboarding -> production)
// with one exception: the archive transition is reachable from any status and
// is absorbing. All decisions here are pure; persisting the resulting field
// writes is the caller's job.

var (
	ErrInvalidTransition  = fmt.Errorf("invalid status transition")
	ErrNotAudition        = fmt.Errorf("project was not sourced from an audition")
	ErrInvalidBookingType = fmt.Errorf("invalid booking type")
	ErrUnknownStatus      = fmt.Errorf("unknown project status")
)

// Approve moves a pending project into onboarding. No other field changes.
func Approve(status entities.ProjectStatus) (entities.ProjectStatus, error) {
	switch status {
	case entities.ProjectStatusPending:
		return entities.ProjectStatusOnboarding, nil
	case entities.ProjectStatusOnboarding, entities.ProjectStatusProduction, entities.ProjectStatusArchive:
		return "", fmt.Errorf("%w: cannot approve from %q", ErrInvalidTransition, status)
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
}

// Reject archives a project. Archive is absorbing: rejecting an already
// archived project is a no-op on state, not an error.
func Reject(status entities.ProjectStatus) (entities.ProjectStatus, error) {
	switch status {
	case entities.ProjectStatusPending, entities.ProjectStatusOnboarding, entities.ProjectStatusProduction, entities.ProjectStatusArchive:
		return entities.ProjectStatusArchive, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, status)
	}
}

// Booking is the set of field writes produced by booking an audition into
// production.

type Booking struct {
	Status           entities.ProjectStatus
	ClientType       entities.ClientType
	ProductionStatus string
	RosterProducer   string
}

// Book converts a pending audition directly into a production project.
// bookingType selects the resulting client relationship: Direct drops the
// producer, Roster keeps it.
func Book(p entities.Project, bookingType entities.ClientType, producer string) (Booking, error) {
	if p.Status != entities.ProjectStatusPending {
		return Booking{}, fmt.Errorf("%w: cannot book from %q", ErrInvalidTransition, p.Status)
	}
	if p.ClientType != entities.ClientTypeAudition {
		return Booking{}, fmt.Errorf("%w: client_type is %q", ErrNotAudition, p.ClientType)
	}

	b := Booking{
		Status:           entities.ProjectStatusProduction,
		ProductionStatus: entities.ProductionStatusPreProduction,
	}
	switch bookingType {
	case entities.ClientTypeDirect:
		b.ClientType = entities.ClientTypeDirect
	case entities.ClientTypeRoster:
		b.ClientType = entities.ClientTypeRoster
		b.RosterProducer = producer
	default:
		return Booking{}, fmt.Errorf("%w: %q", ErrInvalidBookingType, bookingType)
	}
	return b, nil
}
