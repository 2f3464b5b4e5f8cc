package request

import (
	"errors"
	"strings"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

var (
	ErrInvalidClientType  = errors.New("invalid client type")
	ErrInvalidBookingType = errors.New("booking type must be Direct or Roster")
)

// CreateProjectRequest is the audition-intake payload. book_title and
// client_name are the only hard requirements; everything else defaults.

type CreateProjectRequest struct {
	BookTitle       string    `json:"book_title" binding:"required"`
	ClientName      string    `json:"client_name" binding:"required"`
	Email           string    `json:"email"`
	ClientType      string    `json:"client_type"`
	WordCount       int       `json:"word_count"`
	DaysNeeded      int       `json:"days_needed"`
	NarrationStyle  string    `json:"narration_style"`
	DiscountApplied bool      `json:"discount_applied"`
	Notes           string    `json:"notes"`
	StartDate       time.Time `json:"start_date"`
	EndDate         time.Time `json:"end_date"`
}

// ResolveClientType maps the optional client_type field onto a known variant.
// Empty means "let the intake default apply".
func (r CreateProjectRequest) ResolveClientType() (entities.ClientType, error) {
	switch strings.TrimSpace(r.ClientType) {
	case "":
		return "", nil
	case string(entities.ClientTypeAudition):
		return entities.ClientTypeAudition, nil
	case string(entities.ClientTypeDirect):
		return entities.ClientTypeDirect, nil
	case string(entities.ClientTypeRoster):
		return entities.ClientTypeRoster, nil
	default:
		return "", ErrInvalidClientType
	}
}

// BookProjectRequest converts a pending audition into a production booking.

type BookProjectRequest struct {
	BookingType    string `json:"booking_type" binding:"required"`
	RosterProducer string `json:"roster_producer"`
}

func (r BookProjectRequest) ResolveBookingType() (entities.ClientType, error) {
	switch strings.TrimSpace(r.BookingType) {
	case string(entities.ClientTypeDirect):
		return entities.ClientTypeDirect, nil
	case string(entities.ClientTypeRoster):
		return entities.ClientTypeRoster, nil
	default:
		return "", ErrInvalidBookingType
	}
}

// RejectProjectRequest archives a project. The confirm flag is deliberate
// friction: archiving is terminal and there is no un-archive.

type RejectProjectRequest struct {
	Confirm bool `json:"confirm"`
}
