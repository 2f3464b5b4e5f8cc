package entities

import "time"

// ProjectStatus represents the lifecycle of a booking/production project.
//
// Domain notes:
//   - Projects move forward through the pipeline: pending -> onboarding ->
//     production. The archive status is terminal and reachable from any
//     non-archived status (operator "reject").
//   - Audition-sourced projects may skip onboarding entirely via the "book"
//     action (pending -> production).

type ProjectStatus string

const (
	ProjectStatusPending    ProjectStatus = "pending"
	ProjectStatusOnboarding ProjectStatus = "onboarding"
	ProjectStatusProduction ProjectStatus = "production"
	ProjectStatusArchive    ProjectStatus = "archive"
)

// ClientType classifies how an engagement was sourced.

type ClientType string

const (
	ClientTypeAudition ClientType = "Audition"
	ClientTypeDirect   ClientType = "Direct"
	ClientTypeRoster   ClientType = "Roster"
)

// ProductionStatusPreProduction is the sub-phase a project enters the moment
// it is booked into production.
const ProductionStatusPreProduction = "pre_production"

// Project is the booking/production record persisted in DynamoDB.
//
// Storage model (DynamoDB):
//   - PK: id
//   - GSI1 (status-index): status
//
// RosterProducer is only meaningful when the project was booked through a
// roster relationship; it stays empty for direct clients.

type Project struct {
	ID               string        `json:"id"`
	Status           ProjectStatus `json:"status"`
	ClientType       ClientType    `json:"client_type"`
	ProductionStatus string        `json:"production_status,omitempty"`
	RosterProducer   string        `json:"roster_producer,omitempty"`

	BookTitle       string `json:"book_title"`
	ClientName      string `json:"client_name"`
	Email           string `json:"email,omitempty"`
	WordCount       int    `json:"word_count,omitempty"`
	DaysNeeded      int    `json:"days_needed,omitempty"`
	NarrationStyle  string `json:"narration_style,omitempty"`
	DiscountApplied bool   `json:"discount_applied,omitempty"`
	Notes           string `json:"notes,omitempty"`

	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
