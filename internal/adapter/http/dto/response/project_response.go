package response

import (
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/countdown"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

// CountdownResponse is the deadline urgency widget data for one project.

type CountdownResponse struct {
	Tier    string `json:"tier"`
	Display string `json:"display"`
}

type ProjectResponse struct {
	ID               string    `json:"id"`
	Status           string    `json:"status"`
	ClientType       string    `json:"client_type"`
	ProductionStatus string    `json:"production_status,omitempty"`
	RosterProducer   string    `json:"roster_producer,omitempty"`
	BookTitle        string    `json:"book_title"`
	ClientName       string    `json:"client_name"`
	Email            string    `json:"email,omitempty"`
	WordCount        int       `json:"word_count,omitempty"`
	DaysNeeded       int       `json:"days_needed,omitempty"`
	NarrationStyle   string    `json:"narration_style,omitempty"`
	DiscountApplied  bool      `json:"discount_applied,omitempty"`
	Notes            string    `json:"notes,omitempty"`
	StartDate        time.Time `json:"start_date"`
	EndDate          time.Time `json:"end_date"`
	CreatedAt        time.Time `json:"created_at"`
	UpdatedAt        time.Time `json:"updated_at"`

	Countdown *CountdownResponse `json:"countdown,omitempty"`
}

func FromProject(p entities.Project) ProjectResponse {
	return fromProjectAt(p, time.Now())
}

// fromProjectAt exists so tests can pin the clock.
func fromProjectAt(p entities.Project, now time.Time) ProjectResponse {
	resp := ProjectResponse{
		ID:               p.ID,
		Status:           string(p.Status),
		ClientType:       string(p.ClientType),
		ProductionStatus: p.ProductionStatus,
		RosterProducer:   p.RosterProducer,
		BookTitle:        p.BookTitle,
		ClientName:       p.ClientName,
		Email:            p.Email,
		WordCount:        p.WordCount,
		DaysNeeded:       p.DaysNeeded,
		NarrationStyle:   p.NarrationStyle,
		DiscountApplied:  p.DiscountApplied,
		Notes:            p.Notes,
		StartDate:        p.StartDate,
		EndDate:          p.EndDate,
		CreatedAt:        p.CreatedAt,
		UpdatedAt:        p.UpdatedAt,
	}

	// Archived projects have no live deadline to count down to.
	if p.Status != entities.ProjectStatusArchive && !p.EndDate.IsZero() {
		snap := countdown.Classify(now, p.EndDate)
		resp.Countdown = &CountdownResponse{Tier: string(snap.Tier), Display: snap.Display}
	}
	return resp
}

func FromProjects(projects []entities.Project) []ProjectResponse {
	out := make([]ProjectResponse, 0, len(projects))
	for _, p := range projects {
		out = append(out, FromProject(p))
	}
	return out
}
