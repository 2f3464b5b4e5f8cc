package response

import (
	"testing"
	"time"

	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/countdown"
	"github.com/DnDL-Creative/danielnotdaylewis.com-sub002/internal/domain/entities"
)

func TestFromProject(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	p := entities.Project{
		ID:               "p-1",
		Status:           entities.ProjectStatusProduction,
		ClientType:       entities.ClientTypeRoster,
		ProductionStatus: entities.ProductionStatusPreProduction,
		RosterProducer:   "Podium Audio",
		BookTitle:        "Dust",
		ClientName:       "Iris P.",
		EndDate:          now.Add(3 * 24 * time.Hour),
		CreatedAt:        now,
		UpdatedAt:        now,
	}

	res := fromProjectAt(p, now)
	if res.ID != "p-1" || res.Status != "production" || res.ClientType != "Roster" {
		t.Fatalf("unexpected mapped fields: %+v", res)
	}
	if res.RosterProducer != "Podium Audio" || res.ProductionStatus != "pre_production" {
		t.Fatalf("unexpected booking fields: %+v", res)
	}
	if res.Countdown == nil {
		t.Fatalf("expected a countdown for an active project")
	}
	if res.Countdown.Tier != string(countdown.TierChill) || res.Countdown.Display != "3d" {
		t.Fatalf("unexpected countdown: %+v", res.Countdown)
	}
}

func TestFromProject_NoCountdownWhenArchived(t *testing.T) {
	now := time.Now().UTC()
	p := entities.Project{
		ID:      "p-1",
		Status:  entities.ProjectStatusArchive,
		EndDate: now.Add(time.Hour),
	}

	res := fromProjectAt(p, now)
	if res.Countdown != nil {
		t.Fatalf("archived projects must not carry a countdown: %+v", res.Countdown)
	}
}
