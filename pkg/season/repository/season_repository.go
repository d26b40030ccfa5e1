package repository

import (
	"context"
	"time"

	"agro/entities"
)

type SeasonRepository interface {
	List(ctx context.Context) ([]entities.Season, error)
	Get(ctx context.Context, id string) (entities.Season, error)
	Create(ctx context.Context, s entities.Season) (entities.Season, error)
	Update(ctx context.Context, id string, p SeasonPatch) (entities.Season, error)
	Delete(ctx context.Context, id string) error

	// SetActive makes one season the institution's active season; the
	// remote store's stored procedure completes whichever season was
	// active before.
	SetActive(ctx context.Context, id string) error
	// Active returns the currently active season, ok=false when none is.
	Active(ctx context.Context) (entities.Season, bool, error)
}

type SeasonPatch struct {
	Name        *string    `json:"name"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
	Status      *string    `json:"status"`
	Description *string    `json:"description"`
}

func (p SeasonPatch) Apply(s *entities.Season) {
	if p.Name != nil {
		s.Name = *p.Name
	}
	if p.StartDate != nil {
		s.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		s.EndDate = p.EndDate
	}
	if p.Status != nil {
		s.Status = *p.Status
	}
	if p.Description != nil {
		s.Description = *p.Description
	}
}
