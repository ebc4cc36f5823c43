package activityrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/pg"
	"go.uber.org/zap"
)

// Repository reads activity records. The order core never mutates activities.
type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Activity, error) {
	query := `
        SELECT id, club_id, title, price, start_time, status
        FROM activities
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var activity domain.Activity
	err := row.Scan(&activity.ID, &activity.ClubID, &activity.Title, &activity.Price, &activity.StartTime, &activity.Status)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find activity", zap.Error(err))
		return nil, err
	}
	return &activity, nil
}
