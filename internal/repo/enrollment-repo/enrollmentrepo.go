package enrollmentrepo

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/fengzhui/fengzhui/internal/domain"
	"github.com/fengzhui/fengzhui/internal/pg"
	"go.uber.org/zap"
)

type Repository struct {
	db pg.Database
}

func New(db pg.Database) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Save(ctx context.Context, enrollment *domain.Enrollment) error {
	query := `
        INSERT INTO enrollments (activity_id, user_id, contact_name, contact_phone, amount, status, created_at)
        VALUES ($1, $2, $3, $4, $5, $6, $7)
        RETURNING id
    `
	err := r.db.QueryRow(ctx, query,
		enrollment.ActivityID, enrollment.UserID, enrollment.ContactName,
		enrollment.ContactPhone, enrollment.Amount, enrollment.Status, enrollment.CreatedAt,
	).Scan(&enrollment.ID)
	if err != nil {
		zap.L().Error("can't save enrollment", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Enrollment, error) {
	query := `
        SELECT id, activity_id, user_id, contact_name, contact_phone, amount, status, created_at
        FROM enrollments
        WHERE id = $1
    `
	return r.scanOne(r.db.QueryRow(ctx, query, id))
}

// FindActive returns the non-cancelled enrollment for (user, activity), if any.
func (r *Repository) FindActive(ctx context.Context, userID, activityID int) (*domain.Enrollment, error) {
	query := `
        SELECT id, activity_id, user_id, contact_name, contact_phone, amount, status, created_at
        FROM enrollments
        WHERE user_id = $1 AND activity_id = $2 AND status <> 'CANCELLED'
    `
	return r.scanOne(r.db.QueryRow(ctx, query, userID, activityID))
}

func (r *Repository) UpdateStatus(ctx context.Context, id int, status string) error {
	query := `
        UPDATE enrollments
        SET status = $1
        WHERE id = $2
    `
	_, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		zap.L().Error("can't update enrollment status", zap.Error(err))
		return err
	}
	return nil
}

func (r *Repository) scanOne(row pgx.Row) (*domain.Enrollment, error) {
	var e domain.Enrollment
	err := row.Scan(&e.ID, &e.ActivityID, &e.UserID, &e.ContactName, &e.ContactPhone, &e.Amount, &e.Status, &e.CreatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't scan enrollment", zap.Error(err))
		return nil, err
	}
	return &e, nil
}
