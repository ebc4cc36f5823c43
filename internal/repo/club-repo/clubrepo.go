package clubrepo

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

func (r *Repository) FindByID(ctx context.Context, id int) (*domain.Club, error) {
	query := `
        SELECT id, name, bank_name, bank_account, bank_holder
        FROM clubs
        WHERE id = $1
    `
	row := r.db.QueryRow(ctx, query, id)

	var club domain.Club
	err := row.Scan(&club.ID, &club.Name, &club.BankName, &club.BankAccount, &club.BankHolder)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		zap.L().Error("can't find club", zap.Error(err))
		return nil, err
	}
	return &club, nil
}
