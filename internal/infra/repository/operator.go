package repository

import (
	"context"
	"errors"

	"pos-core/internal/infra"
	"pos-core/internal/usecase/commands"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type OperatorRepository struct {
	db *pgxpool.Pool
}

func NewOperatorRepository(db *pgxpool.Pool) *OperatorRepository {
	return &OperatorRepository{db: db}
}

const findOperatorByUsername = `
SELECT id, username, role, is_active, password_hash
FROM operators
WHERE username = $1
`

func (r *OperatorRepository) FindByUsername(ctx context.Context, username string) (*commands.OperatorSnapshot, string, error) {
	var (
		snapshot     commands.OperatorSnapshot
		passwordHash string
	)
	err := r.db.QueryRow(ctx, findOperatorByUsername, username).Scan(
		&snapshot.ID,
		&snapshot.Username,
		&snapshot.Role,
		&snapshot.IsActive,
		&passwordHash,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, "", infra.WrapRepoErr("operator not found", err, infra.KindNotFound)
		}
		return nil, "", infra.WrapRepoErr("failed to find operator by username", err)
	}
	return &snapshot, passwordHash, nil
}
