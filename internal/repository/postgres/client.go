package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/feliciafavrholdt/vetlocator-api/internal/model"
	"github.com/feliciafavrholdt/vetlocator-api/internal/repository"
	apperrors "github.com/feliciafavrholdt/vetlocator-api/pkg/errors"
)

type clientRepository struct {
	BaseRepository
}

func NewClientRepository(base BaseRepository) repository.ClientRepository {
	return &clientRepository{base}
}

func (r *clientRepository) Create(ctx context.Context, client *model.Client) error {
	query := `
		INSERT INTO clients (first_name, last_name, email, phone, address, city_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	client.CreatedAt = time.Now()
	client.UpdatedAt = client.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		err := tx.GetContext(ctx, &client.ID, query,
			client.FirstName,
			client.LastName,
			client.Email,
			client.Phone,
			client.Address,
			client.CityID,
			client.CreatedAt,
			client.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create client: %w", err)
		}
		return nil
	})
}

func (r *clientRepository) Get(ctx context.Context, id int64) (*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, address, city_id, created_at, updated_at
		FROM clients
		WHERE id = $1
	`
	var client model.Client
	err := r.db.GetContext(ctx, &client, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Client", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get client: %w", err)
	}
	return &client, nil
}

func (r *clientRepository) List(ctx context.Context) ([]*model.Client, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, address, city_id, created_at, updated_at
		FROM clients
	`
	clients := []*model.Client{}
	if err := r.db.SelectContext(ctx, &clients, query); err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	return clients, nil
}

func (r *clientRepository) Update(ctx context.Context, client *model.Client) error {
	query := `
		UPDATE clients
		SET first_name = $1, last_name = $2, email = $3, phone = $4, address = $5, city_id = $6, updated_at = $7
		WHERE id = $8
	`
	client.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, query,
			client.FirstName,
			client.LastName,
			client.Email,
			client.Phone,
			client.Address,
			client.CityID,
			client.UpdatedAt,
			client.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update client: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Client", nil)
		}
		return nil
	})
}

func (r *clientRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete client: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Client", nil)
		}
		return nil
	})
}

func (r *clientRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsIn(ctx, r.db, "clients", id)
}
