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

type animalRepository struct {
	BaseRepository
}

func NewAnimalRepository(base BaseRepository) repository.AnimalRepository {
	return &animalRepository{base}
}

func (r *animalRepository) Create(ctx context.Context, animal *model.Animal) error {
	query := `
		INSERT INTO animals (name, species, breed, age, medical_history, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id
	`
	animal.CreatedAt = time.Now()
	animal.UpdatedAt = animal.CreatedAt

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := existsIn(ctx, tx, "clients", animal.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to check owner: %w", err)
		}
		if !ok {
			return apperrors.NotFound("Owner", nil)
		}

		err = tx.GetContext(ctx, &animal.ID, query,
			animal.Name,
			animal.Species,
			animal.Breed,
			animal.Age,
			animal.MedicalHistory,
			animal.OwnerID,
			animal.CreatedAt,
			animal.UpdatedAt,
		)
		if err != nil {
			return fmt.Errorf("failed to create animal: %w", err)
		}
		return nil
	})
}

func (r *animalRepository) Get(ctx context.Context, id int64) (*model.Animal, error) {
	query := `
		SELECT id, name, species, breed, age, medical_history, owner_id, created_at, updated_at
		FROM animals
		WHERE id = $1
	`
	var animal model.Animal
	err := r.db.GetContext(ctx, &animal, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, apperrors.NotFound("Animal", err)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get animal: %w", err)
	}
	return &animal, nil
}

func (r *animalRepository) List(ctx context.Context) ([]*model.Animal, error) {
	query := `
		SELECT id, name, species, breed, age, medical_history, owner_id, created_at, updated_at
		FROM animals
	`
	animals := []*model.Animal{}
	if err := r.db.SelectContext(ctx, &animals, query); err != nil {
		return nil, fmt.Errorf("failed to list animals: %w", err)
	}
	return animals, nil
}

func (r *animalRepository) Update(ctx context.Context, animal *model.Animal) error {
	query := `
		UPDATE animals
		SET name = $1, species = $2, breed = $3, age = $4, medical_history = $5, owner_id = $6, updated_at = $7
		WHERE id = $8
	`
	animal.UpdatedAt = time.Now()

	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		ok, err := existsIn(ctx, tx, "clients", animal.OwnerID)
		if err != nil {
			return fmt.Errorf("failed to check owner: %w", err)
		}
		if !ok {
			return apperrors.NotFound("Owner", nil)
		}

		result, err := tx.ExecContext(ctx, query,
			animal.Name,
			animal.Species,
			animal.Breed,
			animal.Age,
			animal.MedicalHistory,
			animal.OwnerID,
			animal.UpdatedAt,
			animal.ID,
		)
		if err != nil {
			return fmt.Errorf("failed to update animal: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Animal", nil)
		}
		return nil
	})
}

func (r *animalRepository) Delete(ctx context.Context, id int64) error {
	return r.WithTx(ctx, func(tx *sqlx.Tx) error {
		result, err := tx.ExecContext(ctx, `DELETE FROM animals WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete animal: %w", err)
		}

		rows, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("failed to get rows affected: %w", err)
		}
		if rows == 0 {
			return apperrors.NotFound("Animal", nil)
		}
		return nil
	})
}

func (r *animalRepository) Exists(ctx context.Context, id int64) (bool, error) {
	return existsIn(ctx, r.db, "animals", id)
}
