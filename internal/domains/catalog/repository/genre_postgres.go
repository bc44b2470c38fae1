package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/model"
)

type postgresGenres struct {
	pool *pgxpool.Pool
}

func NewPostgresGenreRepository(pool *pgxpool.Pool) catalog.GenreRepository {
	return &postgresGenres{pool: pool}
}

func (r *postgresGenres) List(ctx context.Context) ([]model.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres ORDER BY name ASC`)
	if err != nil {
		return nil, fmt.Errorf("failed to query genres: %w", err)
	}
	defer rows.Close()

	var genres []model.Genre
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		genres = append(genres, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	return genres, nil
}

func (r *postgresGenres) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	var g model.Genre
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE id = $1`, id).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to get genre by id: %w", err)
	}
	return &g, nil
}

// FindByName backs the find-or-create policy; a miss is (nil, nil),
// not an error.
func (r *postgresGenres) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	var g model.Genre
	err := r.pool.QueryRow(ctx, `SELECT id, name FROM genres WHERE name = $1 LIMIT 1`, name).
		Scan(&g.ID, &g.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find genre by name: %w", err)
	}
	return &g, nil
}

func (r *postgresGenres) Insert(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	var created model.Genre
	err := r.pool.QueryRow(ctx, `INSERT INTO genres (name) VALUES ($1) RETURNING id, name`, g.Name).
		Scan(&created.ID, &created.Name)
	if err != nil {
		return nil, fmt.Errorf("failed to create genre: %w", err)
	}
	return &created, nil
}

func (r *postgresGenres) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	var updated model.Genre
	err := r.pool.QueryRow(ctx, `UPDATE genres SET name = $1 WHERE id = $2 RETURNING id, name`, g.Name, g.ID).
		Scan(&updated.ID, &updated.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrGenreNotFound
		}
		return nil, fmt.Errorf("failed to update genre: %w", err)
	}
	return &updated, nil
}

func (r *postgresGenres) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM genres WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete genre: %w", err)
	}
	return nil
}

func (r *postgresGenres) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM genres`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count genres: %w", err)
	}
	return count, nil
}
