package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/model"
	"library-catalog-backend/pkg/cache"
)

// postgresAuthors implements catalog.AuthorRepository with a
// read-through cache on single-record lookups.
type postgresAuthors struct {
	pool  *pgxpool.Pool
	cache cache.Cache
}

func NewPostgresAuthorRepository(pool *pgxpool.Pool, c cache.Cache) catalog.AuthorRepository {
	return &postgresAuthors{pool: pool, cache: c}
}

const (
	authorCacheKeyPrefix = "author:"
	authorCacheTTL       = 15 * time.Minute
)

const authorColumns = "id, first_name, family_name, date_of_birth, date_of_death"

func scanAuthor(row pgx.Row, a *model.Author) error {
	return row.Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
}

func (r *postgresAuthors) List(ctx context.Context) ([]model.Author, error) {
	query := `
        SELECT ` + authorColumns + `
        FROM authors
        ORDER BY family_name ASC
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query authors: %w", err)
	}
	defer rows.Close()

	var authors []model.Author
	for rows.Next() {
		var a model.Author
		if err := scanAuthor(rows, &a); err != nil {
			return nil, fmt.Errorf("failed to scan author: %w", err)
		}
		authors = append(authors, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating authors: %w", err)
	}

	return authors, nil
}

func (r *postgresAuthors) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	cacheKey := authorCacheKeyPrefix + id.String()

	var a model.Author
	if found, err := r.cache.Get(ctx, cacheKey, &a); err == nil && found {
		return &a, nil
	}

	query := `
        SELECT ` + authorColumns + `
        FROM authors
        WHERE id = $1
    `

	if err := scanAuthor(r.pool.QueryRow(ctx, query, id), &a); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	r.cache.Set(ctx, cacheKey, &a, authorCacheTTL)

	return &a, nil
}

func (r *postgresAuthors) Insert(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        INSERT INTO authors (first_name, family_name, date_of_birth, date_of_death)
        VALUES ($1, $2, $3, $4)
        RETURNING ` + authorColumns + `
    `

	var created model.Author
	row := r.pool.QueryRow(ctx, query, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath)
	if err := scanAuthor(row, &created); err != nil {
		return nil, fmt.Errorf("failed to create author: %w", err)
	}

	return &created, nil
}

func (r *postgresAuthors) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	query := `
        UPDATE authors
        SET first_name = $1, family_name = $2, date_of_birth = $3, date_of_death = $4
        WHERE id = $5
        RETURNING ` + authorColumns + `
    `

	var updated model.Author
	row := r.pool.QueryRow(ctx, query, a.FirstName, a.FamilyName, a.DateOfBirth, a.DateOfDeath, a.ID)
	if err := scanAuthor(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to update author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+a.ID.String())

	return &updated, nil
}

func (r *postgresAuthors) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete author: %w", err)
	}

	r.cache.Delete(ctx, authorCacheKeyPrefix+id.String())

	return nil
}

func (r *postgresAuthors) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM authors`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count authors: %w", err)
	}
	return count, nil
}
