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

type postgresCopies struct {
	pool *pgxpool.Pool
}

func NewPostgresCopyRepository(pool *pgxpool.Pool) catalog.CopyRepository {
	return &postgresCopies{pool: pool}
}

const copyColumns = "c.id, c.book_id, c.imprint, c.status, c.due_back"

// List populates the book reference; a dangling book id leaves Book nil.
func (r *postgresCopies) List(ctx context.Context) ([]model.Copy, error) {
	query := `
        SELECT ` + copyColumns + `,
               b.id, b.title, b.author_id, b.summary, b.isbn, b.genre_ids
        FROM copies c
        LEFT JOIN books b ON b.id = c.book_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query copies: %w", err)
	}
	defer rows.Close()

	var copies []model.Copy
	for rows.Next() {
		c, err := scanCopyWithBook(rows)
		if err != nil {
			return nil, err
		}
		copies = append(copies, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating copies: %w", err)
	}

	return copies, nil
}

func scanCopyWithBook(row pgx.Row) (*model.Copy, error) {
	var c model.Copy
	var b model.Book
	var bookID, authorID *uuid.UUID
	var title, summary, isbn *string

	err := row.Scan(
		&c.ID, &c.BookID, &c.Imprint, &c.Status, &c.DueBack,
		&bookID, &title, &authorID, &summary, &isbn, &b.GenreIDs,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to scan copy: %w", err)
	}

	if bookID != nil {
		b.ID = *bookID
		b.Title = *title
		b.AuthorID = *authorID
		b.Summary = *summary
		b.ISBN = *isbn
		if b.GenreIDs == nil {
			b.GenreIDs = []uuid.UUID{}
		}
		c.Book = &b
	}
	return &c, nil
}

func (r *postgresCopies) GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error) {
	query := `
        SELECT ` + copyColumns + `,
               b.id, b.title, b.author_id, b.summary, b.isbn, b.genre_ids
        FROM copies c
        LEFT JOIN books b ON b.id = c.book_id
        WHERE c.id = $1
    `

	c, err := scanCopyWithBook(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCopyNotFound
		}
		return nil, err
	}
	return c, nil
}

func (r *postgresCopies) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.Copy, error) {
	query := `SELECT ` + copyColumns + ` FROM copies c WHERE c.book_id = $1`

	rows, err := r.pool.Query(ctx, query, bookID)
	if err != nil {
		return nil, fmt.Errorf("failed to query copies: %w", err)
	}
	defer rows.Close()

	copies := []model.Copy{}
	for rows.Next() {
		var c model.Copy
		if err := rows.Scan(&c.ID, &c.BookID, &c.Imprint, &c.Status, &c.DueBack); err != nil {
			return nil, fmt.Errorf("failed to scan copy: %w", err)
		}
		copies = append(copies, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating copies: %w", err)
	}

	return copies, nil
}

func (r *postgresCopies) Insert(ctx context.Context, c *model.Copy) (*model.Copy, error) {
	query := `
        INSERT INTO copies (book_id, imprint, status, due_back)
        VALUES ($1, $2, $3, $4)
        RETURNING id, book_id, imprint, status, due_back
    `

	var created model.Copy
	err := r.pool.QueryRow(ctx, query, c.BookID, c.Imprint, c.Status, c.DueBack).
		Scan(&created.ID, &created.BookID, &created.Imprint, &created.Status, &created.DueBack)
	if err != nil {
		return nil, fmt.Errorf("failed to create copy: %w", err)
	}

	return &created, nil
}

func (r *postgresCopies) Update(ctx context.Context, c *model.Copy) (*model.Copy, error) {
	query := `
        UPDATE copies
        SET book_id = $1, imprint = $2, status = $3, due_back = $4
        WHERE id = $5
        RETURNING id, book_id, imprint, status, due_back
    `

	var updated model.Copy
	err := r.pool.QueryRow(ctx, query, c.BookID, c.Imprint, c.Status, c.DueBack, c.ID).
		Scan(&updated.ID, &updated.BookID, &updated.Imprint, &updated.Status, &updated.DueBack)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrCopyNotFound
		}
		return nil, fmt.Errorf("failed to update copy: %w", err)
	}

	return &updated, nil
}

func (r *postgresCopies) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM copies WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete copy: %w", err)
	}
	return nil
}

func (r *postgresCopies) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM copies`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count copies: %w", err)
	}
	return count, nil
}

func (r *postgresCopies) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	var count int64
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM copies WHERE status = $1`, status).
		Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count copies by status: %w", err)
	}
	return count, nil
}
