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

// postgresBooks implements catalog.BookRepository. The ordered genre
// set lives in a uuid[] column on the book row, so a book is one
// document and writes stay single-row.
type postgresBooks struct {
	pool *pgxpool.Pool
}

func NewPostgresBookRepository(pool *pgxpool.Pool) catalog.BookRepository {
	return &postgresBooks{pool: pool}
}

const bookColumns = "b.id, b.title, b.author_id, b.summary, b.isbn, b.genre_ids"

func scanBook(row pgx.Row, b *model.Book) error {
	return row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.GenreIDs)
}

// List populates the author reference through a LEFT JOIN so a book
// whose author record is missing still lists, with Author nil.
func (r *postgresBooks) List(ctx context.Context) ([]model.Book, error) {
	query := `
        SELECT ` + bookColumns + `,
               a.id, a.first_name, a.family_name, a.date_of_birth, a.date_of_death
        FROM books b
        LEFT JOIN authors a ON a.id = b.author_id
    `

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	var books []model.Book
	for rows.Next() {
		var b model.Book
		var a model.Author
		var authorID *uuid.UUID
		var firstName, familyName *string

		err := rows.Scan(
			&b.ID, &b.Title, &b.AuthorID, &b.Summary, &b.ISBN, &b.GenreIDs,
			&authorID, &firstName, &familyName, &a.DateOfBirth, &a.DateOfDeath,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}

		if authorID != nil {
			a.ID = *authorID
			a.FirstName = *firstName
			a.FamilyName = *familyName
			b.Author = &a
		}
		if b.GenreIDs == nil {
			b.GenreIDs = []uuid.UUID{}
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

// GetByID populates both references. Dangling author or genre ids
// resolve to nil / are skipped rather than failing the fetch.
func (r *postgresBooks) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	var b model.Book
	query := `SELECT ` + bookColumns + ` FROM books b WHERE b.id = $1`
	if err := scanBook(r.pool.QueryRow(ctx, query, id), &b); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}
	if b.GenreIDs == nil {
		b.GenreIDs = []uuid.UUID{}
	}

	var a model.Author
	err := r.pool.QueryRow(
		ctx,
		`SELECT id, first_name, family_name, date_of_birth, date_of_death FROM authors WHERE id = $1`,
		b.AuthorID,
	).Scan(&a.ID, &a.FirstName, &a.FamilyName, &a.DateOfBirth, &a.DateOfDeath)
	if err == nil {
		b.Author = &a
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("failed to populate book author: %w", err)
	}

	if len(b.GenreIDs) > 0 {
		genres, err := r.genresByIDs(ctx, b.GenreIDs)
		if err != nil {
			return nil, err
		}
		b.Genres = genres
	}

	return &b, nil
}

// genresByIDs fetches the referenced genres and returns them in the
// book's stored order, skipping ids with no record.
func (r *postgresBooks) genresByIDs(ctx context.Context, ids []uuid.UUID) ([]model.Genre, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM genres WHERE id = ANY($1)`, ids)
	if err != nil {
		return nil, fmt.Errorf("failed to query book genres: %w", err)
	}
	defer rows.Close()

	byID := make(map[uuid.UUID]model.Genre, len(ids))
	for rows.Next() {
		var g model.Genre
		if err := rows.Scan(&g.ID, &g.Name); err != nil {
			return nil, fmt.Errorf("failed to scan genre: %w", err)
		}
		byID[g.ID] = g
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating genres: %w", err)
	}

	var genres []model.Genre
	for _, id := range ids {
		if g, ok := byID[id]; ok {
			genres = append(genres, g)
		}
	}
	return genres, nil
}

func (r *postgresBooks) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	return r.listWhere(ctx, `b.author_id = $1`, authorID)
}

func (r *postgresBooks) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	return r.listWhere(ctx, `$1 = ANY(b.genre_ids)`, genreID)
}

func (r *postgresBooks) listWhere(ctx context.Context, where string, arg any) ([]model.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books b WHERE ` + where

	rows, err := r.pool.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("failed to query books: %w", err)
	}
	defer rows.Close()

	books := []model.Book{}
	for rows.Next() {
		var b model.Book
		if err := scanBook(rows, &b); err != nil {
			return nil, fmt.Errorf("failed to scan book: %w", err)
		}
		if b.GenreIDs == nil {
			b.GenreIDs = []uuid.UUID{}
		}
		books = append(books, b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating books: %w", err)
	}

	return books, nil
}

func (r *postgresBooks) Insert(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        INSERT INTO books (title, author_id, summary, isbn, genre_ids)
        VALUES ($1, $2, $3, $4, $5)
        RETURNING id, title, author_id, summary, isbn, genre_ids
    `

	genreIDs := b.GenreIDs
	if genreIDs == nil {
		genreIDs = []uuid.UUID{}
	}

	var created model.Book
	row := r.pool.QueryRow(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, genreIDs)
	if err := scanBook(row, &created); err != nil {
		return nil, fmt.Errorf("failed to create book: %w", err)
	}
	if created.GenreIDs == nil {
		created.GenreIDs = []uuid.UUID{}
	}

	return &created, nil
}

func (r *postgresBooks) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	query := `
        UPDATE books
        SET title = $1, author_id = $2, summary = $3, isbn = $4, genre_ids = $5
        WHERE id = $6
        RETURNING id, title, author_id, summary, isbn, genre_ids
    `

	genreIDs := b.GenreIDs
	if genreIDs == nil {
		genreIDs = []uuid.UUID{}
	}

	var updated model.Book
	row := r.pool.QueryRow(ctx, query, b.Title, b.AuthorID, b.Summary, b.ISBN, genreIDs, b.ID)
	if err := scanBook(row, &updated); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, catalog.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to update book: %w", err)
	}
	if updated.GenreIDs == nil {
		updated.GenreIDs = []uuid.UUID{}
	}

	return &updated, nil
}

func (r *postgresBooks) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM books WHERE id = $1`, id); err != nil {
		return fmt.Errorf("failed to delete book: %w", err)
	}
	return nil
}

func (r *postgresBooks) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM books`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count books: %w", err)
	}
	return count, nil
}
