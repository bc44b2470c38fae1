package repository

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/google/uuid"

	"library-catalog-backend/internal/domains/catalog"
	"library-catalog-backend/internal/domains/catalog/model"
)

// MemoryStore is a process-local document store implementing all four
// catalog repositories. Store-native order is insertion order. It backs
// service-level tests and local development without PostgreSQL.
type MemoryStore struct {
	mu sync.RWMutex

	authors     map[uuid.UUID]model.Author
	authorOrder []uuid.UUID

	genres     map[uuid.UUID]model.Genre
	genreOrder []uuid.UUID

	books     map[uuid.UUID]model.Book
	bookOrder []uuid.UUID

	copies    map[uuid.UUID]model.Copy
	copyOrder []uuid.UUID
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		authors: make(map[uuid.UUID]model.Author),
		genres:  make(map[uuid.UUID]model.Genre),
		books:   make(map[uuid.UUID]model.Book),
		copies:  make(map[uuid.UUID]model.Copy),
	}
}

func (s *MemoryStore) Authors() catalog.AuthorRepository { return &memoryAuthors{s} }
func (s *MemoryStore) Genres() catalog.GenreRepository   { return &memoryGenres{s} }
func (s *MemoryStore) Books() catalog.BookRepository     { return &memoryBooks{s} }
func (s *MemoryStore) Copies() catalog.CopyRepository    { return &memoryCopies{s} }

// populateBook resolves the author and genre references of a book.
// Dangling references stay nil / are skipped. Caller holds the lock.
func (s *MemoryStore) populateBook(b *model.Book) {
	if a, ok := s.authors[b.AuthorID]; ok {
		b.Author = &a
	}
	for _, gid := range b.GenreIDs {
		if g, ok := s.genres[gid]; ok {
			b.Genres = append(b.Genres, g)
		}
	}
}

// ---- authors ----

type memoryAuthors struct{ s *MemoryStore }

func (r *memoryAuthors) List(ctx context.Context) ([]model.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Author, 0, len(r.s.authorOrder))
	for _, id := range r.s.authorOrder {
		out = append(out, r.s.authors[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].FamilyName) < strings.ToLower(out[j].FamilyName)
	})
	return out, nil
}

func (r *memoryAuthors) GetByID(ctx context.Context, id uuid.UUID) (*model.Author, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	a, ok := r.s.authors[id]
	if !ok {
		return nil, catalog.ErrAuthorNotFound
	}
	return &a, nil
}

func (r *memoryAuthors) Insert(ctx context.Context, a *model.Author) (*model.Author, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *a
	created.ID = uuid.New()
	r.s.authors[created.ID] = created
	r.s.authorOrder = append(r.s.authorOrder, created.ID)
	return &created, nil
}

func (r *memoryAuthors) Update(ctx context.Context, a *model.Author) (*model.Author, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[a.ID]; !ok {
		return nil, catalog.ErrAuthorNotFound
	}
	updated := *a
	r.s.authors[a.ID] = updated
	return &updated, nil
}

func (r *memoryAuthors) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.authors[id]; !ok {
		return nil
	}
	delete(r.s.authors, id)
	r.s.authorOrder = removeID(r.s.authorOrder, id)
	return nil
}

func (r *memoryAuthors) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.authors)), nil
}

// ---- genres ----

type memoryGenres struct{ s *MemoryStore }

func (r *memoryGenres) List(ctx context.Context) ([]model.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Genre, 0, len(r.s.genreOrder))
	for _, id := range r.s.genreOrder {
		out = append(out, r.s.genres[id])
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

func (r *memoryGenres) GetByID(ctx context.Context, id uuid.UUID) (*model.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	g, ok := r.s.genres[id]
	if !ok {
		return nil, catalog.ErrGenreNotFound
	}
	return &g, nil
}

func (r *memoryGenres) FindByName(ctx context.Context, name string) (*model.Genre, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	for _, id := range r.s.genreOrder {
		g := r.s.genres[id]
		if g.Name == name {
			return &g, nil
		}
	}
	return nil, nil
}

func (r *memoryGenres) Insert(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *g
	created.ID = uuid.New()
	r.s.genres[created.ID] = created
	r.s.genreOrder = append(r.s.genreOrder, created.ID)
	return &created, nil
}

func (r *memoryGenres) Update(ctx context.Context, g *model.Genre) (*model.Genre, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres[g.ID]; !ok {
		return nil, catalog.ErrGenreNotFound
	}
	updated := *g
	r.s.genres[g.ID] = updated
	return &updated, nil
}

func (r *memoryGenres) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.genres[id]; !ok {
		return nil
	}
	delete(r.s.genres, id)
	r.s.genreOrder = removeID(r.s.genreOrder, id)
	return nil
}

func (r *memoryGenres) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.genres)), nil
}

// ---- books ----

type memoryBooks struct{ s *MemoryStore }

func (r *memoryBooks) List(ctx context.Context) ([]model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Book, 0, len(r.s.bookOrder))
	for _, id := range r.s.bookOrder {
		b := r.s.books[id]
		if a, ok := r.s.authors[b.AuthorID]; ok {
			b.Author = &a
		}
		out = append(out, b)
	}
	return out, nil
}

func (r *memoryBooks) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	b, ok := r.s.books[id]
	if !ok {
		return nil, catalog.ErrBookNotFound
	}
	r.s.populateBook(&b)
	return &b, nil
}

func (r *memoryBooks) ListByAuthor(ctx context.Context, authorID uuid.UUID) ([]model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []model.Book{}
	for _, id := range r.s.bookOrder {
		b := r.s.books[id]
		if b.AuthorID == authorID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (r *memoryBooks) ListByGenre(ctx context.Context, genreID uuid.UUID) ([]model.Book, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []model.Book{}
	for _, id := range r.s.bookOrder {
		b := r.s.books[id]
		for _, gid := range b.GenreIDs {
			if gid == genreID {
				out = append(out, b)
				break
			}
		}
	}
	return out, nil
}

func (r *memoryBooks) Insert(ctx context.Context, b *model.Book) (*model.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *b
	created.ID = uuid.New()
	created.Author = nil
	created.Genres = nil
	if created.GenreIDs == nil {
		created.GenreIDs = []uuid.UUID{}
	}
	r.s.books[created.ID] = created
	r.s.bookOrder = append(r.s.bookOrder, created.ID)
	return &created, nil
}

func (r *memoryBooks) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[b.ID]; !ok {
		return nil, catalog.ErrBookNotFound
	}
	updated := *b
	updated.Author = nil
	updated.Genres = nil
	if updated.GenreIDs == nil {
		updated.GenreIDs = []uuid.UUID{}
	}
	r.s.books[b.ID] = updated
	return &updated, nil
}

func (r *memoryBooks) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.books[id]; !ok {
		return nil
	}
	delete(r.s.books, id)
	r.s.bookOrder = removeID(r.s.bookOrder, id)
	return nil
}

func (r *memoryBooks) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.books)), nil
}

// ---- copies ----

type memoryCopies struct{ s *MemoryStore }

func (r *memoryCopies) List(ctx context.Context) ([]model.Copy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := make([]model.Copy, 0, len(r.s.copyOrder))
	for _, id := range r.s.copyOrder {
		c := r.s.copies[id]
		if b, ok := r.s.books[c.BookID]; ok {
			c.Book = &b
		}
		out = append(out, c)
	}
	return out, nil
}

func (r *memoryCopies) GetByID(ctx context.Context, id uuid.UUID) (*model.Copy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	c, ok := r.s.copies[id]
	if !ok {
		return nil, catalog.ErrCopyNotFound
	}
	if b, ok := r.s.books[c.BookID]; ok {
		c.Book = &b
	}
	return &c, nil
}

func (r *memoryCopies) ListByBook(ctx context.Context, bookID uuid.UUID) ([]model.Copy, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	out := []model.Copy{}
	for _, id := range r.s.copyOrder {
		c := r.s.copies[id]
		if c.BookID == bookID {
			out = append(out, c)
		}
	}
	return out, nil
}

func (r *memoryCopies) Insert(ctx context.Context, c *model.Copy) (*model.Copy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	created := *c
	created.ID = uuid.New()
	created.Book = nil
	r.s.copies[created.ID] = created
	r.s.copyOrder = append(r.s.copyOrder, created.ID)
	return &created, nil
}

func (r *memoryCopies) Update(ctx context.Context, c *model.Copy) (*model.Copy, error) {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.copies[c.ID]; !ok {
		return nil, catalog.ErrCopyNotFound
	}
	updated := *c
	updated.Book = nil
	r.s.copies[c.ID] = updated
	return &updated, nil
}

func (r *memoryCopies) Delete(ctx context.Context, id uuid.UUID) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	if _, ok := r.s.copies[id]; !ok {
		return nil
	}
	delete(r.s.copies, id)
	r.s.copyOrder = removeID(r.s.copyOrder, id)
	return nil
}

func (r *memoryCopies) Count(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.copies)), nil
}

func (r *memoryCopies) CountByStatus(ctx context.Context, status model.Status) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()

	var n int64
	for _, c := range r.s.copies {
		if c.Status == status {
			n++
		}
	}
	return n, nil
}

func removeID(ids []uuid.UUID, id uuid.UUID) []uuid.UUID {
	for i, v := range ids {
		if v == id {
			return append(ids[:i], ids[i+1:]...)
		}
	}
	return ids
}
