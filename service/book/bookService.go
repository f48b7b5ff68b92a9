package booksvc

import (
	"context"
	"errors"
	"log/slog"
	"sort"
	"strings"

	repo "github.com/Mattox0/tp02-MethodoTest/repository/book"
	"github.com/Mattox0/tp02-MethodoTest/util/metrics"
)

type Book = repo.Book

type Repo interface {
	List(ctx context.Context) ([]Book, error)
	GetByID(ctx context.Context, id int64) (*Book, error)
	Insert(ctx context.Context, name, author string) (int64, error)
}

type Publisher interface {
	PublishBookCreated(ctx context.Context, id int64, name, author string) error
}

type Service interface {
	List(ctx context.Context) ([]Book, error)
	Detail(ctx context.Context, id int64) (*Book, error)
	Create(ctx context.Context, name, author string) (int64, error)
}

type service struct {
	r   Repo
	pub Publisher
}

func New(r Repo, pub Publisher) Service { return &service{r: r, pub: pub} }

// List returns all books ordered by case-insensitive name; ties keep
// the repository's order.
func (s *service) List(ctx context.Context) ([]Book, error) {
	out, err := s.r.List(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out, nil
}

// Detail returns nil, nil for an unknown id; absence is a normal
// outcome at this layer.
func (s *service) Detail(ctx context.Context, id int64) (*Book, error) {
	return s.r.GetByID(ctx, id)
}

// Create inserts a new book. Books always start unreserved; whatever
// the caller sent for the flag never reaches the store.
func (s *service) Create(ctx context.Context, name, author string) (int64, error) {
	if name == "" || author == "" {
		return 0, errors.New("invalid payload")
	}
	id, err := s.r.Insert(ctx, name, author)
	if err != nil {
		return 0, err
	}
	metrics.BooksCreated.Inc()

	if err := s.pub.PublishBookCreated(ctx, id, name, author); err != nil {
		// best-effort, the book is already stored
		slog.Warn("publish book.created failed", "book_id", id, "err", err)
	}
	return id, nil
}
