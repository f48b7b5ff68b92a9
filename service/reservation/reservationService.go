package reservation

import (
	"context"
	"errors"
	"log/slog"

	repo "github.com/Mattox0/tp02-MethodoTest/repository/book"
	"github.com/Mattox0/tp02-MethodoTest/util/metrics"
)

// errors used by controllers

type ErrCode string

const (
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrAlreadyReserved ErrCode = "ALREADY_RESERVED"
)

type codedError struct{ code ErrCode }

func (e codedError) Error() string { return string(e.code) }
func (e codedError) Code() ErrCode { return e.code }
func makeErr(c ErrCode) error      { return codedError{code: c} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

type Repo interface {
	GetByID(ctx context.Context, id int64) (*repo.Book, error)
	MarkReserved(ctx context.Context, id int64) (int64, error)
}

type Publisher interface {
	PublishBookReserved(ctx context.Context, id int64) error
}

type Service interface {
	// Reserve flips a book from available to reserved, exactly once.
	Reserve(ctx context.Context, bookID int64) error
}

type service struct {
	r   Repo
	pub Publisher
}

func New(r Repo, pub Publisher) Service { return &service{r: r, pub: pub} }

func (s *service) Reserve(ctx context.Context, bookID int64) error {
	b, err := s.r.GetByID(ctx, bookID)
	if err != nil {
		metrics.Reservations.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
	if b == nil {
		metrics.Reservations.WithLabelValues(metrics.OutcomeNotFound).Inc()
		return makeErr(ErrNotFound)
	}
	if b.Reserved {
		metrics.Reservations.WithLabelValues(metrics.OutcomeAlreadyReserved).Inc()
		return makeErr(ErrAlreadyReserved)
	}

	aff, err := s.r.MarkReserved(ctx, bookID)
	if err != nil {
		metrics.Reservations.WithLabelValues(metrics.OutcomeError).Inc()
		return err
	}
	if aff == 0 {
		// a concurrent caller won the race between the read and the write
		metrics.Reservations.WithLabelValues(metrics.OutcomeAlreadyReserved).Inc()
		return makeErr(ErrAlreadyReserved)
	}

	metrics.Reservations.WithLabelValues(metrics.OutcomeSuccess).Inc()
	if err := s.pub.PublishBookReserved(ctx, bookID); err != nil {
		slog.Warn("publish book.reserved failed", "book_id", bookID, "err", err)
	}
	return nil
}
