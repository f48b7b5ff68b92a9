package reservation_test

import (
	"context"
	"errors"
	"testing"

	bookrepo "github.com/Mattox0/tp02-MethodoTest/repository/book"
	reservation "github.com/Mattox0/tp02-MethodoTest/service/reservation"
)

type repoMock struct {
	getFn     func(ctx context.Context, id int64) (*bookrepo.Book, error)
	markFn    func(ctx context.Context, id int64) (int64, error)
	markCalls int
}

func (m *repoMock) GetByID(ctx context.Context, id int64) (*bookrepo.Book, error) {
	return m.getFn(ctx, id)
}
func (m *repoMock) MarkReserved(ctx context.Context, id int64) (int64, error) {
	m.markCalls++
	return m.markFn(ctx, id)
}

type pubMock struct {
	reserved []int64
	fail     bool
}

func (m *pubMock) PublishBookReserved(ctx context.Context, id int64) error {
	if m.fail {
		return errors.New("broker down")
	}
	m.reserved = append(m.reserved, id)
	return nil
}

func TestReserve_NotFound(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*bookrepo.Book, error) { return nil, nil },
	}
	s := reservation.New(m, &pubMock{})

	err := s.Reserve(context.Background(), 999)
	if reservation.Code(err) != reservation.ErrNotFound {
		t.Fatalf("got %v; want NOT_FOUND", err)
	}
	if m.markCalls != 0 {
		t.Fatal("must not write when the book does not exist")
	}
}

func TestReserve_AlreadyReserved_Idempotent(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*bookrepo.Book, error) {
			return &bookrepo.Book{ID: 1, Name: "Hamlet", Author: "Shakespeare", Reserved: true}, nil
		},
	}
	s := reservation.New(m, &pubMock{})

	// two identical calls, same outcome, no writes
	for i := 0; i < 2; i++ {
		err := s.Reserve(context.Background(), 1)
		if reservation.Code(err) != reservation.ErrAlreadyReserved {
			t.Fatalf("call %d: got %v; want ALREADY_RESERVED", i+1, err)
		}
	}
	if m.markCalls != 0 {
		t.Fatal("must not write when the book is already reserved")
	}
}

func TestReserve_Success(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*bookrepo.Book, error) {
			return &bookrepo.Book{ID: 1, Name: "Hamlet", Author: "Shakespeare"}, nil
		},
		markFn: func(ctx context.Context, id int64) (int64, error) { return 1, nil },
	}
	p := &pubMock{}
	s := reservation.New(m, p)

	if err := s.Reserve(context.Background(), 1); err != nil {
		t.Fatalf("Reserve: %v", err)
	}
	if m.markCalls != 1 {
		t.Fatalf("markCalls=%d; want 1", m.markCalls)
	}
	if len(p.reserved) != 1 || p.reserved[0] != 1 {
		t.Fatalf("expected book.reserved event for id 1, got %v", p.reserved)
	}
}

func TestReserve_LostRace(t *testing.T) {
	// the read sees an available book, but another caller reserves it
	// before the conditional write lands
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*bookrepo.Book, error) {
			return &bookrepo.Book{ID: 1, Name: "Hamlet", Author: "Shakespeare"}, nil
		},
		markFn: func(ctx context.Context, id int64) (int64, error) { return 0, nil },
	}
	s := reservation.New(m, &pubMock{})

	err := s.Reserve(context.Background(), 1)
	if reservation.Code(err) != reservation.ErrAlreadyReserved {
		t.Fatalf("got %v; want ALREADY_RESERVED", err)
	}
}

func TestReserve_RepoFailureIsUnclassified(t *testing.T) {
	boom := errors.New("connection refused")
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*bookrepo.Book, error) { return nil, boom },
	}
	s := reservation.New(m, &pubMock{})

	err := s.Reserve(context.Background(), 1)
	if !errors.Is(err, boom) {
		t.Fatalf("got %v; want the repo error", err)
	}
	if reservation.Code(err) != "" {
		t.Fatalf("repo failures must stay unclassified, got code %q", reservation.Code(err))
	}
}

func TestReserve_PublishFailureIsNotFatal(t *testing.T) {
	m := &repoMock{
		getFn: func(ctx context.Context, id int64) (*bookrepo.Book, error) {
			return &bookrepo.Book{ID: 1, Name: "Hamlet", Author: "Shakespeare"}, nil
		},
		markFn: func(ctx context.Context, id int64) (int64, error) { return 1, nil },
	}
	s := reservation.New(m, &pubMock{fail: true})

	if err := s.Reserve(context.Background(), 1); err != nil {
		t.Fatalf("reserve failed on publish error: %v", err)
	}
}
