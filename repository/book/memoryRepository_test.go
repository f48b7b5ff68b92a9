package bookrepo_test

import (
	"context"
	"testing"

	bookrepo "github.com/Mattox0/tp02-MethodoTest/repository/book"
)

func TestMemory_InsertAssignsIDs(t *testing.T) {
	m := bookrepo.NewMemory()
	ctx := context.Background()

	id1, err := m.Insert(ctx, "Hamlet", "Shakespeare")
	if err != nil || id1 != 1 {
		t.Fatalf("first insert got id=%d err=%v", id1, err)
	}
	id2, err := m.Insert(ctx, "Candide", "Voltaire")
	if err != nil || id2 != 2 {
		t.Fatalf("second insert got id=%d err=%v", id2, err)
	}

	b, err := m.GetByID(ctx, id1)
	if err != nil || b == nil || b.Name != "Hamlet" || b.Reserved {
		t.Fatalf("GetByID(%d) got %v %v", id1, b, err)
	}
}

func TestMemory_GetByID_Absent(t *testing.T) {
	m := bookrepo.NewMemory()
	b, err := m.GetByID(context.Background(), 999)
	if err != nil || b != nil {
		t.Fatalf("absent id should be nil, nil; got %v %v", b, err)
	}
}

func TestMemory_MarkReserved(t *testing.T) {
	m := bookrepo.NewMemory()
	ctx := context.Background()
	id, _ := m.Insert(ctx, "Hamlet", "Shakespeare")

	if n, _ := m.MarkReserved(ctx, 999); n != 0 {
		t.Fatalf("unknown id affected %d rows; want 0", n)
	}
	if n, _ := m.MarkReserved(ctx, id); n != 1 {
		t.Fatalf("first reserve affected %d rows; want 1", n)
	}
	if n, _ := m.MarkReserved(ctx, id); n != 0 {
		t.Fatalf("second reserve affected %d rows; want 0", n)
	}

	b, _ := m.GetByID(ctx, id)
	if b == nil || !b.Reserved {
		t.Fatalf("book should stay reserved, got %v", b)
	}
}
