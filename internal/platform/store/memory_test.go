package store

import (
	"context"
	"errors"
	"testing"
)

type widget struct {
	ID   string
	Name string
}

func newWidgetStore() *Memory[widget] {
	return NewMemory(func(w *widget) *string { return &w.ID })
}

func TestMemory_CreateAssignsID(t *testing.T) {
	s := newWidgetStore()
	w := &widget{Name: "a"}
	if err := s.Create(context.Background(), w); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if w.ID == "" {
		t.Fatal("expected ID to be assigned")
	}
	got, err := s.GetByID(context.Background(), w.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Name != "a" {
		t.Errorf("expected name a, got %s", got.Name)
	}
}

func TestMemory_ReturnedValueIsCopy(t *testing.T) {
	s := newWidgetStore()
	w := &widget{Name: "a"}
	s.Create(context.Background(), w)

	got, _ := s.GetByID(context.Background(), w.ID)
	got.Name = "changed"

	again, _ := s.GetByID(context.Background(), w.ID)
	if again.Name != "a" {
		t.Errorf("stored entity was mutated through returned pointer: %s", again.Name)
	}
}

func TestMemory_UpdateMissing(t *testing.T) {
	s := newWidgetStore()
	err := s.Update(context.Background(), &widget{ID: "nope", Name: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if s.Len() != 0 {
		t.Error("update must not create")
	}
}

func TestMemory_DeleteAndExists(t *testing.T) {
	s := newWidgetStore()
	ctx := context.Background()
	a := &widget{Name: "a"}
	b := &widget{Name: "b"}
	s.Create(ctx, a)
	s.Create(ctx, b)

	if ok, _ := s.Exists(ctx, a.ID); !ok {
		t.Fatal("expected a to exist")
	}
	if err := s.Delete(ctx, a.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ok, _ := s.Exists(ctx, a.ID); ok {
		t.Error("expected a to be gone")
	}
	if _, err := s.GetByID(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
	if err := s.Delete(ctx, a.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("expected ErrNotFound on second delete, got %v", err)
	}

	items, _ := s.List(ctx)
	if len(items) != 1 || items[0].Name != "b" {
		t.Errorf("unexpected list after delete: %+v", items)
	}
}

func TestMemory_ListInsertionOrder(t *testing.T) {
	s := newWidgetStore()
	ctx := context.Background()
	for _, n := range []string{"x", "y", "z"} {
		s.Create(ctx, &widget{Name: n})
	}
	items, _ := s.List(ctx)
	if len(items) != 3 {
		t.Fatalf("expected 3 items, got %d", len(items))
	}
	for i, n := range []string{"x", "y", "z"} {
		if items[i].Name != n {
			t.Errorf("position %d: expected %s, got %s", i, n, items[i].Name)
		}
	}
}

func TestMemory_ListEmpty(t *testing.T) {
	items, err := newWidgetStore().List(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if items == nil || len(items) != 0 {
		t.Errorf("expected empty non-nil slice, got %v", items)
	}
}
