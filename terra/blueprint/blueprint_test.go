package blueprint

import (
	"errors"
	"testing"
)

func TestMemoryStoreCreate(t *testing.T) {
	s := NewMemoryStore()
	bp, err := s.Create("TowerBP", "Actor")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if bp.Name != "TowerBP" || bp.ParentClass != "Actor" || bp.Compiled {
		t.Fatalf("unexpected blueprint: %+v", bp)
	}
	if _, err := s.Create("TowerBP", "Actor"); !errors.Is(err, ErrExists) {
		t.Fatalf("expected ErrExists, got %v", err)
	}
	if _, err := s.ByName("MissingBP"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryStoreCompileInvalidation(t *testing.T) {
	s := NewMemoryStore()
	if _, err := s.Create("TowerBP", "Actor"); err != nil {
		t.Fatalf("create: %v", err)
	}
	if _, err := s.Compile("TowerBP"); err != nil {
		t.Fatalf("compile: %v", err)
	}
	bp, _ := s.ByName("TowerBP")
	if !bp.Compiled {
		t.Fatalf("expected compiled blueprint")
	}

	if err := s.AddComponent("TowerBP", Component{Name: "Mesh", Type: "StaticMeshComponent"}); err != nil {
		t.Fatalf("add component: %v", err)
	}
	bp, _ = s.ByName("TowerBP")
	if bp.Compiled {
		t.Fatalf("adding a component must invalidate the compile")
	}
	if len(bp.Components) != 1 || bp.Components[0].Type != "StaticMeshComponent" {
		t.Fatalf("unexpected components: %+v", bp.Components)
	}

	if _, err := s.Compile("TowerBP"); err != nil {
		t.Fatalf("compile: %v", err)
	}
	if err := s.SetProperty("TowerBP", "Height", 40); err != nil {
		t.Fatalf("set property: %v", err)
	}
	bp, _ = s.ByName("TowerBP")
	if bp.Compiled {
		t.Fatalf("setting a property must invalidate the compile")
	}
	if bp.Properties["Height"] != 40 {
		t.Fatalf("unexpected properties: %+v", bp.Properties)
	}
}

func TestMemoryStoreUnknown(t *testing.T) {
	s := NewMemoryStore()
	if err := s.AddComponent("MissingBP", Component{}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if err := s.SetProperty("MissingBP", "k", 1); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := s.Compile("MissingBP"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
