package scene

import (
	"context"
	"testing"
	"time"
)

func newTestRegistry() *ClassRegistry {
	reg := NewClassRegistry()
	reg.Register("Part", "BasePart")
	reg.Register("MeshPart", "Part")
	reg.Register("BasePart", "Instance")
	reg.Register("Model", "Instance")
	return reg
}

func buildTree(t *testing.T, reg *ClassRegistry) *Instance {
	t.Helper()
	root := NewWithRegistry("Model", "Workspace", reg)
	model := NewWithRegistry("Model", "Car", reg)
	wheel := NewWithRegistry("MeshPart", "Wheel", reg)
	seat := NewWithRegistry("Part", "Seat", reg)
	for _, step := range []struct {
		parent, child *Instance
	}{
		{root, model},
		{model, wheel},
		{model, seat},
	} {
		if err := step.parent.AddChild(step.child); err != nil {
			t.Fatalf("AddChild: %v", err)
		}
	}
	return root
}

func TestFindFirstChild(t *testing.T) {
	root := buildTree(t, newTestRegistry())
	car := root.FindFirstChild("Car")
	if car == nil {
		t.Fatal("expected to find child Car")
	}
	if car.FindFirstChild("Missing") != nil {
		t.Fatal("expected nil for unknown child")
	}
}

func TestWaitForChildImmediate(t *testing.T) {
	root := buildTree(t, newTestRegistry())
	got, err := root.WaitForChild(context.Background(), "Car")
	if err != nil {
		t.Fatalf("expected immediate return for existing child, got %v", err)
	}
	if got.Name() != "Car" {
		t.Fatalf("expected Car, got %q", got.Name())
	}
}

func TestWaitForChildBlocksUntilAdded(t *testing.T) {
	reg := newTestRegistry()
	root := NewWithRegistry("Model", "Workspace", reg)

	type result struct {
		in  *Instance
		err error
	}
	done := make(chan result, 1)
	go func() {
		in, err := root.WaitForChild(context.Background(), "Late")
		done <- result{in, err}
	}()

	// Add an unrelated child first; the waiter must keep blocking.
	if err := root.AddChild(NewWithRegistry("Part", "Other", reg)); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	select {
	case r := <-done:
		t.Fatalf("waiter returned early with (%v, %v)", r.in, r.err)
	case <-time.After(20 * time.Millisecond):
	}

	if err := root.AddChild(NewWithRegistry("Part", "Late", reg)); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	select {
	case r := <-done:
		if r.err != nil {
			t.Fatalf("expected child, got error %v", r.err)
		}
		if r.in.Name() != "Late" {
			t.Fatalf("expected Late, got %q", r.in.Name())
		}
	case <-time.After(time.Second):
		t.Fatal("waiter did not wake after child was added")
	}
}

func TestWaitForChildHonorsContext(t *testing.T) {
	root := NewWithRegistry("Model", "Workspace", newTestRegistry())
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := root.WaitForChild(ctx, "Never")
	if err == nil {
		t.Fatal("expected error when context expires")
	}
}

func TestAddChildRejectsReparenting(t *testing.T) {
	reg := newTestRegistry()
	a := NewWithRegistry("Model", "A", reg)
	b := NewWithRegistry("Model", "B", reg)
	c := NewWithRegistry("Part", "C", reg)
	if err := a.AddChild(c); err != nil {
		t.Fatalf("AddChild: %v", err)
	}
	if err := b.AddChild(c); err == nil {
		t.Fatal("expected error when adding an already-parented child")
	}
	c.Remove()
	if err := b.AddChild(c); err != nil {
		t.Fatalf("expected reattach after Remove to succeed, got %v", err)
	}
}

func TestIsAWalksInheritance(t *testing.T) {
	reg := newTestRegistry()
	wheel := NewWithRegistry("MeshPart", "Wheel", reg)
	for _, class := range []string{"MeshPart", "Part", "BasePart", "Instance"} {
		if !wheel.IsA(class) {
			t.Errorf("expected MeshPart to be a %s", class)
		}
	}
	if wheel.IsA("Model") {
		t.Error("MeshPart should not be a Model")
	}
}

func TestDescendantsPreorder(t *testing.T) {
	root := buildTree(t, newTestRegistry())
	var names []string
	for _, d := range root.Descendants() {
		names = append(names, d.Name())
	}
	want := []string{"Car", "Wheel", "Seat"}
	if len(names) != len(want) {
		t.Fatalf("expected %v, got %v", want, names)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, names)
		}
	}
}

func TestFindFirstDescendantOfClass(t *testing.T) {
	root := buildTree(t, newTestRegistry())

	// Wheel (MeshPart) precedes Seat (Part) in depth-first order and
	// inherits from Part, so it is the first Part match.
	got := root.FindFirstDescendantOfClass("Part")
	if got == nil || got.Name() != "Wheel" {
		t.Fatalf("expected Wheel, got %v", got)
	}

	if root.FindFirstDescendantOfClass("Camera") != nil {
		t.Fatal("expected nil for class with no instances")
	}
}

func TestFindFirstDescendantOfClassExcludesRoot(t *testing.T) {
	reg := newTestRegistry()
	root := NewWithRegistry("Part", "Lonely", reg)
	if got := root.FindFirstDescendantOfClass("Part"); got != nil {
		t.Fatalf("root must never match itself, got %v", got.Name())
	}
}

func TestFullPath(t *testing.T) {
	root := buildTree(t, newTestRegistry())
	wheel := root.FindFirstChild("Car").FindFirstChild("Wheel")
	if got := wheel.FullPath().String(); got != "Workspace.Car.Wheel" {
		t.Fatalf("expected Workspace.Car.Wheel, got %q", got)
	}
}
