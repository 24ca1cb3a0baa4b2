package scene

import "testing"

func sampleDoc() map[string]any {
	return map[string]any{
		"name":  "Workspace",
		"class": "Model",
		"children": []any{
			map[string]any{
				"name":  "Car",
				"class": "Model",
				"children": []any{
					map[string]any{
						"name":       "Wheel",
						"class":      "Part",
						"properties": map[string]any{"Anchored": true},
					},
				},
			},
			map[string]any{"name": "Baseplate"},
		},
	}
}

func TestDecode(t *testing.T) {
	root, err := DecodeWithRegistry(sampleDoc(), newTestRegistry())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if root.Name() != "Workspace" || root.ClassName() != "Model" {
		t.Fatalf("unexpected root %s (%s)", root.Name(), root.ClassName())
	}

	wheel := root.FindFirstChild("Car").FindFirstChild("Wheel")
	if wheel == nil {
		t.Fatal("expected Workspace.Car.Wheel to decode")
	}
	if v, ok := wheel.Property("Anchored"); !ok || v != true {
		t.Fatalf("expected Anchored=true property, got %v (%v)", v, ok)
	}

	// class defaults when absent
	base := root.FindFirstChild("Baseplate")
	if base == nil || base.ClassName() != DefaultClassName {
		t.Fatalf("expected default class for Baseplate, got %v", base)
	}
}

func TestDecodeRejectsMalformedNodes(t *testing.T) {
	cases := []any{
		"not a mapping",
		map[string]any{"class": "Part"},                              // missing name
		map[string]any{"name": "X", "children": "nope"},              // bad children
		map[string]any{"name": "X", "class": 7},                      // bad class
		map[string]any{"name": "X", "properties": []any{"a"}},        // bad properties
		map[string]any{"name": "X", "children": []any{[]any{"bad"}}}, // bad child node
	}
	for i, doc := range cases {
		if _, err := Decode(doc); err == nil {
			t.Errorf("case %d: expected decode error", i)
		}
	}
}

func TestEncodeRoundTrip(t *testing.T) {
	root, err := DecodeWithRegistry(sampleDoc(), newTestRegistry())
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	doc := Encode(root)
	again, err := DecodeWithRegistry(doc, newTestRegistry())
	if err != nil {
		t.Fatalf("Decode(Encode(...)): %v", err)
	}
	if again.Name() != root.Name() || len(again.Children()) != len(root.Children()) {
		t.Fatalf("round trip changed the tree: %v", doc)
	}
	if again.FindFirstChild("Car").FindFirstChild("Wheel") == nil {
		t.Fatal("round trip lost Workspace.Car.Wheel")
	}
}

func TestIsSceneDocument(t *testing.T) {
	if !IsSceneDocument(sampleDoc()) {
		t.Fatal("sample doc should be recognized as a scene")
	}
	if IsSceneDocument(map[string]any{"items": []any{1, 2}}) {
		t.Fatal("plain mapping should not be recognized as a scene")
	}
	if IsSceneDocument([]any{"a"}) {
		t.Fatal("sequence should not be recognized as a scene")
	}
}
