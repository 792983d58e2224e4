package groups

import (
	"errors"
	"testing"

	"github.com/verte-zerg/trickywords/internal/model"
)

func TestBuiltinCatalog(t *testing.T) {
	c, err := NewCatalog(Builtin()...)
	if err != nil {
		t.Fatalf("builtin catalog: %v", err)
	}
	names := c.Names()
	if len(names) != 2 || names[0] != "Blue" || names[1] != "Yellow" {
		t.Fatalf("unexpected builtin names: %v", names)
	}
	blue, ok := c.Lookup("Blue")
	if !ok {
		t.Fatalf("expected Blue group")
	}
	if blue.Color.Background != "blue" || blue.Color.Foreground != "white" {
		t.Fatalf("unexpected Blue colors: %+v", blue.Color)
	}
	for _, g := range c.All() {
		if len(g.Words) == 0 {
			t.Fatalf("builtin group %s has no words", g.Name)
		}
	}
}

func TestCatalogLookupIsExact(t *testing.T) {
	c, err := NewCatalog(model.WordGroup{Name: "Blue", Words: []string{"the"}})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	if _, ok := c.Lookup("blue"); ok {
		t.Fatalf("lookup should be case sensitive")
	}
	if _, ok := c.Lookup("NoSuchGroup"); ok {
		t.Fatalf("expected missing group")
	}
}

func TestCatalogIsImmutable(t *testing.T) {
	words := []string{"the", "to"}
	c, err := NewCatalog(model.WordGroup{Name: "Blue", Words: words})
	if err != nil {
		t.Fatalf("new catalog: %v", err)
	}
	words[0] = "changed"
	got, _ := c.Lookup("Blue")
	if got.Words[0] != "the" {
		t.Fatalf("catalog aliases caller slice")
	}
	got.Words[1] = "changed"
	again, _ := c.Lookup("Blue")
	if again.Words[1] != "to" {
		t.Fatalf("lookup result aliases catalog")
	}
}

func TestCatalogValidation(t *testing.T) {
	if _, err := NewCatalog(model.WordGroup{Name: " "}); !errors.Is(err, ErrEmptyName) {
		t.Fatalf("expected ErrEmptyName, got %v", err)
	}
	_, err := NewCatalog(model.WordGroup{Name: "A"}, model.WordGroup{Name: "A"})
	if !errors.Is(err, ErrDuplicateName) {
		t.Fatalf("expected ErrDuplicateName, got %v", err)
	}
	c, err := NewCatalog(model.WordGroup{Name: "Empty"})
	if err != nil {
		t.Fatalf("empty word list should be accepted: %v", err)
	}
	if c.Len() != 1 {
		t.Fatalf("expected 1 group, got %d", c.Len())
	}
}

func TestMergeSkipsShadowedNames(t *testing.T) {
	custom := []model.WordGroup{
		{Name: "Blue", Words: []string{"x"}},
		{Name: "Green", Words: []string{"could"}},
	}
	merged, shadowed := Merge(Builtin(), custom)
	if len(merged) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(merged))
	}
	if merged[2].Name != "Green" {
		t.Fatalf("expected custom group last, got %s", merged[2].Name)
	}
	if len(shadowed) != 1 || shadowed[0] != "Blue" {
		t.Fatalf("unexpected shadowed: %v", shadowed)
	}
	if !IsBuiltin("Yellow") || IsBuiltin("Green") {
		t.Fatalf("IsBuiltin mismatch")
	}
}
