package yamlutil

import (
	"errors"
	"strings"
	"testing"
)

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	type doc struct {
		Name  string `yaml:"name"`
		Count int    `yaml:"count"`
	}

	t.Run("valid input", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := UnmarshalStrict([]byte("name: photo\ncount: 3\n"), &d); err != nil {
			t.Fatalf("UnmarshalStrict() error = %v", err)
		}
		if d.Name != "photo" || d.Count != 3 {
			t.Errorf("got %+v", d)
		}
	})

	t.Run("unknown field rejected", func(t *testing.T) {
		t.Parallel()

		var d doc
		err := UnmarshalStrict([]byte("name: x\nbogus: y\n"), &d)
		if err == nil {
			t.Error("expected error for unknown field")
		}
	})

	t.Run("empty data", func(t *testing.T) {
		t.Parallel()

		var d doc
		if err := UnmarshalStrict(nil, &d); !errors.Is(err, ErrEmptyData) {
			t.Errorf("error = %v, want ErrEmptyData", err)
		}
	})

	t.Run("nil destination", func(t *testing.T) {
		t.Parallel()

		if err := UnmarshalStrict([]byte("a: 1"), nil); !errors.Is(err, ErrNilDestination) {
			t.Errorf("error = %v, want ErrNilDestination", err)
		}
	})

	t.Run("oversized input", func(t *testing.T) {
		t.Parallel()

		big := []byte("name: " + strings.Repeat("a", MaxInputSize))
		var d doc
		if err := UnmarshalStrict(big, &d); !errors.Is(err, ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	out, err := Marshal(map[string]int{"dpi": 200})
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if !strings.Contains(string(out), "dpi: 200") {
		t.Errorf("Marshal() = %q", out)
	}
}
