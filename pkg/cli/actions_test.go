package cli

import (
	"flag"
	"strconv"
	"testing"

	"github.com/urfave/cli/v2"
)

func TestParseCoords(t *testing.T) {
	tests := []struct {
		input   string
		x, y    int
		wantErr bool
	}{
		{"540,960", 540, 960, false},
		{" 10 , 20 ", 10, 20, false},
		{"540", 0, 0, true},
		{"a,b", 0, 0, true},
		{"1,2,3", 0, 0, true},
		{"", 0, 0, true},
	}

	for _, tt := range tests {
		x, y, err := parseCoords(tt.input)
		if tt.wantErr {
			if err == nil {
				t.Errorf("parseCoords(%q): expected error", tt.input)
			}
			continue
		}
		if err != nil {
			t.Errorf("parseCoords(%q): unexpected error %v", tt.input, err)
			continue
		}
		if x != tt.x || y != tt.y {
			t.Errorf("parseCoords(%q) = (%d, %d), want (%d, %d)", tt.input, x, y, tt.x, tt.y)
		}
	}
}

// selectContext builds a cli.Context carrying the element-selection flags.
func selectContext(t *testing.T, index int, id, text string) *cli.Context {
	t.Helper()
	set := flag.NewFlagSet("test", flag.ContinueOnError)
	set.Int("index", -1, "")
	set.String("id", "", "")
	set.String("text", "", "")
	if err := set.Set("index", strconv.Itoa(index)); err != nil {
		t.Fatal(err)
	}
	if id != "" {
		set.Set("id", id)
	}
	if text != "" {
		set.Set("text", text)
	}
	return cli.NewContext(nil, set, nil)
}

func TestPickElement(t *testing.T) {
	elements := sampleElements()

	t.Run("by index", func(t *testing.T) {
		e, err := pickElement(selectContext(t, 1, "", ""), elements)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.Text != "Login" {
			t.Errorf("got %q", e.Text)
		}
	})

	t.Run("index out of range", func(t *testing.T) {
		if _, err := pickElement(selectContext(t, 99, "", ""), elements); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("by id", func(t *testing.T) {
		e, err := pickElement(selectContext(t, -1, "com.app:id/user", ""), elements)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ClassName != "android.widget.EditText" {
			t.Errorf("got %q", e.ClassName)
		}
	})

	t.Run("by text", func(t *testing.T) {
		e, err := pickElement(selectContext(t, -1, "", "Login"), elements)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if e.ResourceID != "com.app:id/login" {
			t.Errorf("got %q", e.ResourceID)
		}
	})

	t.Run("no match", func(t *testing.T) {
		if _, err := pickElement(selectContext(t, -1, "", "Nope"), elements); err == nil {
			t.Error("expected error")
		}
	})

	t.Run("no selector given", func(t *testing.T) {
		if _, err := pickElement(selectContext(t, -1, "", ""), elements); err == nil {
			t.Error("expected error")
		}
	})
}
