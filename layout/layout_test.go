package layout

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/OpticalFlyer/modwin/ui"
)

func TestDefaultConfigIsValid(t *testing.T) {
	if err := DefaultConfig().Validate(); err != nil {
		t.Fatal(err)
	}
}

func TestParse(t *testing.T) {
	doc := `
window:
  title: Part Builder
gui_scale: 2
modules:
  - name: pattern
    kind: side_inventory
    anchor: left
    width: 60
    height: 90
    rows: 4
    columns: 3
`
	cfg, err := Parse([]byte(doc))
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Window.Title != "Part Builder" {
		t.Errorf("title = %q", cfg.Window.Title)
	}
	if cfg.Window.Width != 176 || cfg.Window.Height != 166 {
		t.Errorf("window size %dx%d; want built-in 176x166", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.GUIScale != 2 {
		t.Errorf("gui_scale = %d", cfg.GUIScale)
	}
	if len(cfg.Modules) != 1 || cfg.Modules[0].Name != "pattern" {
		t.Fatalf("modules = %+v", cfg.Modules)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name     string
		doc      string
		wantPath string
	}{
		{
			name:     "no modules",
			doc:      "window: {width: 10, height: 10}\n",
			wantPath: "modules",
		},
		{
			name:     "bad kind",
			doc:      "modules: [{name: a, kind: furnace, width: 1, height: 1}]\n",
			wantPath: "modules[0].kind",
		},
		{
			name:     "bad anchor",
			doc:      "modules: [{name: a, kind: tools, anchor: sideways, width: 1, height: 1}]\n",
			wantPath: "modules[0].anchor",
		},
		{
			name:     "duplicate name",
			doc:      "modules: [{name: a, kind: tools, width: 1, height: 1}, {name: a, kind: tools, width: 1, height: 1}]\n",
			wantPath: "modules[1].name",
		},
		{
			name:     "empty size",
			doc:      "modules: [{name: a, kind: tools}]\n",
			wantPath: "modules[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.doc))
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("err = %v; want ValidationError", err)
			}
			if verr.Path != tt.wantPath {
				t.Errorf("path = %q; want %q", verr.Path, tt.wantPath)
			}
		})
	}

	if _, err := Parse([]byte("modules: []\nextra: 1\n")); err == nil || !strings.Contains(err.Error(), "extra") {
		t.Errorf("unknown field accepted: %v", err)
	}
	_, err := Parse([]byte("window: {width: 10, height: 10}\n"))
	if !errors.Is(err, ErrNoModules) {
		t.Errorf("err = %v; want ErrNoModules", err)
	}
}

func TestLoadFromPath(t *testing.T) {
	dir := t.TempDir()

	cfg, err := LoadFromPath(filepath.Join(dir, "missing.yaml"))
	if err != nil {
		t.Fatal(err)
	}
	if len(cfg.Modules) != len(DefaultConfig().Modules) {
		t.Error("missing file should give the built-in layout")
	}

	path := filepath.Join(dir, "nested", "layout.yaml")
	want := DefaultConfig()
	want.Window.Title = "Saved"
	if err := Save(path, want); err != nil {
		t.Fatal(err)
	}
	got, err := LoadFromPath(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.Window.Title != "Saved" || len(got.Modules) != 3 {
		t.Errorf("loaded %+v", got)
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("modules: [\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFromPath(bad); err == nil || !strings.HasPrefix(err.Error(), bad) {
		t.Errorf("err = %v; want error prefixed with path", err)
	}
}

func TestParseAnchor(t *testing.T) {
	tests := map[string]ui.Anchor{
		"":       ui.AnchorInside,
		"inside": ui.AnchorInside,
		"Left":   ui.AnchorLeft,
		"right":  ui.AnchorRight,
		"top":    ui.AnchorTop,
		"bottom": ui.AnchorBottom,
	}
	for name, want := range tests {
		got, err := ParseAnchor(name)
		if err != nil || got != want {
			t.Errorf("ParseAnchor(%q) = %v, %v; want %v", name, got, err, want)
		}
	}
}
