package gamedata

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestLoadPalette(t *testing.T) {
	p, err := LoadPalette()
	if err != nil {
		t.Fatalf("Failed to load palette: %v", err)
	}

	if p.Background != tcell.NewRGBColor(225, 225, 225) {
		t.Errorf("Background = %v, want rgb(225,225,225)", p.Background)
	}
	if p.GridLine != tcell.NewRGBColor(0, 0, 0) {
		t.Errorf("GridLine = %v, want rgb(0,0,0)", p.GridLine)
	}
	if p.Food != tcell.NewRGBColor(255, 0, 0) {
		t.Errorf("Food = %v, want rgb(255,0,0)", p.Food)
	}
}

func TestPaletteResolveError(t *testing.T) {
	def := PaletteDef{
		Background: "#E1E1E1",
		GridLine:   "#000000",
		Food:       "nope",
		Head:       "#FF0000",
		Body:       "#FF0000",
		Status:     "#FFFFFF",
	}

	if _, err := def.Resolve(); err == nil {
		t.Error("Resolve() with invalid food color should fail")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load[PaletteDef]("missing.json"); err == nil {
		t.Error("Load(missing.json) should fail")
	}
}

func TestParseHexColor(t *testing.T) {
	tests := []struct {
		input string
		valid bool
	}{
		{"#FF0000", true},
		{"FF0000", true},
		{"#00FF00", true},
		{"#0000FF", true},
		{"#FFFFFF", true},
		{"#000000", true},
		{"invalid", false},
		{"#FFF", false}, // Too short
		{"#GG0000", false},
	}

	for _, tt := range tests {
		_, err := ParseHexColor(tt.input)
		if tt.valid && err != nil {
			t.Errorf("ParseHexColor(%q) should be valid, got error: %v", tt.input, err)
		}
		if !tt.valid && err == nil {
			t.Errorf("ParseHexColor(%q) should be invalid, got no error", tt.input)
		}
	}
}
