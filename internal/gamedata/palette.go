package gamedata

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
)

// PaletteDef is the raw palette as stored in palette.json.
type PaletteDef struct {
	Background string `json:"background"` // Board fill
	GridLine   string `json:"gridLine"`   // Grid line color
	Food       string `json:"food"`
	Head       string `json:"head"`
	Body       string `json:"body"`
	Status     string `json:"status"` // Status line text
}

// Palette holds resolved colors used when drawing a frame.
type Palette struct {
	Background tcell.Color
	GridLine   tcell.Color
	Food       tcell.Color
	Head       tcell.Color
	Body       tcell.Color
	Status     tcell.Color
}

// Resolve parses every hex color in the definition.
func (d PaletteDef) Resolve() (Palette, error) {
	var p Palette
	fields := []struct {
		name string
		hex  string
		dst  *tcell.Color
	}{
		{"background", d.Background, &p.Background},
		{"gridLine", d.GridLine, &p.GridLine},
		{"food", d.Food, &p.Food},
		{"head", d.Head, &p.Head},
		{"body", d.Body, &p.Body},
		{"status", d.Status, &p.Status},
	}
	for _, f := range fields {
		color, err := ParseHexColor(f.hex)
		if err != nil {
			return Palette{}, fmt.Errorf("palette %s: %w", f.name, err)
		}
		*f.dst = color
	}
	return p, nil
}

// LoadPalette loads and resolves the embedded palette.json file.
func LoadPalette() (Palette, error) {
	def, err := Load[PaletteDef]("palette.json")
	if err != nil {
		return Palette{}, err
	}
	return def.Resolve()
}
