package gamedata

import (
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/uniseg"
)

// ActorDef defines the look of the player or a monster species.
type ActorDef struct {
	ID          string `yaml:"id"`          // Unique identifier (e.g., "orc")
	Name        string `yaml:"name"`        // Display name (e.g., "Orc")
	Glyph       string `yaml:"glyph"`       // Single character for rendering (e.g., "O")
	Color       string `yaml:"color"`       // Hex color code (e.g., "#3F7F3F")
	Blocks      bool   `yaml:"blocks"`      // Occupies its tile for collision
	SpawnWeight int    `yaml:"spawnWeight"` // Relative spawn frequency (monsters only)
}

// GlyphRune returns the glyph as a rune for rendering.
func (a *ActorDef) GlyphRune() rune {
	for _, r := range a.Glyph {
		return r
	}
	return '?'
}

// TCellColor returns the color as a tcell.Color.
func (a *ActorDef) TCellColor() tcell.Color {
	color, err := ParseHexColor(a.Color)
	if err != nil {
		return tcell.ColorWhite // fallback
	}
	return color
}

// Validate checks that the definition can be rendered.
func (a *ActorDef) Validate() error {
	var errs []error
	if a.ID == "" {
		errs = append(errs, errors.New("missing id"))
	}
	if n := uniseg.GraphemeClusterCount(a.Glyph); n != 1 {
		errs = append(errs, fmt.Errorf("glyph %q must be a single character, got %d", a.Glyph, n))
	}
	if _, err := ParseHexColor(a.Color); err != nil {
		errs = append(errs, err)
	}
	if a.SpawnWeight < 0 {
		errs = append(errs, fmt.Errorf("negative spawn weight %d", a.SpawnWeight))
	}
	if err := errors.Join(errs...); err != nil {
		return fmt.Errorf("actor %q: %w", a.ID, err)
	}
	return nil
}

// ActorsFile represents the structure of actors.yaml.
type ActorsFile struct {
	Player   ActorDef   `yaml:"player"`
	Monsters []ActorDef `yaml:"monsters"`
}

// Validate checks every definition in the file.
func (f *ActorsFile) Validate() error {
	errs := []error{f.Player.Validate()}
	for i := range f.Monsters {
		errs = append(errs, f.Monsters[i].Validate())
	}
	return errors.Join(errs...)
}

// LoadActors loads actor definitions from the embedded actors.yaml file.
func LoadActors() (*ActorsFile, error) {
	file, err := Load[ActorsFile]("actors.yaml")
	if err != nil {
		return nil, err
	}
	if err := file.Validate(); err != nil {
		return nil, fmt.Errorf("invalid actors.yaml: %w", err)
	}
	return &file, nil
}
