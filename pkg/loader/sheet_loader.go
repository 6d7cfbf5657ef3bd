package loader

import (
	"fmt"
	"log"
	"path/filepath"

	"github.com/decker502/spriteanim/internal/sheetdef"
	"github.com/decker502/spriteanim/pkg/anim"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// parseLoopMode converts a sheet definition loop name to a LoopMode.
// Unknown names fall back to LoopNone with a warning; the parser already
// rejects them, so this only fires for hand-built Sheet values.
func parseLoopMode(name string) anim.LoopMode {
	switch name {
	case sheetdef.LoopNameNone, "":
		return anim.LoopNone
	case sheetdef.LoopNameToStart:
		return anim.LoopToStart
	case sheetdef.LoopNameToFrame:
		return anim.LoopToFrame
	default:
		log.Printf("[Loader] Warning: unknown loop mode %q, defaulting to none", name)
		return anim.LoopNone
	}
}

// BuildTable assembles an animation table from a parsed sheet definition and
// the sliced sheet cells. Cell references are bounds-checked against the
// slice; a duplicate animation name (already rejected by the parser for
// authored files) is reported as an error.
func BuildTable(sheet *sheetdef.Sheet, cells []*ebiten.Image) (*anim.AnimationTable, error) {
	if sheet == nil {
		return nil, fmt.Errorf("sheet definition is nil")
	}

	table := anim.NewAnimationTable()
	for i := range sheet.Animations {
		a := &sheet.Animations[i]

		frames := make([]anim.FrameDef, 0, len(a.Frames))
		for j, f := range a.Frames {
			if f.Cell >= len(cells) {
				return nil, fmt.Errorf("animation %q frame #%d: cell %d out of range (sheet has %d cells)",
					a.Name, j, f.Cell, len(cells))
			}
			frames = append(frames, anim.FrameDef{
				Image:    cells[f.Cell],
				Duration: f.Duration,
			})
		}

		def := &anim.AnimationDef{
			Name:       a.Name,
			Frames:     frames,
			SpeedRatio: a.Speed,
			Loop:       parseLoopMode(a.Loop),
			LoopFrame:  a.LoopFrame,
		}
		if !table.Add(def) {
			return nil, fmt.Errorf("animation %q: duplicate name", a.Name)
		}
	}
	return table, nil
}

// LoadTableFile loads a sheet definition file and builds its animation table.
// The sheet image path is resolved relative to the definition file.
func LoadTableFile(path string) (*anim.AnimationTable, error) {
	sheet, err := sheetdef.ParseSheetFile(path)
	if err != nil {
		return nil, err
	}

	imagePath := sheet.Image
	if !filepath.IsAbs(imagePath) {
		imagePath = filepath.Join(filepath.Dir(path), imagePath)
	}

	img, _, err := ebitenutil.NewImageFromFile(imagePath)
	if err != nil {
		return nil, fmt.Errorf("failed to load sheet image '%s': %w", imagePath, err)
	}

	cells := SliceGrid(img, sheet.Grid.FrameWidth, sheet.Grid.FrameHeight)
	if len(cells) == 0 {
		return nil, fmt.Errorf("sheet image '%s' (%dx%d) yields no %dx%d cells",
			imagePath, img.Bounds().Dx(), img.Bounds().Dy(),
			sheet.Grid.FrameWidth, sheet.Grid.FrameHeight)
	}

	table, err := BuildTable(sheet, cells)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	log.Printf("[Loader] Loaded %d animations from %s (%d cells)", table.Len(), path, len(cells))
	return table, nil
}
