// Package loader builds runtime animation tables from authored assets:
// sheet definition files (internal/sheetdef), sliced sheet images, and
// imported animated GIFs.
package loader

import (
	"image"

	"github.com/hajimehoshi/ebiten/v2"
)

// SliceGrid slices a sheet image into equal-sized cells, row-major from the
// top-left corner. Partial cells at the right/bottom edges are ignored.
// The returned images are sub-images sharing the sheet's pixels.
func SliceGrid(sheet *ebiten.Image, frameWidth, frameHeight int) []*ebiten.Image {
	if sheet == nil || frameWidth <= 0 || frameHeight <= 0 {
		return nil
	}

	bounds := sheet.Bounds()
	cols := bounds.Dx() / frameWidth
	rows := bounds.Dy() / frameHeight
	if cols <= 0 || rows <= 0 {
		return nil
	}

	cells := make([]*ebiten.Image, 0, cols*rows)
	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			r := image.Rect(
				bounds.Min.X+col*frameWidth,
				bounds.Min.Y+row*frameHeight,
				bounds.Min.X+(col+1)*frameWidth,
				bounds.Min.Y+(row+1)*frameHeight,
			)
			cells = append(cells, sheet.SubImage(r).(*ebiten.Image))
		}
	}
	return cells
}
