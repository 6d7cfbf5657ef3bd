package loader

import (
	"fmt"
	"image"
	"image/gif"
	"io"

	"github.com/decker502/spriteanim/pkg/anim"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/draw"
)

// GIFClip holds the frames of an imported animated GIF, fully composited to
// the logical screen size with per-frame disposal applied.
type GIFClip struct {
	// Frames are the composited full-size frames.
	Frames []*image.RGBA

	// Durations are the per-frame display durations in seconds.
	Durations []float64

	// Width and Height are the logical screen size of the GIF.
	Width, Height int
}

// ImportGIF decodes an animated GIF and composites its frames.
//
// GIF frames are stored as partial patches over a shared canvas with a
// per-frame disposal method; playback code wants independent full-size
// frames, so each frame is flattened onto the canvas before being copied out.
// Frame delays are converted from centiseconds to seconds; non-positive
// delays fall back to 0.1s, matching common viewer behavior.
func ImportGIF(r io.Reader) (*GIFClip, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to decode GIF: %w", err)
	}
	if len(g.Image) == 0 {
		return nil, fmt.Errorf("GIF contains no frames")
	}

	w, h := g.Config.Width, g.Config.Height
	if w == 0 || h == 0 {
		b := g.Image[0].Bounds()
		w, h = b.Max.X, b.Max.Y
	}
	screen := image.Rect(0, 0, w, h)

	clip := &GIFClip{
		Frames:    make([]*image.RGBA, 0, len(g.Image)),
		Durations: make([]float64, 0, len(g.Image)),
		Width:     w,
		Height:    h,
	}

	canvas := image.NewRGBA(screen)
	var previous *image.RGBA

	for i, src := range g.Image {
		disposal := byte(gif.DisposalNone)
		if i < len(g.Disposal) {
			disposal = g.Disposal[i]
		}
		if disposal == gif.DisposalPrevious {
			previous = cloneRGBA(canvas)
		}

		draw.Draw(canvas, src.Bounds(), src, src.Bounds().Min, draw.Over)
		clip.Frames = append(clip.Frames, cloneRGBA(canvas))

		duration := 0.1
		if i < len(g.Delay) && g.Delay[i] > 0 {
			duration = float64(g.Delay[i]) / 100.0
		}
		clip.Durations = append(clip.Durations, duration)

		switch disposal {
		case gif.DisposalBackground:
			clear := src.Bounds().Intersect(screen)
			draw.Draw(canvas, clear, image.Transparent, image.Point{}, draw.Src)
		case gif.DisposalPrevious:
			if previous != nil {
				canvas = previous
				previous = nil
			}
		}
	}

	return clip, nil
}

// Scale returns a copy of the clip resized so its width is at most maxWidth,
// preserving aspect ratio. A non-positive maxWidth or one not smaller than
// the clip width returns the clip unchanged.
func (c *GIFClip) Scale(maxWidth int) *GIFClip {
	if maxWidth <= 0 || c.Width <= maxWidth {
		return c
	}

	w := maxWidth
	h := c.Height * maxWidth / c.Width
	if h < 1 {
		h = 1
	}

	scaled := &GIFClip{
		Frames:    make([]*image.RGBA, 0, len(c.Frames)),
		Durations: append([]float64(nil), c.Durations...),
		Width:     w,
		Height:    h,
	}
	for _, frame := range c.Frames {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.ApproxBiLinear.Scale(dst, dst.Bounds(), frame, frame.Bounds(), draw.Over, nil)
		scaled.Frames = append(scaled.Frames, dst)
	}
	return scaled
}

// TableFromGIF builds a single-animation table from an imported GIF clip,
// for playing a GIF directly without authoring a sheet file.
func TableFromGIF(clip *GIFClip, name string, loop anim.LoopMode) (*anim.AnimationTable, error) {
	if clip == nil || len(clip.Frames) == 0 {
		return nil, fmt.Errorf("GIF clip is empty")
	}
	if name == "" {
		name = "gif"
	}

	frames := make([]anim.FrameDef, 0, len(clip.Frames))
	for i, frame := range clip.Frames {
		frames = append(frames, anim.FrameDef{
			Image:    ebiten.NewImageFromImage(frame),
			Duration: clip.Durations[i],
		})
	}

	table := anim.NewAnimationTable(&anim.AnimationDef{
		Name:       name,
		Frames:     frames,
		SpeedRatio: 1.0,
		Loop:       loop,
	})
	return table, nil
}

func cloneRGBA(src *image.RGBA) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	copy(dst.Pix, src.Pix)
	return dst
}
