// Package sheetdef provides data structures and a parser for authored sprite
// sheet definition files. A sheet definition is a YAML document that names a
// sheet image, describes how to slice it into equal-sized cells, and lists the
// animations built from those cells as (cell, duration) frame sequences.
package sheetdef

// Sheet is the root structure of a sheet definition file.
type Sheet struct {
	// Image is the sheet image file, relative to the definition file.
	Image string `yaml:"image"`

	// Grid describes how the sheet is sliced into cells.
	Grid Grid `yaml:"grid"`

	// DefaultDuration is the per-frame duration in seconds used when a frame
	// omits its own duration. Optional; defaults to 0.1.
	DefaultDuration float64 `yaml:"default_duration,omitempty"`

	// Animations is the ordered list of animation definitions.
	Animations []Animation `yaml:"animations"`
}

// Grid describes the cell layout of a sheet image. Cells are numbered
// row-major from the top-left corner, starting at 0.
type Grid struct {
	// FrameWidth is the cell width in pixels.
	FrameWidth int `yaml:"frame_width"`

	// FrameHeight is the cell height in pixels.
	FrameHeight int `yaml:"frame_height"`
}

// Animation defines a single named animation.
type Animation struct {
	// Name is the animation name, unique within the sheet.
	Name string `yaml:"name"`

	// Speed is the playback speed multiplier. Optional; defaults to 1.0.
	Speed float64 `yaml:"speed,omitempty"`

	// Loop is the loop policy: "none", "to_start" or "to_frame".
	// Optional; defaults to "none".
	Loop string `yaml:"loop,omitempty"`

	// LoopFrame is the frame index jumped to when Loop is "to_frame".
	LoopFrame int `yaml:"loop_frame,omitempty"`

	// Frames is the ordered frame sequence. At least one frame is required.
	Frames []FrameRef `yaml:"frames"`
}

// FrameRef references a single frame: a sheet cell and its display duration.
type FrameRef struct {
	// Cell is the row-major cell index into the sliced sheet.
	Cell int `yaml:"cell"`

	// Duration is the display duration in seconds. Optional; when omitted
	// (zero) the sheet's DefaultDuration applies.
	Duration float64 `yaml:"duration,omitempty"`
}

// Loop policy names accepted in the "loop" field.
const (
	LoopNameNone    = "none"
	LoopNameToStart = "to_start"
	LoopNameToFrame = "to_frame"
)
