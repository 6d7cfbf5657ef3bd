package sheetdef

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const validSheetYAML = `
image: walker.png
grid: { frame_width: 32, frame_height: 48 }
animations:
  - name: walk
    speed: 1.5
    loop: to_start
    frames:
      - { cell: 0, duration: 0.1 }
      - { cell: 1, duration: 0.1 }
      - { cell: 2 }
  - name: hit
    loop: none
    frames:
      - { cell: 3, duration: 0.05 }
      - { cell: 4, duration: 0.05 }
`

// TestParseSheet_Success tests parsing a well-formed sheet definition
func TestParseSheet_Success(t *testing.T) {
	sheet, err := ParseSheet([]byte(validSheetYAML))
	if err != nil {
		t.Fatalf("Failed to parse sheet: %v", err)
	}

	if sheet.Image != "walker.png" {
		t.Errorf("Expected image=walker.png, got %q", sheet.Image)
	}
	if sheet.Grid.FrameWidth != 32 || sheet.Grid.FrameHeight != 48 {
		t.Errorf("Expected grid 32x48, got %dx%d", sheet.Grid.FrameWidth, sheet.Grid.FrameHeight)
	}
	if len(sheet.Animations) != 2 {
		t.Fatalf("Expected 2 animations, got %d", len(sheet.Animations))
	}

	walk := sheet.Animations[0]
	if walk.Name != "walk" || walk.Speed != 1.5 || walk.Loop != LoopNameToStart {
		t.Errorf("Unexpected walk animation: %+v", walk)
	}
	if len(walk.Frames) != 3 {
		t.Fatalf("Expected 3 walk frames, got %d", len(walk.Frames))
	}
}

// TestParseSheet_Defaults tests defaulting of speed, loop and frame durations
func TestParseSheet_Defaults(t *testing.T) {
	sheet, err := ParseSheet([]byte(validSheetYAML))
	if err != nil {
		t.Fatalf("Failed to parse sheet: %v", err)
	}

	// DefaultDuration defaults to 0.1 and fills omitted frame durations
	if sheet.DefaultDuration != 0.1 {
		t.Errorf("Expected DefaultDuration=0.1, got %g", sheet.DefaultDuration)
	}
	if got := sheet.Animations[0].Frames[2].Duration; got != 0.1 {
		t.Errorf("Expected omitted duration filled with 0.1, got %g", got)
	}

	// hit omits speed -> 1.0
	if got := sheet.Animations[1].Speed; got != 1.0 {
		t.Errorf("Expected default speed 1.0, got %g", got)
	}
}

// TestParseSheet_DefaultDurationOverride tests a sheet-level default_duration
func TestParseSheet_DefaultDurationOverride(t *testing.T) {
	data := `
image: s.png
grid: { frame_width: 8, frame_height: 8 }
default_duration: 0.25
animations:
  - name: blink
    frames:
      - { cell: 0 }
`
	sheet, err := ParseSheet([]byte(data))
	if err != nil {
		t.Fatalf("Failed to parse sheet: %v", err)
	}
	if got := sheet.Animations[0].Frames[0].Duration; got != 0.25 {
		t.Errorf("Expected duration 0.25, got %g", got)
	}
	if got := sheet.Animations[0].Loop; got != LoopNameNone {
		t.Errorf("Expected default loop 'none', got %q", got)
	}
}

// TestParseSheet_Invalid tests rejection of malformed definitions
func TestParseSheet_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		errPart string
	}{
		{
			"missing image",
			`grid: { frame_width: 8, frame_height: 8 }`,
			"image",
		},
		{
			"zero grid",
			`image: s.png
grid: { frame_width: 0, frame_height: 8 }`,
			"frame size",
		},
		{
			"unnamed animation",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - frames: [ { cell: 0 } ]`,
			"name",
		},
		{
			"duplicate name",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    frames: [ { cell: 0 } ]
  - name: a
    frames: [ { cell: 1 } ]`,
			"duplicate",
		},
		{
			"no frames",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    frames: []`,
			"at least one frame",
		},
		{
			"negative cell",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    frames: [ { cell: -1 } ]`,
			"cell",
		},
		{
			"negative speed",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    speed: -2
    frames: [ { cell: 0 } ]`,
			"speed",
		},
		{
			"unknown loop mode",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    loop: pingpong
    frames: [ { cell: 0 } ]`,
			"loop mode",
		},
		{
			"loop_frame out of range",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    loop: to_frame
    loop_frame: 5
    frames: [ { cell: 0 } ]`,
			"loop_frame",
		},
		{
			"negative duration",
			`image: s.png
grid: { frame_width: 8, frame_height: 8 }
animations:
  - name: a
    frames: [ { cell: 0, duration: -0.5 } ]`,
			"duration",
		},
		{
			"not yaml",
			`{{{`,
			"parse",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSheet([]byte(tt.yaml))
			if err == nil {
				t.Fatalf("Expected error for %s, got nil", tt.name)
			}
			if !strings.Contains(err.Error(), tt.errPart) {
				t.Errorf("Expected error mentioning %q, got: %v", tt.errPart, err)
			}
		})
	}
}

// TestParseSheetFile tests file loading, including the missing-file error path
func TestParseSheetFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "walker.yaml")
	if err := os.WriteFile(path, []byte(validSheetYAML), 0o644); err != nil {
		t.Fatalf("Failed to write temp sheet: %v", err)
	}

	sheet, err := ParseSheetFile(path)
	if err != nil {
		t.Fatalf("Failed to parse sheet file: %v", err)
	}
	if len(sheet.Animations) != 2 {
		t.Errorf("Expected 2 animations, got %d", len(sheet.Animations))
	}

	if _, err := ParseSheetFile(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("Expected error for a missing file")
	}
}
