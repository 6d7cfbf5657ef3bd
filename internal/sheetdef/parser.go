package sheetdef

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// ParseSheet parses a sheet definition from YAML data, applies defaults and
// validates the result.
//
// Defaults:
//   - Sheet.DefaultDuration: 0.1 seconds
//   - Animation.Speed: 1.0
//   - Animation.Loop: "none"
//   - FrameRef.Duration: the sheet's DefaultDuration
//
// Validation failures return an error naming the offending animation or frame.
func ParseSheet(data []byte) (*Sheet, error) {
	var sheet Sheet
	if err := yaml.Unmarshal(data, &sheet); err != nil {
		return nil, fmt.Errorf("failed to parse sheet definition: %w", err)
	}

	applyDefaults(&sheet)

	if err := validate(&sheet); err != nil {
		return nil, err
	}

	return &sheet, nil
}

// ParseSheetFile reads and parses a sheet definition file.
//
// Example:
//
//	sheet, err := sheetdef.ParseSheetFile("assets/walker.sheet.yaml")
//	if err != nil {
//	    log.Fatalf("Failed to parse sheet: %v", err)
//	}
func ParseSheetFile(path string) (*Sheet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet definition '%s': %w", path, err)
	}
	sheet, err := ParseSheet(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return sheet, nil
}

func applyDefaults(sheet *Sheet) {
	if sheet.DefaultDuration == 0 {
		sheet.DefaultDuration = 0.1
	}
	for i := range sheet.Animations {
		a := &sheet.Animations[i]
		if a.Speed == 0 {
			a.Speed = 1.0
		}
		if a.Loop == "" {
			a.Loop = LoopNameNone
		}
		for j := range a.Frames {
			if a.Frames[j].Duration == 0 {
				a.Frames[j].Duration = sheet.DefaultDuration
			}
		}
	}
}

func validate(sheet *Sheet) error {
	if sheet.Image == "" {
		return fmt.Errorf("missing 'image' field")
	}
	if sheet.Grid.FrameWidth <= 0 || sheet.Grid.FrameHeight <= 0 {
		return fmt.Errorf("grid frame size must be positive, got %dx%d",
			sheet.Grid.FrameWidth, sheet.Grid.FrameHeight)
	}
	if sheet.DefaultDuration < 0 {
		return fmt.Errorf("default_duration must be non-negative, got %g", sheet.DefaultDuration)
	}

	seen := make(map[string]bool, len(sheet.Animations))
	for i := range sheet.Animations {
		a := &sheet.Animations[i]
		if a.Name == "" {
			return fmt.Errorf("animation #%d: missing 'name' field", i)
		}
		if seen[a.Name] {
			return fmt.Errorf("animation %q: duplicate name", a.Name)
		}
		seen[a.Name] = true

		if a.Speed <= 0 {
			return fmt.Errorf("animation %q: speed must be positive, got %g", a.Name, a.Speed)
		}
		switch a.Loop {
		case LoopNameNone, LoopNameToStart:
		case LoopNameToFrame:
			if a.LoopFrame < 0 || a.LoopFrame >= len(a.Frames) {
				return fmt.Errorf("animation %q: loop_frame %d out of range (frames: %d)",
					a.Name, a.LoopFrame, len(a.Frames))
			}
		default:
			return fmt.Errorf("animation %q: unknown loop mode %q", a.Name, a.Loop)
		}
		if len(a.Frames) == 0 {
			return fmt.Errorf("animation %q: at least one frame is required", a.Name)
		}
		for j, f := range a.Frames {
			if f.Cell < 0 {
				return fmt.Errorf("animation %q frame #%d: cell must be non-negative, got %d",
					a.Name, j, f.Cell)
			}
			if f.Duration < 0 {
				return fmt.Errorf("animation %q frame #%d: duration must be non-negative, got %g",
					a.Name, j, f.Duration)
			}
		}
	}
	return nil
}
