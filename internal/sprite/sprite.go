// Package sprite loads per-frame animations for the chicken.
// Frames are plain text rows; the terminal draws one rune per cell.
package sprite

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// BuiltinName selects the embedded animation instead of a file.
const BuiltinName = "builtin"

var (
	// ErrMissingAsset is returned when an animation file does not exist.
	ErrMissingAsset = errors.New("sprite: animation asset not found")

	// ErrEmptyAnimation is returned for files without usable frames.
	ErrEmptyAnimation = errors.New("sprite: animation has no frames")
)

//go:embed chicken.yaml
var builtinYAML []byte

// Frame is one picture of the animation, top row first.
type Frame []string

// Animation is an ordered, non-empty list of frames.
type Animation struct {
	Name   string  `yaml:"name"`
	Frames []Frame `yaml:"frames"`
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.Frames)
}

// Frame returns frame i, wrapping around the frame count.
func (a *Animation) Frame(i int) Frame {
	n := len(a.Frames)
	return a.Frames[((i%n)+n)%n]
}

// Size returns the widest row and the tallest frame, in runes.
func (a *Animation) Size() (w, h int) {
	for _, f := range a.Frames {
		h = max(h, len(f))
		for _, row := range f {
			w = max(w, len([]rune(row)))
		}
	}
	return w, h
}

// Builtin returns the embedded chicken animation.
func Builtin() *Animation {
	a, err := Parse(builtinYAML)
	if err != nil {
		panic(fmt.Sprintf("sprite: embedded animation is invalid: %v", err))
	}
	return a
}

// Resolve returns the builtin animation for BuiltinName and loads
// anything else from disk.
func Resolve(name string) (*Animation, error) {
	if name == BuiltinName {
		return Builtin(), nil
	}
	return Load(name)
}

// Load reads an animation file. A missing file yields ErrMissingAsset.
func Load(path string) (*Animation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrMissingAsset, path)
		}
		return nil, fmt.Errorf("sprite: cannot read %s: %w", path, err)
	}
	a, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return a, nil
}

// Parse decodes an animation from YAML.
func Parse(data []byte) (*Animation, error) {
	var a Animation
	if err := yaml.Unmarshal(data, &a); err != nil {
		return nil, fmt.Errorf("sprite: cannot parse animation: %w", err)
	}
	if len(a.Frames) == 0 {
		return nil, ErrEmptyAnimation
	}
	for i, f := range a.Frames {
		if len(f) == 0 {
			return nil, fmt.Errorf("%w: frame %d is empty", ErrEmptyAnimation, i)
		}
	}
	return &a, nil
}
