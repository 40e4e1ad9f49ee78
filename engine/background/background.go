// Package background scrolls the starfield and parallax layers behind
// the playfield. It never affects gameplay and draws from its own RNG.
package background

import (
	"github.com/1siamBot/shooter-engine/engine/core"
)

const (
	StarCount       = 200
	StarDepth       = 1000
	LayerCount      = 3
	ObjectsPerLayer = 10
	CameraStep      = 0.5

	objectExit    = -50
	objectRespawn = 200
)

// Star moves faster the closer it is (smaller Z).
type Star struct {
	X, Y  float64
	Z     float64
	Speed float64
}

// Object is a piece of parallax scenery.
type Object struct {
	X, Y  float64
	Size  float64
	Shape int // 0..2, picked by the renderer
}

// Layer scrolls all its objects at one speed.
type Layer struct {
	Speed   float64
	Depth   int
	Objects []Object
}

// Field is the whole scrolling backdrop.
type Field struct {
	Width, Height float64
	Stars         []Star
	Layers        []Layer
	CameraZ       float64
	rng           core.RNG
}

// New scatters stars and scenery over a width x height playfield.
func New(width, height float64, rng core.RNG) *Field {
	f := &Field{Width: width, Height: height, rng: rng}
	f.Stars = make([]Star, StarCount)
	for i := range f.Stars {
		f.Stars[i] = Star{
			X:     rng.Float64() * width,
			Y:     rng.Float64() * height,
			Z:     rng.Float64() * StarDepth,
			Speed: rng.Float64()*2 + 1,
		}
	}
	f.Layers = make([]Layer, LayerCount)
	for i := range f.Layers {
		l := Layer{Speed: float64(i+1) * 0.5, Depth: i + 1}
		l.Objects = make([]Object, ObjectsPerLayer)
		for j := range l.Objects {
			l.Objects[j] = Object{
				X:     rng.Float64() * width * 2,
				Y:     rng.Float64() * height,
				Size:  rng.Float64()*20 + 10,
				Shape: int(rng.Float64() * 3),
			}
		}
		f.Layers[i] = l
	}
	return f
}

// Update scrolls everything one tick, wrapping what leaves on the left.
func (f *Field) Update() {
	for i := range f.Stars {
		s := &f.Stars[i]
		s.X -= s.Speed * (StarDepth - s.Z) / StarDepth * 2
		if s.X < 0 {
			s.X = f.Width
			s.Y = f.rng.Float64() * f.Height
			s.Z = f.rng.Float64() * StarDepth
		}
	}
	for i := range f.Layers {
		l := &f.Layers[i]
		for j := range l.Objects {
			o := &l.Objects[j]
			o.X -= l.Speed
			if o.X < objectExit {
				o.X = f.Width + f.rng.Float64()*objectRespawn
				o.Y = f.rng.Float64() * f.Height
			}
		}
	}
	f.CameraZ += CameraStep
}
