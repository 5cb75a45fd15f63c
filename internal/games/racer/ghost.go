package racer

import (
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// ghostInterval is the number of steps between recorded ghost frames.
const ghostInterval = 6

// GhostFrame is one sampled player position.
type GhostFrame struct {
	X float32 `msgpack:"x"`
	Y float32 `msgpack:"y"`
}

// Ghost is a recorded run that can be raced against.
type Ghost struct {
	Mode     string       `msgpack:"mode"`
	Score    int          `msgpack:"score"`
	Interval int          `msgpack:"interval"`
	Frames   []GhostFrame `msgpack:"frames"`
}

// EncodeGhost serializes a ghost with msgpack.
func EncodeGhost(g Ghost) ([]byte, error) {
	data, err := msgpack.Marshal(&g)
	if err != nil {
		return nil, fmt.Errorf("encode ghost: %w", err)
	}
	return data, nil
}

// DecodeGhost parses a msgpack ghost.
func DecodeGhost(data []byte) (Ghost, error) {
	var g Ghost
	if err := msgpack.Unmarshal(data, &g); err != nil {
		return Ghost{}, fmt.Errorf("decode ghost: %w", err)
	}
	if g.Interval <= 0 {
		g.Interval = ghostInterval
	}
	return g, nil
}

// PositionAt returns the ghost's position at a step, or false once the
// recording has run out.
func (g Ghost) PositionAt(step int) (x, y float64, ok bool) {
	if g.Interval <= 0 || step < 0 {
		return 0, 0, false
	}
	i := step / g.Interval
	if i >= len(g.Frames) {
		return 0, 0, false
	}
	f := g.Frames[i]
	return float64(f.X), float64(f.Y), true
}

// ghostRecorder samples the player every ghostInterval steps.
type ghostRecorder struct {
	steps  int
	frames []GhostFrame
}

func (r *ghostRecorder) reset() {
	r.steps = 0
	r.frames = r.frames[:0]
}

func (r *ghostRecorder) record(p Player) {
	if r.steps%ghostInterval == 0 {
		r.frames = append(r.frames, GhostFrame{X: float32(p.X), Y: float32(p.Y)})
	}
	r.steps++
}

func (r *ghostRecorder) ghost(mode string, score int) Ghost {
	frames := make([]GhostFrame, len(r.frames))
	copy(frames, r.frames)
	return Ghost{Mode: mode, Score: score, Interval: ghostInterval, Frames: frames}
}
