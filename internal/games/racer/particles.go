package racer

// ParticleBuffer is a fixed-capacity particle store with a live-count cursor.
// Adding past capacity drops the new particle; nothing reallocates during play.
type ParticleBuffer struct {
	items []Particle
	n     int
}

// NewParticleBuffer allocates a buffer for capacity particles.
func NewParticleBuffer(capacity int) *ParticleBuffer {
	return &ParticleBuffer{items: make([]Particle, max(capacity, 1))}
}

// Add stores a particle. It returns false when the buffer is full.
func (b *ParticleBuffer) Add(p Particle) bool {
	if b.n == len(b.items) {
		return false
	}
	b.items[b.n] = p
	b.n++
	return true
}

// Update advances every particle one step and drops the expired ones.
// Survivors are compacted to the front in their original order.
// It returns the number of particles removed.
func (b *ParticleBuffer) Update() int {
	w := 0
	for r := 0; r < b.n; r++ {
		p := b.items[r]
		p.X += p.VX
		p.Y += p.VY
		p.Life++
		if p.Life >= p.MaxLife {
			continue
		}
		b.items[w] = p
		w++
	}
	removed := b.n - w
	b.n = w
	return removed
}

// Clear drops all particles.
func (b *ParticleBuffer) Clear() {
	b.n = 0
}

// Len returns the live particle count.
func (b *ParticleBuffer) Len() int {
	return b.n
}

// Cap returns the buffer capacity.
func (b *ParticleBuffer) Cap() int {
	return len(b.items)
}

// Snapshot returns a copy of the live particles.
func (b *ParticleBuffer) Snapshot() []Particle {
	out := make([]Particle, b.n)
	copy(out, b.items[:b.n])
	return out
}
