package racer

import (
	"math/rand"

	"github.com/vovakirdan/neon-highway/internal/core"
)

// Weather changes handling and visibility.
type Weather int

const (
	WeatherClear Weather = iota
	WeatherRain
	WeatherFog
)

// ParseWeather maps a config value to a Weather. Unknown values are clear.
func ParseWeather(s string) Weather {
	switch s {
	case "rain":
		return WeatherRain
	case "fog":
		return WeatherFog
	default:
		return WeatherClear
	}
}

func (w Weather) String() string {
	switch w {
	case WeatherRain:
		return "rain"
	case WeatherFog:
		return "fog"
	default:
		return "clear"
	}
}

// Grip is the steering multiplier for the weather.
func (w Weather) Grip(rainGrip float64) float64 {
	if w == WeatherRain {
		return rainGrip
	}
	return 1
}

// fogLine is the fraction of the road height hidden by fog, from the top.
const fogLine = 0.35

// updateWeather spawns rain streaks over the road.
func updateWeather(s *State, rng *rand.Rand, w Weather) {
	if w != WeatherRain || rng.Float64() > 0.5 {
		return
	}
	road := s.Config().Road
	s.AddParticle(Particle{
		X:       rng.Float64() * road.Width,
		Y:       -10,
		VX:      -0.5,
		VY:      s.Speed()*1.5 + 6,
		MaxLife: int(road.Height/(s.Speed()*1.5+6)) + 1,
		Color:   core.ColorBlue,
		Size:    1,
	})
}
