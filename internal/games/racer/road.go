package racer

// updateRoad scrolls the lane markers, wrapping each one back above the
// top once it leaves the bottom.
func updateRoad(s *State) {
	height := s.Config().Road.Height
	v := effectiveSpeed(s)
	for i, line := range s.RoadLines() {
		y := line.Y + v
		if y > height {
			y = -line.Height
		}
		s.SetRoadLine(i, y)
	}
}
