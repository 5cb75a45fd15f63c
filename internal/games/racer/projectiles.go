package racer

// updateProjectiles moves shots down the road and drops the ones that left it.
func updateProjectiles(s *State) {
	road := s.Config().Road
	slow := s.SlowMoFactor()
	for _, p := range s.Projectiles() {
		p.Y += p.Speed * slow
		if p.Y > road.Height+road.ExitMargin {
			s.RemoveProjectile(p.ID)
			continue
		}
		s.UpdateProjectile(p.ID, p)
	}
}
