package brickstorm

// Autopilot returns input that keeps the paddle under the lowest ball and
// fires whenever lasers are armed. Used by the headless simulate command.
func Autopilot(s *Session) Input {
	in := Input{Fire: true}
	lowest := -1.0
	for _, b := range s.Balls {
		if b.Y > lowest {
			lowest = b.Y
			in.HasPointer = true
			in.PointerX = b.X
		}
	}
	return in
}
