package brickstorm

// AdvanceLevel moves to the next level: a new layout, a single serve ball,
// and lives kept within the cap.
func (s *Session) AdvanceLevel() {
	s.Level++
	s.GenerateLevel()

	s.Balls = nil
	s.spawnServeBall()

	s.Lives = min(s.Settings.MaxLives, s.Lives)
	s.cue(CueLevel)
	s.emit(EventLevelAdvanced)
}
