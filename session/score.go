package session

// Scoreboard keeps the score of the last finished session and the best score
// of this process. Nothing is persisted.
type Scoreboard struct {
	Score     int64
	HighScore int64
}

// Record overwrites Score with the distance reached and raises HighScore if
// it was beaten.
func (s *Scoreboard) Record(distance int64) {
	s.Score = distance
	s.HighScore = max(s.HighScore, s.Score)
}
