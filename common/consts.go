package common

import "time"

const (
	BaseWidth  = 640
	BaseHeight = 360

	TPS = 60
)

// TickDuration is the simulated time of one update at TPS.
const TickDuration = time.Second / TPS
