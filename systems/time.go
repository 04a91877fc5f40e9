package systems

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// TickDuration is the simulated time covered by one Update.
func TickDuration() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = ebiten.DefaultTPS
	}
	return time.Second / time.Duration(tps)
}
