// internal/component/player.go
package component

// Player is the shared defender resource pool: resources buy cards,
// health drops when enemies leak through, the wave counter only grows.
type Player struct {
	Resources  int
	Health     int
	WaveNumber int
}
