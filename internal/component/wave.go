// internal/component/wave.go
package component

// WaveSession is the spawn bookkeeping for one combat phase. It exists
// only while the phase is Wave and is discarded on exit.
type WaveSession struct {
	Number        int
	TotalEnemies  int
	Spawned       int
	SpawnTimer    float64
	SpawnInterval float64
	EnemyID       string
}
