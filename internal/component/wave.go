// internal/component/wave.go
package component

import "bastion-defense/internal/defs"

// SpawnEntry is one pending enemy of the active wave.
type SpawnEntry struct {
	Enemy  defs.EnemyType
	Offset float64 // секунд от активации волны
}

// Spawner is the persistent state of the wave spawner.
type Spawner struct {
	ActiveWave int          // номер волны, очередь которой уже развёрнута; 0, если ещё ни одной
	Queue      []SpawnEntry // отсортирована по Offset
	Elapsed    float64
}
