package topdown

import "math"

// Snapshot is a flat copy of the simulation state for determinism checks.
// Uses primitive types only for stable comparison.
type Snapshot struct {
	Tick  uint64
	State string
	Kills int

	// Player: center X, Y and angle
	PlayerX, PlayerY, PlayerAngle float64
	PlayerFrame                   int

	// Each enemy is 4 floats: X, Y, Angle, Speed
	EnemyCount int
	EnemyData  []float64

	// Each projectile is 4 floats: X, Y, VX, VY
	ShotCount int
	ShotData  []float64
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	enemyData := make([]float64, 0, len(g.enemies)*4)
	for _, e := range g.enemies {
		c := e.Center()
		enemyData = append(enemyData, c.X, c.Y, e.Angle(), e.Speed())
	}

	shotData := make([]float64, 0, len(g.shots)*4)
	for _, p := range g.shots {
		shotData = append(shotData, p.pos.X, p.pos.Y, p.vel.X, p.vel.Y)
	}

	pc := g.player.Center()
	return Snapshot{
		Tick:        g.tick,
		State:       g.state.String(),
		Kills:       g.kills,
		PlayerX:     pc.X,
		PlayerY:     pc.Y,
		PlayerAngle: g.player.Angle(),
		PlayerFrame: g.player.Frame(),
		EnemyCount:  len(g.enemies),
		EnemyData:   enemyData,
		ShotCount:   len(g.shots),
		ShotData:    shotData,
	}
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (snap *Snapshot) Hash() uint64 {
	h := snap.Tick
	for _, r := range snap.State {
		h = h*31 + uint64(r) //#nosec G115 -- hash computation
	}
	h = h*31 + uint64(snap.Kills)       //#nosec G115 -- hash computation
	h = h*31 + uint64(snap.PlayerFrame) //#nosec G115 -- hash computation
	h = h*31 + math.Float64bits(snap.PlayerX)
	h = h*31 + math.Float64bits(snap.PlayerY)
	h = h*31 + math.Float64bits(snap.PlayerAngle)
	h = h*31 + uint64(snap.EnemyCount) //#nosec G115 -- hash computation
	for _, v := range snap.EnemyData {
		h = h*31 + math.Float64bits(v)
	}
	h = h*31 + uint64(snap.ShotCount) //#nosec G115 -- hash computation
	for _, v := range snap.ShotData {
		h = h*31 + math.Float64bits(v)
	}
	return h
}
