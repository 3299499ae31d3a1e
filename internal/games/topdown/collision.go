package topdown

// resolveHits removes every projectile that hit an enemy together with the
// enemy it hit. Projectiles are checked in spawn order against enemies in
// collection order; the first live enemy hit wins, so a projectile kills at
// most one enemy and an enemy absorbs at most one projectile per tick.
// It returns the compacted slices and the number of kills.
func resolveHits(shots []*Projectile, enemies []*Entity) ([]*Projectile, []*Entity, int) {
	if len(shots) == 0 || len(enemies) == 0 {
		return shots, enemies, 0
	}

	deadShots := make([]bool, len(shots))
	deadEnemies := make([]bool, len(enemies))
	kills := 0

	for i, p := range shots {
		for j, e := range enemies {
			if deadEnemies[j] {
				continue
			}
			if p.CollidesWith(e) {
				deadShots[i] = true
				deadEnemies[j] = true
				kills++
				break
			}
		}
	}

	if kills == 0 {
		return shots, enemies, 0
	}
	return compact(shots, deadShots), compact(enemies, deadEnemies), kills
}

// compact keeps the unmarked items in order, reusing the backing array.
func compact[T any](items []T, dead []bool) []T {
	out := items[:0]
	for i, it := range items {
		if !dead[i] {
			out = append(out, it)
		}
	}
	// Release dropped pointers
	clear(items[len(out):])
	return out
}

// playerHit reports whether the player's rect intersects any enemy rect.
func playerHit(player *Entity, enemies []*Entity) bool {
	r := player.Rect()
	for _, e := range enemies {
		if r.Intersects(e.Rect()) {
			return true
		}
	}
	return false
}
