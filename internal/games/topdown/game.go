package topdown

import (
	"fmt"
	"image"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-topdown/internal/config"
	"github.com/vovakirdan/tui-topdown/internal/core"
	"github.com/vovakirdan/tui-topdown/internal/sprite"
)

// Banner texts for the non-playing states.
const (
	BannerStart    = "Click to start"
	BannerGameOver = "GAME OVER"
	BannerVictory  = "YOU WIN"
)

// playerSpawn is the top-left corner of the player sprite at reset.
var playerSpawn = core.V(100, 100)

// enemySpawns are the top-left corners of the enemy sprites at reset.
var enemySpawns = []core.Vec2{
	core.V(200, 150),
	core.V(300, 250),
	core.V(620, 120),
	core.V(560, 430),
}

// Game is one play session: the player, the enemies, the live projectiles
// and the state machine that ties them together.
type Game struct {
	cfg    config.Config
	colors config.Colors
	logger *log.Logger

	// Scaled and tinted animation frames
	playerFrames []image.Image
	enemyFrames  []image.Image

	runtime core.RuntimeConfig
	rng     *rand.Rand

	state   State
	player  *Entity
	enemies []*Entity
	shots   []*Projectile
	tick    uint64
	kills   int
}

// New loads the sprite frames from src and returns a session ready for Reset.
// A nil logger discards output.
func New(cfg config.Config, src sprite.Source, logger *log.Logger) (*Game, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("topdown: %w", err)
	}
	colors, err := cfg.Colors()
	if err != nil {
		return nil, fmt.Errorf("topdown: %w", err)
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	g := &Game{cfg: cfg, colors: colors, logger: logger}

	spec := sprite.FrameSpec{
		Name:  cfg.Sprite.Asset,
		Count: cfg.Sprite.Frames,
		Size:  cfg.Sprite.Size,
		Scale: cfg.Sprite.Scale,
	}

	spec.Tint = colors.Player
	if g.playerFrames, err = sprite.LoadFrames(src, spec); err != nil {
		return nil, fmt.Errorf("topdown: player frames: %w", err)
	}
	spec.Tint = colors.Enemy
	if g.enemyFrames, err = sprite.LoadFrames(src, spec); err != nil {
		return nil, fmt.Errorf("topdown: enemy frames: %w", err)
	}

	logger.Debug("sprites loaded", "asset", spec.Name, "frames", spec.Count,
		"size", spec.Size*spec.Scale)
	return g, nil
}

// Reset starts a fresh session in the Start state.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	seed := uint64(runtime.Seed) //#nosec G115 -- any bit pattern is a valid seed
	g.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	anim := g.cfg.Sprite.AnimationSpeed
	g.player = NewEntity(KindPlayer, playerSpawn.X, playerSpawn.Y, g.cfg.Player.Speed, g.playerFrames, anim)

	g.enemies = make([]*Entity, 0, len(enemySpawns))
	lo, hi := g.cfg.Enemy.MinSpeed, g.cfg.Enemy.MaxSpeed
	for _, p := range enemySpawns {
		speed := lo + g.rng.Float64()*(hi-lo)
		g.enemies = append(g.enemies, NewEntity(KindEnemy, p.X, p.Y, speed, g.enemyFrames, anim))
	}

	g.shots = nil
	g.tick = 0
	g.kills = 0
	g.state = StateStart
	g.logger.Info("session reset", "seed", runtime.Seed, "enemies", len(g.enemies))
}

// Step advances the session by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if in.Has(core.ActionFire) {
		g.click(in)
	}
	if g.state == StatePlaying {
		g.simulate(in)
	}

	return core.StepResult{State: g.gameState()}
}

// click applies a primary button press to the current state.
func (g *Game) click(in core.InputFrame) {
	switch g.state {
	case StateStart:
		g.setState(StatePlaying)
	case StatePlaying:
		if in.HasPointer {
			g.fire(in.Pointer)
		}
	}
}

// fire spawns a projectile from the player's center toward target.
func (g *Game) fire(target core.Vec2) {
	origin := g.player.Center()
	p, err := NewProjectile(origin, target, g.cfg.Projectile.Speed, g.cfg.Projectile.Radius, g.colors.Projectile)
	if err != nil {
		g.logger.Debug("shot ignored", "err", err)
		return
	}
	g.shots = append(g.shots, p)
	g.logger.Debug("shot fired", "from", origin, "to", target, "live", len(g.shots))
}

// simulate runs one Playing tick.
func (g *Game) simulate(in core.InputFrame) {
	g.player.MoveKeys(KeysFromInput(in))
	g.clampPlayer()

	// Contact is checked before shots resolve, so a kill this tick cannot
	// save a player who is already touching an enemy.
	if playerHit(g.player, g.enemies) {
		g.setState(StateGameOver)
		return
	}

	for _, p := range g.shots {
		p.Advance()
	}

	var kills int
	g.shots, g.enemies, kills = resolveHits(g.shots, g.enemies)
	if kills > 0 {
		g.kills += kills
		g.logger.Info("enemy destroyed", "count", kills, "remaining", len(g.enemies))
	}

	if g.cfg.Projectile.DespawnOffscreen {
		g.despawnOffscreen()
	}

	if len(g.enemies) == 0 {
		g.setState(StateVictory)
		return
	}

	target := g.player.Center()
	for _, e := range g.enemies {
		e.MoveTowards(target)
	}

	if in.HasPointer {
		g.player.FaceCursor(in.Pointer)
	}
}

// arena returns the play field in world pixels.
func (g *Game) arena() core.Rect {
	return core.NewRect(0, 0, float64(g.cfg.Display.Width), float64(g.cfg.Display.Height))
}

// clampPlayer keeps the player's center inside the arena.
func (g *Game) clampPlayer() {
	a := g.arena()
	c := g.player.Center()
	clamped := core.V(core.ClampF(c.X, a.X, a.Right()), core.ClampF(c.Y, a.Y, a.Bottom()))
	if clamped != c {
		g.player.SetCenter(clamped)
	}
}

// despawnOffscreen drops projectiles whose point has left the arena.
func (g *Game) despawnOffscreen() {
	a := g.arena()
	live := g.shots[:0]
	for _, p := range g.shots {
		if a.Contains(p.Position()) {
			live = append(live, p)
		}
	}
	clear(g.shots[len(live):])
	g.shots = live
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.logger.Info("state changed", "from", g.state, "to", s, "tick", g.tick, "kills", g.kills)
	g.state = s
}

func (g *Game) gameState() core.GameState {
	return core.GameState{
		Phase:       g.state.String(),
		Over:        g.state.Terminal(),
		Enemies:     len(g.enemies),
		Projectiles: len(g.shots),
	}
}

// Drawables returns everything rendered this frame in draw order: player,
// enemies, then projectiles.
func (g *Game) Drawables() []Drawable {
	out := make([]Drawable, 0, 1+len(g.enemies)+len(g.shots))
	out = append(out, g.player)
	for _, e := range g.enemies {
		out = append(out, e)
	}
	for _, p := range g.shots {
		out = append(out, p)
	}
	return out
}

// Render draws the current frame onto dst.
func (g *Game) Render(dst core.Surface) {
	dst.Clear(g.colors.Background)
	for _, d := range g.Drawables() {
		d.Draw(dst)
	}

	if banner := g.Banner(); banner != "" {
		w, h := dst.Size()
		dst.DrawTextCentered(banner, core.V(float64(w)/2, float64(h)/2), g.colors.Text)
	}
}

// Banner returns the text shown over the arena, or "" while playing.
func (g *Game) Banner() string {
	switch g.state {
	case StateStart:
		return BannerStart
	case StateGameOver:
		return BannerGameOver
	case StateVictory:
		return BannerVictory
	default:
		return ""
	}
}

// Title returns the window title.
func (g *Game) Title() string { return g.cfg.Display.Title }

// State returns the current game state.
func (g *Game) State() State { return g.state }

// Player returns the player entity.
func (g *Game) Player() *Entity { return g.player }

// Enemies returns the live enemies in collection order.
func (g *Game) Enemies() []*Entity { return g.enemies }

// Projectiles returns the live projectiles in spawn order.
func (g *Game) Projectiles() []*Projectile { return g.shots }

// Kills returns the number of enemies destroyed this session.
func (g *Game) Kills() int { return g.kills }

// Tick returns the number of steps since Reset.
func (g *Game) Tick() uint64 { return g.tick }
