package game

import (
	"math/rand"
	"reflect"
	"testing"
	"time"
)

const frame = 16 * time.Millisecond

func newTestGame(seed int64, store ScoreStore) *Game {
	cfg := DefaultConfig()
	cfg.Seed = seed
	return NewGame(cfg, WithScoreStore(store))
}

func startRun(t *testing.T, g *Game) {
	t.Helper()
	g.HandleEvent(KeyDown(ActionConfirm))
	if g.Mode() != ModePlaying {
		t.Fatalf("mode = %s after confirming Start", g.Mode())
	}
}

func TestClampStep(t *testing.T) {
	limit := 33 * time.Millisecond
	cases := []struct {
		raw, want time.Duration
	}{
		{-5 * time.Millisecond, 0},
		{0, 0},
		{16 * time.Millisecond, 16 * time.Millisecond},
		{33 * time.Millisecond, 33 * time.Millisecond},
		{2 * time.Second, 33 * time.Millisecond},
	}
	for _, tc := range cases {
		if got := ClampStep(tc.raw, limit); got != tc.want {
			t.Fatalf("ClampStep(%v) = %v, want %v", tc.raw, got, tc.want)
		}
	}
}

func TestMenuNavigationWraps(t *testing.T) {
	g := newTestGame(1, nil)
	steps := []struct {
		action Action
		want   int
	}{
		{ActionMenuDown, MenuScores},
		{ActionMenuDown, MenuStart},
		{ActionMenuUp, MenuScores},
		{ActionMenuUp, MenuStart},
	}
	for _, st := range steps {
		g.HandleEvent(KeyDown(st.action))
		if g.session.SelectedMenu != st.want {
			t.Fatalf("after %s selection = %d, want %d", st.action, g.session.SelectedMenu, st.want)
		}
	}
}

func TestNonPlayingModesDoNotSimulate(t *testing.T) {
	g := newTestGame(1, nil)
	g.HandleEvent(FireRequested(10, 10))
	report := g.Tick(frame)
	if !reflect.DeepEqual(report, Report{}) || g.session.Elapsed != 0 || len(g.session.World.Projectiles) != 0 {
		t.Fatal("menu tick changed the simulation")
	}
}

func TestStartResetsSession(t *testing.T) {
	g := newTestGame(1, nil)
	g.session.Score = 900
	g.session.Elapsed = time.Minute
	g.session.World.Projectiles = []Projectile{NewProjectile(Vec2{}, Vec2{1, 0}, 1, PlayerOwned)}

	startRun(t, g)

	s := g.session
	if s.Score != 0 || s.Elapsed != 0 || s.LastSpawn != 0 {
		t.Fatalf("score=%d elapsed=%v lastSpawn=%v", s.Score, s.Elapsed, s.LastSpawn)
	}
	if len(s.World.Projectiles) != 0 {
		t.Fatal("projectiles survived the reset")
	}
	if len(s.World.Hostiles) != 1 {
		t.Fatalf("run started with %d hostiles, want 1", len(s.World.Hostiles))
	}
	if s.World.Player.Health != 1 || s.World.Player.Pos != g.config.PlayerStart {
		t.Fatalf("player not reset: %+v", s.World.Player)
	}
}

func TestViewScoresRoundTrip(t *testing.T) {
	store := &MemoryScores{}
	for _, v := range []int{12, 80, 5} {
		store.Save(v)
	}
	g := newTestGame(1, store)

	g.HandleEvent(KeyDown(ActionMenuDown))
	g.HandleEvent(KeyDown(ActionConfirm))
	if g.Mode() != ModeViewScores {
		t.Fatalf("mode = %s, want view-scores", g.Mode())
	}
	if want := []int{80, 12, 5}; !reflect.DeepEqual(g.Snapshot().TopScores, want) {
		t.Fatalf("top scores = %v, want %v", g.Snapshot().TopScores, want)
	}

	g.HandleEvent(KeyDown(ActionRestart))
	if g.Mode() != ModeViewScores {
		t.Fatal("restart should be ignored outside game over")
	}
	g.HandleEvent(KeyDown(ActionConfirm))
	if g.Mode() != ModeMenu {
		t.Fatalf("mode = %s, want menu", g.Mode())
	}
}

func TestDepletionPersistsAndEndsRun(t *testing.T) {
	store := &MemoryScores{}
	g := newTestGame(1, store)
	startRun(t, g)

	// Survive a while, out of reach of the seeded hostile's fire
	g.session.World.Hostiles = nil
	for i := 0; i < 200; i++ {
		g.Tick(frame)
	}

	w := &g.session.World
	w.Player.Health = 0.05
	w.Projectiles = append(w.Projectiles, NewProjectile(w.Player.Pos, Vec2{1, 0}, 0, HostileOwned))
	report := g.Tick(frame)

	if !report.Depleted || g.Mode() != ModeGameOver {
		t.Fatalf("depleted=%v mode=%s", report.Depleted, g.Mode())
	}
	elapsed := 201 * frame
	want := int(elapsed / time.Second)
	if got := store.Records(); !reflect.DeepEqual(got, []int{want}) {
		t.Fatalf("saved %v, want [%d]", got, want)
	}
	if snap := g.Snapshot(); snap.LastSurvival != want || !reflect.DeepEqual(snap.TopScores, []int{want}) {
		t.Fatalf("snapshot survival=%d top=%v", snap.LastSurvival, snap.TopScores)
	}
	if g.Snapshot().Player.Health != 0 {
		t.Fatal("health should be clamped to 0")
	}

	// Game over freezes the world
	before := g.Snapshot()
	g.Tick(frame)
	if !reflect.DeepEqual(before, g.Snapshot()) {
		t.Fatal("game over tick changed state")
	}
}

func TestRestartReturnsToMenu(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	g.session.World.Player.Health = 0
	g.session.World.Hostiles = nil
	g.session.World.Projectiles = append(g.session.World.Projectiles,
		NewProjectile(g.session.World.Player.Pos, Vec2{1, 0}, 0, HostileOwned))
	g.Tick(frame)
	if g.Mode() != ModeGameOver {
		t.Fatalf("mode = %s, want game-over", g.Mode())
	}

	g.HandleEvent(KeyDown(ActionConfirm))
	if g.Mode() != ModeGameOver {
		t.Fatal("confirm should be ignored on the game over screen")
	}
	g.session.SelectedMenu = MenuScores
	g.HandleEvent(KeyDown(ActionRestart))
	if g.Mode() != ModeMenu || g.session.SelectedMenu != MenuStart {
		t.Fatalf("mode=%s selection=%d", g.Mode(), g.session.SelectedMenu)
	}
	if g.session.Score != 0 || g.session.World.Player.Health != 1 {
		t.Fatal("restart did not reset the session")
	}
}

func TestQuitFromAnyMode(t *testing.T) {
	for _, m := range []Mode{ModeMenu, ModePlaying, ModeGameOver, ModeViewScores} {
		g := newTestGame(1, nil)
		g.session.Mode = m
		g.HandleEvent(KeyDown(ActionQuit))
		if !g.Quit() {
			t.Fatalf("quit ignored in %s", m)
		}
	}
}

func TestFireRequestThroughTick(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	g.session.World.Hostiles = nil

	start := g.session.World.Player.Pos
	g.HandleEvent(FireRequested(start.X+100, start.Y))
	report := g.Tick(frame)
	if !report.PlayerFired {
		t.Fatal("fire request not honoured")
	}
	g.HandleEvent(FireRequested(start.X+100, start.Y))
	if report = g.Tick(frame); report.PlayerFired {
		t.Fatal("second shot fired inside the cooldown")
	}
	if n := len(g.session.World.Projectiles); n != 1 {
		t.Fatalf("%d projectiles, want 1", n)
	}

	p := g.session.World.Projectiles[0]
	if p.Owner != PlayerOwned || p.Dir != (Vec2{1, 0}) {
		t.Fatalf("unexpected projectile %+v", p)
	}
	wantX := start.X + PlayerBlaster.ProjectileSpeed*frame.Seconds()*2
	if !near(p.Pos.X, wantX, 1e-9) {
		t.Fatalf("projectile x = %f, want %f", p.Pos.X, wantX)
	}
}

func TestHeldKeysMovePlayer(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	g.session.World.Hostiles = nil
	start := g.session.World.Player.Pos

	g.HandleEvent(KeyDown(ActionMoveUp))
	g.HandleEvent(KeyDown(ActionMoveRight))
	g.Tick(frame)
	moved := g.session.World.Player.Pos.Sub(start)
	if !near(moved.Len(), PlayerSpeed*frame.Seconds(), 1e-9) || moved.X <= 0 || moved.Y >= 0 {
		t.Fatalf("diagonal move %v", moved)
	}

	g.HandleEvent(KeyUp(ActionMoveUp))
	g.HandleEvent(KeyUp(ActionMoveRight))
	before := g.session.World.Player.Pos
	g.Tick(frame)
	if g.session.World.Player.Pos != before {
		t.Fatal("player kept moving after keys were released")
	}
}

func TestPointerSetsFacing(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	p := g.session.World.Player.Pos
	g.HandleEvent(PointerMoved(p.X, p.Y+100))
	g.Tick(frame)
	if !near(g.session.World.Player.Facing, 1.5707963267948966, 1e-9) {
		t.Fatalf("facing = %f", g.session.World.Player.Facing)
	}
}

// drive runs a seeded pseudo-random input script through a game
func drive(g *Game, script *rand.Rand, ticks int, check func(tick int)) {
	moves := []Action{ActionMoveUp, ActionMoveDown, ActionMoveLeft, ActionMoveRight}
	for i := 0; i < ticks; i++ {
		switch g.Mode() {
		case ModeMenu:
			g.HandleEvent(KeyDown(ActionConfirm))
		case ModeGameOver:
			g.HandleEvent(KeyDown(ActionRestart))
		}

		a := moves[script.Intn(len(moves))]
		if script.Intn(2) == 0 {
			g.HandleEvent(KeyDown(a))
		} else {
			g.HandleEvent(KeyUp(a))
		}
		x, y := script.Float64()*1280, script.Float64()*720
		g.HandleEvent(PointerMoved(x, y))
		if script.Intn(3) == 0 {
			g.HandleEvent(FireRequested(x, y))
		}

		// Mix in clamped stalls
		dt := frame
		if script.Intn(10) == 0 {
			dt = ClampStep(time.Duration(script.Intn(500))*time.Millisecond, g.config.MaxStep)
		}
		g.Tick(dt)
		if check != nil {
			check(i)
		}
	}
}

func TestRunsAreDeterministic(t *testing.T) {
	run := func() (Snapshot, []int) {
		store := &MemoryScores{}
		g := newTestGame(2024, store)
		drive(g, rand.New(rand.NewSource(5)), 5000, nil)
		return g.Snapshot(), store.Records()
	}
	snapA, savedA := run()
	snapB, savedB := run()

	if !reflect.DeepEqual(snapA, snapB) {
		t.Fatalf("final snapshots differ: score %d vs %d", snapA.Score, snapB.Score)
	}
	if !reflect.DeepEqual(savedA, savedB) {
		t.Fatalf("saved scores differ: %v vs %v", savedA, savedB)
	}
}

func TestRandomPlayKeepsStateConsistent(t *testing.T) {
	g := newTestGame(99, nil)
	lastScore := 0
	drive(g, rand.New(rand.NewSource(11)), 8000, func(tick int) {
		snap := g.Snapshot()
		if h := snap.Player.Health; h < 0 || h > 1 {
			t.Fatalf("tick %d: health %f outside [0,1]", tick, h)
		}
		if snap.Mode != ModePlaying {
			lastScore = 0
			return
		}
		for _, h := range snap.Hostiles {
			if h.Life <= 0 {
				t.Fatalf("tick %d: dead hostile still listed (life %f)", tick, h.Life)
			}
			if !snap.Bounds.Contains(h.Pos, BoundsMargin) {
				t.Fatalf("tick %d: hostile outside the margin at %v", tick, h.Pos)
			}
			if h.Stats != GetVariantStats(h.Variant()) {
				t.Fatalf("tick %d: variant stats changed", tick)
			}
		}
		for _, p := range snap.Projectiles {
			if !p.Live || p.Expired(snap.Player.Pos) {
				t.Fatalf("tick %d: stale projectile %+v", tick, p)
			}
		}
		if snap.Score < lastScore || (snap.Score-lastScore)%KillBonus != 0 {
			t.Fatalf("tick %d: score went from %d to %d", tick, lastScore, snap.Score)
		}
		lastScore = snap.Score
	})
}

func TestSnapshotIsACopy(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	snap := g.Snapshot()
	snap.Hostiles[0].Life = -5
	snap.Player.Health = 0
	if g.session.World.Hostiles[0].Life <= 0 || g.session.World.Player.Health != 1 {
		t.Fatal("snapshot aliases session state")
	}
}

func TestFormatClock(t *testing.T) {
	cases := map[int]string{0: "00:00", 7: "00:07", 75: "01:15", 3599: "59:59", 3600: "60:00", -4: "00:00"}
	for in, want := range cases {
		if got := FormatClock(in); got != want {
			t.Fatalf("FormatClock(%d) = %q, want %q", in, got, want)
		}
	}
}

func TestTopScores(t *testing.T) {
	in := []int{4, 9, 1, 9, 7, 3, 8}
	got := TopScores(in)
	if want := []int{9, 9, 8, 7, 4}; !reflect.DeepEqual(got, want) {
		t.Fatalf("TopScores = %v, want %v", got, want)
	}
	if in[0] != 4 {
		t.Fatal("TopScores mutated its input")
	}
}

func TestTickClampsOversizedStep(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	h := g.session.World.Hostiles[0]
	start := h.Pos

	g.Tick(10 * time.Second)

	if g.session.Elapsed != g.config.MaxStep {
		t.Fatalf("elapsed = %v after a 10s step, want %v", g.session.Elapsed, g.config.MaxStep)
	}
	moved := g.session.World.Hostiles[0].Pos.DistanceTo(start)
	orbitReach := OrbitPull * (h.OrbitRadius + start.DistanceTo(g.session.World.Player.Pos))
	if limit := h.Speed*g.config.MaxStep.Seconds()*(1+OrbitPull) + orbitReach; moved > limit {
		t.Fatalf("hostile moved %f in one step, want at most %f", moved, limit)
	}
}

func TestNegativeStepDoesNotRewind(t *testing.T) {
	g := newTestGame(1, nil)
	startRun(t, g)
	g.Tick(frame)
	g.Tick(-time.Second)
	if g.session.Elapsed != frame {
		t.Fatalf("elapsed = %v, want %v", g.session.Elapsed, frame)
	}
}
