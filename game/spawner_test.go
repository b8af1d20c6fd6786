package game

import (
	"reflect"
	"testing"
	"time"
)

func newTestSpawner(seed int64) *Spawner {
	return NewSpawner(NewRNG(seed), DefaultConfig())
}

func TestSpawnerFiresOncePerInterval(t *testing.T) {
	sp := newTestSpawner(1)
	s := newTestSession(Vec2{632, 332})

	const step = 16 * time.Millisecond
	var spawnTimes []time.Duration
	for i := 0; i < 2000; i++ {
		s.Elapsed += step
		if sp.Update(s) {
			spawnTimes = append(spawnTimes, s.Elapsed)
			if s.LastSpawn != s.Elapsed {
				t.Fatalf("last spawn %v not reset to now %v", s.LastSpawn, s.Elapsed)
			}
		}
	}

	interval := DefaultConfig().SpawnInterval
	total := time.Duration(2000) * step
	if want := int(total / interval); len(spawnTimes) < want-1 || len(spawnTimes) > want {
		t.Fatalf("%d spawns over %v, want about %d", len(spawnTimes), total, want)
	}
	prev := time.Duration(0)
	for _, at := range spawnTimes {
		gap := at - prev
		if gap < interval {
			t.Fatalf("spawned twice within one interval: gap %v", gap)
		}
		if gap >= interval+step {
			t.Fatalf("spawn late by more than one step: gap %v", gap)
		}
		prev = at
	}
	if len(s.World.Hostiles) != len(spawnTimes) {
		t.Fatalf("%d hostiles for %d spawns", len(s.World.Hostiles), len(spawnTimes))
	}
}

func TestSpawnerBoundaries(t *testing.T) {
	sp := newTestSpawner(1)
	s := newTestSession(Vec2{632, 332})

	s.Elapsed = 2999 * time.Millisecond
	if sp.Update(s) {
		t.Fatal("spawned before the interval elapsed")
	}
	s.Elapsed = 3000 * time.Millisecond
	if !sp.Update(s) {
		t.Fatal("no spawn at exactly one interval")
	}
	if sp.Update(s) {
		t.Fatal("spawned twice for the same interval")
	}
	s.Elapsed = 5999 * time.Millisecond
	if sp.Update(s) {
		t.Fatal("spawned early in the second interval")
	}
	s.Elapsed = 6000 * time.Millisecond
	if !sp.Update(s) {
		t.Fatal("no spawn after the second interval")
	}
}

func TestSpawnerSingleStallSpawnsOnce(t *testing.T) {
	sp := newTestSpawner(1)
	s := newTestSession(Vec2{632, 332})
	s.Elapsed = 30 * time.Second
	sp.Update(s)
	if len(s.World.Hostiles) != 1 {
		t.Fatalf("a long gap produced %d hostiles, want 1", len(s.World.Hostiles))
	}
}

func TestSeedBypassesInterval(t *testing.T) {
	sp := newTestSpawner(1)
	s := newTestSession(Vec2{632, 332})
	sp.Seed(s)
	if len(s.World.Hostiles) != 1 || s.LastSpawn != 0 {
		t.Fatalf("seed: hostiles=%d lastSpawn=%v", len(s.World.Hostiles), s.LastSpawn)
	}
}

func TestSpawnDrawsWithinRanges(t *testing.T) {
	sp := newTestSpawner(42)
	cfg := DefaultConfig()
	r := cfg.SpawnRanges
	seen := map[Variant]int{}
	for i := 0; i < 2000; i++ {
		h := sp.Next()
		base := h.Speed / h.Stats.SpeedScale
		switch {
		case h.Pos.X < 0 || h.Pos.X > cfg.WorldWidth || h.Pos.Y < 0 || h.Pos.Y > cfg.WorldHeight:
			t.Fatalf("position %v outside the world", h.Pos)
		case base < r.Speed.Min-eps || base > r.Speed.Max+eps:
			t.Fatalf("speed %f outside range", base)
		case h.OrbitRadius < r.OrbitRadius.Min || h.OrbitRadius > r.OrbitRadius.Max:
			t.Fatalf("orbit radius %f outside range", h.OrbitRadius)
		case h.OrbitSpeed < r.OrbitSpeed.Min || h.OrbitSpeed > r.OrbitSpeed.Max:
			t.Fatalf("orbit speed %f outside range", h.OrbitSpeed)
		}
		seen[h.Variant()]++
	}
	for _, v := range []Variant{VariantBalanced, VariantFast, VariantTank} {
		if seen[v] == 0 {
			t.Fatalf("variant %s never spawned", v)
		}
	}
	if seen[VariantBalanced] < seen[VariantTank] {
		t.Fatalf("weights ignored: %v", seen)
	}
}

func TestSpawnSequenceIsSeeded(t *testing.T) {
	a, b, c := newTestSpawner(7), newTestSpawner(7), newTestSpawner(8)
	var sa, sb, sc []Hostile
	for i := 0; i < 20; i++ {
		sa = append(sa, a.Next())
		sb = append(sb, b.Next())
		sc = append(sc, c.Next())
	}
	if !reflect.DeepEqual(sa, sb) {
		t.Fatal("same seed produced different hostiles")
	}
	if reflect.DeepEqual(sa, sc) {
		t.Fatal("different seeds produced identical hostiles")
	}
}

func TestPickVariant(t *testing.T) {
	weights := DefaultVariantWeights()
	want := []Variant{
		VariantBalanced, VariantBalanced, VariantBalanced, VariantBalanced, VariantBalanced, VariantBalanced,
		VariantFast, VariantFast, VariantFast,
		VariantTank, VariantTank,
	}
	if totalWeight(weights) != len(want) {
		t.Fatalf("total weight %d, want %d", totalWeight(weights), len(want))
	}
	for roll, v := range want {
		if got := pickVariant(weights, roll); got != v {
			t.Fatalf("roll %d picked %s, want %s", roll, got, v)
		}
	}
}

func TestSpawnerFallsBackToDefaultWeights(t *testing.T) {
	cfg := DefaultConfig()
	cfg.VariantWeights = nil
	sp := NewSpawner(NewRNG(1), cfg)
	if sp.total != totalWeight(DefaultVariantWeights()) {
		t.Fatalf("total = %d", sp.total)
	}
}

func TestRNGKeepsSeed(t *testing.T) {
	if got := NewRNG(77).Seed(); got != 77 {
		t.Fatalf("seed = %d, want 77", got)
	}
	g := NewGame(Config{Seed: 5, SpawnInterval: time.Second, SpawnRanges: DefaultSpawnRanges()})
	if g.rng.Seed() != 5 {
		t.Fatalf("game rng seed = %d, want 5", g.rng.Seed())
	}
}
