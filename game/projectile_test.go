package game

import "testing"

func TestIntegrateMovesEveryOwner(t *testing.T) {
	projectiles := []Projectile{
		NewProjectile(Vec2{0, 0}, Vec2{1, 0}, 700, PlayerOwned),
		NewProjectile(Vec2{0, 0}, Vec2{0, -1}, 500, HostileOwned),
	}
	IntegrateProjectiles(projectiles, 0.5)

	if projectiles[0].Pos != (Vec2{350, 0}) {
		t.Fatalf("player projectile at %v", projectiles[0].Pos)
	}
	if projectiles[1].Pos != (Vec2{0, -250}) {
		t.Fatalf("hostile projectile at %v", projectiles[1].Pos)
	}
}

func TestIntegrateSkipsDeadProjectiles(t *testing.T) {
	projectiles := []Projectile{NewProjectile(Vec2{5, 5}, Vec2{1, 0}, 100, PlayerOwned)}
	projectiles[0].Live = false
	IntegrateProjectiles(projectiles, 1)
	if projectiles[0].Pos != (Vec2{5, 5}) {
		t.Fatalf("dead projectile moved to %v", projectiles[0].Pos)
	}
}

func TestExpiredUsesCleanupRange(t *testing.T) {
	center := Vec2{632, 332}
	cases := []struct {
		pos  Vec2
		want bool
	}{
		{Vec2{632 + 1999, 332}, false},
		{Vec2{632 + 2000, 332}, false},
		{Vec2{632 + 2000.5, 332}, true},
		{Vec2{632, 332 - 2500}, true},
	}
	for _, tc := range cases {
		p := NewProjectile(tc.pos, Vec2{1, 0}, 0, HostileOwned)
		if got := p.Expired(center); got != tc.want {
			t.Fatalf("Expired at %v = %v, want %v", tc.pos, got, tc.want)
		}
	}
}
