package game

// Gameplay constants shared by the controller and the resolver
const (
	PlayerSize       = 64.0  // Player bounding box edge
	PlayerSpeed      = 500.0 // Axial movement speed in units/s
	HostileSize      = 64.0  // Hostile sprite edge, only used for drawing
	HostileHitRadius = 64.0  // Player projectile vs hostile center
	PlayerHitRadius  = 64.0  // Hostile projectile vs player center
	HitDamage        = 0.1   // Life/health removed per hit
	KillBonus        = 100   // Score awarded per destroyed hostile
	RegenRate        = 0.05  // Player health regained per second
	CleanupRange     = 2000.0
	BoundsMargin     = 100.0 // Hostiles further outside the world than this are dropped
	CloseRange       = 50.0  // Hostiles stop closing in below this distance
	OrbitPull        = 0.05  // Fraction of the gap to the orbit target closed per tick

	diagonalScale = 0.7071067811865476 // 1/√2
	lifeEpsilon   = 1e-9
)
