package config

// PhysicsConfig is the root config for physics.json. All speeds are in
// pixels per frame and all durations in frames; the simulation runs at a
// fixed 60 ticks per second.
type PhysicsConfig struct {
	Display DisplayConfig `json:"display"`
	World   WorldConfig   `json:"world"`
	Move    MoveConfig    `json:"movement"`
	Jump    JumpConfig    `json:"jump"`
	Damage  DamageConfig  `json:"damage"`
	Score   ScoreConfig   `json:"score"`
	Enemies EnemyConfig   `json:"enemies"`
	Session SessionConfig `json:"session"`
}

type DisplayConfig struct {
	ScreenWidth  int `json:"screenWidth"`
	ScreenHeight int `json:"screenHeight"`
	Scale        int `json:"scale"`
	Framerate    int `json:"framerate"`
}

type WorldConfig struct {
	Gravity      float64 `json:"gravity"`
	MaxFallSpeed float64 `json:"maxFallSpeed"`
}

type MoveConfig struct {
	MaxSpeed    float64 `json:"maxSpeed"`
	Friction    float64 `json:"friction"`
	StopEpsilon float64 `json:"stopEpsilon"`
}

type JumpConfig struct {
	Velocity         float64 `json:"velocity"`
	ReleaseDamp      float64 `json:"releaseDamp"`
	ReleaseThreshold float64 `json:"releaseThreshold"`
	CoyoteFrames     int     `json:"coyoteFrames"`
	BufferFrames     int     `json:"bufferFrames"`
}

type DamageConfig struct {
	IframeFrames int     `json:"iframeFrames"`
	KnockbackVY  float64 `json:"knockbackVY"`
	StompBounce  float64 `json:"stompBounce"`
	StompDepth   float64 `json:"stompDepth"`
}

type ScoreConfig struct {
	Coin  int `json:"coin"`
	Stomp int `json:"stomp"`
}

type EnemyConfig struct {
	WalkerSpeed      float64 `json:"walkerSpeed"`
	JumperInterval   int     `json:"jumperInterval"`
	JumperImpulse    float64 `json:"jumperImpulse"`
	ShooterInterval  int     `json:"shooterInterval"`
	ProjectileSpeed  float64 `json:"projectileSpeed"`
	ProjectileMargin float64 `json:"projectileMargin"`
}

type SessionConfig struct {
	StartLives       int     `json:"startLives"`
	DeathPauseFrames int     `json:"deathPauseFrames"`
	FallPauseFrames  int     `json:"fallPauseFrames"`
	WinPauseFrames   int     `json:"winPauseFrames"`
	FallMargin       float64 `json:"fallMargin"`
	CameraFactor     float64 `json:"cameraFactor"`
	CameraLead       float64 `json:"cameraLead"`
}

// LevelConfig is the root config for a YAML level file. Tile rows are
// strings of single-character cells resolved through the legend.
type LevelConfig struct {
	Name     string              `yaml:"name"`
	TileSize int                 `yaml:"tileSize"`
	Legend   map[string]string   `yaml:"legend"`
	Spawn    TilePositionConfig  `yaml:"spawn"`
	Rows     []string            `yaml:"rows"`
	Enemies  []EnemySpawnConfig  `yaml:"enemies"`
}

type TilePositionConfig struct {
	Col int `yaml:"col"`
	Row int `yaml:"row"`
}

type EnemySpawnConfig struct {
	Kind  string  `yaml:"kind"`
	Col   int     `yaml:"col"`
	Row   int     `yaml:"row"`
	Range float64 `yaml:"range"`
	Dir   int     `yaml:"dir"`
}

// ManifestConfig is the root config for levels/manifest.yaml. Level order
// in the slice is level order in the game.
type ManifestConfig struct {
	Levels []string `yaml:"levels"`
}
