package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/younwookim/hopper/internal/domain/entity"
)

func TestResolver_StompKillsAndBounces(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyWalker, 100, 100, 0, 1)
	p := createTestPlayer(100, 76) // bottom edge 8px into the enemy's top
	p.VY = 5

	out := r.Resolve(p, []*entity.Enemy{e})

	require.NotNil(t, out)
	assert.True(t, out.Stomped)
	assert.Same(t, e, out.Enemy)
	assert.False(t, e.Alive)
	assert.Equal(t, -9.0, p.VY)
	assert.Equal(t, 50, p.Score)
}

func TestResolver_SideContactIsHit(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyWalker, 100, 100, 0, 1)
	p := createTestPlayer(80, 100)
	p.VY = 0

	out := r.Resolve(p, []*entity.Enemy{e})

	require.NotNil(t, out)
	assert.False(t, out.Stomped)
	assert.False(t, out.Projectile)
	assert.True(t, e.Alive)
	assert.Equal(t, 0, p.Score)
}

func TestResolver_DeepFallingOverlapIsHit(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyWalker, 100, 100, 0, 1)
	p := createTestPlayer(100, 88) // bottom edge 20px deep, past the stomp window
	p.VY = 5

	out := r.Resolve(p, []*entity.Enemy{e})

	require.NotNil(t, out)
	assert.False(t, out.Stomped)
	assert.True(t, e.Alive)
}

func TestResolver_FirstSpawnedEnemyWins(t *testing.T) {
	r := NewResolver(createTestConfig())
	e1 := entity.NewEnemy(entity.EnemyWalker, 100, 100, 0, 1)
	e2 := entity.NewEnemy(entity.EnemyWalker, 104, 100, 0, 1)
	p := createTestPlayer(98, 100)

	out := r.Resolve(p, []*entity.Enemy{e1, e2})

	require.NotNil(t, out)
	assert.Same(t, e1, out.Enemy)
}

func TestResolver_NoOverlapNoOutcome(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyWalker, 300, 100, 0, 1)
	p := createTestPlayer(0, 0)

	assert.Nil(t, r.Resolve(p, []*entity.Enemy{e}))
}

func TestResolver_ExclusiveEdgesDoNotTouch(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyWalker, 100, 100, 0, 1)
	p := createTestPlayer(100-entity.PlayerWidth, 100) // flush against the left edge

	assert.Nil(t, r.Resolve(p, []*entity.Enemy{e}))
}

func TestResolver_InvincibilitySuppressesHitNotStomp(t *testing.T) {
	r := NewResolver(createTestConfig())
	p := createTestPlayer(80, 100)
	p.IframeTimer = 30

	// Side contact is ignored during invincibility frames
	e := entity.NewEnemy(entity.EnemyWalker, 100, 100, 0, 1)
	assert.Nil(t, r.Resolve(p, []*entity.Enemy{e}))
	assert.True(t, e.Alive)

	// A stomp still lands
	p.X, p.Y, p.VY = 100, 76, 5
	out := r.Resolve(p, []*entity.Enemy{e})
	require.NotNil(t, out)
	assert.True(t, out.Stomped)
	assert.False(t, e.Alive)
}

func TestResolver_ProjectileHit(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyShooter, 300, 100, 0, 1)
	pr := entity.NewProjectile(10, 10, 3.5)
	e.Projectiles = append(e.Projectiles, pr)
	p := createTestPlayer(8, 0)

	out := r.Resolve(p, []*entity.Enemy{e})

	require.NotNil(t, out)
	assert.True(t, out.Projectile)
	assert.Same(t, e, out.Enemy)
	assert.False(t, pr.Alive)
}

func TestResolver_DeadShooterProjectileStillHits(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyShooter, 300, 100, 0, 1)
	e.Alive = false
	pr := entity.NewProjectile(10, 10, 3.5)
	e.Projectiles = append(e.Projectiles, pr)
	p := createTestPlayer(8, 0)

	out := r.Resolve(p, []*entity.Enemy{e})

	require.NotNil(t, out)
	assert.True(t, out.Projectile)
}

func TestResolver_InvinciblePlayerIgnoresProjectiles(t *testing.T) {
	r := NewResolver(createTestConfig())
	e := entity.NewEnemy(entity.EnemyShooter, 300, 100, 0, 1)
	pr := entity.NewProjectile(10, 10, 3.5)
	e.Projectiles = append(e.Projectiles, pr)
	p := createTestPlayer(8, 0)
	p.IframeTimer = 10

	assert.Nil(t, r.Resolve(p, []*entity.Enemy{e}))
	assert.True(t, pr.Alive)
}
