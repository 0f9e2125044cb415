// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/hopper/internal/application/replay"
	"github.com/younwookim/hopper/internal/application/scene"
	"github.com/younwookim/hopper/internal/application/session"
	"github.com/younwookim/hopper/internal/application/state"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/domain/entity"
	"github.com/younwookim/hopper/internal/infrastructure/audio"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

// Colors for rendering
var (
	colorBG         = color.RGBA{26, 26, 46, 255}
	colorSolid      = color.RGBA{80, 80, 100, 255}
	colorPlatform   = color.RGBA{130, 110, 80, 255}
	colorHazard     = color.RGBA{200, 50, 50, 255}
	colorCoin       = color.RGBA{255, 215, 0, 255}
	colorExit       = color.RGBA{80, 200, 120, 255}
	colorPlayer     = color.RGBA{100, 200, 100, 255}
	colorFlash      = color.RGBA{255, 255, 255, 200}
	colorWalker     = color.RGBA{200, 100, 100, 255}
	colorJumper     = color.RGBA{200, 140, 60, 255}
	colorShooter    = color.RGBA{160, 80, 200, 255}
	colorProjectile = color.RGBA{255, 240, 120, 255}
	colorDust       = color.RGBA{180, 180, 180, 255}
	colorPuff       = color.RGBA{230, 230, 230, 255}
)

// Playing is the main gameplay scene. It polls (or replays) input,
// steps the session one fixed frame, and turns frame results into
// sound and particles. The session never sees any of this feedback.
type Playing struct {
	sess  *session.Session
	input *system.InputSystem
	sound *audio.Engine

	particles *particlePool
	screenW   int
	screenH   int

	// Input recording and playback
	recorder       *Recorder
	recordFilename string
	replayer       *replay.Replayer

	lastLevelIndex int
	frame          int
}

// New creates the gameplay scene over an already-initialized session.
// If recordPath is not empty, gameplay is recorded. If replayer is not
// nil, it drives input instead of the keyboard.
func New(cfg *config.PhysicsConfig, sess *session.Session, sound *audio.Engine, recordPath string, replayer *replay.Replayer) *Playing {
	p := &Playing{
		sess:           sess,
		input:          system.NewInputSystem(),
		sound:          sound,
		particles:      newParticlePool(),
		screenW:        cfg.Display.ScreenWidth,
		screenH:        cfg.Display.ScreenHeight,
		recordFilename: recordPath,
		replayer:       replayer,
		lastLevelIndex: sess.LevelIndex(),
	}

	if recordPath != "" {
		p.recorder = NewRecorder(sess.LevelIndex())
		log.Info("recording enabled", "path", recordPath)
	}

	return p
}

// OnEnter is called when entering the scene.
func (p *Playing) OnEnter() {
	log.Info("entering gameplay", "level", p.sess.Level().Name)
}

// OnExit saves any pending recording.
func (p *Playing) OnExit() {
	p.saveRecording()
}

// Update advances the game one fixed frame (implements scene.Scene).
func (p *Playing) Update() (scene.Scene, error) {
	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	// M: Toggle mute
	if inpututil.IsKeyJustPressed(ebiten.KeyM) && p.sound != nil {
		p.sound.SetMuted(!p.sound.Muted())
	}

	// R: Restart the whole run from the first level
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		p.sess.Restart(0)
		p.particles.Reset()
	}

	in := p.pollInput()

	if p.recorder != nil && p.sess.State() == state.StateRunning {
		p.recorder.RecordFrame(in)
	}

	res := p.sess.Step(in)
	p.dispatch(res)

	// Level swap (respawn or advance) invalidates world-space effects.
	if p.sess.LevelIndex() != p.lastLevelIndex {
		p.lastLevelIndex = p.sess.LevelIndex()
		p.particles.Reset()
	}

	p.particles.Update()
	p.frame++

	return nil, nil // nil = stay on this scene
}

// pollInput reads the keyboard, or the replayer when one is attached.
// The cursor only advances on frames the recorder captured, so pause
// frames never drain recorded inputs. An exhausted replay yields
// neutral input so the run coasts to a stop.
func (p *Playing) pollInput() system.InputState {
	if p.replayer == nil {
		return p.input.Poll()
	}

	if p.sess.State() != state.StateRunning {
		return system.InputState{}
	}

	ri, ok := p.replayer.GetInput()
	if !ok {
		return system.InputState{}
	}
	return system.InputState{
		Left:         ri.Left,
		Right:        ri.Right,
		Up:           ri.Up,
		Down:         ri.Down,
		Jump:         ri.Jump,
		JumpPressed:  ri.JumpPressed,
		JumpReleased: ri.JumpReleased,
	}
}

// dispatch turns one frame's results into sound and particle effects.
func (p *Playing) dispatch(res session.FrameResult) {
	player := p.sess.Player()
	ts := p.sess.Grid().TileSize

	for _, ev := range res.Events {
		switch e := ev.(type) {
		case entity.JumpEvent:
			p.play(audio.SoundJump)
		case entity.LandEvent:
			p.play(audio.SoundLand)
			p.particles.Spawn(player.X+entity.PlayerWidth/2, player.Y+entity.PlayerHeight, 6, colorDust, 20)
		case entity.HurtEvent:
			p.play(audio.SoundHurt)
		case entity.DieEvent:
			p.play(audio.SoundDie)
		case entity.CollectEvent:
			p.play(audio.SoundCollect)
			cx := float64(e.Col*ts) + float64(ts)/2
			cy := float64(e.Row*ts) + float64(ts)/2
			p.particles.Spawn(cx, cy, 8, colorCoin, 24)
		case entity.ExitEvent:
			p.play(audio.SoundExit)
		case entity.ShootEvent:
			p.play(audio.SoundShoot)
		}
	}

	if res.Outcome != nil && res.Outcome.Stomped {
		e := res.Outcome.Enemy
		p.play(audio.SoundStomp)
		p.particles.Spawn(e.X+entity.EnemyWidth/2, e.Y+entity.EnemyHeight/2, 10, colorPuff, 24)
	}
}

func (p *Playing) play(st audio.SoundType) {
	if p.sound != nil {
		p.sound.Play(st)
	}
}

// saveRecording saves the current recording to file
func (p *Playing) saveRecording() {
	if p.recorder == nil {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = GenerateFilename()
	}

	if err := p.recorder.Save(filename); err != nil {
		log.Error("failed to save recording", "err", err)
	} else {
		log.Info("recording saved", "path", filename, "frames", p.recorder.FrameCount())
	}
}

// Draw renders the game screen
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	camX, camY := p.sess.Camera()

	p.drawTiles(screen, camX, camY)
	p.drawEnemies(screen, camX, camY)
	p.drawPlayer(screen, camX, camY)
	p.particles.Draw(screen, camX, camY)
	p.drawHUD(screen)

	switch p.sess.State() {
	case state.StateDeathPause:
		p.drawDeathOverlay(screen)
	case state.StateWinPause:
		p.drawWinOverlay(screen)
	case state.StateVictory:
		p.drawVictoryOverlay(screen)
	}
}

func (p *Playing) drawTiles(screen *ebiten.Image, camX, camY float64) {
	grid := p.sess.Grid()
	ts := grid.TileSize

	startCol := int(camX) / ts
	startRow := int(camY) / ts
	endCol := (int(camX)+p.screenW)/ts + 1
	endRow := (int(camY)+p.screenH)/ts + 1

	for row := startRow; row <= endRow && row < grid.Height; row++ {
		for col := startCol; col <= endCol && col < grid.Width; col++ {
			if col < 0 || row < 0 {
				continue
			}

			code := grid.CodeAt(col, row)
			if code == entity.TileAir {
				continue
			}

			x := float64(col*ts) - camX
			y := float64(row*ts) - camY
			size := float64(ts)

			switch code {
			case entity.TileSolid:
				ebitenutil.DrawRect(screen, x, y, size, size, colorSolid)
			case entity.TilePlatform:
				// One-way platforms read as a thin lip
				ebitenutil.DrawRect(screen, x, y, size, size/4, colorPlatform)
			case entity.TileHazard:
				ebitenutil.DrawRect(screen, x, y+size/2, size, size/2, colorHazard)
			case entity.TileCoin:
				ebitenutil.DrawRect(screen, x+size/2-5, y+size/2-5, 10, 10, colorCoin)
			case entity.TileExit:
				ebitenutil.DrawRect(screen, x+size/4, y, size/2, size, colorExit)
			}
		}
	}
}

func (p *Playing) drawPlayer(screen *ebiten.Image, camX, camY float64) {
	player := p.sess.Player()
	if !player.Alive && p.sess.State() != state.StateRunning {
		return
	}

	// Flash when invincible
	c := colorPlayer
	if player.IsInvincible() && (player.IframeTimer/4)%2 == 0 {
		c = colorFlash
	}

	ebitenutil.DrawRect(screen, player.X-camX, player.Y-camY, entity.PlayerWidth, entity.PlayerHeight, c)
}

func (p *Playing) drawEnemies(screen *ebiten.Image, camX, camY float64) {
	for _, e := range p.sess.Enemies() {
		if e.Alive {
			var c color.RGBA
			switch e.Kind {
			case entity.EnemyWalker:
				c = colorWalker
			case entity.EnemyJumper:
				c = colorJumper
			case entity.EnemyShooter:
				c = colorShooter
			}
			ebitenutil.DrawRect(screen, e.X-camX, e.Y-camY, entity.EnemyWidth, entity.EnemyHeight, c)
		}

		// Projectiles outlive their shooter
		for _, pr := range e.Projectiles {
			if !pr.Alive {
				continue
			}
			ebitenutil.DrawRect(screen, pr.X-camX, pr.Y-camY, entity.ProjectileWidth, entity.ProjectileHeight, colorProjectile)
		}
	}
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	player := p.sess.Player()

	hud := fmt.Sprintf("Score: %d   Lives: %d   %s", player.Score, player.Lives, p.sess.Level().Name)
	ebitenutil.DebugPrintAt(screen, hud, 10, 10)

	if p.replayer != nil {
		replayText := fmt.Sprintf("REPLAY %d/%d", p.replayer.CurrentFrame(), p.replayer.TotalFrames())
		ebitenutil.DebugPrintAt(screen, replayText, 10, 26)
	}

	controls := "Arrows/WASD: Move | Z/Space: Jump | R: Restart | M: Mute"
	ebitenutil.DebugPrintAt(screen, controls, 10, p.screenH-18)
}

func (p *Playing) drawDeathOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{100, 0, 0, 120}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := "OUCH"
	if p.sess.Player().Lives <= 0 {
		text = "GAME OVER"
	}
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-30, p.screenH/2-10)
}

func (p *Playing) drawWinOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 60, 30, 120}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)
	ebitenutil.DebugPrintAt(screen, "LEVEL CLEAR", p.screenW/2-35, p.screenH/2-10)
}

func (p *Playing) drawVictoryOverlay(screen *ebiten.Image) {
	overlay := color.RGBA{0, 0, 0, 160}
	ebitenutil.DrawRect(screen, 0, 0, float64(p.screenW), float64(p.screenH), overlay)

	text := fmt.Sprintf("YOU WIN!\n\nFinal score: %d\n\nPress R to play again", p.sess.Player().Score)
	ebitenutil.DebugPrintAt(screen, text, p.screenW/2-60, p.screenH/2-30)
}
