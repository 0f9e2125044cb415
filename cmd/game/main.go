package main

import (
	"flag"
	"os"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/younwookim/hopper/internal/application/game"
	"github.com/younwookim/hopper/internal/application/replay"
	"github.com/younwookim/hopper/internal/application/scene/playing"
	"github.com/younwookim/hopper/internal/application/session"
	"github.com/younwookim/hopper/internal/application/system"
	"github.com/younwookim/hopper/internal/infrastructure/audio"
	"github.com/younwookim/hopper/internal/infrastructure/config"
)

const sampleRate = 44100

func main() {
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Play back a recorded input file")
	levelFlag := flag.Int("level", 0, "Start at the given level index")
	muteFlag := flag.Bool("mute", false, "Disable sound")
	flag.Parse()

	loader := config.NewFSLoader(config.DefaultFS())
	cfg, err := loader.LoadPhysics()
	if err != nil {
		log.Fatal("failed to load physics config", "err", err)
	}

	levels, err := system.NewLevelProvider(loader)
	if err != nil {
		log.Fatal("failed to load levels", "err", err)
	}
	log.Info("levels loaded", "count", levels.Count())

	sess, err := session.New(cfg, levels, cfg.Display.ScreenWidth, cfg.Display.ScreenHeight)
	if err != nil {
		log.Fatal("failed to create session", "err", err)
	}

	// A replay must start from its recorded level; the -level flag
	// covers the interactive case.
	var replayer *replay.Replayer
	if *replayFlag != "" {
		data, err := replay.Load(*replayFlag)
		if err != nil {
			log.Fatal("failed to load replay", "path", *replayFlag, "err", err)
		}
		replayer = replay.NewReplayer(*data)
		if !sess.Restart(replayer.Level()) {
			log.Fatal("replay references unknown level", "level", replayer.Level())
		}
		log.Info("replay loaded", "path", *replayFlag, "frames", replayer.TotalFrames())
	} else if *levelFlag != 0 {
		if !sess.Restart(*levelFlag) {
			log.Fatal("no such level", "index", *levelFlag)
		}
	}

	sound := audio.NewEngine(sampleRate, *muteFlag)

	g := game.New(
		playing.New(cfg, sess, sound, *recordFlag, replayer),
		cfg.Display.ScreenWidth,
		cfg.Display.ScreenHeight,
	)

	ebiten.SetWindowSize(cfg.Display.ScreenWidth*cfg.Display.Scale,
		cfg.Display.ScreenHeight*cfg.Display.Scale)
	ebiten.SetWindowTitle("Hopper")
	ebiten.SetTPS(cfg.Display.Framerate)

	if err := ebiten.RunGame(g); err != nil {
		log.Error("game terminated", "err", err)
		os.Exit(1)
	}
}
