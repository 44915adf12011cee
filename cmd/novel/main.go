package main

import (
	"flag"
	"fmt"
	"io/fs"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/protocolsmile/internal/application/game"
	"github.com/younwookim/protocolsmile/internal/application/replay"
	"github.com/younwookim/protocolsmile/internal/application/scene"
	"github.com/younwookim/protocolsmile/internal/application/scene/menu"
	"github.com/younwookim/protocolsmile/internal/application/scene/story"
	"github.com/younwookim/protocolsmile/internal/domain/animation"
	"github.com/younwookim/protocolsmile/internal/infrastructure/config"
)

// loadConfig loads settings (with env overrides), the animation catalog and
// the scene table
func loadConfig(loader *config.Loader) (*config.Settings, *animation.Catalog, error) {
	settings, err := loader.LoadSettings()
	if err != nil {
		return nil, nil, err
	}
	config.ApplyEnv(settings)

	anims, err := loader.LoadAnimations()
	if err != nil {
		return nil, nil, err
	}
	cat := animation.DefaultCatalog()
	config.RegisterAnimations(cat, anims)

	table, err := loader.SceneTable()
	if err != nil {
		return nil, nil, err
	}
	if table.Len() == 0 {
		return nil, nil, fmt.Errorf("no scenes in %s", config.ScenesDir)
	}

	return settings, cat, nil
}

func newLoader(dir string) (*config.Loader, error) {
	if dir != "" {
		return config.NewLoader(dir), nil
	}
	fsys, err := fs.Sub(configFS, "configs")
	if err != nil {
		return nil, fmt.Errorf("failed to get config subfs: %w", err)
	}
	return config.NewFSLoader(fsys, "configs"), nil
}

func main() {
	// Parse command line flags
	recordFlag := flag.String("record", "", "Record input to file (e.g., -record replay.json)")
	replayFlag := flag.String("replay", "", "Replay recorded input without a window and print the result")
	sceneFlag := flag.Int("scene", -1, "Start scene id (default from settings)")
	configFlag := flag.String("config", "", "Config directory (default embedded configs)")
	flag.Parse()

	if err := config.LoadDotEnv(); err != nil {
		log.Printf("Failed to load .env: %v", err)
	}

	loader, err := newLoader(*configFlag)
	if err != nil {
		log.Fatalf("Failed to open config: %v", err)
	}
	settings, cat, err := loadConfig(loader)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if *replayFlag != "" {
		data, err := replay.LoadReplay(*replayFlag)
		if err != nil {
			log.Fatalf("Failed to load replay: %v", err)
		}
		if _, err := runReplay(os.Stdout, loader, settings, cat, data); err != nil {
			log.Fatalf("Failed to run replay: %v", err)
		}
		return
	}

	startScene := settings.Story.StartScene
	if *sceneFlag >= 0 {
		startScene = *sceneFlag
	}

	var g *game.Game
	var newMenu func() scene.Scene

	newStory := func() (scene.Scene, error) {
		p, err := story.New(story.Options{
			Settings:   settings,
			Source:     loader,
			Catalog:    cat,
			StartScene: startScene,
			StartNode:  settings.Story.StartNode,
			RecordPath: *recordFlag,
			Back:       func() scene.Scene { return newMenu() },
		})
		if err != nil {
			return nil, err
		}
		return p, nil
	}
	newMenu = func() scene.Scene {
		m, err := menu.New(settings, cat, newStory, func() { g.RequestQuit() })
		if err != nil {
			log.Fatalf("Failed to create menu: %v", err)
		}
		return m
	}

	g = game.New(newMenu(), settings.Display.ScreenWidth, settings.Display.ScreenHeight)
	g.SetDT(1.0 / float64(settings.Display.Framerate))

	// Ctrl+C ends the loop cleanly so recordings are saved
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		log.Printf("Interrupted, quitting")
		g.RequestQuit()
	}()

	// Set up ebiten
	ebiten.SetWindowSize(settings.Display.ScreenWidth*settings.Display.Scale,
		settings.Display.ScreenHeight*settings.Display.Scale)
	ebiten.SetWindowTitle(settings.Display.Title)
	ebiten.SetTPS(settings.Display.Framerate)

	// Run game
	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
