// colliderview is a graphical demo: it extracts collision geometry from
// sprite PNGs, builds Box2D bodies from it and renders the simulation.
//
// With no argument it loads the car / terrain / boulders scene from the
// config; a PNG path as first argument shows that image's colliders
// instead.
//
// Controls:
//
//	arrow keys  pan camera
//	w / s       zoom in / out
//	a / d       drive the car
//	1           reset the car
//	esc         quit
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"go.uber.org/zap"

	"github.com/Faultbox/spritephys/internal/config"
	"github.com/Faultbox/spritephys/internal/logger"
)

func main() {
	runtime.LockOSThread()

	cfgPath := flag.String("config", "", "Path to config file")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error initializing logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	// One-shot load: images are decoded and colliders extracted before
	// the window opens; there is no readiness polling.
	scene, err := buildScene(cfg, flag.Arg(0))
	if err != nil {
		logger.Error("building scene", zap.Error(err))
		os.Exit(1)
	}
	if len(scene.entities) == 0 {
		logger.Error("no geometry to show; check sprite paths in config")
		os.Exit(1)
	}

	app, err := newApp(cfg.Window)
	if err != nil {
		logger.Error("creating window", zap.Error(err))
		os.Exit(1)
	}
	defer app.close()

	app.run(scene)
}
