/*
This is an example of application that will use the
engine packages to test things out
*/
package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/astaben/tracery/engine/core"
	"github.com/astaben/tracery/engine/text"
	"github.com/astaben/tracery/testbed"
)

const (
	settingsPath = "tracery.toml"
	demoFontPath = "assets/fonts/demo.fnt"
)

func main() {
	cfg, err := core.LoadConfig(settingsPath)
	if err != nil {
		cfg = core.DefaultConfig()
		core.LogWarn("no readable settings at %s, using defaults: %v", settingsPath, err)
	}
	core.SetLogLevel(cfg.LogLevel)

	face, err := text.LoadFace(demoFontPath)
	if err != nil {
		core.LogWarn("demo font unavailable, text extents will stay empty: %v", err)
		face = nil
	}

	drawing, err := testbed.NewDrawing("Tracery Demo", cfg, face)
	if err != nil {
		panic(err)
	}

	drawing.Regen()

	if !cfg.Watch {
		return
	}

	watcher, err := core.NewConfigWatcher(settingsPath, drawing.ApplyConfig)
	if err != nil {
		panic(err)
	}
	if err := watcher.Start(); err != nil {
		panic(err)
	}
	defer watcher.Close()

	// signal channel to capture system calls
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	<-sigCh

	core.LogInfo("shutting down")
}
