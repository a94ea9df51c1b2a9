package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"stickbrawl/audio"
	"stickbrawl/game"
	"stickbrawl/sim"
)

func main() {
	configPath := flag.String("config", "", "INI file overriding the built-in settings")
	mode := flag.String("mode", "", "Start straight into a match: single, multi or cpu")
	flag.Parse()

	simCfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	config := game.DefaultConfig(simCfg)

	var cues sim.Audio = sim.Discard{}
	if simCfg.Audio.Enabled {
		c := audio.NewCues(simCfg.Audio)
		if err := c.Start(); err != nil {
			log.Printf("Audio disabled: %v", err)
		} else {
			defer c.Close()
			cues = c
		}
	}

	g := game.NewGame(config, cues)
	if *mode != "" {
		m, err := sim.ParseMode(*mode)
		if err != nil {
			log.Fatal(err)
		}
		if err := g.Start(m); err != nil {
			log.Fatalf("Failed to start match: %v", err)
		}
	}

	ebiten.SetWindowSize(config.ScreenWidth, config.ScreenHeight)
	ebiten.SetWindowTitle(config.Title)
	ebiten.SetTPS(simCfg.TicksPerSecond())

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
