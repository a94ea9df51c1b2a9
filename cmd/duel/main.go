package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/pprof"
	"time"

	"stickbrawl/sim"
)

func main() {
	configPath := flag.String("config", "", "INI file overriding the built-in settings")
	frames := flag.Int("frames", 60*60, "Maximum number of frames to simulate")
	seed := flag.Int64("seed", 1, "Random seed (0 picks one from the clock)")
	script1 := flag.String("script1", "", "JavaScript AI for player 1")
	script2 := flag.String("script2", "", "JavaScript AI for player 2")
	cpuProfile := flag.String("cpuprofile", "", "Write a CPU profile of the run to this file")
	flag.Parse()

	cfg, err := sim.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Match.Seed = *seed

	opts := sim.Options{}
	if opts.Player1, err = loadController(*script1, cfg); err != nil {
		log.Fatalf("Player 1: %v", err)
	}
	if opts.Player2, err = loadController(*script2, cfg); err != nil {
		log.Fatalf("Player 2: %v", err)
	}

	m, err := sim.NewMatch(cfg, sim.ModeCPU, opts)
	if err != nil {
		log.Fatalf("Failed to create match: %v", err)
	}

	if *cpuProfile != "" {
		f, err := os.Create(*cpuProfile)
		if err != nil {
			log.Fatalf("Failed to create profile file: %v", err)
		}
		defer f.Close()
		if err := pprof.StartCPUProfile(f); err != nil {
			log.Fatalf("Failed to start CPU profile: %v", err)
		}
		defer pprof.StopCPUProfile()
	}

	start := time.Now()
	for m.Frame() < *frames && m.Tick() {
	}
	log.Printf("Simulated %d frames (%v match time) in %v", m.Frame(), m.Elapsed(), time.Since(start))

	for slot := 1; slot <= 2; slot++ {
		f := m.Fighter(slot)
		log.Printf("Player %d: health %.1f/%.0f energy %.1f", slot, f.Health, f.MaxHealth, f.Energy)
	}
	if r := m.Result(); r.Over {
		fmt.Println(r)
	} else {
		fmt.Println("Time up")
	}
}

// loadController returns nil (the mode's naive AI) when no script is given.
func loadController(path string, cfg sim.Config) (sim.Controller, error) {
	if path == "" {
		return nil, nil
	}
	ai, err := sim.LoadScriptAI(path, sim.NewNaiveAI(cfg.AI))
	if err != nil {
		return nil, err
	}
	return ai, nil
}
