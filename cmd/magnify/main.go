package main

import (
	"flag"
	"log"
	"os"

	"magnify/internal/config"
	"magnify/internal/overlay"
	"magnify/internal/source"
)

func main() {
	configPath := flag.String("config", os.Getenv("MAGNIFY_CONFIG"), "YAML config file (default $MAGNIFY_CONFIG)")
	imagePath := flag.String("image", "", "Image to magnify (png, jpeg, gif, bmp, tiff, webp); a test card when empty")
	tickRate := flag.Float64("tick-rate", 0, "Physics steps per second (0 keeps the config value)")
	noAudio := flag.Bool("no-audio", false, "Disable audio cues")
	verbose := flag.Bool("v", false, "Log every input event")
	flag.Parse()

	log.SetFlags(log.LstdFlags)
	log.SetPrefix("magnify: ")

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *tickRate > 0 {
		cfg.Physics.TickRate = *tickRate
	}
	if *noAudio {
		cfg.Audio.Enabled = false
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid flags: %v", err)
	}

	var src source.Source = source.Pattern{Width: 1280, Height: 720, Cell: 40}
	if *imagePath != "" {
		src = source.File{Path: *imagePath}
	}
	content, err := src.Capture()
	if err != nil {
		log.Fatalf("Failed to capture content: %v", err)
	}

	b := content.Bounds()
	log.Printf("magnifying %dx%d content (tick rate: %.0f/s)", b.Dx(), b.Dy(), cfg.Physics.TickRate)
	if err := overlay.Run(overlay.Options{Config: cfg, Content: content, Verbose: *verbose}); err != nil {
		log.Fatalf("Overlay error: %v", err)
	}
}
