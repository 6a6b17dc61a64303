package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"os/signal"

	"github.com/Viva-Lambda/isin-izleme-basit/pkg/renderer"
	"github.com/Viva-Lambda/isin-izleme-basit/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "default", "Scene: 'default', 'cornell', or a path to a YAML scene file")
	output := flag.String("output", "render.png", "Output PNG file")
	width := flag.Int("width", 0, "Image width (0 uses the scene default)")
	height := flag.Int("height", 0, "Image height (0 uses the scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 uses the scene default)")
	maxDepth := flag.Int("max-depth", 0, "Maximum ray bounce depth (0 uses the scene default)")
	workers := flag.Int("workers", 0, "Worker goroutines (0 uses all CPUs)")
	seed := flag.Uint64("seed", 0, "Random seed (0 uses the scene default)")
	verbose := flag.Bool("verbose", false, "Enable debug logging")
	flag.Parse()

	level := slog.LevelInfo
	if *verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	if err := run(*sceneType, *output, *width, *height, *samples, *maxDepth, *workers, *seed, logger); err != nil {
		logger.Error("render failed", "error", err)
		os.Exit(1)
	}
}

func run(sceneType, output string, width, height, samples, maxDepth, workers int, seed uint64, logger *slog.Logger) error {
	s, err := selectScene(sceneType)
	if err != nil {
		return err
	}

	config := s.RenderConfig
	if width > 0 {
		config.Width = width
	}
	if height > 0 {
		config.Height = height
	}
	if samples > 0 {
		config.SamplesPerPixel = samples
	}
	if maxDepth > 0 {
		config.MaxDepth = maxDepth
	}
	if workers > 0 {
		config.Workers = workers
	}
	if seed > 0 {
		config.Seed = seed
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	img, err := renderer.NewRenderer(s, config, logger).Render(ctx)
	if err != nil {
		return err
	}

	f, err := os.Create(output)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer f.Close()

	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	logger.Info("render saved", "file", output)
	return nil
}

// selectScene resolves the scene flag: a built-in name or a YAML file
func selectScene(sceneType string) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(), nil
	case "cornell":
		return scene.NewCornellScene(), nil
	default:
		return scene.LoadFile(sceneType)
	}
}
