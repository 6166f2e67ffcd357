package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"time"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/renderer"
	"github.com/df07/raytracer-challenge/pkg/scene"
	"github.com/df07/raytracer-challenge/pkg/sketch"
)

// Config holds the command line options for a render
type Config struct {
	SceneName  string
	SketchName string
	Width      int
	Height     int
	Workers    int
	Format     string
	OutputDir  string
}

func main() {
	// Parse command line flags
	config := Config{}
	flag.StringVar(&config.SceneName, "scene", "shaded", "Built-in scene name, a name from the scenes directory, or a path to a .json scene file")
	flag.StringVar(&config.SketchName, "sketch", "", "Draw a sketch instead of ray tracing: 'projectile' or 'clock'")
	flag.IntVar(&config.Width, "width", 0, "Override the scene's canvas width (0 = use the scene's)")
	flag.IntVar(&config.Height, "height", 0, "Override the scene's canvas height (0 = use the scene's)")
	flag.IntVar(&config.Workers, "workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	flag.StringVar(&config.Format, "format", "ppm", "Output format: 'ppm' or 'png'")
	flag.StringVar(&config.OutputDir, "out", "output", "Directory that receives output/<scene>/render_<timestamp>.<format>")
	list := flag.Bool("list", false, "List available scenes and exit")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	// Show help if requested
	if *help {
		showHelp()
		return
	}

	if *list {
		listScenes()
		return
	}

	if err := validateFormat(config.Format); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var filename string
	var err error
	if config.SketchName != "" {
		filename, err = runSketch(config)
	} else {
		filename, err = runRender(ctx, config, renderer.NewDefaultLogger())
	}
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Render saved as %s\n", filename)
}

func showHelp() {
	fmt.Println("Ray Tracer Challenge")
	fmt.Println("Usage: raytracer [options]")
	fmt.Println()
	fmt.Println("Options:")
	flag.PrintDefaults()
	fmt.Println()
	listScenes()
	fmt.Println()
	fmt.Println("Sketches:")
	fmt.Println("  projectile - Path of a projectile under gravity and wind")
	fmt.Println("  clock      - Twelve hour marks of a clock face")
	fmt.Println()
	fmt.Println("Output will be saved to output/<scene>/render_<timestamp>.<format>")
}

func listScenes() {
	fmt.Println("Available scenes:")
	response, err := scene.ListAllScenes()
	if err != nil {
		fmt.Printf("Warning: %v\n", err)
	}
	for _, info := range response.Scenes {
		fmt.Printf("  %-28s %s\n", info.ID, info.Description)
	}
}

func validateFormat(format string) error {
	switch format {
	case "ppm", "png":
		return nil
	default:
		return fmt.Errorf("unknown format %q, expected 'ppm' or 'png'", format)
	}
}

// createScene resolves a built-in scene, a JSON scene file path, or the name of a file in the scenes directory
func createScene(sceneType string) (*scene.Scene, error) {
	if sceneType == "" {
		return nil, errors.New("scene name must not be empty")
	}

	s, err := scene.Resolve(sceneType)
	if errors.Is(err, scene.ErrUnknownScene) {
		// Fall back to scenes/<name>.json
		path := filepath.Join("scenes", sceneType+".json")
		if _, statErr := os.Stat(path); statErr == nil {
			return scene.Load(path)
		}
	}
	if err != nil {
		return nil, err
	}
	return s, nil
}

// outputPath builds <dir>/<name>/render_<timestamp>.<format> and creates the directory
func outputPath(dir, name, format string, now time.Time) (string, error) {
	outputDir := filepath.Join(dir, sanitizeName(name))
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return "", fmt.Errorf("error creating output directory: %w", err)
	}

	timestamp := now.Format("20060102_150405")
	return filepath.Join(outputDir, fmt.Sprintf("render_%s.%s", timestamp, format)), nil
}

// sanitizeName turns a scene name or path into a single directory name
func sanitizeName(name string) string {
	name = strings.TrimSuffix(filepath.Base(name), filepath.Ext(name))
	if name == "" || name == "." {
		return "scene"
	}
	return name
}

// runRender ray traces the configured scene with the worker pool and saves the canvas
func runRender(ctx context.Context, config Config, logger core.Logger) (string, error) {
	logger.Printf("Starting Ray Tracer...\n")

	selectedScene, err := createScene(config.SceneName)
	if err != nil {
		return "", err
	}
	selectedScene.SetSize(config.Width, config.Height)
	if err := selectedScene.Validate(); err != nil {
		return "", err
	}
	logger.Printf("Using %s scene (%d spheres)...\n", selectedScene.Name, len(selectedScene.Shapes))

	viewport := selectedScene.GetViewport()
	canvas := renderer.NewCanvas(viewport.Width, viewport.Height)

	pool := renderer.NewWorkerPool(selectedScene, config.Workers)
	pool.SetLogger(logger)
	if _, err := pool.Render(ctx, canvas); err != nil {
		return "", err
	}

	filename, err := outputPath(config.OutputDir, selectedScene.Name, config.Format, time.Now())
	if err != nil {
		return "", err
	}
	if err := renderer.SaveCanvas(canvas, filename); err != nil {
		return "", err
	}
	return filename, nil
}

// drawSketch draws the named sketch on a fresh canvas
func drawSketch(name string) (*renderer.Canvas, error) {
	switch name {
	case "projectile":
		canvas := renderer.NewCanvas(900, 550)
		ticks := sketch.DrawProjectile(canvas, sketch.DefaultProjectile(), sketch.DefaultEnvironment(), 1000)
		fmt.Printf("Projectile landed after %d ticks\n", ticks)
		return canvas, nil
	case "clock":
		canvas := renderer.NewCanvas(550, 550)
		sketch.DrawClock(canvas, core.NewColor(1, 0, 0))
		return canvas, nil
	default:
		return nil, fmt.Errorf("unknown sketch %q, expected 'projectile' or 'clock'", name)
	}
}

// runSketch draws the configured sketch and saves it
func runSketch(config Config) (string, error) {
	canvas, err := drawSketch(config.SketchName)
	if err != nil {
		return "", err
	}

	filename, err := outputPath(config.OutputDir, config.SketchName, config.Format, time.Now())
	if err != nil {
		return "", err
	}
	if err := renderer.SaveCanvas(canvas, filename); err != nil {
		return "", err
	}
	return filename, nil
}
