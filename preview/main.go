package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/raytracer-challenge/pkg/renderer"
	"github.com/df07/raytracer-challenge/pkg/scene"
)

func main() {
	sceneName := flag.String("scene", "trio", "Scene name or path to a .json scene file")
	scale := flag.Int("scale", 4, "Window pixels per rendered pixel")
	workers := flag.Int("workers", 0, "Number of parallel workers (0 = auto-detect CPU count)")
	savePath := flag.String("save", "", "Save the image to this .ppm or .png path when the window closes")
	flag.Parse()

	if *scale < 1 {
		log.Fatalf("scale must be at least 1, got %d", *scale)
	}

	sceneObj, err := scene.Resolve(*sceneName)
	if err != nil {
		log.Fatalf("Error loading scene: %v", err)
	}
	if err := sceneObj.Validate(); err != nil {
		log.Fatalf("Error: %v", err)
	}

	pool := renderer.NewWorkerPool(sceneObj, *workers)
	pool.SetLogger(renderer.NewDefaultLogger())
	viewport := pool.Viewport()
	canvas := renderer.NewCanvas(viewport.Width, viewport.Height)
	frame := renderer.NewFrameBuffer(viewport.Width, viewport.Height)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// The canvas is only touched by this goroutine until rendered is closed
	rendered := make(chan error, 1)
	go func() {
		rowChan, errChan := pool.RenderRows(ctx)
		for row := range rowChan {
			if err := frame.WriteRow(row); err != nil {
				cancel()
				continue
			}
			canvas.WritePixels(row.Pixels)
		}
		rendered <- <-errChan
	}()

	onClose := func() {
		cancel()
		if err := <-rendered; err != nil {
			log.Printf("Render stopped early: %v", err)
		}
		if *savePath == "" {
			return
		}
		if err := renderer.SaveCanvas(canvas, *savePath); err != nil {
			log.Printf("Error saving image: %v", err)
			return
		}
		log.Printf("Saved %s", *savePath)
	}

	ebiten.SetWindowTitle(windowTitle(sceneObj.Name, 0, viewport.Height))
	ebiten.SetWindowSize(viewport.Width**scale, viewport.Height**scale)
	ebiten.SetWindowClosingHandled(true)
	if err := ebiten.RunGame(newPreviewGame(frame, sceneObj.Name, onClose)); err != nil {
		log.Printf("Error: %v", err)
		os.Exit(1)
	}
}

// windowTitle shows the scene name and how many rows are finished
func windowTitle(name string, rowsDone, totalRows int) string {
	if rowsDone >= totalRows {
		return fmt.Sprintf("%s (done)", name)
	}
	return fmt.Sprintf("%s (%d/%d rows)", name, rowsDone, totalRows)
}
