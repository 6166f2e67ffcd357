package main

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// previewGame draws the frame buffer every frame and uploads only when rows have arrived
type previewGame struct {
	frame   *renderer.FrameBuffer
	title   string
	img     *ebiten.Image
	scratch []byte
	onClose func()
	shown   int
}

func newPreviewGame(frame *renderer.FrameBuffer, title string, onClose func()) *previewGame {
	return &previewGame{
		frame:   frame,
		title:   title,
		img:     ebiten.NewImage(frame.Width(), frame.Height()),
		scratch: make([]byte, frame.Width()*frame.Height()*4),
		onClose: onClose,
	}
}

func (g *previewGame) Update() error {
	if ebiten.IsWindowBeingClosed() {
		if g.onClose != nil {
			g.onClose()
		}
		return ebiten.Termination
	}

	if done := g.frame.RowsDone(); done != g.shown {
		g.shown = done
		ebiten.SetWindowTitle(windowTitle(g.title, done, g.frame.Height()))
	}
	return nil
}

func (g *previewGame) Draw(screen *ebiten.Image) {
	if g.frame.CopyTo(g.scratch) {
		g.img.WritePixels(g.scratch)
	}
	screen.DrawImage(g.img, nil)
}

func (g *previewGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.frame.Width(), g.frame.Height()
}
