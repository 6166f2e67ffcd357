package server

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/df07/raytracer-challenge/pkg/core"
	"github.com/df07/raytracer-challenge/pkg/renderer"
)

// ProgressUpdate is sent via SSE after every batch of completed rows
type ProgressUpdate struct {
	RowsDone  int    `json:"rowsDone"`
	TotalRows int    `json:"totalRows"`
	HitPixels int    `json:"hitPixels"`
	ImageData string `json:"imageData"` // Base64 encoded PNG of the whole canvas so far
	ElapsedMs int64  `json:"elapsedMs"`
}

// CompleteUpdate is sent via SSE once every row has been rendered
type CompleteUpdate struct {
	TotalPixels int     `json:"totalPixels"`
	HitPixels   int     `json:"hitPixels"`
	HitRatio    float64 `json:"hitRatio"`
	Workers     int     `json:"workers"`
	ElapsedMs   int64   `json:"elapsedMs"`
}

// SSEEvent represents a unified SSE event for thread-safe writing
type SSEEvent struct {
	Type string `json:"type"` // "console", "progress", "error", "complete"
	Data string `json:"data"` // JSON-encoded data
}

// handleRender renders a scene with the worker pool and streams partial images via SSE
func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	// Set SSE headers
	s.setSSEHeaders(w)

	ctx := r.Context()

	// Create unified SSE event channel for thread-safe writing
	sseEventChan := make(chan SSEEvent, 100)

	// Start single SSE writer goroutine, and wait for it before returning
	writerDone := make(chan struct{})
	go func() {
		s.writeSSEEvents(w, ctx, sseEventChan)
		close(writerDone)
	}()
	defer func() {
		close(sseEventChan)
		<-writerDone
	}()

	// Parse and validate request
	req, err := s.parseRenderRequest(r)
	if err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Invalid request: %v", err))
		return
	}

	sceneObj, err := s.createScene(req.Scene)
	if err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}
	sceneObj.SetSize(req.Width, req.Height)
	if err := sceneObj.Validate(); err != nil {
		s.handleError(ctx, sseEventChan, err.Error())
		return
	}

	// Setup console logging
	consoleChan, webLogger := s.setupConsoleLogging()

	pool := renderer.NewWorkerPool(sceneObj, req.Workers)
	viewport := pool.Viewport()
	canvas := renderer.NewCanvas(viewport.Width, viewport.Height)
	stats := renderer.RenderStats{Workers: pool.GetNumWorkers()}

	webLogger.Printf("Rendering %s at %dx%d with %d workers...\n",
		sceneObj.Name, viewport.Width, viewport.Height, pool.GetNumWorkers())

	// Cancelling stops the workers if the handler returns before every row arrives
	renderCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	startTime := time.Now()
	rowChan, errChan := pool.RenderRows(renderCtx)

	for rowChan != nil {
		select {
		case row, ok := <-rowChan:
			if !ok {
				rowChan = nil
				continue
			}
			if err := canvas.WritePixels(row.Pixels); err != nil {
				s.handleError(ctx, sseEventChan, err.Error())
				return
			}
			stats.AddRow(row)

			if stats.Rows%req.Batch == 0 || stats.Rows == viewport.Height {
				s.forwardConsole(ctx, consoleChan, sseEventChan)
				s.sendProgress(ctx, sseEventChan, canvas, stats, viewport.Height, startTime)
			}

		case msg := <-consoleChan:
			s.sendConsole(ctx, sseEventChan, msg)

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}

	if err := <-errChan; err != nil {
		s.handleError(ctx, sseEventChan, fmt.Sprintf("Rendering failed: %v", err))
		return
	}

	stats.Duration = time.Since(startTime)
	webLogger.Printf("Render complete: %d pixels (%.1f%% hit) in %v\n",
		stats.TotalPixels, stats.HitRatio()*100, stats.Duration)
	s.forwardConsole(ctx, consoleChan, sseEventChan)

	complete := CompleteUpdate{
		TotalPixels: stats.TotalPixels,
		HitPixels:   stats.HitPixels,
		HitRatio:    stats.HitRatio(),
		Workers:     stats.Workers,
		ElapsedMs:   stats.Duration.Milliseconds(),
	}
	s.sendJSON(ctx, sseEventChan, "complete", complete)
}

// setSSEHeaders sets the required headers for Server-Sent Events
func (s *Server) setSSEHeaders(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.Header().Set("Access-Control-Allow-Origin", "*")
}

// setupConsoleLogging creates console channel and web logger for a render
func (s *Server) setupConsoleLogging() (chan ConsoleMessage, core.Logger) {
	consoleChan := make(chan ConsoleMessage, 50)
	renderID := fmt.Sprintf("render-%d", time.Now().UnixNano())
	webLogger := NewWebLogger(renderID, consoleChan)
	return consoleChan, webLogger
}

// writeSSEEvents handles writing all SSE events in a single goroutine (thread-safe)
func (s *Server) writeSSEEvents(w http.ResponseWriter, ctx context.Context, sseEventChan chan SSEEvent) {
	for {
		select {
		case event, ok := <-sseEventChan:
			if !ok {
				// Channel closed
				return
			}

			// Check if client is still connected before writing
			select {
			case <-ctx.Done():
				// Client disconnected, stop sending messages
				return
			default:
			}

			// Write SSE event
			_, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event.Type, event.Data)
			if err != nil {
				// Client disconnected during write
				return
			}
			if flusher, ok := w.(http.Flusher); ok {
				flusher.Flush()
			}

		case <-ctx.Done():
			// Client disconnected
			return
		}
	}
}

// forwardConsole moves every buffered console message onto the SSE channel
func (s *Server) forwardConsole(ctx context.Context, consoleChan chan ConsoleMessage, sseEventChan chan SSEEvent) {
	for {
		select {
		case msg := <-consoleChan:
			s.sendConsole(ctx, sseEventChan, msg)
		default:
			return
		}
	}
}

// sendConsole sends a console message as an SSE event
func (s *Server) sendConsole(ctx context.Context, sseEventChan chan SSEEvent, msg ConsoleMessage) {
	s.sendJSON(ctx, sseEventChan, "console", msg)
}

// sendProgress encodes the canvas and sends a progress event
func (s *Server) sendProgress(ctx context.Context, sseEventChan chan SSEEvent, canvas *renderer.Canvas,
	stats renderer.RenderStats, totalRows int, startTime time.Time) {

	// Check if client is still connected
	select {
	case <-ctx.Done():
		return
	default:
	}

	imageData, err := s.canvasToBase64PNG(canvas)
	if err != nil {
		log.Printf("Error encoding canvas: %v", err)
		return
	}

	s.sendJSON(ctx, sseEventChan, "progress", ProgressUpdate{
		RowsDone:  stats.Rows,
		TotalRows: totalRows,
		HitPixels: stats.HitPixels,
		ImageData: imageData,
		ElapsedMs: time.Since(startTime).Milliseconds(),
	})
}

// sendJSON marshals the payload and queues it as an SSE event
func (s *Server) sendJSON(ctx context.Context, sseEventChan chan SSEEvent, eventType string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		log.Printf("Error marshaling %s event: %v", eventType, err)
		return
	}

	select {
	case sseEventChan <- SSEEvent{Type: eventType, Data: string(data)}:
	case <-ctx.Done():
	}
}

// canvasToBase64PNG converts a canvas to base64-encoded PNG
func (s *Server) canvasToBase64PNG(canvas *renderer.Canvas) (string, error) {
	var buf bytes.Buffer
	if err := canvas.WritePNG(&buf); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

// handleError sends an error event to the SSE channel
func (s *Server) handleError(ctx context.Context, sseEventChan chan SSEEvent, message string) {
	select {
	case sseEventChan <- SSEEvent{Type: "error", Data: message}:
	case <-ctx.Done():
		// Client disconnected, don't block
	}
}
