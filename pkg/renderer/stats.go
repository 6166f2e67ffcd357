package renderer

import "time"

// RenderStats contains statistics about the rendering process
type RenderStats struct {
	TotalPixels int           // Total number of pixels rendered
	HitPixels   int           // Pixels whose primary ray hit a sphere
	Rows        int           // Number of rows completed
	Workers     int           // Number of workers used (1 for sequential rendering)
	Duration    time.Duration // Wall-clock render time
}

// HitRatio returns the fraction of rendered pixels that hit a sphere
func (s RenderStats) HitRatio() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.HitPixels) / float64(s.TotalPixels)
}

// AddRow folds a completed row into the statistics
func (s *RenderStats) AddRow(row RowResult) {
	s.Rows++
	s.TotalPixels += len(row.Pixels)
	s.HitPixels += row.Hits
}
