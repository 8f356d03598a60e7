package renderer

import "time"

// RenderStats contains statistics about one Trace call
type RenderStats struct {
	TotalPixels int           // Number of pixels written
	TotalRays   int           // Number of rays cast (one per sample)
	TotalHits   int           // Rays that hit a primitive
	Elapsed     time.Duration // Wall time of the trace
	Luminance   float64       // Average Rec. 709 luminance of the frame, in [0,1]
}

// AverageSamples returns the mean number of rays cast per pixel
func (s RenderStats) AverageSamples() float64 {
	if s.TotalPixels == 0 {
		return 0
	}
	return float64(s.TotalRays) / float64(s.TotalPixels)
}

// Coverage returns the fraction of rays that hit a primitive
func (s RenderStats) Coverage() float64 {
	if s.TotalRays == 0 {
		return 0
	}
	return float64(s.TotalHits) / float64(s.TotalRays)
}

// CalculateAverageLuminance returns the mean Rec. 709 luminance of packed
// 0x00RRGGBB pixels
func CalculateAverageLuminance(buf []uint32) float64 {
	if len(buf) == 0 {
		return 0
	}

	var total float64
	for _, p := range buf {
		r, g, b := UnpackColor(p)
		total += (0.2126*float64(r) + 0.7152*float64(g) + 0.0722*float64(b)) / 255
	}
	return total / float64(len(buf))
}
