package colour

import (
	"fmt"
	"image"

	"golang.org/x/image/draw"
)

const (
	// maxLongEdge bounds the longer image edge before sampling. Purely a
	// clustering cost bound; it does not change colour semantics.
	maxLongEdge = 300

	// darkSumCutoff and lightSumCutoff strip near-black and near-white
	// pixels by channel sum. The rule is sum-based, not per-channel: the
	// pixel (5,5,0) (sum 10) is kept while (3,3,3) (sum 9) is dropped.
	darkSumCutoff  = 10
	lightSumCutoff = 745
)

// Sampler downsamples an image, strips extreme pixels and hands the
// remaining samples to a Clusterer.
type Sampler struct {
	clusterer Clusterer
}

// NewSampler creates a Sampler delegating to the given clusterer.
func NewSampler(clusterer Clusterer) *Sampler {
	return &Sampler{clusterer: clusterer}
}

// Sample extracts at most k clusters from the image. Decode and clustering
// failures propagate as errors; the caller must treat an empty cluster list
// as valid input downstream.
func (s *Sampler) Sample(img image.Image, k int) ([]Cluster, error) {
	if img == nil {
		return nil, fmt.Errorf("image cannot be nil")
	}
	if k < 1 {
		return nil, fmt.Errorf("colour count must be at least 1, got %d", k)
	}

	pixels := flatten(downsample(img))
	if len(pixels) == 0 {
		return nil, fmt.Errorf("no pixels found in image")
	}

	pixels = stripExtremes(pixels)

	clusters, err := s.clusterer.Cluster(pixels, min(k, len(pixels)))
	if err != nil {
		return nil, fmt.Errorf("clustering failed: %w", err)
	}

	return clusters, nil
}

// downsample scales the image so its longer edge is at most maxLongEdge,
// using a high-quality resampling kernel. Smaller images pass through.
func downsample(img image.Image) image.Image {
	bounds := img.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()

	longEdge := max(width, height)
	if longEdge <= maxLongEdge {
		return img
	}

	scale := float64(maxLongEdge) / float64(longEdge)
	dstWidth := max(int(float64(width)*scale), 1)
	dstHeight := max(int(float64(height)*scale), 1)

	dst := image.NewRGBA(image.Rect(0, 0, dstWidth, dstHeight))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, bounds, draw.Src, nil)

	return dst
}

// flatten converts the image to a flat, row-major list of RGB pixels.
func flatten(img image.Image) []RGB {
	bounds := img.Bounds()
	pixels := make([]RGB, 0, bounds.Dx()*bounds.Dy())

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			pixels = append(pixels, ToRGB(img.At(x, y)))
		}
	}

	return pixels
}

// stripExtremes drops near-black and near-white pixels, but only when at
// least one pixel survives; a solid black or white image keeps its pixels
// rather than producing an empty sample set.
func stripExtremes(pixels []RGB) []RGB {
	kept := make([]RGB, 0, len(pixels))
	for _, p := range pixels {
		if sum := p.Sum(); sum < darkSumCutoff || sum > lightSumCutoff {
			continue
		}
		kept = append(kept, p)
	}

	if len(kept) == 0 {
		return pixels
	}
	return kept
}
