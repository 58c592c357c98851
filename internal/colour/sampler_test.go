package colour

import (
	"fmt"
	"image"
	"image/color"
	"testing"
)

// fakeClusterer records the samples handed to it and returns canned
// clusters, so sampler behaviour can be tested without statistics.
type fakeClusterer struct {
	samples  []RGB
	k        int
	clusters []Cluster
	err      error
}

func (f *fakeClusterer) Cluster(samples []RGB, k int) ([]Cluster, error) {
	f.samples = samples
	f.k = k
	if f.err != nil {
		return nil, f.err
	}
	return f.clusters, nil
}

// solidImage builds a width x height image filled with a single colour.
func solidImage(width, height int, c RGB) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: c.R, G: c.G, B: c.B, A: 255})
		}
	}
	return img
}

func TestSamplerStripsExtremesBySum(t *testing.T) {
	// (5,5,0) sums to exactly 10 and is kept; (3,3,3) sums to 9 and is
	// dropped; (250,250,250) sums to 750 and is dropped.
	img := image.NewRGBA(image.Rect(0, 0, 3, 1))
	img.Set(0, 0, color.RGBA{R: 5, G: 5, B: 0, A: 255})
	img.Set(1, 0, color.RGBA{R: 3, G: 3, B: 3, A: 255})
	img.Set(2, 0, color.RGBA{R: 250, G: 250, B: 250, A: 255})

	fake := &fakeClusterer{clusters: []Cluster{{Centroid: RGB{R: 5, G: 5, B: 0}, Count: 1}}}
	if _, err := NewSampler(fake).Sample(img, 16); err != nil {
		t.Fatalf("Sample() unexpected error: %v", err)
	}

	want := []RGB{{R: 5, G: 5, B: 0}}
	if len(fake.samples) != 1 || fake.samples[0] != want[0] {
		t.Errorf("clusterer received %+v, want %+v", fake.samples, want)
	}
}

func TestSamplerKeepsSolidExtremeImages(t *testing.T) {
	// A solid black image would lose every pixel to the strip rule; the
	// guard keeps the original sample set instead.
	tests := []struct {
		name string
		fill RGB
	}{
		{name: "solid black", fill: RGB{R: 0, G: 0, B: 0}},
		{name: "solid white", fill: RGB{R: 255, G: 255, B: 255}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fake := &fakeClusterer{clusters: []Cluster{{Centroid: tt.fill, Count: 4}}}
			if _, err := NewSampler(fake).Sample(solidImage(2, 2, tt.fill), 16); err != nil {
				t.Fatalf("Sample() unexpected error: %v", err)
			}
			if len(fake.samples) != 4 {
				t.Errorf("clusterer received %d samples, want 4", len(fake.samples))
			}
			for _, s := range fake.samples {
				if s != tt.fill {
					t.Errorf("sample %+v, want %+v", s, tt.fill)
				}
			}
		})
	}
}

func TestSamplerClampsKToSamples(t *testing.T) {
	fake := &fakeClusterer{clusters: []Cluster{{Centroid: RGB{R: 100, G: 100, B: 100}, Count: 4}}}
	if _, err := NewSampler(fake).Sample(solidImage(2, 2, RGB{R: 100, G: 100, B: 100}), 16); err != nil {
		t.Fatalf("Sample() unexpected error: %v", err)
	}
	if fake.k != 4 {
		t.Errorf("clusterer received k=%d, want 4 (min of requested and samples)", fake.k)
	}
}

func TestSamplerDownsamplesLargeImages(t *testing.T) {
	// 900x450: the longer edge shrinks to 300, so at most 300*150 pixels
	// reach the clusterer.
	fake := &fakeClusterer{clusters: []Cluster{{Centroid: RGB{R: 100, G: 100, B: 100}, Count: 1}}}
	if _, err := NewSampler(fake).Sample(solidImage(900, 450, RGB{R: 100, G: 100, B: 100}), 16); err != nil {
		t.Fatalf("Sample() unexpected error: %v", err)
	}
	if len(fake.samples) != 300*150 {
		t.Errorf("clusterer received %d samples, want %d", len(fake.samples), 300*150)
	}
}

func TestSamplerSmallImagePassesThrough(t *testing.T) {
	fake := &fakeClusterer{clusters: []Cluster{{Centroid: RGB{R: 100, G: 100, B: 100}, Count: 1}}}
	if _, err := NewSampler(fake).Sample(solidImage(300, 200, RGB{R: 100, G: 100, B: 100}), 16); err != nil {
		t.Fatalf("Sample() unexpected error: %v", err)
	}
	if len(fake.samples) != 300*200 {
		t.Errorf("clusterer received %d samples, want %d (no downsampling at the edge bound)", len(fake.samples), 300*200)
	}
}

func TestSamplerPropagatesClustererFailure(t *testing.T) {
	fake := &fakeClusterer{err: fmt.Errorf("cluster blew up")}
	if _, err := NewSampler(fake).Sample(solidImage(2, 2, RGB{R: 100, G: 100, B: 100}), 16); err == nil {
		t.Error("Sample() expected error, got nil")
	}
}

func TestSamplerRejectsNilImage(t *testing.T) {
	fake := &fakeClusterer{}
	if _, err := NewSampler(fake).Sample(nil, 16); err == nil {
		t.Error("Sample(nil) expected error, got nil")
	}
}
