package colour

import (
	"fmt"
	"math"
	"math/rand"
)

// Cluster pairs a centroid colour with the number of source pixels assigned
// to it by the clustering routine.
type Cluster struct {
	Centroid RGB
	Count    int
}

// Clusterer groups colour samples into at most k clusters. Implementations
// must be deterministic for a given configuration so that repeated runs over
// the same image produce identical schemes.
type Clusterer interface {
	// Cluster groups the samples into at most k clusters. The number of
	// returned clusters may be lower than k when the samples do not
	// support k distinct groups.
	Cluster(samples []RGB, k int) ([]Cluster, error)
}

// KMeans implements Clusterer using k-means clustering with k-means++
// initialisation. Multiple restarts are run and the partition with the
// lowest total within-cluster distance wins, which avoids poor local minima
// on images with a handful of dominant colours.
type KMeans struct {
	seed          int64
	restarts      int
	maxIterations int
	convergence   float64
}

// DefaultSeed is the clustering seed used when none is configured.
const DefaultSeed = 42

// NewKMeans creates a KMeans clusterer with default settings: 10 restarts,
// 20 Lloyd iterations per restart and the default seed.
func NewKMeans() *KMeans {
	return NewKMeansWithSeed(DefaultSeed)
}

// NewKMeansWithSeed creates a KMeans clusterer seeded with the given value.
func NewKMeansWithSeed(seed int64) *KMeans {
	return &KMeans{
		seed:          seed,
		restarts:      10,
		maxIterations: 20,
		convergence:   1.0,
	}
}

// Cluster groups the samples into at most k clusters.
func (e *KMeans) Cluster(samples []RGB, k int) ([]Cluster, error) {
	if len(samples) == 0 {
		return nil, fmt.Errorf("no samples to cluster")
	}
	if k < 1 {
		return nil, fmt.Errorf("cluster count must be at least 1, got %d", k)
	}
	if k > len(samples) {
		k = len(samples)
	}

	// If the image has no more unique colours than requested clusters,
	// every unique colour is its own cluster and the iteration below is
	// unnecessary.
	uniqueOrder := make([]RGB, 0, k+1)
	uniqueCounts := make(map[RGB]int, k+1)
	for _, s := range samples {
		if _, seen := uniqueCounts[s]; !seen {
			uniqueOrder = append(uniqueOrder, s)
		}
		uniqueCounts[s]++
	}
	if len(uniqueOrder) <= k {
		clusters := make([]Cluster, len(uniqueOrder))
		for i, c := range uniqueOrder {
			clusters[i] = Cluster{Centroid: c, Count: uniqueCounts[c]}
		}
		return clusters, nil
	}

	// Convert colours to points in RGB space.
	points := make([]point3D, len(samples))
	for i, s := range samples {
		points[i] = point3D{R: float64(s.R), G: float64(s.G), B: float64(s.B)}
	}

	// A single seeded source drives every restart, keeping the whole run
	// deterministic.
	rng := rand.New(rand.NewSource(e.seed))

	var bestCentroids []point3D
	var bestAssignments []int
	bestInertia := math.MaxFloat64

	for r := 0; r < e.restarts; r++ {
		centroids, assignments := e.run(points, k, rng)
		inertia := totalInertia(points, centroids, assignments)
		if inertia < bestInertia {
			bestInertia = inertia
			bestCentroids = centroids
			bestAssignments = assignments
		}
	}

	counts := make([]int, k)
	for _, a := range bestAssignments {
		counts[a]++
	}

	clusters := make([]Cluster, 0, k)
	for i, c := range bestCentroids {
		if counts[i] == 0 {
			continue
		}
		clusters = append(clusters, Cluster{
			Centroid: RGB{
				R: clampChannel(int(math.Round(c.R))),
				G: clampChannel(int(math.Round(c.G))),
				B: clampChannel(int(math.Round(c.B))),
			},
			Count: counts[i],
		})
	}

	return clusters, nil
}

// point3D represents a point in 3D RGB colour space.
type point3D struct {
	R, G, B float64
}

// distance calculates the Euclidean distance between two points in RGB space.
func (p point3D) distance(other point3D) float64 {
	dr := p.R - other.R
	dg := p.G - other.G
	db := p.B - other.B
	return math.Sqrt(dr*dr + dg*dg + db*db)
}

// run performs one full k-means pass (init plus Lloyd iterations) and
// returns the resulting centroids and point assignments.
func (e *KMeans) run(points []point3D, k int, rng *rand.Rand) ([]point3D, []int) {
	centroids := initialiseCentroids(points, k, rng)
	assignments := make([]int, len(points))

	for iter := 0; iter < e.maxIterations; iter++ {
		changed := 0
		for i, point := range points {
			nearest := findNearestCentroid(point, centroids)
			if assignments[i] != nearest {
				assignments[i] = nearest
				changed++
			}
		}

		// If under 1% of assignments changed we have converged.
		if iter > 0 && float64(changed)/float64(len(points)) < 0.01 {
			break
		}

		newCentroids := recalculateCentroids(points, assignments, k, rng)

		totalMovement := 0.0
		for i := range centroids {
			totalMovement += centroids[i].distance(newCentroids[i])
		}
		centroids = newCentroids

		if totalMovement/float64(k) < e.convergence {
			break
		}
	}

	return centroids, assignments
}

// initialiseCentroids chooses initial centroids using the k-means++
// strategy: the first at random, the rest proportional to squared distance
// from the nearest already-chosen centroid.
func initialiseCentroids(points []point3D, k int, rng *rand.Rand) []point3D {
	centroids := make([]point3D, 0, k)
	centroids = append(centroids, points[rng.Intn(len(points))])

	distances := make([]float64, len(points))
	for len(centroids) < k {
		totalDistance := 0.0
		for i, point := range points {
			minDist := math.MaxFloat64
			for _, centroid := range centroids {
				if d := point.distance(centroid); d < minDist {
					minDist = d
				}
			}
			distances[i] = minDist * minDist
			totalDistance += distances[i]
		}

		if totalDistance == 0 {
			// Remaining points are identical to existing centroids.
			// Perturb the last centroid slightly to keep k clusters.
			last := centroids[len(centroids)-1]
			centroids = append(centroids, point3D{R: last.R + 0.1, G: last.G + 0.1, B: last.B + 0.1})
			continue
		}

		target := rng.Float64() * totalDistance
		cumulative := 0.0
		for i, dist := range distances {
			cumulative += dist
			if cumulative >= target {
				centroids = append(centroids, points[i])
				break
			}
		}
	}

	return centroids
}

// findNearestCentroid finds the index of the nearest centroid to a point.
func findNearestCentroid(point point3D, centroids []point3D) int {
	minDist := math.MaxFloat64
	nearest := 0

	for i, centroid := range centroids {
		if dist := point.distance(centroid); dist < minDist {
			minDist = dist
			nearest = i
		}
	}

	return nearest
}

// recalculateCentroids recalculates centroid positions as the mean of the
// points assigned to each cluster. Empty clusters are reseeded from a random
// point.
func recalculateCentroids(points []point3D, assignments []int, k int, rng *rand.Rand) []point3D {
	sums := make([]point3D, k)
	counts := make([]int, k)

	for i, point := range points {
		cluster := assignments[i]
		sums[cluster].R += point.R
		sums[cluster].G += point.G
		sums[cluster].B += point.B
		counts[cluster]++
	}

	centroids := make([]point3D, k)
	for i := range centroids {
		if counts[i] > 0 {
			centroids[i] = point3D{
				R: sums[i].R / float64(counts[i]),
				G: sums[i].G / float64(counts[i]),
				B: sums[i].B / float64(counts[i]),
			}
		} else {
			centroids[i] = points[rng.Intn(len(points))]
		}
	}

	return centroids
}

// totalInertia sums the distance from every point to its assigned centroid.
// Lower is a tighter clustering.
func totalInertia(points []point3D, centroids []point3D, assignments []int) float64 {
	total := 0.0
	for i, point := range points {
		total += point.distance(centroids[assignments[i]])
	}
	return total
}
