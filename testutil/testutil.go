package testutil

import (
	"math"
	"math/rand/v2"
	"sync"

	"github.com/hupe1980/kmpp/distance"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed uint64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed uint64) *RNG {
	return &RNG{
		rand: newRand(seed),
		seed: seed,
	}
}

func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed))
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand = newRand(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() uint64 {
	return r.seed
}

// UniformPoints generates random points with coordinates in range [minVal, maxVal).
// Uses a single backing array for efficiency.
func (r *RNG) UniformPoints(num, dim int, minVal, maxVal float64) [][]float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)
	span := maxVal - minVal

	for i := range num {
		p := data[i*dim : (i+1)*dim]
		for j := range p {
			p[j] = minVal + r.rand.Float64()*span
		}
		points[i] = p
	}

	return points
}

// ClusteredPoints generates num points scattered with Gaussian noise around
// `clusters` well separated centers. The i-th point belongs to center
// i%clusters; the label slice records that.
// Centers sit on a grid with the given separation, so clusters do not overlap
// as long as spread is small relative to separation.
func (r *RNG) ClusteredPoints(num, dim, clusters int, separation, spread float64) ([][]float64, []int) {
	centers := make([][]float64, clusters)
	for c := range clusters {
		center := make([]float64, dim)
		// Spread centers over the first coordinates, one grid step each.
		center[c%dim] = separation * float64(c/dim+1)
		centers[c] = center
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	data := make([]float64, num*dim)
	points := make([][]float64, num)
	labels := make([]int, num)

	for i := range num {
		label := i % clusters
		center := centers[label]
		p := data[i*dim : (i+1)*dim]
		for j := range dim {
			p[j] = center[j] + r.rand.NormFloat64()*spread
		}
		points[i] = p
		labels[i] = label
	}

	return points, labels
}

// Assign returns, for every point, the index of its nearest centroid.
// This is the assignment half of a Lloyd iteration, used to drive seeding
// and convergence checks in tests.
func Assign(points, centroids [][]float64) []int {
	labels := make([]int, len(points))
	for i, p := range points {
		best := -1
		bestDist := math.Inf(1)
		for j, c := range centroids {
			if d := distance.SquaredEuclidean(p, c); d < bestDist {
				bestDist = d
				best = j
			}
		}
		labels[i] = best
	}
	return labels
}

// Recompute returns new centroids as the mean of their assigned points.
// A centroid without points keeps its previous position.
func Recompute(points [][]float64, labels []int, previous [][]float64) [][]float64 {
	k := len(previous)
	dim := len(previous[0])

	sums := make([][]float64, k)
	counts := make([]int, k)
	for j := range k {
		sums[j] = make([]float64, dim)
	}

	for i, p := range points {
		j := labels[i]
		for d := range dim {
			sums[j][d] += p[d]
		}
		counts[j]++
	}

	next := make([][]float64, k)
	for j := range k {
		if counts[j] == 0 {
			next[j] = append([]float64(nil), previous[j]...)
			continue
		}
		scale := 1.0 / float64(counts[j])
		for d := range dim {
			sums[j][d] *= scale
		}
		next[j] = sums[j]
	}
	return next
}

// Contains reports whether p equals (coordinate-wise) one of points.
func Contains(points [][]float64, p []float64) bool {
	for _, q := range points {
		if len(q) != len(p) {
			continue
		}
		equal := true
		for i := range q {
			if q[i] != p[i] {
				equal = false
				break
			}
		}
		if equal {
			return true
		}
	}
	return false
}
