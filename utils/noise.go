package utils

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/voxmesh/voxmesh/voxmesh"
)

// generateNoiseGrid creates a dim^3 occupancy grid with a given percentage
// of voxels set, chosen uniformly at random.
func generateNoiseGrid(dim int, percentage float64, r *rand.Rand) voxmesh.BoolGrid {
	if percentage < 0 {
		percentage = 0
	}
	if percentage > 100 {
		percentage = 100
	}
	total := dim * dim * dim
	want := int(float64(total)*(percentage/100.0) + 0.5)
	if want > total {
		want = total
	}

	// Fisher-Yates shuffle only the first 'want' items for efficiency
	idx := make([]int, total)
	for i := range idx {
		idx[i] = i
	}
	for i := 0; i < want; i++ {
		j := i + r.Intn(total-i)
		idx[i], idx[j] = idx[j], idx[i]
	}

	grid := voxmesh.NewBoolGrid(dim, dim, dim)
	for k := 0; k < want; k++ {
		i := idx[k]
		x := i % dim
		y := (i / dim) % dim
		z := i / (dim * dim)
		grid[x][y][z] = true
	}
	return grid
}

// generateSphereGrid creates a dim^3 scalar field holding, per voxel, the
// distance from the volume center. Extracting at level r yields a sphere of
// that radius.
func generateSphereGrid(dim int) voxmesh.ScalarGrid {
	grid := voxmesh.NewScalarGrid(dim, dim, dim)
	c := float64(dim-1) / 2
	for x := 0; x < dim; x++ {
		for y := 0; y < dim; y++ {
			for z := 0; z < dim; z++ {
				dx := float64(x) - c
				dy := float64(y) - c
				dz := float64(z) - c
				grid[x][y][z] = float32(math.Sqrt(dx*dx + dy*dy + dz*dz))
			}
		}
	}
	return grid
}

// RunGenNoise writes a dim^3 random occupancy volume with the given fill
// percentage to outPath as .vxg.
func RunGenNoise(outPath string, dim int, percentage float64) error {
	if dim < 2 {
		return fmt.Errorf("dim must be at least 2, got %d", dim)
	}
	r := rand.New(rand.NewSource(time.Now().UnixNano()))
	grid := generateNoiseGrid(dim, percentage, r)
	return voxmesh.SaveBoolGrid(grid, outPath)
}

// RunGenSphere writes a dim^3 center-distance scalar volume to outPath as
// .vxg. Extract it at any level below dim/2 for a closed sphere.
func RunGenSphere(outPath string, dim int) error {
	if dim < 2 {
		return fmt.Errorf("dim must be at least 2, got %d", dim)
	}
	return voxmesh.SaveScalarGrid(generateSphereGrid(dim), outPath)
}
