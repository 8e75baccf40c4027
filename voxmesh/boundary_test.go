package voxmesh

import (
	"math"
	"testing"
)

func collectQuads(t *testing.T, g BoolGrid, cellSize float32) [][4][3]float32 {
	t.Helper()
	var verts [][3]float32
	bf := NewBoundaryFaces(func(v [3]float32) {
		verts = append(verts, v)
	})
	bf.MakeQuadsFromVoxels(g, cellSize)
	if len(verts)%4 != 0 {
		t.Fatalf("vertex count %d is not a multiple of 4", len(verts))
	}
	quads := make([][4][3]float32, 0, len(verts)/4)
	for i := 0; i < len(verts); i += 4 {
		quads = append(quads, [4][3]float32{verts[i], verts[i+1], verts[i+2], verts[i+3]})
	}
	return quads
}

// quadNormalArea returns the area-weighted normal of a planar quad, i.e. the
// cross-product sum of its two triangles halved.
func quadNormalArea(q [4][3]float32) [3]float64 {
	var sum [3]float64
	for _, tri := range [2][3][3]float32{{q[0], q[1], q[2]}, {q[0], q[2], q[3]}} {
		var a, b [3]float64
		for c := 0; c < 3; c++ {
			a[c] = float64(tri[1][c] - tri[0][c])
			b[c] = float64(tri[2][c] - tri[0][c])
		}
		sum[0] += (a[1]*b[2] - a[2]*b[1]) / 2
		sum[1] += (a[2]*b[0] - a[0]*b[2]) / 2
		sum[2] += (a[0]*b[1] - a[1]*b[0]) / 2
	}
	return sum
}

func TestBoundarySingleVoxel(t *testing.T) {
	g := NewBoolGrid(3, 3, 3)
	g[1][1][1] = true

	quads := collectQuads(t, g, 1)
	if len(quads) != 6 {
		t.Fatalf("got %d quads, want 6", len(quads))
	}

	center := [3]float64{1.5, 1.5, 1.5}
	for qi, q := range quads {
		n := quadNormalArea(q)
		var faceCenter [3]float64
		for _, v := range q {
			for c := 0; c < 3; c++ {
				faceCenter[c] += float64(v[c]) / 4
			}
		}
		dot := 0.0
		for c := 0; c < 3; c++ {
			dot += n[c] * (faceCenter[c] - center[c])
		}
		if dot <= 0 {
			t.Errorf("quad %d normal %v points toward the voxel center", qi, n)
		}
	}
}

func TestBoundaryFilledBlockNormalSumZero(t *testing.T) {
	g := NewBoolGrid(2, 2, 2)
	for x := range g {
		for y := range g[x] {
			for z := range g[x][y] {
				g[x][y][z] = true
			}
		}
	}

	quads := collectQuads(t, g, 1)
	// no interior walls, 4 exterior quads on each of the 6 faces
	if len(quads) != 24 {
		t.Fatalf("got %d quads, want 24", len(quads))
	}

	var sum [3]float64
	for _, q := range quads {
		n := quadNormalArea(q)
		for c := 0; c < 3; c++ {
			sum[c] += n[c]
		}
	}
	for c := 0; c < 3; c++ {
		if math.Abs(sum[c]) > 1e-9 {
			t.Fatalf("area-weighted normal sum = %v, want zero vector", sum)
		}
	}
}

func TestBoundaryInteriorWall(t *testing.T) {
	// two voxels side by side, one occupied: exactly the occupied cell's 6
	// walls, one of them internal
	g := NewBoolGrid(2, 1, 1)
	g[0][0][0] = true

	quads := collectQuads(t, g, 2)
	if len(quads) != 6 {
		t.Fatalf("got %d quads, want 6", len(quads))
	}

	// every vertex of the occupied cell's walls stays within its box
	for _, q := range quads {
		for _, v := range q {
			if v[0] < 0 || v[0] > 2 || v[1] < 0 || v[1] > 2 || v[2] < 0 || v[2] > 2 {
				t.Fatalf("vertex %v outside the occupied cell", v)
			}
		}
	}
}

func TestBoundaryEmptyGridEmitsNothing(t *testing.T) {
	quads := collectQuads(t, NewBoolGrid(3, 3, 3), 1)
	if len(quads) != 0 {
		t.Fatalf("empty grid emitted %d quads", len(quads))
	}
}
