package voxmesh

import "testing"

func uniformGrid(w, h, d int, v float32) ScalarGrid {
	g := NewScalarGrid(w, h, d)
	for x := range g {
		for y := range g[x] {
			for z := range g[x][y] {
				g[x][y][z] = v
			}
		}
	}
	return g
}

func collectCube(t *testing.T, g ScalarGrid, level float32) [][3]float32 {
	t.Helper()
	var got [][3]float32
	cube := NewMarchingCube(level, func(v [3]float32) {
		got = append(got, v)
	})
	w, h, d := g.Dims()
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			for k := 0; k < d; k++ {
				cube.Calculate(g, i, j, k)
			}
		}
	}
	return got
}

func TestCubeUniformVolumeEmitsNothing(t *testing.T) {
	for _, v := range []float32{0, 1} {
		got := collectCube(t, uniformGrid(4, 4, 4, v), 0.5)
		if len(got) != 0 {
			t.Fatalf("uniform volume at %v emitted %d vertices, want 0", v, len(got))
		}
	}
}

func TestCubeSingleCornerBelow(t *testing.T) {
	g := uniformGrid(2, 2, 2, 1)
	g[0][0][0] = 0

	got := collectCube(t, g, 0.5)
	if len(got) != 3 {
		t.Fatalf("got %d vertices, want 3 (one triangle)", len(got))
	}

	// All three crossings sit at the midpoint of an edge incident to the
	// below-level corner.
	want := map[[3]float32]bool{
		{0.5, 0, 0}: true,
		{0, 0.5, 0}: true,
		{0, 0, 0.5}: true,
	}
	for _, v := range got {
		if !want[v] {
			t.Errorf("unexpected vertex %v", v)
		}
		delete(want, v)
	}
	if len(want) != 0 {
		t.Errorf("missing vertices: %v", want)
	}
}

func TestCubeSkipsTopmostOrigins(t *testing.T) {
	g := uniformGrid(2, 2, 2, 1)
	g[1][1][1] = 0

	var got [][3]float32
	cube := NewMarchingCube(0.5, func(v [3]float32) {
		got = append(got, v)
	})
	// Any origin whose far corner would leave the volume is skipped, even
	// when the cube straddles the level.
	cube.Calculate(g, 1, 0, 0)
	cube.Calculate(g, 0, 1, 0)
	cube.Calculate(g, 1, 1, 1)
	if len(got) != 0 {
		t.Fatalf("out-of-range origins emitted %d vertices, want 0", len(got))
	}

	cube.Calculate(g, 0, 0, 0)
	if len(got) != 3 {
		t.Fatalf("got %d vertices, want 3", len(got))
	}
}

func TestCubeEmissionsAreCopies(t *testing.T) {
	g := uniformGrid(3, 2, 2, 1)
	g[0][0][0] = 0
	g[2][0][0] = 0

	var got [][3]float32
	cube := NewMarchingCube(0.5, func(v [3]float32) {
		got = append(got, v)
	})
	cube.Calculate(g, 0, 0, 0)
	first := append([][3]float32(nil), got...)
	cube.Calculate(g, 1, 0, 0)

	for i, v := range first {
		if got[i] != v {
			t.Fatalf("vertex %d changed after later call: %v != %v", i, got[i], v)
		}
	}
}
