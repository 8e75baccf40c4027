package voxmesh

// ScalarGrid is a dense float voxel volume indexed [x][y][z].
// Extractors treat it as read-only; callers populate it fully before a run.
type ScalarGrid [][][]float32

// BoolGrid is a dense occupancy volume indexed [x][y][z].
type BoolGrid [][][]bool

// NewScalarGrid allocates a w*h*d scalar volume filled with zeros.
func NewScalarGrid(w, h, d int) ScalarGrid {
	g := make(ScalarGrid, w)
	for x := range g {
		g[x] = make([][]float32, h)
		for y := range g[x] {
			g[x][y] = make([]float32, d)
		}
	}
	return g
}

// NewBoolGrid allocates a w*h*d occupancy volume, all false.
func NewBoolGrid(w, h, d int) BoolGrid {
	g := make(BoolGrid, w)
	for x := range g {
		g[x] = make([][]bool, h)
		for y := range g[x] {
			g[x][y] = make([]bool, d)
		}
	}
	return g
}

// Dims reports the grid extents. Ragged grids are not supported; behavior on
// a grid whose inner slices disagree in length is undefined.
func (g ScalarGrid) Dims() (w, h, d int) {
	if len(g) == 0 || len(g[0]) == 0 {
		return len(g), 0, 0
	}
	return len(g), len(g[0]), len(g[0][0])
}

// Dims reports the grid extents.
func (g BoolGrid) Dims() (w, h, d int) {
	if len(g) == 0 || len(g[0]) == 0 {
		return len(g), 0, 0
	}
	return len(g), len(g[0]), len(g[0][0])
}
