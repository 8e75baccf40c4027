package voxmesh

// cubeOffsets are the corner positions of the unit cube relative to its
// minimum corner: the 4 bottom corners counter-clockwise, then the 4 top.
var cubeOffsets = [8][3]int{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cubeEdgePairs lists the corner-index pair of each of the 12 cube edges:
// 4 bottom, 4 top, 4 vertical.
var cubeEdgePairs = [12][2]int{
	{0, 1}, {1, 2}, {2, 3}, {3, 0},
	{4, 5}, {5, 6}, {6, 7}, {7, 4},
	{0, 4}, {1, 5}, {2, 6}, {3, 7},
}

// MarchingCube extracts the triangles of an isosurface crossing a single
// voxel cube, reporting each vertex through the emit callback in face order.
// Instances keep scratch buffers across calls and must not be shared between
// concurrent callers.
type MarchingCube struct {
	level float32
	emit  func([3]float32)

	positions    [8][3]int
	faceVertices [12][3]float32
}

// NewMarchingCube returns a cube extractor for the given isolevel. emit is
// called once per triangle vertex; the value passed is an independent copy.
func NewMarchingCube(level float32, emit func([3]float32)) *MarchingCube {
	return &MarchingCube{level: level, emit: emit}
}

func (mc *MarchingCube) valueAt(voxels ScalarGrid, corner int) float32 {
	p := mc.positions[corner]
	return voxels[p[0]][p[1]][p[2]]
}

// Calculate examines the unit cube whose minimum corner is (x,y,z) and emits
// the vertices of the triangles (at most 5) approximating the isosurface
// through it. Cubes whose far corners would fall outside the volume are
// skipped; the open boundary this leaves is closed separately by the
// marching squares passes in Isosurface.
func (mc *MarchingCube) Calculate(voxels ScalarGrid, x, y, z int) {
	for i, off := range cubeOffsets {
		mc.positions[i][0] = x + off[0]
		mc.positions[i][1] = y + off[1]
		mc.positions[i][2] = z + off[2]
		// Only the far edge of each axis is skipped; anything further out
		// is a caller error and panics on the index.
		if mc.positions[i][0] == len(voxels) ||
			mc.positions[i][1] == len(voxels[0]) ||
			mc.positions[i][2] == len(voxels[0][0]) {
			return
		}
	}

	cubeIndex := 0
	for i := 0; i < 8; i++ {
		if mc.valueAt(voxels, i) < mc.level {
			cubeIndex |= 1 << i
		}
	}

	// Entirely inside or outside the surface.
	if cubeEdges[cubeIndex] == 0 {
		return
	}

	for i, pair := range cubeEdgePairs {
		if cubeEdges[cubeIndex]&(1<<i) == 0 {
			continue
		}
		pos0 := mc.positions[pair[0]]
		pos1 := mc.positions[pair[1]]
		val0 := mc.valueAt(voxels, pair[0])
		val1 := mc.valueAt(voxels, pair[1])
		mc.faceVertices[i] = mc.interpolate(pos0, val0, pos1, val1)
	}

	for _, edge := range cubeTriangles[cubeIndex] {
		mc.emit(mc.faceVertices[edge])
	}
}

// interpolate locates where the isosurface cuts the edge between two corner
// samples. Equal samples on a crossed edge are not guarded and yield
// non-finite coordinates. The arithmetic must stay identical to the one in
// MarchingSquare so that boundary closure stitches exactly.
func (mc *MarchingCube) interpolate(pos0 [3]int, val0 float32, pos1 [3]int, val1 float32) [3]float32 {
	mu := (mc.level - val0) / (val1 - val0)
	return [3]float32{
		float32(pos0[0]) + mu*float32(pos1[0]-pos0[0]),
		float32(pos0[1]) + mu*float32(pos1[1]-pos0[1]),
		float32(pos0[2]) + mu*float32(pos1[2]-pos0[2]),
	}
}
