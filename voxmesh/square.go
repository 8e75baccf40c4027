package voxmesh

// Winding selects the vertex order of faces emitted by MarchingSquare.
// Opposing faces of a closed volume use opposite windings so both end up
// with outward normals.
type Winding int

const (
	Clockwise Winding = iota
	CounterClockwise
)

// squareSegments maps a square case index to its crossing segments. Each
// group of 8 ints is one segment: two corner pairs (ax,ay, bx,by) whose
// interpolation gives the segment's endpoints. Cases 6 and 9 are the
// ambiguous saddles and carry two segments.
var squareSegments = [16][]int{
	{}, // case 0, all below
	{0, 1, 1, 1, 1, 0, 1, 1},
	{1, 1, 1, 0, 0, 0, 1, 0},
	{0, 1, 1, 1, 0, 0, 1, 0},
	{0, 0, 0, 1, 1, 1, 0, 1},
	{0, 0, 0, 1, 1, 0, 1, 1},
	{0, 0, 0, 1, 0, 0, 1, 0, 1, 1, 1, 0, 1, 1, 0, 1},
	{0, 0, 0, 1, 0, 0, 1, 0},
	{1, 0, 0, 0, 0, 1, 0, 0},
	{1, 0, 0, 0, 1, 0, 1, 1, 0, 1, 1, 1, 0, 1, 0, 0},
	{1, 1, 1, 0, 0, 1, 0, 0},
	{0, 1, 1, 1, 0, 1, 0, 0},
	{1, 0, 0, 0, 1, 1, 0, 1},
	{1, 0, 0, 0, 1, 0, 1, 1},
	{1, 1, 1, 0, 1, 1, 0, 1},
	{}, // case 15, all above
}

// squareTriangulations lists, per case, the triangles covering the region
// above the level. Indices 0..3 are the square corners, 4..7 the crossing
// points computed from squareSegments.
var squareTriangulations = [16][]int{
	{},
	{4, 3, 5},
	{4, 1, 5},
	{4, 3, 1, 4, 1, 5},
	{4, 2, 5},
	{4, 2, 5, 2, 3, 5},
	{4, 2, 7, 4, 7, 6, 5, 4, 6, 5, 6, 1},
	{4, 2, 3, 4, 3, 5, 3, 1, 5},
	{4, 0, 5},
	{4, 6, 5, 5, 6, 3, 4, 7, 6, 4, 0, 7},
	{4, 1, 5, 1, 0, 5},
	{5, 1, 0, 5, 3, 1, 5, 4, 3},
	{4, 0, 2, 2, 5, 4},
	{4, 0, 2, 4, 2, 5, 5, 2, 3},
	{4, 1, 0, 4, 0, 5, 0, 2, 5},
	{0, 2, 1, 2, 3, 1},
}

// MarchingSquare extracts either a triangulation of the region above a level
// or the raw boundary segments from a 2x2 sample window. The emitter is
// passed per call so orchestrators can bind the current cell offset into it
// explicitly instead of sharing mutable position state.
type MarchingSquare struct {
	level float32

	// 4 fixed corners plus up to 4 computed crossing slots. Scratch,
	// reused across calls; not safe for concurrent use.
	vertices [8][2]float32
}

// NewMarchingSquare returns a square extractor for the given level.
func NewMarchingSquare(level float32) *MarchingSquare {
	ms := &MarchingSquare{level: level}
	ms.vertices[0] = [2]float32{0, 0}
	ms.vertices[1] = [2]float32{1, 0}
	ms.vertices[2] = [2]float32{0, 1}
	ms.vertices[3] = [2]float32{1, 1}
	return ms
}

// CalculateFaces triangulates the area of the square at or above the level
// and reports each triangle vertex through emit with the requested winding.
// The same triangulation table serves both windings; CounterClockwise emits
// it in reverse, which is what lets one table close opposing faces of a
// volume with outward normals on both.
func (ms *MarchingSquare) CalculateFaces(vals [2][2]float32, winding Winding, emit func([2]float32)) {
	squareType := ms.calculateType(vals)
	ms.calculateVertices(vals, squareType)

	tri := squareTriangulations[squareType]
	for i := range tri {
		if winding == Clockwise {
			emit(ms.vertices[tri[i]])
		} else {
			emit(ms.vertices[tri[len(tri)-(i+1)]])
		}
	}
}

// CalculateLines reports the raw boundary crossing segments, two vertices
// per segment, without triangulating. Used for contour and wireframe output.
func (ms *MarchingSquare) CalculateLines(vals [2][2]float32, emit func([2]float32)) {
	squareType := ms.calculateType(vals)
	ms.calculateVertices(vals, squareType)

	for i := 0; i < len(squareSegments[squareType])/8; i++ {
		emit(ms.vertices[4+i])
		emit(ms.vertices[5+i])
	}
}

// calculateType builds the 4-bit case index. The bit-to-corner assignment
// matches every caller of this type, including the boundary closure in
// Isosurface.
func (ms *MarchingSquare) calculateType(vals [2][2]float32) int {
	squareType := 0
	if vals[0][0] > ms.level {
		squareType |= 8
	}
	if vals[0][1] > ms.level {
		squareType |= 4
	}
	if vals[1][0] > ms.level {
		squareType |= 2
	}
	if vals[1][1] > ms.level {
		squareType |= 1
	}
	return squareType
}

// calculateVertices interpolates the crossing points of the case into the
// scratch slots starting at 4. The slot arithmetic for the two-segment
// saddle cases mirrors the reference exactly, overlapping writes included.
func (ms *MarchingSquare) calculateVertices(vals [2][2]float32, squareType int) {
	seg := squareSegments[squareType]
	for i := 0; i < len(seg); i += 8 {
		posAx, posAy := seg[i], seg[i+1]
		posBx, posBy := seg[i+2], seg[i+3]

		valA := vals[posAx][posAy]
		valB := vals[posBx][posBy]
		inters1 := (ms.level - valA) / (valB - valA)

		pt1x := float32(posAx) + float32(posBx-posAx)*inters1
		pt1y := float32(posAy) + float32(posBy-posAy)*inters1

		posCx, posCy := seg[i+4], seg[i+5]
		posDx, posDy := seg[i+6], seg[i+7]

		valC := vals[posCx][posCy]
		valD := vals[posDx][posDy]
		inters2 := (ms.level - valC) / (valD - valC)

		pt2x := float32(posCx) + float32(posDx-posCx)*inters2
		pt2y := float32(posCy) + float32(posDy-posCy)*inters2

		ms.vertices[4+i/8] = [2]float32{pt1x, pt1y}
		ms.vertices[5+i/8] = [2]float32{pt2x, pt2y}
	}
}
