package voxmesh

import "math"

// FaceKind is the primitive kind a Mesh holds for one extraction run.
type FaceKind int

const (
	TriangleFaces FaceKind = iota
	QuadFaces
)

// Mesh accumulates the vertex stream of one extraction run. Vertices arrive
// in strict face order, 3 per triangle or 4 per quad, and the whole mesh is
// owned by the assembler until handed over for serialization.
type Mesh struct {
	kind  FaceKind
	faces [][3]float32
}

// NewMesh returns an empty triangle mesh.
func NewMesh() *Mesh {
	return &Mesh{kind: TriangleFaces}
}

// MakeFromScalarVoxels replaces the mesh contents with the closed isosurface
// of the scalar volume at the given level.
func (m *Mesh) MakeFromScalarVoxels(voxels ScalarGrid, cellSize, level float32) {
	m.kind = TriangleFaces
	m.faces = m.faces[:0]
	iso := NewIsosurface(func(vertex [3]float32) {
		m.faces = append(m.faces, vertex)
	})
	iso.MakeFromVoxels(voxels, cellSize, level)
}

// MakeFromBoolVoxels replaces the mesh contents with the boundary quads of
// the occupied region of the volume.
func (m *Mesh) MakeFromBoolVoxels(voxels BoolGrid, cellSize float32) {
	m.kind = QuadFaces
	m.faces = m.faces[:0]
	bf := NewBoundaryFaces(func(vertex [3]float32) {
		m.faces = append(m.faces, vertex)
	})
	bf.MakeQuadsFromVoxels(voxels, cellSize)
}

// Kind reports the primitive kind of the current contents.
func (m *Mesh) Kind() FaceKind { return m.kind }

// Vertices returns the accumulated vertex stream in face order.
func (m *Mesh) Vertices() [][3]float32 { return m.faces }

// TriangleCount is the number of triangles serialization will produce; quads
// count double since each is split in two.
func (m *Mesh) TriangleCount() int {
	if m.kind == QuadFaces {
		return len(m.faces) / 2
	}
	return len(m.faces) / 3
}

// normal computes the unit normal of the face (v0,v1,v2) by the right-hand
// rule. A degenerate face divides by a zero magnitude and propagates
// non-finite components rather than being patched over.
func normal(v0, v1, v2 [3]float32) [3]float32 {
	v01 := [3]float32{v1[0] - v0[0], v1[1] - v0[1], v1[2] - v0[2]}
	v02 := [3]float32{v2[0] - v0[0], v2[1] - v0[1], v2[2] - v0[2]}

	n := [3]float32{
		v01[1]*v02[2] - v01[2]*v02[1],
		v01[2]*v02[0] - v01[0]*v02[2],
		v01[0]*v02[1] - v01[1]*v02[0],
	}

	size := float32(math.Sqrt(float64(n[0]*n[0] + n[1]*n[1] + n[2]*n[2])))
	n[0] /= size
	n[1] /= size
	n[2] /= size
	return n
}
