package voxmesh

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

func singleVoxelMesh(t *testing.T) *Mesh {
	t.Helper()
	g := NewBoolGrid(3, 3, 3)
	g[1][1][1] = true
	m := NewMesh()
	m.MakeFromBoolVoxels(g, 1)
	return m
}

func TestWriteSTLFraming(t *testing.T) {
	m := singleVoxelMesh(t)
	if m.TriangleCount() != 12 {
		t.Fatalf("TriangleCount() = %d, want 12 (6 quads split)", m.TriangleCount())
	}

	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}

	wantSize := 84 + 50*m.TriangleCount()
	if buf.Len() != wantSize {
		t.Fatalf("serialized %d bytes, want %d", buf.Len(), wantSize)
	}

	data := buf.Bytes()
	for i := 0; i < 80; i++ {
		if data[i] != 0 {
			t.Fatalf("header byte %d = %d, want 0", i, data[i])
		}
	}
	if count := binary.LittleEndian.Uint32(data[80:]); count != 12 {
		t.Fatalf("count field = %d, want 12", count)
	}
}

func TestSTLQuadSplitSharesNormal(t *testing.T) {
	m := singleVoxelMesh(t)

	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	tris, err := ReadSTL(&buf)
	if err != nil {
		t.Fatalf("ReadSTL: %v", err)
	}
	if len(tris) != 12 {
		t.Fatalf("read %d triangles, want 12", len(tris))
	}

	verts := m.Vertices()
	for q := 0; q < len(tris); q += 2 {
		a, b := tris[q], tris[q+1]
		if a.Normal != b.Normal {
			t.Errorf("split pair %d has differing normals %v / %v", q/2, a.Normal, b.Normal)
		}
		v := verts[q/2*4 : q/2*4+4]
		if a.V != [3][3]float32{v[0], v[1], v[2]} {
			t.Errorf("first split of quad %d = %v, want (v0,v1,v2)", q/2, a.V)
		}
		if b.V != [3][3]float32{v[0], v[2], v[3]} {
			t.Errorf("second split of quad %d = %v, want (v0,v2,v3)", q/2, b.V)
		}
	}
}

func TestSTLTriangleMeshRoundTrip(t *testing.T) {
	g := uniformGrid(2, 2, 2, 1)
	g[0][0][0] = 0
	m := NewMesh()
	m.MakeFromScalarVoxels(g, 1, 0.5)

	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	tris, err := ReadSTL(&buf)
	if err != nil {
		t.Fatalf("ReadSTL: %v", err)
	}
	if len(tris) != m.TriangleCount() {
		t.Fatalf("read %d triangles, want %d", len(tris), m.TriangleCount())
	}
	verts := m.Vertices()
	for i, tri := range tris {
		for v := 0; v < 3; v++ {
			if tri.V[v] != verts[i*3+v] {
				t.Fatalf("triangle %d vertex %d = %v, want %v", i, v, tri.V[v], verts[i*3+v])
			}
		}
	}
}

func TestSaveSTL(t *testing.T) {
	m := singleVoxelMesh(t)
	path := filepath.Join(t.TempDir(), "voxel.stl")

	if err := m.SaveSTL(path); err != nil {
		t.Fatalf("SaveSTL: %v", err)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("stat output: %v", err)
	}
	if want := int64(84 + 50*m.TriangleCount()); info.Size() != want {
		t.Fatalf("file size %d, want %d", info.Size(), want)
	}
	if _, err := os.Stat(path + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("temporary file left behind: %v", err)
	}
}

func TestWriteSTLEmptyMesh(t *testing.T) {
	m := NewMesh()
	var buf bytes.Buffer
	if err := m.WriteSTL(&buf); err != nil {
		t.Fatalf("WriteSTL: %v", err)
	}
	if buf.Len() != 84 {
		t.Fatalf("empty mesh serialized %d bytes, want 84", buf.Len())
	}
}
