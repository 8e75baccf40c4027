package api

import (
	"bytes"
	"encoding/binary"
	"testing"

	"github.com/voxmesh/voxmesh/voxmesh"
)

func occupancyFixture() []byte {
	g := voxmesh.NewBoolGrid(3, 3, 3)
	g[1][1][1] = true
	return voxmesh.BoolGridToBytes(g)
}

func TestGridToSTL(t *testing.T) {
	out, err := GridToSTL(occupancyFixture(), 1, 0)
	if err != nil {
		t.Fatalf("GridToSTL: %v", err)
	}
	// a lone voxel has 6 boundary quads, split into 12 triangles
	if want := 84 + 50*12; len(out) != want {
		t.Fatalf("STL blob is %d bytes, want %d", len(out), want)
	}
	if count := binary.LittleEndian.Uint32(out[80:]); count != 12 {
		t.Fatalf("triangle count field = %d, want 12", count)
	}

	tris, err := voxmesh.ReadSTL(bytes.NewReader(out))
	if err != nil {
		t.Fatalf("ReadSTL: %v", err)
	}
	if len(tris) != 12 {
		t.Fatalf("read back %d triangles, want 12", len(tris))
	}
}

func TestGridToGLB(t *testing.T) {
	out, err := GridToGLB(occupancyFixture(), 1, 0)
	if err != nil {
		t.Fatalf("GridToGLB: %v", err)
	}
	if len(out) < 12 || string(out[:4]) != "glTF" {
		t.Fatal("output is not a GLB container")
	}
}

func TestGridToSTLRejectsGarbage(t *testing.T) {
	if _, err := GridToSTL([]byte("not a grid"), 1, 0); err == nil {
		t.Fatal("expected error for malformed input")
	}
}
