package voxmesh

import (
	"path/filepath"
	"testing"
)

func TestScalarGridRoundTrip(t *testing.T) {
	g := NewScalarGrid(5, 3, 4)
	for x := range g {
		for y := range g[x] {
			for z := range g[x][y] {
				g[x][y][z] = float32(x) + float32(y)*0.5 + float32(z)*0.25
			}
		}
	}

	got, err := ScalarGridFromBytes(ScalarGridToBytes(g))
	if err != nil {
		t.Fatalf("ScalarGridFromBytes: %v", err)
	}
	w, h, d := got.Dims()
	if w != 5 || h != 3 || d != 4 {
		t.Fatalf("dims = %dx%dx%d, want 5x3x4", w, h, d)
	}
	for x := range g {
		for y := range g[x] {
			for z := range g[x][y] {
				if got[x][y][z] != g[x][y][z] {
					t.Fatalf("voxel (%d,%d,%d) = %v, want %v", x, y, z, got[x][y][z], g[x][y][z])
				}
			}
		}
	}
}

func TestBoolGridRoundTrip(t *testing.T) {
	g := NewBoolGrid(4, 4, 4)
	for x := range g {
		for y := range g[x] {
			for z := range g[x][y] {
				g[x][y][z] = (x+2*y+3*z)%3 == 0
			}
		}
	}

	got, err := BoolGridFromBytes(BoolGridToBytes(g))
	if err != nil {
		t.Fatalf("BoolGridFromBytes: %v", err)
	}
	for x := range g {
		for y := range g[x] {
			for z := range g[x][y] {
				if got[x][y][z] != g[x][y][z] {
					t.Fatalf("voxel (%d,%d,%d) = %v, want %v", x, y, z, got[x][y][z], g[x][y][z])
				}
			}
		}
	}
}

func TestGridFileRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "grid.vxg")

	g := NewBoolGrid(3, 3, 3)
	g[1][1][1] = true
	if err := SaveBoolGrid(g, path); err != nil {
		t.Fatalf("SaveBoolGrid: %v", err)
	}
	got, err := LoadBoolGrid(path)
	if err != nil {
		t.Fatalf("LoadBoolGrid: %v", err)
	}
	if !got[1][1][1] || got[0][0][0] {
		t.Fatal("loaded grid does not match saved grid")
	}
}

func TestVXGRejectsBadMagic(t *testing.T) {
	data := ScalarGridToBytes(NewScalarGrid(2, 2, 2))
	data[0] = 'X'
	if _, err := ScalarGridFromBytes(data); err == nil {
		t.Fatal("expected error for corrupted magic")
	}
}

func TestVXGRejectsChecksumMismatch(t *testing.T) {
	data := ScalarGridToBytes(NewScalarGrid(2, 2, 2))
	// flip a byte of the stored xxhash sum (header offset 17..24)
	data[17] ^= 0xFF
	if _, err := ScalarGridFromBytes(data); err == nil {
		t.Fatal("expected checksum mismatch error")
	}
}

func TestVXGRejectsTruncatedPayload(t *testing.T) {
	data := ScalarGridToBytes(NewScalarGrid(2, 2, 2))
	if _, err := ScalarGridFromBytes(data[:len(data)-1]); err == nil {
		t.Fatal("expected error for truncated payload")
	}
}

func TestVXGRejectsKindMismatch(t *testing.T) {
	data := BoolGridToBytes(NewBoolGrid(2, 2, 2))
	if _, err := ScalarGridFromBytes(data); err == nil {
		t.Fatal("expected kind mismatch error")
	}
	data = ScalarGridToBytes(NewScalarGrid(2, 2, 2))
	if _, err := BoolGridFromBytes(data); err == nil {
		t.Fatal("expected kind mismatch error")
	}
}
