package voxmesh

import "testing"

// crossedEdges derives, for a case index, which edges must be crossed: those
// whose two corners fall on opposite sides of the level.
func crossedEdges(caseIndex int) map[int]bool {
	crossed := make(map[int]bool)
	for e, pair := range cubeEdgePairs {
		a := caseIndex>>pair[0]&1 != 0
		b := caseIndex>>pair[1]&1 != 0
		if a != b {
			crossed[e] = true
		}
	}
	return crossed
}

func TestCubeTablesConsistent(t *testing.T) {
	for i := 0; i < 256; i++ {
		want := crossedEdges(i)

		mask := cubeEdges[i]
		for e := 0; e < 12; e++ {
			if want[e] != (mask&(1<<e) != 0) {
				t.Fatalf("case %d: edge mask bit %d disagrees with corner signs", i, e)
			}
		}

		tri := cubeTriangles[i]
		if len(tri)%3 != 0 || len(tri) > 15 {
			t.Fatalf("case %d: triangle list length %d", i, len(tri))
		}
		used := make(map[int]bool)
		for _, e := range tri {
			if int(e) > 11 {
				t.Fatalf("case %d: edge index %d out of range", i, e)
			}
			if !want[int(e)] {
				t.Fatalf("case %d: triangle references uncrossed edge %d", i, e)
			}
			used[int(e)] = true
		}
		if len(tri) > 0 && len(used) != len(want) {
			t.Fatalf("case %d: triangles use %d edges, crossing count is %d", i, len(used), len(want))
		}
	}

	if len(cubeTriangles[0]) != 0 || len(cubeTriangles[255]) != 0 {
		t.Fatal("all-in/all-out cases must emit nothing")
	}
}

func TestCubeEdgeMaskComplementSymmetry(t *testing.T) {
	for i := 0; i < 256; i++ {
		if cubeEdges[i] != cubeEdges[255-i] {
			t.Fatalf("edge mask of case %d differs from its complement", i)
		}
	}
}

func TestSquareTablesConsistent(t *testing.T) {
	for i := 0; i < 16; i++ {
		seg := squareSegments[i]
		if len(seg)%8 != 0 {
			t.Fatalf("case %d: segment list length %d", i, len(seg))
		}
		tri := squareTriangulations[i]
		if len(tri)%3 != 0 {
			t.Fatalf("case %d: triangulation length %d", i, len(tri))
		}
		for _, v := range tri {
			if v < 0 || v > 7 {
				t.Fatalf("case %d: vertex index %d out of range", i, v)
			}
		}
	}
	if len(squareSegments[0]) != 0 || len(squareSegments[15]) != 0 {
		t.Fatal("uniform squares must have no crossings")
	}
	if len(squareTriangulations[15]) != 6 {
		t.Fatal("all-above square must triangulate fully")
	}
}
