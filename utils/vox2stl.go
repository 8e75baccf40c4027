package utils

import (
	"fmt"

	"github.com/voxmesh/voxmesh/voxmesh"
)

// RunIso2STL extracts the closed isosurface of a scalar .vxg volume and
// saves it as binary STL.
func RunIso2STL(inPath, outPath string, cellSize, level float32) error {
	grid, err := voxmesh.LoadScalarGrid(inPath)
	if err != nil {
		return err
	}

	mesh := voxmesh.NewMesh()
	mesh.MakeFromScalarVoxels(grid, cellSize, level)
	if err := mesh.SaveSTL(outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %d triangles to %s\n", mesh.TriangleCount(), outPath)
	return nil
}

// RunQuads2STL extracts boundary quads from an occupancy .vxg volume and
// saves them as binary STL (each quad split into two triangles).
func RunQuads2STL(inPath, outPath string, cellSize float32) error {
	grid, err := voxmesh.LoadBoolGrid(inPath)
	if err != nil {
		return err
	}

	mesh := voxmesh.NewMesh()
	mesh.MakeFromBoolVoxels(grid, cellSize)
	if err := mesh.SaveSTL(outPath); err != nil {
		return err
	}
	fmt.Printf("Wrote %d triangles to %s\n", mesh.TriangleCount(), outPath)
	return nil
}
