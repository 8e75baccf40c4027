// Package api exposes in-memory byte-level conversions over .vxg volumes,
// suitable for embedding hosts (wasm, services) that never touch the
// filesystem.
package api

import (
	"bytes"
	"fmt"

	"github.com/qmuntal/gltf"
	"github.com/voxmesh/voxmesh/utils"
	"github.com/voxmesh/voxmesh/voxmesh"
)

// GridToSTL extracts a mesh from .vxg bytes and returns it as a binary STL
// blob. Occupancy grids yield boundary quads; scalar grids the closed
// isosurface at level.
func GridToSTL(vxg []byte, cellSize, level float32) ([]byte, error) {
	mesh, err := extract(vxg, cellSize, level)
	if err != nil {
		return nil, err
	}
	var out bytes.Buffer
	if err := mesh.WriteSTL(&out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// GridToGLB extracts a mesh from .vxg bytes and returns it as a GLB blob.
func GridToGLB(vxg []byte, cellSize, level float32) ([]byte, error) {
	mesh, err := extract(vxg, cellSize, level)
	if err != nil {
		return nil, err
	}
	doc := utils.MeshToGLTF(mesh)

	var out bytes.Buffer
	enc := gltf.NewEncoder(&out)
	enc.AsBinary = true
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

func extract(vxg []byte, cellSize, level float32) (*voxmesh.Mesh, error) {
	hdr, _, _, err := voxmesh.ReadVXGHeader(vxg)
	if err != nil {
		return nil, err
	}

	mesh := voxmesh.NewMesh()
	switch hdr.Kind {
	case voxmesh.KindBool:
		grid, err := voxmesh.BoolGridFromBytes(vxg)
		if err != nil {
			return nil, err
		}
		mesh.MakeFromBoolVoxels(grid, cellSize)
	case voxmesh.KindScalar:
		grid, err := voxmesh.ScalarGridFromBytes(vxg)
		if err != nil {
			return nil, err
		}
		mesh.MakeFromScalarVoxels(grid, cellSize, level)
	default:
		return nil, fmt.Errorf("unknown grid kind: %d", hdr.Kind)
	}
	return mesh, nil
}
