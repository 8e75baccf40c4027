package utils

import (
	"math"
	"os"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"github.com/voxmesh/voxmesh/voxmesh"
)

// RunVXG2GLB converts a .vxg volume to a GLB mesh. Occupancy grids go
// through the boundary-quad extractor; scalar grids through the isosurface
// extractor at the given level.
func RunVXG2GLB(inPath, outPath string, cellSize, level float32) error {
	data, err := os.ReadFile(inPath)
	if err != nil {
		return err
	}
	hdr, _, _, err := voxmesh.ReadVXGHeader(data)
	if err != nil {
		return err
	}

	mesh := voxmesh.NewMesh()
	switch hdr.Kind {
	case voxmesh.KindBool:
		grid, err := voxmesh.BoolGridFromBytes(data)
		if err != nil {
			return err
		}
		mesh.MakeFromBoolVoxels(grid, cellSize)
	default:
		grid, err := voxmesh.ScalarGridFromBytes(data)
		if err != nil {
			return err
		}
		mesh.MakeFromScalarVoxels(grid, cellSize, level)
	}

	doc := MeshToGLTF(mesh)
	return gltf.SaveBinary(doc, outPath)
}

// MeshToGLTF builds a single-primitive glTF document from the extracted
// triangle soup, with flat per-face normals.
func MeshToGLTF(mesh *voxmesh.Mesh) *gltf.Document {
	positions := triangleSoup(mesh)

	indices := make([]uint32, len(positions))
	for i := range indices {
		indices[i] = uint32(i)
	}

	// flat normals per face
	normals := make([][3]float32, len(positions))
	for i := 0; i+2 < len(positions); i += 3 {
		p0, p1, p2 := positions[i], positions[i+1], positions[i+2]
		vec1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		vec2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		cross := [3]float32{
			vec1[1]*vec2[2] - vec1[2]*vec2[1],
			vec1[2]*vec2[0] - vec1[0]*vec2[2],
			vec1[0]*vec2[1] - vec1[1]*vec2[0],
		}
		length := float32(math.Sqrt(float64(cross[0]*cross[0] + cross[1]*cross[1] + cross[2]*cross[2])))
		if length > 0 {
			cross[0] /= length
			cross[1] /= length
			cross[2] /= length
		}
		normals[i] = cross
		normals[i+1] = cross
		normals[i+2] = cross
	}

	doc := gltf.NewDocument()
	doc.Asset.Generator = "voxmesh -> GLB"

	posAccessor := modeler.WritePosition(doc, positions)
	normalAccessor := modeler.WriteNormal(doc, normals)
	indicesAccessor := modeler.WriteIndices(doc, indices)

	prim := &gltf.Primitive{
		Attributes: map[string]int{
			gltf.POSITION: posAccessor,
			gltf.NORMAL:   normalAccessor,
		},
		Indices: gltf.Index(indicesAccessor),
	}

	pbr := &gltf.PBRMetallicRoughness{
		BaseColorFactor: &[4]float64{1, 1, 1, 1},
		MetallicFactor:  gltf.Float(0),
		RoughnessFactor: gltf.Float(1),
	}
	doc.Materials = []*gltf.Material{{PBRMetallicRoughness: pbr, AlphaMode: gltf.AlphaOpaque}}
	prim.Material = gltf.Index(0)

	doc.Meshes = []*gltf.Mesh{{Name: "VoxelMesh", Primitives: []*gltf.Primitive{prim}}}
	doc.Nodes = []*gltf.Node{{Mesh: gltf.Index(0)}}
	doc.Scenes[0].Nodes = append(doc.Scenes[0].Nodes, 0)
	return doc
}

// triangleSoup returns the mesh vertices as a pure triangle list, splitting
// quads the same way the STL writer does.
func triangleSoup(mesh *voxmesh.Mesh) [][3]float32 {
	verts := mesh.Vertices()
	if mesh.Kind() != voxmesh.QuadFaces {
		out := make([][3]float32, len(verts))
		copy(out, verts)
		return out
	}
	out := make([][3]float32, 0, len(verts)/4*6)
	for i := 0; i+3 < len(verts); i += 4 {
		out = append(out, verts[i], verts[i+1], verts[i+2])
		out = append(out, verts[i], verts[i+2], verts[i+3])
	}
	return out
}
