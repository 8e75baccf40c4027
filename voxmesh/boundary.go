package voxmesh

// BoundaryFaces produces quad meshes from boolean voxel volumes: one quad
// per wall between an occupied and an empty cell, plus the outer walls of
// occupied cells on the 6 faces of the volume. Winding is chosen so every
// quad's normal points out of the occupied region.
type BoundaryFaces struct {
	emit func([3]float32)
}

// NewBoundaryFaces returns an extractor reporting every quad vertex, 4 per
// quad in face order, through emit.
func NewBoundaryFaces(emit func([3]float32)) *BoundaryFaces {
	return &BoundaryFaces{emit: emit}
}

func (bf *BoundaryFaces) addQuad(vertices *[4][3]float32, clockwise bool) {
	if clockwise {
		for i := 0; i < 4; i++ {
			bf.emit(vertices[i])
		}
	} else {
		for i := 3; i >= 0; i-- {
			bf.emit(vertices[i])
		}
	}
}

// MakeQuadsFromVoxels walks the volume and emits the boundary quads of the
// occupied region, each cell scaled to cellSize.
func (bf *BoundaryFaces) MakeQuadsFromVoxels(voxels BoolGrid, cellSize float32) {
	w, h, d := voxels.Dims()
	var vertices [4][3]float32

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			for k := 0; k < d; k++ {
				fi, fj, fk := float32(i), float32(j), float32(k)

				// internal walls perpendicular to x
				if i > 0 && voxels[i-1][j][k] != voxels[i][j][k] {
					vertices[0] = [3]float32{fi * cellSize, fj * cellSize, fk * cellSize}
					vertices[1] = [3]float32{fi * cellSize, (fj + 1) * cellSize, fk * cellSize}
					vertices[2] = [3]float32{fi * cellSize, (fj + 1) * cellSize, (fk + 1) * cellSize}
					vertices[3] = [3]float32{fi * cellSize, fj * cellSize, (fk + 1) * cellSize}
					// winding depends on which neighbor is occupied
					bf.addQuad(&vertices, voxels[i-1][j][k])
				}
				// internal walls perpendicular to y
				if j > 0 && voxels[i][j-1][k] != voxels[i][j][k] {
					vertices[0] = [3]float32{fi * cellSize, fj * cellSize, fk * cellSize}
					vertices[1] = [3]float32{(fi + 1) * cellSize, fj * cellSize, fk * cellSize}
					vertices[2] = [3]float32{(fi + 1) * cellSize, fj * cellSize, (fk + 1) * cellSize}
					vertices[3] = [3]float32{fi * cellSize, fj * cellSize, (fk + 1) * cellSize}
					bf.addQuad(&vertices, voxels[i][j][k])
				}
				// internal walls perpendicular to z
				if k > 0 && voxels[i][j][k-1] != voxels[i][j][k] {
					vertices[0] = [3]float32{fi * cellSize, fj * cellSize, fk * cellSize}
					vertices[1] = [3]float32{(fi + 1) * cellSize, fj * cellSize, fk * cellSize}
					vertices[2] = [3]float32{(fi + 1) * cellSize, (fj + 1) * cellSize, fk * cellSize}
					vertices[3] = [3]float32{fi * cellSize, (fj + 1) * cellSize, fk * cellSize}
					bf.addQuad(&vertices, voxels[i][j][k-1])
				}
			}
		}
	}

	// left and right walls
	for j := 0; j < h; j++ {
		for k := 0; k < d; k++ {
			fj, fk := float32(j), float32(k)

			if voxels[0][j][k] {
				xPos := float32(0)
				vertices[0] = [3]float32{xPos, fj * cellSize, fk * cellSize}
				vertices[1] = [3]float32{xPos, (fj + 1) * cellSize, fk * cellSize}
				vertices[2] = [3]float32{xPos, (fj + 1) * cellSize, (fk + 1) * cellSize}
				vertices[3] = [3]float32{xPos, fj * cellSize, (fk + 1) * cellSize}
				bf.addQuad(&vertices, false)
			}

			if voxels[w-1][j][k] {
				xPos := float32(w) * cellSize
				vertices[0] = [3]float32{xPos, fj * cellSize, fk * cellSize}
				vertices[1] = [3]float32{xPos, (fj + 1) * cellSize, fk * cellSize}
				vertices[2] = [3]float32{xPos, (fj + 1) * cellSize, (fk + 1) * cellSize}
				vertices[3] = [3]float32{xPos, fj * cellSize, (fk + 1) * cellSize}
				bf.addQuad(&vertices, true)
			}
		}
	}

	// front and back walls
	for i := 0; i < w; i++ {
		for k := 0; k < d; k++ {
			fi, fk := float32(i), float32(k)

			if voxels[i][0][k] {
				yPos := float32(0)
				vertices[0] = [3]float32{fi * cellSize, yPos, fk * cellSize}
				vertices[1] = [3]float32{(fi + 1) * cellSize, yPos, fk * cellSize}
				vertices[2] = [3]float32{(fi + 1) * cellSize, yPos, (fk + 1) * cellSize}
				vertices[3] = [3]float32{fi * cellSize, yPos, (fk + 1) * cellSize}
				bf.addQuad(&vertices, true)
			}

			if voxels[i][h-1][k] {
				yPos := float32(h) * cellSize
				vertices[0] = [3]float32{fi * cellSize, yPos, fk * cellSize}
				vertices[1] = [3]float32{(fi + 1) * cellSize, yPos, fk * cellSize}
				vertices[2] = [3]float32{(fi + 1) * cellSize, yPos, (fk + 1) * cellSize}
				vertices[3] = [3]float32{fi * cellSize, yPos, (fk + 1) * cellSize}
				bf.addQuad(&vertices, false)
			}
		}
	}

	// bottom and top walls
	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			fi, fj := float32(i), float32(j)

			if voxels[i][j][0] {
				zPos := float32(0)
				vertices[0] = [3]float32{fi * cellSize, fj * cellSize, zPos}
				vertices[1] = [3]float32{(fi + 1) * cellSize, fj * cellSize, zPos}
				vertices[2] = [3]float32{(fi + 1) * cellSize, (fj + 1) * cellSize, zPos}
				vertices[3] = [3]float32{fi * cellSize, (fj + 1) * cellSize, zPos}
				bf.addQuad(&vertices, false)
			}

			if voxels[i][j][d-1] {
				zPos := float32(d) * cellSize
				vertices[0] = [3]float32{fi * cellSize, fj * cellSize, zPos}
				vertices[1] = [3]float32{(fi + 1) * cellSize, fj * cellSize, zPos}
				vertices[2] = [3]float32{(fi + 1) * cellSize, (fj + 1) * cellSize, zPos}
				vertices[3] = [3]float32{fi * cellSize, (fj + 1) * cellSize, zPos}
				bf.addQuad(&vertices, true)
			}
		}
	}
}
