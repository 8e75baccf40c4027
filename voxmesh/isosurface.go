package voxmesh

// Isosurface produces a closed triangle mesh from a scalar voxel volume. The
// interior comes from a marching cubes pass over every cell; the 6 outer
// faces of the volume are then closed with marching squares so the result is
// watertight.
type Isosurface struct {
	emit func([3]float32)
}

// NewIsosurface returns an extractor reporting every triangle vertex, in
// face order, through emit.
func NewIsosurface(emit func([3]float32)) *Isosurface {
	return &Isosurface{emit: emit}
}

// MakeFromVoxels extracts the isosurface at the given level. Every vertex
// handed to the emitter equals (cell index + interpolation fraction) *
// cellSize on all three axes, whichever pass produced it; that shared
// convention is what makes the interior and the closing caps stitch.
func (iso *Isosurface) MakeFromVoxels(voxels ScalarGrid, cellSize, level float32) {
	w, h, d := voxels.Dims()

	cube := NewMarchingCube(level, func(vertex [3]float32) {
		iso.emit([3]float32{vertex[0] * cellSize, vertex[1] * cellSize, vertex[2] * cellSize})
	})

	for i := 0; i < w; i++ {
		for j := 0; j < h; j++ {
			for k := 0; k < d; k++ {
				cube.Calculate(voxels, i, j, k)
			}
		}
	}

	// Close the 6 sides of the box defined by the volume. Each axis pair
	// reprojects the square's 2D output into its own plane, with the cell
	// offset bound per invocation.
	square := NewMarchingSquare(level)
	var vals [2][2]float32

	// bottom and top: free axes x,y; fixed z
	for i := 0; i < w-1; i++ {
		for j := 0; j < h-1; j++ {
			emitXY := func(k int) func([2]float32) {
				return func(v [2]float32) {
					iso.emit([3]float32{
						(float32(i) + v[0]) * cellSize,
						(float32(j) + v[1]) * cellSize,
						float32(k) * cellSize,
					})
				}
			}

			vals[0][0] = voxels[i][j][0]
			vals[0][1] = voxels[i][j+1][0]
			vals[1][0] = voxels[i+1][j][0]
			vals[1][1] = voxels[i+1][j+1][0]
			square.CalculateFaces(vals, Clockwise, emitXY(0))

			top := d - 1
			vals[0][0] = voxels[i][j][top]
			vals[0][1] = voxels[i][j+1][top]
			vals[1][0] = voxels[i+1][j][top]
			vals[1][1] = voxels[i+1][j+1][top]
			square.CalculateFaces(vals, CounterClockwise, emitXY(top))
		}
	}

	// left and right: free axes y,z; fixed x
	for j := 0; j < h-1; j++ {
		for k := 0; k < d-1; k++ {
			emitYZ := func(i int) func([2]float32) {
				return func(v [2]float32) {
					iso.emit([3]float32{
						float32(i) * cellSize,
						(float32(j) + v[0]) * cellSize,
						(float32(k) + v[1]) * cellSize,
					})
				}
			}

			vals[0][0] = voxels[0][j][k]
			vals[0][1] = voxels[0][j][k+1]
			vals[1][0] = voxels[0][j+1][k]
			vals[1][1] = voxels[0][j+1][k+1]
			square.CalculateFaces(vals, Clockwise, emitYZ(0))

			right := w - 1
			vals[0][0] = voxels[right][j][k]
			vals[0][1] = voxels[right][j][k+1]
			vals[1][0] = voxels[right][j+1][k]
			vals[1][1] = voxels[right][j+1][k+1]
			square.CalculateFaces(vals, CounterClockwise, emitYZ(right))
		}
	}

	// front and back: free axes x,z; fixed y
	for i := 0; i < w-1; i++ {
		for k := 0; k < d-1; k++ {
			emitXZ := func(j int) func([2]float32) {
				return func(v [2]float32) {
					iso.emit([3]float32{
						(float32(i) + v[0]) * cellSize,
						float32(j) * cellSize,
						(float32(k) + v[1]) * cellSize,
					})
				}
			}

			vals[0][0] = voxels[i][0][k]
			vals[0][1] = voxels[i][0][k+1]
			vals[1][0] = voxels[i+1][0][k]
			vals[1][1] = voxels[i+1][0][k+1]
			square.CalculateFaces(vals, CounterClockwise, emitXZ(0))

			back := h - 1
			vals[0][0] = voxels[i][back][k]
			vals[0][1] = voxels[i][back][k+1]
			vals[1][0] = voxels[i+1][back][k]
			vals[1][1] = voxels[i+1][back][k+1]
			square.CalculateFaces(vals, Clockwise, emitXZ(back))
		}
	}
}
