package voxmesh

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

const stlHeaderSize = 80

// stlRecord is one 50-byte STL triangle: normal, three vertices in face
// order, and the unused attribute count.
type stlRecord struct {
	Normal  [3]float32
	V0      [3]float32
	V1      [3]float32
	V2      [3]float32
	AttrLen uint16
}

// WriteSTL serializes the mesh in binary STL: an 80-byte zero header, a
// little-endian uint32 triangle count, then one 50-byte record per triangle.
// Quads are split into (v0,v1,v2) and (v0,v2,v3); the second triangle reuses
// the first one's normal. Total output is exactly 84 + 50*TriangleCount()
// bytes.
func (m *Mesh) WriteSTL(w io.Writer) error {
	var header [stlHeaderSize]byte
	if _, err := w.Write(header[:]); err != nil {
		return fmt.Errorf("write stl header: %w", err)
	}
	if err := binary.Write(w, binary.LittleEndian, uint32(m.TriangleCount())); err != nil {
		return fmt.Errorf("write stl triangle count: %w", err)
	}

	if m.kind == QuadFaces {
		for i := 0; i+3 < len(m.faces); i += 4 {
			v0, v1, v2, v3 := m.faces[i], m.faces[i+1], m.faces[i+2], m.faces[i+3]
			n := normal(v0, v1, v2)
			if err := writeRecord(w, stlRecord{Normal: n, V0: v0, V1: v1, V2: v2}); err != nil {
				return err
			}
			if err := writeRecord(w, stlRecord{Normal: n, V0: v0, V1: v2, V2: v3}); err != nil {
				return err
			}
		}
		return nil
	}

	for i := 0; i+2 < len(m.faces); i += 3 {
		v0, v1, v2 := m.faces[i], m.faces[i+1], m.faces[i+2]
		rec := stlRecord{Normal: normal(v0, v1, v2), V0: v0, V1: v1, V2: v2}
		if err := writeRecord(w, rec); err != nil {
			return err
		}
	}
	return nil
}

func writeRecord(w io.Writer, rec stlRecord) error {
	if err := binary.Write(w, binary.LittleEndian, &rec); err != nil {
		return fmt.Errorf("write stl triangle: %w", err)
	}
	return nil
}

// SaveSTL writes the mesh to filename as binary STL. The file appears only
// once fully written: output goes to a temporary sibling that is renamed on
// success and removed on any failure, so a short write never leaves a
// truncated file framed as valid.
func (m *Mesh) SaveSTL(filename string) (err error) {
	tmp := filename + ".tmp"
	f, err := os.Create(tmp)
	if err != nil {
		return fmt.Errorf("create %s: %w", tmp, err)
	}
	defer func() {
		if err != nil {
			f.Close()
			os.Remove(tmp)
		}
	}()

	bw := bufio.NewWriter(f)
	if err = m.WriteSTL(bw); err != nil {
		return err
	}
	if err = bw.Flush(); err != nil {
		return fmt.Errorf("flush %s: %w", tmp, err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", tmp, err)
	}
	if err = os.Rename(tmp, filename); err != nil {
		return fmt.Errorf("rename %s: %w", tmp, err)
	}
	return nil
}

// STLTriangle is one parsed record of a binary STL file.
type STLTriangle struct {
	Normal [3]float32
	V      [3][3]float32
}

// ReadSTL parses a binary STL stream back into its triangle records.
func ReadSTL(r io.Reader) ([]STLTriangle, error) {
	var preamble struct {
		Header [stlHeaderSize]byte
		Count  uint32
	}
	if err := binary.Read(r, binary.LittleEndian, &preamble); err != nil {
		return nil, fmt.Errorf("read stl header: %w", err)
	}

	tris := make([]STLTriangle, 0, preamble.Count)
	for i := uint32(0); i < preamble.Count; i++ {
		var rec stlRecord
		if err := binary.Read(r, binary.LittleEndian, &rec); err != nil {
			return nil, fmt.Errorf("read stl triangle %d: %w", i, err)
		}
		tris = append(tris, STLTriangle{
			Normal: rec.Normal,
			V:      [3][3]float32{rec.V0, rec.V1, rec.V2},
		})
	}
	return tris, nil
}
