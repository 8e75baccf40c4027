package voxmesh

import (
	"bytes"
	"compress/zlib"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"

	xxhash "github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"
)

// .vxg is the volume interchange file: magic "VXGR", a VXGHeader plus the
// per-file codec byte, then the (possibly compressed) payload. Voxels are
// stored x fastest, then y, then z.

const vxgMagic = "VXGR"

const (
	codecRaw  uint8 = 0
	codecZlib uint8 = 1
	codecZstd uint8 = 2
)

// SaveScalarGrid writes the volume to filename as a .vxg file.
func SaveScalarGrid(grid ScalarGrid, filename string) error {
	return os.WriteFile(filename, ScalarGridToBytes(grid), 0644)
}

// SaveBoolGrid writes the volume to filename as a .vxg file.
func SaveBoolGrid(grid BoolGrid, filename string) error {
	return os.WriteFile(filename, BoolGridToBytes(grid), 0644)
}

// ScalarGridToBytes returns the .vxg file as bytes instead of writing to disk.
func ScalarGridToBytes(grid ScalarGrid) []byte {
	w, h, d := grid.Dims()
	payload := make([]byte, 0, w*h*d*4)
	var scratch [4]byte
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				binary.LittleEndian.PutUint32(scratch[:], math.Float32bits(grid[x][y][z]))
				payload = append(payload, scratch[:]...)
			}
		}
	}
	return buildVXG(KindScalar, w, h, d, payload)
}

// BoolGridToBytes returns the .vxg file as bytes instead of writing to disk.
// The occupancy payload packs one bit per voxel.
func BoolGridToBytes(grid BoolGrid) []byte {
	w, h, d := grid.Dims()
	bw := newBitWriter()
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if grid[x][y][z] {
					bw.writeBits(1, 1)
				} else {
					bw.writeBits(0, 1)
				}
			}
		}
	}
	return buildVXG(KindBool, w, h, d, bw.bytes())
}

// buildVXG frames an uncompressed payload with the common header, picking
// whichever codec stores it smallest.
func buildVXG(kind GridKind, w, h, d int, payload []byte) []byte {
	codec, stored := bestCodec(payload)

	var buf bytes.Buffer
	buf.WriteString(vxgMagic)
	_ = binary.Write(&buf, binary.LittleEndian, uint8(1))
	_ = binary.Write(&buf, binary.LittleEndian, uint8(kind))
	_ = binary.Write(&buf, binary.LittleEndian, codec)
	_ = binary.Write(&buf, binary.LittleEndian, uint16(w))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(h))
	_ = binary.Write(&buf, binary.LittleEndian, uint16(d))
	_ = binary.Write(&buf, binary.LittleEndian, uint32(len(stored)))
	_ = binary.Write(&buf, binary.LittleEndian, xxhash.Sum64(payload))
	_, _ = buf.Write(stored)
	return buf.Bytes()
}

func bestCodec(payload []byte) (uint8, []byte) {
	codec, best := codecRaw, payload
	if zb := zlibCompress(payload); len(zb) < len(best) {
		codec, best = codecZlib, zb
	}
	if sb := zstdCompress(payload); len(sb) < len(best) {
		codec, best = codecZstd, sb
	}
	return codec, best
}

func zlibCompress(b []byte) []byte {
	var buf bytes.Buffer
	zw, _ := zlib.NewWriterLevel(&buf, zlib.BestCompression)
	_, _ = zw.Write(b)
	_ = zw.Close()
	return buf.Bytes()
}

func zlibDecompress(b []byte) ([]byte, error) {
	zr, err := zlib.NewReader(bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return io.ReadAll(zr)
}

func zstdCompress(b []byte) []byte {
	zw, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBestCompression))
	return zw.EncodeAll(b, nil)
}

func zstdDecompress(b []byte) ([]byte, error) {
	zr, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer zr.Close()
	return zr.DecodeAll(b, nil)
}

// ReadVXGHeader parses the header of a .vxg file held in memory and returns
// it together with the per-file codec and the decompressed, checksum-
// verified payload.
func ReadVXGHeader(data []byte) (VXGHeader, uint8, []byte, error) {
	var hdr VXGHeader
	if len(data) < 25 || string(data[:4]) != vxgMagic {
		return hdr, 0, nil, fmt.Errorf("not a VXG file")
	}
	r := bytes.NewReader(data[4:])
	var kind, codec uint8
	if err := binary.Read(r, binary.LittleEndian, &hdr.Ver); err != nil {
		return hdr, 0, nil, err
	}
	if hdr.Ver != 1 {
		return hdr, 0, nil, fmt.Errorf("unsupported VXG version: %d", hdr.Ver)
	}
	_ = binary.Read(r, binary.LittleEndian, &kind)
	_ = binary.Read(r, binary.LittleEndian, &codec)
	_ = binary.Read(r, binary.LittleEndian, &hdr.W)
	_ = binary.Read(r, binary.LittleEndian, &hdr.H)
	_ = binary.Read(r, binary.LittleEndian, &hdr.D)
	_ = binary.Read(r, binary.LittleEndian, &hdr.PLen)
	_ = binary.Read(r, binary.LittleEndian, &hdr.Sum)
	hdr.Kind = GridKind(kind)

	stored := data[25:]
	if uint32(len(stored)) != hdr.PLen {
		return hdr, 0, nil, fmt.Errorf("invalid payload length (want %d, have %d)", hdr.PLen, len(stored))
	}

	payload := stored
	var err error
	switch codec {
	case codecRaw:
	case codecZlib:
		if payload, err = zlibDecompress(stored); err != nil {
			return hdr, 0, nil, fmt.Errorf("zlib payload: %w", err)
		}
	case codecZstd:
		if payload, err = zstdDecompress(stored); err != nil {
			return hdr, 0, nil, fmt.Errorf("zstd payload: %w", err)
		}
	default:
		return hdr, 0, nil, fmt.Errorf("unknown codec: %d", codec)
	}

	if sum := xxhash.Sum64(payload); sum != hdr.Sum {
		return hdr, 0, nil, fmt.Errorf("payload checksum mismatch")
	}
	return hdr, codec, payload, nil
}

// LoadScalarGrid reads a scalar .vxg file.
func LoadScalarGrid(filename string) (ScalarGrid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return ScalarGridFromBytes(data)
}

// ScalarGridFromBytes parses a scalar .vxg file from memory.
func ScalarGridFromBytes(data []byte) (ScalarGrid, error) {
	hdr, _, payload, err := ReadVXGHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.Kind != KindScalar {
		return nil, fmt.Errorf("not a scalar grid (kind %d)", hdr.Kind)
	}
	w, h, d := int(hdr.W), int(hdr.H), int(hdr.D)
	if len(payload) != w*h*d*4 {
		return nil, fmt.Errorf("scalar payload size %d does not match %dx%dx%d", len(payload), w, h, d)
	}
	grid := NewScalarGrid(w, h, d)
	off := 0
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				grid[x][y][z] = math.Float32frombits(binary.LittleEndian.Uint32(payload[off:]))
				off += 4
			}
		}
	}
	return grid, nil
}

// LoadBoolGrid reads an occupancy .vxg file.
func LoadBoolGrid(filename string) (BoolGrid, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	return BoolGridFromBytes(data)
}

// BoolGridFromBytes parses an occupancy .vxg file from memory.
func BoolGridFromBytes(data []byte) (BoolGrid, error) {
	hdr, _, payload, err := ReadVXGHeader(data)
	if err != nil {
		return nil, err
	}
	if hdr.Kind != KindBool {
		return nil, fmt.Errorf("not an occupancy grid (kind %d)", hdr.Kind)
	}
	w, h, d := int(hdr.W), int(hdr.H), int(hdr.D)
	grid := NewBoolGrid(w, h, d)
	br := newBitReader(payload)
	for z := 0; z < d; z++ {
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				bit, err := br.readBits(1)
				if err != nil {
					return nil, fmt.Errorf("occupancy payload truncated: %w", err)
				}
				grid[x][y][z] = bit != 0
			}
		}
	}
	return grid, nil
}
