package voxmesh

import "io"

// bitWriter packs values LSB-first into a byte stream. Used for the
// occupancy bitmap payload of boolean grids.
type bitWriter struct {
	buf []byte
	acc uint64
	n   uint8
}

func newBitWriter() *bitWriter { return &bitWriter{buf: make([]byte, 0, 256)} }

func (w *bitWriter) writeBits(v uint64, bits uint8) {
	w.acc |= (v & ((1 << bits) - 1)) << w.n
	w.n += bits
	for w.n >= 8 {
		w.buf = append(w.buf, byte(w.acc&0xFF))
		w.acc >>= 8
		w.n -= 8
	}
}

func (w *bitWriter) bytes() []byte {
	if w.n > 0 {
		w.buf = append(w.buf, byte(w.acc&0xFF))
		w.acc = 0
		w.n = 0
	}
	return w.buf
}

type bitReader struct {
	data []byte
	acc  uint64
	n    uint8
	pos  int
}

func newBitReader(b []byte) *bitReader { return &bitReader{data: b} }

func (r *bitReader) readBits(bits uint8) (uint64, error) {
	for r.n < bits {
		if r.pos >= len(r.data) {
			return 0, io.ErrUnexpectedEOF
		}
		r.acc |= uint64(r.data[r.pos]) << r.n
		r.n += 8
		r.pos++
	}
	mask := uint64((1 << bits) - 1)
	v := r.acc & mask
	r.acc >>= bits
	r.n -= bits
	return v, nil
}
