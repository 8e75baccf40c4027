package voxmesh

// GridKind distinguishes the two volume payloads a .vxg file can carry.
type GridKind uint8

const (
	KindBool   GridKind = 0 // occupancy bitmap, 1 bit per voxel
	KindScalar GridKind = 1 // little-endian float32 per voxel
)

// VXGHeader holds the fixed fields of a .vxg grid file header. The codec
// byte is not part of this struct because it is chosen per save from
// whichever compresses best; it is stored alongside the payload.
// Ver must be 1 for VXG v1.
type VXGHeader struct {
	Ver  uint8
	Kind GridKind
	W    uint16
	H    uint16
	D    uint16
	PLen uint32 // payload length as stored (after compression)
	Sum  uint64 // xxhash64 of the uncompressed payload
}
