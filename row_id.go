package shwap

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
)

// RowIDSize is the size of the RowID binary encoding in bytes.
const RowIDSize = 8 + 2

// ErrZeroHeight is returned when an identifier is constructed or decoded
// with block height zero. The genesis block has height one, so no valid
// identifier can ever reference height zero.
var ErrZeroHeight = errors.New("shwap: zero block height")

// RowID identifies a single row of the extended data square of the block at
// a particular height.
type RowID struct {
	// Height is the height of the block the square belongs to.
	Height uint64
	// RowIndex is the index of the row within the square.
	RowIndex uint16
}

// NewRowID constructs a RowID for the given row and block height. It
// rejects height zero.
func NewRowID(rowIdx uint16, height uint64) (RowID, error) {
	if height == 0 {
		return RowID{}, ErrZeroHeight
	}
	return RowID{Height: height, RowIndex: rowIdx}, nil
}

// RowIDFromBinary decodes a RowID from its fixed-width binary form. The
// decode is all-or-nothing: a wrong length or a zero height leaves no
// partially decoded value behind.
func RowIDFromBinary(data []byte) (RowID, error) {
	if len(data) != RowIDSize {
		return RowID{}, fmt.Errorf("%w: %d, want %d", ErrInvalidMultihashLength, len(data), RowIDSize)
	}
	rid := RowID{
		Height:   binary.LittleEndian.Uint64(data[:8]),
		RowIndex: binary.LittleEndian.Uint16(data[8:]),
	}
	if rid.Height == 0 {
		return RowID{}, ErrZeroHeight
	}
	return rid, nil
}

// RowIDFromCID decodes a RowID out of a CID carrying the reserved row codec
// and multihash code.
func RowIDFromCID(c cid.Cid) (RowID, error) {
	data, err := extractFromCID(c, RowIDSize, RowMultihashCode, RowCodec)
	if err != nil {
		return RowID{}, fmt.Errorf("unwrapping RowID cid: %w", err)
	}
	return RowIDFromBinary(data)
}

// MarshalBinary encodes RowID into its fixed-width binary form: the block
// height as a little-endian uint64 followed by the row index as a
// little-endian uint16.
func (rid RowID) MarshalBinary() ([]byte, error) {
	return rid.appendTo(make([]byte, 0, RowIDSize)), nil
}

// Cid wraps the binary form of RowID into a CIDv1 under the reserved row
// codec and multihash code.
func (rid RowID) Cid() (cid.Cid, error) {
	data, err := rid.MarshalBinary()
	if err != nil {
		return cid.Undef, err
	}
	return encodeToCID(data, RowMultihashCode, RowCodec)
}

// Equals reports whether two RowIDs reference the same row of the same
// block.
func (rid RowID) Equals(other RowID) bool {
	return rid == other
}

// Validate checks that the RowID holds a usable height.
func (rid RowID) Validate() error {
	if rid.Height == 0 {
		return ErrZeroHeight
	}
	return nil
}

func (rid RowID) appendTo(data []byte) []byte {
	data = binary.LittleEndian.AppendUint64(data, rid.Height)
	return binary.LittleEndian.AppendUint16(data, rid.RowIndex)
}
