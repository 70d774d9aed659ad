package shwap

import (
	"fmt"

	"github.com/celestiaorg/go-square/v2/share"
	"github.com/ipfs/go-cid"
)

// NamespacedDataIDSize is the size of the NamespacedDataID binary encoding
// in bytes, the row identifier followed by the raw namespace.
const NamespacedDataIDSize = RowIDSize + share.NamespaceSize

// NamespacedDataID identifies the shares of a single namespace within one
// row of the extended data square. Shares of a namespace spanning several
// rows are identified by one NamespacedDataID per row.
type NamespacedDataID struct {
	RowID
	// DataNamespace is the namespace of the identified shares.
	DataNamespace share.Namespace
}

// NewNamespacedDataID constructs a NamespacedDataID for the given
// namespace, row and block height. It rejects height zero.
func NewNamespacedDataID(namespace share.Namespace, rowIdx uint16, height uint64) (NamespacedDataID, error) {
	rid, err := NewRowID(rowIdx, height)
	if err != nil {
		return NamespacedDataID{}, err
	}
	return NamespacedDataID{RowID: rid, DataNamespace: namespace}, nil
}

// NamespacedDataIDFromBinary decodes a NamespacedDataID from its
// fixed-width binary form. The decode is all-or-nothing: a malformed row or
// namespace leaves no partially decoded value behind.
func NamespacedDataIDFromBinary(data []byte) (NamespacedDataID, error) {
	if len(data) != NamespacedDataIDSize {
		return NamespacedDataID{},
			fmt.Errorf("%w: %d, want %d", ErrInvalidMultihashLength, len(data), NamespacedDataIDSize)
	}
	rid, err := RowIDFromBinary(data[:RowIDSize])
	if err != nil {
		return NamespacedDataID{}, fmt.Errorf("decoding RowID: %w", err)
	}
	ns, err := share.NewNamespaceFromBytes(data[RowIDSize:])
	if err != nil {
		return NamespacedDataID{}, fmt.Errorf("decoding namespace: %w", err)
	}
	return NamespacedDataID{RowID: rid, DataNamespace: ns}, nil
}

// NamespacedDataIDFromCID decodes a NamespacedDataID out of a CID carrying
// the reserved namespaced-data codec and multihash code.
func NamespacedDataIDFromCID(c cid.Cid) (NamespacedDataID, error) {
	data, err := extractFromCID(c, NamespacedDataIDSize, NamespacedDataMultihashCode, NamespacedDataCodec)
	if err != nil {
		return NamespacedDataID{}, fmt.Errorf("unwrapping NamespacedDataID cid: %w", err)
	}
	return NamespacedDataIDFromBinary(data)
}

// MarshalBinary encodes NamespacedDataID into its fixed-width binary form:
// the RowID encoding followed by the raw namespace bytes. There is no
// length prefix, the width is implied by the type.
func (ndid NamespacedDataID) MarshalBinary() ([]byte, error) {
	data := make([]byte, 0, NamespacedDataIDSize)
	data = ndid.RowID.appendTo(data)
	return append(data, ndid.DataNamespace.Bytes()...), nil
}

// Cid wraps the binary form of NamespacedDataID into a CIDv1 under the
// reserved namespaced-data codec and multihash code. The digest is the
// encoding itself, not a hash of it, so the CID maps back to the identifier
// losslessly.
func (ndid NamespacedDataID) Cid() (cid.Cid, error) {
	data, err := ndid.MarshalBinary()
	if err != nil {
		return cid.Undef, err
	}
	return encodeToCID(data, NamespacedDataMultihashCode, NamespacedDataCodec)
}

// Equals reports whether two NamespacedDataIDs reference the same namespace
// on the same row of the same block.
func (ndid NamespacedDataID) Equals(other NamespacedDataID) bool {
	return ndid.RowID.Equals(other.RowID) && ndid.DataNamespace.Equals(other.DataNamespace)
}

// Validate checks that the NamespacedDataID holds a usable height.
func (ndid NamespacedDataID) Validate() error {
	return ndid.RowID.Validate()
}
