package shwap

import (
	"errors"
	"fmt"

	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
)

// Reserved codec and multihash codes claimed by this package inside the
// generic CID format. The multihash codes mark the digest as a raw
// identifier encoding rather than a cryptographic hash output.
const (
	// RowCodec is the CID codec of RowID.
	RowCodec = 0x7810
	// RowMultihashCode is the multihash code of the RowID encoding.
	RowMultihashCode = 0x7811
	// NamespacedDataCodec is the CID codec of NamespacedDataID.
	NamespacedDataCodec = 0x7820
	// NamespacedDataMultihashCode is the multihash code of the
	// NamespacedDataID encoding.
	NamespacedDataMultihashCode = 0x7821
)

var (
	// ErrInvalidCIDCodec is returned when a CID carries a codec not reserved
	// by this package for the identifier being decoded.
	ErrInvalidCIDCodec = errors.New("shwap: invalid cid codec")
	// ErrInvalidMultihashLength is returned when the digest length recorded
	// in a multihash does not match the identifier's fixed width.
	ErrInvalidMultihashLength = errors.New("shwap: invalid multihash length")
	// ErrInvalidMultihashCode is returned when a multihash carries a code
	// not reserved by this package for the identifier being decoded.
	ErrInvalidMultihashCode = errors.New("shwap: invalid multihash code")
)

// encodeToCID wraps an already encoded identifier into a CIDv1 under the
// given codec and multihash code. Wrapping a fixed-width buffer cannot
// produce an oversized digest, so the only possible failures come from the
// multihash library itself.
func encodeToCID(data []byte, mhCode, codec uint64) (cid.Cid, error) {
	buf, err := mh.Encode(data, mhCode)
	if err != nil {
		return cid.Undef, fmt.Errorf("encoding multihash: %w", err)
	}
	return cid.NewCidV1(codec, buf), nil
}

// extractFromCID unwraps the raw identifier digest from the given CID,
// checking, in order: the CID codec, the recorded digest length and the
// multihash code. The ordering keeps diagnostics precise: a foreign codec
// is never misreported as a length or hash-code problem, and a wrong hash
// code never masks a truncated digest.
func extractFromCID(c cid.Cid, size int, mhCode, codec uint64) ([]byte, error) {
	if got := c.Prefix().Codec; got != codec {
		return nil, fmt.Errorf("%w: %x, want %x", ErrInvalidCIDCodec, got, codec)
	}
	dec, err := mh.Decode(c.Hash())
	if err != nil {
		return nil, fmt.Errorf("decoding multihash: %w", err)
	}
	if dec.Length != size {
		return nil, fmt.Errorf("%w: %d, want %d", ErrInvalidMultihashLength, dec.Length, size)
	}
	if dec.Code != mhCode {
		return nil, fmt.Errorf("%w: %x, want %x", ErrInvalidMultihashCode, dec.Code, mhCode)
	}
	return dec.Digest, nil
}
