package shwap_test

import (
	"testing"

	fuzz "github.com/google/gofuzz"
	"github.com/ipfs/go-cid"
	mh "github.com/multiformats/go-multihash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/celestiaorg/shwap"
)

func TestNewRowID(t *testing.T) {
	rid, err := shwap.NewRowID(5, 100)
	require.NoError(t, err)
	assert.Equal(t, uint64(100), rid.Height)
	assert.Equal(t, uint16(5), rid.RowIndex)

	_, err = shwap.NewRowID(5, 0)
	assert.ErrorIs(t, err, shwap.ErrZeroHeight)
}

func TestRowIDBinaryRoundTrip(t *testing.T) {
	rid, err := shwap.NewRowID(7, 64)
	require.NoError(t, err)

	data, err := rid.MarshalBinary()
	require.NoError(t, err)
	require.Len(t, data, shwap.RowIDSize)

	// height is little-endian first, then the row index
	assert.Equal(t, []byte{64, 0, 0, 0, 0, 0, 0, 0, 7, 0}, data)

	decoded, err := shwap.RowIDFromBinary(data)
	require.NoError(t, err)
	assert.True(t, rid.Equals(decoded))
}

func TestRowIDFromBinaryErrors(t *testing.T) {
	_, err := shwap.RowIDFromBinary(make([]byte, shwap.RowIDSize-1))
	assert.ErrorIs(t, err, shwap.ErrInvalidMultihashLength)

	_, err = shwap.RowIDFromBinary(make([]byte, shwap.RowIDSize+1))
	assert.ErrorIs(t, err, shwap.ErrInvalidMultihashLength)

	// encoded height of zero is rejected even with the correct width
	_, err = shwap.RowIDFromBinary(make([]byte, shwap.RowIDSize))
	assert.ErrorIs(t, err, shwap.ErrZeroHeight)
}

func TestRowIDCidRoundTrip(t *testing.T) {
	rid, err := shwap.NewRowID(42, 1)
	require.NoError(t, err)

	c, err := rid.Cid()
	require.NoError(t, err)
	assert.EqualValues(t, shwap.RowCodec, c.Prefix().Codec)

	dec, err := mh.Decode(c.Hash())
	require.NoError(t, err)
	assert.EqualValues(t, shwap.RowMultihashCode, dec.Code)
	assert.Equal(t, shwap.RowIDSize, dec.Length)

	decoded, err := shwap.RowIDFromCID(c)
	require.NoError(t, err)
	assert.True(t, rid.Equals(decoded))
}

func TestRowIDFromCIDErrors(t *testing.T) {
	rid, err := shwap.NewRowID(0, 10)
	require.NoError(t, err)
	data, err := rid.MarshalBinary()
	require.NoError(t, err)

	t.Run("foreign codec", func(t *testing.T) {
		buf, err := mh.Encode(data, shwap.RowMultihashCode)
		require.NoError(t, err)
		_, err = shwap.RowIDFromCID(cid.NewCidV1(4321, buf))
		assert.ErrorIs(t, err, shwap.ErrInvalidCIDCodec)
	})

	t.Run("foreign multihash code", func(t *testing.T) {
		buf, err := mh.Encode(data, 888)
		require.NoError(t, err)
		_, err = shwap.RowIDFromCID(cid.NewCidV1(shwap.RowCodec, buf))
		assert.ErrorIs(t, err, shwap.ErrInvalidMultihashCode)
	})

	t.Run("truncated digest", func(t *testing.T) {
		buf, err := mh.Encode(data[:shwap.RowIDSize-2], shwap.RowMultihashCode)
		require.NoError(t, err)
		_, err = shwap.RowIDFromCID(cid.NewCidV1(shwap.RowCodec, buf))
		assert.ErrorIs(t, err, shwap.ErrInvalidMultihashLength)
	})
}

func TestFuzzRowIDRoundTrip(t *testing.T) {
	f := fuzz.New().NilChance(0)

	var (
		height uint64
		rowIdx uint16
	)
	for i := 0; i < 1000; i++ {
		f.Fuzz(&height)
		f.Fuzz(&rowIdx)
		if height == 0 {
			continue
		}

		rid, err := shwap.NewRowID(rowIdx, height)
		require.NoError(t, err)

		c, err := rid.Cid()
		require.NoError(t, err)

		decoded, err := shwap.RowIDFromCID(c)
		require.NoError(t, err)
		require.Equal(t, rid, decoded)
	}
}
