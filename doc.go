/*
Package shwap implements content-addressed identifiers for namespaced data
inside an extended data square, together with the validation protocol that
authenticates such data against the row commitments of a block header.

The package defines two identifier types. RowID points at a single row of
the square of a particular block. NamespacedDataID narrows a RowID down to
the shares of one namespace within that row. Both serialize to fixed-width
binary buffers and wrap into CIDs under reserved codec and multihash codes,
so they can serve as keys in any content-addressed store. The multihash is
not a hash at all: the digest is the identifier encoding itself, which keeps
the mapping between identifier and CID bijective.

NamespacedData couples a NamespacedDataID with the namespace's shares and an
NMT proof of their inclusion. Validate checks that the shares are the
complete, correctly ordered set for the namespace on that row, verified
against the row root supplied by a RootSource.

All types in this package are plain immutable values. Nothing here performs
I/O or holds shared state, so concurrent use needs no synchronization.
*/
package shwap
