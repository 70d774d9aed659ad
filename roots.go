package shwap

// RootSource supplies the row commitments of a single block's extended data
// square, typically backed by the data availability header of that block.
// Implementations are read-only from this package's perspective.
type RootSource interface {
	// RowRoot returns the root commitment of the row at the given index.
	// The second return value is false when the index lies outside the
	// square the source commits to.
	RowRoot(rowIdx int) ([]byte, bool)
}

// RowRoots is a RootSource backed by a flat list of row commitments ordered
// by row index.
type RowRoots [][]byte

// RowRoot implements RootSource.
func (r RowRoots) RowRoot(rowIdx int) ([]byte, bool) {
	if rowIdx < 0 || rowIdx >= len(r) {
		return nil, false
	}
	return r[rowIdx], true
}
