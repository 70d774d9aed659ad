package shwap

import (
	"crypto/sha256"
	"errors"
	"fmt"

	"github.com/celestiaorg/go-square/v2/share"
	"github.com/celestiaorg/nmt"
	nmtpb "github.com/celestiaorg/nmt/pb"

	"github.com/celestiaorg/shwap/pb"
)

var (
	// ErrMissingProof is returned when a wire message arrives without an
	// inclusion proof. An in-memory NamespacedData always carries one.
	ErrMissingProof = errors.New("shwap: missing proof")
	// ErrEmptyShares is returned by Validate when the envelope carries no
	// shares. A proof is never verified against zero leaves.
	ErrEmptyShares = errors.New("shwap: empty shares")
	// ErrRowIndexOutOfRange is returned by Validate when the identified row
	// lies outside the square the RootSource commits to.
	ErrRowIndexOutOfRange = errors.New("shwap: row index out of range")
	// ErrFailedVerification is returned by Validate when the proof does not
	// authenticate the shares against the row root.
	ErrFailedVerification = errors.New("shwap: failed verification")
)

// NamespacedData couples the shares of one namespace on one row of the
// extended data square with the proof of their inclusion under the row's
// commitment. Shares are kept in the left-to-right order of the row, the
// order the proof is sensitive to.
type NamespacedData struct {
	// ID locates the shares on the square.
	ID NamespacedDataID
	// Shares are the raw shares of the namespace.
	Shares [][]byte
	// Proof proves the shares are the complete set of the namespace within
	// the row.
	Proof nmt.Proof
}

// NamespacedDataFromProto converts the wire form of NamespacedData back
// into the in-memory form. Shares are carried over unchanged and in order;
// their widths are checked during Validate, not here. An envelope with zero
// shares decodes successfully and fails only on Validate, keeping the
// decode-time error set independent of the validation-time one.
func NamespacedDataFromProto(msg *pb.NamespacedData) (NamespacedData, error) {
	if msg.DataProof == nil {
		return NamespacedData{}, ErrMissingProof
	}
	ndid, err := NamespacedDataIDFromBinary(msg.DataId)
	if err != nil {
		return NamespacedData{}, fmt.Errorf("decoding NamespacedDataID: %w", err)
	}
	return NamespacedData{
		ID:     ndid,
		Shares: msg.DataShares,
		Proof:  nmt.ProtoToProof(*msg.DataProof),
	}, nil
}

// ToProto converts NamespacedData into its wire form.
func (nd NamespacedData) ToProto() *pb.NamespacedData {
	// MarshalBinary of a well-formed identifier cannot fail.
	data, _ := nd.ID.MarshalBinary()

	return &pb.NamespacedData{
		DataId:     data,
		DataShares: nd.Shares,
		DataProof: &nmtpb.Proof{
			Start:                 int64(nd.Proof.Start()),
			End:                   int64(nd.Proof.End()),
			Nodes:                 nd.Proof.Nodes(),
			LeafHash:              nd.Proof.LeafHash(),
			IsMaxNamespaceIgnored: nd.Proof.IsMaxNamespaceIDIgnored(),
		},
	}
}

// Validate authenticates the envelope against the row commitments of the
// block it references: the shares must be non-empty, the identified row
// must exist in the source and the proof must verify the shares as the
// complete set of the namespace under the row's root. Validation is pure
// and conclusive, retrying without different input is never meaningful.
func (nd NamespacedData) Validate(roots RootSource) error {
	if len(nd.Shares) == 0 {
		return ErrEmptyShares
	}

	rowIdx := int(nd.ID.RowIndex)
	root, ok := roots.RowRoot(rowIdx)
	if !ok {
		return fmt.Errorf("%w: %d", ErrRowIndexOutOfRange, rowIdx)
	}

	namespace := nd.ID.DataNamespace
	if !nd.Proof.VerifyNamespace(sha256.New(), namespace.Bytes(), nd.Shares, root) {
		return fmt.Errorf("%w: row %d, namespace %x", ErrFailedVerification, rowIdx, namespace.Bytes())
	}
	return nil
}

// NamespacedDataFromRow computes the NamespacedData of the given namespace
// out of a complete row of raw shares. Each share must start with its
// 29-byte namespace and the row must be ordered by namespace, as rows of
// the extended data square are. The proof is generated by the underlying
// namespaced merkle tree.
func NamespacedDataFromRow(
	height uint64,
	rowIdx uint16,
	namespace share.Namespace,
	row [][]byte,
) (NamespacedData, error) {
	ndid, err := NewNamespacedDataID(namespace, rowIdx, height)
	if err != nil {
		return NamespacedData{}, err
	}

	tree := nmt.New(sha256.New(), nmt.NamespaceIDSize(share.NamespaceSize), nmt.IgnoreMaxNamespace(true))
	for _, sh := range row {
		if err := tree.Push(sh); err != nil {
			return NamespacedData{}, fmt.Errorf("building row tree: %w", err)
		}
	}

	proof, err := tree.ProveNamespace(namespace.Bytes())
	if err != nil {
		return NamespacedData{}, fmt.Errorf("proving namespace: %w", err)
	}
	if proof.IsOfAbsence() || proof.Start() == proof.End() {
		return NamespacedData{}, fmt.Errorf("shwap: namespace %x is not present on row %d", namespace.Bytes(), rowIdx)
	}

	// copy the proven range so the envelope does not alias the caller's row
	shares := make([][]byte, 0, proof.End()-proof.Start())
	for _, sh := range row[proof.Start():proof.End()] {
		shares = append(shares, append([]byte(nil), sh...))
	}

	return NamespacedData{
		ID:     ndid,
		Shares: shares,
		Proof:  proof,
	}, nil
}
