// Package secp256k1 exposes ECDSA over secp256k1 in the fixed-size byte
// layout Ethereum tooling expects: 32-byte private keys, 64-byte public keys
// (X || Y) and 64-byte compact signatures (R || S) with a separate recovery id.
//
// All curve arithmetic is delegated to github.com/decred/dcrd/dcrec/secp256k1.
package secp256k1

import (
	"errors"
	"fmt"

	dcrsecp "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/decred/dcrd/dcrec/secp256k1/v4/ecdsa"

	"github.com/whisperchain/keccak"
)

const (
	// PrivateKeyLength is the length of a serialized private key.
	PrivateKeyLength = 32
	// PublicKeyLength is the length of an uncompressed public key without the 0x04 prefix.
	PublicKeyLength = 64
	// SignatureLength is the length of a compact R || S signature.
	SignatureLength = 64

	// compactSigMagicOffset is added to the recovery id in decred's
	// [V || R || S] compact encoding for uncompressed keys.
	compactSigMagicOffset = 27
	maxRecoveryID         = 3
)

var (
	// ErrInvalidPrivateKey indicates the private key is zero or not below the curve order.
	ErrInvalidPrivateKey = errors.New("secp256k1: invalid private key")

	// ErrInvalidPublicKey indicates the public key is not a point on the curve.
	ErrInvalidPublicKey = errors.New("secp256k1: invalid public key")

	// ErrInvalidSignature indicates R or S is zero or out of range, or recovery failed.
	ErrInvalidSignature = errors.New("secp256k1: invalid signature")

	// ErrInvalidRecoveryID indicates a recovery id outside [0, 3].
	ErrInvalidRecoveryID = errors.New("secp256k1: invalid recovery id")
)

// PrivateKey is a 32-byte big-endian scalar.
type PrivateKey [PrivateKeyLength]byte

// PublicKey is an uncompressed public key, X || Y, each 32 bytes big-endian.
type PublicKey [PublicKeyLength]byte

// Signature is a compact ECDSA signature, R || S, each 32 bytes big-endian.
type Signature [SignatureLength]byte

// GenerateKey returns a new random private key.
func GenerateKey() (PrivateKey, error) {
	priv, err := dcrsecp.GeneratePrivateKey()
	if err != nil {
		return PrivateKey{}, fmt.Errorf("secp256k1: generate key: %w", err)
	}
	defer priv.Zero()

	var k PrivateKey
	copy(k[:], priv.Serialize())
	return k, nil
}

func (k PrivateKey) toDecred() (*dcrsecp.PrivateKey, error) {
	var scalar dcrsecp.ModNScalar
	if overflow := scalar.SetByteSlice(k[:]); overflow || scalar.IsZero() {
		return nil, ErrInvalidPrivateKey
	}
	return dcrsecp.NewPrivateKey(&scalar), nil
}

// DerivePublicKey computes the public key for k.
func DerivePublicKey(k PrivateKey) (PublicKey, error) {
	priv, err := k.toDecred()
	if err != nil {
		return PublicKey{}, err
	}
	defer priv.Zero()
	return fromDecredPub(priv.PubKey()), nil
}

func fromDecredPub(pub *dcrsecp.PublicKey) PublicKey {
	var p PublicKey
	// SerializeUncompressed is 0x04 || X || Y.
	copy(p[:], pub.SerializeUncompressed()[1:])
	return p
}

func (p PublicKey) toDecred() (*dcrsecp.PublicKey, error) {
	var buf [1 + PublicKeyLength]byte
	buf[0] = 0x04
	copy(buf[1:], p[:])
	pub, err := dcrsecp.ParsePubKey(buf[:])
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidPublicKey, err)
	}
	return pub, nil
}

// Sign produces a deterministic (RFC 6979) signature of hash and the recovery
// id needed by RecoverPublicKey.
func Sign(k PrivateKey, hash [keccak.Size]byte) (Signature, byte, error) {
	priv, err := k.toDecred()
	if err != nil {
		return Signature{}, 0, err
	}
	defer priv.Zero()

	// SignCompact returns [V || R || S] where V is recovery id + 27.
	compact := ecdsa.SignCompact(priv, hash[:], false)

	var sig Signature
	copy(sig[:], compact[1:])
	return sig, compact[0] - compactSigMagicOffset, nil
}

// Verify reports whether sig is a valid signature of hash by pub.
func Verify(pub PublicKey, hash [keccak.Size]byte, sig Signature) bool {
	key, err := pub.toDecred()
	if err != nil {
		return false
	}
	var r, s dcrsecp.ModNScalar
	if r.SetByteSlice(sig[:32]) || r.IsZero() {
		return false
	}
	if s.SetByteSlice(sig[32:]) || s.IsZero() {
		return false
	}
	return ecdsa.NewSignature(&r, &s).Verify(hash[:], key)
}

// RecoverPublicKey returns the public key that produced sig over hash.
func RecoverPublicKey(hash [keccak.Size]byte, sig Signature, recoveryID byte) (PublicKey, error) {
	if recoveryID > maxRecoveryID {
		return PublicKey{}, ErrInvalidRecoveryID
	}

	var compact [1 + SignatureLength]byte
	compact[0] = compactSigMagicOffset + recoveryID
	copy(compact[1:], sig[:])

	pub, _, err := ecdsa.RecoverCompact(compact[:], hash[:])
	if err != nil {
		return PublicKey{}, fmt.Errorf("%w: %w", ErrInvalidSignature, err)
	}
	return fromDecredPub(pub), nil
}

// SignMessage signs the Keccak-256 digest of msg.
func SignMessage(k PrivateKey, msg []byte) (Signature, byte, error) {
	return Sign(k, keccak.Sum256(msg))
}

// VerifyMessage reports whether sig is a valid signature of the Keccak-256
// digest of msg by pub.
func VerifyMessage(pub PublicKey, msg []byte, sig Signature) bool {
	return Verify(pub, keccak.Sum256(msg), sig)
}
