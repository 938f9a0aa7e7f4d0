// Package address derives Ethereum account addresses from secp256k1 public
// keys and formats them with EIP-55 checksums.
package address

import (
	"encoding/hex"
	"errors"
	"strings"

	"github.com/whisperchain/keccak"
	"github.com/whisperchain/keccak/secp256k1"
)

// Length is the length of an Ethereum address in bytes.
const Length = 20

// ErrInvalidAddress indicates the address is not 40 hex digits with an optional 0x prefix.
var ErrInvalidAddress = errors.New("address: invalid address format")

// Address represents a 20-byte Ethereum address.
type Address [Length]byte

// FromPublicKey returns the last 20 bytes of the Keccak-256 digest of X || Y.
func FromPublicKey(pub secp256k1.PublicKey) Address {
	digest := keccak.Sum256(pub[:])
	return Address(digest[keccak.Size-Length:])
}

// FromPrivateKey derives the address controlled by k.
func FromPrivateKey(k secp256k1.PrivateKey) (Address, error) {
	pub, err := secp256k1.DerivePublicKey(k)
	if err != nil {
		return Address{}, err
	}
	return FromPublicKey(pub), nil
}

// Parse decodes a hex address. The string may optionally start with "0x".
// Letter case is not checked; use IsChecksumValid for that.
func Parse(s string) (Address, error) {
	if len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X') {
		s = s[2:]
	}
	if len(s) != 2*Length {
		return Address{}, ErrInvalidAddress
	}

	var a Address
	if _, err := hex.Decode(a[:], []byte(s)); err != nil {
		return Address{}, ErrInvalidAddress
	}
	return a, nil
}

// Bytes returns the address as a byte slice.
func (a Address) Bytes() []byte {
	return a[:]
}

// Hex returns the lowercase hex form with 0x prefix.
func (a Address) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

// Checksum returns the EIP-55 mixed-case form with 0x prefix.
func (a Address) Checksum() string {
	var lower [2 * Length]byte
	hex.Encode(lower[:], a[:])
	digest := keccak.Sum256(lower[:])

	result := make([]byte, 2+2*Length)
	result[0] = '0'
	result[1] = 'x'
	for i, c := range lower {
		// Nibble i of the digest decides the case of hex character i.
		nibble := digest[i/2] >> 4
		if i%2 == 1 {
			nibble = digest[i/2] & 0x0f
		}
		if c >= 'a' && nibble >= 8 {
			c -= 'a' - 'A'
		}
		result[2+i] = c
	}
	return string(result)
}

// String returns the EIP-55 checksummed form.
func (a Address) String() string {
	return a.Checksum()
}

// IsChecksumValid reports whether s parses and is either all lowercase, all
// uppercase, or exactly the EIP-55 checksummed form.
func IsChecksumValid(s string) bool {
	a, err := Parse(s)
	if err != nil {
		return false
	}
	body := s[len(s)-2*Length:]
	if body == strings.ToLower(body) || body == strings.ToUpper(body) {
		return true
	}
	return "0x"+body == a.Checksum()
}
