package secp256k1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/whisperchain/keccak"
)

func mustPrivateKey(t *testing.T, s string) PrivateKey {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	require.Len(t, b, PrivateKeyLength)
	return PrivateKey(b)
}

func TestDerivePublicKey_Generator(t *testing.T) {
	t.Parallel()

	// Private key 1 yields the generator point G.
	var k PrivateKey
	k[31] = 1

	pub, err := DerivePublicKey(k)
	require.NoError(t, err)
	assert.Equal(t,
		"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"+
			"483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8",
		hex.EncodeToString(pub[:]))
}

func TestDerivePublicKey_InvalidKey(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		key  string
	}{
		{name: "zero", key: "0000000000000000000000000000000000000000000000000000000000000000"},
		{name: "curve order", key: "fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141"},
		{name: "all ones", key: "ffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffff"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			_, err := DerivePublicKey(mustPrivateKey(t, tc.key))
			require.ErrorIs(t, err, ErrInvalidPrivateKey)

			_, _, err = Sign(mustPrivateKey(t, tc.key), keccak.Sum256(nil))
			require.ErrorIs(t, err, ErrInvalidPrivateKey)
		})
	}
}

func TestSignVerifyRecover(t *testing.T) {
	t.Parallel()

	k := mustPrivateKey(t, "4c0883a69102937d6231471b5dbb6204fe5129617082792ae468d01a3f362318")
	pub, err := DerivePublicKey(k)
	require.NoError(t, err)

	hash := keccak.Sum256([]byte("Sign this message"))
	sig, recID, err := Sign(k, hash)
	require.NoError(t, err)
	assert.LessOrEqual(t, recID, byte(3))
	assert.True(t, Verify(pub, hash, sig))

	recovered, err := RecoverPublicKey(hash, sig, recID)
	require.NoError(t, err)
	assert.Equal(t, pub, recovered)

	// RFC 6979 signatures are deterministic.
	sig2, recID2, err := Sign(k, hash)
	require.NoError(t, err)
	assert.Equal(t, sig, sig2)
	assert.Equal(t, recID, recID2)
}

func TestVerify_Rejects(t *testing.T) {
	t.Parallel()

	k, err := GenerateKey()
	require.NoError(t, err)
	pub, err := DerivePublicKey(k)
	require.NoError(t, err)

	hash := keccak.Sum256([]byte("hello"))
	sig, _, err := Sign(k, hash)
	require.NoError(t, err)

	other := keccak.Sum256([]byte("hellp"))
	assert.False(t, Verify(pub, other, sig), "wrong hash")

	tampered := sig
	tampered[10] ^= 0x01
	assert.False(t, Verify(pub, hash, tampered), "tampered R")

	assert.False(t, Verify(pub, hash, Signature{}), "zero signature")
	assert.False(t, Verify(PublicKey{}, hash, sig), "off-curve public key")
}

func TestRecoverPublicKey_Errors(t *testing.T) {
	t.Parallel()

	k, err := GenerateKey()
	require.NoError(t, err)
	hash := keccak.Sum256([]byte("hello"))
	sig, _, err := Sign(k, hash)
	require.NoError(t, err)

	_, err = RecoverPublicKey(hash, sig, 4)
	require.ErrorIs(t, err, ErrInvalidRecoveryID)

	_, err = RecoverPublicKey(hash, Signature{}, 0)
	require.ErrorIs(t, err, ErrInvalidSignature)
}

func TestSignMessage(t *testing.T) {
	t.Parallel()

	k, err := GenerateKey()
	require.NoError(t, err)
	pub, err := DerivePublicKey(k)
	require.NoError(t, err)

	msg := []byte("Hello, WhisperChain!")
	sig, recID, err := SignMessage(k, msg)
	require.NoError(t, err)
	assert.True(t, VerifyMessage(pub, msg, sig))
	assert.False(t, VerifyMessage(pub, []byte("Hello, WhisperChain?"), sig))

	recovered, err := RecoverPublicKey(keccak.Sum256(msg), sig, recID)
	require.NoError(t, err)
	assert.Equal(t, pub, recovered)
}

func TestGenerateKey_Distinct(t *testing.T) {
	t.Parallel()

	a, err := GenerateKey()
	require.NoError(t, err)
	b, err := GenerateKey()
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}
