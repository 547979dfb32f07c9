// Copyright (C) 2024, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package ed25519

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/require"
)

var (
	TestPrivateKey = PrivateKey(
		[PrivateKeyLen]byte{
			32, 241, 118, 222, 210, 13, 164, 128, 3, 18,
			109, 215, 176, 215, 168, 171, 194, 181, 4, 11,
			253, 199, 173, 240, 107, 148, 127, 190, 48, 164,
			12, 48, 115, 50, 124, 153, 59, 53, 196, 150, 168,
			143, 151, 235, 222, 128, 136, 161, 9, 40, 139, 85,
			182, 153, 68, 135, 62, 166, 45, 235, 251, 246, 69, 7,
		},
	)
	TestPublicKey = []byte{
		115, 50, 124, 153, 59, 53, 196, 150, 168, 143, 151, 235,
		222, 128, 136, 161, 9, 40, 139, 85, 182, 153, 68, 135,
		62, 166, 45, 235, 251, 246, 69, 7,
	}
)

func TestGeneratePrivateKeyDifferent(t *testing.T) {
	require := require.New(t)

	m := make(map[PrivateKey]bool)
	for i := 0; i < 10; i++ {
		priv, err := GeneratePrivateKey()
		require.NoError(err)
		require.NotEqual(EmptyPrivateKey, priv)
		require.False(m[priv], "duplicate private key generated")
		m[priv] = true
	}
}

func TestPublicKeyValid(t *testing.T) {
	require := require.New(t)

	var expectedPubKey PublicKey
	copy(expectedPubKey[:], TestPublicKey)
	require.Equal(expectedPubKey, TestPrivateKey.PublicKey())
	addr := TestPrivateKey.Address()
	require.Equal(TestPublicKey, addr[:])
}

func TestToPrivateKey(t *testing.T) {
	require := require.New(t)

	priv, err := ToPrivateKey(TestPrivateKey[:])
	require.NoError(err)
	require.Equal(TestPrivateKey, priv)

	_, err = ToPrivateKey(TestPrivateKey[:PrivateKeySeedLen])
	require.ErrorIs(err, ErrInvalidPrivateKey)

	tampered := TestPrivateKey
	tampered[PrivateKeyLen-1]++
	_, err = ToPrivateKey(tampered[:])
	require.ErrorIs(err, ErrInvalidPrivateKey)
}

func TestSignMatchesStdLib(t *testing.T) {
	require := require.New(t)

	msg := []byte("msg")
	var expectedSig Signature
	copy(expectedSig[:], ed25519.Sign(TestPrivateKey[:], msg))
	require.Equal(expectedSig, Sign(msg, TestPrivateKey))
}

func TestVerify(t *testing.T) {
	require := require.New(t)

	msg := []byte("msg")
	sig := Sign(msg, TestPrivateKey)
	require.True(Verify(msg, TestPrivateKey.PublicKey(), sig))
	require.False(Verify([]byte("diff msg"), TestPrivateKey.PublicKey(), sig))

	other, err := GeneratePrivateKey()
	require.NoError(err)
	require.False(Verify(msg, other.PublicKey(), sig))
}
