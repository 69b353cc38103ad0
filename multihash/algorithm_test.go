package multihash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/hashfile/multihash"
)

func TestSupportedAlgorithms_stable_order(t *testing.T) {
	t.Parallel()

	assert.Equal(
		t,
		[]multihash.Algorithm{
			multihash.MD5,
			multihash.SHA1,
			multihash.SHA256,
		},
		multihash.SupportedAlgorithms(),
	)
}

func TestSupportedAlgorithms_matches_accumulator_states(t *testing.T) {
	t.Parallel()

	ac := multihash.New("")

	assert.ElementsMatch(
		t,
		multihash.SupportedAlgorithms(),
		ac.StateAlgorithmsForTest(),
	)
}

func TestSupportedAlgorithms_returns_copy(t *testing.T) {
	t.Parallel()

	algs := multihash.SupportedAlgorithms()
	algs[0] = "CRC32"

	assert.Equal(t, multihash.MD5, multihash.SupportedAlgorithms()[0])
}

func TestParseAlgorithm(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in   string
		want multihash.Algorithm
	}{
		{in: "MD5", want: multihash.MD5},
		{in: "md5", want: multihash.MD5},
		{in: "sha1", want: multihash.SHA1},
		{in: "SHA-1", want: multihash.SHA1},
		{in: " sha256 ", want: multihash.SHA256},
		{in: "sha-256", want: multihash.SHA256},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			t.Parallel()

			got, err := multihash.ParseAlgorithm(tt.in)

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseAlgorithm_unknown(t *testing.T) {
	t.Parallel()

	got, err := multihash.ParseAlgorithm("sha512")

	require.ErrorIs(t, err, multihash.ErrUnsupportedAlgorithm)
	assert.Empty(t, got)
	assert.False(t, multihash.IsSupported("SHA512"))
}

func TestAlgorithm_DigestLen(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 32, multihash.MD5.DigestLen())
	assert.Equal(t, 40, multihash.SHA1.DigestLen())
	assert.Equal(t, 64, multihash.SHA256.DigestLen())
	assert.Zero(t, multihash.Algorithm("CRC32").DigestLen())
}
