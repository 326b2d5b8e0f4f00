package cryptox

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// cheap keeps the suite fast; the format is identical to DefaultParams.
var cheap = Params{Memory: 64, Iterations: 1, Parallelism: 1, KeyLength: 32, SaltLength: 16}

func TestHasher_HashFormat(t *testing.T) {
	h := NewHasher("pepper").WithParams(cheap)

	hash, err := h.Hash("Password123!")
	require.NoError(t, err)

	parts := strings.Split(hash, "$")
	require.Len(t, parts, 6)
	require.Equal(t, "argon2id", parts[1])
	require.Equal(t, "v=19", parts[2])
	require.Equal(t, "m=64,t=1,p=1", parts[3])
	require.NotEmpty(t, parts[4])
	require.NotEmpty(t, parts[5])
}

func TestHasher_Verify(t *testing.T) {
	h := NewHasher("pepper").WithParams(cheap)

	tests := []string{"Password123!", "", "   spaces   ", "пароль🔒密码", strings.Repeat("a", 200)}
	for _, pw := range tests {
		t.Run(pw, func(t *testing.T) {
			hash, err := h.Hash(pw)
			require.NoError(t, err)
			require.NoError(t, h.Verify(pw, hash))
			require.ErrorIs(t, h.Verify(pw+"x", hash), ErrPasswordMismatch)
		})
	}
}

func TestHasher_UniqueSalts(t *testing.T) {
	h := NewHasher("pepper").WithParams(cheap)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)

	require.NotEqual(t, a, b)
	require.NoError(t, h.Verify("same", a))
	require.NoError(t, h.Verify("same", b))
}

func TestHasher_PepperMatters(t *testing.T) {
	hash, err := NewHasher("one").WithParams(cheap).Hash("Password123!")
	require.NoError(t, err)

	require.ErrorIs(t, NewHasher("two").Verify("Password123!", hash), ErrPasswordMismatch)
}

func TestHasher_VerifyMalformed(t *testing.T) {
	h := NewHasher("pepper")

	for _, bad := range []string{
		"",
		"$bcrypt$v=19$m=19456,t=2,p=1$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456",
		"$argon2id$v=19$invalid$c2FsdA$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$!!!$aGFzaA",
		"$argon2id$v=19$m=19456,t=2,p=1$c2FsdA$!!!",
		"$argon2id$v=18$m=19456,t=2,p=1$c2FsdA$aGFzaA",
	} {
		require.ErrorIs(t, h.Verify("pw", bad), ErrMalformedHash, bad)
	}
}
