package password_test

import (
	"testing"

	"github.com/dom/user-auth-service/internal/password"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHasher_Hash(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("secretpw")
	require.NoError(t, err)
	assert.NotEmpty(t, hashed)
	assert.NotEqual(t, "secretpw", hashed)
}

func TestHasher_Hash_DifferentSalts(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	first, err := hasher.Hash("secretpw")
	require.NoError(t, err)
	second, err := hasher.Hash("secretpw")
	require.NoError(t, err)

	// Random salt: same plaintext never hashes to the same value
	assert.NotEqual(t, first, second)
	assert.True(t, hasher.Verify("secretpw", first))
	assert.True(t, hasher.Verify("secretpw", second))
}

func TestHasher_Verify(t *testing.T) {
	hasher := password.NewHasher(bcrypt.MinCost)

	hashed, err := hasher.Hash("correctpassword")
	require.NoError(t, err)

	tests := []struct {
		name      string
		plaintext string
		hashed    string
		want      bool
	}{
		{
			name:      "correct password",
			plaintext: "correctpassword",
			hashed:    hashed,
			want:      true,
		},
		{
			name:      "wrong password",
			plaintext: "wrongpassword",
			hashed:    hashed,
			want:      false,
		},
		{
			name:      "garbage hash",
			plaintext: "correctpassword",
			hashed:    "not-a-bcrypt-hash",
			want:      false,
		},
		{
			name:      "empty plaintext",
			plaintext: "",
			hashed:    hashed,
			want:      false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, hasher.Verify(tt.plaintext, tt.hashed))
		})
	}
}

func TestNewHasher_CostOutOfRange(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing
	hasher := password.NewHasher(100)

	hashed, err := hasher.Hash("secretpw")
	require.NoError(t, err)
	assert.True(t, hasher.Verify("secretpw", hashed))
}
