package utils

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/himtourism/homestay-portal/internal/config"
)

func testConfig() *config.Config {
	return &config.Config{
		JWT: config.JWTConfig{
			Secret:    "test-secret",
			ExpiresIn: 3600,
		},
	}
}

func TestJWTRoundTrip(t *testing.T) {
	cfg := testConfig()

	token, err := GenerateJWT("64f1a2b3c4d5e6f7a8b9c0d1", "applicant", cfg)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateJWT(token, cfg)
	require.NoError(t, err)
	assert.Equal(t, "64f1a2b3c4d5e6f7a8b9c0d1", claims["user_id"])
	assert.Equal(t, "applicant", claims["role"])
}

func TestValidateJWT_RejectsWrongSecret(t *testing.T) {
	token, err := GenerateJWT("id", "officer", testConfig())
	require.NoError(t, err)

	other := testConfig()
	other.JWT.Secret = "different-secret"
	_, err = ValidateJWT(token, other)
	assert.Error(t, err)
}

func TestGenerateApplicationNo_Format(t *testing.T) {
	no := GenerateApplicationNo()
	assert.Regexp(t, fmt.Sprintf(`^HS-%d-[0-9A-F]{8}$`, time.Now().Year()), no)
	assert.NotEqual(t, no, GenerateApplicationNo())
}

func TestGenerateRegistrationNo_Format(t *testing.T) {
	no := GenerateRegistrationNo("Chamba")
	assert.Regexp(t, fmt.Sprintf(`^HPHS/CHAMBA/%d/[0-9A-F]{6}$`, time.Now().Year()), no)

	spaced := GenerateRegistrationNo("Lahaul and Spiti")
	assert.Contains(t, spaced, "/LAHAULANDSPITI/")

	blank := GenerateRegistrationNo("")
	assert.Contains(t, blank, "HPHS/HP/")
}
