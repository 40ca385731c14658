package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventory-pro/pkg/jwt"
)

func TestGenerateParse_RoundTrip(t *testing.T) {
	started := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	tok, err := jwt.Generate("secret", "inventory-pro", 60, jwt.Identity{
		SessionID: "6f1c1c9e-8f7a-4b55-9b0b-3f1f1f1f1f1f",
		UserID:    7,
		Username:  "ana",
		Role:      "staff",
		StartedAt: started,
	})
	require.NoError(t, err)

	id, err := jwt.Parse("secret", tok)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id.UserID)
	assert.Equal(t, "ana", id.Username)
	assert.Equal(t, "staff", id.Role)
	assert.Equal(t, "6f1c1c9e-8f7a-4b55-9b0b-3f1f1f1f1f1f", id.SessionID)
	assert.True(t, started.Equal(id.StartedAt))
}

func TestParse_Rejects(t *testing.T) {
	tok, err := jwt.Generate("secret", "inventory-pro", 60, jwt.Identity{UserID: 1})
	require.NoError(t, err)

	_, err = jwt.Parse("otro", tok)
	assert.Error(t, err, "firma incorrecta")

	expired, err := jwt.Generate("secret", "inventory-pro", -1, jwt.Identity{UserID: 1})
	require.NoError(t, err)
	_, err = jwt.Parse("secret", expired)
	assert.Error(t, err, "token expirado")

	_, err = jwt.Generate("", "inventory-pro", 60, jwt.Identity{})
	assert.Error(t, err)
}
