package testutils

import (
	"encoding/json"
	"testing"
	"time"

	"quickdesk-backend/internal/database/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOtpFactory_PayloadRoundTrips(t *testing.T) {
	fs := NewFactorySet()
	signup := fs.PendingSignup.Create()

	record := fs.Otp.Create(signup)

	var decoded models.PendingSignup
	require.NoError(t, json.Unmarshal(record.PendingPayload, &decoded))
	assert.Equal(t, signup, decoded)
	assert.False(t, record.IsExpired(time.Now()))
	assert.True(t, fs.Otp.Expired(signup).IsExpired(time.Now()))
}

func TestFactorySet_CreateTenant(t *testing.T) {
	user, org, member := NewFactorySet().CreateTenant()

	assert.Equal(t, user.ID, org.OwnerID)
	assert.Equal(t, org.ID, member.OrganizationID)
	assert.Equal(t, user.ID, member.UserID)
	assert.Equal(t, models.MemberRoleAdmin, member.Role)
}
