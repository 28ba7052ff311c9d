package ledger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthorizeUser_AdminGrantsWriter(t *testing.T) {
	l := New("AgriculturalTraceabilitySystem", "1.0.0", testOwner)

	require.NoError(t, l.AuthorizeUser(testOwner, testWriter))
	assert.True(t, l.IsAuthorized(testWriter))
}

func TestDeauthorizeUser_RevokesWriter(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.DeauthorizeUser(testOwner, testWriter))
	assert.False(t, l.IsAuthorized(testWriter))
}

func TestAuthorizeUser_NonAdminRejected(t *testing.T) {
	l := newTestLedger(t)

	err := l.AuthorizeUser(testWriter, testOther)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAccessControl))
	assert.EqualError(t, err, "AccessControl: Only admin allowed")
	assert.False(t, l.IsAuthorized(testOther))
}

func TestSetFarmOwner_TogglesCapability(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.SetFarmOwner(testOwner, testWriter, true))
	assert.True(t, l.IsFarmOwner(testWriter))

	require.NoError(t, l.SetFarmOwner(testOwner, testWriter, false))
	assert.False(t, l.IsFarmOwner(testWriter))
}

func TestSetProductVerifier_TogglesCapability(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.SetProductVerifier(testOwner, testWriter, true))
	assert.True(t, l.IsProductVerifier(testWriter))

	require.NoError(t, l.SetProductVerifier(testOwner, testWriter, false))
	assert.False(t, l.IsProductVerifier(testWriter))
}

func TestUpdateAdmin_OwnerTransfersAdmin(t *testing.T) {
	l := newTestLedger(t)

	require.NoError(t, l.UpdateAdmin(testOwner, testWriter))
	assert.Equal(t, testWriter, l.Admin())

	// Admin mới có thể cấp quyền, owner vẫn giữ được quyền admin
	require.NoError(t, l.AuthorizeUser(testWriter, testOther))
	assert.True(t, l.IsAuthorized(testOther))
}

func TestUpdateAdmin_NonOwnerRejected(t *testing.T) {
	l := newTestLedger(t)

	err := l.UpdateAdmin(testWriter, testWriter)
	require.Error(t, err)
	assert.True(t, IsKind(err, KindAccessControl))
	assert.Equal(t, testOwner, l.Admin())
}

func TestAuthorizeUser_EmptyIDRejected(t *testing.T) {
	l := newTestLedger(t)

	err := l.AuthorizeUser(testOwner, "")
	require.Error(t, err)
	assert.True(t, IsKind(err, KindValidation))
}
