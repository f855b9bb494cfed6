package service

import (
	"context"
	"testing"

	"github.com/edwardfocalsoft/bet-code-south-africa-sub002/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkAsReadOwnerScoped(t *testing.T) {
	e := newTestEnv(t)
	ctx := context.Background()

	owner := e.seedUser(t, "owner@test.local", "buyer", 0)
	other := e.seedUser(t, "other@test.local", "buyer", 0)

	e.notifSvc.Notify(ctx, owner.Id, model.NotificationTypeSystem, "Hello", "Welcome.", nil, nil)

	var n model.Notification
	require.NoError(t, e.db.First(&n, "user_id = ?", owner.Id).Error)
	require.False(t, n.IsRead)

	// Someone else cannot flip it
	require.NoError(t, e.notifSvc.MarkAsRead(ctx, n.ID, other.Id))
	require.NoError(t, e.db.First(&n, "id = ?", n.ID).Error)
	assert.False(t, n.IsRead)

	// The owner can
	require.NoError(t, e.notifSvc.MarkAsRead(ctx, n.ID, owner.Id))
	require.NoError(t, e.db.First(&n, "id = ?", n.ID).Error)
	assert.True(t, n.IsRead)
	assert.NotNil(t, n.ReadAt)
}
