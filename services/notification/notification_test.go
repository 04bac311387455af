package notification

import (
	"testing"

	"legalsahyog/models"

	notificationRepo "legalsahyog/database/repository/notification"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo"
)

type memNotificationRepo struct {
	items map[string]*models.Notification
}

func newMemNotificationRepo() *memNotificationRepo {
	return &memNotificationRepo{items: make(map[string]*models.Notification)}
}

func (r *memNotificationRepo) GetByID(id string) (*models.Notification, error) {
	if n, ok := r.items[id]; ok {
		return n, nil
	}
	return nil, mongo.ErrNoDocuments
}

func (r *memNotificationRepo) matches(n *models.Notification, recipient notificationRepo.Recipient, id string) bool {
	switch recipient {
	case notificationRepo.RecipientUser:
		return n.UserID == id
	case notificationRepo.RecipientProvider:
		return n.ProviderID == id
	case notificationRepo.RecipientAdmin:
		return n.AdminID == id
	}
	return false
}

func (r *memNotificationRepo) GetFor(recipient notificationRepo.Recipient, id string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.items {
		if r.matches(n, recipient, id) && n.Status == models.NotifActive {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) GetUnreadFor(recipient notificationRepo.Recipient, id string) ([]models.Notification, error) {
	var out []models.Notification
	for _, n := range r.items {
		if r.matches(n, recipient, id) && n.Status == models.NotifActive && !n.IsRead {
			out = append(out, *n)
		}
	}
	return out, nil
}

func (r *memNotificationRepo) CountUnreadFor(recipient notificationRepo.Recipient, id string) (int64, error) {
	unread, _ := r.GetUnreadFor(recipient, id)
	return int64(len(unread)), nil
}

func (r *memNotificationRepo) Create(n *models.Notification) error {
	copy := *n
	r.items[n.ID] = &copy
	return nil
}

func (r *memNotificationRepo) MarkRead(id string) error {
	n, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	n.IsRead = true
	return nil
}

func (r *memNotificationRepo) MarkAllReadFor(recipient notificationRepo.Recipient, id string) error {
	for _, n := range r.items {
		if r.matches(n, recipient, id) {
			n.IsRead = true
		}
	}
	return nil
}

func (r *memNotificationRepo) SetStatus(id string, status models.NotificationStatus) error {
	n, ok := r.items[id]
	if !ok {
		return mongo.ErrNoDocuments
	}
	n.Status = status
	return nil
}

func newTestNotification() (*DefaultNotificationService, *memNotificationRepo) {
	repo := newMemNotificationRepo()
	// User and provider lookups only matter for push tokens; with no FCM
	// client configured they are never consulted.
	return NewNotificationService(repo, nil, nil), repo
}

func TestNotifyStoresPerRecipient(t *testing.T) {
	svc, _ := newTestNotification()

	require.NoError(t, svc.NotifyProvider("prov-1", "New Booking Received", "Contract Review on 2026-09-15"))
	require.NoError(t, svc.NotifyAdmin("admin-1", "New Booking Created", "details", models.NotifGeneral))
	require.NoError(t, svc.NotifyUser("user-1", "Booking Confirmed", "see link", models.NotifBookingConfirmed))

	providerItems, err := svc.GetForProvider("prov-1")
	require.NoError(t, err)
	require.Len(t, providerItems, 1)
	assert.Equal(t, models.NotifGeneral, providerItems[0].Type)
	assert.False(t, providerItems[0].IsRead)

	adminItems, err := svc.GetForAdmin("admin-1")
	require.NoError(t, err)
	assert.Len(t, adminItems, 1)

	userItems, err := svc.GetForUser("user-1")
	require.NoError(t, err)
	require.Len(t, userItems, 1)
	assert.Equal(t, models.NotifBookingConfirmed, userItems[0].Type)
}

func TestUnreadLifecycle(t *testing.T) {
	svc, _ := newTestNotification()

	require.NoError(t, svc.NotifyUser("user-1", "a", "m", models.NotifGeneral))
	require.NoError(t, svc.NotifyUser("user-1", "b", "m", models.NotifGeneral))

	count, err := svc.CountUnreadForUser("user-1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	unread, err := svc.GetUnreadForUser("user-1")
	require.NoError(t, err)
	require.Len(t, unread, 2)

	require.NoError(t, svc.MarkRead(unread[0].ID))
	count, _ = svc.CountUnreadForUser("user-1")
	assert.EqualValues(t, 1, count)

	require.NoError(t, svc.MarkAllReadForUser("user-1"))
	count, _ = svc.CountUnreadForUser("user-1")
	assert.Zero(t, count)
}

func TestArchiveAndDeleteHideNotifications(t *testing.T) {
	svc, repo := newTestNotification()

	require.NoError(t, svc.NotifyUser("user-1", "a", "m", models.NotifGeneral))
	items, err := svc.GetForUser("user-1")
	require.NoError(t, err)
	require.Len(t, items, 1)
	id := items[0].ID

	require.NoError(t, svc.Archive(id))
	items, _ = svc.GetForUser("user-1")
	assert.Empty(t, items)
	assert.Equal(t, models.NotifArchived, repo.items[id].Status)

	require.NoError(t, svc.Delete(id))
	assert.Equal(t, models.NotifDeleted, repo.items[id].Status)
}
