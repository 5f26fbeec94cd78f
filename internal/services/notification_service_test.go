package services

import (
	"testing"

	"jobboard_backend/internal/models"
	"jobboard_backend/pkg/apperrors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusMessagesCoverAllStatuses(t *testing.T) {
	for _, status := range []models.ApplicationStatus{
		models.ApplicationStatusPending,
		models.ApplicationStatusReviewing,
		models.ApplicationStatusInterview,
		models.ApplicationStatusRejected,
		models.ApplicationStatusHired,
	} {
		assert.Contains(t, statusMessages, status)
	}

	// The table carries one extra entry no write path can reach.
	assert.Contains(t, statusMessages, models.ApplicationStatus("shortlisted"))
	assert.False(t, models.ValidApplicationStatus("shortlisted"))
}

func TestNotificationListAndUnreadCount(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	require.NoError(t, repo.Create(&models.Notification{
		RecipientID: "u1", Type: models.NotificationTypeSystem, Title: "a",
	}))
	require.NoError(t, repo.Create(&models.Notification{
		RecipientID: "u1", Type: models.NotificationTypeSystem, Title: "b",
	}))
	require.NoError(t, repo.Create(&models.Notification{
		RecipientID: "u2", Type: models.NotificationTypeSystem, Title: "c",
	}))

	resp, err := svc.List("u1")
	require.NoError(t, err)
	assert.Len(t, resp.Notifications, 2)
	assert.EqualValues(t, 2, resp.UnreadCount)

	unread, err := svc.UnreadCount("u1")
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)

	require.NoError(t, svc.MarkAllRead("u1"))
	unread, err = svc.UnreadCount("u1")
	require.NoError(t, err)
	assert.Zero(t, unread)
}

func TestMarkReadScopedToRecipient(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	n := &models.Notification{RecipientID: "u1", Type: models.NotificationTypeSystem, Title: "a"}
	require.NoError(t, repo.Create(n))

	// Another user cannot touch it.
	err := svc.MarkRead(n.ID, "u2")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

	require.NoError(t, svc.MarkRead(n.ID, "u1"))

	resp, err := svc.List("u1")
	require.NoError(t, err)
	assert.EqualValues(t, 0, resp.UnreadCount)
}

func TestDeleteScopedToRecipient(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	n := &models.Notification{RecipientID: "u1", Type: models.NotificationTypeSystem, Title: "a"}
	require.NoError(t, repo.Create(n))

	err := svc.Delete(n.ID, "u2")
	assert.ErrorIs(t, err, apperrors.ErrNotificationNotFound)

	require.NoError(t, svc.Delete(n.ID, "u1"))

	resp, err := svc.List("u1")
	require.NoError(t, err)
	assert.Empty(t, resp.Notifications)
}

func TestNotifyApplicationStatusMessage(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	application := &models.Application{
		BaseModel:   models.BaseModel{ID: "a1"},
		JobID:       "j1",
		CandidateID: "cand",
		CompanyID:   "comp",
		Job:         &models.Job{BaseModel: models.BaseModel{ID: "j1"}, Title: "Backend Engineer"},
	}

	svc.NotifyApplicationStatus(application, models.ApplicationStatusHired)

	require.Len(t, repo.notifications, 1)
	n := repo.notifications[0]
	assert.Equal(t, "cand", n.RecipientID)
	assert.Equal(t, models.NotificationTypeStatusChange, n.Type)
	assert.Contains(t, n.Message, "Backend Engineer")
	assert.Contains(t, n.Message, "hired")
}

func TestNotifyUnmappedStatusFallsBackToRawString(t *testing.T) {
	repo := newFakeNotificationRepo()
	svc := NewNotificationService(repo)

	application := &models.Application{
		BaseModel:   models.BaseModel{ID: "a1"},
		JobID:       "j1",
		CandidateID: "cand",
		CompanyID:   "comp",
	}

	svc.NotifyApplicationStatus(application, models.ApplicationStatus("archived"))

	require.Len(t, repo.notifications, 1)
	assert.Equal(t, "archived", repo.notifications[0].Message)
}
