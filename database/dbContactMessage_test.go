package database

import (
	"context"
	"testing"

	"github.com/jobportal/portalManager/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactMessageStatus(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	for _, status := range []string{model.MessageUnread, model.MessageUnread, model.MessageRead} {
		_, err := store.ContactMessages.InsertContactMessage(ctx, &model.ContactMessage{
			Name:    "Visitor",
			Email:   "visitor@example.com",
			Subject: "Hello",
			Message: "Question about the portal",
			Status:  status,
		})
		require.NoError(t, err)
	}

	unread, err := store.ContactMessages.CountContactMessages(ctx, model.Eq("status", model.MessageUnread))
	require.NoError(t, err)
	assert.Equal(t, 2, unread)

	messages, err := store.ContactMessages.SelectAllContactMessages(ctx, model.NewestFirst("created_at", model.Eq("status", model.MessageUnread)))
	require.NoError(t, err)
	require.Len(t, messages, 2)

	replied, err := store.ContactMessages.UpdateContactMessage(ctx, messages[0].ID, model.DataMap{"status": model.MessageReplied})
	require.NoError(t, err)
	assert.Equal(t, model.MessageReplied, replied.Status)
	assert.Equal(t, "Hello", replied.Subject)

	unread, err = store.ContactMessages.CountContactMessages(ctx, model.Eq("status", model.MessageUnread))
	require.NoError(t, err)
	assert.Equal(t, 1, unread)
}
