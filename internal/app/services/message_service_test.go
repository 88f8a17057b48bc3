package services

import (
	"context"
	"errors"
	"mime/multipart"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/app/models/dto"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

type messageFixture struct {
	svc      MessageService
	messages *fakeMessageStore
	users    *fakeUserStore
}

func newMessageFixture(users ...*models.User) *messageFixture {
	f := &messageFixture{
		messages: &fakeMessageStore{},
		users:    newFakeUserStore(users...),
	}
	f.svc = NewMessageService(f.messages, f.users, &fakeFileStorage{}, zerolog.Nop())
	return f
}

func (f *messageFixture) seedMessage(t *testing.T, senderID, receiverID, content string, sentAt time.Time) *models.Message {
	t.Helper()
	message := &models.Message{
		ID: uuid.New(), SenderID: senderID, ReceiverID: receiverID,
		Content: content, SentAt: sentAt,
	}
	require.NoError(t, f.messages.Create(context.Background(), message))
	return message
}

func TestSendMessage_EmptyWithoutMedia(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u2"})

	_, err := f.svc.SendMessage(context.Background(), "u1", "u2", &dto.SendMessageRequest{Content: " "}, nil)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSendMessage_ContentTooLong(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u2"})

	req := &dto.SendMessageRequest{Content: strings.Repeat("a", maxMessageContentLength+1)}
	_, err := f.svc.SendMessage(context.Background(), "u1", "u2", req, nil)

	assert.True(t, errors.Is(err, apperrors.ErrValidationFailed))
}

func TestSendMessage_UnknownReceiver(t *testing.T) {
	f := newMessageFixture()

	_, err := f.svc.SendMessage(context.Background(), "u1", "ghost", &dto.SendMessageRequest{Content: "hi"}, nil)

	assert.True(t, errors.Is(err, apperrors.ErrResourceNotFound))
}

func TestSendMessage_MediaOnly(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u2"})
	media := &multipart.FileHeader{Filename: "pic.jpg"}

	message, err := f.svc.SendMessage(context.Background(), "u1", "u2", &dto.SendMessageRequest{}, media)

	require.NoError(t, err)
	require.NotNil(t, message.MediaURL)
	assert.Equal(t, "/uploads/messages/pic.jpg", *message.MediaURL)
	assert.False(t, message.IsRead)
}

func TestGetConversation_BothDirectionsNewestFirst(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u1"}, &models.User{ID: "u2"})
	ctx := context.Background()
	base := time.Now().UTC()
	f.seedMessage(t, "u1", "u2", "first", base)
	f.seedMessage(t, "u2", "u1", "second", base.Add(time.Minute))
	f.seedMessage(t, "u1", "u2", "third", base.Add(2*time.Minute))
	// Noise from an unrelated pair
	f.seedMessage(t, "u1", "u3", "elsewhere", base.Add(3*time.Minute))

	messages, err := f.svc.GetConversation(ctx, "u1", "u2", 0, 50)

	require.NoError(t, err)
	require.Len(t, messages, 3)
	assert.Equal(t, "third", messages[0].Content)
	assert.Equal(t, "second", messages[1].Content)
	assert.Equal(t, "first", messages[2].Content)
}

func TestGetUnreadMessages_OnlyIncomingUnread(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u1"}, &models.User{ID: "u2"})
	ctx := context.Background()
	base := time.Now().UTC()
	unread := f.seedMessage(t, "u2", "u1", "unread", base)
	read := f.seedMessage(t, "u2", "u1", "read", base.Add(time.Minute))
	read.IsRead = true
	f.seedMessage(t, "u1", "u2", "outgoing", base.Add(2*time.Minute))

	messages, err := f.svc.GetUnreadMessages(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, messages, 1)
	assert.Equal(t, unread.ID, messages[0].ID)
}

func TestMarkAsRead_OnlyByReceiver(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u1"}, &models.User{ID: "u2"})
	ctx := context.Background()
	message := f.seedMessage(t, "u1", "u2", "hi", time.Now().UTC())

	// The sender cannot mark their own outgoing message
	marked, err := f.svc.MarkAsRead(ctx, message.ID, "u1")
	require.NoError(t, err)
	assert.False(t, marked)
	assert.False(t, message.IsRead)

	marked, err = f.svc.MarkAsRead(ctx, message.ID, "u2")
	require.NoError(t, err)
	assert.True(t, marked)
	assert.True(t, message.IsRead)
}

func TestGetLastMessage_NilWhenNoHistory(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u1"}, &models.User{ID: "u2"})

	last, err := f.svc.GetLastMessage(context.Background(), "u1", "u2")

	require.NoError(t, err)
	assert.Nil(t, last)
}

func TestGetConversationList_OrderedByLastActivity(t *testing.T) {
	f := newMessageFixture(
		&models.User{ID: "u1"},
		&models.User{ID: "u2", FirstName: "Kemal"},
		&models.User{ID: "u3", FirstName: "Zeynep"},
	)
	ctx := context.Background()
	base := time.Now().UTC()
	f.seedMessage(t, "u2", "u1", "older chat", base)
	f.seedMessage(t, "u2", "u1", "still older chat", base.Add(time.Minute))
	f.seedMessage(t, "u3", "u1", "newest chat", base.Add(time.Hour))

	previews, err := f.svc.GetConversationList(ctx, "u1")

	require.NoError(t, err)
	require.Len(t, previews, 2)

	assert.Equal(t, "u3", previews[0].Partner.ID)
	require.NotNil(t, previews[0].LastMessage)
	assert.Equal(t, "newest chat", previews[0].LastMessage.Content)
	assert.Equal(t, 1, previews[0].UnreadCount)

	assert.Equal(t, "u2", previews[1].Partner.ID)
	assert.Equal(t, "still older chat", previews[1].LastMessage.Content)
	assert.Equal(t, 2, previews[1].UnreadCount)
}

func TestGetConversationList_SkipsVanishedPartners(t *testing.T) {
	f := newMessageFixture(&models.User{ID: "u1"})
	f.seedMessage(t, "gone", "u1", "orphaned", time.Now().UTC())

	previews, err := f.svc.GetConversationList(context.Background(), "u1")

	require.NoError(t, err)
	assert.Empty(t, previews)
}
