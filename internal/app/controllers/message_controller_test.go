package controllers

import (
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/selim/campushub/internal/app/models/dto"
)

// stubFriendService answers the friendship predicate from a fixed set of pairs
type stubFriendService struct {
	friends map[string]bool
}

func (s *stubFriendService) SendRequest(context.Context, string, string) (bool, error) {
	return false, nil
}
func (s *stubFriendService) AcceptRequest(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubFriendService) DeclineRequest(context.Context, uuid.UUID) (bool, error) {
	return false, nil
}
func (s *stubFriendService) GetFriends(context.Context, string) ([]dto.UserBasicResponse, error) {
	return nil, nil
}
func (s *stubFriendService) GetPendingRequests(context.Context, string) ([]dto.FriendRequestResponse, error) {
	return nil, nil
}
func (s *stubFriendService) AreFriends(_ context.Context, a, b string) (bool, error) {
	return s.friends[a+"|"+b] || s.friends[b+"|"+a], nil
}

// stubMessageService records sends and answers with a canned response
type stubMessageService struct {
	sent []string
}

func (s *stubMessageService) SendMessage(_ context.Context, senderID, receiverID string, req *dto.SendMessageRequest, _ *multipart.FileHeader) (*dto.MessageResponse, error) {
	s.sent = append(s.sent, senderID+"->"+receiverID)
	return &dto.MessageResponse{
		ID: uuid.New(), SenderID: senderID, ReceiverID: receiverID,
		Content: req.Content, SentAt: time.Now().UTC(),
	}, nil
}
func (s *stubMessageService) GetConversation(context.Context, string, string, int, int) ([]dto.MessageResponse, error) {
	return nil, nil
}
func (s *stubMessageService) GetUnreadMessages(context.Context, string) ([]dto.MessageResponse, error) {
	return nil, nil
}
func (s *stubMessageService) MarkAsRead(context.Context, uuid.UUID, string) (bool, error) {
	return false, nil
}
func (s *stubMessageService) GetLastMessage(context.Context, string, string) (*dto.MessageResponse, error) {
	return nil, nil
}
func (s *stubMessageService) GetConversationList(context.Context, string) ([]dto.ConversationPreviewResponse, error) {
	return nil, nil
}

func newMessageTestRouter(callerID string, friendSvc *stubFriendService, messageSvc *stubMessageService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	controller := NewMessageController(messageSvc, friendSvc)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("userID", callerID)
	})
	router.POST("/messages/:userId", controller.SendMessage)
	return router
}

func TestSendMessage_FriendsMaySend(t *testing.T) {
	friendSvc := &stubFriendService{friends: map[string]bool{"u1|u2": true}}
	messageSvc := &stubMessageService{}
	router := newMessageTestRouter("u1", friendSvc, messageSvc)

	body := strings.NewReader(`{"content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages/u2", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusCreated, recorder.Code)
	assert.Equal(t, []string{"u1->u2"}, messageSvc.sent)
}

func TestSendMessage_NonFriendIsForbidden(t *testing.T) {
	friendSvc := &stubFriendService{friends: map[string]bool{}}
	messageSvc := &stubMessageService{}
	router := newMessageTestRouter("u1", friendSvc, messageSvc)

	body := strings.NewReader(`{"content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages/u2", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	require.Equal(t, http.StatusForbidden, recorder.Code)
	assert.Empty(t, messageSvc.sent)

	var response dto.ErrorResponse
	require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &response))
	require.NotNil(t, response.Error)
	assert.Equal(t, dto.ErrorCodeForbidden, response.Error.Code)
	assert.Equal(t, "you can only message friends", response.Error.Message)
}

func TestSendMessage_GateIsDirectionAgnostic(t *testing.T) {
	// The accepted request may point either way; both parties can send
	friendSvc := &stubFriendService{friends: map[string]bool{"u2|u1": true}}
	messageSvc := &stubMessageService{}
	router := newMessageTestRouter("u1", friendSvc, messageSvc)

	body := strings.NewReader(`{"content":"hello"}`)
	req := httptest.NewRequest(http.MethodPost, "/messages/u2", body)
	req.Header.Set("Content-Type", "application/json")
	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, req)

	assert.Equal(t, http.StatusCreated, recorder.Code)
}
