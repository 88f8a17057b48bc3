package services

import (
	"context"
	"mime/multipart"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/selim/campushub/internal/app/models"
	"github.com/selim/campushub/internal/pkg/apperrors"
)

// In-memory store fakes mirroring the repository semantics: absent rows come
// back as (nil, nil), conditional writes report their effect as a bool.

type fakeUserStore struct {
	users map[string]*models.User
}

func newFakeUserStore(users ...*models.User) *fakeUserStore {
	s := &fakeUserStore{users: make(map[string]*models.User)}
	for _, u := range users {
		s.users[u.ID] = u
	}
	return s
}

func (s *fakeUserStore) FindByID(_ context.Context, id string) (*models.User, error) {
	return s.users[id], nil
}

func (s *fakeUserStore) Create(_ context.Context, user *models.User) error {
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) UpdateProfile(_ context.Context, id string, bio *string, avatarURL *string) (bool, error) {
	user, ok := s.users[id]
	if !ok {
		return false, nil
	}
	user.Bio = bio
	if avatarURL != nil {
		user.AvatarURL = avatarURL
	}
	return true, nil
}

func (s *fakeUserStore) UpdateLastLogin(_ context.Context, id string, at time.Time) (bool, error) {
	user, ok := s.users[id]
	if !ok {
		return false, nil
	}
	user.LastLoginAt = &at
	return true, nil
}

type fakePostStore struct {
	posts []*models.Post
}

func (s *fakePostStore) Create(_ context.Context, post *models.Post) error {
	s.posts = append(s.posts, post)
	return nil
}

func (s *fakePostStore) GetByID(_ context.Context, id uuid.UUID) (*models.Post, error) {
	for _, p := range s.posts {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (s *fakePostStore) sorted() []*models.Post {
	out := append([]*models.Post(nil), s.posts...)
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

func (s *fakePostStore) ListFeed(_ context.Context, offset uint64, limit int) ([]*models.Post, error) {
	out := s.sorted()
	if int(offset) >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakePostStore) ListByAuthor(_ context.Context, authorID string, count int) ([]*models.Post, error) {
	var out []*models.Post
	for _, p := range s.sorted() {
		if p.AuthorID == authorID {
			out = append(out, p)
		}
		if len(out) == count {
			break
		}
	}
	return out, nil
}

func (s *fakePostStore) CountAll(_ context.Context) (int64, error) {
	return int64(len(s.posts)), nil
}

func (s *fakePostStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i, p := range s.posts {
		if p.ID == id {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeCommentStore struct {
	comments []*models.Comment
}

func (s *fakeCommentStore) Create(_ context.Context, comment *models.Comment) error {
	s.comments = append(s.comments, comment)
	return nil
}

func (s *fakeCommentStore) GetByID(_ context.Context, id uuid.UUID) (*models.Comment, error) {
	for _, c := range s.comments {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (s *fakeCommentStore) ListByPost(_ context.Context, postID uuid.UUID, skip, take int) ([]*models.Comment, error) {
	var matching []*models.Comment
	for _, c := range s.comments {
		if c.PostID == postID {
			matching = append(matching, c)
		}
	}
	sort.SliceStable(matching, func(i, j int) bool { return matching[i].CreatedAt.After(matching[j].CreatedAt) })
	if skip >= len(matching) {
		return nil, nil
	}
	matching = matching[skip:]
	if len(matching) > take {
		matching = matching[:take]
	}
	return matching, nil
}

func (s *fakeCommentStore) Delete(_ context.Context, id uuid.UUID) (bool, error) {
	for i, c := range s.comments {
		if c.ID == id {
			s.comments = append(s.comments[:i], s.comments[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

type fakeLikeStore struct {
	likes []*models.Like
}

func (s *fakeLikeStore) Insert(_ context.Context, like *models.Like) (bool, error) {
	for _, l := range s.likes {
		if l.PostID == like.PostID && l.UserID == like.UserID {
			return false, nil
		}
	}
	s.likes = append(s.likes, like)
	return true, nil
}

func (s *fakeLikeStore) Delete(_ context.Context, postID uuid.UUID, userID string) (bool, error) {
	for i, l := range s.likes {
		if l.PostID == postID && l.UserID == userID {
			s.likes = append(s.likes[:i], s.likes[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLikeStore) Exists(_ context.Context, postID uuid.UUID, userID string) (bool, error) {
	for _, l := range s.likes {
		if l.PostID == postID && l.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeLikeStore) CountByPost(_ context.Context, postID uuid.UUID) (int, error) {
	count := 0
	for _, l := range s.likes {
		if l.PostID == postID {
			count++
		}
	}
	return count, nil
}

type fakeFriendRequestStore struct {
	users    *fakeUserStore
	requests []*models.FriendRequest
}

func (s *fakeFriendRequestStore) Insert(_ context.Context, request *models.FriendRequest) (bool, error) {
	for _, r := range s.requests {
		samePair := (r.SenderID == request.SenderID && r.ReceiverID == request.ReceiverID) ||
			(r.SenderID == request.ReceiverID && r.ReceiverID == request.SenderID)
		if samePair {
			return false, nil
		}
	}
	s.requests = append(s.requests, request)
	return true, nil
}

func (s *fakeFriendRequestStore) UpdateStatus(_ context.Context, id uuid.UUID, status models.FriendRequestStatus) (bool, error) {
	for _, r := range s.requests {
		if r.ID == id && r.Status == models.FriendRequestPending {
			now := time.Now().UTC()
			r.Status = status
			r.RespondedAt = &now
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeFriendRequestStore) ListFriends(ctx context.Context, userID string, limit int) ([]*models.User, error) {
	var out []*models.User
	for _, r := range s.requests {
		if r.Status != models.FriendRequestAccepted {
			continue
		}
		var friendID string
		switch userID {
		case r.SenderID:
			friendID = r.ReceiverID
		case r.ReceiverID:
			friendID = r.SenderID
		default:
			continue
		}
		if s.users != nil {
			if friend, _ := s.users.FindByID(ctx, friendID); friend != nil {
				out = append(out, friend)
			}
		}
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (s *fakeFriendRequestStore) ListPendingForReceiver(_ context.Context, userID string) ([]*models.FriendRequest, error) {
	var out []*models.FriendRequest
	for _, r := range s.requests {
		if r.ReceiverID == userID && r.Status == models.FriendRequestPending {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (s *fakeFriendRequestStore) AreFriends(_ context.Context, userID1, userID2 string) (bool, error) {
	for _, r := range s.requests {
		if r.Status != models.FriendRequestAccepted {
			continue
		}
		if (r.SenderID == userID1 && r.ReceiverID == userID2) ||
			(r.SenderID == userID2 && r.ReceiverID == userID1) {
			return true, nil
		}
	}
	return false, nil
}

type fakeMessageStore struct {
	messages []*models.Message
}

func (s *fakeMessageStore) Create(_ context.Context, message *models.Message) error {
	s.messages = append(s.messages, message)
	return nil
}

func (s *fakeMessageStore) GetByID(_ context.Context, id uuid.UUID) (*models.Message, error) {
	for _, m := range s.messages {
		if m.ID == id {
			return m, nil
		}
	}
	return nil, nil
}

func (s *fakeMessageStore) between(userID1, userID2 string) []*models.Message {
	var out []*models.Message
	for _, m := range s.messages {
		if (m.SenderID == userID1 && m.ReceiverID == userID2) ||
			(m.SenderID == userID2 && m.ReceiverID == userID1) {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out
}

func (s *fakeMessageStore) GetConversation(_ context.Context, userID1, userID2 string, offset, limit int) ([]*models.Message, error) {
	out := s.between(userID1, userID2)
	if offset >= len(out) {
		return nil, nil
	}
	out = out[offset:]
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (s *fakeMessageStore) ListUnread(_ context.Context, userID string) ([]*models.Message, error) {
	var out []*models.Message
	for _, m := range s.messages {
		if m.ReceiverID == userID && !m.IsRead {
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].SentAt.After(out[j].SentAt) })
	return out, nil
}

func (s *fakeMessageStore) MarkRead(_ context.Context, id uuid.UUID, receiverID string) (bool, error) {
	for _, m := range s.messages {
		if m.ID == id && m.ReceiverID == receiverID {
			m.IsRead = true
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeMessageStore) ListConversationPartners(_ context.Context, userID string) ([]string, error) {
	seen := make(map[string]bool)
	var out []string
	for _, m := range s.messages {
		var partner string
		switch userID {
		case m.SenderID:
			partner = m.ReceiverID
		case m.ReceiverID:
			partner = m.SenderID
		default:
			continue
		}
		if !seen[partner] {
			seen[partner] = true
			out = append(out, partner)
		}
	}
	return out, nil
}

func (s *fakeMessageStore) GetLastMessage(_ context.Context, userID1, userID2 string) (*models.Message, error) {
	out := s.between(userID1, userID2)
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (s *fakeMessageStore) CountUnreadFrom(_ context.Context, receiverID, senderID string) (int, error) {
	count := 0
	for _, m := range s.messages {
		if m.ReceiverID == receiverID && m.SenderID == senderID && !m.IsRead {
			count++
		}
	}
	return count, nil
}

type fakeGroupStore struct {
	users       *fakeUserStore
	groups      []*models.Group
	memberships []*models.UserGroup
}

func (s *fakeGroupStore) CreateWithOwner(_ context.Context, group *models.Group, ownerMembership *models.UserGroup) error {
	for _, g := range s.groups {
		if g.Code == group.Code {
			return apperrors.NewConflictError("group code already taken")
		}
	}
	s.groups = append(s.groups, group)
	s.memberships = append(s.memberships, ownerMembership)
	return nil
}

func (s *fakeGroupStore) GetByID(_ context.Context, id uuid.UUID) (*models.Group, error) {
	for _, g := range s.groups {
		if g.ID == id {
			return g, nil
		}
	}
	return nil, nil
}

func (s *fakeGroupStore) GetByCode(ctx context.Context, code string) (*models.Group, error) {
	for _, g := range s.groups {
		if g.Code == code {
			members, _ := s.ListMembers(ctx, g.ID)
			g.Memberships = members
			return g, nil
		}
	}
	return nil, nil
}

func (s *fakeGroupStore) Join(_ context.Context, membership *models.UserGroup) (bool, error) {
	for _, m := range s.memberships {
		if m.GroupID == membership.GroupID && m.UserID == membership.UserID {
			return false, nil
		}
	}
	s.memberships = append(s.memberships, membership)
	return true, nil
}

func (s *fakeGroupStore) Leave(_ context.Context, groupID uuid.UUID, userID string) (bool, error) {
	for i, m := range s.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			s.memberships = append(s.memberships[:i], s.memberships[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *fakeGroupStore) ListByUser(_ context.Context, userID string) ([]*models.Group, error) {
	var out []*models.Group
	for _, m := range s.memberships {
		if m.UserID != userID {
			continue
		}
		for _, g := range s.groups {
			if g.ID == m.GroupID {
				out = append(out, g)
			}
		}
	}
	return out, nil
}

func (s *fakeGroupStore) ListMembers(ctx context.Context, groupID uuid.UUID) ([]*models.UserGroup, error) {
	var out []*models.UserGroup
	for _, m := range s.memberships {
		if m.GroupID == groupID {
			if s.users != nil && m.User == nil {
				m.User, _ = s.users.FindByID(ctx, m.UserID)
			}
			out = append(out, m)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Role == models.GroupRoleOwner && out[j].Role != models.GroupRoleOwner
	})
	return out, nil
}

func (s *fakeGroupStore) IsMember(_ context.Context, groupID uuid.UUID, userID string) (bool, error) {
	for _, m := range s.memberships {
		if m.GroupID == groupID && m.UserID == userID {
			return true, nil
		}
	}
	return false, nil
}

type fakeReportStore struct {
	reports []*models.Report
}

func (s *fakeReportStore) Create(_ context.Context, report *models.Report) error {
	s.reports = append(s.reports, report)
	return nil
}

func (s *fakeReportStore) ListByStatus(_ context.Context, status models.ReportStatus) ([]*models.Report, error) {
	var out []*models.Report
	for _, r := range s.reports {
		if r.Status == status {
			out = append(out, r)
		}
	}
	return out, nil
}

func (s *fakeReportStore) ExistsForContent(_ context.Context, reporterID string, contentID uuid.UUID, contentType models.ReportContentType) (bool, error) {
	for _, r := range s.reports {
		if r.ReporterID == reporterID && r.ContentID == contentID && r.ContentType == contentType {
			return true, nil
		}
	}
	return false, nil
}

type fakeFileStorage struct {
	uploads []string
}

func (s *fakeFileStorage) UploadFile(fileHeader *multipart.FileHeader, folder string) (string, error) {
	url := "/uploads/" + folder + "/" + fileHeader.Filename
	s.uploads = append(s.uploads, url)
	return url, nil
}

func (s *fakeFileStorage) DeleteFile(string) error {
	return nil
}
