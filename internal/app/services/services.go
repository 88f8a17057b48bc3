package services

// Services defined in this package:
// - PostService: posts, the feed, and the like toggle
// - CommentService: comments under posts
// - FriendService: the friend request lifecycle and derived friendships
// - MessageService: direct messages and the conversation overview
// - GroupService: groups and memberships
// - ReportService: moderation reports
// - UserService: profiles for externally issued identities
