package models

// RoleType defines the user role type
type RoleType string

const (
	RoleStudent RoleType = "Student"
	RoleTeacher RoleType = "Teacher"
	RoleAdmin   RoleType = "Admin"
)

// FriendRequestStatus defines the lifecycle state of a friend request
type FriendRequestStatus string

const (
	FriendRequestPending  FriendRequestStatus = "Pending"
	FriendRequestAccepted FriendRequestStatus = "Accepted"
	FriendRequestDeclined FriendRequestStatus = "Declined"
)

// GroupRole defines the role a user holds inside a group
type GroupRole string

const (
	GroupRoleOwner  GroupRole = "Owner"
	GroupRoleMember GroupRole = "Member"
)

// ReportContentType identifies what kind of content a report targets
type ReportContentType string

const (
	ReportContentPost    ReportContentType = "Post"
	ReportContentComment ReportContentType = "Comment"
)

// ReportStatus defines the moderation state of a report
type ReportStatus string

const (
	ReportStatusPending ReportStatus = "Pending"
)
