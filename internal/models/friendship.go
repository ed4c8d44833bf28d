package models

// FriendRequest is a pending request edge between two fans, identified by
// the ordered (Requester, Target) pair.
type FriendRequest struct {
	Requester string `json:"requester"`
	Target    string `json:"target"`
}

// Decision resolves a pending friend request.
type Decision string

const (
	DecisionAccept Decision = "accept"
	DecisionReject Decision = "reject"
)

// SendFriendRequestRequest defines the request body for sending a friend
// request to another fan.
type SendFriendRequestRequest struct {
	Target string `json:"target" validate:"required,email"`
}

// ResolveFriendRequestRequest defines the request body for accepting or
// rejecting a pending friend request.
type ResolveFriendRequestRequest struct {
	Requester string `json:"requester" validate:"required,email"`
	Decision  string `json:"decision" validate:"required,oneof=accept reject"`
}
