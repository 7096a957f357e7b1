package model

// Member is a user currently present in a chat. Rank is only comparable
// between members resolved for the same ChatID.
type Member struct {
	ID          int64
	Username    string
	DisplayName string
	ChatID      int64
	Rank        int
}

// UserRef is a resolved platform user that need not be a current member of
// any chat. Bans operate on UserRefs.
type UserRef struct {
	ID          int64
	Username    string
	DisplayName string
}

type ChannelRef struct {
	ID   int64
	Name string
}

// UserCard is the userinfo command payload.
type UserCard struct {
	Member Member
	Cases  []Case
}
