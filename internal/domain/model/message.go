package model

// MessageEvent is a transient view of one message mutation notification. It
// is produced and consumed within a single handling and never persisted.
type MessageEvent struct {
	ChatID      int64
	MessageID   int
	AuthorID    int64
	AuthorName  string
	AuthorIsBot bool
	ChannelName string
	Text        string
}
