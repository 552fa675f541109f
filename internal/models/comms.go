package models

// EmailType is the mailbox a message lives in. Archiving sets the type to
// archived; the UI never moves a message back, but nothing here enforces it.
type EmailType string

const (
	EmailIncoming EmailType = "incoming"
	EmailOutgoing EmailType = "outgoing"
	EmailArchived EmailType = "archived"
)

// ValidEmailTypes is the set of all valid email types.
var ValidEmailTypes = []EmailType{
	EmailIncoming,
	EmailOutgoing,
	EmailArchived,
}

// IsValid returns true if the email type is recognized.
func (t EmailType) IsValid() bool {
	for _, v := range ValidEmailTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Email is an internal mail record.
type Email struct {
	ID        string    `json:"id"`
	Sender    string    `json:"sender"`
	Subject   string    `json:"subject"`
	Preview   string    `json:"preview"`
	Timestamp string    `json:"timestamp"`
	Read      bool      `json:"read"`
	Starred   bool      `json:"starred"`
	Type      EmailType `json:"type"`
}

// Comment is a reply on a feed post.
type Comment struct {
	ID        string `json:"id"`
	Author    string `json:"author"`
	Avatar    string `json:"avatar"`
	Content   string `json:"content"`
	Timestamp string `json:"timestamp"`
}

// FeedPost is an entry on the company collaboration feed.
type FeedPost struct {
	ID        string    `json:"id"`
	Author    string    `json:"author"`
	Avatar    string    `json:"avatar"`
	Content   string    `json:"content"`
	Image     string    `json:"image,omitempty"`
	Video     string    `json:"video,omitempty"`
	Timestamp string    `json:"timestamp"`
	Likes     int       `json:"likes"`
	LikedBy   []string  `json:"liked_by"`
	Comments  []Comment `json:"comments"`
}

// NotificationType is the severity class of a notification.
type NotificationType string

const (
	NotifyInfo    NotificationType = "info"
	NotifySuccess NotificationType = "success"
	NotifyWarning NotificationType = "warning"
	NotifyError   NotificationType = "error"
)

// IsValid returns true if the notification type is recognized.
func (t NotificationType) IsValid() bool {
	switch t {
	case NotifyInfo, NotifySuccess, NotifyWarning, NotifyError:
		return true
	}
	return false
}

// Notification is a transient in-app alert.
type Notification struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Message   string           `json:"message"`
	Type      NotificationType `json:"type"`
	Timestamp string           `json:"timestamp"`
	Read      bool             `json:"read"`
}

// MessageRole distinguishes the two sides of a CoPilot conversation.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
)

// Message is one turn in a CoPilot conversation transcript.
type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp string      `json:"timestamp"`
}
