package notify

type MessageType string

const (
	MsgTypeConnect   MessageType = "connect"
	MsgTypeToast     MessageType = "toast"
	MsgTypeGenerated MessageType = "generated"
)

type Message struct {
	Type    MessageType `json:"type"`
	Toast   *Toast      `json:"toast,omitempty"`
	Path    string      `json:"path,omitempty"`
	Content string      `json:"content,omitempty"`
}
