package web

// Messages sent by the browser.
const (
	MsgKey     = "key"
	MsgRestart = "restart"
	MsgPause   = "pause"
)

// Keys carried by MsgKey.
const (
	KeyLeft  = "left"
	KeyRight = "right"
)

// ClientMessage is a browser input notification.
type ClientMessage struct {
	Type string `json:"type"`
	Key  string `json:"key,omitempty"`
	Down bool   `json:"down,omitempty"`
}

// Messages sent to the browser.
const (
	MsgFrame = "frame"
	MsgAlert = "alert"
)

// Draw operations.
const (
	OpClear  = "clear"
	OpRect   = "rect"
	OpCircle = "circle"
	OpText   = "text"
)

// DrawOp is one canvas call, replayed in order by the page.
type DrawOp struct {
	Op    string  `json:"op"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	W     float64 `json:"w,omitempty"`
	H     float64 `json:"h,omitempty"`
	R     float64 `json:"r,omitempty"`
	Text  string  `json:"text,omitempty"`
	Color string  `json:"color,omitempty"`
}

// ServerMessage is either a rendered frame or a terminal-outcome alert.
type ServerMessage struct {
	Type    string   `json:"type"`
	Ops     []DrawOp `json:"ops,omitempty"`
	Message string   `json:"message,omitempty"`
	Score   int      `json:"score"`
	Lives   int      `json:"lives"`
}
