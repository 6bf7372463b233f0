package consts

// Auto lets the library pick the address itself (wildcard bind, OS-chosen
// local address on dial).
const Auto = "auto"

// Defaults for a link endpoint when the caller specifies nothing.
const (
	DefaultHost = "127.0.0.1"
	DefaultPort = 3000
)
