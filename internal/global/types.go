package global

type CommandSet struct {
	CommandName     string                 // Exact name of cli command
	UsageOption     string                 // Expected command value in usage top line
	Description     string                 // Short text displayed on parent command
	FullDescription string                 // Long text displayed on current command
	ChildCommands   map[string]*CommandSet // Available subcommands
}

type CtxKey string

// On-disk CLI configuration

type JSONConfig struct {
	Network NetConf   `json:"network"`
	Tag     string    `json:"tag,omitempty"`
	Queue   QueueConf `json:"queue"`
}

type NetConf struct {
	Address string `json:"address,omitempty"`
	Port    int    `json:"port,omitempty"`
}

type QueueConf struct {
	MinSize int `json:"minSize,omitempty"`
	MaxSize int `json:"maxSize,omitempty"`
}
