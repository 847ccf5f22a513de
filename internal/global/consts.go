package global

import "time"

const (
	// Descriptive Names for available verbosity levels
	VerbosityNone int = iota
	VerbosityStandard
	VerbosityProgress
	VerbosityData
	VerbosityFullData
	VerbosityDebug

	// Descriptive names for available severity levels
	ErrorLog string = "Error"
	WarnLog  string = "Warn"
	InfoLog  string = "Info"
)

const (
	ProgVersion string = "v0.2.1"

	// Context keys
	LoggerKey  CtxKey = "logger"  // Event queue (mostly for variable log verbosity handling)
	LogTagsKey CtxKey = "logtags" // List of tags in order of broad->specific appended/popped at various parts of the program

	DefaultConfigPath string = "/etc/udpsyslog.json"

	// Destination defaults per legacy BSD syslog
	DefaultSyslogPort int = 514

	// Environment overrides read once at startup
	EnvNameHost string = "SYSLOG_HOST"
	EnvNamePort string = "SYSLOG_PORT"

	// Inbox queue bounds
	DefaultInboxSize    int = 512
	DefaultMinQueueSize int = 128
	DefaultMaxQueueSize int = 4096

	// Timeout values
	StopAckTimeout time.Duration = 5 * time.Second

	// Interval between inbox capacity checks
	DefaultScaleCheckInterval time.Duration = 5 * time.Second

	// Socket send buffer request (kernel may clamp)
	DefaultSendBufferBytes int = 1 << 20

	// Namespacing Name Components
	NSCLI    string = "CLI"
	NSClient string = "Client"
	NSQueue  string = "Queue"
	NSWorker string = "Worker"
	NSScaler string = "Scaler"
	NSTest   string = "Test"
)
