package global

var (
	// Print detail level, higher values record increasingly verbose
	// progress output
	//
	//	0 - None: errors only
	//	1 - Standard: normal progress messages
	//	2 - Progress: detailed progress, no payload data
	//	3 - Data: limited payload data
	//	4 - FullData: full payload data
	//	5 - Debug: extra processing detail (raw bytes)
	Verbosity int
)
