package protocol

// Bidirectional facility name table
type LogFacility struct {
	FacilityToCode map[string]int
	CodeToFacility map[int]string
}

// Bidirectional severity name table
type LogSeverity struct {
	SeverityToCode map[string]int
	CodeToSeverity map[int]string
}
