package protocol

// Severity codes per legacy BSD syslog, 0 is most severe
const (
	SeverityEmergency int = iota
	SeverityAlert
	SeverityCritical
	SeverityError
	SeverityWarning
	SeverityNotice
	SeverityInfo
	SeverityDebug
)

// Facility codes per legacy BSD syslog.
// Code 9 (the historical clock/cron alias) and codes 12-14 are
// intentionally unassigned, cron is fixed at 15.
const (
	FacilityKern     int = 0
	FacilityUser     int = 1
	FacilityMail     int = 2
	FacilityDaemon   int = 3
	FacilityAuth     int = 4
	FacilitySyslog   int = 5
	FacilityLpr      int = 6
	FacilityNews     int = 7
	FacilityUucp     int = 8
	FacilityAuthpriv int = 10
	FacilityFtp      int = 11
	FacilityCron     int = 15
	FacilityLocal0   int = 16
	FacilityLocal1   int = 17
	FacilityLocal2   int = 18
	FacilityLocal3   int = 19
	FacilityLocal4   int = 20
	FacilityLocal5   int = 21
	FacilityLocal6   int = 22
	FacilityLocal7   int = 23
)
