package protocol

import (
	"errors"
	"fmt"
	"sync"
)

// Lookup failures for symbolic names outside the tables
var (
	ErrUnknownSeverity = errors.New("unknown severity name")
	ErrUnknownFacility = errors.New("unknown facility name")
)

// Initialize maps for both facility and severity
var facilityMu sync.RWMutex
var logFacility = LogFacility{
	FacilityToCode: map[string]int{
		"kern":     FacilityKern,
		"user":     FacilityUser,
		"mail":     FacilityMail,
		"daemon":   FacilityDaemon,
		"auth":     FacilityAuth,
		"syslog":   FacilitySyslog,
		"lpr":      FacilityLpr,
		"news":     FacilityNews,
		"uucp":     FacilityUucp,
		"authpriv": FacilityAuthpriv,
		"ftp":      FacilityFtp,
		"cron":     FacilityCron,
		"local0":   FacilityLocal0,
		"local1":   FacilityLocal1,
		"local2":   FacilityLocal2,
		"local3":   FacilityLocal3,
		"local4":   FacilityLocal4,
		"local5":   FacilityLocal5,
		"local6":   FacilityLocal6,
		"local7":   FacilityLocal7,
	},
	CodeToFacility: make(map[int]string),
}
var severityMu sync.RWMutex
var logSeverity = LogSeverity{
	SeverityToCode: map[string]int{
		"emergency": SeverityEmergency,
		"alert":     SeverityAlert,
		"critical":  SeverityCritical,
		"error":     SeverityError,
		"warning":   SeverityWarning,
		"notice":    SeverityNotice,
		"info":      SeverityInfo,
		"debug":     SeverityDebug,
	},
	CodeToSeverity: make(map[int]string),
}

var bidiOnce sync.Once

// Initialize reverse lookup maps
func InitBidiMaps() {
	bidiOnce.Do(func() {
		facilityMu.Lock()

		// Populate reverse lookup maps for facilities
		for facility, code := range logFacility.FacilityToCode {
			logFacility.CodeToFacility[code] = facility
		}
		facilityMu.Unlock()

		severityMu.Lock()

		// Populate reverse lookup maps for severities
		for severity, code := range logSeverity.SeverityToCode {
			logSeverity.CodeToSeverity[code] = severity
		}
		severityMu.Unlock()
	})
}

// Convert facility string to numeric code
func FacilityToCode(facility string) (code int, err error) {
	facilityMu.RLock()
	defer facilityMu.RUnlock()

	code, exists := logFacility.FacilityToCode[facility]
	if !exists {
		err = fmt.Errorf("%w: %s", ErrUnknownFacility, facility)
	}
	return
}

// Convert severity string to numeric code
func SeverityToCode(severity string) (code int, err error) {
	severityMu.RLock()
	defer severityMu.RUnlock()

	code, exists := logSeverity.SeverityToCode[severity]
	if !exists {
		err = fmt.Errorf("%w: %s", ErrUnknownSeverity, severity)
	}
	return
}

// Convert facility code to string
func CodeToFacility(code int) (facility string, err error) {
	InitBidiMaps()

	facilityMu.RLock()
	defer facilityMu.RUnlock()

	facility, exists := logFacility.CodeToFacility[code]
	if !exists {
		err = fmt.Errorf("unknown facility code: %d", code)
	}
	return
}

// Convert severity code to string
func CodeToSeverity(code int) (severity string, err error) {
	InitBidiMaps()

	severityMu.RLock()
	defer severityMu.RUnlock()

	severity, exists := logSeverity.CodeToSeverity[code]
	if !exists {
		err = fmt.Errorf("unknown severity code: %d", code)
	}
	return
}
