package model

// AttendanceID uniquely identifies an attendance record
type AttendanceID string

// AttendanceStatus is the closed set of attendance outcomes
type AttendanceStatus string

const (
	AttendancePresent AttendanceStatus = "present"
	AttendanceAbsent  AttendanceStatus = "absent"
	AttendanceLate    AttendanceStatus = "late"
)

// Attendance records a single player's attendance on a given date
type Attendance struct {
	ID       AttendanceID
	PlayerID PlayerID
	Date     string
	Status   AttendanceStatus
	Notes    string
}
