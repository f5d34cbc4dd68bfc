package model

import "gorm.io/gorm"

const (
	SessionOpen   = "open"
	SessionClosed = "closed"
)

const (
	StatusHadir      = "hadir"
	StatusIzin       = "izin"
	StatusTidakHadir = "tidak hadir"
)

// ValidAttendanceStatus memastikan status absensi termasuk yang dikenali.
func ValidAttendanceStatus(status string) bool {
	switch status {
	case StatusHadir, StatusIzin, StatusTidakHadir:
		return true
	}
	return false
}

type AttendanceSession struct {
	gorm.Model
	Date      string `json:"date" gorm:"size:20;not null"`       // Format "2006-01-02"
	TimeOpen  string `json:"time_open" gorm:"size:10;not null"`  // Format "15:04"
	TimeClose string `json:"time_close" gorm:"size:10;not null"` // Format "15:04"
	Status    string `json:"status" gorm:"size:20;not null;default:open"`
	UserID    uint   `json:"user_id" gorm:"not null"` // pembuat sesi
	OrgID     uint   `json:"org_id" gorm:"not null"`

	AttendanceRecords []AttendanceRecord `json:"-" gorm:"foreignKey:AttendanceSessionID;constraint:OnDelete:CASCADE"`
}

type AttendanceRecord struct {
	gorm.Model
	AttendanceSessionID uint   `json:"attendance_session_id" gorm:"not null;uniqueIndex:idx_session_user"`
	UserID              uint   `json:"user_id" gorm:"not null;uniqueIndex:idx_session_user"`
	Status              string `json:"status" gorm:"size:20;not null"` // hadir / izin / tidak hadir

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
