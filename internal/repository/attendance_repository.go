package repository

import (
	"sport-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type AttendanceRepository interface {
	CreateSession(session *model.AttendanceSession) error
	GetSessionByID(id uint) (*model.AttendanceSession, error)
	GetSessionsByOrg(orgID uint) ([]model.AttendanceSession, error)
	UpdateSession(session *model.AttendanceSession) error
	CreateRecord(record *model.AttendanceRecord) error
	GetRecord(sessionID, userID uint) (*model.AttendanceRecord, error)
	UpdateRecord(record *model.AttendanceRecord) error
	GetRecordsBySession(sessionID uint) ([]model.AttendanceRecord, error)
	GetRecordsByOrg(orgID uint) ([]model.AttendanceRecord, error)
}

type attendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) AttendanceRepository {
	return &attendanceRepository{db}
}

func (r *attendanceRepository) CreateSession(session *model.AttendanceSession) error {
	return r.db.Create(session).Error
}

func (r *attendanceRepository) GetSessionByID(id uint) (*model.AttendanceSession, error) {
	var session model.AttendanceSession
	err := r.db.First(&session, id).Error
	return &session, err
}

func (r *attendanceRepository) GetSessionsByOrg(orgID uint) ([]model.AttendanceSession, error) {
	var sessions []model.AttendanceSession
	err := r.db.Where("org_id = ?", orgID).Order("date asc, time_open asc").Find(&sessions).Error
	return sessions, err
}

func (r *attendanceRepository) UpdateSession(session *model.AttendanceSession) error {
	return r.db.Save(session).Error
}

func (r *attendanceRepository) CreateRecord(record *model.AttendanceRecord) error {
	return r.db.Create(record).Error
}

func (r *attendanceRepository) GetRecord(sessionID, userID uint) (*model.AttendanceRecord, error) {
	var record model.AttendanceRecord
	err := r.db.Where("attendance_session_id = ? AND user_id = ?", sessionID, userID).First(&record).Error
	return &record, err
}

func (r *attendanceRepository) UpdateRecord(record *model.AttendanceRecord) error {
	return r.db.Save(record).Error
}

func (r *attendanceRepository) GetRecordsBySession(sessionID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Preload("User").Where("attendance_session_id = ?", sessionID).Order("id asc").Find(&records).Error
	return records, err
}

// GetRecordsByOrg mengambil semua record absensi milik satu organisasi
// lewat join ke sesi-sesinya. Hanya untuk dibaca, tidak ada jalur tulis di sini.
func (r *attendanceRepository) GetRecordsByOrg(orgID uint) ([]model.AttendanceRecord, error) {
	var records []model.AttendanceRecord
	err := r.db.Preload("User").
		Joins("JOIN attendance_sessions ON attendance_sessions.id = attendance_records.attendance_session_id").
		Where("attendance_sessions.org_id = ?", orgID).
		Order("attendance_records.id asc").
		Find(&records).Error
	return records, err
}
