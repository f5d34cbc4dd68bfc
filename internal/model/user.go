package model

import "gorm.io/gorm"

const (
	RoleAtlet   = "atlet"
	RolePelatih = "pelatih"
)

type User struct {
	gorm.Model
	Name         string `json:"name" gorm:"size:100;not null"`
	Email        string `json:"email" gorm:"size:100;uniqueIndex;not null"`
	Password     string `json:"-" gorm:"size:256;not null"`
	Role         string `json:"role" gorm:"size:20;not null;default:atlet"` // atlet / pelatih
	TanggalLahir string `json:"tanggal_lahir"`
	Alamat       string `json:"alamat"`
	NoTelepon    string `json:"no_telepon"`
	JenisKelamin string `json:"jenis_kelamin"`

	// Relasi: hapus user = hapus semua data turunannya
	Organizations      []Organization      `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	OrgMembers         []OrgMember         `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AttendanceSessions []AttendanceSession `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
	AttendanceRecords  []AttendanceRecord  `json:"-" gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE"`
}
