package model

import "gorm.io/gorm"

type Organization struct {
	gorm.Model
	Name       string `json:"name" gorm:"size:100;uniqueIndex;not null"`
	EnrollCode string `json:"enroll_code" gorm:"size:50;uniqueIndex;not null"`
	UserID     uint   `json:"user_id" gorm:"not null"` // pembuat organisasi

	Members            []OrgMember         `json:"members,omitempty" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
	AttendanceSessions []AttendanceSession `json:"-" gorm:"foreignKey:OrgID;constraint:OnDelete:CASCADE"`
}

type OrgMember struct {
	gorm.Model
	OrgID  uint `json:"org_id" gorm:"not null;uniqueIndex:idx_org_user"`
	UserID uint `json:"user_id" gorm:"not null;uniqueIndex:idx_org_user"`

	User User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
