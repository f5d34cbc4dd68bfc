package repository

import (
	"sport-attendance-backend/internal/model"

	"gorm.io/gorm"
)

type OrganizationRepository interface {
	CreateWithCreator(org *model.Organization, creator *model.User) error
	GetByID(id uint) (*model.Organization, error)
	GetByName(name string) (*model.Organization, error)
	GetByEnrollCode(code string) (*model.Organization, error)
	GetAll() ([]model.Organization, error)
	Update(org *model.Organization) error
	Delete(id uint) error
	AddMember(member *model.OrgMember) error
	GetMember(orgID, userID uint) (*model.OrgMember, error)
	GetMembers(orgID uint) ([]model.OrgMember, error)
	CountMembers(orgID uint) (int64, error)
}

type organizationRepository struct {
	db *gorm.DB
}

func NewOrganizationRepository(db *gorm.DB) OrganizationRepository {
	return &organizationRepository{db}
}

// CreateWithCreator membuat organisasi baru dalam satu transaksi:
// promosi role pembuat menjadi pelatih, insert organisasi, lalu insert
// keanggotaan pembuat. Gagal salah satu = rollback semuanya.
func (r *organizationRepository) CreateWithCreator(org *model.Organization, creator *model.User) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.User{}).Where("id = ?", creator.ID).
			Update("role", model.RolePelatih).Error; err != nil {
			return err
		}

		org.UserID = creator.ID
		if err := tx.Create(org).Error; err != nil {
			return err
		}

		member := model.OrgMember{OrgID: org.ID, UserID: creator.ID}
		if err := tx.Create(&member).Error; err != nil {
			return err
		}

		creator.Role = model.RolePelatih
		return nil
	})
}

func (r *organizationRepository) GetByID(id uint) (*model.Organization, error) {
	var org model.Organization
	err := r.db.Preload("Members.User").First(&org, id).Error
	return &org, err
}

func (r *organizationRepository) GetByName(name string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.Where("name = ?", name).First(&org).Error
	return &org, err
}

func (r *organizationRepository) GetByEnrollCode(code string) (*model.Organization, error) {
	var org model.Organization
	err := r.db.Where("enroll_code = ?", code).First(&org).Error
	return &org, err
}

func (r *organizationRepository) GetAll() ([]model.Organization, error) {
	var orgs []model.Organization
	err := r.db.Order("id asc").Find(&orgs).Error
	return orgs, err
}

func (r *organizationRepository) Update(org *model.Organization) error {
	// Hanya kolom organisasi sendiri; org bisa datang dengan Members
	// ter-preload dan Save akan ikut menulis ulang baris asosiasinya
	return r.db.Model(org).Select("name", "enroll_code", "user_id").Updates(org).Error
}

func (r *organizationRepository) Delete(id uint) error {
	// Select(clause.Associations) tidak dipakai: cascade ditangani constraint FK
	return r.db.Delete(&model.Organization{}, id).Error
}

func (r *organizationRepository) AddMember(member *model.OrgMember) error {
	return r.db.Create(member).Error
}

func (r *organizationRepository) GetMember(orgID, userID uint) (*model.OrgMember, error) {
	var member model.OrgMember
	err := r.db.Where("org_id = ? AND user_id = ?", orgID, userID).First(&member).Error
	return &member, err
}

func (r *organizationRepository) GetMembers(orgID uint) ([]model.OrgMember, error) {
	var members []model.OrgMember
	err := r.db.Preload("User").Where("org_id = ?", orgID).Order("id asc").Find(&members).Error
	return members, err
}

func (r *organizationRepository) CountMembers(orgID uint) (int64, error) {
	var count int64
	err := r.db.Model(&model.OrgMember{}).Where("org_id = ?", orgID).Count(&count).Error
	return count, err
}
