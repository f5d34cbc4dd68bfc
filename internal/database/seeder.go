package database

import (
	"log"

	"sport-attendance-backend/internal/model"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func SeedAll(db *gorm.DB) {
	// 1. Seed User awal, semua mulai sebagai atlet
	users := []struct {
		Name     string
		Email    string
		Password string
	}{
		{"Andi Perkasa", "andiperkasa@gmail.com", "andi123"},
		{"Budi Santoso", "budisantoso@gmail.com", "budi123"},
		{"Heru Gunawan", "herugunawan@gmail.com", "heru123"},
		{"Fajar Kurniawan", "fajarkurniawan@gmail.com", "fajar123"},
		{"Dika Bayu", "dikabayu5@gmail.com", "dika123"},
	}

	for _, u := range users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatal("Gagal hashing password seed:", err)
		}
		user := model.User{
			Name:     u.Name,
			Email:    u.Email,
			Password: string(hashed),
			Role:     model.RoleAtlet,
		}
		db.FirstOrCreate(&user, model.User{Email: u.Email})
	}
	log.Println("Seeding data User berhasil.")

	// 2. Seed satu organisasi contoh milik user pertama, lengkap dengan
	// keanggotaan pembuatnya dan promosi role ke pelatih
	var creator model.User
	if err := db.Where("email = ?", "andiperkasa@gmail.com").First(&creator).Error; err != nil {
		log.Fatal("User pembuat organisasi tidak ditemukan:", err)
	}

	org := model.Organization{
		Name:       "Klub Atletik Perkasa",
		EnrollCode: "PERKASA1",
		UserID:     creator.ID,
	}
	db.FirstOrCreate(&org, model.Organization{Name: org.Name})

	db.Model(&model.User{}).Where("id = ?", creator.ID).Update("role", model.RolePelatih)

	member := model.OrgMember{OrgID: org.ID, UserID: creator.ID}
	db.FirstOrCreate(&member, model.OrgMember{OrgID: org.ID, UserID: creator.ID})

	log.Println("Seeding data Organization berhasil.")
}
