package config

import (
	"fmt"
	"sport-attendance-backend/internal/model"

	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

func ConnectDB() {
	// Format: user:password@tcp(127.0.0.1:3306)/dbname?charset=utf8mb4&parseTime=True&loc=Local
	// Jika pakai XAMPP default, user adalah "root" dan password kosong ""
	dsn := fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=Local",
		GetEnv("DB_USER", "root"),
		GetEnv("DB_PASSWORD", ""),
		GetEnv("DB_HOST", "127.0.0.1"),
		GetEnv("DB_PORT", "3306"),
		GetEnv("DB_NAME", "sport_attendance_db"),
	)

	// TranslateError supaya pelanggaran unique index bisa dicek
	// lewat errors.Is(err, gorm.ErrDuplicatedKey) di handler
	db, err := gorm.Open(mysql.Open(dsn), &gorm.Config{TranslateError: true})
	if err != nil {
		panic("Gagal koneksi ke database!")
	}

	fmt.Println("Koneksi Database Berhasil!")

	// Auto Migration: Membuat tabel otomatis berdasarkan struct di folder model.
	// Urutan penting karena foreign key: users dulu, baru turunannya.
	db.AutoMigrate(&model.User{})
	db.AutoMigrate(&model.Organization{})
	db.AutoMigrate(&model.OrgMember{})
	db.AutoMigrate(&model.AttendanceSession{})
	db.AutoMigrate(&model.AttendanceRecord{})

	DB = db
}
