package usecase

import (
	"errors"

	"sport-attendance-backend/internal/model"
	"sport-attendance-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailTaken         = errors.New("email already used")
	ErrInvalidCredentials = errors.New("invalid email or password")
)

type UserUsecase struct {
	repo repository.UserRepository
}

func NewUserUsecase(repo repository.UserRepository) *UserUsecase {
	return &UserUsecase{repo: repo}
}

func (u *UserUsecase) Register(name, email, password string) (*model.User, error) {
	// 1. Email harus belum terpakai
	if _, err := u.repo.GetByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	// 2. Hashing password, jangan pernah simpan plaintext
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := model.User{
		Name:     name,
		Email:    email,
		Password: string(hashed),
		Role:     model.RoleAtlet,
	}
	if err := u.repo.Create(&user); err != nil {
		// Kalah balapan dengan register identik: unique index email yang
		// menang, laporkan sama seperti duplikat biasa
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (u *UserUsecase) Login(email, password string) (*model.User, error) {
	user, err := u.repo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	// Bandingkan lewat hash, bukan string biasa
	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

// UpdateProfileInput memakai pointer agar field yang tidak dikirim tidak ikut tertimpa.
type UpdateProfileInput struct {
	Name         *string `json:"name"`
	Email        *string `json:"email"`
	Password     *string `json:"password"`
	TanggalLahir *string `json:"tanggal_lahir"`
	Alamat       *string `json:"alamat"`
	NoTelepon    *string `json:"no_telepon"`
	JenisKelamin *string `json:"jenis_kelamin"`
	Role         *string `json:"role"`
}

func (u *UserUsecase) UpdateProfile(id uint, input UpdateProfileInput) (*model.User, error) {
	user, err := u.repo.GetByID(id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		user.Name = *input.Name
	}
	if input.Email != nil {
		user.Email = *input.Email
	}
	if input.Password != nil {
		hashed, err := bcrypt.GenerateFromPassword([]byte(*input.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}
	if input.TanggalLahir != nil {
		user.TanggalLahir = *input.TanggalLahir
	}
	if input.Alamat != nil {
		user.Alamat = *input.Alamat
	}
	if input.NoTelepon != nil {
		user.NoTelepon = *input.NoTelepon
	}
	if input.JenisKelamin != nil {
		user.JenisKelamin = *input.JenisKelamin
	}
	if input.Role != nil {
		user.Role = *input.Role
	}

	if err := u.repo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}
