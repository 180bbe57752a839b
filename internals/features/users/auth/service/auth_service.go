// file: internals/features/users/auth/service/auth_service.go
package service

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/constants"
	mitraModel "bimbelku_backend/internals/features/tutoring/mitra/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
	authModel "bimbelku_backend/internals/features/users/auth/model"
)

const accessTTL = 24 * time.Hour

// account hasil lookup polimorfik: satu bentuk untuk empat tabel akun.
type account struct {
	ID           uuid.UUID
	Name         string
	Role         constants.AccountRole
	PasswordHash string
}

// Login cari akun sesuai role (username atau email), cek bcrypt, terbitkan JWT.
func Login(db *gorm.DB, role constants.AccountRole, username, password string) (string, *fiber.Map, error) {
	acc, err := findAccount(db, role, username)
	if err != nil {
		return "", nil, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(acc.PasswordHash), []byte(password)); err != nil {
		return "", nil, fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")
	}

	token, err := issueAccessToken(acc)
	if err != nil {
		return "", nil, fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat token")
	}

	profile := fiber.Map{
		"id":   acc.ID,
		"name": acc.Name,
		"role": acc.Role,
	}
	return token, &profile, nil
}

func findAccount(db *gorm.DB, role constants.AccountRole, username string) (*account, error) {
	notFound := fiber.NewError(fiber.StatusUnauthorized, "Username atau password salah")

	switch role {
	case constants.RoleAdmin:
		var a authModel.Admin
		if err := db.Where("admin_username = ? OR admin_email = ?", username, username).
			First(&a).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound
			}
			return nil, err
		}
		return &account{ID: a.AdminID, Name: a.AdminName, Role: constants.RoleAdmin, PasswordHash: a.AdminPassword}, nil

	case constants.RoleTentor:
		var t tentorModel.Tentor
		if err := db.Where("tentor_username = ? OR tentor_email = ?", username, username).
			First(&t).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound
			}
			return nil, err
		}
		return &account{ID: t.TentorID, Name: t.TentorName, Role: constants.RoleTentor, PasswordHash: t.TentorPassword}, nil

	case constants.RoleSiswa:
		var s siswaModel.Siswa
		if err := db.Where("siswa_username = ? OR siswa_email = ?", username, username).
			First(&s).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound
			}
			return nil, err
		}
		return &account{ID: s.SiswaID, Name: s.SiswaName, Role: constants.RoleSiswa, PasswordHash: s.SiswaPassword}, nil

	case constants.RoleMitra:
		var m mitraModel.Mitra
		if err := db.Where("mitra_username = ? OR mitra_email = ?", username, username).
			First(&m).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, notFound
			}
			return nil, err
		}
		return &account{ID: m.MitraID, Name: m.MitraName, Role: constants.RoleMitra, PasswordHash: m.MitraPassword}, nil
	}

	return nil, fiber.NewError(fiber.StatusBadRequest, "Role tidak dikenal")
}

func issueAccessToken(acc *account) (string, error) {
	now := time.Now().UTC()
	claims := jwt.MapClaims{
		"sub":  acc.ID.String(),
		"role": string(acc.Role),
		"name": acc.Name,
		"iat":  now.Unix(),
		"exp":  now.Add(accessTTL).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).
		SignedString([]byte(configs.JWTSecret))
}

// HashPassword dipakai seeding & endpoint register internal.
func HashPassword(plain string) (string, error) {
	b, err := bcrypt.GenerateFromPassword([]byte(plain), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
