// file: internals/features/users/auth/service/auth_service_test.go
package service

import (
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"bimbelku_backend/internals/configs"
	"bimbelku_backend/internals/constants"
	mitraModel "bimbelku_backend/internals/features/tutoring/mitra/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
	authModel "bimbelku_backend/internals/features/users/auth/model"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&authModel.Admin{},
		&siswaModel.Siswa{},
		&tentorModel.Tentor{},
		&mitraModel.Mitra{},
	))
	return db
}

func TestLoginSiswa(t *testing.T) {
	db := newTestDB(t)
	configs.JWTSecret = "test-secret"

	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)

	siswa := siswaModel.Siswa{
		SiswaName:     "Gita Permata",
		SiswaUsername: "gita-permata",
		SiswaPassword: hash,
		SiswaNoHp:     "0888888888",
		SiswaEmail:    "gita@bimbelku.id",
		SiswaGender:   "P",
		SiswaLevel:    "SMA",
	}
	require.NoError(t, db.Create(&siswa).Error)

	t.Run("login via username", func(t *testing.T) {
		token, profile, err := Login(db, constants.RoleSiswa, "gita-permata", "rahasia123")
		require.NoError(t, err)
		require.NotEmpty(t, token)
		assert.Equal(t, "Gita Permata", (*profile)["name"])

		claims := jwt.MapClaims{}
		_, err = jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
			return []byte(configs.JWTSecret), nil
		})
		require.NoError(t, err)
		assert.Equal(t, siswa.SiswaID.String(), claims["sub"])
		assert.Equal(t, string(constants.RoleSiswa), claims["role"])
	})

	t.Run("login via email", func(t *testing.T) {
		_, _, err := Login(db, constants.RoleSiswa, "gita@bimbelku.id", "rahasia123")
		require.NoError(t, err)
	})

	t.Run("password salah", func(t *testing.T) {
		_, _, err := Login(db, constants.RoleSiswa, "gita-permata", "salah")
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	})

	t.Run("akun tidak ada", func(t *testing.T) {
		_, _, err := Login(db, constants.RoleSiswa, "tidak-ada", "rahasia123")
		require.Error(t, err)
		fe, ok := err.(*fiber.Error)
		require.True(t, ok)
		assert.Equal(t, fiber.StatusUnauthorized, fe.Code)
	})

	t.Run("role salah tabel", func(t *testing.T) {
		// akun siswa tidak bisa login sebagai tentor
		_, _, err := Login(db, constants.RoleTentor, "gita-permata", "rahasia123")
		require.Error(t, err)
	})
}

func TestLoginAdmin(t *testing.T) {
	db := newTestDB(t)
	configs.JWTSecret = "test-secret"

	hash, err := HashPassword("admin123")
	require.NoError(t, err)
	admin := authModel.Admin{
		AdminName:     "Operator Pusat",
		AdminUsername: "operator",
		AdminPassword: hash,
		AdminEmail:    "ops@bimbelku.id",
	}
	require.NoError(t, db.Create(&admin).Error)

	token, profile, err := Login(db, constants.RoleAdmin, "operator", "admin123")
	require.NoError(t, err)
	assert.NotEmpty(t, token)
	assert.Equal(t, constants.RoleAdmin, (*profile)["role"])
}
