// file: internals/features/finance/honor/service/honor_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	honorModel "bimbelku_backend/internals/features/finance/honor/model"
	tentorModel "bimbelku_backend/internals/features/tutoring/tentor/model"
	helper "bimbelku_backend/internals/helpers"
)

// ProcessHonorPayment menandai honor Paid dan menarik saldonya dari wallet
// tentor (wallet dikredit per sesi saat absensi; payout menguranginya).
func ProcessHonorPayment(db *gorm.DB, honorID uuid.UUID) (*honorModel.Honor, error) {
	var honor honorModel.Honor
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).
			First(&honor, "honor_id = ?", honorID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Honor tidak ditemukan")
			}
			return err
		}
		if honor.HonorStatus == constants.PayoutPaid {
			return fiber.NewError(fiber.StatusConflict, "Honor sudah dibayar")
		}

		var tentor tentorModel.Tentor
		if err := helper.LockForUpdate(tx).
			First(&tentor, "tentor_id = ?", honor.HonorTentorID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Tentor tidak ditemukan")
		}

		tentor.TentorWallet -= honor.HonorTotal
		if err := tx.Save(&tentor).Error; err != nil {
			return err
		}

		honor.HonorStatus = constants.PayoutPaid
		return tx.Save(&honor).Error
	})
	if err != nil {
		return nil, err
	}
	return &honor, nil
}

func GetHonorByID(db *gorm.DB, honorID uuid.UUID) (*honorModel.Honor, error) {
	var honor honorModel.Honor
	if err := db.First(&honor, "honor_id = ?", honorID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fiber.NewError(fiber.StatusNotFound, "Honor tidak ditemukan")
		}
		return nil, err
	}
	return &honor, nil
}

func GetHonorByTentorID(db *gorm.DB, tentorID uuid.UUID) ([]honorModel.Honor, error) {
	var honors []honorModel.Honor
	if err := db.Where("honor_tentor_id = ?", tentorID).
		Order("honor_created_at DESC").Find(&honors).Error; err != nil {
		return nil, err
	}
	return honors, nil
}
