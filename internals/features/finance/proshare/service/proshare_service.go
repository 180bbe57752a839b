// file: internals/features/finance/proshare/service/proshare_service.go
package service

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"bimbelku_backend/internals/constants"
	proshareModel "bimbelku_backend/internals/features/finance/proshare/model"
	mitraModel "bimbelku_backend/internals/features/tutoring/mitra/model"
	helper "bimbelku_backend/internals/helpers"
)

// ProcessProsharePayment menandai proshare Paid dan menarik saldonya dari
// wallet mitra.
func ProcessProsharePayment(db *gorm.DB, proshareID uuid.UUID) (*proshareModel.Proshare, error) {
	var ps proshareModel.Proshare
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := helper.LockForUpdate(tx).
			First(&ps, "proshare_id = ?", proshareID).Error; err != nil {
			if err == gorm.ErrRecordNotFound {
				return fiber.NewError(fiber.StatusNotFound, "Proshare tidak ditemukan")
			}
			return err
		}
		if ps.ProshareStatus == constants.PayoutPaid {
			return fiber.NewError(fiber.StatusConflict, "Proshare sudah dibayar")
		}

		var mitra mitraModel.Mitra
		if err := helper.LockForUpdate(tx).
			First(&mitra, "mitra_id = ?", ps.ProshareMitraID).Error; err != nil {
			return fiber.NewError(fiber.StatusNotFound, "Mitra tidak ditemukan")
		}

		mitra.MitraWallet -= ps.ProshareTotal
		if err := tx.Save(&mitra).Error; err != nil {
			return err
		}

		ps.ProshareStatus = constants.PayoutPaid
		return tx.Save(&ps).Error
	})
	if err != nil {
		return nil, err
	}
	return &ps, nil
}

func GetProshareByMitraID(db *gorm.DB, mitraID uuid.UUID) ([]proshareModel.Proshare, error) {
	var list []proshareModel.Proshare
	if err := db.Where("proshare_mitra_id = ?", mitraID).
		Order("proshare_created_at DESC").Find(&list).Error; err != nil {
		return nil, err
	}
	return list, nil
}
