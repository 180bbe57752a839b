package helper

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// LockForUpdate menambahkan SELECT ... FOR UPDATE pada dialek yang
// mendukungnya. SQLite (dipakai di test) tidak punya klausa FOR UPDATE;
// transaksinya sudah serial sehingga lock eksplisit tidak diperlukan.
func LockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}
