// file: internals/features/finance/invoice/service/midtrans_service.go
package service

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	midtrans "github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"gorm.io/gorm"

	invoiceModel "bimbelku_backend/internals/features/finance/invoice/model"
	siswaModel "bimbelku_backend/internals/features/tutoring/siswa/model"
)

var SnapClient snap.Client

// InitMidtrans menginisialisasi Midtrans Snap Client dengan server key.
func InitMidtrans(serverKey string) {
	SnapClient.New(serverKey, midtrans.Sandbox)
}

// GenerateSnapToken membuat token Snap Midtrans untuk satu invoice dan
// menyimpannya di row invoice.
func GenerateSnapToken(db *gorm.DB, inv *invoiceModel.Invoice, siswa *siswaModel.Siswa) (string, error) {
	req := &snap.Request{
		TransactionDetails: midtrans.TransactionDetails{
			OrderID:  inv.InvoiceID.String(),
			GrossAmt: int64(inv.InvoicePrice),
		},
		CustomerDetail: &midtrans.CustomerDetails{
			FName: siswa.SiswaName,
			Email: siswa.SiswaEmail,
		},
	}

	resp, err := SnapClient.CreateTransaction(req)
	if err != nil {
		return "", err
	}

	inv.InvoiceSnapToken = &resp.Token
	if err := db.Model(inv).Update("invoice_snap_token", resp.Token).Error; err != nil {
		return "", err
	}
	return resp.Token, nil
}

// HandlePaymentWebhook dipanggil saat menerima notifikasi dari Midtrans;
// settlement/capture menandai invoice Paid lewat jalur payment biasa.
func HandlePaymentWebhook(db *gorm.DB, body map[string]interface{}) error {
	orderID, ok1 := body["order_id"].(string)
	status, ok2 := body["transaction_status"].(string)
	if !ok1 || !ok2 {
		log.Println("[ERROR] Payload webhook tidak lengkap:", body)
		return fiber.NewError(fiber.StatusBadRequest, "Payload notifikasi tidak lengkap")
	}

	log.Println("📄 Order ID:", orderID, "status:", status)

	invoiceID, err := uuid.Parse(orderID)
	if err != nil {
		return err
	}

	switch status {
	case "settlement", "capture":
		_, err := ProcessInvoicePayment(db, invoiceID)
		return err
	case "deny", "cancel", "expire":
		log.Println("[INFO] Pembayaran gagal/di-cancel untuk invoice", orderID)
		return nil
	default:
		// pending dkk: biarkan Unpaid
		return nil
	}
}
