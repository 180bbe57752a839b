package constants

// Status order
const (
	OrderNonApprove = "NonApprove"
	OrderApprove    = "Approve"
	OrderReject     = "Reject"
)

// Status subscription
const (
	SubscriptionActive    = "Active"
	SubscriptionNonActive = "NonActive"
)

// Status kehadiran jadwal
const (
	AttendanceAbsent            = "Absent"
	AttendancePresent           = "Present"
	AttendancePresentRequest    = "PresentRequest"
	AttendanceRescheduleRequest = "RescheduleRequest"
)

// Status pembayaran invoice
const (
	PaymentUnpaid = "Unpaid"
	PaymentPaid   = "Paid"
)

// Status payout (honor & proshare)
const (
	PayoutPending = "Pending"
	PayoutPaid    = "Paid"
)

// Status entitas aktif/nonaktif
const (
	TentorActive    = "active"
	TentorNonActive = "nonactive"
	PaketAktif      = "Aktif"
	PaketNonaktif   = "Nonaktif"
)
