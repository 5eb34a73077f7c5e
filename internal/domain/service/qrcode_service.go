package service

// QRCodeService defines the interface for QR code generation and parsing services
type QRCodeService interface {
	// GenerateReferralQR generates a PNG QR code pointing at the referral link of an affiliate code
	GenerateReferralQR(affiliateCode string) ([]byte, error)

	// ReferralURL returns the referral link encoded for an affiliate code
	ReferralURL(affiliateCode string) string

	// ParseReferralQR parses referral link data and returns the affiliate code
	ParseReferralQR(qrData string) (string, error)
}
