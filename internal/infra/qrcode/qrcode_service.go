package qrcode

import (
	"net/url"
	"strings"

	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/config"
	"github.com/Ricardogarciapt/Site-MoreThanMoney-sub001/internal/domain/service"

	"github.com/pkg/errors"
	"github.com/skip2/go-qrcode"
)

const referralParam = "ref"

type qrcodeService struct {
	size                 int
	errorCorrectionLevel qrcode.RecoveryLevel
	baseURL              string
}

// NewQRCodeService creates a new QR code service instance
func NewQRCodeService(cfg *config.Config) (service.QRCodeService, error) {
	qrCfg := cfg.QRCode
	if qrCfg == nil || qrCfg.BaseURL == "" {
		return nil, errors.New("qrcode.baseUrl is required")
	}
	if _, err := url.Parse(qrCfg.BaseURL); err != nil {
		return nil, errors.Wrap(err, "invalid qrcode.baseUrl")
	}

	size := qrCfg.Size
	if size <= 0 {
		size = 256
	}

	return &qrcodeService{
		size:                 size,
		errorCorrectionLevel: parseRecoveryLevel(qrCfg.ErrorCorrectionLevel),
		baseURL:              qrCfg.BaseURL,
	}, nil
}

func parseRecoveryLevel(level string) qrcode.RecoveryLevel {
	switch strings.ToLower(level) {
	case "l", "low":
		return qrcode.Low
	case "q", "high":
		return qrcode.High
	case "h", "highest":
		return qrcode.Highest
	default:
		return qrcode.Medium
	}
}

// ReferralURL returns <baseUrl>?ref=<code>, keeping any query already on the base URL
func (s *qrcodeService) ReferralURL(affiliateCode string) string {
	u, _ := url.Parse(s.baseURL)
	q := u.Query()
	q.Set(referralParam, affiliateCode)
	u.RawQuery = q.Encode()

	return u.String()
}

// GenerateReferralQR generates a PNG QR code of the referral link
func (s *qrcodeService) GenerateReferralQR(affiliateCode string) ([]byte, error) {
	if affiliateCode == "" {
		return nil, errors.New("affiliate code is required")
	}

	qrCode, err := qrcode.New(s.ReferralURL(affiliateCode), s.errorCorrectionLevel)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create QR code")
	}

	pngBytes, err := qrCode.PNG(s.size)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate PNG")
	}

	return pngBytes, nil
}

// ParseReferralQR extracts the affiliate code from a scanned referral link
func (s *qrcodeService) ParseReferralQR(qrData string) (string, error) {
	u, err := url.Parse(strings.TrimSpace(qrData))
	if err != nil {
		return "", errors.Wrap(err, "failed to parse QR code data")
	}

	code := u.Query().Get(referralParam)
	if code == "" {
		return "", errors.Errorf("QR code data has no %s parameter", referralParam)
	}

	return code, nil
}
