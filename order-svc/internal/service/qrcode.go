package service

import (
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

// PaymentTransfer is what a participant needs to pay for their entry by bank
// transfer.
type PaymentTransfer struct {
	AccountNumber string
	Amount        int
	Title         string
}

type QRGenerator interface {
	Generate(t PaymentTransfer) ([]byte, error)
}

type DefaultQRGenerator struct {
	Size int
}

// Generate encodes the transfer as account|amount|title, amount in the
// smallest currency unit.
func (g DefaultQRGenerator) Generate(t PaymentTransfer) ([]byte, error) {
	size := g.Size
	if size <= 0 {
		size = 256
	}
	account := strings.ReplaceAll(t.AccountNumber, " ", "")
	qrData := fmt.Sprintf("%s|%d|%s", account, t.Amount, t.Title)
	return qrcode.Encode(qrData, qrcode.Medium, size)
}
