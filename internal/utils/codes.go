package utils

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/skip2/go-qrcode"
)

// GenerateTicketCode returns the unique code stamped on a ticket and
// encoded into its entry QR.
func GenerateTicketCode() string {
	return fmt.Sprintf("%s-%s", TicketCodePrefix, strings.ToUpper(uuid.NewString()))
}

// GenerateTransactionID tags the payment metadata on a purchase.
func GenerateTransactionID() string {
	return "TXN-" + uuid.NewString()
}

// GenerateUploadKey builds a collision-free storage key preserving the
// original extension, e.g. "events/6f1c...-a2.png".
func GenerateUploadKey(kind, originalName string) string {
	ext := strings.ToLower(filepath.Ext(originalName))
	return fmt.Sprintf("%s/%s%s", kind, uuid.NewString(), ext)
}

// TicketQRCode renders a ticket's entry code as a PNG.
func TicketQRCode(entryCode string) ([]byte, error) {
	return qrcode.Encode(entryCode, qrcode.Medium, QRCodeImageSize)
}
