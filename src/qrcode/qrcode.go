package qrcode

import (
	"github.com/skip2/go-qrcode"
)

// EncodePNG renders data as a QR code PNG, sized for a door-scanner badge.
func EncodePNG(data string) ([]byte, error) {
	return qrcode.Encode(data, qrcode.Medium, 256)
}
