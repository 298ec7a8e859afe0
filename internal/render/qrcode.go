package render

import (
	"image"
	"image/color"

	"github.com/skip2/go-qrcode"
)

const defaultQRCodeSizePx = 256

// GenerateQRCodeImage returns a borderless QR code for payload drawn in fg on
// white. If payload is empty, it returns (nil, nil).
// The encoder never produces fewer pixels than modules, so the result may be
// larger than sizePx; callers scale it into place with DrawImageInRect.
func GenerateQRCodeImage(payload string, sizePx int, fg color.Color) (image.Image, error) {
	if payload == "" {
		return nil, nil
	}
	if sizePx <= 0 {
		sizePx = defaultQRCodeSizePx
	}

	// Low recovery keeps modules large enough to scan at banner size.
	qrCode, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return nil, err
	}
	qrCode.DisableBorder = true
	if fg != nil {
		qrCode.ForegroundColor = fg
	}

	return qrCode.Image(sizePx), nil
}
