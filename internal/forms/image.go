package forms

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"mime/multipart"

	"github.com/gabriel-vasile/mimetype"
)

var allowedImageTypes = map[string]bool{
	"image/gif":  true,
	"image/png":  true,
	"image/jpeg": true,
}

// Image is an uploaded picture that passed validation.
type Image struct {
	Data        []byte
	ContentType string
	Extension   string
	Width       int
	Height      int
}

// ReadImage loads an upload and checks that it is a gif, png or jpeg no larger than maxBytes.
func ReadImage(fh *multipart.FileHeader, maxBytes int64) (*Image, error) {
	if maxBytes > 0 && fh.Size > maxBytes {
		return nil, fmt.Errorf("Ensure the image is at most %d bytes (it is %d).", maxBytes, fh.Size)
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.New(msgInvalidImage)
	}
	defer f.Close()

	var r io.Reader = f
	if maxBytes > 0 {
		r = io.LimitReader(f, maxBytes+1)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.New(msgInvalidImage)
	}
	if maxBytes > 0 && int64(len(data)) > maxBytes {
		return nil, fmt.Errorf("Ensure the image is at most %d bytes (it is larger).", maxBytes)
	}
	return DecodeImage(data)
}

// DecodeImage sniffs the payload and decodes the image header.
func DecodeImage(data []byte) (*Image, error) {
	mt := mimetype.Detect(data)
	if !allowedImageTypes[mt.String()] {
		return nil, errors.New(msgInvalidImage)
	}
	cfg, _, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil || cfg.Width == 0 || cfg.Height == 0 {
		return nil, errors.New(msgInvalidImage)
	}
	return &Image{
		Data:        data,
		ContentType: mt.String(),
		Extension:   mt.Extension(),
		Width:       cfg.Width,
		Height:      cfg.Height,
	}, nil
}
