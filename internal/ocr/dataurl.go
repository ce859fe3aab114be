package ocr

import (
	"encoding/base64"
	"errors"
	"strings"
)

var errBadDataURL = errors.New("invalid image data URL")

// decodeDataURL splits a base64 data URL into raw bytes and a file extension
// inferred from the MIME prefix: jpeg maps to jpg, everything else to png.
func decodeDataURL(s string) ([]byte, string, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, "", errBadDataURL
	}

	payload := s
	ext := "png"
	if strings.HasPrefix(s, "data:") {
		comma := strings.Index(s, ",")
		if comma < 0 {
			return nil, "", errBadDataURL
		}
		meta := s[len("data:"):comma]
		payload = s[comma+1:]
		if strings.Contains(meta, "jpeg") || strings.Contains(meta, "jpg") {
			ext = "jpg"
		}
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, "", errBadDataURL
	}
	if len(data) == 0 {
		return nil, "", errBadDataURL
	}
	return data, ext, nil
}
