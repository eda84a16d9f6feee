package util

import (
	"fmt"
	"io"
	"net/http"
)

// ValidateMimeType 嗅探文件头而不是信任扩展名
func ValidateMimeType(r io.Reader, allowed []string) (string, error) {
	buf := make([]byte, 512)
	n, err := r.Read(buf)
	if err != nil && err != io.EOF {
		return "", err
	}

	detected := http.DetectContentType(buf[:n])
	for _, a := range allowed {
		if detected == a {
			return detected, nil
		}
	}
	return detected, fmt.Errorf("unexpected content type %s", detected)
}
