package services_test

import (
	"io"
	"net/http"
	"strings"

	"github.com/pixelforge/pixelforge-api/pkg/logger"
)

func init() {
	// Initialize logger for tests
	if err := logger.Initialize(logger.Config{
		Level:       "debug",
		Environment: "development",
	}); err != nil {
		panic(err)
	}
}

// captchaResponse builds an http.Response with the given reCAPTCHA verdict
func captchaResponse(success bool) *http.Response {
	body := `{"success":false}`
	if success {
		body = `{"success":true}`
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}
