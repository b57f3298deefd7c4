package http

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCreateCORSMiddleware(t *testing.T) {
	t.Run("disabled returns nil", func(t *testing.T) {
		middleware := CreateCORSMiddleware(false, "https://app.example.com", discardLogger())
		assert.Nil(t, middleware)
	})

	t.Run("enabled without origins returns nil", func(t *testing.T) {
		middleware := CreateCORSMiddleware(true, "", discardLogger())
		assert.Nil(t, middleware)
	})

	t.Run("enabled with origins returns middleware", func(t *testing.T) {
		middleware := CreateCORSMiddleware(true, "https://app.example.com, https://staging.example.com", discardLogger())
		assert.NotNil(t, middleware)
	})
}

func TestParseOrigins(t *testing.T) {
	assert.Nil(t, parseOrigins(""))
	assert.Equal(t,
		[]string{"https://a.example.com", "https://b.example.com"},
		parseOrigins(" https://a.example.com ,https://b.example.com, "),
	)
}
