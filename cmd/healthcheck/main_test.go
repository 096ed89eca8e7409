package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestHealthURL tests probe address construction from HOST/PORT
func TestHealthURL(t *testing.T) {
	assert.Equal(t, "http://127.0.0.1:3000/health", healthURL("", ""))
	assert.Equal(t, "http://0.0.0.0:8080/health", healthURL("0.0.0.0", "8080"))
	assert.Equal(t, "http://127.0.0.1:9000/health", healthURL("", "9000"))
	assert.Equal(t, "http://[::1]:3000/health", healthURL("::1", ""))
}
