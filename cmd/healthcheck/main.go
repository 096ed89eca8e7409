// Package main provides a lightweight health check utility for Docker containers.
// This tool is statically compiled and designed to work in minimal environments
// like scratch-based Docker images where standard tools (wget, curl) are unavailable.
package main

import (
	"fmt"
	"net"
	"net/http"
	"os"
	"time"
)

const (
	defaultHost    = "127.0.0.1"
	defaultPort    = "3000"
	requestTimeout = 5 * time.Second
	exitSuccess    = 0
	exitFailure    = 1
)

// healthURL builds the probe URL from the same HOST/PORT variables the
// server binds, so a non-default listen address is honored.
func healthURL(host, port string) string {
	if host == "" {
		host = defaultHost
	}
	if port == "" {
		port = defaultPort
	}
	return fmt.Sprintf("http://%s/health", net.JoinHostPort(host, port))
}

func main() {
	client := &http.Client{
		Timeout: requestTimeout,
	}

	resp, err := client.Get(healthURL(os.Getenv("HOST"), os.Getenv("PORT")))
	if err != nil {
		fmt.Fprintf(os.Stderr, "Health check failed: %v\n", err)
		os.Exit(exitFailure)
	}
	// Close response body immediately since we exit right after checking status
	// Note: defer won't work here because os.Exit bypasses deferred calls
	resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		fmt.Fprintf(os.Stderr, "Health check returned non-OK status: %d\n", resp.StatusCode)
		os.Exit(exitFailure)
	}

	os.Exit(exitSuccess)
}
