// Package constants defines timeout values and UI timings used throughout the application.
package constants

import "time"

const (
	// Upstream request timeout
	RequestTimeout = 15 * time.Second

	// Server timeouts
	ReadTimeout     = 10 * time.Second
	WriteTimeout    = 30 * time.Second
	IdleTimeout     = 60 * time.Second
	ShutdownTimeout = 10 * time.Second

	// Hero carousel
	CarouselInterval   = 7 * time.Second
	CarouselAutoFade   = 800 * time.Millisecond
	CarouselManualFade = 500 * time.Millisecond

	// Player controls auto-hide
	ControlsHideDelay = 3 * time.Second

	// Session janitor
	SessionCleanupInterval = 10 * time.Minute
)
