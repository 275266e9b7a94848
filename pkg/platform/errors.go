package platform

import "errors"

var (
	// ErrClosed is returned when operating on a closed channel or stream.
	ErrClosed = errors.New("platform: channel closed")

	// ErrViewNotFound is returned when native names a view id with no live
	// ChannelView.
	ErrViewNotFound = errors.New("platform: view not found")
)
