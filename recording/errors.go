package recording

import "errors"

// Sentinel errors for recording package.
var (
	// ErrUnknownBackend is returned by NewBackend for unregistered names.
	ErrUnknownBackend = errors.New("recording: unknown backend")

	// ErrUnbalancedRestore is reported when a Restore has no matching Save.
	ErrUnbalancedRestore = errors.New("recording: restore without save")

	// ErrUnknownCommand is returned by Playback for commands it cannot replay.
	ErrUnknownCommand = errors.New("recording: unknown command")
)
