package wizard

import "errors"

var (
	ErrClosed              = errors.New("wizard is closed")
	ErrWrongStep           = errors.New("action not allowed at the current step")
	ErrUnknownVersion      = errors.New("version is not in the catalog")
	ErrPlatformUnavailable = errors.New("platform is not available for the selected version")
	ErrSelectionMismatch   = errors.New("selection does not resolve to an artifact")
	ErrDownloading         = errors.New("download in progress")
)
