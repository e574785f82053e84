package gsregress

import "errors"

const (
	MAX_SUGGEST_DISTANCE = 2
	MANIFEST_FILE_MODE   = 0644
)

var (
	ErrRootNotFound  = errors.New("root not found")
	ErrNotADirectory = errors.New("not a directory")
)
