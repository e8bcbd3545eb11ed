package constants

import "os"

// Directory permission constants.
const (
	// DirPermStandard is the permission for created log directories (owner rwx, group r-x).
	DirPermStandard os.FileMode = 0750
)

// File permission constants.
const (
	// FilePermPreset is the permission of written .nxs files (owner rw, group r, other r).
	// Presets carry no credentials, the client only needs to read them.
	FilePermPreset os.FileMode = 0644
)
