package consts

// Recommended permissions for the files and directories autostepper might create.
const (
	// Cache directories - world readable
	PermsGenericDir = 0o755
	PermsAudioDir   = 0o755

	// Cache files - world readable
	PermsAudioFile = 0o644

	// Other files
	PermsLogFile = 0o644
)
