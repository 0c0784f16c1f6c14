package consts

// DLStatus holds constant download status strings.
type DLStatus string

// Download status strings.
const (
	DLStatusPending     DLStatus = "waiting"
	DLStatusDownloading DLStatus = "downloading"
	DLStatusCompleted   DLStatus = "finished"
	DLStatusFailed      DLStatus = "failed"
)
