package domain

const (
	// StorageKey is the fixed key the durable store writes the envelope under.
	StorageKey = "chronos_v2_data"

	DefaultUserName = "User"

	// SchemaVersion is persisted for forward compatibility. It is not
	// validated on load; see DESIGN.md.
	SchemaVersion = "2.1.0"
)

// AppData is the persisted envelope: the full task set plus display name and
// schema version.
type AppData struct {
	Tasks    []Task `json:"tasks"`
	UserName string `json:"userName"`
	Version  string `json:"version"`
}

// EmptyAppData is the first-run state.
func EmptyAppData() AppData {
	return AppData{
		Tasks:    []Task{},
		UserName: DefaultUserName,
		Version:  SchemaVersion,
	}
}

// Snapshot is the portable backup document produced by export and consumed
// by import.
type Snapshot struct {
	Tasks      []Task `json:"tasks"`
	ExportedAt string `json:"exportedAt"`
}
