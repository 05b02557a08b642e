package api

const (
	APIVersion string = "1.0"
	APIStatus  string = "devel"
)

// ServerUntrusted represents the server information available to any client.
//
// swagger:model
type ServerUntrusted struct {
	// Support status of the current API (one of "devel", "stable" or "deprecated")
	// Read only: true
	// Example: stable
	APIStatus string `json:"api_status" yaml:"api_status"`

	// API version number
	// Read only: true
	// Example: 1.0
	APIVersion string `json:"api_version" yaml:"api_version"`

	// Version of the server
	// Read only: true
	// Example: 0.1.0
	ServerVersion string `json:"server_version" yaml:"server_version"`

	// Languages labels can be translated to, the first one is the default
	// Read only: true
	// Example: ["fr", "en"]
	Languages []string `json:"languages" yaml:"languages"`
}
