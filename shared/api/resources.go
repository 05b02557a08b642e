package api

// Resources holds the exported labels of one language.
//
// swagger:model
type Resources struct {
	// Language of the labels
	// Example: fr
	Language string `json:"language" yaml:"language"`

	// Format of the content, json or ts
	// Example: ts
	Format string `json:"format" yaml:"format"`

	// Exported labels
	// Example: export const securite = { ... };
	Content string `json:"content" yaml:"content"`
}
