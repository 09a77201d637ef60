package company

// RegisterAssetRequest registers a file as mentionable via @<asset_name>
type RegisterAssetRequest struct {
	AssetName   string  `json:"asset_name" validate:"required,max=100"`
	DisplayName string  `json:"display_name" validate:"omitempty,max=255"`
	FilePath    string  `json:"file_path" validate:"required,max=500"`
	AssetType   string  `json:"asset_type" validate:"omitempty,max=50"`
	Description *string `json:"description,omitempty"`
	FileSize    int64   `json:"file_size" validate:"omitempty,gte=0"`
}

// AddKnowledgeRequest appends an entry to the company knowledge base
type AddKnowledgeRequest struct {
	Title   string  `json:"title" validate:"required,max=255"`
	Content string  `json:"content" validate:"required"`
	Source  *string `json:"source,omitempty"`
}
