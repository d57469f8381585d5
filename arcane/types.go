package arcane

import "github.com/goccy/go-json"

// Document is a backend object this package does not model. It is kept
// exactly as received so callers can show every field the backend sent.
type Document = json.RawMessage

// Environment is a Docker host or agent registered with Arcane. Only the
// identity fields are decoded; the full object is available through Raw on
// the enclosing Single or Items.
type Environment struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EnvironmentCreate is the payload for creating an environment.
// The validate tags are checked before a tool sends the payload.
type EnvironmentCreate struct {
	APIURL         string `json:"apiUrl" validate:"required"`
	Name           string `json:"name,omitempty" validate:"required"`
	AccessToken    string `json:"accessToken,omitempty"`
	BootstrapToken string `json:"bootstrapToken,omitempty"`
	Enabled        *bool  `json:"enabled,omitempty"`
	IsEdge         *bool  `json:"isEdge,omitempty"`
	UseAPIKey      *bool  `json:"useApiKey,omitempty"`
}

// EnvironmentUpdate is the payload for updating an environment.
// Unset fields are left unchanged by the backend.
type EnvironmentUpdate struct {
	Name             string `json:"name,omitempty"`
	APIURL           string `json:"apiUrl,omitempty"`
	AccessToken      string `json:"accessToken,omitempty"`
	BootstrapToken   string `json:"bootstrapToken,omitempty"`
	Enabled          *bool  `json:"enabled,omitempty"`
	RegenerateAPIKey *bool  `json:"regenerateApiKey,omitempty"`
}

// Project is a Docker Compose stack, reduced to its identity.
type Project struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ProjectCreate is the payload for deploying a stack.
type ProjectCreate struct {
	Name           string `json:"name" validate:"required"`
	ComposeContent string `json:"composeContent" validate:"required"`
	EnvContent     string `json:"envContent,omitempty"`
}

// ProjectUpdate is the payload for updating a stack.
type ProjectUpdate struct {
	Name           string `json:"name,omitempty"`
	ComposeContent string `json:"composeContent,omitempty"`
	EnvContent     string `json:"envContent,omitempty"`
}

// ContainerSummary is a container as returned by the list endpoint.
// Names carry Docker's leading slash, e.g. "/web".
type ContainerSummary struct {
	ID    string   `json:"id"`
	Names []string `json:"names"`
}

// ContainerDetails is a single inspected container, reduced to its identity.
type ContainerDetails struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// containerAction is the body of the generic container update endpoint.
type containerAction struct {
	Action string `json:"action"`
}

// ImagePullOptions is the body of an image pull.
type ImagePullOptions struct {
	ImageName string `json:"imageName" validate:"required"`
}

// ImagePruneReport summarizes an image prune.
type ImagePruneReport struct {
	ImagesDeleted  int   `json:"imagesDeleted"`
	SpaceReclaimed int64 `json:"spaceReclaimed"`
}

// VolumePruneReport summarizes a volume prune.
type VolumePruneReport struct {
	VolumesDeleted int   `json:"volumesDeleted"`
	SpaceReclaimed int64 `json:"spaceReclaimed"`
}

// NetworkPruneReport summarizes a network prune.
type NetworkPruneReport struct {
	NetworksDeleted int `json:"networksDeleted"`
}

// TemplateCreate is the payload for creating a template.
type TemplateCreate struct {
	Name           string   `json:"name" validate:"required"`
	ComposeContent string   `json:"composeContent" validate:"required"`
	EnvContent     string   `json:"envContent,omitempty"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// TemplateUpdate is the payload for updating a template.
type TemplateUpdate struct {
	Name           string   `json:"name,omitempty"`
	ComposeContent string   `json:"composeContent,omitempty"`
	EnvContent     string   `json:"envContent,omitempty"`
	Description    string   `json:"description,omitempty"`
	Category       string   `json:"category,omitempty"`
	Tags           []string `json:"tags,omitempty"`
}

// VersionInfo is the backend version.
type VersionInfo struct {
	Version string `json:"version"`
}
