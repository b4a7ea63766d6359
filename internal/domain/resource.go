package domain

// ResourceStatus is the deployment state of a response unit.
type ResourceStatus string

const (
	ResourceAvailable   ResourceStatus = "available"
	ResourceDeployed    ResourceStatus = "deployed"
	ResourceMaintenance ResourceStatus = "maintenance"
)

// Resource is a response unit such as a fire truck or helicopter.
type Resource struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Type     string         `json:"type"`
	Status   ResourceStatus `json:"status"`
	Location string         `json:"location"`
	ETA      string         `json:"eta"`
}

// ResourceCounts tallies units per deployment state.
type ResourceCounts struct {
	Available   int `json:"available"`
	Deployed    int `json:"deployed"`
	Maintenance int `json:"maintenance"`
}

// CountResources tallies the resources in each status.
func CountResources(resources []Resource) ResourceCounts {
	var c ResourceCounts
	for i := range resources {
		switch resources[i].Status {
		case ResourceAvailable:
			c.Available++
		case ResourceDeployed:
			c.Deployed++
		case ResourceMaintenance:
			c.Maintenance++
		}
	}
	return c
}

// Contact is an emergency phone contact.
type Contact struct {
	Name   string `json:"name"`
	Number string `json:"number"`
	Type   string `json:"type"` // primary, secondary, support
}
