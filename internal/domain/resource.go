package domain

import "strings"

type ResourceKind string

const (
	ResourceKindRoom      ResourceKind = "ROOM"
	ResourceKindEquipment ResourceKind = "EQUIPMENT"
)

// Resource is a reservable thing: a classroom or a piece of equipment.
// Identity is the surrogate ID assigned on persistence, never the name.
type Resource struct {
	ID       int32        `json:"id"`
	Name     string       `json:"name"`
	Kind     ResourceKind `json:"kind"`
	Location string       `json:"location"`
	// Rooms only. Equipment carries no capacity and is treated as 0.
	Capacity int32 `json:"capacity"`
	// Equipment only.
	Model        string   `json:"model,omitempty"`
	SerialNumber string   `json:"serial_number,omitempty"`
	Features     []string `json:"features"`
}

// HasFeature reports whether the tag is already present (exact match).
func (r *Resource) HasFeature(tag string) bool {
	for _, f := range r.Features {
		if f == tag {
			return true
		}
	}
	return false
}

// AddFeature appends a feature tag. Blank or duplicate tags are ignored,
// keeping set semantics over the ordered list.
func (r *Resource) AddFeature(tag string) {
	if strings.TrimSpace(tag) == "" || r.HasFeature(tag) {
		return
	}
	r.Features = append(r.Features, tag)
}

// RemoveFeature drops a feature tag. Absent tags are a no-op.
func (r *Resource) RemoveFeature(tag string) {
	for i, f := range r.Features {
		if f == tag {
			r.Features = append(r.Features[:i], r.Features[i+1:]...)
			return
		}
	}
}
