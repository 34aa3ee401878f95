package ui

import (
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// OverlayID names a toggleable drawing layer.
type OverlayID string

const (
	OverlayEdges        OverlayID = "edges"
	OverlayLabels       OverlayID = "labels"
	OverlayPositiveOnly OverlayID = "positive_only"
	OverlayNegativeOnly OverlayID = "negative_only"
	OverlayVelocity     OverlayID = "velocity"
	OverlayDeadZone     OverlayID = "dead_zone"
	OverlayOverlap      OverlayID = "overlap"
)

// OverlayDescriptor describes one overlay and how it is toggled.
type OverlayDescriptor struct {
	ID          OverlayID
	Name        string
	Description string
	Key         int32 // 0 = no shortcut
	KeyLabel    string
	Category    string      // "visual" or "debug"
	Exclusive   []OverlayID // switched off when this one is switched on
	Default     bool
}

var defaultOverlays = []OverlayDescriptor{
	{ID: OverlayEdges, Name: "Edges", Description: "Relationships above the display threshold",
		Key: rl.KeyE, KeyLabel: "E", Category: "visual", Default: true},
	{ID: OverlayLabels, Name: "Labels", Description: "Node labels",
		Key: rl.KeyL, KeyLabel: "L", Category: "visual", Default: true},
	{ID: OverlayPositiveOnly, Name: "Positive Only", Description: "Hide negative relationships",
		Key: rl.KeyP, KeyLabel: "P", Category: "visual", Exclusive: []OverlayID{OverlayNegativeOnly}},
	{ID: OverlayNegativeOnly, Name: "Negative Only", Description: "Hide positive relationships",
		Key: rl.KeyN, KeyLabel: "N", Category: "visual", Exclusive: []OverlayID{OverlayPositiveOnly}},
	{ID: OverlayVelocity, Name: "Velocity", Description: "Velocity vector of each node",
		Key: rl.KeyV, KeyLabel: "V", Category: "debug"},
	{ID: OverlayDeadZone, Name: "Dead Zone", Description: "Radius inside which centering is off",
		Key: rl.KeyZ, KeyLabel: "Z", Category: "debug"},
	{ID: OverlayOverlap, Name: "Overlap Range", Description: "Anti-overlap distance around each node",
		Key: rl.KeyO, KeyLabel: "O", Category: "debug"},
}

// OverlayRegistry tracks which overlays are on.
type OverlayRegistry struct {
	descriptors []OverlayDescriptor
	enabled     map[OverlayID]bool
}

// NewOverlayRegistry creates a registry holding the viewer's overlays in
// their default state.
func NewOverlayRegistry() *OverlayRegistry {
	r := &OverlayRegistry{enabled: make(map[OverlayID]bool)}
	for _, d := range defaultOverlays {
		r.Register(d)
	}
	return r
}

// Register adds an overlay in its default state.
func (r *OverlayRegistry) Register(desc OverlayDescriptor) {
	r.descriptors = append(r.descriptors, desc)
	r.enabled[desc.ID] = desc.Default
}

func (r *OverlayRegistry) lookup(id OverlayID) (OverlayDescriptor, bool) {
	i := slices.IndexFunc(r.descriptors, func(d OverlayDescriptor) bool { return d.ID == id })
	if i < 0 {
		return OverlayDescriptor{}, false
	}
	return r.descriptors[i], true
}

// Toggle flips an overlay and returns its new state.
func (r *OverlayRegistry) Toggle(id OverlayID) bool {
	if _, ok := r.lookup(id); !ok {
		return false
	}
	r.SetEnabled(id, !r.enabled[id])
	return r.enabled[id]
}

// SetEnabled sets an overlay's state. Enabling it disables its exclusives.
func (r *OverlayRegistry) SetEnabled(id OverlayID, enabled bool) {
	desc, ok := r.lookup(id)
	if !ok {
		return
	}
	r.enabled[id] = enabled
	if enabled {
		for _, other := range desc.Exclusive {
			r.enabled[other] = false
		}
	}
}

// IsEnabled reports whether an overlay is on.
func (r *OverlayRegistry) IsEnabled(id OverlayID) bool {
	return r.enabled[id]
}

// ByCategory returns the overlays of one category in registration order.
func (r *OverlayRegistry) ByCategory(category string) []OverlayDescriptor {
	var out []OverlayDescriptor
	for _, d := range r.descriptors {
		if d.Category == category {
			out = append(out, d)
		}
	}
	return out
}

// Categories returns the categories in first-seen order.
func (r *OverlayRegistry) Categories() []string {
	var cats []string
	for _, d := range r.descriptors {
		if !slices.Contains(cats, d.Category) {
			cats = append(cats, d.Category)
		}
	}
	return cats
}

// HandleKeyPress toggles every overlay whose shortcut was pressed.
// isPressed is usually rl.IsKeyPressed.
func (r *OverlayRegistry) HandleKeyPress(isPressed func(key int32) bool) {
	for _, d := range r.descriptors {
		if d.Key != 0 && isPressed(d.Key) {
			r.Toggle(d.ID)
		}
	}
}

// ShowEdge reports whether an edge with weight w passes the sign filters.
func (r *OverlayRegistry) ShowEdge(w float64) bool {
	switch {
	case !r.enabled[OverlayEdges]:
		return false
	case r.enabled[OverlayPositiveOnly] && w < 0:
		return false
	case r.enabled[OverlayNegativeOnly] && w > 0:
		return false
	}
	return true
}
