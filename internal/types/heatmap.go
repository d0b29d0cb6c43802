package types

// Heatmap is the skill demand matrix of GET /heatmap, indexed data[role][skill].
type Heatmap struct {
	Skills []string                  `json:"skills"`
	Roles  []string                  `json:"roles"`
	Data   map[string]map[string]int `json:"data"`
}

// Value returns the demand intensity of skill for role, or 0 when absent.
func (h *Heatmap) Value(role, skill string) int {
	return h.Data[role][skill]
}
