package domain

// EditorConfig is the merged configuration handed to the editor on mount.
// Each substructure is free-form JSON owned by the editor widget.
type EditorConfig struct {
	Tools      map[string]interface{} `json:"tools"`
	Appearance map[string]interface{} `json:"appearance"`
	Options    map[string]interface{} `json:"options"`
}

// EditorConfigPatch is the server-supplied part of the configuration; absent
// substructures are nil
type EditorConfigPatch struct {
	Tools      map[string]interface{} `json:"tools,omitempty"`
	Appearance map[string]interface{} `json:"appearance,omitempty"`
	Options    map[string]interface{} `json:"options,omitempty"`
}

func (p *EditorConfigPatch) IsEmpty() bool {
	return p == nil || (p.Tools == nil && p.Appearance == nil && p.Options == nil)
}

// CurrentUser is the signed-in operator, used for merge tag samples
type CurrentUser struct {
	FirstName string `json:"firstname"`
	LastName  string `json:"lastname"`
	Username  string `json:"username"`
}

// MergeTag is one personalization token offered by the editor
type MergeTag struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Sample string `json:"sample"`
}

// MergeTagGroup groups tokens under a display name
type MergeTagGroup struct {
	Name      string     `json:"name"`
	MergeTags []MergeTag `json:"mergeTags"`
}

// ToMap returns the group in the generic shape stored in EditorConfig.Options
func (g MergeTagGroup) ToMap() map[string]interface{} {
	tags := make([]interface{}, 0, len(g.MergeTags))
	for _, tag := range g.MergeTags {
		tags = append(tags, map[string]interface{}{
			"name":   tag.Name,
			"value":  tag.Value,
			"sample": tag.Sample,
		})
	}
	return map[string]interface{}{
		"name":      g.Name,
		"mergeTags": tags,
	}
}

// MergeTagSamples walks a mergeTags option value and returns value -> sample
// for every token found, at any nesting depth
func MergeTagSamples(mergeTags interface{}) map[string]string {
	out := map[string]string{}
	collectMergeTagSamples(mergeTags, out)
	return out
}

func collectMergeTagSamples(node interface{}, out map[string]string) {
	if list, ok := node.([]interface{}); ok {
		for _, item := range list {
			collectMergeTagSamples(item, out)
		}
		return
	}
	m, ok := node.(map[string]interface{})
	if !ok {
		return
	}
	value, hasValue := m["value"].(string)
	sample, hasSample := m["sample"].(string)
	if hasValue && hasSample {
		out[value] = sample
		return
	}
	for _, child := range m {
		collectMergeTagSamples(child, out)
	}
}
