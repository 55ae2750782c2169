package service

import (
	"github.com/Notifuse/designer/internal/domain"
)

const (
	ConfigKeyDefault = "default-config"
	ConfigKeyServer  = "server-config"

	defaultImageURL = "https://picsum.photos/600/350"
)

// DefaultEditorConfig returns the client-side defaults, including the merge
// tag catalog whose samples come from the signed-in user
func DefaultEditorConfig(user domain.CurrentUser) domain.EditorConfig {
	return domain.EditorConfig{
		Tools: map[string]interface{}{
			"image": map[string]interface{}{
				"properties": map[string]interface{}{
					"src": map[string]interface{}{
						"value": map[string]interface{}{
							"url": defaultImageURL,
						},
					},
				},
			},
		},
		Appearance: map[string]interface{}{
			"minWidth": "100%",
			"theme":    "light",
		},
		Options: map[string]interface{}{
			"fonts": map[string]interface{}{
				"showDefaultFonts": false,
			},
			"mergeTags": []interface{}{
				userMergeTags(user).ToMap(),
			},
			"mergeTagsConfig": map[string]interface{}{
				"autocompleteTriggerChar": "@",
				"delimiter":               []interface{}{"{{=", "}}"},
			},
		},
	}
}

func userMergeTags(user domain.CurrentUser) domain.MergeTagGroup {
	return domain.MergeTagGroup{
		Name: "User",
		MergeTags: []domain.MergeTag{
			{Name: "First Name", Value: "{{= USER.firstname }}", Sample: orDefault(user.FirstName, "John")},
			{Name: "Last Name", Value: "{{= USER.lastname }}", Sample: orDefault(user.LastName, "Doe")},
			{Name: "Email", Value: "{{= USER.username }}", Sample: orDefault(user.Username, "john@doe.com")},
		},
	}
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

// MergeEditorConfig deep-merges each substructure present in patch over the
// defaults. Neither input is modified. loaded is true when at least one
// substructure came from the patch.
func MergeEditorConfig(defaults domain.EditorConfig, patch *domain.EditorConfigPatch) (merged domain.EditorConfig, loaded bool) {
	merged = domain.EditorConfig{
		Tools:      deepCopyMap(defaults.Tools),
		Appearance: deepCopyMap(defaults.Appearance),
		Options:    deepCopyMap(defaults.Options),
	}
	if patch == nil {
		return merged, false
	}

	if patch.Tools != nil {
		merged.Tools = deepMerge(merged.Tools, patch.Tools)
		loaded = true
	}
	if patch.Appearance != nil {
		merged.Appearance = deepMerge(merged.Appearance, patch.Appearance)
		loaded = true
	}
	if patch.Options != nil {
		merged.Options = deepMerge(merged.Options, patch.Options)
		loaded = true
	}
	return merged, loaded
}

// ConfigKey identifies the configuration generation the editor was mounted with
func ConfigKey(serverLoaded bool) string {
	if serverLoaded {
		return ConfigKeyServer
	}
	return ConfigKeyDefault
}

// deepMerge merges src into dst, which it owns, and returns it. Maps merge
// by key and arrays by index, recursively; dst entries absent from src are
// kept and any other src value replaces the dst value.
func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	if dst == nil {
		dst = make(map[string]interface{}, len(src))
	}
	for key, srcValue := range src {
		dst[key] = mergeValue(dst[key], srcValue)
	}
	return dst
}

func mergeValue(dst, src interface{}) interface{} {
	switch s := src.(type) {
	case map[string]interface{}:
		if d, ok := dst.(map[string]interface{}); ok {
			return deepMerge(d, s)
		}
	case []interface{}:
		if d, ok := dst.([]interface{}); ok {
			return mergeSlice(d, s)
		}
	}
	return deepCopyValue(src)
}

func mergeSlice(dst, src []interface{}) []interface{} {
	for i, srcValue := range src {
		if i < len(dst) {
			dst[i] = mergeValue(dst[i], srcValue)
			continue
		}
		dst = append(dst, deepCopyValue(srcValue))
	}
	return dst
}

func deepCopyMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = deepCopyValue(v)
	}
	return out
}

func deepCopyValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return deepCopyMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = deepCopyValue(item)
		}
		return out
	default:
		return v
	}
}
