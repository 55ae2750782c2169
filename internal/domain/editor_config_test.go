package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEditorConfigPatch_IsEmpty(t *testing.T) {
	assert.True(t, (*EditorConfigPatch)(nil).IsEmpty())
	assert.True(t, (&EditorConfigPatch{}).IsEmpty())
	assert.False(t, (&EditorConfigPatch{Appearance: map[string]interface{}{}}).IsEmpty())
}

func TestMergeTagSamples(t *testing.T) {
	group := MergeTagGroup{
		Name: "User",
		MergeTags: []MergeTag{
			{Name: "First Name", Value: "{{= USER.firstname }}", Sample: "Ada"},
			{Name: "Email", Value: "{{= USER.username }}", Sample: "ada@example.com"},
		},
	}
	mergeTags := []interface{}{group.ToMap(), "junk", 3}

	samples := MergeTagSamples(mergeTags)

	assert.Equal(t, map[string]string{
		"{{= USER.firstname }}": "Ada",
		"{{= USER.username }}":  "ada@example.com",
	}, samples)
	assert.Empty(t, MergeTagSamples(nil))
}

func TestMergeTagGroup_ToMap(t *testing.T) {
	group := MergeTagGroup{Name: "User", MergeTags: []MergeTag{
		{Name: "First Name", Value: "{{= USER.firstname }}", Sample: "John"},
	}}

	assert.Equal(t, map[string]interface{}{
		"name": "User",
		"mergeTags": []interface{}{
			map[string]interface{}{"name": "First Name", "value": "{{= USER.firstname }}", "sample": "John"},
		},
	}, group.ToMap())
}

func TestMergeTagSamples_KeyedCatalog(t *testing.T) {
	mergeTags := map[string]interface{}{
		"shop": map[string]interface{}{
			"name": "Shop",
			"mergeTags": map[string]interface{}{
				"name": map[string]interface{}{"name": "Name", "value": "{{ SHOP.name }}", "sample": "Acme"},
			},
		},
	}

	assert.Equal(t, map[string]string{"{{ SHOP.name }}": "Acme"}, MergeTagSamples(mergeTags))
}
