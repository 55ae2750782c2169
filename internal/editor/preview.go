package editor

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/osteele/liquid"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/pkg/designdoc"
)

// mergeTagPath pulls the variable path out of a merge tag value such as
// "{{= USER.firstname }}"
var mergeTagPath = regexp.MustCompile(`^\{\{=?\s*([A-Za-z_][\w.]*)\s*\}\}$`)

// samples come from the host's user profile and are rendered into HTML
var samplePolicy = bluemonday.StrictPolicy()

// Preview compiles the current design with every merge tag replaced by its
// sample value from the mounted configuration
func (e *MJMLEditor) Preview(ctx context.Context) (string, error) {
	e.mu.Lock()
	if !e.isReady || e.doc == nil {
		e.mu.Unlock()
		return "", domain.ErrEditorNotReady
	}
	doc := e.doc.Clone()
	bindings := sampleBindings(domain.MergeTagSamples(e.cfg.Options["mergeTags"]))
	e.mu.Unlock()

	mjml, err := designdoc.ToMJMLWithRenderer(doc, func(blockID, content string) (string, error) {
		return e.renderMergeTags(content, bindings)
	})
	if err != nil {
		return "", err
	}
	html, err := e.compile(ctx, mjml)
	if err != nil {
		return "", fmt.Errorf("failed to compile mjml: %w", err)
	}
	return html, nil
}

func (e *MJMLEditor) renderMergeTags(content string, bindings liquid.Bindings) (string, error) {
	if !strings.Contains(content, "{{") {
		return content, nil
	}
	out, err := e.engine.ParseAndRenderString(strings.ReplaceAll(content, "{{=", "{{"), bindings)
	if err != nil {
		return "", fmt.Errorf("liquid rendering failed: %w", err)
	}
	return out, nil
}

// sampleBindings nests samples by the dotted path of their merge tag so
// {{ USER.firstname }} resolves. Sample values are reduced to escaped text.
func sampleBindings(samples map[string]string) liquid.Bindings {
	bindings := liquid.Bindings{}
	for value, sample := range samples {
		m := mergeTagPath.FindStringSubmatch(strings.TrimSpace(value))
		if m == nil {
			continue
		}
		parts := strings.Split(m[1], ".")
		node := map[string]interface{}(bindings)
		for _, part := range parts[:len(parts)-1] {
			child, ok := node[part].(map[string]interface{})
			if !ok {
				child = map[string]interface{}{}
				node[part] = child
			}
			node = child
		}
		node[parts[len(parts)-1]] = samplePolicy.Sanitize(sample)
	}
	return bindings
}
