package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/pkg/logger"
	"github.com/Notifuse/designer/pkg/tracing"
)

// maxResponseBody bounds how much of a store response is read into memory
const maxResponseBody = 10 << 20

// TemplateStoreClient talks to the plugin's template routes. Each call is a
// single request with no retry.
type TemplateStoreClient struct {
	httpClient domain.HTTPClient
	endpoint   string
	pluginID   string
	token      string
	logger     logger.Logger
}

// NewTemplateStoreClient creates a client for the routes under endpoint/pluginID.
// token is sent as a bearer token when non-empty.
func NewTemplateStoreClient(httpClient domain.HTTPClient, endpoint, pluginID, token string, logger logger.Logger) *TemplateStoreClient {
	return &TemplateStoreClient{
		httpClient: httpClient,
		endpoint:   strings.TrimRight(endpoint, "/"),
		pluginID:   strings.Trim(pluginID, "/"),
		token:      token,
		logger:     logger,
	}
}

func (c *TemplateStoreClient) FetchTemplate(ctx context.Context, id domain.TemplateID) (*domain.Template, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "TemplateStoreClient", "FetchTemplate")
	tracing.AddAttribute(ctx, "template_id", id.String())

	if _, ok := id.Int64(); !ok {
		err := domain.NewValidationError(fmt.Sprintf("cannot fetch template %q", id.String()))
		tracing.EndSpan(span, err)
		return nil, err
	}

	var tpl domain.Template
	err := c.do(ctx, http.MethodGet, "/templates/"+id.String(), nil, &tpl)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (c *TemplateStoreClient) FetchCoreTemplate(ctx context.Context, emailType domain.CoreEmailType) (*domain.CoreTemplate, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "TemplateStoreClient", "FetchCoreTemplate")
	tracing.AddAttribute(ctx, "core_type", emailType.String())

	if err := emailType.Validate(); err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}

	var core domain.CoreTemplate
	err := c.do(ctx, http.MethodGet, "/core/"+emailType.String(), nil, &core)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	if core.Type == "" {
		core.Type = emailType
	}
	return &core, nil
}

func (c *TemplateStoreClient) SaveTemplate(ctx context.Context, id domain.TemplateID, payload *domain.SaveTemplateRequest) (*domain.Template, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "TemplateStoreClient", "SaveTemplate")
	tracing.AddAttribute(ctx, "template_id", id.String())

	if _, ok := id.Int64(); !ok && !id.IsNew() {
		err := domain.NewValidationError(fmt.Sprintf("invalid template id %q", id.String()))
		tracing.EndSpan(span, err)
		return nil, err
	}

	var tpl domain.Template
	err := c.do(ctx, http.MethodPost, "/templates/"+id.String(), payload, &tpl)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	return &tpl, nil
}

func (c *TemplateStoreClient) SaveCoreTemplate(ctx context.Context, emailType domain.CoreEmailType, payload *domain.SaveCoreTemplateRequest) (*domain.CoreTemplate, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "TemplateStoreClient", "SaveCoreTemplate")
	tracing.AddAttribute(ctx, "core_type", emailType.String())

	if err := emailType.Validate(); err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}

	var core domain.CoreTemplate
	err := c.do(ctx, http.MethodPost, "/core/"+emailType.String(), payload, &core)
	tracing.EndSpan(span, err)
	if err != nil {
		return nil, err
	}
	if core.Type == "" {
		core.Type = emailType
	}
	return &core, nil
}

// FetchEditorConfig returns the config.editor section of GET /{plugin}/config.
// A response without that section yields an empty patch.
func (c *TemplateStoreClient) FetchEditorConfig(ctx context.Context) (*domain.EditorConfigPatch, error) {
	ctx, span := tracing.StartServiceSpan(ctx, "TemplateStoreClient", "FetchEditorConfig")

	body, err := c.roundTrip(ctx, http.MethodGet, "/config", nil)
	if err != nil {
		tracing.EndSpan(span, err)
		return nil, err
	}

	patch := &domain.EditorConfigPatch{}
	editor := gjson.GetBytes(body, "config.editor")
	if editor.Exists() && editor.IsObject() {
		if err := json.Unmarshal([]byte(editor.Raw), patch); err != nil {
			err = fmt.Errorf("failed to decode editor config: %w", err)
			tracing.EndSpan(span, err)
			return nil, err
		}
	}
	tracing.EndSpan(span, nil)
	return patch, nil
}

func (c *TemplateStoreClient) do(ctx context.Context, method, path string, payload interface{}, out interface{}) error {
	body, err := c.roundTrip(ctx, method, path, payload)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(body, out); err != nil {
		c.logger.WithField("path", path).Error(fmt.Sprintf("Failed to decode template store response: %v", err))
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func (c *TemplateStoreClient) roundTrip(ctx context.Context, method, path string, payload interface{}) ([]byte, error) {
	fullPath := "/" + c.pluginID + path

	var reqBody io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.endpoint+fullPath, reqBody)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.WithFields(map[string]interface{}{
			"method": method,
			"path":   fullPath,
			"error":  err.Error(),
		}).Error("Template store request failed")
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBody))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		reqErr := &domain.RequestError{
			Method:     method,
			Path:       fullPath,
			StatusCode: resp.StatusCode,
			Message:    serverMessage(body),
		}
		c.logger.WithFields(map[string]interface{}{
			"method": method,
			"path":   fullPath,
			"status": resp.StatusCode,
		}).Warn(reqErr.Error())
		return nil, reqErr
	}

	return body, nil
}

// serverMessage extracts the human message from an error body: message,
// then error.message, then error when it is a string
func serverMessage(body []byte) string {
	if !gjson.ValidBytes(body) {
		return ""
	}
	for _, path := range []string{"message", "error.message", "error"} {
		v := gjson.GetBytes(body, path)
		if v.Type == gjson.String && v.Str != "" {
			return v.Str
		}
	}
	return ""
}
