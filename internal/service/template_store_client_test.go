package service

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/domain/mocks"
)

func newMockLogger(ctrl *gomock.Controller) *mocks.MockLogger {
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().WithField(gomock.Any(), gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().WithFields(gomock.Any()).Return(log).AnyTimes()
	log.EXPECT().Debug(gomock.Any()).AnyTimes()
	log.EXPECT().Info(gomock.Any()).AnyTimes()
	log.EXPECT().Warn(gomock.Any()).AnyTimes()
	log.EXPECT().Error(gomock.Any()).AnyTimes()
	return log
}

func createMockResponse(statusCode int, body string) *http.Response {
	return &http.Response{
		StatusCode: statusCode,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func setupStoreClientTest(t *testing.T) (*TemplateStoreClient, *mocks.MockHTTPClient) {
	ctrl := gomock.NewController(t)
	httpClient := mocks.NewMockHTTPClient(ctrl)
	client := NewTemplateStoreClient(httpClient, "http://store.test/", "/plugin/", "tok", newMockLogger(ctrl))
	return client, httpClient
}

func TestTemplateStoreClient_FetchTemplate(t *testing.T) {
	t.Run("fetches a template by id", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)

		httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodGet, req.Method)
			assert.Equal(t, "http://store.test/plugin/templates/7", req.URL.String())
			assert.Equal(t, "Bearer tok", req.Header.Get("Authorization"))
			return createMockResponse(200, `{"id":7,"templateReferenceId":42,"name":"Welcome","design":{"id":"root"}}`), nil
		})

		tpl, err := client.FetchTemplate(context.Background(), "7")
		require.NoError(t, err)
		assert.Equal(t, int64(7), tpl.ID)
		assert.Equal(t, 42, *tpl.TemplateReferenceID)
		assert.Equal(t, "Welcome", tpl.Name)
	})

	t.Run("rejects the new sentinel without a request", func(t *testing.T) {
		client, _ := setupStoreClientTest(t)

		_, err := client.FetchTemplate(context.Background(), domain.NewTemplateID)
		require.Error(t, err)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("not found carries the server message", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)
		httpClient.EXPECT().Do(gomock.Any()).Return(createMockResponse(404, `{"message":"Template not found"}`), nil)

		_, err := client.FetchTemplate(context.Background(), "9")

		var reqErr *domain.RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, 404, reqErr.StatusCode)
		assert.Equal(t, "Template not found", reqErr.Message)
		assert.Equal(t, "/plugin/templates/9", reqErr.Path)
	})

	t.Run("transport error", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)
		httpClient.EXPECT().Do(gomock.Any()).Return(nil, errors.New("connection refused"))

		_, err := client.FetchTemplate(context.Background(), "9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "connection refused")
	})

	t.Run("malformed body", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)
		httpClient.EXPECT().Do(gomock.Any()).Return(createMockResponse(200, `{`), nil)

		_, err := client.FetchTemplate(context.Background(), "9")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to decode response")
	})
}

func TestTemplateStoreClient_FetchCoreTemplate(t *testing.T) {
	t.Run("fetches a core template", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)
		httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, "/plugin/core/reset-password", req.URL.Path)
			return createMockResponse(200, `{"subject":"Reset","message":"Hello <% USER %>"}`), nil
		})

		core, err := client.FetchCoreTemplate(context.Background(), domain.CoreEmailResetPassword)
		require.NoError(t, err)
		assert.Equal(t, domain.CoreEmailResetPassword, core.Type)
		assert.Equal(t, "Hello <% USER %>", core.Message)
	})

	t.Run("invalid type makes no request", func(t *testing.T) {
		client, _ := setupStoreClientTest(t)
		_, err := client.FetchCoreTemplate(context.Background(), "welcome")
		assert.True(t, domain.IsValidationError(err))
	})
}

func TestTemplateStoreClient_SaveTemplate(t *testing.T) {
	ref := 42
	payload := &domain.SaveTemplateRequest{
		Name:                "Welcome",
		TemplateReferenceID: &ref,
		Subject:             "Hi",
		Design:              json.RawMessage(`{"id":"root"}`),
		BodyText:            "text",
		BodyHTML:            "<p>html</p>",
	}

	t.Run("posts the payload", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)
		httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
			assert.Equal(t, http.MethodPost, req.Method)
			assert.Equal(t, "/plugin/templates/new", req.URL.Path)
			assert.Equal(t, "application/json", req.Header.Get("Content-Type"))

			body, _ := io.ReadAll(req.Body)
			assert.JSONEq(t, `{"name":"Welcome","templateReferenceId":42,"subject":"Hi","design":{"id":"root"},"bodyText":"text","bodyHtml":"<p>html</p>"}`, string(body))
			return createMockResponse(201, `{"id":7,"templateReferenceId":42,"name":"Welcome"}`), nil
		})

		tpl, err := client.SaveTemplate(context.Background(), domain.NewTemplateID, payload)
		require.NoError(t, err)
		assert.Equal(t, int64(7), tpl.ID)
	})

	t.Run("invalid id makes no request", func(t *testing.T) {
		client, _ := setupStoreClientTest(t)
		_, err := client.SaveTemplate(context.Background(), "abc", payload)
		assert.True(t, domain.IsValidationError(err))
	})

	t.Run("server error without message", func(t *testing.T) {
		client, httpClient := setupStoreClientTest(t)
		httpClient.EXPECT().Do(gomock.Any()).Return(createMockResponse(500, `<html>oops</html>`), nil)

		_, err := client.SaveTemplate(context.Background(), "7", payload)
		var reqErr *domain.RequestError
		require.True(t, errors.As(err, &reqErr))
		assert.Equal(t, 500, reqErr.StatusCode)
		assert.Empty(t, reqErr.Message)
	})
}

func TestTemplateStoreClient_SaveCoreTemplate(t *testing.T) {
	client, httpClient := setupStoreClientTest(t)
	httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
		assert.Equal(t, "/plugin/core/user-address-confirmation", req.URL.Path)
		body, _ := io.ReadAll(req.Body)
		assert.JSONEq(t, `{"subject":"s","design":{"id":"root"},"message":"<p>h</p>","bodyText":"t"}`, string(body))
		return createMockResponse(200, `{"subject":"s","message":"<p>h</p>","bodyText":"t","design":{"id":"root"}}`), nil
	})

	core, err := client.SaveCoreTemplate(context.Background(), domain.CoreEmailUserAddressConfirmation, &domain.SaveCoreTemplateRequest{
		Subject:  "s",
		Design:   json.RawMessage(`{"id":"root"}`),
		Message:  "<p>h</p>",
		BodyText: "t",
	})
	require.NoError(t, err)
	assert.Equal(t, domain.CoreEmailUserAddressConfirmation, core.Type)
}

func TestTemplateStoreClient_FetchEditorConfig(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		wantNil  bool
		validate func(t *testing.T, patch *domain.EditorConfigPatch)
	}{
		{
			name: "full editor section",
			body: `{"config":{"editor":{"tools":{"image":{"enabled":false}},"appearance":{"theme":"dark"}}}}`,
			validate: func(t *testing.T, patch *domain.EditorConfigPatch) {
				assert.Equal(t, "dark", patch.Appearance["theme"])
				assert.NotNil(t, patch.Tools["image"])
				assert.Nil(t, patch.Options)
			},
		},
		{
			name: "no editor section",
			body: `{"config":{}}`,
			validate: func(t *testing.T, patch *domain.EditorConfigPatch) {
				assert.True(t, patch.IsEmpty())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, httpClient := setupStoreClientTest(t)
			httpClient.EXPECT().Do(gomock.Any()).DoAndReturn(func(req *http.Request) (*http.Response, error) {
				assert.Equal(t, "/plugin/config", req.URL.Path)
				return createMockResponse(200, tt.body), nil
			})

			patch, err := client.FetchEditorConfig(context.Background())
			require.NoError(t, err)
			tt.validate(t, patch)
		})
	}
}

func TestTemplateStoreClient_AgainstServer(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"config":{"editor":{"options":{"locale":"fr"}}}}`))
	}))
	defer server.Close()

	ctrl := gomock.NewController(t)
	client := NewTemplateStoreClient(server.Client(), server.URL, "plugin", "", newMockLogger(ctrl))

	patch, err := client.FetchEditorConfig(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "fr", patch.Options["locale"])
}

func TestServerMessage(t *testing.T) {
	tests := []struct {
		body string
		want string
	}{
		{`{"message":"top"}`, "top"},
		{`{"error":{"message":"nested"}}`, "nested"},
		{`{"error":"flat"}`, "flat"},
		{`{"message":"","error":"flat"}`, "flat"},
		{`{"error":{"status":400}}`, ""},
		{`not json`, ""},
		{``, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, serverMessage([]byte(tt.body)), tt.body)
	}
}
