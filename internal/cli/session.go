package cli

import (
	"context"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/Notifuse/designer/config"
	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/editor"
	"github.com/Notifuse/designer/internal/http/middleware"
	"github.com/Notifuse/designer/internal/i18n"
	"github.com/Notifuse/designer/internal/service"
	"github.com/Notifuse/designer/pkg/logger"
	"github.com/Notifuse/designer/pkg/tracing"
)

const signedTokenTTL = time.Hour

// session is one designer page wired to the configured store
type session struct {
	cfg    *config.Config
	out    io.Writer
	logger logger.Logger
	store  *service.TemplateStoreClient
	editor *editor.MJMLEditor
	page   *service.DesignerPage
	picker *urlPicker
	nav    *writerNavigator
}

func newSession(cmd *cobra.Command, opts Options) (*session, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	cfg, err := opts.LoadConfig(envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	applyFlagOverrides(cmd, cfg)

	log := logger.NewLoggerWithWriter(cmd.ErrOrStderr())
	if err := tracing.InitTracing(&cfg.Tracing); err != nil {
		return nil, err
	}

	token, err := resolveToken(cfg)
	if err != nil {
		return nil, err
	}

	client := tracing.WrapHTTPClient(opts.HTTPClient, cfg.Designer.HTTPTimeout)

	s := &session{
		cfg:    cfg,
		out:    cmd.OutOrStdout(),
		logger: log,
		store:  service.NewTemplateStoreClient(client, cfg.Designer.APIEndpoint, cfg.Designer.PluginID, token, log),
		editor: editor.NewMJMLEditor(log, opts.EditorOptions...),
		picker: &urlPicker{},
	}
	s.nav = &writerNavigator{w: s.out}
	s.page = service.NewDesignerPage(
		s.store,
		s.editor,
		&writerNotifier{w: s.out},
		s.nav,
		s.picker,
		i18n.New(cfg.Designer.Locale),
		log,
		service.DesignerPageSettings{
			PluginID: cfg.Designer.PluginID,
			Locale:   cfg.Designer.Locale,
			User: domain.CurrentUser{
				FirstName: cfg.Designer.User.FirstName,
				LastName:  cfg.Designer.User.LastName,
				Username:  cfg.Designer.User.Username,
			},
			EditorReadyTimeout: cfg.Designer.EditorReadyTimeout,
		},
	)
	return s, nil
}

func applyFlagOverrides(cmd *cobra.Command, cfg *config.Config) {
	if v, _ := cmd.Flags().GetString("endpoint"); v != "" {
		cfg.Designer.APIEndpoint = strings.TrimRight(v, "/")
	}
	if v, _ := cmd.Flags().GetString("token"); v != "" {
		cfg.Designer.APIToken = v
	}
	if v, _ := cmd.Flags().GetString("plugin"); v != "" {
		cfg.Designer.PluginID = strings.Trim(v, "/")
	}
	if v, _ := cmd.Flags().GetString("locale"); v != "" {
		cfg.Designer.Locale = v
	}
}

// resolveToken prefers an explicit token and otherwise signs one with
// JWT_SECRET, which is how a local store is reached
func resolveToken(cfg *config.Config) (string, error) {
	if cfg.Designer.APIToken != "" {
		return cfg.Designer.APIToken, nil
	}
	auth := middleware.NewJWTAuth(cfg.Security.JWTSecret)
	if !auth.Enabled() {
		return "", nil
	}
	username := cfg.Designer.User.Username
	if username == "" {
		username = "designer"
	}
	token, err := auth.Sign(username, signedTokenTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign store token: %w", err)
	}
	return token, nil
}

// open loads the route and waits until the editor accepts edits
func (s *session) open(ctx context.Context, route service.Route) error {
	if err := s.page.Open(ctx, route); err != nil {
		return err
	}
	if s.page.View().State != service.PageLoaded {
		return fmt.Errorf("nothing to edit for %s", describeRoute(route))
	}
	select {
	case <-s.editor.Ready():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrEditorNotReady, ctx.Err())
	}
}

func (s *session) close() {
	s.page.Close()
}

// parseTarget reads "new", a numeric id or core/<type>
func parseTarget(arg string) (service.Route, error) {
	if emailType, ok := strings.CutPrefix(arg, "core/"); ok {
		t := domain.CoreEmailType(emailType)
		if err := t.Validate(); err != nil {
			return service.Route{}, err
		}
		return service.Route{CoreType: t}, nil
	}
	id, err := domain.ParseTemplateID(arg)
	if err != nil {
		return service.Route{}, err
	}
	return service.Route{TemplateID: id}, nil
}

func describeRoute(route service.Route) string {
	if route.IsCore() {
		return "core/" + route.CoreType.String()
	}
	return "template " + route.TemplateID.String()
}

// writerNotifier prints notifications as the page raises them
type writerNotifier struct {
	mu sync.Mutex
	w  io.Writer
}

func (n *writerNotifier) Notify(notification domain.Notification) {
	n.mu.Lock()
	defer n.mu.Unlock()
	fmt.Fprintf(n.w, "[%s] %s\n", notification.Type, notification.Message)
}

// writerNavigator prints navigations and remembers the last path
type writerNavigator struct {
	mu   sync.Mutex
	w    io.Writer
	last string
}

func (n *writerNavigator) Replace(path string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.last = path
	fmt.Fprintf(n.w, "navigate: %s\n", path)
}

func (n *writerNavigator) GoBack(confirm string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if confirm != "" {
		fmt.Fprintf(n.w, "back (confirm: %s)\n", confirm)
		return
	}
	fmt.Fprintln(n.w, "back")
}

// urlPicker answers image selection with a URL given on the command line
type urlPicker struct {
	url string
}

func (p *urlPicker) Pick(ctx context.Context) (*domain.MediaAsset, error) {
	if p.url == "" {
		return nil, nil
	}
	return &domain.MediaAsset{URL: p.url}, nil
}
