package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/asaskevich/govalidator"
	"golang.org/x/sync/errgroup"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/i18n"
	"github.com/Notifuse/designer/pkg/logger"
	"github.com/Notifuse/designer/pkg/tracing"
)

// Tab is the body shown in the editing area
type Tab string

const (
	TabVisual Tab = "visual"
	TabText   Tab = "text"
)

// PageState is the lifecycle stage of the page
type PageState string

const (
	PageNotLoaded PageState = "not-loaded"
	PageLoading   PageState = "loading"
	PageLoaded    PageState = "loaded"
	PageSaving    PageState = "saving"
)

// FieldReferenceID is the form field that carries the reference id error
const FieldReferenceID = "templateReferenceId"

// Route selects what the page edits. At most one field is set; an unknown
// core type or an empty route loads nothing.
type Route struct {
	TemplateID domain.TemplateID
	CoreType   domain.CoreEmailType
}

// IsCore reports whether the route targets a core email
func (r Route) IsCore() bool {
	return r.CoreType != ""
}

// DesignerPageSettings are the values the host passes to the page
type DesignerPageSettings struct {
	PluginID string
	Locale   string
	User     domain.CurrentUser
	// EditorDefaults replaces DefaultEditorConfig(User) when set
	EditorDefaults *domain.EditorConfig
	// EditorReadyTimeout bounds the wait for the editor before loading a
	// design; zero waits as long as the context allows
	EditorReadyTimeout time.Duration
}

// PageView is a snapshot of what the page displays
type PageView struct {
	State       PageState
	Route       Route
	NameLabel   string
	Name        string
	ReferenceID *int
	Subject     string
	BodyText    string
	Tab         Tab
	Dirty       bool
	ConfigKey   string
	FieldErrors map[string]string
}

// DesignerPage drives one template editing session: it loads the template
// and editor configuration, tracks edits and saves back to the store
type DesignerPage struct {
	store      domain.TemplateStore
	editor     domain.EditorAdapter
	notifier   domain.Notifier
	navigator  domain.Navigator
	picker     domain.MediaPicker
	translator domain.Translator
	converter  *LegacyConverter
	logger     logger.Logger
	settings   DesignerPageSettings

	mu          sync.Mutex
	route       Route
	state       PageState
	template    *domain.Template
	bodyText    string
	tab         Tab
	edits       uint64
	savedEdits  uint64
	fieldErrors map[string]string
	mounted     bool
	configKey   string
}

// NewDesignerPage wires a page. picker may be nil, in which case image
// selection requests from the editor are ignored.
func NewDesignerPage(
	store domain.TemplateStore,
	editor domain.EditorAdapter,
	notifier domain.Notifier,
	navigator domain.Navigator,
	picker domain.MediaPicker,
	translator domain.Translator,
	logger logger.Logger,
	settings DesignerPageSettings,
) *DesignerPage {
	if translator == nil {
		translator = i18n.New(settings.Locale)
	}
	return &DesignerPage{
		store:       store,
		editor:      editor,
		notifier:    notifier,
		navigator:   navigator,
		picker:      picker,
		translator:  translator,
		converter:   NewLegacyConverter(),
		logger:      logger,
		settings:    settings,
		state:       PageNotLoaded,
		tab:         TabVisual,
		fieldErrors: map[string]string{},
	}
}

func (p *DesignerPage) editorDefaults() domain.EditorConfig {
	if p.settings.EditorDefaults != nil {
		return *p.settings.EditorDefaults
	}
	return DefaultEditorConfig(p.settings.User)
}

// Open loads the route. The editor configuration and the template are
// fetched concurrently; the design is pushed to the editor once it is ready.
func (p *DesignerPage) Open(ctx context.Context, route Route) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "DesignerPage", "Open")
	defer func() { tracing.EndSpan(span, err) }()

	if route.TemplateID != "" && route.CoreType != "" {
		return domain.NewValidationError("a route targets either a template or a core email, not both")
	}

	p.mu.Lock()
	if p.state == PageLoading || p.state == PageSaving {
		p.mu.Unlock()
		return fmt.Errorf("cannot open while %s", p.state)
	}
	p.state = PageLoading
	p.route = route
	p.mu.Unlock()

	log := p.logger.WithFields(map[string]interface{}{
		"template_id": route.TemplateID.String(),
		"core_type":   route.CoreType.String(),
	})

	loadUser, loadCore := false, false
	if route.IsCore() {
		loadCore = route.CoreType.Validate() == nil
	} else if route.TemplateID != "" {
		if _, err := domain.ParseTemplateID(route.TemplateID.String()); err != nil {
			p.setState(PageNotLoaded)
			return err
		}
		loadUser = !route.TemplateID.IsNew()
	}

	// routes that fetch no template do not ask for the server config either
	fetch := loadUser || loadCore

	var (
		patch *domain.EditorConfigPatch
		tpl   *domain.Template
		core  *domain.CoreTemplate
	)
	if fetch {
		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			var err error
			patch, err = p.store.FetchEditorConfig(gctx)
			return err
		})
		if loadUser {
			g.Go(func() error {
				var err error
				tpl, err = p.store.FetchTemplate(gctx, route.TemplateID)
				return err
			})
		}
		if loadCore {
			g.Go(func() error {
				var err error
				core, err = p.store.FetchCoreTemplate(gctx, route.CoreType)
				return err
			})
		}
		if err := g.Wait(); err != nil {
			log.WithField("error", err.Error()).Error("Failed to load designer data")
			p.setState(PageNotLoaded)
			p.notifyFailure(err)
			return fmt.Errorf("failed to load designer data: %w", err)
		}
	}

	var mountErr error
	if fetch {
		merged, serverLoaded := MergeEditorConfig(p.editorDefaults(), patch)
		mountErr = p.mountEditor(ctx, merged, ConfigKey(serverLoaded))
	} else {
		mountErr = p.ensureMounted(ctx)
	}
	if mountErr != nil {
		log.WithField("error", mountErr.Error()).Error("Failed to mount editor")
		p.setState(PageNotLoaded)
		p.notifyFailure(mountErr)
		return mountErr
	}

	switch {
	case loadCore:
		if domain.DesignIsEmpty(core.Design) {
			design, err := p.converter.Convert(core.Message)
			if err != nil {
				log.WithField("error", err.Error()).Error("Failed to migrate legacy core email")
				p.setState(PageNotLoaded)
				p.notifyFailure(err)
				return err
			}
			core.Design = design
		}
		tpl = core.AsTemplate()
	case route.TemplateID.IsNew():
		tpl = &domain.Template{}
	case !loadUser:
		// nothing to edit, the editor stays mounted with its configuration
		p.mu.Lock()
		p.template = nil
		p.bodyText = ""
		p.state = PageNotLoaded
		p.mu.Unlock()
		return nil
	}

	// an empty design resets the editor to a blank document so nothing of a
	// previously opened template is carried over
	if err := p.waitEditorReady(ctx); err != nil {
		log.WithField("error", err.Error()).Error("Editor did not become ready")
		p.setState(PageNotLoaded)
		p.notifyFailure(err)
		return err
	}
	if err := p.editor.LoadDesign(ctx, tpl.Design); err != nil {
		log.WithField("error", err.Error()).Error("Failed to load design into editor")
		p.setState(PageNotLoaded)
		p.notifyFailure(err)
		return fmt.Errorf("failed to load design: %w", err)
	}

	p.mu.Lock()
	p.template = tpl
	p.bodyText = tpl.BodyText
	p.edits, p.savedEdits = 0, 0
	p.fieldErrors = map[string]string{}
	p.state = PageLoaded
	p.mu.Unlock()

	log.Info("Designer page loaded")
	return nil
}

// mountEditor remounts when the configuration generation changed
func (p *DesignerPage) mountEditor(ctx context.Context, cfg domain.EditorConfig, key string) error {
	p.mu.Lock()
	needMount := !p.mounted || p.configKey != key
	wasMounted := p.mounted
	p.mu.Unlock()
	if !needMount {
		return nil
	}

	if wasMounted {
		p.editor.Unmount()
	}
	if err := p.editor.Mount(ctx, cfg, p.settings.Locale); err != nil {
		p.mu.Lock()
		p.mounted = false
		p.mu.Unlock()
		return fmt.Errorf("failed to mount editor: %w", err)
	}
	p.editor.OnDesignChanged(p.designChanged)
	p.editor.OnImageSelect(p.selectImage)

	p.mu.Lock()
	p.mounted = true
	p.configKey = key
	p.mu.Unlock()
	return nil
}

// ensureMounted mounts the defaults unless an editor is already mounted, in
// which case its configuration is kept
func (p *DesignerPage) ensureMounted(ctx context.Context) error {
	p.mu.Lock()
	mounted := p.mounted
	p.mu.Unlock()
	if mounted {
		return nil
	}
	merged, _ := MergeEditorConfig(p.editorDefaults(), nil)
	return p.mountEditor(ctx, merged, ConfigKeyDefault)
}

func (p *DesignerPage) waitEditorReady(ctx context.Context) error {
	if p.settings.EditorReadyTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, p.settings.EditorReadyTimeout)
		defer cancel()
	}
	select {
	case <-p.editor.Ready():
		return nil
	case <-ctx.Done():
		return fmt.Errorf("%w: %v", domain.ErrEditorNotReady, ctx.Err())
	}
}

func (p *DesignerPage) designChanged() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.state == PageLoaded || p.state == PageSaving {
		p.edits++
	}
}

func (p *DesignerPage) selectImage(ctx context.Context, done func(url string)) {
	if p.picker == nil {
		p.logger.Warn("Image selection requested but no media picker is configured")
		return
	}
	asset, err := p.picker.Pick(ctx)
	if err != nil {
		p.logger.WithField("error", err.Error()).Error("Media picker failed")
		return
	}
	if asset == nil {
		return
	}
	if !govalidator.IsURL(asset.URL) && !govalidator.IsRequestURI(asset.URL) {
		p.logger.WithField("url", asset.URL).Warn("Media picker returned an invalid URL")
		return
	}
	done(asset.URL)
}

func (p *DesignerPage) setState(state PageState) {
	p.mu.Lock()
	p.state = state
	p.mu.Unlock()
}

// edit applies fn to the loaded template and records a user edit
func (p *DesignerPage) edit(fn func(t *domain.Template) bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.template == nil {
		return
	}
	if fn(p.template) {
		p.edits++
	}
}

// SetReferenceID applies a keystroke in the reference id input. An empty
// value clears the id, a value starting with an integer sets it and anything
// else keeps the previous value. Core emails have no reference id.
func (p *DesignerPage) SetReferenceID(raw string) {
	if p.Route().IsCore() {
		return
	}
	p.edit(func(t *domain.Template) bool {
		if raw == "" {
			changed := t.TemplateReferenceID != nil
			t.TemplateReferenceID = nil
			return changed
		}
		n, ok := parseIntPrefix(raw)
		if !ok {
			return false
		}
		if t.TemplateReferenceID != nil && *t.TemplateReferenceID == n {
			return false
		}
		t.TemplateReferenceID = &n
		return true
	})
}

// SetName renames a user template; core email names are derived from their type
func (p *DesignerPage) SetName(name string) {
	if p.Route().IsCore() {
		return
	}
	p.edit(func(t *domain.Template) bool {
		changed := t.Name != name
		t.Name = name
		return changed
	})
}

// SetSubject sets the email subject
func (p *DesignerPage) SetSubject(subject string) {
	p.edit(func(t *domain.Template) bool {
		changed := t.Subject != subject
		t.Subject = subject
		return changed
	})
}

// SetBodyText sets the plain text body
func (p *DesignerPage) SetBodyText(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.template == nil || p.bodyText == text {
		return
	}
	p.bodyText = text
	p.edits++
}

// SelectTab switches the displayed body; both bodies are kept
func (p *DesignerPage) SelectTab(tab Tab) {
	if tab != TabVisual && tab != TabText {
		return
	}
	p.mu.Lock()
	p.tab = tab
	p.mu.Unlock()
}

// Save exports the design and posts the template. A user template without a
// reference id is rejected before any request with a *domain.FieldError.
func (p *DesignerPage) Save(ctx context.Context) (err error) {
	ctx, span := tracing.StartServiceSpan(ctx, "DesignerPage", "Save")
	defer func() { tracing.EndSpan(span, err) }()

	p.mu.Lock()
	if p.state == PageSaving {
		p.mu.Unlock()
		return domain.ErrSaveInProgress
	}
	if p.state != PageLoaded || p.template == nil {
		p.mu.Unlock()
		return domain.ErrTemplateNotLoaded
	}
	route := p.route
	if !route.IsCore() && p.template.TemplateReferenceID == nil {
		msg := p.translator.T(i18n.KeyReferenceIDNotEmpty)
		p.fieldErrors[FieldReferenceID] = msg
		p.mu.Unlock()
		p.notify(domain.NotificationWarning, msg)
		return &domain.FieldError{Field: FieldReferenceID, Key: i18n.KeyReferenceIDNotEmpty}
	}
	delete(p.fieldErrors, FieldReferenceID)
	p.state = PageSaving
	snapshot := p.template.Clone()
	bodyText := p.bodyText
	editsAtSave := p.edits
	p.mu.Unlock()

	defer func() {
		p.mu.Lock()
		if p.state == PageSaving {
			p.state = PageLoaded
		}
		p.mu.Unlock()
	}()

	log := p.logger.WithFields(map[string]interface{}{
		"template_id": route.TemplateID.String(),
		"core_type":   route.CoreType.String(),
	})

	exported, err := p.editor.ExportHTML(ctx)
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to export design")
		return fmt.Errorf("failed to export design: %w", err)
	}

	var saved *domain.Template
	if route.IsCore() {
		var core *domain.CoreTemplate
		core, err = p.store.SaveCoreTemplate(ctx, route.CoreType, &domain.SaveCoreTemplateRequest{
			Subject:  snapshot.Subject,
			Design:   exported.Design,
			Message:  exported.HTML,
			BodyText: bodyText,
		})
		if err == nil {
			saved = core.AsTemplate()
		}
	} else {
		name := snapshot.Name
		if name == "" {
			name = p.translator.T(i18n.KeyNoName)
		}
		saved, err = p.store.SaveTemplate(ctx, route.TemplateID, &domain.SaveTemplateRequest{
			Name:                name,
			TemplateReferenceID: snapshot.TemplateReferenceID,
			Subject:             snapshot.Subject,
			Design:              exported.Design,
			BodyText:            bodyText,
			BodyHTML:            exported.HTML,
		})
	}
	if err != nil {
		log.WithField("error", err.Error()).Error("Failed to save template")
		p.notifyFailure(err)
		return fmt.Errorf("failed to save template: %w", err)
	}

	var navigateTo string
	p.mu.Lock()
	p.template = saved
	p.savedEdits = editsAtSave
	if route.TemplateID.IsNew() && saved.ID > 0 {
		p.route.TemplateID = domain.TemplateIDFromInt(saved.ID)
		navigateTo = domain.DesignerPath(p.settings.PluginID, p.route.TemplateID)
	}
	p.mu.Unlock()

	p.notify(domain.NotificationSuccess, p.translator.T(i18n.KeySaveSuccess))
	if navigateTo != "" {
		p.navigator.Replace(navigateTo)
	}
	log.Info("Template saved")
	return nil
}

func (p *DesignerPage) notify(kind domain.NotificationType, message string) {
	if p.notifier == nil {
		return
	}
	p.notifier.Notify(domain.Notification{Type: kind, Message: message})
}

// notifyFailure shows the server's message when there is one, the generic
// error otherwise
func (p *DesignerPage) notifyFailure(err error) {
	var reqErr *domain.RequestError
	if errors.As(err, &reqErr) && reqErr.Message != "" {
		p.notify(domain.NotificationWarning, reqErr.Message)
		return
	}
	p.notify(domain.NotificationWarning, p.translator.T(i18n.KeyGenericError))
}

// ShouldConfirmLeave reports whether leaving would lose unsaved edits
func (p *DesignerPage) ShouldConfirmLeave() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.edits != p.savedEdits
}

// GoBack leaves the page, asking for confirmation when there are unsaved edits
func (p *DesignerPage) GoBack() {
	confirm := ""
	if p.ShouldConfirmLeave() {
		confirm = p.translator.T(i18n.KeyUnsavedPrompt)
	}
	p.navigator.GoBack(confirm)
}

// Close releases the editor
func (p *DesignerPage) Close() {
	p.mu.Lock()
	mounted := p.mounted
	p.mounted = false
	p.configKey = ""
	p.mu.Unlock()
	if mounted {
		p.editor.Unmount()
	}
}

// Route returns the current route; it carries the server id once a new template is saved
func (p *DesignerPage) Route() Route {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.route
}

// Template returns a copy of the template being edited, nil before loading
func (p *DesignerPage) Template() *domain.Template {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.template.Clone()
}

// View returns a snapshot of the displayed fields
func (p *DesignerPage) View() PageView {
	p.mu.Lock()
	defer p.mu.Unlock()

	view := PageView{
		State:       p.state,
		Route:       p.route,
		BodyText:    p.bodyText,
		Tab:         p.tab,
		Dirty:       p.edits != p.savedEdits,
		ConfigKey:   p.configKey,
		FieldErrors: make(map[string]string, len(p.fieldErrors)),
	}
	for k, v := range p.fieldErrors {
		view.FieldErrors[k] = v
	}
	if p.route.IsCore() {
		view.NameLabel = p.translator.T(i18n.KeyCoreEmailTypeLabel)
		view.Name = p.translator.T(p.route.CoreType.String())
	}
	if p.template != nil {
		view.Subject = p.template.Subject
		if !p.route.IsCore() {
			view.Name = p.template.Name
			if p.template.TemplateReferenceID != nil {
				ref := *p.template.TemplateReferenceID
				view.ReferenceID = &ref
			}
		}
	}
	return view
}

// parseIntPrefix reads an optionally signed run of leading digits after
// leading whitespace, ignoring whatever follows
func parseIntPrefix(raw string) (int, bool) {
	s := strings.TrimLeft(raw, " \t\n\r\v\f")
	end := 0
	if end < len(s) && (s[end] == '+' || s[end] == '-') {
		end++
	}
	digitsStart := end
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	if end == digitsStart {
		return 0, false
	}
	n, err := strconv.ParseInt(s[:end], 10, 64)
	if err != nil || n > math.MaxInt32 || n < math.MinInt32 {
		return 0, false
	}
	return int(n), true
}
