// Package editor provides a headless EditorAdapter whose design document is a
// pkg/designdoc block tree compiled to HTML with mjml-go.
package editor

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	mjmlgo "github.com/Boostport/mjml-go"
	"github.com/osteele/liquid"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/pkg/designdoc"
	"github.com/Notifuse/designer/pkg/logger"
)

// warmupMJML is compiled on mount so the first export does not pay for the
// mjml runtime start
const warmupMJML = `<mjml><mj-body><mj-section><mj-column><mj-text>ready</mj-text></mj-column></mj-section></mj-body></mjml>`

const defaultWarmupTimeout = 30 * time.Second

// CompileFunc turns MJML markup into HTML
type CompileFunc func(ctx context.Context, mjml string) (string, error)

// toolBlocks maps editor tool names to the block they configure
var toolBlocks = map[string]designdoc.BlockType{
	"text":    designdoc.BlockText,
	"button":  designdoc.BlockButton,
	"image":   designdoc.BlockImage,
	"divider": designdoc.BlockDivider,
	"spacer":  designdoc.BlockSpacer,
	"html":    designdoc.BlockRaw,
}

type Option func(*MJMLEditor)

// WithCompiler replaces mjml-go, mostly for tests
func WithCompiler(compile CompileFunc) Option {
	return func(e *MJMLEditor) {
		e.compile = compile
	}
}

func WithWarmupTimeout(d time.Duration) Option {
	return func(e *MJMLEditor) {
		e.warmupTimeout = d
	}
}

// MJMLEditor keeps the design in memory. It becomes ready once the MJML
// compiler answered the warm-up compile started by Mount.
type MJMLEditor struct {
	compile       CompileFunc
	engine        *liquid.Engine
	logger        logger.Logger
	warmupTimeout time.Duration

	mu          sync.Mutex
	generation  int
	mounted     bool
	ready       chan struct{}
	isReady     bool
	cfg         domain.EditorConfig
	locale      string
	doc         *designdoc.Block
	listeners   []func()
	imageSelect domain.ImageSelectFunc
}

func NewMJMLEditor(logger logger.Logger, opts ...Option) *MJMLEditor {
	e := &MJMLEditor{
		compile: func(ctx context.Context, mjml string) (string, error) {
			return mjmlgo.ToHTML(ctx, mjml)
		},
		engine:        liquid.NewEngine(),
		logger:        logger,
		warmupTimeout: defaultWarmupTimeout,
		ready:         make(chan struct{}),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Mount resets the editor to a blank document with cfg. Listeners and the
// image callback registered before are dropped.
func (e *MJMLEditor) Mount(ctx context.Context, cfg domain.EditorConfig, locale string) error {
	e.mu.Lock()
	e.generation++
	generation := e.generation
	e.mounted = true
	e.isReady = false
	e.ready = make(chan struct{})
	e.cfg = cfg
	e.locale = locale
	e.doc = blankDocument()
	e.listeners = nil
	e.imageSelect = nil
	e.mu.Unlock()

	go e.warmUp(context.WithoutCancel(ctx), generation)
	return nil
}

func (e *MJMLEditor) warmUp(ctx context.Context, generation int) {
	ctx, cancel := context.WithTimeout(ctx, e.warmupTimeout)
	defer cancel()

	if _, err := e.compile(ctx, warmupMJML); err != nil {
		e.logger.WithField("error", err.Error()).Error("MJML compiler warm-up failed")
		return
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if e.generation != generation || !e.mounted {
		return
	}
	e.isReady = true
	close(e.ready)
}

func (e *MJMLEditor) Ready() <-chan struct{} {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.ready
}

func (e *MJMLEditor) Unmount() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.generation++
	e.mounted = false
	e.isReady = false
	e.ready = make(chan struct{})
	e.doc = nil
	e.listeners = nil
	e.imageSelect = nil
}

// LoadDesign replaces the document; an empty design resets it to a blank
// one. Loading is not reported as a change.
func (e *MJMLEditor) LoadDesign(ctx context.Context, design json.RawMessage) error {
	doc := blankDocument()
	if !domain.DesignIsEmpty(design) {
		var err error
		if doc, err = designdoc.Parse(design); err != nil {
			return err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.isReady {
		return domain.ErrEditorNotReady
	}
	e.doc = doc
	return nil
}

func (e *MJMLEditor) ExportHTML(ctx context.Context) (*domain.ExportedDesign, error) {
	e.mu.Lock()
	if !e.isReady || e.doc == nil {
		e.mu.Unlock()
		return nil, domain.ErrEditorNotReady
	}
	doc := e.doc.Clone()
	e.mu.Unlock()

	design, err := doc.Marshal()
	if err != nil {
		return nil, err
	}
	html, err := e.compile(ctx, designdoc.ToMJML(doc))
	if err != nil {
		return nil, fmt.Errorf("failed to compile mjml: %w", err)
	}
	return &domain.ExportedDesign{Design: design, HTML: html}, nil
}

func (e *MJMLEditor) OnDesignChanged(fn func()) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.listeners = append(e.listeners, fn)
}

func (e *MJMLEditor) OnImageSelect(fn domain.ImageSelectFunc) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.imageSelect = fn
}

// Design returns a copy of the current document
func (e *MJMLEditor) Design() *designdoc.Block {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.doc.Clone()
}

// mutate runs fn on the live document and notifies listeners when it succeeds
func (e *MJMLEditor) mutate(fn func(doc *designdoc.Block) error) error {
	e.mu.Lock()
	if !e.isReady || e.doc == nil {
		e.mu.Unlock()
		return domain.ErrEditorNotReady
	}
	if err := fn(e.doc); err != nil {
		e.mu.Unlock()
		return err
	}
	listeners := append([]func(){}, e.listeners...)
	e.mu.Unlock()

	for _, l := range listeners {
		l()
	}
	return nil
}

func blankDocument() *designdoc.Block {
	root := designdoc.NewBlock(designdoc.BlockMjml)
	root.Children = []*designdoc.Block{designdoc.NewBlock(designdoc.BlockBody)}
	return root
}

func parentOf(root *designdoc.Block, id string) *designdoc.Block {
	var parent *designdoc.Block
	root.Walk(func(b *designdoc.Block) bool {
		for _, child := range b.Children {
			if child != nil && child.ID == id {
				parent = b
				return false
			}
		}
		return true
	})
	return parent
}

func toolName(t designdoc.BlockType) string {
	for name, bt := range toolBlocks {
		if bt == t {
			return name
		}
	}
	return strings.TrimPrefix(string(t), "mj-")
}
