package designdoc

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// BlockType is the MJML component a design block renders to
type BlockType string

const (
	BlockMjml    BlockType = "mjml"
	BlockHead    BlockType = "mj-head"
	BlockTitle   BlockType = "mj-title"
	BlockPreview BlockType = "mj-preview"
	BlockStyle   BlockType = "mj-style"
	BlockBody    BlockType = "mj-body"
	BlockWrapper BlockType = "mj-wrapper"
	BlockSection BlockType = "mj-section"
	BlockColumn  BlockType = "mj-column"
	BlockText    BlockType = "mj-text"
	BlockButton  BlockType = "mj-button"
	BlockImage   BlockType = "mj-image"
	BlockDivider BlockType = "mj-divider"
	BlockSpacer  BlockType = "mj-spacer"
	BlockRaw     BlockType = "mj-raw"
)

// Block is one node of a design document. The document root is an mjml block.
type Block struct {
	ID         string                 `json:"id"`
	Type       BlockType              `json:"type"`
	Attributes map[string]interface{} `json:"attributes,omitempty"`
	Content    *string                `json:"content,omitempty"`
	Children   []*Block               `json:"children,omitempty"`
}

// validChildren lists which block types may be nested in which
var validChildren = map[BlockType][]BlockType{
	BlockMjml:    {BlockHead, BlockBody},
	BlockHead:    {BlockTitle, BlockPreview, BlockStyle, BlockRaw},
	BlockBody:    {BlockWrapper, BlockSection, BlockRaw},
	BlockWrapper: {BlockSection, BlockRaw},
	BlockSection: {BlockColumn, BlockRaw},
	BlockColumn:  {BlockText, BlockButton, BlockImage, BlockDivider, BlockSpacer, BlockRaw},
	BlockTitle:   {},
	BlockPreview: {},
	BlockStyle:   {},
	BlockText:    {},
	BlockButton:  {},
	BlockImage:   {},
	BlockDivider: {},
	BlockSpacer:  {},
	BlockRaw:     {},
}

// CanContain reports whether child may be nested directly under parent
func CanContain(parent, child BlockType) bool {
	for _, t := range validChildren[parent] {
		if t == child {
			return true
		}
	}
	return false
}

// IsLeaf reports whether a block type cannot have children
func IsLeaf(t BlockType) bool {
	children, ok := validChildren[t]
	return ok && len(children) == 0
}

// HasContent reports whether a block type carries inner content
func HasContent(t BlockType) bool {
	switch t {
	case BlockText, BlockButton, BlockRaw, BlockTitle, BlockPreview, BlockStyle:
		return true
	}
	return false
}

// NewBlock creates an empty block with a fresh id
func NewBlock(t BlockType) *Block {
	return &Block{
		ID:   uuid.NewString(),
		Type: t,
	}
}

// Parse decodes and validates a design document
func Parse(data []byte) (*Block, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("design document is empty")
	}
	var root Block
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("failed to decode design document: %w", err)
	}
	if err := Validate(&root); err != nil {
		return nil, err
	}
	return &root, nil
}

// Validate checks the document root and the nesting rules of every block
func Validate(root *Block) error {
	if root == nil {
		return fmt.Errorf("design document is nil")
	}
	if root.Type != BlockMjml {
		return fmt.Errorf("root block must be mjml, got %q", root.Type)
	}

	hasBody := false
	for _, child := range root.Children {
		if child != nil && child.Type == BlockBody {
			hasBody = true
		}
	}
	if !hasBody {
		return fmt.Errorf("mjml document must contain an mj-body")
	}

	return validateHierarchy(root)
}

func validateHierarchy(b *Block) error {
	if _, known := validChildren[b.Type]; !known {
		return fmt.Errorf("unknown block type %q", b.Type)
	}
	if b.ID == "" {
		return fmt.Errorf("block of type %s has no id", b.Type)
	}
	if IsLeaf(b.Type) && len(b.Children) > 0 {
		return fmt.Errorf("block %s (%s) cannot have children", b.ID, b.Type)
	}
	for _, child := range b.Children {
		if child == nil {
			continue
		}
		if !CanContain(b.Type, child.Type) {
			return fmt.Errorf("block %s cannot be a child of %s", child.Type, b.Type)
		}
		if err := validateHierarchy(child); err != nil {
			return err
		}
	}
	return nil
}

// Walk visits blocks depth first. Returning false stops the walk.
func (b *Block) Walk(fn func(*Block) bool) bool {
	if b == nil {
		return true
	}
	if !fn(b) {
		return false
	}
	for _, child := range b.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// Find returns the block with the given id, or nil
func (b *Block) Find(id string) *Block {
	var found *Block
	b.Walk(func(x *Block) bool {
		if x.ID == id {
			found = x
			return false
		}
		return true
	})
	return found
}

// FindByType returns every block of the given type in document order
func (b *Block) FindByType(t BlockType) []*Block {
	var out []*Block
	b.Walk(func(x *Block) bool {
		if x.Type == t {
			out = append(out, x)
		}
		return true
	})
	return out
}

// TextContents returns the content of every mj-text block in document order
func (b *Block) TextContents() []string {
	var out []string
	for _, t := range b.FindByType(BlockText) {
		if t.Content != nil {
			out = append(out, *t.Content)
		}
	}
	return out
}

// Clone returns a deep copy of the block
func (b *Block) Clone() *Block {
	if b == nil {
		return nil
	}
	out := &Block{
		ID:         b.ID,
		Type:       b.Type,
		Attributes: cloneMap(b.Attributes),
	}
	if b.Content != nil {
		c := *b.Content
		out.Content = &c
	}
	if b.Children != nil {
		out.Children = make([]*Block, 0, len(b.Children))
		for _, child := range b.Children {
			out.Children = append(out.Children, child.Clone())
		}
	}
	return out
}

// Marshal encodes the document for storage
func (b *Block) Marshal() (json.RawMessage, error) {
	data, err := json.Marshal(b)
	if err != nil {
		return nil, fmt.Errorf("failed to encode design document: %w", err)
	}
	return data, nil
}

func cloneMap(in map[string]interface{}) map[string]interface{} {
	if in == nil {
		return nil
	}
	out := make(map[string]interface{}, len(in))
	for k, v := range in {
		out[k] = cloneValue(v)
	}
	return out
}

func cloneValue(v interface{}) interface{} {
	switch t := v.(type) {
	case map[string]interface{}:
		return cloneMap(t)
	case []interface{}:
		out := make([]interface{}, len(t))
		for i, item := range t {
			out[i] = cloneValue(item)
		}
		return out
	default:
		return v
	}
}
