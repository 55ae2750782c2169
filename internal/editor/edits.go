package editor

import (
	"context"
	"fmt"

	"github.com/Notifuse/designer/pkg/designdoc"
)

// BlockEdit changes one block. Nil fields are left alone; attributes are
// merged, a nil attribute value removes the attribute.
type BlockEdit struct {
	BlockID    string
	Content    *string
	Attributes map[string]interface{}
}

// ApplyEdit is the headless counterpart of editing a block in the canvas
func (e *MJMLEditor) ApplyEdit(ctx context.Context, edit BlockEdit) error {
	return e.mutate(func(doc *designdoc.Block) error {
		block := doc.Find(edit.BlockID)
		if block == nil {
			return fmt.Errorf("block %s not found", edit.BlockID)
		}
		if edit.Content != nil {
			if !designdoc.HasContent(block.Type) {
				return fmt.Errorf("block %s (%s) has no content", block.ID, block.Type)
			}
			content := *edit.Content
			block.Content = &content
		}
		for key, value := range edit.Attributes {
			if value == nil {
				delete(block.Attributes, key)
				continue
			}
			if block.Attributes == nil {
				block.Attributes = map[string]interface{}{}
			}
			block.Attributes[key] = value
		}
		return nil
	})
}

// InsertBlock adds a new block under parentID at index (appended when out of
// range), initialized with the defaults of the matching tool
func (e *MJMLEditor) InsertBlock(ctx context.Context, parentID string, blockType designdoc.BlockType, index int) (*designdoc.Block, error) {
	var inserted *designdoc.Block
	err := e.mutate(func(doc *designdoc.Block) error {
		parent := doc.Find(parentID)
		if parent == nil {
			return fmt.Errorf("block %s not found", parentID)
		}
		if !designdoc.CanContain(parent.Type, blockType) {
			return fmt.Errorf("block %s cannot be a child of %s", blockType, parent.Type)
		}

		block := designdoc.NewBlock(blockType)
		if err := e.applyToolDefaults(block); err != nil {
			return err
		}

		if index < 0 || index >= len(parent.Children) {
			parent.Children = append(parent.Children, block)
		} else {
			parent.Children = append(parent.Children[:index], append([]*designdoc.Block{block}, parent.Children[index:]...)...)
		}
		inserted = block.Clone()
		return nil
	})
	return inserted, err
}

// RemoveBlock deletes a block and its children. The root and the body stay.
func (e *MJMLEditor) RemoveBlock(ctx context.Context, blockID string) error {
	return e.mutate(func(doc *designdoc.Block) error {
		parent := parentOf(doc, blockID)
		if parent == nil {
			return fmt.Errorf("block %s not found", blockID)
		}
		for i, child := range parent.Children {
			if child != nil && child.ID == blockID {
				if child.Type == designdoc.BlockBody {
					return fmt.Errorf("the document body cannot be removed")
				}
				parent.Children = append(parent.Children[:i], parent.Children[i+1:]...)
				break
			}
		}
		return nil
	})
}

// applyToolDefaults reads tools.<name>.properties.<attr>.value from the
// mounted configuration. Map values contribute their url field.
// Caller holds e.mu.
func (e *MJMLEditor) applyToolDefaults(block *designdoc.Block) error {
	tool, ok := e.cfg.Tools[toolName(block.Type)].(map[string]interface{})
	if !ok {
		return nil
	}
	if enabled, ok := tool["enabled"].(bool); ok && !enabled {
		return fmt.Errorf("tool %s is disabled", toolName(block.Type))
	}
	properties, ok := tool["properties"].(map[string]interface{})
	if !ok {
		return nil
	}
	for attr, prop := range properties {
		propMap, ok := prop.(map[string]interface{})
		if !ok {
			continue
		}
		value := propMap["value"]
		if m, ok := value.(map[string]interface{}); ok {
			value = m["url"]
		}
		if value == nil {
			continue
		}
		if attr == "content" || attr == "text" {
			if s, ok := value.(string); ok && designdoc.HasContent(block.Type) {
				block.Content = &s
			}
			continue
		}
		if block.Attributes == nil {
			block.Attributes = map[string]interface{}{}
		}
		block.Attributes[attr] = value
	}
	return nil
}

// SelectImage asks the registered image callback for a picture and sets it
// as the src of the image block. ok is false when nothing was chosen.
func (e *MJMLEditor) SelectImage(ctx context.Context, blockID string) (ok bool, err error) {
	e.mu.Lock()
	selectFn := e.imageSelect
	var block *designdoc.Block
	if e.doc != nil {
		block = e.doc.Find(blockID)
	}
	e.mu.Unlock()

	if block == nil {
		return false, fmt.Errorf("block %s not found", blockID)
	}
	if block.Type != designdoc.BlockImage {
		return false, fmt.Errorf("block %s is not an image", blockID)
	}
	if selectFn == nil {
		return false, fmt.Errorf("no image selection handler registered")
	}

	var picked string
	selectFn(ctx, func(url string) {
		picked = url
	})
	if picked == "" {
		return false, nil
	}

	err = e.ApplyEdit(ctx, BlockEdit{BlockID: blockID, Attributes: map[string]interface{}{"src": picked}})
	return err == nil, err
}
