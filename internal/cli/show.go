package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Notifuse/designer/pkg/designdoc"
)

type blockSummary struct {
	ID       string         `json:"id"`
	Type     string         `json:"type"`
	Content  string         `json:"content,omitempty"`
	Children []blockSummary `json:"children,omitempty"`
}

func newShowCmd(opts Options) *cobra.Command {
	return &cobra.Command{
		Use:   "show <target>",
		Short: "Print a template's fields and block tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			route, err := parseTarget(args[0])
			if err != nil {
				return err
			}
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			if err := s.open(cmd.Context(), route); err != nil {
				return err
			}

			view := s.page.View()
			out := map[string]interface{}{
				"route":       describeRoute(route),
				"nameLabel":   view.NameLabel,
				"name":        view.Name,
				"referenceId": view.ReferenceID,
				"subject":     view.Subject,
				"bodyText":    view.BodyText,
				"configKey":   view.ConfigKey,
			}
			if doc := s.editor.Design(); doc != nil {
				out["blocks"] = summarize(doc)
			}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			if err := enc.Encode(out); err != nil {
				return fmt.Errorf("failed to print template: %w", err)
			}
			return nil
		},
	}
}

func summarize(b *designdoc.Block) blockSummary {
	summary := blockSummary{ID: b.ID, Type: string(b.Type)}
	if b.Content != nil {
		summary.Content = *b.Content
	}
	for _, child := range b.Children {
		summary.Children = append(summary.Children, summarize(child))
	}
	return summary
}
