package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

func newPreviewCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview <target>",
		Short: "Render a template to HTML with merge tag samples",
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
			html, err := s.editor.Preview(cmd.Context())
			if err != nil {
				return fmt.Errorf("failed to render preview: %w", err)
			}

			if path, _ := cmd.Flags().GetString("out"); path != "" {
				if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
					return fmt.Errorf("failed to write preview: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "preview written to %s\n", path)
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), html)
			return err
		},
	}
	cmd.Flags().String("out", "", "Write the HTML to this file instead of stdout")
	return cmd
}
