package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Notifuse/designer/internal/editor"
)

func newEditCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "edit <target>",
		Short: "Change template fields or a block, then save",
		Example: `  designer edit 12 --subject "Welcome aboard"
  designer edit new --ref 7 --name Promo
  designer edit core/reset-password --block <id> --content "<p>Reset it</p>"
  designer edit 12 --image-block <id> --image-url https://cdn.example.com/logo.png`,
		Args: cobra.ExactArgs(1),
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

			ctx := cmd.Context()
			if err := s.open(ctx, route); err != nil {
				return err
			}

			flags := cmd.Flags()
			if flags.Changed("ref") {
				v, _ := flags.GetString("ref")
				s.page.SetReferenceID(v)
			}
			if flags.Changed("name") {
				v, _ := flags.GetString("name")
				s.page.SetName(v)
			}
			if flags.Changed("subject") {
				v, _ := flags.GetString("subject")
				s.page.SetSubject(v)
			}
			if flags.Changed("body-text") {
				v, _ := flags.GetString("body-text")
				s.page.SetBodyText(v)
			}

			if blockID, _ := flags.GetString("block"); blockID != "" {
				content, _ := flags.GetString("content")
				if err := s.editor.ApplyEdit(ctx, editor.BlockEdit{BlockID: blockID, Content: &content}); err != nil {
					return err
				}
			}
			if blockID, _ := flags.GetString("image-block"); blockID != "" {
				s.picker.url, _ = flags.GetString("image-url")
				picked, err := s.editor.SelectImage(ctx, blockID)
				if err != nil {
					return err
				}
				if !picked {
					return fmt.Errorf("no usable image URL for block %s", blockID)
				}
			}

			if dryRun, _ := flags.GetBool("dry-run"); dryRun {
				fmt.Fprintf(cmd.OutOrStdout(), "unsaved changes: %t\n", s.page.ShouldConfirmLeave())
				s.page.GoBack()
				return nil
			}
			return s.page.Save(ctx)
		},
	}

	cmd.Flags().String("ref", "", "Template reference id; empty clears it")
	cmd.Flags().String("name", "", "Template name")
	cmd.Flags().String("subject", "", "Email subject")
	cmd.Flags().String("body-text", "", "Plain text body")
	cmd.Flags().String("block", "", "Id of the block whose content is replaced")
	cmd.Flags().String("content", "", "New content for --block")
	cmd.Flags().String("image-block", "", "Id of the image block to point at --image-url")
	cmd.Flags().String("image-url", "", "Image URL for --image-block")
	cmd.Flags().Bool("dry-run", false, "Apply the edits without saving")
	return cmd
}
