package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Notifuse/designer/internal/domain"
	"github.com/Notifuse/designer/internal/service"
)

func newMigrateCoreCmd(opts Options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate-core",
		Short: "Convert core emails that still only have a legacy message",
		Long: `migrate-core opens every core email that has no design yet. Opening converts
the legacy message into a design; saving stores that design with its HTML.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(cmd, opts)
			if err != nil {
				return err
			}
			defer s.close()

			dryRun, _ := cmd.Flags().GetBool("dry-run")
			ctx := cmd.Context()
			out := cmd.OutOrStdout()

			for _, emailType := range domain.CoreEmailTypes() {
				core, err := s.store.FetchCoreTemplate(ctx, emailType)
				if err != nil {
					return fmt.Errorf("failed to fetch %s: %w", emailType, err)
				}
				if !domain.DesignIsEmpty(core.Design) {
					fmt.Fprintf(out, "%s: already has a design\n", emailType)
					continue
				}

				if err := s.open(ctx, service.Route{CoreType: emailType}); err != nil {
					return err
				}
				if dryRun {
					fmt.Fprintf(out, "%s: would be migrated\n", emailType)
					continue
				}
				if err := s.page.Save(ctx); err != nil {
					return err
				}
				fmt.Fprintf(out, "%s: migrated\n", emailType)
			}
			return nil
		},
	}
	cmd.Flags().Bool("dry-run", false, "Report what would be migrated without saving")
	return cmd
}
