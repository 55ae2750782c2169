// Package cli drives a designer page from the command line against a
// template store
package cli

import (
	"net/http"

	"github.com/spf13/cobra"

	"github.com/Notifuse/designer/config"
	"github.com/Notifuse/designer/internal/editor"
)

// Options are the seams tests use to replace configuration, the HTTP client
// and the MJML compiler
type Options struct {
	LoadConfig    func(envFile string) (*config.Config, error)
	HTTPClient    *http.Client
	EditorOptions []editor.Option
}

func defaultLoadConfig(envFile string) (*config.Config, error) {
	return config.LoadWithOptions(config.LoadOptions{EnvFile: envFile})
}

// NewRootCmd builds the designer command tree
func NewRootCmd(opts Options) *cobra.Command {
	if opts.LoadConfig == nil {
		opts.LoadConfig = defaultLoadConfig
	}

	root := &cobra.Command{
		Use:   "designer",
		Short: "Edit email templates stored by the email designer plugin",
		Long: `designer opens a template or a core email from the plugin's template store,
applies edits in a headless MJML editor and saves the result back.

Targets are a numeric template id, "new", or core/<type> where type is
user-address-confirmation or reset-password.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("env-file", ".env", "Environment file to read configuration from")
	root.PersistentFlags().String("endpoint", "", "Template store base URL (overrides API_ENDPOINT)")
	root.PersistentFlags().String("token", "", "Bearer token (overrides API_TOKEN)")
	root.PersistentFlags().String("plugin", "", "Plugin id (overrides PLUGIN_ID)")
	root.PersistentFlags().String("locale", "", "Message locale (overrides LOCALE)")

	root.AddCommand(newShowCmd(opts))
	root.AddCommand(newEditCmd(opts))
	root.AddCommand(newMigrateCoreCmd(opts))
	root.AddCommand(newPreviewCmd(opts))
	return root
}

// Execute runs the designer command
func Execute() error {
	return NewRootCmd(Options{}).Execute()
}
