// internal/rootcmd/models.go
package rootcmd

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"isru/internal/models"
)

func (r *root) modelsCmd() *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "models",
		Short: "list the available models",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, m := range models.All() {
				if _, err := fmt.Fprintf(r.stdout, "%-13s %s\n", m.Name(), m.Summary()); err != nil {
					return err
				}
				if !long {
					continue
				}
				var flags []string
				for _, p := range m.New().Params() {
					flags = append(flags, "--"+p.Flag)
				}
				if _, err := fmt.Fprintf(r.stdout, "%-13s %s\n", "", strings.Join(flags, " ")); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "also list each model's parameter flags")
	return cmd
}

func (r *root) docCmd() *cobra.Command {
	var (
		raw   bool
		width int
	)
	cmd := &cobra.Command{
		Use:       "doc <model>",
		Short:     "show a model's assumptions and sources",
		Args:      cobra.ExactArgs(1),
		ValidArgs: models.Names(),
		RunE: func(cmd *cobra.Command, args []string) error {
			md, err := models.Doc(args[0])
			if err != nil {
				return fmt.Errorf("%w (known: %s)", err, strings.Join(models.Names(), ", "))
			}
			if raw {
				_, err := fmt.Fprint(r.stdout, md)
				return err
			}
			renderer, err := glamour.NewTermRenderer(
				glamour.WithAutoStyle(),
				glamour.WithWordWrap(width),
			)
			if err != nil {
				return fmt.Errorf("doc: %w", err)
			}
			out, err := renderer.Render(md)
			if err != nil {
				return fmt.Errorf("doc: %w", err)
			}
			r.logger.Debug("rendered doc", zap.String("model", args[0]), zap.Int("bytes", len(out)))
			_, err = fmt.Fprint(r.stdout, out)
			return err
		},
	}
	cmd.Flags().BoolVar(&raw, "raw", false, "print the markdown source")
	cmd.Flags().IntVar(&width, "width", 80, "wrap width for rendered output")
	return cmd
}
