package cli

import (
	"errors"
	"fmt"
	"io"

	"kanbo/internal/app"
	"kanbo/internal/kanban/palette"
	"kanbo/internal/prefs"

	"github.com/spf13/cobra"
)

func newThemesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List colour themes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _ := prefs.NewFileStore(opts.cfg.PrefsPath).Load()
			current, _ := palette.Resolve(p.Theme)
			for _, name := range palette.Names() {
				marker := " "
				if name == current {
					marker = "*"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", marker, name)
			}
			return nil
		},
	}
}

func newPrefsCmd(opts *options) *cobra.Command {
	var name, theme, avatar string

	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Show or change your name, avatar and theme",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store := prefs.NewFileStore(opts.cfg.PrefsPath)
			p, err := store.Read()
			if err != nil && !errors.Is(err, prefs.ErrNotFound) {
				return err
			}

			changed := false
			if cmd.Flags().Changed("name") {
				normalized, ok := prefs.NormalizeName(name)
				if !ok {
					return errors.New("name must not be blank")
				}
				p.Name = normalized
				changed = true
			}
			if cmd.Flags().Changed("theme") {
				if !palette.IsValid(theme) {
					return fmt.Errorf("unknown theme %q (see 'kanbo themes')", theme)
				}
				p.Theme = theme
				changed = true
			}
			if cmd.Flags().Changed("avatar") {
				p.AvatarRef = avatar
				changed = true
			}

			if changed {
				if err := store.Write(p); err != nil {
					return err
				}
			}
			printPrefs(cmd.OutOrStdout(), p)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&theme, "theme", "", "Colour theme")
	cmd.Flags().StringVar(&avatar, "avatar", "", "Avatar reference")
	return cmd
}

func printPrefs(w io.Writer, p prefs.Preferences) {
	avatar := p.AvatarRef
	if avatar == "" {
		avatar = "(none)"
	}
	fmt.Fprintf(w, "name:   %s\n", p.Name)
	fmt.Fprintf(w, "avatar: %s\n", avatar)
	fmt.Fprintf(w, "theme:  %s\n", p.Theme)
}

func newExportCmd(opts *options) *cobra.Command {
	var (
		dir  string
		toS3 bool
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write the board to a directory or the configured S3 bucket",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if dir == "" && !toS3 {
				return errors.New("nothing to do: pass --dir and/or --s3")
			}

			a, err := app.New(cmd.Context(), opts.cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if dir != "" {
				if err := a.ExportDir(dir); err != nil {
					return err
				}
				fmt.Fprintf(out, "Exported %d cards to %s\n", a.Service.Snapshot().CardCount(), dir)
			}
			if toS3 {
				if err := a.Publish(cmd.Context()); err != nil {
					return err
				}
				fmt.Fprintf(out, "Published board to s3://%s/%s\n", opts.cfg.S3.Bucket, opts.cfg.S3.Key)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&dir, "dir", "", "Directory to write board.md and card files into")
	cmd.Flags().BoolVar(&toS3, "s3", false, "Upload the board document to the configured bucket")
	return cmd
}
