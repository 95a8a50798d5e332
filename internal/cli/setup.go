package cli

import (
	"errors"
	"fmt"

	"kanbo/internal/config"
	"kanbo/internal/kanban/palette"
	"kanbo/internal/prefs"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"
)

func newSetupCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "setup",
		Short: "Configure kanbo interactively",
		Long:  "Launch a setup wizard for the board directory, HTTP address, optional S3 bucket and your profile",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSetup(opts)
		},
	}
}

func runSetup(opts *options) error {
	fmt.Println("kanbo setup")
	fmt.Println("===========")

	path, err := opts.resolvedConfigPath()
	if err != nil {
		return err
	}

	cfg := *opts.cfg
	fmt.Printf("Writing %s\n\n", path)

	if err := survey.AskOne(&survey.Input{
		Message: "Board name:",
		Default: cfg.BoardName,
	}, &cfg.BoardName, survey.WithValidator(survey.Required)); err != nil {
		return errSetupCancelled
	}

	if err := survey.AskOne(&survey.Input{
		Message: "Board directory (empty keeps the board in memory only):",
		Default: cfg.BoardDir,
	}, &cfg.BoardDir); err != nil {
		return errSetupCancelled
	}

	if err := survey.AskOne(&survey.Input{
		Message: "HTTP listen address for 'kanbo serve':",
		Default: cfg.Server.Addr,
	}, &cfg.Server.Addr, survey.WithValidator(survey.Required)); err != nil {
		return errSetupCancelled
	}

	useS3 := cfg.S3.Bucket != ""
	if err := survey.AskOne(&survey.Confirm{
		Message: "Load and publish the board through an S3 bucket?",
		Default: useS3,
	}, &useS3); err != nil {
		return errSetupCancelled
	}
	if useS3 {
		if err := askS3(&cfg.S3); err != nil {
			return err
		}
	} else {
		cfg.S3.Bucket = ""
	}

	if err := config.Save(path, cfg); err != nil {
		return fmt.Errorf("save config: %w", err)
	}

	if err := setupProfile(cfg.PrefsPath); err != nil {
		return err
	}

	fmt.Println()
	fmt.Println("Setup complete. Run 'kanbo' to open your board.")
	return nil
}

var errSetupCancelled = errors.New("setup cancelled")

func askS3(s3 *config.S3Config) error {
	questions := []*survey.Question{
		{
			Name:     "bucket",
			Prompt:   &survey.Input{Message: "Bucket:", Default: s3.Bucket},
			Validate: survey.Required,
		},
		{
			Name:   "key",
			Prompt: &survey.Input{Message: "Object key:", Default: s3.Key},
		},
		{
			Name:   "region",
			Prompt: &survey.Input{Message: "Region:", Default: s3.Region},
		},
		{
			Name:   "endpoint",
			Prompt: &survey.Input{Message: "Endpoint (empty for AWS):", Default: s3.Endpoint},
		},
	}

	answers := struct {
		Bucket   string
		Key      string
		Region   string
		Endpoint string
	}{}
	if err := survey.Ask(questions, &answers); err != nil {
		return errSetupCancelled
	}

	s3.Bucket = answers.Bucket
	s3.Key = answers.Key
	s3.Region = answers.Region
	s3.Endpoint = answers.Endpoint
	s3.UsePathStyle = answers.Endpoint != ""
	return nil
}

func setupProfile(prefsPath string) error {
	store := prefs.NewFileStore(prefsPath)
	p, err := store.Read()
	if err != nil && !errors.Is(err, prefs.ErrNotFound) {
		return err
	}

	var name string
	if err := survey.AskOne(&survey.Input{
		Message: "Your name:",
		Default: p.Name,
	}, &name); err != nil {
		return errSetupCancelled
	}
	if normalized, ok := prefs.NormalizeName(name); ok {
		p.Name = normalized
	}

	current, _ := palette.Resolve(p.Theme)
	if err := survey.AskOne(&survey.Select{
		Message: "Colour theme:",
		Options: palette.Names(),
		Default: current,
	}, &p.Theme); err != nil {
		return errSetupCancelled
	}

	return store.Write(p)
}
