package cherrybomb

import (
	"fmt"
	"strings"

	"github.com/lerenn/cherrybomb/pkg/cherrybomb/consts"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/logger"
)

// InitOpts contains optional parameters for Init.
type InitOpts struct {
	Tracker  string
	BaseURL  string
	Email    string
	Category string
	// Token is written to the file only when given explicitly.
	Token          string
	Force          bool
	NonInteractive bool
}

// Init writes the configuration file from the embedded defaults and the user's answers.
func (c *realCherrybomb) Init(opts InitOpts) error {
	return c.execute(consts.Init, func(log logger.Logger) error {
		if err := c.checkOverwrite(opts); err != nil {
			return err
		}

		cfg, err := c.buildInitConfig(opts)
		if err != nil {
			return err
		}

		if err := c.deps.Config.SaveConfig(cfg, true); err != nil {
			return fmt.Errorf("failed to save configuration: %w", err)
		}
		log.Logf("Configuration written to %s", c.deps.Config.GetConfigPath())

		c.printInitializationSuccess(cfg)
		return nil
	})
}

// checkOverwrite asks before replacing an existing configuration file.
func (c *realCherrybomb) checkOverwrite(opts InitOpts) error {
	if opts.Force {
		return nil
	}

	exists, err := c.deps.Config.ConfigExists()
	if err != nil {
		return err
	}
	if !exists {
		return nil
	}

	if opts.NonInteractive {
		return fmt.Errorf("%w: %s", config.ErrConfigExists, c.deps.Config.GetConfigPath())
	}

	confirmed, err := c.deps.Prompt.PromptForConfirmation(
		fmt.Sprintf("%s already exists. Overwrite it?", c.deps.Config.GetConfigPath()), false)
	if err != nil {
		return fmt.Errorf("failed to get user confirmation: %w", err)
	}
	if !confirmed {
		return ErrInitCancelled
	}

	return nil
}

// buildInitConfig fills the default configuration from flags, prompts and defaults.
func (c *realCherrybomb) buildInitConfig(opts InitOpts) (config.Config, error) {
	cfg := c.deps.Config.DefaultConfig()

	if opts.Tracker != "" {
		cfg.Tracker = strings.ToLower(opts.Tracker)
	}
	if cfg.Tracker != config.TrackerJira && cfg.Tracker != config.TrackerGitHub {
		return config.Config{}, fmt.Errorf("%w: %q", config.ErrUnsupportedTracker, cfg.Tracker)
	}

	var err error
	if cfg.Tracker == config.TrackerJira {
		if cfg.BaseURL, err = c.value(opts.BaseURL, "", opts.NonInteractive, c.deps.Prompt.PromptForBaseURL); err != nil {
			return config.Config{}, err
		}
		if cfg.BaseURL == "" {
			return config.Config{}, config.ErrMissingBaseURL
		}

		if cfg.Email, err = c.value(opts.Email, "", opts.NonInteractive, c.deps.Prompt.PromptForEmail); err != nil {
			return config.Config{}, err
		}
		if cfg.Email == "" {
			return config.Config{}, config.ErrMissingEmail
		}
	} else {
		cfg.BaseURL = opts.BaseURL
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	if cfg.CategoryID, err = c.value(opts.Category, cfg.CategoryID, opts.NonInteractive, c.deps.Prompt.PromptForCategory); err != nil {
		return config.Config{}, err
	}

	cfg.APIToken = opts.Token

	return cfg, nil
}

// value returns the flag value, the default when non-interactive, or the user's answer.
func (c *realCherrybomb) value(
	flagValue, defaultValue string, nonInteractive bool, ask func(defaultValue string) (string, error),
) (string, error) {
	if flagValue != "" {
		return flagValue, nil
	}
	if nonInteractive {
		return defaultValue, nil
	}
	return ask(defaultValue)
}

// printInitializationSuccess prints the success message and configuration details.
func (c *realCherrybomb) printInitializationSuccess(cfg config.Config) {
	_, _ = fmt.Fprintf(c.out, "cherrybomb initialized successfully!\n")
	_, _ = fmt.Fprintf(c.out, "Tracker: %s\n", cfg.Tracker)
	if cfg.BaseURL != "" {
		_, _ = fmt.Fprintf(c.out, "Base URL: %s\n", cfg.BaseURL)
	}
	_, _ = fmt.Fprintf(c.out, "Category: %s\n", cfg.CategoryID)
	_, _ = fmt.Fprintf(c.out, "Configuration: %s\n", c.deps.Config.GetConfigPath())

	if cfg.APIToken == "" {
		envVar := config.EnvAPIToken
		if cfg.Tracker == config.TrackerGitHub {
			envVar = config.EnvGitHubToken
		}
		_, _ = fmt.Fprintf(c.out, "Set %s in your environment or in a .env file to authenticate.\n", envVar)
	}
}
