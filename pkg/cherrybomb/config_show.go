package cherrybomb

import (
	"github.com/lerenn/cherrybomb/pkg/cherrybomb/consts"
	"github.com/lerenn/cherrybomb/pkg/config"
	"github.com/lerenn/cherrybomb/pkg/logger"
)

// ShowConfig returns the effective configuration with the token masked.
func (c *realCherrybomb) ShowConfig() (config.Config, error) {
	var cfg config.Config

	err := c.execute(consts.ShowConfig, func(_ logger.Logger) error {
		loaded, err := c.deps.Config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = loaded.Masked()
		return nil
	})

	return cfg, err
}
