package assembly

import (
	"fmt"
	"log/slog"

	"github.com/mhemmit/gemmi/internal/options"
)

type config struct {
	naming Naming
	logger *slog.Logger
}

func defaultConfig() *config {
	return &config{naming: NamingAddNumber}
}

// Option configures MakeAssembly and ChangeToAssembly.
type Option = options.Option[*config]

// WithNaming sets how copied chains are named. The default is NamingAddNumber.
func WithNaming(naming Naming) Option {
	return options.New(func(c *config) error {
		switch naming {
		case NamingShort, NamingAddNumber, NamingDup:
			c.naming = naming
			return nil
		default:
			return fmt.Errorf("invalid chain naming: %d", naming)
		}
	})
}

// WithLogger reports each applied operator at Info level and each missing
// chain or subchain at Warn level. A nil logger disables the reports.
func WithLogger(logger *slog.Logger) Option {
	return options.NoError(func(c *config) {
		c.logger = logger
	})
}
