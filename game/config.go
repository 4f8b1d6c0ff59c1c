package game

import (
	"fmt"
	"github.com/memmaker/blastward/engine/util"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
	"os"
)

const DefaultConfigFile = "./assets/config/modifiers.yaml"

type BlastProtectionConfig struct {
	ID                         string  `yaml:"id"`
	Color                      int     `yaml:"color"`
	ProtectionPerLevel         float64 `yaml:"protectionPerLevel"`         // protection value per scaled level against explosions
	KnockbackReductionPerLevel float64 `yaml:"knockbackReductionPerLevel"` // fraction of explosion knockback removed per level
	IncrementalAmountPerLevel  int     `yaml:"incrementalAmountPerLevel"`  // 0 disables partial levels
}

type WorldConfig struct {
	Drag float64 `yaml:"drag"` // motion multiplier applied every tick
}

type Config struct {
	BlastProtection BlastProtectionConfig `yaml:"blastProtection"`
	World           WorldConfig           `yaml:"world"`
}

func DefaultConfig() Config {
	return Config{
		BlastProtection: BlastProtectionConfig{
			ID:                         "blast_protection",
			Color:                      0x17DD62,
			ProtectionPerLevel:         2,
			KnockbackReductionPerLevel: 0.15,
		},
		World: WorldConfig{
			Drag: 0.98,
		},
	}
}

// LoadConfig reads a YAML config file, keys missing from the file keep their defaults.
func LoadConfig(filePath string) (*Config, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read config file")
	}
	config, err := ParseConfig(data)
	if err != nil {
		return nil, errors.Wrapf(err, "config %s", filePath)
	}
	util.LogConfigInfo(fmt.Sprintf("[Config] loaded %s", filePath))
	return config, nil
}

func ParseConfig(data []byte) (*Config, error) {
	config := DefaultConfig()
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, errors.Wrap(err, "failed to parse config YAML")
	}
	if err := config.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return &config, nil
}

func (c *Config) Validate() error {
	bp := c.BlastProtection
	if bp.ID == "" {
		return errors.New("blastProtection.id cannot be empty")
	}
	if bp.ProtectionPerLevel < 0 {
		return errors.Errorf("blastProtection.protectionPerLevel must be >= 0, got %v", bp.ProtectionPerLevel)
	}
	if bp.KnockbackReductionPerLevel < 0 {
		return errors.Errorf("blastProtection.knockbackReductionPerLevel must be >= 0, got %v", bp.KnockbackReductionPerLevel)
	}
	if bp.IncrementalAmountPerLevel < 0 {
		return errors.Errorf("blastProtection.incrementalAmountPerLevel must be >= 0, got %d", bp.IncrementalAmountPerLevel)
	}
	if c.World.Drag <= 0 || c.World.Drag > 1 {
		return errors.Errorf("world.drag must be in (0, 1], got %v", c.World.Drag)
	}
	return nil
}
