package game

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name        string
		yamlContent string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *Config)
	}{
		{
			name: "valid config",
			yamlContent: `
blastProtection:
  id: blast_protection
  color: 0x17DD62
  protectionPerLevel: 2.5
  knockbackReductionPerLevel: 0.2
  incrementalAmountPerLevel: 4
world:
  drag: 0.9
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.BlastProtection.Color != 0x17DD62 {
					t.Errorf("expected color 0x17DD62, got %x", cfg.BlastProtection.Color)
				}
				if cfg.BlastProtection.ProtectionPerLevel != 2.5 {
					t.Errorf("expected protectionPerLevel 2.5, got %v", cfg.BlastProtection.ProtectionPerLevel)
				}
				if cfg.BlastProtection.KnockbackReductionPerLevel != 0.2 {
					t.Errorf("expected knockbackReductionPerLevel 0.2, got %v", cfg.BlastProtection.KnockbackReductionPerLevel)
				}
				if cfg.BlastProtection.IncrementalAmountPerLevel != 4 {
					t.Errorf("expected incrementalAmountPerLevel 4, got %d", cfg.BlastProtection.IncrementalAmountPerLevel)
				}
				if cfg.World.Drag != 0.9 {
					t.Errorf("expected drag 0.9, got %v", cfg.World.Drag)
				}
			},
		},
		{
			name: "missing keys keep defaults",
			yamlContent: `
blastProtection:
  protectionPerLevel: 3
`,
			validate: func(t *testing.T, cfg *Config) {
				if cfg.BlastProtection.ID != "blast_protection" {
					t.Errorf("expected default id, got %q", cfg.BlastProtection.ID)
				}
				if cfg.BlastProtection.KnockbackReductionPerLevel != 0.15 {
					t.Errorf("expected default reduction 0.15, got %v", cfg.BlastProtection.KnockbackReductionPerLevel)
				}
				if cfg.World.Drag != 0.98 {
					t.Errorf("expected default drag, got %v", cfg.World.Drag)
				}
			},
		},
		{
			name: "empty id",
			yamlContent: `
blastProtection:
  id: ""
`,
			wantErr:     true,
			errContains: "blastProtection.id cannot be empty",
		},
		{
			name: "negative reduction",
			yamlContent: `
blastProtection:
  knockbackReductionPerLevel: -0.1
`,
			wantErr:     true,
			errContains: "knockbackReductionPerLevel must be >= 0",
		},
		{
			name: "drag out of range",
			yamlContent: `
world:
  drag: 1.5
`,
			wantErr:     true,
			errContains: "world.drag must be in (0, 1]",
		},
		{
			name:        "malformed yaml",
			yamlContent: "blastProtection: [1, 2",
			wantErr:     true,
			errContains: "failed to parse config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filePath := filepath.Join(t.TempDir(), "modifiers.yaml")
			if err := os.WriteFile(filePath, []byte(tt.yamlContent), 0644); err != nil {
				t.Fatalf("failed to write test file: %v", err)
			}

			cfg, err := LoadConfig(filePath)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("expected error containing %q, got nil", tt.errContains)
				}
				if !strings.Contains(err.Error(), tt.errContains) {
					t.Errorf("expected error containing %q, got %q", tt.errContains, err.Error())
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.validate != nil {
				tt.validate(t, cfg)
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil || !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("expected read error, got %v", err)
	}
}

func TestShippedConfigIsValid(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join("..", "assets", "config", "modifiers.yaml"))
	if err != nil {
		t.Fatalf("shipped config: %v", err)
	}
	if *cfg != DefaultConfig() {
		t.Errorf("shipped config drifted from defaults: %+v", *cfg)
	}
}
