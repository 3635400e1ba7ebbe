package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// validTerrainYAML 一份完整有效的配置，错误用例在其基础上改坏单个字段
const validTerrainYAML = `
tileSize: 16
mapWidthTiles: 20
mapHeightTiles: 500
platformRow: 5
generateAheadTiles: 20
colliderHeight: 2
occupancyRadius: 8
seed: 42

spawn:
  boulder: 0.06
  enemy: 0.05
  spike: 0.07
  coin: 0.08

difficulty:
  scaleFactor: 0.004

boulder:
  width: 14
  height: 14
  health: 30

enemy:
  width: 12
  height: 12
  health: 10
  baseSpeed: 30
  speedScale: 2
  maxSpeed: 90

spike:
  width: 12
  height: 6
  health: 5

coin:
  width: 8
  height: 8
  value: 10

explosion:
  boulderDamage: 34

physics:
  gravity: 400
  maxFallSpeed: 480
`

func TestDefaultTerrainConfigValid(t *testing.T) {
	cfg := DefaultTerrainConfig()
	if err := validateTerrainConfig(cfg); err != nil {
		t.Fatalf("default config should validate, got error: %v", err)
	}

	// 默认配置的派生几何量
	if cfg.WorldWidth() != 320 {
		t.Errorf("expected world width 320, got %v", cfg.WorldWidth())
	}
	if cfg.WorldCenterX() != 160 {
		t.Errorf("expected world center x 160, got %v", cfg.WorldCenterX())
	}
}

func TestParseTerrainConfig(t *testing.T) {
	tests := []struct {
		name        string
		mutate      func(string) string
		wantErr     bool
		errContains string
		validate    func(*testing.T, *TerrainConfig)
	}{
		{
			name:   "valid config",
			mutate: func(s string) string { return s },
			validate: func(t *testing.T, cfg *TerrainConfig) {
				if cfg.TileSize != 16 {
					t.Errorf("expected tileSize 16, got %v", cfg.TileSize)
				}
				if cfg.PlatformRow != 5 {
					t.Errorf("expected platformRow 5, got %d", cfg.PlatformRow)
				}
				if cfg.Spawn.Spike != 0.07 {
					t.Errorf("expected spike chance 0.07, got %v", cfg.Spawn.Spike)
				}
				if cfg.Enemy.MaxSpeed != 90 {
					t.Errorf("expected enemy maxSpeed 90, got %v", cfg.Enemy.MaxSpeed)
				}
				if cfg.Seed != 42 {
					t.Errorf("expected seed 42, got %d", cfg.Seed)
				}
			},
		},
		{
			name: "zero tile size",
			mutate: func(s string) string {
				return strings.Replace(s, "tileSize: 16", "tileSize: 0", 1)
			},
			wantErr:     true,
			errContains: "tileSize must be positive",
		},
		{
			name: "platform row out of bounds",
			mutate: func(s string) string {
				return strings.Replace(s, "platformRow: 5", "platformRow: 500", 1)
			},
			wantErr:     true,
			errContains: "platformRow must be within",
		},
		{
			name: "spawn chance above one",
			mutate: func(s string) string {
				return strings.Replace(s, "coin: 0.08", "coin: 1.5", 1)
			},
			wantErr:     true,
			errContains: "must be within [0, 1]",
		},
		{
			name: "collider thicker than tile",
			mutate: func(s string) string {
				return strings.Replace(s, "colliderHeight: 2", "colliderHeight: 17", 1)
			},
			wantErr:     true,
			errContains: "colliderHeight must be within",
		},
		{
			name: "enemy max speed below base speed",
			mutate: func(s string) string {
				return strings.Replace(s, "maxSpeed: 90", "maxSpeed: 10", 1)
			},
			wantErr:     true,
			errContains: "enemy.maxSpeed must be >= enemy.baseSpeed",
		},
		{
			name: "missing boulder health",
			mutate: func(s string) string {
				return strings.Replace(s, "health: 30", "health: 0", 1)
			},
			wantErr:     true,
			errContains: "boulder.health must be positive",
		},
		{
			name: "negative difficulty scale",
			mutate: func(s string) string {
				return strings.Replace(s, "scaleFactor: 0.004", "scaleFactor: -0.1", 1)
			},
			wantErr:     true,
			errContains: "difficulty.scaleFactor must be >= 0",
		},
		{
			name: "malformed yaml",
			mutate: func(s string) string {
				return s + "\n\t- broken"
			},
			wantErr:     true,
			errContains: "failed to parse terrain config YAML",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ParseTerrainConfig([]byte(tt.mutate(validTerrainYAML)))

			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				if tt.errContains != "" && !strings.Contains(err.Error(), tt.errContains) {
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

func TestLoadTerrainConfigFromFile(t *testing.T) {
	// 创建临时 YAML 文件
	tmpDir := t.TempDir()
	tmpFile := filepath.Join(tmpDir, "terrain.yaml")
	if err := os.WriteFile(tmpFile, []byte(validTerrainYAML), 0644); err != nil {
		t.Fatalf("failed to create temp file: %v", err)
	}

	cfg, err := LoadTerrainConfig(tmpFile)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.MapWidthTiles != 20 {
		t.Errorf("expected mapWidthTiles 20, got %d", cfg.MapWidthTiles)
	}

	// 不存在的文件应返回读取错误
	if _, err := LoadTerrainConfig(filepath.Join(tmpDir, "missing.yaml")); err == nil {
		t.Error("expected error for missing file, got nil")
	}
}
