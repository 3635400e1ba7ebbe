package particle

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/gonewx/digdown/pkg/embedded"
)

// embeddedCatalogPath is where the stock catalog lives in the embedded FS.
const embeddedCatalogPath = "data/effects.yaml"

// EffectDef is the raw YAML form of one catalog entry. Numeric fields
// keep the string value notation (fixed or "[min max]") and are parsed
// into RangeValues when the catalog loads.
type EffectDef struct {
	Count    string  `yaml:"count"`    // particles per burst
	Speed    string  `yaml:"speed"`    // initial particle speed (px/s)
	Angle    string  `yaml:"angle"`    // launch angle (degrees, 0 = right, clockwise)
	Duration float64 `yaml:"duration"` // particle lifetime (seconds)
	Color    string  `yaml:"color"`    // base tint, "#rrggbb"
	Additive bool    `yaml:"additive"` // additive blending hint for the renderer
}

// Effect is a parsed, ready-to-sample catalog entry.
type Effect struct {
	Key      string
	Count    RangeValue
	Speed    RangeValue
	Angle    RangeValue
	Duration float64
	Color    string
	Additive bool
}

// catalogFile is the YAML document root.
type catalogFile struct {
	Effects map[string]EffectDef `yaml:"effects"`
}

// Catalog holds every known decorative effect, keyed by effect name.
// Triggers against unknown keys are rejected (logged and dropped), so a
// typo in engine code surfaces during headless runs instead of silently
// producing nothing on screen.
type Catalog struct {
	effects map[string]Effect
}

// ParseCatalog parses a YAML effect catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse effect catalog YAML: %w", err)
	}
	if len(file.Effects) == 0 {
		return nil, fmt.Errorf("effect catalog contains no effects")
	}

	catalog := &Catalog{effects: make(map[string]Effect, len(file.Effects))}
	for key, def := range file.Effects {
		effect, err := parseEffect(key, def)
		if err != nil {
			return nil, fmt.Errorf("effect %q: %w", key, err)
		}
		catalog.effects[key] = effect
	}
	return catalog, nil
}

// LoadCatalog reads and parses an effect catalog file.
func LoadCatalog(filePath string) (*Catalog, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to read effect catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// LoadEmbeddedCatalog parses the stock catalog shipped in the embedded FS.
func LoadEmbeddedCatalog() (*Catalog, error) {
	data, err := embedded.ReadFile(embeddedCatalogPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read embedded effect catalog: %w", err)
	}
	return ParseCatalog(data)
}

func parseEffect(key string, def EffectDef) (Effect, error) {
	if key == "" {
		return Effect{}, fmt.Errorf("effect key cannot be empty")
	}

	count, err := ParseRange(def.Count)
	if err != nil {
		return Effect{}, fmt.Errorf("count: %w", err)
	}
	if count.Min < 1 {
		return Effect{}, fmt.Errorf("count must be at least 1, got %v", count.Min)
	}

	speed, err := ParseRange(def.Speed)
	if err != nil {
		return Effect{}, fmt.Errorf("speed: %w", err)
	}

	// Angle defaults to a full circle when omitted.
	angle := RangeValue{Min: 0, Max: 360}
	if def.Angle != "" {
		angle, err = ParseRange(def.Angle)
		if err != nil {
			return Effect{}, fmt.Errorf("angle: %w", err)
		}
	}

	if def.Duration <= 0 {
		return Effect{}, fmt.Errorf("duration must be positive, got %v", def.Duration)
	}

	return Effect{
		Key:      key,
		Count:    count,
		Speed:    speed,
		Angle:    angle,
		Duration: def.Duration,
		Color:    def.Color,
		Additive: def.Additive,
	}, nil
}

// Effect looks up a catalog entry by key.
func (c *Catalog) Effect(key string) (Effect, bool) {
	if c == nil {
		return Effect{}, false
	}
	effect, ok := c.effects[key]
	return effect, ok
}

// Keys returns all effect keys in sorted order.
func (c *Catalog) Keys() []string {
	if c == nil {
		return nil
	}
	keys := make([]string, 0, len(c.effects))
	for key := range c.effects {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.effects)
}
