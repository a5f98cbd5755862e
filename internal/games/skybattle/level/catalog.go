package level

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/skybattle/internal/config"
)

var (
	// ErrUnknownLevel is returned for level IDs missing from the campaign.
	ErrUnknownLevel = errors.New("level: unknown level")
	// ErrUnknownVariant is returned for level definitions naming a variant
	// that has no builder.
	ErrUnknownVariant = errors.New("level: unknown variant")
	// ErrInvalidLevel wraps variant construction failures.
	ErrInvalidLevel = errors.New("level: invalid level")
)

// Builder constructs the variant policy for a level definition.
type Builder func(def config.LevelConfig, cfg config.SkybattleConfig) (Variant, error)

var builders = map[string]Builder{
	config.VariantWaves: newWaves,
	config.VariantBoss:  newBossFight,
}

func fmtVariantErr(def config.LevelConfig, format string, args ...any) error {
	return fmt.Errorf("%w %q: %s", ErrInvalidLevel, def.ID, fmt.Sprintf(format, args...))
}

// Catalog builds levels from a configuration.
type Catalog struct {
	cfg config.SkybattleConfig
}

// NewCatalog creates a catalog over the configured campaign.
func NewCatalog(cfg config.SkybattleConfig) *Catalog {
	return &Catalog{cfg: cfg}
}

// Config returns the catalog's configuration.
func (c *Catalog) Config() config.SkybattleConfig {
	return c.cfg
}

// Levels returns the campaign's level definitions in order.
func (c *Catalog) Levels() []config.LevelConfig {
	return append([]config.LevelConfig(nil), c.cfg.Levels...)
}

// First returns the ID of the opening level.
func (c *Catalog) First() string {
	return c.cfg.FirstLevel()
}

// Build constructs the level with the given ID.
func (c *Catalog) Build(id string, deps Deps) (*Engine, error) {
	def, ok := c.cfg.Level(id)
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownLevel, id)
	}
	build, ok := builders[def.Variant]
	if !ok {
		return nil, fmt.Errorf("%w %q for level %q", ErrUnknownVariant, def.Variant, id)
	}
	if deps.Rand == nil {
		return nil, fmt.Errorf("level: building %q: nil random source", id)
	}
	variant, err := build(def, c.cfg)
	if err != nil {
		return nil, err
	}
	return NewEngine(c.cfg, def, variant, deps), nil
}
