package material

import (
	"context"
	"fmt"
	"math"
	"sort"
	"strings"
	"sync"

	"github.com/agnivade/levenshtein"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/osse101/GearRepair_Go/internal/domain"
	"github.com/osse101/GearRepair_Go/internal/logger"
)

// Catalog maps material instances to their tier, display name and repair
// value. It is safe for concurrent use and can be reloaded in place.
type Catalog struct {
	mu    sync.RWMutex
	defs  map[string]Def
	order []string

	repairValues *expirable.LRU[string, int]
}

// NewCatalog builds a catalog from a validated config
func NewCatalog(config *Config) *Catalog {
	c := &Catalog{
		repairValues: expirable.NewLRU[string, int](DefaultRepairValueCacheSize, nil, DefaultRepairValueCacheTTL),
	}
	c.setDefs(config)
	return c
}

// LoadCatalog loads a catalog file through the schema-checked loader
func LoadCatalog(ctx context.Context, path string) (*Catalog, error) {
	loader, err := NewLoader()
	if err != nil {
		return nil, err
	}
	config, err := loader.Load(path)
	if err != nil {
		return nil, err
	}

	catalog := NewCatalog(config)
	logger.FromContext(ctx).Info(LogMsgCatalogLoaded, "path", path, "materials", catalog.Len())
	return catalog, nil
}

// Reload replaces the catalog contents and drops cached repair values
func (c *Catalog) Reload(ctx context.Context, config *Config) {
	c.setDefs(config)
	c.repairValues.Purge()
	logger.FromContext(ctx).Info(LogMsgCatalogReloaded, "materials", c.Len())
}

func (c *Catalog) setDefs(config *Config) {
	caser := cases.Title(language.English)

	defs := make(map[string]Def, len(config.Materials))
	for _, def := range config.Materials {
		if def.DisplayName == "" {
			def.DisplayName = caser.String(strings.ReplaceAll(def.ID, "_", " "))
		}
		defs[def.ID] = def
	}

	order := make([]string, 0, len(defs))
	for id := range defs {
		order = append(order, id)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := defs[order[i]], defs[order[j]]
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}
		if a.DisplayName != b.DisplayName {
			return a.DisplayName < b.DisplayName
		}
		return a.ID < b.ID
	})

	c.mu.Lock()
	c.defs = defs
	c.order = order
	c.mu.Unlock()
}

// Len returns the number of materials in the catalog
func (c *Catalog) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.defs)
}

// Get returns the definition for a material id
func (c *Catalog) Get(id string) (Def, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	def, ok := c.defs[id]
	return def, ok
}

// Materials returns all definitions ordered by tier then display name
func (c *Catalog) Materials() []Def {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]Def, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.defs[id])
	}
	return out
}

// Known reports whether the instance names a catalog material with a valid grade
func (c *Catalog) Known(m domain.MaterialInstance) bool {
	if !m.Grade.Valid() {
		return false
	}
	_, ok := c.Get(m.MaterialID)
	return ok
}

// Tier returns the material tier, or math.MaxInt for unknown materials so
// they sort last.
func (c *Catalog) Tier(m domain.MaterialInstance) int {
	def, ok := c.Get(m.MaterialID)
	if !ok {
		return math.MaxInt
	}
	return def.Tier
}

// DisplayName returns the material's display name without grade
func (c *Catalog) DisplayName(m domain.MaterialInstance) string {
	def, ok := c.Get(m.MaterialID)
	if !ok {
		return m.MaterialID
	}
	return def.DisplayName
}

// DisplayNameWithGrade returns e.g. "Iron (A)" for graded materials
func (c *Catalog) DisplayNameWithGrade(m domain.MaterialInstance) string {
	name := c.DisplayName(m)
	if m.Grade == domain.GradeNone {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, m.Grade)
}

// RepairValue returns how much durability one unit of the material restores
// on the given gear. Zero or less means the material cannot repair it.
func (c *Catalog) RepairValue(m domain.MaterialInstance, gear *domain.Gear) int {
	gearType := ""
	if gear != nil {
		gearType = gear.GearType
	}

	key := m.Shorthand() + "|" + gearType
	if value, ok := c.repairValues.Get(key); ok {
		return value
	}

	value := c.computeRepairValue(m, gearType)
	c.repairValues.Add(key, value)
	return value
}

func (c *Catalog) computeRepairValue(m domain.MaterialInstance, gearType string) int {
	def, ok := c.Get(m.MaterialID)
	if !ok {
		return 0
	}

	base := def.RepairValue
	if override, ok := def.RepairOverrides[gearType]; ok {
		base = override
	} else if override, ok := def.RepairOverrides[domain.GearCategory(gearType)]; ok {
		base = override
	}
	if base <= 0 {
		return base
	}

	return int(math.Round(float64(base) * float64(100+m.Grade.BonusPercent()) / 100))
}

// Resolve parses a user-supplied material key and checks it against the
// catalog. Unknown ids get a closest-match suggestion in the error.
func (c *Catalog) Resolve(key string) (domain.MaterialInstance, error) {
	m, err := domain.ParseShorthand(strings.ToLower(strings.TrimSpace(key)))
	if err != nil {
		return domain.MaterialInstance{}, err
	}
	if c.Known(m) {
		return m, nil
	}

	if suggestion, ok := c.Suggest(m.MaterialID); ok {
		return domain.MaterialInstance{}, fmt.Errorf("%w: %q (did you mean %q?)", domain.ErrUnknownMaterial, m.MaterialID, suggestion)
	}
	return domain.MaterialInstance{}, fmt.Errorf("%w: %q", domain.ErrUnknownMaterial, m.MaterialID)
}

// Suggest returns the closest known material id within MaxSuggestionDistance
func (c *Catalog) Suggest(id string) (string, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	best := ""
	bestDist := MaxSuggestionDistance + 1
	for _, candidate := range c.order {
		dist := levenshtein.ComputeDistance(id, candidate)
		if dist < bestDist {
			best, bestDist = candidate, dist
		}
	}
	return best, best != ""
}
