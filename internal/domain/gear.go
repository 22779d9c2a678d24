package domain

import "time"

// Gear is a damageable tool, weapon or armor piece
type Gear struct {
	ID               string    `json:"gear_id" db:"gear_id"`
	Name             string    `json:"name" db:"name"`
	GearType         string    `json:"gear_type" db:"gear_type"`
	Damage           int       `json:"damage" db:"damage"`
	MaxDamage        int       `json:"max_damage" db:"max_damage"`
	RepairEfficiency float64   `json:"repair_efficiency" db:"repair_efficiency"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// Durability returns the remaining durability points
func (g *Gear) Durability() int {
	if g.Damage >= g.MaxDamage {
		return 0
	}
	return g.MaxDamage - g.Damage
}

// IsDamaged reports whether the gear has durability missing
func (g *Gear) IsDamaged() bool {
	return g.Damage > 0
}

// Repair removes up to amount points of damage and returns the points removed
func (g *Gear) Repair(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > g.Damage {
		amount = g.Damage
	}
	g.Damage -= amount
	return amount
}

// Gear categories used to group gear types
const (
	GearCategoryTool   = "tool"
	GearCategoryWeapon = "weapon"
	GearCategoryArmor  = "armor"
	GearCategoryOther  = "other"
)

var gearCategories = map[string]string{
	"pickaxe":    GearCategoryTool,
	"axe":        GearCategoryTool,
	"shovel":     GearCategoryTool,
	"hoe":        GearCategoryTool,
	"hammer":     GearCategoryTool,
	"excavator":  GearCategoryTool,
	"paxel":      GearCategoryTool,
	"sickle":     GearCategoryTool,
	"sword":      GearCategoryWeapon,
	"dagger":     GearCategoryWeapon,
	"katana":     GearCategoryWeapon,
	"bow":        GearCategoryWeapon,
	"crossbow":   GearCategoryWeapon,
	"helmet":     GearCategoryArmor,
	"chestplate": GearCategoryArmor,
	"leggings":   GearCategoryArmor,
	"boots":      GearCategoryArmor,
}

// GearCategory returns the category of a gear type
func GearCategory(gearType string) string {
	if category, ok := gearCategories[gearType]; ok {
		return category
	}
	return GearCategoryOther
}
