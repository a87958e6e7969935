package gamedata

// EnemyType is a monster template. Like JobClass it indexes a fixed table.
type EnemyType int

const (
	EnemyGoblin EnemyType = iota
	EnemyOrc
	EnemyDarkMage
	EnemySkeleton
	EnemyDragon

	enemyCount
)

type enemyDef struct {
	name  string
	stats BaseStats
}

var enemyTable = [enemyCount]enemyDef{
	EnemyGoblin:   {name: "Goblin", stats: BaseStats{HP: 50, Attack: 10, Defense: 5, Magic: 0, Speed: 12}},
	EnemyOrc:      {name: "Orc", stats: BaseStats{HP: 80, Attack: 15, Defense: 10, Magic: 0, Speed: 6}},
	EnemyDarkMage: {name: "Dark Mage", stats: BaseStats{HP: 40, Attack: 5, Defense: 3, Magic: 18, Speed: 10}},
	EnemySkeleton: {name: "Skeleton", stats: BaseStats{HP: 60, Attack: 12, Defense: 8, Magic: 0, Speed: 8}},
	EnemyDragon:   {name: "Dragon", stats: BaseStats{HP: 200, Attack: 25, Defense: 20, Magic: 15, Speed: 14}},
}

// DefaultEnemy is used when an enemy name cannot be resolved.
const DefaultEnemy = EnemyGoblin

// EnemyTypes returns every enemy type in table order.
func EnemyTypes() []EnemyType {
	types := make([]EnemyType, 0, enemyCount)
	for t := EnemyType(0); t < enemyCount; t++ {
		types = append(types, t)
	}
	return types
}

// Valid reports whether t is one of the defined enemy types.
func (t EnemyType) Valid() bool {
	return t >= 0 && t < enemyCount
}

// String returns the enemy type name.
func (t EnemyType) String() string {
	if !t.Valid() {
		return "Unknown"
	}
	return enemyTable[t].name
}

// Stats returns the unscaled template stats.
func (t EnemyType) Stats() BaseStats {
	if !t.Valid() {
		return enemyTable[DefaultEnemy].stats
	}
	return enemyTable[t].stats
}

// ParseEnemyType resolves an enemy name. Unknown names return DefaultEnemy
// and false.
func ParseEnemyType(name string) (EnemyType, bool) {
	key := normalizeName(name)
	for t := EnemyType(0); t < enemyCount; t++ {
		if normalizeName(enemyTable[t].name) == key {
			return t, true
		}
	}
	return DefaultEnemy, false
}
