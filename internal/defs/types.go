// internal/defs/types.go
package defs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownType is returned when a type name does not match any enum value.
var ErrUnknownType = errors.New("unknown type")

// EnemyType: закрытое перечисление типов врагов.
type EnemyType uint8

const (
	EnemyShambler EnemyType = iota
	EnemyRunner
	EnemyBrute
	EnemySpitter
	EnemyBehemoth
	enemyTypeCount
)

var enemyNames = [enemyTypeCount]string{
	EnemyShambler: "shambler",
	EnemyRunner:   "runner",
	EnemyBrute:    "brute",
	EnemySpitter:  "spitter",
	EnemyBehemoth: "behemoth",
}

// EnemyTypes lists every enemy type in declaration order.
func EnemyTypes() []EnemyType {
	out := make([]EnemyType, 0, enemyTypeCount)
	for t := EnemyType(0); t < enemyTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t EnemyType) Valid() bool { return t < enemyTypeCount }

func (t EnemyType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("EnemyType(%d)", uint8(t))
	}
	return enemyNames[t]
}

// ParseEnemyType maps a lowercase name to its EnemyType.
func ParseEnemyType(name string) (EnemyType, error) {
	for t, n := range enemyNames {
		if n == name {
			return EnemyType(t), nil
		}
	}
	return 0, fmt.Errorf("enemy %q: %w", name, ErrUnknownType)
}

func (t *EnemyType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseEnemyType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

func (t EnemyType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}

// TowerType: закрытое перечисление типов башен.
type TowerType uint8

const (
	TowerGatling TowerType = iota
	TowerCannon
	TowerTesla
	towerTypeCount
)

var towerNames = [towerTypeCount]string{
	TowerGatling: "gatling",
	TowerCannon:  "cannon",
	TowerTesla:   "tesla",
}

// TowerTypes lists every tower type in declaration order.
func TowerTypes() []TowerType {
	out := make([]TowerType, 0, towerTypeCount)
	for t := TowerType(0); t < towerTypeCount; t++ {
		out = append(out, t)
	}
	return out
}

func (t TowerType) Valid() bool { return t < towerTypeCount }

func (t TowerType) String() string {
	if !t.Valid() {
		return fmt.Sprintf("TowerType(%d)", uint8(t))
	}
	return towerNames[t]
}

// ParseTowerType maps a lowercase name to its TowerType.
func ParseTowerType(name string) (TowerType, error) {
	for t, n := range towerNames {
		if n == name {
			return TowerType(t), nil
		}
	}
	return 0, fmt.Errorf("tower %q: %w", name, ErrUnknownType)
}

func (t *TowerType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseTowerType(name)
	if err != nil {
		return fmt.Errorf("line %d: %w", value.Line, err)
	}
	*t = parsed
	return nil
}

func (t TowerType) MarshalYAML() (interface{}, error) {
	return t.String(), nil
}
