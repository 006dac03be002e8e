// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// TowerLibrary holds all tower definitions, keyed by their ID.
var TowerLibrary map[string]TowerDefinition

// EnemyLibrary holds all enemy definitions, keyed by their ID.
var EnemyLibrary map[string]EnemyDefinition

// CardLibrary holds all card definitions, keyed by their ID.
var CardLibrary map[string]CardDefinition

// LoadAll replaces every library from the definition files in dir:
// towers.json, enemies.json and cards.json. On error the libraries may
// be partially replaced; callers should treat a failure as fatal.
func LoadAll(dir string) error {
	if err := LoadTowerDefinitions(filepath.Join(dir, "towers.json")); err != nil {
		return err
	}
	if err := LoadEnemyDefinitions(filepath.Join(dir, "enemies.json")); err != nil {
		return err
	}
	return LoadCardDefinitions(filepath.Join(dir, "cards.json"))
}

// LoadTowerDefinitions reads a tower definition file and replaces the
// TowerLibrary with its contents.
func LoadTowerDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read tower definitions file: %w", err)
	}

	var towerDefs []TowerDefinition
	if err := json.Unmarshal(file, &towerDefs); err != nil {
		return fmt.Errorf("failed to unmarshal tower definitions: %w", err)
	}

	TowerLibrary = make(map[string]TowerDefinition)
	for _, def := range towerDefs {
		TowerLibrary[def.ID] = def
	}
	return nil
}

// LoadEnemyDefinitions reads an enemy definition file and replaces the
// EnemyLibrary with its contents.
func LoadEnemyDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read enemy definitions file: %w", err)
	}

	var enemyDefs []EnemyDefinition
	if err := json.Unmarshal(file, &enemyDefs); err != nil {
		return fmt.Errorf("failed to unmarshal enemy definitions: %w", err)
	}

	EnemyLibrary = make(map[string]EnemyDefinition)
	for _, def := range enemyDefs {
		EnemyLibrary[def.ID] = def
	}
	return nil
}

// LoadCardDefinitions reads a card definition file and replaces the
// CardLibrary with its contents.
func LoadCardDefinitions(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read card definitions file: %w", err)
	}

	var cardDefs []CardDefinition
	if err := json.Unmarshal(file, &cardDefs); err != nil {
		return fmt.Errorf("failed to unmarshal card definitions: %w", err)
	}

	CardLibrary = make(map[string]CardDefinition)
	for _, def := range cardDefs {
		CardLibrary[def.ID] = def
	}
	return nil
}
