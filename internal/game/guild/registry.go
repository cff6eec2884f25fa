// Package guild keeps guild reward bonuses in memory for the rule engine.
package guild

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/udisondev/gamerule/internal/db"
	"github.com/udisondev/gamerule/internal/model"
)

//go:generate go tool mockgen -destination=mocks/source_mock.go -package=mocks . Source

// Source loads persisted guilds. *db.GuildRepository implements it.
type Source interface {
	LoadAll(ctx context.Context) ([]db.GuildRow, error)
}

// Registry is a concurrency-safe GuildLookup.
type Registry struct {
	mu     sync.RWMutex
	guilds map[int32]entry
}

type entry struct {
	name  string
	bonus model.GuildBonus
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{guilds: make(map[int32]entry)}
}

// Guild returns the bonus of a guild. Id 0 is never a guild.
func (r *Registry) Guild(guildID int32) (model.GuildBonus, bool) {
	if guildID == 0 {
		return model.GuildBonus{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	e, ok := r.guilds[guildID]
	return e.bonus, ok
}

// Name returns the guild's name, or "" when unknown.
func (r *Registry) Name(guildID int32) string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guilds[guildID].name
}

// Put adds or replaces a guild.
func (r *Registry) Put(name string, bonus model.GuildBonus) error {
	if bonus.GuildID <= 0 {
		return fmt.Errorf("guild %q: invalid id %d", name, bonus.GuildID)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.guilds[bonus.GuildID] = entry{name: name, bonus: bonus}
	return nil
}

// Remove drops a guild.
func (r *Registry) Remove(guildID int32) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.guilds, guildID)
}

// Len returns the number of guilds.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.guilds)
}

// Load fills the registry from a persistent source.
func (r *Registry) Load(ctx context.Context, src Source) error {
	rows, err := src.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("loading guilds: %w", err)
	}
	for _, row := range rows {
		if err := r.Put(row.Name, row.Bonus); err != nil {
			return err
		}
	}
	slog.Info("guilds loaded", "count", len(rows))
	return nil
}

type seedFile struct {
	Guilds []struct {
		ID                      int32   `yaml:"id"`
		Name                    string  `yaml:"name"`
		ExpGainPercentage       float64 `yaml:"exp_gain_percentage"`
		ShareExpGainPercentage  float64 `yaml:"share_exp_gain_percentage"`
		GoldGainPercentage      float64 `yaml:"gold_gain_percentage"`
		ShareGoldGainPercentage float64 `yaml:"share_gold_gain_percentage"`
	} `yaml:"guilds"`
}

// LoadSeed fills the registry from a YAML file. A missing file is not an
// error: the registry stays as it was.
func (r *Registry) LoadSeed(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("reading guild seed %s: %w", path, err)
	}
	var f seedFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return fmt.Errorf("parsing guild seed %s: %w", path, err)
	}
	for _, g := range f.Guilds {
		err := r.Put(g.Name, model.GuildBonus{
			GuildID:                 g.ID,
			ExpGainPercentage:       g.ExpGainPercentage,
			ShareExpGainPercentage:  g.ShareExpGainPercentage,
			GoldGainPercentage:      g.GoldGainPercentage,
			ShareGoldGainPercentage: g.ShareGoldGainPercentage,
		})
		if err != nil {
			return fmt.Errorf("guild seed %s: %w", path, err)
		}
	}
	slog.Info("guild seed loaded", "path", path, "count", len(f.Guilds))
	return nil
}
