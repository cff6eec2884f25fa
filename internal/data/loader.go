package data

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/udisondev/gamerule/internal/model"
)

type elementsFile struct {
	Default  string                `yaml:"default"`
	Elements []model.DamageElement `yaml:"elements"`
}

type itemsFile struct {
	Items []ItemDef `yaml:"items"`
}

type buffsFile struct {
	Buffs []BuffDef `yaml:"buffs"`
}

type skillsFile struct {
	Skills []SkillDef `yaml:"skills"`
}

type monstersFile struct {
	Monsters []MonsterDef `yaml:"monsters"`
}

type questsFile struct {
	Quests []QuestDef `yaml:"quests"`
}

type shopsFile struct {
	Shops []ShopDef `yaml:"shops"`
}

type craftingFile struct {
	Crafts       []CraftDef    `yaml:"crafts"`
	RefineLevels []RefineLevel `yaml:"refine_levels"`
	RepairPrices []RepairPrice `yaml:"repair_prices"`
}

type experienceFile struct {
	Levels []int64 `yaml:"levels"`
}

// LoadCatalog reads every catalog file from dir in parallel and assembles a
// validated Catalog. Only elements.yaml is mandatory.
func LoadCatalog(ctx context.Context, dir string) (*Catalog, error) {
	var (
		elements   elementsFile
		items      itemsFile
		buffs      buffsFile
		skills     skillsFile
		monsters   monstersFile
		quests     questsFile
		shops      shopsFile
		crafting   craftingFile
		experience experienceFile
	)

	g, gctx := errgroup.WithContext(ctx)
	load := func(name string, required bool, out any) {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			return readYAML(filepath.Join(dir, name), required, out)
		})
	}
	load("elements.yaml", true, &elements)
	load("items.yaml", false, &items)
	load("buffs.yaml", false, &buffs)
	load("skills.yaml", false, &skills)
	load("monsters.yaml", false, &monsters)
	load("quests.yaml", false, &quests)
	load("shops.yaml", false, &shops)
	load("crafting.yaml", false, &crafting)
	load("experience.yaml", false, &experience)
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("loading catalog from %s: %w", dir, err)
	}

	c := NewCatalog()
	for _, e := range elements.Elements {
		if err := c.AddElement(e); err != nil {
			return nil, err
		}
	}
	if elements.Default != "" {
		if err := c.SetDefaultElement(elements.Default); err != nil {
			return nil, err
		}
	}
	for _, d := range items.Items {
		if err := c.AddItem(d); err != nil {
			return nil, err
		}
	}
	for _, d := range buffs.Buffs {
		if err := c.AddBuff(d); err != nil {
			return nil, err
		}
	}
	for _, d := range skills.Skills {
		if err := c.AddSkill(d); err != nil {
			return nil, err
		}
	}
	for _, d := range monsters.Monsters {
		if err := c.AddMonster(d); err != nil {
			return nil, err
		}
	}
	for _, d := range quests.Quests {
		if err := c.AddQuest(d); err != nil {
			return nil, err
		}
	}
	for _, d := range shops.Shops {
		if err := c.AddShop(d); err != nil {
			return nil, err
		}
	}
	for _, d := range crafting.Crafts {
		if err := c.AddCraft(d); err != nil {
			return nil, err
		}
	}
	c.SetRefineLevels(crafting.RefineLevels)
	c.SetRepairPrices(crafting.RepairPrices)
	c.Exp = ExperienceTable(experience.Levels)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	slog.Info("loaded catalog", "dir", dir, "counts", c.Counts())
	return c, nil
}

// Validate checks cross references that the engine relies on.
// Dangling item, buff and socket ids are only logged: the engine skips them.
func (c *Catalog) Validate() error {
	if c.defaultElement == nil {
		return ErrNoDefaultElement
	}
	for id, d := range c.items {
		for _, s := range d.Sockets {
			if c.items[s] == nil {
				slog.Warn("item references unknown socket enhancer",
					"item", id,
					"socket", s)
			}
		}
	}
	return nil
}

func readYAML(path string, required bool, out any) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) && !required {
			return nil
		}
		return fmt.Errorf("reading %s: %w", path, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}
	return nil
}
