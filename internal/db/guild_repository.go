package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/udisondev/gamerule/internal/model"
)

// GuildRepository handles guild bonus persistence to PostgreSQL.
type GuildRepository struct {
	pool *pgxpool.Pool
}

// NewGuildRepository creates a new guild repository.
func NewGuildRepository(pool *pgxpool.Pool) *GuildRepository {
	return &GuildRepository{pool: pool}
}

// GuildRow represents a guilds row.
type GuildRow struct {
	Name  string
	Bonus model.GuildBonus
}

// LoadAll loads every guild ordered by id.
func (r *GuildRepository) LoadAll(ctx context.Context) ([]GuildRow, error) {
	rows, err := r.pool.Query(ctx,
		`SELECT guild_id, name, exp_gain_percentage, share_exp_gain_percentage,
		        gold_gain_percentage, share_gold_gain_percentage
		 FROM guilds ORDER BY guild_id`)
	if err != nil {
		return nil, fmt.Errorf("querying guilds: %w", err)
	}
	defer rows.Close()

	var result []GuildRow
	for rows.Next() {
		var g GuildRow
		if err := rows.Scan(
			&g.Bonus.GuildID, &g.Name,
			&g.Bonus.ExpGainPercentage, &g.Bonus.ShareExpGainPercentage,
			&g.Bonus.GoldGainPercentage, &g.Bonus.ShareGoldGainPercentage,
		); err != nil {
			return nil, fmt.Errorf("scanning guild row: %w", err)
		}
		result = append(result, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating guild rows: %w", err)
	}
	return result, nil
}

// Get loads one guild. Returns nil, nil if the guild does not exist.
func (r *GuildRepository) Get(ctx context.Context, guildID int32) (*GuildRow, error) {
	var g GuildRow
	err := r.pool.QueryRow(ctx,
		`SELECT guild_id, name, exp_gain_percentage, share_exp_gain_percentage,
		        gold_gain_percentage, share_gold_gain_percentage
		 FROM guilds WHERE guild_id = $1`, guildID,
	).Scan(
		&g.Bonus.GuildID, &g.Name,
		&g.Bonus.ExpGainPercentage, &g.Bonus.ShareExpGainPercentage,
		&g.Bonus.GoldGainPercentage, &g.Bonus.ShareGoldGainPercentage,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("querying guild %d: %w", guildID, err)
	}
	return &g, nil
}

// Save inserts or updates a guild.
func (r *GuildRepository) Save(ctx context.Context, g GuildRow) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO guilds (guild_id, name, exp_gain_percentage, share_exp_gain_percentage,
		                     gold_gain_percentage, share_gold_gain_percentage)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 ON CONFLICT (guild_id) DO UPDATE SET
		     name = EXCLUDED.name,
		     exp_gain_percentage = EXCLUDED.exp_gain_percentage,
		     share_exp_gain_percentage = EXCLUDED.share_exp_gain_percentage,
		     gold_gain_percentage = EXCLUDED.gold_gain_percentage,
		     share_gold_gain_percentage = EXCLUDED.share_gold_gain_percentage,
		     updated_at = now()`,
		g.Bonus.GuildID, g.Name,
		g.Bonus.ExpGainPercentage, g.Bonus.ShareExpGainPercentage,
		g.Bonus.GoldGainPercentage, g.Bonus.ShareGoldGainPercentage,
	)
	if err != nil {
		return fmt.Errorf("saving guild %d: %w", g.Bonus.GuildID, err)
	}
	return nil
}

// Delete removes a guild.
func (r *GuildRepository) Delete(ctx context.Context, guildID int32) error {
	if _, err := r.pool.Exec(ctx, `DELETE FROM guilds WHERE guild_id = $1`, guildID); err != nil {
		return fmt.Errorf("deleting guild %d: %w", guildID, err)
	}
	return nil
}
