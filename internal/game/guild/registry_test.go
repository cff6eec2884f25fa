package guild_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/udisondev/gamerule/internal/db"
	"github.com/udisondev/gamerule/internal/game/guild"
	"github.com/udisondev/gamerule/internal/game/guild/mocks"
	"github.com/udisondev/gamerule/internal/gamerule"
	"github.com/udisondev/gamerule/internal/model"
	"github.com/udisondev/gamerule/internal/testutil"
)

var _ gamerule.GuildLookup = (*guild.Registry)(nil)

func TestRegistry_PutAndGuild(t *testing.T) {
	r := guild.NewRegistry()
	require.NoError(t, r.Put("Wolves", model.GuildBonus{GuildID: 4, ExpGainPercentage: 10}))

	b, ok := r.Guild(4)
	require.True(t, ok)
	assert.InDelta(t, 10, b.ExpGainPercentage, 1e-9)
	assert.Equal(t, "Wolves", r.Name(4))

	_, ok = r.Guild(5)
	assert.False(t, ok)
	_, ok = r.Guild(0)
	assert.False(t, ok, "id 0 means no guild")

	assert.Error(t, r.Put("Nobody", model.GuildBonus{GuildID: 0}))

	r.Remove(4)
	assert.Zero(t, r.Len())
}

func TestRegistry_Load(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().LoadAll(gomock.Any()).Return([]db.GuildRow{
		{Name: "Bears", Bonus: model.GuildBonus{GuildID: 1, GoldGainPercentage: 5}},
		{Name: "Wolves", Bonus: model.GuildBonus{GuildID: 2}},
	}, nil)

	r := guild.NewRegistry()
	require.NoError(t, r.Load(context.Background(), src))

	assert.Equal(t, 2, r.Len())
	b, ok := r.Guild(1)
	require.True(t, ok)
	assert.InDelta(t, 5, b.GoldGainPercentage, 1e-9)
}

func TestRegistry_LoadError(t *testing.T) {
	ctrl := gomock.NewController(t)
	src := mocks.NewMockSource(ctrl)
	src.EXPECT().LoadAll(gomock.Any()).Return(nil, testutil.ErrSimulated)

	err := guild.NewRegistry().Load(context.Background(), src)

	assert.ErrorIs(t, err, testutil.ErrSimulated)
}

func TestRegistry_LoadSeed(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "guilds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
guilds:
  - id: 1
    name: Silver Fang
    exp_gain_percentage: 10
    share_exp_gain_percentage: 5
`), 0o644))

	r := guild.NewRegistry()
	require.NoError(t, r.LoadSeed(path))
	b, ok := r.Guild(1)
	require.True(t, ok)
	assert.InDelta(t, 5, b.ShareExpGainPercentage, 1e-9)

	require.NoError(t, r.LoadSeed(filepath.Join(dir, "missing.yaml")))
	assert.Equal(t, 1, r.Len())

	require.NoError(t, os.WriteFile(path, []byte("guilds: [{id: 0, name: bad}]"), 0o644))
	assert.Error(t, r.LoadSeed(path))
}

func TestRegistry_ConcurrentAccess(t *testing.T) {
	r := guild.NewRegistry()
	var wg sync.WaitGroup
	for i := range 8 {
		wg.Add(2)
		go func() {
			defer wg.Done()
			_ = r.Put("g", model.GuildBonus{GuildID: int32(i + 1)})
		}()
		go func() {
			defer wg.Done()
			r.Guild(int32(i + 1))
		}()
	}
	wg.Wait()
	assert.Equal(t, 8, r.Len())
}
