package catalog

import (
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/heaponte4/aerea-sub000/internal/adapter/persistence/memory"
	"github.com/heaponte4/aerea-sub000/internal/domain/entities"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validYAML = `
services:
  - id: photo
    name: Photography
    base_price: "250.10"
    eligible_addons: [rush]
addons:
  - id: rush
    name: Rush
    price: "75"
    applicable_services: [photo]
photographers:
  - id: p1
    name: Ana
    specialties: [Photography]
    available_dates: ["2026-11-02"]
    travel_fee: "50.00"
    rating: 4.5
`

func TestParse(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	require.Len(t, c.Services, 1)
	assert.Equal(t, "250.1", c.Services[0].BasePrice.String())
	assert.Equal(t, []string{"rush"}, c.Services[0].EligibleAddonIDs)
	require.Len(t, c.Addons, 1)
	assert.True(t, c.Addons[0].AppliesTo("photo"))
	require.Len(t, c.Photographers, 1)
	assert.Equal(t, "2026-11-02", entities.DateKey(c.Photographers[0].AvailableDates[0]))
}

func TestParse_Rejects(t *testing.T) {
	cases := map[string]string{
		"malformed yaml": "services: [",
		"no services":    "services: []",
		"bad price": `
services:
  - id: photo
    name: Photography
    base_price: "abc"
`,
		"unknown addon": `
services:
  - id: photo
    name: Photography
    base_price: "1"
    eligible_addons: [rush]
`,
		"addon for unknown service": `
services:
  - id: photo
    name: Photography
    base_price: "1"
addons:
  - id: rush
    name: Rush
    price: "1"
    applicable_services: [video]
`,
		"duplicate service": `
services:
  - {id: photo, name: A, base_price: "1"}
  - {id: photo, name: B, base_price: "2"}
`,
		"bad date": `
services:
  - {id: photo, name: A, base_price: "1"}
photographers:
  - {id: p1, name: Ana, specialties: [A], travel_fee: "1", available_dates: ["11/02/2026"]}
`,
		"sub-cent price": `
services:
  - {id: photo, name: A, base_price: "99.999"}
`,
		"negative fee": `
services:
  - {id: photo, name: A, base_price: "1"}
photographers:
  - {id: p1, name: Ana, specialties: [A], travel_fee: "-5"}
`,
	}
	for name, doc := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(doc))
			assert.Error(t, err)
		})
	}
}

func TestParse_TrailingZerosAccepted(t *testing.T) {
	c, err := Parse([]byte(`
services:
  - {id: photo, name: A, base_price: "250.500"}
`))
	require.NoError(t, err)
	assert.Equal(t, "250.5", c.Services[0].BasePrice.String())
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("sample catalog", func(t *testing.T) {
		c, err := LoadFile(filepath.Join("..", "..", "..", "config", "catalog.yaml"))
		require.NoError(t, err)
		assert.NotEmpty(t, c.Services)
		assert.NotEmpty(t, c.Photographers)
	})

	t.Run("temp file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "catalog.yaml")
		require.NoError(t, os.WriteFile(path, []byte(validYAML), 0o600))
		c, err := LoadFile(path)
		require.NoError(t, err)
		assert.Len(t, c.Services, 1)
	})
}

func TestSeedPhotographers(t *testing.T) {
	ctx := context.Background()
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)

	log := logrus.New()
	log.SetOutput(io.Discard)
	repo := memory.NewStore().Photographers()

	require.NoError(t, SeedPhotographers(ctx, repo, c, log))
	_, err = repo.RemoveAvailableDate(ctx, "p1", c.Photographers[0].AvailableDates[0])
	require.NoError(t, err)

	// A second seed must not restore availability the photographer removed.
	require.NoError(t, SeedPhotographers(ctx, repo, c, log))
	p, err := repo.GetByID(ctx, "p1")
	require.NoError(t, err)
	assert.Empty(t, p.AvailableDates)
}

func TestRepository(t *testing.T) {
	c, err := Parse([]byte(validYAML))
	require.NoError(t, err)
	repo := NewRepository(c)

	services, err := repo.ListServices(context.Background())
	require.NoError(t, err)
	assert.Len(t, services, 1)
	addons, err := repo.ListAddons(context.Background())
	require.NoError(t, err)
	assert.Len(t, addons, 1)
}
