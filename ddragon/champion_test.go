package ddragon

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadChampions(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions.json")
	document := `[
		{"key":"266","id":"Aatrox","name":"Aatrox","title":"the Darkin Blade",
		 "tags":["Fighter"],"partype":"Blood Well",
		 "info":{"difficulty":4},"stats":{"hp":650,"attackdamage":60}},
		{"key":"103","id":"Ahri","name":"Ahri","title":"the Nine-Tailed Fox",
		 "tags":["Mage","Assassin"],"partype":"Mana",
		 "info":{"difficulty":5},"stats":{"hp":590,"attackrange":550}}
	]`
	require.NoError(t, os.WriteFile(path, []byte(document), 0o644))

	champions, err := LoadChampions(path)
	require.NoError(t, err)
	require.Len(t, champions, 2)

	assert.Equal(t, "266", champions[0].ID)
	assert.Equal(t, "Aatrox", champions[0].NameKey)
	assert.Equal(t, 4, champions[0].Info.Difficulty)
	assert.Equal(t, 650.0, champions[0].Stats.HP)
	assert.Equal(t, 550.0, champions[1].Stats.AttackRange)
}

func TestLoadChampionsMissingFile(t *testing.T) {
	_, err := LoadChampions(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadChampionsMalformedDocument(t *testing.T) {
	path := filepath.Join(t.TempDir(), "champions.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"not":"an array"}`), 0o644))

	_, err := LoadChampions(path)
	assert.Error(t, err)
}
