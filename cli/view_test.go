package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pfeifer.dev/acc/acc"
)

func TestPagerModel(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pager.txt")
	c := acc.New(80, 70, 20, path)
	require.NoError(t, c.SaveStatus())

	m := newPagerModel(path)
	assert.Equal(t, "loading...", m.View())

	model, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 30})
	m = model.(pagerModel)
	assert.True(t, m.ready)
	assert.Contains(t, m.View(), "Current Speed: 80.0 km/h")

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}

func TestPagerModelMissingFile(t *testing.T) {
	m := newPagerModel(filepath.Join(t.TempDir(), "nope.txt"))
	assert.Equal(t, emptyLogMessage, m.content)
}

func TestPrintLastRecordsMissingFile(t *testing.T) {
	var out bytes.Buffer
	err := printLastRecords(&out, filepath.Join(t.TempDir(), "nope.txt"), 3)
	assert.Error(t, err)
}
