package ui

import (
	"strings"
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oakwood-commons/scenepath/pkg/scene"
)

var _ tea.Model = (*Model)(nil)

func docRoot() map[string]any {
	return map[string]any{
		"regions": map[string]any{
			"asia": map[string]any{"countries": []any{"jp", "kr"}},
		},
		"version": 2,
	}
}

func instanceRoot(t *testing.T) *scene.Instance {
	t.Helper()
	root := scene.New("Model", "Workspace")
	car := scene.New("Model", "Car")
	require.NoError(t, root.AddChild(car))
	require.NoError(t, car.AddChild(scene.New("Part", "Wheel")))
	return root
}

func TestRowsForMapSorted(t *testing.T) {
	rows := rowsFor(docRoot())
	require.Len(t, rows, 2)
	assert.Equal(t, "regions", rows[0].Key)
	assert.Equal(t, "version", rows[1].Key)
	assert.Equal(t, "2", rows[1].Value)
}

func TestRowsForInstance(t *testing.T) {
	rows := rowsFor(instanceRoot(t))
	require.Len(t, rows, 1)
	assert.Equal(t, "Car", rows[0].Key)
	assert.Equal(t, "Model", rows[0].Value)
}

func TestRowsForScalar(t *testing.T) {
	rows := rowsFor("leaf")
	require.Len(t, rows, 1)
	assert.Equal(t, "(value)", rows[0].Key)
	assert.Equal(t, "leaf", rows[0].Value)
}

func TestChildByKey(t *testing.T) {
	root := docRoot()
	regions, ok := childByKey(root, "regions")
	require.True(t, ok)
	asia, ok := childByKey(regions, "asia")
	require.True(t, ok)
	countries, ok := childByKey(asia, "countries")
	require.True(t, ok)
	jp, ok := childByKey(countries, "0")
	require.True(t, ok)
	assert.Equal(t, "jp", jp)

	_, ok = childByKey(root, "missing")
	assert.False(t, ok)
	_, ok = childByKey(countries, "9")
	assert.False(t, ok)
	_, ok = childByKey("scalar", "x")
	assert.False(t, ok)
}

func TestDescendAndAscendDocument(t *testing.T) {
	m := NewModel(docRoot(), true)
	require.Len(t, m.rows, 2)

	// cursor starts at 0 = "regions"
	m.descend()
	assert.Equal(t, "regions", m.Path().String())
	require.Len(t, m.rows, 1)

	m.descend()
	assert.Equal(t, "regions.asia", m.Path().String())

	m.ascend()
	assert.Equal(t, "regions", m.Path().String())
	m.ascend()
	assert.True(t, m.Path().IsEmpty())
	// ascending at root is a no-op
	m.ascend()
	assert.True(t, m.Path().IsEmpty())
}

func TestDescendScene(t *testing.T) {
	m := NewModel(instanceRoot(t), true)
	m.descend()
	assert.Equal(t, "Car", m.Path().String())
	cur, ok := m.CurrentNode().(*scene.Instance)
	require.True(t, ok)
	assert.Equal(t, "Car", cur.Name())

	m.descend()
	assert.Equal(t, "Car.Wheel", m.Path().String())

	// Wheel has no children, so there is nothing to descend into
	m.descend()
	assert.Equal(t, "Car.Wheel", m.Path().String())
}

func TestViewShowsPathAndHelp(t *testing.T) {
	m := NewModel(docRoot(), true)
	v := m.View()
	assert.True(t, v.AltScreen)

	frame := m.render()
	assert.True(t, strings.Contains(frame, "(root)"))
	assert.True(t, strings.Contains(frame, "enter: descend"))

	m.descend()
	assert.True(t, strings.Contains(m.render(), "regions"))
}

func TestFilterNarrowsRows(t *testing.T) {
	m := NewModel(docRoot(), true)
	m.filter = "ver"
	m.reload()
	require.Len(t, m.rows, 1)
	assert.Equal(t, "version", m.rows[0].Key)

	m.filter = ""
	m.reload()
	assert.Len(t, m.rows, 2)
}
