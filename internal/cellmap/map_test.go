package cellmap

import (
	"testing"

	"openlife/internal/core"
	"openlife/pkg/topology"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMapKnowsStatusOfItsCells(t *testing.T) {
	m := New()
	p := topology.Point2D{X: 3, Y: 4}

	s, ok := m.Ask(p)
	assert.False(t, ok, "fresh map must not know %v", p)
	assert.Equal(t, core.Unknown, s)

	m.SetAlive(p)
	s, ok = m.Ask(p)
	require.True(t, ok)
	assert.Equal(t, core.Alive, s)

	m.SetDead(p)
	s, ok = m.Ask(p)
	require.True(t, ok)
	assert.Equal(t, core.Dead, s)

	m.SetDead(p)
	s, _ = m.Ask(p)
	assert.Equal(t, core.Dead, s)
	assert.Equal(t, 1, m.Len())
}

func TestMapKeysByValue(t *testing.T) {
	m := New()
	m.SetAlive(topology.Point3D{X: 1, Y: 2, Z: 3})

	s, ok := m.Ask(topology.Point3D{X: 1, Y: 2, Z: 3})
	require.True(t, ok)
	assert.Equal(t, core.Alive, s)

	_, ok = m.Ask(topology.Point2D{X: 1, Y: 2})
	assert.False(t, ok, "different position types never collide")
}

func TestSetStateDispatch(t *testing.T) {
	m := New()
	p := topology.Point2D{}

	require.NoError(t, m.SetState(p, core.Alive))
	s, _ := m.Ask(p)
	assert.Equal(t, core.Alive, s)

	require.NoError(t, m.SetState(p, core.Dead))
	s, _ = m.Ask(p)
	assert.Equal(t, core.Dead, s)
}

func TestSetStateRejectsUnknown(t *testing.T) {
	m := New()
	p := topology.Point2D{X: 9}

	assert.ErrorIs(t, m.SetState(p, core.Unknown), core.ErrUnknownState)
	assert.ErrorIs(t, m.SetState(p, core.CellState(99)), core.ErrUnknownState)

	_, ok := m.Ask(p)
	assert.False(t, ok, "rejected state must not be written")
	assert.Zero(t, m.Len())
}

func TestPopulation(t *testing.T) {
	m := New()
	m.SetAlive(topology.Point2D{X: 0})
	m.SetAlive(topology.Point2D{X: 1})
	m.SetDead(topology.Point2D{X: 2})

	assert.Equal(t, 2, m.Population())
	assert.Equal(t, 3, m.Len())

	m.SetDead(topology.Point2D{X: 0})
	assert.Equal(t, 1, m.Population())
}

func TestNilMapRejectsWrites(t *testing.T) {
	var m *Map
	assert.ErrorIs(t, m.SetState(topology.Point2D{}, core.Alive), core.ErrNilCollaborator)
}

func TestSnapshotIsDetached(t *testing.T) {
	m := New()
	p := topology.Point2D{X: 5}
	m.SetAlive(p)

	snap := m.Snapshot()
	m.SetDead(p)

	s, ok := snap.Ask(p)
	require.True(t, ok)
	assert.Equal(t, core.Alive, s)

	_, ok = snap.Ask(topology.Point2D{X: 6})
	assert.False(t, ok)
}
