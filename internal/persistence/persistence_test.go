package persistence

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/markusressel/fanctrl/internal/control_loop"
	"github.com/markusressel/fanctrl/internal/statelog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var start = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func createRecord(minutes int) statelog.Record {
	return statelog.Record{
		Timestamp:     start.Add(time.Duration(minutes) * time.Minute),
		DutyCycle:     0.15,
		Intensity:     control_loop.Percent(50),
		Temperature:   40 + float64(minutes),
		ActiveProfile: "Max",
	}
}

func createPersistence(t *testing.T, maxRecords int) Persistence {
	p := NewPersistence(filepath.Join(t.TempDir(), "db", "fanctrl.db"), maxRecords)
	require.NoError(t, p.Init())
	return p
}

func TestPersistence_Init_CreatesDirectory(t *testing.T) {
	// GIVEN
	dbPath := filepath.Join(t.TempDir(), "a", "b", "fanctrl.db")
	p := NewPersistence(dbPath, 10)

	// WHEN
	err := p.Init()

	// THEN
	assert.NoError(t, err)
	assert.DirExists(t, filepath.Dir(dbPath))
}

func TestPersistence_LoadStateRecords_Empty(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)

	// WHEN
	records, err := p.LoadStateRecords(0)

	// THEN
	assert.NoError(t, err)
	assert.Empty(t, records)
}

func TestPersistence_SaveAndLoad(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)
	off := createRecord(1)
	off.Intensity = control_loop.Off()
	off.DutyCycle = 0

	// WHEN
	require.NoError(t, p.SaveStateRecord(createRecord(0)))
	require.NoError(t, p.Record(off))
	records, err := p.LoadStateRecords(0)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []statelog.Record{createRecord(0), off}, records)
}

func TestPersistence_SameTimestamp(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)
	running := createRecord(5)
	stopped := createRecord(5)
	stopped.Intensity = control_loop.Off()
	stopped.DutyCycle = 0

	// WHEN
	require.NoError(t, p.SaveStateRecord(running))
	require.NoError(t, p.SaveStateRecord(stopped))
	records, err := p.LoadStateRecords(0)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []statelog.Record{running, stopped}, records)
}

func TestPersistence_LoadStateRecords_Limit(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)
	for i := 0; i < 5; i++ {
		require.NoError(t, p.SaveStateRecord(createRecord(i)))
	}

	// WHEN
	records, err := p.LoadStateRecords(2)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []statelog.Record{createRecord(3), createRecord(4)}, records)
}

func TestPersistence_DropsOldestRecords(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 3)

	// WHEN
	for i := 0; i < 5; i++ {
		require.NoError(t, p.SaveStateRecord(createRecord(i)))
	}
	records, err := p.LoadStateRecords(0)

	// THEN
	require.NoError(t, err)
	assert.Equal(t, []statelog.Record{createRecord(2), createRecord(3), createRecord(4)}, records)
}

func TestPersistence_DeleteStateRecords(t *testing.T) {
	// GIVEN
	p := createPersistence(t, 10)
	require.NoError(t, p.SaveStateRecord(createRecord(0)))

	// WHEN
	err := p.DeleteStateRecords()

	// THEN
	require.NoError(t, err)
	records, err := p.LoadStateRecords(0)
	assert.NoError(t, err)
	assert.Empty(t, records)
}
