package tr262

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cwmp-model/cwmp-go/pkg/model"
	"github.com/cwmp-model/cwmp-go/pkg/types"
)

func TestGPSDefaults(t *testing.T) {
	g := NewGPS()

	onBoot, ok := g.GetScanOnBoot()
	require.True(t, ok)
	assert.True(t, onBoot)

	periodic, ok := g.GetScanPeriodically()
	require.True(t, ok)
	assert.False(t, periodic)

	timeout, ok := g.GetScanTimeout()
	require.True(t, ok, "a default of 0 is still a value")
	assert.Equal(t, int64(0), timeout)

	_, ok = g.GetLastScanTime()
	assert.False(t, ok)
}

func TestGPSMetadata(t *testing.T) {
	meta := NewGPS().ObjectMetadata()
	assert.Equal(t, model.AccessReadOnly, meta.Access)
	assert.False(t, meta.IsTable())

	lat, ok := meta.Parameter("LockedLatitude")
	require.True(t, ok)
	assert.Equal(t, int64(-90000000), lat.MinValue)
	assert.Equal(t, int64(90000000), lat.MaxValue)
	assert.Equal(t, model.AccessReadOnly, lat.Access)

	timeout, ok := meta.Parameter("ScanTimeout")
	require.True(t, ok)
	assert.Equal(t, "seconds", timeout.Unit)
}

func TestPerfMgmtConfigUnique(t *testing.T) {
	meta := NewPerfMgmtConfig().ObjectMetadata()
	assert.Equal(t, [][]string{
		{"URL", "PeriodicUploadInterval", "PeriodicUploadTime"},
		{"Alias"},
	}, meta.Unique)

	interval, ok := meta.Parameter("PeriodicUploadInterval")
	require.True(t, ok)
	assert.Equal(t, int64(1), interval.MinValue)
	assert.Nil(t, interval.MaxValue)
}

func TestPerfMgmtTable(t *testing.T) {
	at := types.NewDateTime(time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC))
	pm := NewPerfMgmt().
		AddConfig(NewPerfMgmtConfig().WithURL("https://pm.example.net/upload").WithPeriodicUploadInterval(900).WithPeriodicUploadTime(at)).
		AddConfig(NewPerfMgmtConfig().WithAlias("backup")).
		WithConfigNumberOfEntries(2)

	cfgs := pm.GetConfig()
	require.Len(t, cfgs, 2)

	url, ok := cfgs[0].GetURL()
	require.True(t, ok)
	assert.Equal(t, "https://pm.example.net/upload", url)

	got, ok := cfgs[0].GetPeriodicUploadTime()
	require.True(t, ok)
	assert.True(t, got.Time().Equal(at.Time()))

	alias, _ := cfgs[1].GetAlias()
	assert.Equal(t, "backup", alias)

	pm.SetConfig(nil)
	assert.Empty(t, pm.GetConfig())
}
