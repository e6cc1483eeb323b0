package sysinfo

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mdcs-protocol/mdcs-go/pkg/model"
)

const sampleMeminfo = `MemTotal:       16318540 kB
MemFree:         1203348 kB
MemAvailable:    9771204 kB
Buffers:          502612 kB
Cached:          7837156 kB
HugePages_Total:       0
`

func TestParseMeminfo(t *testing.T) {
	m, err := ParseMeminfo(strings.NewReader(sampleMeminfo))
	require.NoError(t, err)

	assert.Equal(t, int64(16318540*1024), m.Total)
	assert.Equal(t, int64(1203348*1024), m.Free)
	assert.Equal(t, int64(9771204*1024), m.Available)
	assert.Equal(t, int64((16318540-9771204)*1024), m.Used())
}

func TestParseMeminfoWithoutAvailable(t *testing.T) {
	m, err := ParseMeminfo(strings.NewReader("MemTotal: 100 kB\nMemFree: 10 kB\nBuffers: 5 kB\nCached: 20 kB\n"))
	require.NoError(t, err)
	assert.Equal(t, int64(35*1024), m.Available)
}

func TestParseMeminfoErrors(t *testing.T) {
	_, err := ParseMeminfo(strings.NewReader("MemFree: 10 kB\n"))
	assert.ErrorIs(t, err, ErrMeminfoIncomplete)

	_, err = ParseMeminfo(strings.NewReader("MemTotal: lots kB\n"))
	assert.Error(t, err)
}

func writeMeminfo(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "meminfo")
	require.NoError(t, os.WriteFile(path, []byte(sampleMeminfo), 0o600))
	return path
}

func TestRegister(t *testing.T) {
	device := model.NewDevice("host-test", nil)
	require.NoError(t, RegisterWithConfig(device, Config{
		MeminfoPath: writeMeminfo(t),
		Hostname:    func() (string, error) { return "lab-01", nil },
	}))

	assert.Equal(t, 5, device.AttributeCount())

	tests := []struct {
		path string
		want any
	}{
		{PathMemoryTotal, int64(16318540 * 1024)},
		{PathMemoryAvailable, int64(9771204 * 1024)},
		{PathMemoryUsed, int64((16318540 - 9771204) * 1024)},
		{PathMemoryFree, int64(1203348 * 1024)},
		{PathHostname, "lab-01"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			attr := device.Attribute(tt.path)
			require.NotNil(t, attr)
			assert.True(t, attr.Readable())
			assert.False(t, attr.Writable())

			v, err := attr.Read(t.Context())
			require.NoError(t, err)
			assert.Equal(t, tt.want, v)

			assert.ErrorIs(t, attr.Write(t.Context(), v), model.ErrNotImplemented)
		})
	}
}

func TestRegisterReadErrors(t *testing.T) {
	device := model.NewDevice("host-test", nil)
	require.NoError(t, RegisterWithConfig(device, Config{
		MeminfoPath: filepath.Join(t.TempDir(), "missing"),
		Hostname:    func() (string, error) { return "", errors.New("no hostname") },
	}))

	_, err := device.Attribute(PathMemoryTotal).Read(t.Context())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = device.Attribute(PathHostname).Read(t.Context())
	assert.EqualError(t, err, "no hostname")
}

func TestRegisterTwiceFails(t *testing.T) {
	device := model.NewDevice("host-test", nil)
	require.NoError(t, Register(device))
	assert.ErrorIs(t, Register(device), model.ErrDuplicatePath)
}
