package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func withVersion(t *testing.T, ver, commit, built string) {
	t.Helper()
	oldV, oldC, oldB := Version, Commit, BuildTime
	Version, Commit, BuildTime = ver, commit, built
	t.Cleanup(func() { Version, Commit, BuildTime = oldV, oldC, oldB })
}

func fakeSettings(m map[string]string) buildSetting {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func TestFormatVersion(t *testing.T) {
	tests := []struct {
		name, ver, commit, built, want string
	}{
		{"development", "", "", "", "0.0.0-dev (development)"},
		{"commit only", "1.2.3", "abc1234", "", "1.2.3 (commit: abc1234)"},
		{"full", "1.2.3", "abc1234", "2025-10-23T10:20:30Z", "1.2.3 (commit: abc1234, built at: 2025-10-23T10:20:30Z)"},
		{"no commit", "1.2.3", "", "2025-10-23T10:20:30Z", "1.2.3 (commit: development, built at: 2025-10-23T10:20:30Z)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			withVersion(t, tt.ver, tt.commit, tt.built)
			assert.Equal(t, tt.want, FormatVersion())
		})
	}
}

func TestApplyFromBuildSettings(t *testing.T) {
	withVersion(t, devVersion, "", "")

	apply(fakeSettings(map[string]string{
		"vcs.revision": "0123456789abcdef",
		"vcs.time":     "2025-03-01T12:00:00+01:00",
		"vcs.tag":      "v2.0.1",
		"vcs.modified": "true",
	}))

	assert.Equal(t, "2.0.1-dirty", Version)
	assert.Equal(t, "0123456", Commit)
	assert.Equal(t, "2025-03-01T11:00:00Z", BuildTime)
}

func TestApplyKeepsLdflags(t *testing.T) {
	withVersion(t, "3.1.0", "fedcba9", "")

	apply(fakeSettings(map[string]string{"vcs.tag": "v9.9.9", "vcs.revision": "0123456789"}))

	assert.Equal(t, "3.1.0", Version)
	assert.Equal(t, "fedcba9", Commit)
}
