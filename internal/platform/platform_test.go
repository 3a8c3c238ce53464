package platform_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/seojun-dev/denv/internal/platform"
)

func TestDetect_AlwaysReportsOS(t *testing.T) {
	t.Parallel()

	info := platform.Detect()
	assert.NotEmpty(t, info.OS)
}

func TestIsLinux(t *testing.T) {
	t.Parallel()

	assert.True(t, platform.Info{OS: "linux"}.IsLinux())
	assert.False(t, platform.Info{OS: "darwin"}.IsLinux())
	assert.False(t, platform.Info{OS: "windows"}.IsLinux())
}
