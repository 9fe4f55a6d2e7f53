package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetVersion(t *testing.T) {
	defer func(version, commit string) {
		Version, Commit = version, commit
	}(Version, Commit)

	Version, Commit = "1.2.0", ""
	assert.Equal(t, "1.2.0", GetVersion())

	Commit = "abc1234"
	assert.Equal(t, "1.2.0 (abc1234)", GetVersion())
}
