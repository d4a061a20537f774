package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseKnownVersions(t *testing.T) {
	for _, raw := range []string{"1.2.0", "1.2", "v3.0.1", "21.1.0-beta", "1.20.1-47.1.0", "0.5.2+mc1.20"} {
		v := Parse(raw)
		assert.True(t, v.Known(), "expected %q to parse", raw)
		assert.Equal(t, raw, v.String())
	}
}

func TestCompareMavenOrdering(t *testing.T) {
	tests := []struct {
		a    string
		b    string
		want int
	}{
		{"15.2.0.26", "15.2.0.27", -1},
		{"1.0.0.9", "1.0.0.5", 1},
		{"1.2.3.4", "1.2.3", 1},
		{"1.20.1-47.1.3", "1.20.1", 1},
		{"1.20.1-47.1.3", "1.20.2", -1},
		{"1.0-SNAPSHOT", "1.0", -1},
		{"1.0-beta", "1.0", -1},
		{"1.0-alpha", "1.0-beta", -1},
		{"1.0-rc1", "1.0", -1},
		{"1.0.0", "1", 0},
		{"v2.0", "2.0", 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"_"+tt.b, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(Parse(tt.a), Parse(tt.b)))
			assert.Equal(t, -tt.want, Compare(Parse(tt.b), Parse(tt.a)))
		})
	}
}

func TestZeroVersionIsUnknown(t *testing.T) {
	var v Version
	assert.False(t, v.Known())
	assert.Equal(t, -1, Compare(v, Parse("0.0.1")))
}

func TestParseUnknown(t *testing.T) {
	for _, raw := range []string{"", "NONE", "release", "${file.jarVersion}"} {
		v := Parse(raw)
		assert.False(t, v.Known(), "expected %q to be unknown", raw)
		assert.False(t, v.IsInvalid())
	}
}

func TestInvalidRendersDistinctly(t *testing.T) {
	v := Invalid()
	assert.True(t, v.IsInvalid())
	assert.False(t, v.Known())
	assert.Equal(t, InvalidLabel, v.String())
}

func TestCompare(t *testing.T) {
	assert.Equal(t, -1, Compare(Parse("1.0.0"), Parse("2.0.0")))
	assert.Equal(t, 0, Compare(Parse("1.0"), Parse("1.0.0")))
	assert.Equal(t, 1, Compare(Parse("2.0.0"), Parse("1.9.9")))
	assert.Equal(t, -1, Compare(Parse("1.0.0-beta"), Parse("1.0.0")))
}

func TestSentinelsSortBelowKnownVersions(t *testing.T) {
	low := Parse("0.0.1")
	assert.Equal(t, -1, Compare(Unknown("NONE"), low))
	assert.Equal(t, -1, Compare(Invalid(), low))
	assert.Equal(t, 1, Compare(low, Invalid()))
	assert.Equal(t, 0, Compare(Invalid(), Unknown("NONE")))
}
