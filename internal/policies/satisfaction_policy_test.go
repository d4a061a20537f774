package policies

import (
	"fmt"
	"testing"

	"github.com/ZanzyTHEbar/errbuilder-go"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"depextract/internal/types"
)

func TestIsSatisfiedTruthTable(t *testing.T) {
	cases := []struct {
		severity  types.Severity
		installed bool
		inRange   bool
		want      bool
	}{
		{types.SeverityRequired, false, false, false},
		{types.SeverityRequired, false, true, false},
		{types.SeverityRequired, true, false, false},
		{types.SeverityRequired, true, true, true},
		{types.SeverityOptional, false, false, true},
		{types.SeverityOptional, false, true, true},
		{types.SeverityOptional, true, false, false},
		{types.SeverityOptional, true, true, true},
		{types.SeverityDiscouraged, false, false, true},
		{types.SeverityDiscouraged, false, true, true},
		{types.SeverityDiscouraged, true, false, true},
		{types.SeverityDiscouraged, true, true, false},
		{types.SeverityIncompatible, false, false, true},
		{types.SeverityIncompatible, false, true, true},
		{types.SeverityIncompatible, true, false, true},
		{types.SeverityIncompatible, true, true, false},
	}
	for _, tc := range cases {
		name := fmt.Sprintf("%s/installed=%t/inRange=%t", tc.severity, tc.installed, tc.inRange)
		t.Run(name, func(t *testing.T) {
			if diff := cmp.Diff(tc.want, IsSatisfied(tc.severity, tc.installed, tc.inRange)); diff != "" {
				t.Fatalf("unexpected satisfaction (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseSeverity(t *testing.T) {
	for token, want := range map[string]types.Severity{
		"required":     types.SeverityRequired,
		"OPTIONAL":     types.SeverityOptional,
		" Discouraged": types.SeverityDiscouraged,
		"incompatible": types.SeverityIncompatible,
	} {
		got, err := ParseSeverity(token)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseSeverity("sometimes")
	require.Error(t, err)
	assert.Equal(t, errbuilder.CodeInvalidArgument, errbuilder.CodeOf(err))
}

func TestSeverityFromMandatory(t *testing.T) {
	assert.Equal(t, types.SeverityRequired, SeverityFromMandatory(true))
	assert.Equal(t, types.SeverityOptional, SeverityFromMandatory(false))
}

func TestRetain(t *testing.T) {
	satisfied := types.SatisfactionResult{Satisfied: true}
	unsatisfied := types.SatisfactionResult{}
	placeholder := types.SatisfactionResult{Satisfied: true, Placeholder: true}

	onlySat := types.ResultFilter{OnlySatisfied: true}
	onlyUnsat := types.ResultFilter{OnlyUnsatisfied: true}
	both := types.ResultFilter{OnlySatisfied: true, OnlyUnsatisfied: true}

	assert.True(t, Retain(types.ResultFilter{}, []types.SatisfactionResult{unsatisfied}))
	assert.True(t, Retain(onlySat, []types.SatisfactionResult{satisfied, placeholder}))
	assert.False(t, Retain(onlySat, []types.SatisfactionResult{satisfied, unsatisfied}))
	assert.True(t, Retain(onlyUnsat, []types.SatisfactionResult{satisfied, unsatisfied}))
	assert.False(t, Retain(onlyUnsat, []types.SatisfactionResult{placeholder}))
	assert.False(t, Retain(both, []types.SatisfactionResult{satisfied}))
	assert.False(t, Retain(both, []types.SatisfactionResult{unsatisfied}))
}
