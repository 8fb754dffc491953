package diagnostic

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiagnostics(t *testing.T) {
	t.Parallel()

	var d Diagnostics

	assert.True(t, d.IsValid())
	require.NoError(t, d.Error())

	d.AddInfo("flattened", "object flattened", "doc", "user")
	d.AddWarning("alias_shadowed", "alias redefined", "doc", "heading")
	assert.True(t, d.IsValid())

	d.AddError("unknown_kind", `unknown field kind "geo"`, "doc", "location")
	d.AddErrorWithSuggestions("alias_target_not_found", `alias target "titel" not found`, "doc", "heading",
		[]string{"title"})

	assert.True(t, d.HasErrors())
	assert.Equal(t, 4, d.Len())

	all := d.All()
	require.Len(t, all, 4)
	assert.Equal(t, DiagnosticError, all[0].Severity)
	assert.Equal(t, DiagnosticWarning, all[2].Severity)
	assert.Equal(t, DiagnosticInfo, all[3].Severity)

	err := d.Error()
	require.Error(t, err)
	assert.Equal(t,
		`[doc] location: [unknown_kind] unknown field kind "geo"; `+
			`[doc] heading: [alias_target_not_found] alias target "titel" not found (did you mean title?)`,
		err.Error())
}

func TestDiagnosticsMerge(t *testing.T) {
	t.Parallel()

	var a, b Diagnostics

	a.AddError("x", "first", "", "")
	b.AddError("y", "second", "", "")
	b.AddWarning("z", "third", "", "")

	a.Merge(b)

	assert.Len(t, a.Errors, 2)
	assert.Len(t, a.Warnings, 1)
	assert.Equal(t, "[x] first; [y] second", a.Error().Error())
}

func TestSeverityString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "info", DiagnosticInfo.String())
	assert.Equal(t, "warning", DiagnosticWarning.String())
	assert.Equal(t, "error", DiagnosticError.String())
	assert.Equal(t, "unknown", DiagnosticSeverity(42).String())
}
