package manifest

import (
	"testing"

	"pagepack/lib/discover"

	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestTechnicalId(t *testing.T) {
	require.Equal(t, "my-cool-site-css", TechnicalId("My Cool Site!", discover.Style))
	require.Equal(t, "my-cool-site-js", TechnicalId("My Cool Site!", discover.Script))
	// deterministic
	require.Equal(t,
		TechnicalId("My Cool Site!", discover.Style),
		TechnicalId("My Cool Site!", discover.Style))
}

func TestEncodeStyle(t *testing.T) {
	m := Build("My Cool Site", discover.Style)
	out, err := m.Encode()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))

	assemble, ok := doc["assemble"].([]any)
	require.True(t, ok)
	require.Len(t, assemble, 1)
	require.Equal(t, map[string]any{"from": "assets", "into": "static"}, assemble[0])

	entry, ok := doc["my-cool-site-css"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "My Cool Site", entry["name"])
	require.Equal(t, "globalCSS", entry["type"])
	require.Equal(t, "global.css", entry["url"])
	require.NotContains(t, entry, "scriptElementAttributes")
}

func TestEncodeScript(t *testing.T) {
	m := Build("My Cool Site", discover.Script)
	out, err := m.Encode()
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, yaml.Unmarshal(out, &doc))

	entry, ok := doc["my-cool-site-js"].(map[string]any)
	require.True(t, ok)
	require.Equal(t, "globalJS", entry["type"])
	require.Equal(t, "global.js", entry["url"])
	require.Equal(t, map[string]any{
		"async":            true,
		"data-attribute":   "value",
		"data-senna-track": "permanent",
		"fetchpriority":    "low",
	}, entry["scriptElementAttributes"])
}
