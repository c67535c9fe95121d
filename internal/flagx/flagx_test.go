package flagx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{"separate value", []string{"-c", "conf.json", "-a", "localhost"}, []string{"-c"}, []string{"-c", "conf.json"}},
		{"equals form", []string{"--config=alt.json", "-a", "x"}, []string{"--config"}, []string{"--config=alt.json"}},
		{"unknown flags dropped", []string{"-x", "1", "-y"}, []string{"-c"}, []string{}},
		{"trailing flag without value", []string{"-c"}, []string{"-c"}, []string{"-c"}},
		{"next flag is not a value", []string{"-c", "-v"}, []string{"-c"}, []string{"-c"}},
		{"equals value may start with a dash", []string{"--config=--weird.json"}, []string{"--config"}, []string{"--config=--weird.json"}},
		{"order preserved", []string{"-a", ":1", "-o", "out", "-c", "c.json"}, []string{"-c", "-a"}, []string{"-a", ":1", "-c", "c.json"}},
		{"repeats kept", []string{"-c", "1.json", "-c", "2.json"}, []string{"-c"}, []string{"-c", "1.json", "-c", "2.json"}},
		{"empty", []string{}, []string{"-c"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	assert.Equal(t, "/p/short.json", JsonConfigFlags([]string{"-c", "/p/short.json"}))
	assert.Equal(t, "/p/long.json", JsonConfigFlags([]string{"-a", ":1", "-config", "/p/long.json"}))
	assert.Equal(t, "/p/eq.json", JsonConfigFlags([]string{"-config=/p/eq.json"}))
	assert.Equal(t, "/p/2.json", JsonConfigFlags([]string{"-c", "/p/1.json", "-config", "/p/2.json"}))
	assert.Empty(t, JsonConfigFlags([]string{"-x", "1"}))
	assert.Empty(t, JsonConfigFlags(nil))
}
