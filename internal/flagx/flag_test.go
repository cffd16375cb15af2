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
		{
			name:    "separate value",
			args:    []string{"-a", "http://api", "-d", "session.db"},
			allowed: []string{"-a"},
			want:    []string{"-a", "http://api"},
		},
		{
			name:    "equals form",
			args:    []string{"--config=alt.json", "-a", "http://api"},
			allowed: []string{"-c", "--config"},
			want:    []string{"--config=alt.json"},
		},
		{
			name:    "order preserved",
			args:    []string{"-v", "debug", "-a", "x", "-l=log.json"},
			allowed: []string{"-v", "-l"},
			want:    []string{"-v", "debug", "-l=log.json"},
		},
		{
			name:    "unknown flags ignored",
			args:    []string{"-x", "1", "--y=2", "positional"},
			allowed: []string{"-c"},
			want:    []string{},
		},
		{
			name:    "trailing flag kept without value",
			args:    []string{"-e"},
			allowed: []string{"-e"},
			want:    []string{"-e"},
		},
		{
			name:    "next flag is not a value",
			args:    []string{"-e", "-a", "x"},
			allowed: []string{"-e"},
			want:    []string{"-e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	assert.Equal(t, "a.json", ConfigFileFlag([]string{"-a", "http://x", "-c", "a.json"}))
	assert.Equal(t, "b.json", ConfigFileFlag([]string{"-config", "b.json"}))
	assert.Equal(t, "c.json", ConfigFileFlag([]string{"-config=c.json", "-v", "debug"}))
	assert.Equal(t, "", ConfigFileFlag([]string{"-a", "http://x"}))
}
