package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	clientFlags := []string{"-a", "-d", "-t", "-m", "-l"}

	tests := []struct {
		name  string
		args  []string
		known []string
		want  []string
	}{
		{
			name:  "separate value",
			args:  []string{"-a", "https://api.example", "-c", "cfg.json"},
			known: clientFlags,
			want:  []string{"-a", "https://api.example"},
		},
		{
			name:  "equals form",
			args:  []string{"-d=/tmp/session.db", "-x", "1"},
			known: clientFlags,
			want:  []string{"-d=/tmp/session.db"},
		},
		{
			name:  "equals form keeps dash-prefixed value",
			args:  []string{"-config=--odd.json"},
			known: []string{"-config"},
			want:  []string{"-config=--odd.json"},
		},
		{
			name:  "unknown flags and positionals dropped",
			args:  []string{"-x", "1", "--y=2", "positional"},
			known: clientFlags,
			want:  []string{},
		},
		{
			name:  "trailing flag without value",
			args:  []string{"-t"},
			known: clientFlags,
			want:  []string{"-t"},
		},
		{
			name:  "next flag is not taken as value",
			args:  []string{"-m", "-l", "debug"},
			known: clientFlags,
			want:  []string{"-m", "-l", "debug"},
		},
		{
			name:  "order and repeats preserved",
			args:  []string{"-a", "one", "-t", "5", "-a", "two"},
			known: clientFlags,
			want:  []string{"-a", "one", "-t", "5", "-a", "two"},
		},
		{
			name:  "empty input",
			args:  nil,
			known: clientFlags,
			want:  []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.known))
		})
	}
}

func TestJsonConfigFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	t.Run("short form", func(t *testing.T) {
		os.Args = []string{"jobhub", "-c", "/etc/jobhub.json", "-a", "x"}
		assert.Equal(t, "/etc/jobhub.json", JsonConfigFlags())
	})

	t.Run("long form", func(t *testing.T) {
		os.Args = []string{"jobhub", "-config=/etc/jobhub.json"}
		assert.Equal(t, "/etc/jobhub.json", JsonConfigFlags())
	})

	t.Run("absent", func(t *testing.T) {
		os.Args = []string{"jobhub", "-d", "session.db"}
		assert.Empty(t, JsonConfigFlags())
	})

	t.Run("last one wins", func(t *testing.T) {
		os.Args = []string{"jobhub", "-c", "a.json", "-config", "b.json"}
		assert.Equal(t, "b.json", JsonConfigFlags())
	})
}
