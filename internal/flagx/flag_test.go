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
			name:    "separate value form",
			args:    []string{"-a", "https://api.example.com", "-x", "junk"},
			allowed: []string{"-a"},
			want:    []string{"-a", "https://api.example.com"},
		},
		{
			name:    "equals form",
			args:    []string{"--mode=production", "-other=1"},
			allowed: []string{"--mode"},
			want:    []string{"--mode=production"},
		},
		{
			name:    "flag followed by another flag keeps no value",
			args:    []string{"-a", "-m", "production"},
			allowed: []string{"-a", "-m"},
			want:    []string{"-a", "-m", "production"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-a", "1", "-b", "2"},
			allowed: nil,
			want:    []string{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}
