package editor

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fakeOpener(env map[string]string, onPath ...string) *Opener {
	o := NewOpener()
	o.getenv = func(k string) string { return env[k] }
	o.look = func(name string) (string, error) {
		for _, p := range onPath {
			if p == name {
				return "/usr/bin/" + name, nil
			}
		}
		return "", errors.New("not found")
	}
	return o
}

func TestFindEditor(t *testing.T) {
	tests := []struct {
		name   string
		env    map[string]string
		onPath []string
		want   string
	}{
		{"editor wins", map[string]string{"EDITOR": "hx", "VISUAL": "code"}, []string{"vim"}, "hx"},
		{"visual next", map[string]string{"VISUAL": "code"}, []string{"vim"}, "code"},
		{"path fallback order", nil, []string{"nano", "vi"}, "/usr/bin/vi"},
		{"nothing", nil, nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, fakeOpener(tt.env, tt.onPath...).findEditor())
		})
	}
}

func TestCommand(t *testing.T) {
	o := fakeOpener(map[string]string{"EDITOR": "hx"})

	cmd, err := o.Command(context.Background(), "/tmp/seed.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"hx", "/tmp/seed.yaml"}, cmd.Args)
}

func TestEdit_NoEditor(t *testing.T) {
	err := fakeOpener(nil).Edit(context.Background(), "/tmp/seed.yaml")
	assert.ErrorContains(t, err, "no editor found")
}
