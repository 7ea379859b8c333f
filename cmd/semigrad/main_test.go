package main

import (
	"bytes"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseVarFlags(t *testing.T) {
	tests := []struct {
		name    string
		flags   []string
		want    map[string]float64
		wantErr bool
	}{
		{name: "empty", flags: nil, want: map[string]float64{}},
		{name: "single", flags: []string{"x=2"}, want: map[string]float64{"x": 2}},
		{name: "several", flags: []string{"a=2", "b=-3.5"}, want: map[string]float64{"a": 2, "b": -3.5}},
		{name: "missing equals", flags: []string{"x"}, wantErr: true},
		{name: "empty name", flags: []string{"=2"}, wantErr: true},
		{name: "bad number", flags: []string{"x=two"}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := parseVarFlags(tt.flags)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestEvalCmd(t *testing.T) {
	cmd := newEvalCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"(a + b) * a", "--var", "a=2", "--var", "b=3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "10\n", buf.String())
}

func TestGradCmd(t *testing.T) {
	cmd := newGradCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetArgs([]string{"(a + b) * a", "--var", "a=2", "--var", "b=3"})

	require.NoError(t, cmd.Execute())
	assert.Equal(t, "value = 10\nd/da  = 7\nd/db  = 2\n", buf.String())
}

func TestGradCmd_UnboundVariable(t *testing.T) {
	cmd := newGradCmd()
	cmd.SetOut(io.Discard)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"x + 1"})

	assert.Error(t, cmd.Execute())
}

func TestMinimizeCmd(t *testing.T) {
	cmd := newMinimizeCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs([]string{"(x - 3) * (x - 3)", "--var", "x=0", "--rate", "0.1", "--steps", "200"})

	require.NoError(t, cmd.Execute())
	assert.Contains(t, buf.String(), "x     = 3")
}
