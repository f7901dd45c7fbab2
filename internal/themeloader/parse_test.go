package themeloader

import (
	"io"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mesh-intelligence/iconlookup/pkg/types"
)

const adwaitaIndex = `[Icon Theme]
Name=Adwaita
Comment=The Only One
Comment[de]=Das Einzige
Example=folder
Inherits=hicolor, gnome
Hidden=false

# Directory list
Directories=16x16/apps,48x48/apps,scalable/apps,missing/apps
ScaledDirectories=16x16@2/apps

[16x16/apps]
Context=Applications
Size=16
Type=Fixed

[16x16@2/apps]
Context=Applications
Size=16
Scale=2
Type=Fixed

[48x48/apps]
Size=48

[scalable/apps]
Context=Applications
Size=128
MinSize=8
MaxSize=512
Type=Scalable
`

var discard = log.New(io.Discard)

func TestParse(t *testing.T) {
	theme, parents, err := Parse("Adwaita", []byte(adwaitaIndex), discard)
	require.NoError(t, err)

	assert.Equal(t, "Adwaita", theme.Name)
	assert.Equal(t, "Adwaita", theme.DisplayName)
	assert.Equal(t, "The Only One", theme.Comment)
	assert.Equal(t, "folder", theme.Example)
	assert.False(t, theme.Hidden)
	assert.Empty(t, theme.Inherits, "parents are attached by the loader")
	assert.Equal(t, []string{"hicolor", "gnome"}, parents)

	require.Len(t, theme.Directories, 4)

	fixed := theme.Directories[0]
	assert.Equal(t, "16x16/apps", fixed.Name)
	assert.Equal(t, types.Fixed, fixed.Type)
	assert.Equal(t, "Applications", fixed.Context)
	assert.Nil(t, fixed.Scale)

	threshold := theme.Directories[1]
	assert.Equal(t, "48x48/apps", threshold.Name)
	assert.Equal(t, types.Threshold, threshold.Type, "no Type key means Threshold")
	assert.Equal(t, 2, threshold.EffectiveThreshold())

	scalable := theme.Directories[2]
	assert.Equal(t, types.Scalable, scalable.Type)
	assert.Equal(t, 8, scalable.EffectiveMinSize())
	assert.Equal(t, 512, scalable.EffectiveMaxSize())

	scaled := theme.Directories[3]
	assert.Equal(t, "16x16@2/apps", scaled.Name)
	assert.Equal(t, 2, scaled.EffectiveScale())
}

func TestParse_SkipsInvalidDirectories(t *testing.T) {
	index := `[Icon Theme]
Name=Broken
Directories=nosize,badtype,badscale,negative,ok

[nosize]
Type=Fixed

[badtype]
Size=16
Type=Huge

[badscale]
Size=16
Scale=two

[negative]
Size=-4

[ok]
Size=22
`
	theme, parents, err := Parse("Broken", []byte(index), discard)
	require.NoError(t, err)
	assert.Empty(t, parents)
	require.Len(t, theme.Directories, 1)
	assert.Equal(t, "ok", theme.Directories[0].Name)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		theme   string
		data    string
		wantErr error
	}{
		{name: "missing theme section", theme: "x", data: "[Other]\nName=x\n", wantErr: types.ErrInvalidTheme},
		{name: "empty file", theme: "x", data: "", wantErr: types.ErrInvalidTheme},
		{name: "bad theme name", theme: "a/b", data: "[Icon Theme]\nName=x\n", wantErr: types.ErrInvalidTheme},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Parse(tt.theme, []byte(tt.data), discard)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
