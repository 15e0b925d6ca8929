package atlas

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bft-labs/framecache/internal/domain"
)

func specs(t *testing.T, doc *Document) (map[string]domain.FrameSpec, map[string]error) {
	t.Helper()
	ok := make(map[string]domain.FrameSpec)
	bad := make(map[string]error)
	for _, r := range doc.Records {
		spec, err := r.Spec(doc.Format)
		if err != nil {
			bad[r.Name] = err
			continue
		}
		ok[r.Name] = spec
	}
	return ok, bad
}

func TestParse_PlistFormat0(t *testing.T) {
	doc, err := Parse("coin.plist", []byte(plistFormat0), KindPlist)
	require.NoError(t, err)
	assert.Equal(t, FormatFlat, doc.Format)
	assert.Empty(t, doc.Texture)

	got, bad := specs(t, doc)
	require.Empty(t, bad)
	assert.Equal(t, domain.FrameSpec{
		Rect:         domain.Rect{Width: 16, Height: 16},
		Offset:       domain.Point{X: 0.5, Y: -1},
		OriginalSize: domain.Size{Width: 18, Height: 18},
	}, got["coin.png"])
}

func TestParse_PlistFormat2(t *testing.T) {
	doc, err := Parse("hero.plist", []byte(plistFormat2), KindUnknown)
	require.NoError(t, err)
	assert.Equal(t, FormatRotated, doc.Format)
	assert.Equal(t, "hero_sheet.png", doc.Texture)
	assert.Equal(t, []string{"hero_idle_0.png", "hero_idle_1.png"}, doc.Names())

	got, bad := specs(t, doc)
	require.Empty(t, bad)
	assert.Equal(t, domain.FrameSpec{
		Rect:         domain.Rect{X: 2, Y: 2, Width: 30, Height: 40},
		Offset:       domain.Point{X: 1, Y: -2},
		OriginalSize: domain.Size{Width: 32, Height: 44},
		Rotated:      true,
	}, got["hero_idle_0.png"])
	assert.False(t, got["hero_idle_1.png"].Rotated)
}

func TestParse_PlistFormat3Aliases(t *testing.T) {
	doc, err := Parse("forest.plist", []byte(plistFormat3), KindPlist)
	require.NoError(t, err)
	assert.Equal(t, FormatTexturePK, doc.Format)

	// records are sorted: bad.png, rock.png, tree.png
	assert.Equal(t, map[string]string{
		"shrub.png": "rock.png",
		"bush.png":  "tree.png",
	}, doc.Aliases)
	require.Len(t, doc.Warnings, 2)
	assert.Equal(t, "tree.png", doc.Warnings[0].Name)
	assert.Equal(t, "shrub.png", doc.Warnings[1].Name)
	assert.True(t, domain.IsInvalidRecord(doc.Warnings[1].Err))

	got, bad := specs(t, doc)
	require.Contains(t, bad, "bad.png")
	assert.True(t, domain.IsInvalidRecord(bad["bad.png"]))
	assert.Equal(t, domain.Rect{X: 64, Width: 20, Height: 30}, got["tree.png"].Rect)
	assert.Equal(t, domain.Size{Width: 20, Height: 32}, got["tree.png"].OriginalSize)
	assert.True(t, got["rock.png"].Rotated)
}

func TestParse_JSONKeepsOrder(t *testing.T) {
	doc, err := Parse("sheet.json", []byte(jsonHash), KindJSON)
	require.NoError(t, err)
	assert.Equal(t, []string{"zeta", "alpha"}, doc.Names())
	assert.Equal(t, "sheet.png", doc.Texture)

	got, bad := specs(t, doc)
	require.Empty(t, bad)
	assert.Equal(t, domain.FrameSpec{
		Rect:         domain.Rect{Width: 10, Height: 12},
		Offset:       domain.Point{X: 1, Y: 2},
		OriginalSize: domain.Size{Width: 12, Height: 14},
	}, got["zeta"])
	assert.True(t, got["alpha"].Rotated)
}

func TestParse_JSONArray(t *testing.T) {
	doc, err := Parse("sheet.json", []byte(jsonArray), KindUnknown)
	require.NoError(t, err)
	assert.Equal(t, []string{"b", "a", "#2"}, doc.Names())

	_, bad := specs(t, doc)
	assert.Len(t, bad, 1)
	assert.Contains(t, bad, "#2")
}

func TestParse_YAML(t *testing.T) {
	doc, err := Parse("ui.yaml", []byte(yamlDoc), KindYAML)
	require.NoError(t, err)
	assert.Equal(t, FormatRectStr, doc.Format)
	assert.Equal(t, "ui.png", doc.Texture)
	assert.Equal(t, []string{"button_up", "button_down", "broken"}, doc.Names())

	got, bad := specs(t, doc)
	assert.Len(t, got, 2)
	assert.Contains(t, bad, "broken")
	assert.Equal(t, domain.Rect{Y: 32, Width: 64, Height: 32}, got["button_down"].Rect)
}

func TestParse_TOML(t *testing.T) {
	doc, err := Parse("tiles.toml", []byte(tomlDoc), KindTOML)
	require.NoError(t, err)
	assert.Equal(t, "tiles.png", doc.Texture)
	assert.Equal(t, []string{"grass", "water"}, doc.Names())

	got, bad := specs(t, doc)
	require.Empty(t, bad)
	assert.Equal(t, domain.Point{X: 1.5}, got["grass"].Offset)
}

func TestParse_Malformed(t *testing.T) {
	tests := []struct {
		name    string
		content string
		kind    Kind
	}{
		{"garbage plist", "<plist><dict><key>frames", KindPlist},
		{"invalid json", `{"frames": {`, KindJSON},
		{"no frames", `{"meta": {}}`, KindJSON},
		{"frames not table", `{"frames": 3}`, KindJSON},
		{"bad format", `{"frames": {}, "metadata": {"format": 9}}`, KindJSON},
		{"yaml scalar", "just text", KindYAML},
		{"empty", "", KindUnknown},
		{"bad toml", "[frames\nx=", KindTOML},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse("src", []byte(tt.content), tt.kind)
			require.Error(t, err)
			assert.True(t, domain.IsMalformedDocument(err), err.Error())
		})
	}
}

func TestRecordSpec_Invalid(t *testing.T) {
	tests := []struct {
		name   string
		format int
		attrs  map[string]any
	}{
		{"nil attrs", 0, nil},
		{"missing width", 0, map[string]any{"x": 0, "y": 0, "height": 1}},
		{"string width", 0, map[string]any{"x": 0, "y": 0, "width": "wide", "height": 1}},
		{"bad rect string", 1, map[string]any{"frame": "{{1,2},{3}}"}},
		{"frame not string", 2, map[string]any{"frame": 5}},
		{"negative size", 3, map[string]any{"textureRect": "{{0,0},{-4,4}}"}},
		{"object missing h", 1, map[string]any{"frame": map[string]any{"x": 0, "y": 0, "w": 1}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Record{Name: "r", Attrs: tt.attrs}.Spec(tt.format)
			require.Error(t, err)
			assert.True(t, domain.IsInvalidRecord(err))
		})
	}
}

func TestParseGeometry(t *testing.T) {
	r, err := ParseRect("{{ 1.5, 2 }, { 3, 4 }}")
	require.NoError(t, err)
	assert.Equal(t, domain.Rect{X: 1.5, Y: 2, Width: 3, Height: 4}, r)

	p, err := ParsePoint("{-1,2}")
	require.NoError(t, err)
	assert.Equal(t, domain.Point{X: -1, Y: 2}, p)

	_, err = ParseSize("{1,2,3}")
	assert.Error(t, err)
	_, err = ParsePoint("{a,b}")
	assert.Error(t, err)
}

func TestSniff(t *testing.T) {
	assert.Equal(t, KindPlist, Sniff([]byte(plistFormat2)))
	assert.Equal(t, KindPlist, Sniff([]byte("bplist00")))
	assert.Equal(t, KindJSON, Sniff([]byte("  \n{}")))
	assert.Equal(t, KindTOML, Sniff([]byte("[frames.a]")))
	assert.Equal(t, KindYAML, Sniff([]byte("frames:\n")))
	assert.Equal(t, KindUnknown, Sniff([]byte("   ")))
}

func TestParseKind(t *testing.T) {
	k, err := ParseKind(".YML")
	require.NoError(t, err)
	assert.Equal(t, KindYAML, k)
	assert.Equal(t, KindPlist, KindFromPath("a/b/c.plist"))
	assert.Equal(t, KindUnknown, KindFromPath("a/b/c.atlas"))
	_, err = ParseKind("xls")
	assert.Error(t, err)
}
