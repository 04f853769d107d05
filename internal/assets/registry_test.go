package assets

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultManifestCoversEveryCategory(t *testing.T) {
	reg, err := Default("")
	require.NoError(t, err)

	all := reg.All()
	for _, category := range Categories {
		assert.NotEmpty(t, all[category], category)
	}
	assert.Equal(t, "/images/logos/logo-primary.svg", reg.MustLookup(CategoryLogos, "primary"))
}

func TestLoadResolvesAgainstBase(t *testing.T) {
	raw := []byte("hero:\n  background: /img/bg.jpg\npartners:\n  cdn: https://cdn.example.net/p.svg\n")
	reg, err := Load(raw, "https://static.example.com/site/")
	require.NoError(t, err)

	u, ok := reg.Lookup(CategoryHero, "background")
	require.True(t, ok)
	assert.Equal(t, "https://static.example.com/img/bg.jpg", u)

	u, ok = reg.Lookup(CategoryPartners, "cdn")
	require.True(t, ok)
	assert.Equal(t, "https://cdn.example.net/p.svg", u)
}

func TestLoadRejectsUnknownCategory(t *testing.T) {
	_, err := Load([]byte("icons:\n  x: /x.svg\n"), "")
	assert.ErrorContains(t, err, `unknown category "icons"`)
}

func TestLoadRejectsEmptyPath(t *testing.T) {
	_, err := Load([]byte("team:\n  ceo: \"\"\n"), "")
	assert.Error(t, err)
}

func TestLookupMissing(t *testing.T) {
	reg, err := Default("")
	require.NoError(t, err)

	_, ok := reg.Lookup(CategoryTeam, "nobody")
	assert.False(t, ok)
	_, ok = reg.Lookup("icons", "x")
	assert.False(t, ok)
	assert.Nil(t, reg.Category("icons"))
	assert.Panics(t, func() { reg.MustLookup(CategoryTeam, "nobody") })
}

func TestCategoryIsACopy(t *testing.T) {
	reg, err := Default("")
	require.NoError(t, err)

	logos := reg.Category(CategoryLogos)
	logos["primary"] = "tampered"
	assert.Equal(t, "/images/logos/logo-primary.svg", reg.MustLookup(CategoryLogos, "primary"))
}

func TestURLsAreDistinctAndSorted(t *testing.T) {
	reg, err := Load([]byte("logos:\n  a: /x.svg\n  b: /x.svg\nbanners:\n  c: /a.jpg\n"), "")
	require.NoError(t, err)
	assert.Equal(t, []string{"/a.jpg", "/x.svg"}, reg.URLs())
}

func TestResizeURL(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		w, h, q int
		want    string
	}{
		{"all params", "https://cdn.example.com/a.jpg", 640, 480, 80, "https://cdn.example.com/a.jpg?h=480&q=80&w=640"},
		{"width only", "/img/a.jpg", 320, 0, 0, "/img/a.jpg?w=320"},
		{"keeps query", "https://cdn.example.com/a.jpg?v=2", 100, 0, 0, "https://cdn.example.com/a.jpg?v=2&w=100"},
		{"clamps quality", "/a.jpg", 0, 0, 250, "/a.jpg?q=100"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ResizeURL(tc.in, tc.w, tc.h, tc.q)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestResizeURLRejectsNegative(t *testing.T) {
	_, err := ResizeURL("/a.jpg", -1, 0, 0)
	assert.Error(t, err)
}
