package web

import (
	"bytes"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/view"
	"github.com/stretchr/testify/require"
)

type navItem struct {
	Path  string
	Label string
}

type formField struct {
	Key      string
	Label    string
	Kind     string
	Required bool
}

type pageForm struct {
	Kind   string
	Title  string
	Fields []formField
}

func baseData(path string) map[string]interface{} {
	return map[string]interface{}{
		"site": map[string]interface{}{
			"name":    "Potato Lake Association",
			"baseUrl": "https://potatolake.org",
			"nav":     []navItem{{Path: "/", Label: "Home"}, {Path: "/fishing", Label: "Fishing"}},
			"year":    2026,
		},
		"path": path,
		"seo":  map[string]interface{}{"title": "Potato Lake", "description": "A lake in Hubbard County, Minnesota"},
	}
}

func TestTemplatesParse(t *testing.T) {
	tmpl, err := Templates(view.FuncMap())
	require.NoError(t, err)

	for _, name := range []string{
		"home.html", "fishing.html", "resorts.html", "news.html", "dnr.html", "association.html",
		"area_services.html", "stories.html", "not_found.html", "admin_login.html", "admin_dashboard.html",
		"admin_page_edit.html", "admin_collection.html", "admin_stories.html", "admin_seo.html",
	} {
		require.NotNil(t, tmpl.Lookup(name), name)
	}
}

func TestHomeTemplateRendersCarouselAndCards(t *testing.T) {
	tmpl, err := Templates(view.FuncMap())
	require.NoError(t, err)

	page := db.DefaultHomePage()
	page.CarouselImages = []db.CarouselImage{
		{URL: "/static/uploads/dock.jpg", Alt: db.StringPtr("The public dock")},
		{URL: "/static/uploads/sunset.jpg"},
	}
	data := baseData("/")
	data["page"] = &page
	data["carousel"] = view.NewCarousel(len(page.CarouselImages))
	data["carouselInterval"] = view.CarouselInterval.Milliseconds()
	data["events"] = []db.Event{{Title: "Fishing Derby", Date: time.Date(2026, time.July, 4, 0, 0, 0, 0, time.Local)}}
	data["news"] = []db.NewsItem{}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "home.html", data))
	html := buf.String()

	require.Contains(t, html, "Welcome to Potato Lake")
	require.Contains(t, html, `data-interval="3000"`)
	require.Contains(t, html, `alt="The public dock"`)
	require.Contains(t, html, `data-index="0" data-prev="1" data-next="1"`)
	require.Contains(t, html, `data-index="1" data-prev="0" data-next="0"`)
	require.Contains(t, html, "July 4, 2026")
	require.Contains(t, html, `<link rel="canonical" href="https://potatolake.org/">`)
	require.NotContains(t, html, "<no value>")
}

func TestAdminPageEditPrefillsValues(t *testing.T) {
	tmpl, err := Templates(view.FuncMap())
	require.NoError(t, err)

	data := baseData("/admin/pages/dnr")
	data["title"] = "DNR Page"
	data["username"] = "admin"
	data["form"] = pageForm{
		Kind:  "dnr",
		Title: "DNR Page",
		Fields: []formField{
			{Key: "heroTitle", Label: "Hero title", Kind: "text", Required: true},
			{Key: "lakeFacts", Label: "Lake facts", Kind: "textarea"},
			{Key: "heroImageUrl", Label: "Hero image", Kind: "image"},
		},
	}
	data["values"] = map[string]interface{}{"heroTitle": "DNR <Info>", "lakeFacts": "Max depth 30ft", "heroImageUrl": nil}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "admin_page_edit.html", data))
	html := buf.String()

	require.Contains(t, html, `value="DNR &lt;Info&gt;"`)
	require.Contains(t, html, "Max depth 30ft</textarea>")
	require.NotContains(t, html, "<nil>")
}

func TestStaticAssetsEmbedded(t *testing.T) {
	file, err := Static().Open("js/admin.js")
	require.NoError(t, err)
	defer file.Close()

	raw, err := io.ReadAll(file)
	require.NoError(t, err)
	require.True(t, strings.Contains(string(raw), "collectionManager"))
}
