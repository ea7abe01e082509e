package content

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ababenko/portfolio/internal/i18n"
	"github.com/ababenko/portfolio/internal/logging"
)

const page = `<!DOCTYPE html><html lang="en"><head><title>Built-in</title></head><body>
<nav><a data-i18n="nav.home">Sākums</a></nav>
<h1 data-i18n="home.name">Name</h1>
<p class="footer" data-i18n="home.name">Name</p>
<h2 data-i18n="home.title">Original title</h2>
<input data-i18n="contact.email" value="">
<div id="work-tab"><div id="experience-cards"></div></div>
<div id="education-tab"><div id="education-list"></div></div>
<div id="languages-list"></div>
<div id="skills-list"></div>
<div id="interests-tab"><div class="interests-container"><p class="placeholder">static</p></div></div>
</body></html>`

func parse(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func dict(t *testing.T, raw string) *i18n.Dictionary {
	t.Helper()
	d, err := i18n.Parse([]byte(raw))
	require.NoError(t, err)
	return d
}

func TestBindWritesPresentKeysOnly(t *testing.T) {
	doc := parse(t, page)
	res := NewBinder(logging.Discard()).Bind(doc, dict(t, `{"home":{"name":"A"},"nav":{"home":"Home"}}`))

	doc.Find(`[data-i18n="home.name"]`).Each(func(_ int, s *goquery.Selection) {
		assert.Equal(t, "A", s.Text())
	})
	assert.Equal(t, 2, doc.Find(`[data-i18n="home.name"]`).Length())
	assert.Equal(t, "Home", doc.Find(`[data-i18n="nav.home"]`).Text())
	assert.Equal(t, "Original title", doc.Find(`[data-i18n="home.title"]`).Text())
	assert.Equal(t, "Built-in", doc.Find("title").Text(), "no meta branch: title untouched")
	assert.Equal(t, 3, res.Keys)
	assert.Empty(t, res.Sections)
}

func TestBindNilDictionary(t *testing.T) {
	doc := parse(t, page)
	res := NewBinder(logging.Discard()).Bind(doc, nil)
	assert.Zero(t, res.Keys)
	assert.Equal(t, "Name", doc.Find("h1").Text())
}

func TestBindMetaAndInputs(t *testing.T) {
	doc := parse(t, page)
	NewBinder(logging.Discard()).Bind(doc, dict(t, `{"meta":{"language":"lv"},"contact":{"email":"a@b.lv"}}`))

	assert.Equal(t, DefaultTitle, doc.Find("title").Text())
	lang, _ := doc.Find("html").Attr("lang")
	assert.Equal(t, "lv", lang)
	val, _ := doc.Find("input").Attr("value")
	assert.Equal(t, "a@b.lv", val)
}

func TestMissingInterestsLeavesPaneUntouched(t *testing.T) {
	doc := parse(t, page)
	res := NewBinder(logging.Discard()).Bind(doc, dict(t, `{"about":{
		"languages":{"title":"Valodas","items":[{"name":"Latviešu","level":"Dzimtā","percentage":100},{"name":"English","level":"B2","percentage":140}]},
		"skills":{"categories":[{"name":"Datorprasmes","items":["Photoshop","Illustrator"]},{"name":"Other","icon":"fas fa-x","items":["Go"]}]}
	}}`))

	assert.Equal(t, []string{"languages", "skills"}, res.Sections)
	assert.Equal(t, "static", doc.Find(".interests-container .placeholder").Text())

	bars := doc.Find("#languages-list .language-bar")
	require.Equal(t, 2, bars.Length())
	style, _ := bars.Eq(1).Find(".language-progress-fill").Attr("style")
	assert.Equal(t, "width: 100%", style)

	btns := doc.Find("#skills-list .skill-category-btn")
	require.Equal(t, 2, btns.Length())
	assert.True(t, btns.Eq(0).HasClass("active"))
	assert.False(t, btns.Eq(1).HasClass("active"))
	cls, _ := btns.Eq(0).Find("i").Attr("class")
	assert.Equal(t, "fas fa-laptop-code", cls)
	cls, _ = btns.Eq(1).Find("i").Attr("class")
	assert.Equal(t, "fas fa-x", cls)
	assert.Equal(t, 1, doc.Find("#pane-datorprasmes.active").Length())
	assert.Equal(t, 2, doc.Find("#pane-datorprasmes li").Length())
}

func TestExperienceMixesLegacyAndTypedInfo(t *testing.T) {
	doc := parse(t, page)
	NewBinder(logging.Discard()).Bind(doc, dict(t, `{"about":{"moreInfo":"More","work":{"items":[
		{"period":"2019 - 2024","duration":"5 g.","company":"Delfi","position":"Designer","additionalInfo":[
			"Plain line",
			{"type":"text","content":"Typed line"},
			{"type":"list","items":["one","two"]},
			{"type":"video","content":"ignored"}
		]},
		{"period":"2015","duration":"1 g.","company":"Print","position":"Operator"}
	]}}}`))

	items := doc.Find("#experience-cards .experience-item")
	require.Equal(t, 2, items.Length())

	first := items.Eq(0)
	assert.Equal(t, "Delfi", first.Find(".experience-item-company").Text())
	assert.Contains(t, first.Find(".experience-toggle").Text(), "More")
	texts := first.Find(".experience-text")
	require.Equal(t, 2, texts.Length())
	assert.Equal(t, "Plain line", texts.Eq(0).Text())
	assert.Equal(t, "Typed line", texts.Eq(1).Text())
	assert.Equal(t, 2, first.Find(".experience-additional-list li").Length())
	assert.NotContains(t, first.Text(), "ignored")

	assert.Equal(t, 0, items.Eq(1).Find(".experience-toggle").Length())
}

func TestLegacyExperienceAndEducation(t *testing.T) {
	doc := parse(t, page)
	NewBinder(logging.Discard()).Bind(doc, dict(t, `{"about":{
		"experience":[{"company":"Old","position":"P","period":"2010","duration":"1"}],
		"education":{"items":[{"degree":"BA","institution":"RTU","period":"2008","additionalInfo":["Grant",{"type":"list","items":["a"]}]}]}
	}}`))

	assert.Equal(t, "Old", doc.Find(".experience-item-company").Text())
	edu := doc.Find("#education-list .education-item")
	require.Equal(t, 1, edu.Length())
	assert.Equal(t, "RTU • 2008", edu.Find(".education-meta").Text())
	assert.Contains(t, edu.Find(".education-toggle").Text(), DefaultMoreInfo)
	assert.Equal(t, "Grant", edu.Find(".education-text").Text())
	assert.Equal(t, 1, edu.Find(".education-additional-list li").Length())
}

func TestSectionsFullyReplacedOnRebind(t *testing.T) {
	doc := parse(t, page)
	b := NewBinder(logging.Discard())
	b.Bind(doc, dict(t, `{"about":{"languages":{"items":[{"name":"A"},{"name":"B"}]}}}`))
	b.Bind(doc, dict(t, `{"about":{"languages":{"items":[{"name":"C"}]}}}`))

	bars := doc.Find("#languages-list .language-bar")
	require.Equal(t, 1, bars.Length())
	assert.Equal(t, "C", bars.Find(".language-text").Text())
}

func TestMalformedEntriesAreSkipped(t *testing.T) {
	doc := parse(t, strings.Replace(page, `<div id="languages-list"></div>`, `<div id="languages-list">old</div>`, 1))
	res := NewBinder(logging.Discard()).Bind(doc, dict(t, `{"about":{
		"languages":{"items":[
			{"name":"Latviešu","level":"Dzimtā","percentage":100},
			{"name":"English","level":"C1","percentage":"90%"},
			{"name":"Broken","percentage":{"value":5}},
			"not an object"
		]},
		"education":{"items":[
			{"degree":"BA","institution":"RTU","period":"2008","additionalInfo":["ok",42,null]},
			{"degree":["wrong"]}
		]},
		"skills":{"categories":"none"}
	}}`))

	assert.Equal(t, []string{"education", "languages"}, res.Sections)
	assert.NotContains(t, doc.Find("#languages-list").Text(), "old")
	bars := doc.Find("#languages-list .language-bar")
	require.Equal(t, 2, bars.Length())
	style, _ := bars.Eq(1).Find(".language-progress-fill").Attr("style")
	assert.Equal(t, "width: 90%", style)

	edu := doc.Find("#education-list .education-item")
	require.Equal(t, 1, edu.Length())
	texts := edu.Find(".education-text")
	require.Equal(t, 2, texts.Length())
	assert.Equal(t, "ok", texts.Eq(0).Text())
	assert.Equal(t, "42", texts.Eq(1).Text())
}

func TestInterests(t *testing.T) {
	doc := parse(t, page)
	NewBinder(logging.Discard()).Bind(doc, dict(t, `{"about":{"interests":{
		"singleItems":[{"name":"Laiks ar ģimeni","icon":"fas fa-home"},{"name":"Ceļošana","icon":"fas fa-plane"}],
		"categories":[{"name":"Sports","items":[{"name":"Hokejs","icon":"fas fa-hockey-puck"}]}]
	}}}`))

	singles := doc.Find(".interest-single")
	require.Equal(t, 2, singles.Length())
	assert.True(t, singles.Eq(0).HasClass("family-item"))
	assert.False(t, singles.Eq(1).HasClass("family-item"))
	assert.Equal(t, "Sports", doc.Find(".interest-category-title").Text())
	assert.Equal(t, 0, doc.Find(".placeholder").Length())
}

func TestSlug(t *testing.T) {
	assert.Equal(t, "vadības-un-komunikācijas-prasmes", Slug("Vadības un komunikācijas prasmes"))
	assert.Equal(t, "3d-max", Slug("  3D / Max! "))
}

func TestSetValueByElement(t *testing.T) {
	doc := parse(t, `<html><head><meta name="description" content="old"></head><body>
<input class="v" value="old"><span class="v">old</span>
<a class="v mail" href="mailto:old@x.lv">old@x.lv</a><a class="v site" href="/about">old</a></body></html>`)

	SetValue(doc.Find("meta, .v"), "new")

	content, _ := doc.Find("meta").Attr("content")
	assert.Equal(t, "new", content)
	val, _ := doc.Find("input").Attr("value")
	assert.Equal(t, "new", val)
	assert.Equal(t, "new", doc.Find("span").Text())

	href, _ := doc.Find("a.mail").Attr("href")
	assert.Equal(t, "mailto:new", href)
	assert.Equal(t, "new", doc.Find("a.mail").Text())
	href, _ = doc.Find("a.site").Attr("href")
	assert.Equal(t, "/about", href, "only mail links follow the text")
}

func TestAdditionalInfoRendersClosedAccordions(t *testing.T) {
	doc := parse(t, page)
	NewBinder(logging.Discard()).Bind(doc, dict(t, `{"about":{
		"work":{"items":[
			{"company":"A","additionalInfo":["one"]},
			{"company":"B","additionalInfo":["two"]}
		]},
		"education":{"items":[{"degree":"BA","additionalInfo":["three"]}]}
	}}`))

	for _, prefix := range []string{"experience", "education"} {
		blocks := doc.Find("." + prefix + "-additional")
		require.NotZero(t, blocks.Length(), prefix)
		blocks.Each(func(_ int, block *goquery.Selection) {
			btn := block.ChildrenFiltered("." + prefix + "-toggle")
			content := block.ChildrenFiltered("." + prefix + "-additional-content")
			assert.Equal(t, 1, btn.Length(), "toggle and content share a parent")
			assert.Equal(t, 1, content.Length())
			assert.False(t, btn.HasClass("active"))
			assert.False(t, content.HasClass("active"))
		})
	}
	assert.Equal(t, 2, doc.Find("#experience-cards .experience-toggle").Length())
}
