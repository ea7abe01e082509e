package content

import (
	"bytes"
	"embed"
	"encoding/json"
	"html/template"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/html/atom"

	"github.com/ababenko/portfolio/internal/i18n"
)

// KeyAttr tags elements with the dotted dictionary key they display.
const KeyAttr = "data-i18n"

const (
	DefaultTitle    = "Aleksejs Babenko | Portfolio"
	DefaultLanguage = "lv"
	DefaultMoreInfo = "Papildus informācija"
)

// Section containers.
const (
	ExperienceContainer = "#experience-cards"
	EducationContainer  = "#education-list"
	LanguagesContainer  = "#languages-list"
	SkillsContainer     = "#skills-list"
	InterestsContainer  = "#interests-tab .interests-container"
)

//go:embed templates/*.tmpl
var templatesFS embed.FS

type infoView struct {
	Prefix  string
	Entries []InfoEntry
}

var sectionTemplates = template.Must(template.New("sections").Funcs(template.FuncMap{
	"slug": Slug,
	"icon": SkillIcon,
	"info": func(prefix string, entries []InfoEntry) infoView { return infoView{Prefix: prefix, Entries: entries} },
}).ParseFS(templatesFS, "templates/*.tmpl"))

// Result reports what a Bind call changed.
type Result struct {
	Keys     int
	Sections []string
}

// Binder writes dictionary content into a page document.
type Binder struct {
	log *logrus.Entry
}

func NewBinder(log *logrus.Entry) *Binder {
	return &Binder{log: log}
}

// Bind writes every present dictionary value into the elements keyed with it
// and re-renders the list sections whose branch is present. Absent values
// leave the page untouched, and a nil dictionary binds nothing.
func (b *Binder) Bind(doc *goquery.Document, dict *i18n.Dictionary) Result {
	var res Result
	if dict == nil {
		b.log.Debug("no dictionary, keeping built-in text")
		return res
	}

	if dict.Has("meta") {
		doc.Find("title").SetText(dict.StringOr("meta.title", DefaultTitle))
		doc.Find("html").SetAttr("lang", dict.StringOr("meta.language", DefaultLanguage))
	}

	doc.Find("[" + KeyAttr + "]").Each(func(_ int, sel *goquery.Selection) {
		key, _ := sel.Attr(KeyAttr)
		v, ok := dict.String(key)
		if !ok {
			return
		}
		SetValue(sel, v)
		res.Keys++
	})

	more := dict.StringOr("about.moreInfo", DefaultMoreInfo)
	for _, s := range []struct {
		name      string
		container string
		data      func() (any, bool)
	}{
		{"experience", ExperienceContainer, func() (any, bool) {
			items, ok := decodeList[Experience](b.log, dict, "about.work.items")
			if !ok {
				items, ok = decodeList[Experience](b.log, dict, "about.experience")
			}
			return listView[Experience]{Items: items, MoreInfo: more}, ok
		}},
		{"education", EducationContainer, func() (any, bool) {
			items, ok := decodeList[Education](b.log, dict, "about.education.items")
			return listView[Education]{Items: items, MoreInfo: more}, ok
		}},
		{"languages", LanguagesContainer, func() (any, bool) {
			items, ok := decodeList[Language](b.log, dict, "about.languages.items")
			return items, ok
		}},
		{"skills", SkillsContainer, func() (any, bool) {
			cats, ok := decodeList[SkillCategory](b.log, dict, "about.skills.categories")
			return Skills{Categories: cats}, ok && len(cats) > 0
		}},
		{"interests", InterestsContainer, func() (any, bool) {
			if !dict.Has("about.interests") {
				return nil, false
			}
			singles, _ := decodeList[Interest](b.log, dict, "about.interests.singleItems")
			cats, _ := decodeList[InterestCategory](b.log, dict, "about.interests.categories")
			return Interests{SingleItems: singles, Categories: cats}, true
		}},
	} {
		data, ok := s.data()
		if !ok {
			continue
		}
		if b.renderInto(doc, s.container, s.name, data) {
			res.Sections = append(res.Sections, s.name)
		}
	}
	return res
}

type listView[T any] struct {
	Items    []T
	MoreInfo string
}

// decodeList decodes the list at path one entry at a time. Entries that do
// not fit T are logged and skipped; a value that is not a list decodes as
// empty. ok is false only when path is absent.
func decodeList[T any](log *logrus.Entry, dict *i18n.Dictionary, path string) ([]T, bool) {
	v, ok := dict.Lookup(path)
	if !ok {
		return nil, false
	}
	entries, isList := v.([]any)
	if !isList {
		log.WithField("key", path).Warn("expected a list")
		return nil, true
	}
	items := make([]T, 0, len(entries))
	for i, entry := range entries {
		var item T
		if err := decodeEntry(entry, &item); err != nil {
			log.WithError(err).WithField("key", path).WithField("index", i).Warn("skipping malformed entry")
			continue
		}
		items = append(items, item)
	}
	return items, true
}

func decodeEntry(entry, v any) error {
	raw, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	return json.Unmarshal(raw, v)
}

// renderInto replaces the container's children with the named fragment. A
// missing container is not an error.
func (b *Binder) renderInto(doc *goquery.Document, selector, name string, data any) bool {
	container := doc.Find(selector).First()
	if container.Length() == 0 {
		return false
	}
	markup, err := RenderSection(name, data)
	if err != nil {
		b.log.WithError(err).WithField("section", name).Warn("render section")
		return false
	}
	container.SetHtml(markup)
	return true
}

// RenderSection executes one section template.
func RenderSection(name string, data any) (string, error) {
	var buf bytes.Buffer
	if err := sectionTemplates.ExecuteTemplate(&buf, name, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(buf.String()), nil
}

// SetValue writes v as the value of inputs, the content of meta tags and the
// text of anything else. Mail links get their address updated along with it.
func SetValue(sel *goquery.Selection, v string) {
	sel.Each(func(_ int, s *goquery.Selection) {
		switch s.Nodes[0].DataAtom {
		case atom.Input:
			s.SetAttr("value", v)
		case atom.Meta:
			s.SetAttr("content", v)
		case atom.A:
			if href, _ := s.Attr("href"); strings.HasPrefix(href, mailtoScheme) {
				s.SetAttr("href", mailtoScheme+v)
			}
			s.SetText(v)
		default:
			s.SetText(v)
		}
	})
}

const mailtoScheme = "mailto:"
