package catalog

import (
	"fmt"
	"path"
)

// Kind selects the render routine for a category.
type Kind string

const (
	KindStatic  Kind = "static"
	KindVideo   Kind = "video"
	KindGif     Kind = "gif"
	KindArchive Kind = "archive"
	KindModel3D Kind = "model3d"
	KindPrint   Kind = "print"
)

var knownKinds = map[Kind]struct{}{
	KindStatic: {}, KindVideo: {}, KindGif: {}, KindArchive: {}, KindModel3D: {}, KindPrint: {},
}

// Category is one selectable tab of the gallery.
type Category struct {
	ID              string
	DisplayTextKey  string
	AssetPathPrefix string
	Icon            string
	Kind            Kind
}

// Asset joins a file name onto the category's asset prefix.
func (c Category) Asset(name string) string {
	if c.AssetPathPrefix == "" {
		return name
	}
	return c.AssetPathPrefix + name
}

// Registry is the ordered, immutable set of categories.
type Registry struct {
	ordered []Category
	byID    map[string]Category
}

// NewRegistry validates the categories: ids must be non-empty and unique and
// every kind must be known.
func NewRegistry(cats ...Category) (*Registry, error) {
	if len(cats) == 0 {
		return nil, fmt.Errorf("catalog: no categories")
	}
	r := &Registry{byID: make(map[string]Category, len(cats))}
	for _, c := range cats {
		if c.ID == "" {
			return nil, fmt.Errorf("catalog: category with empty id")
		}
		if _, dup := r.byID[c.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate category %q", c.ID)
		}
		if _, ok := knownKinds[c.Kind]; !ok {
			return nil, fmt.Errorf("catalog: category %q has unknown kind %q", c.ID, c.Kind)
		}
		r.byID[c.ID] = c
		r.ordered = append(r.ordered, c)
	}
	return r, nil
}

// Lookup finds a category by id.
func (r *Registry) Lookup(id string) (Category, bool) {
	c, ok := r.byID[id]
	return c, ok
}

// All returns the categories in declaration order.
func (r *Registry) All() []Category {
	return append([]Category(nil), r.ordered...)
}

// Default is the first declared category.
func (r *Registry) Default() Category { return r.ordered[0] }

// Categories lists the site's gallery tabs rooted at assetRoot
// (normally "assets/portfolio").
func Categories(assetRoot string) []Category {
	p := func(sub string) string { return path.Join(assetRoot, sub) + "/" }
	return []Category{
		{ID: "static", DisplayTextKey: "portfolio.tabs.static.text", AssetPathPrefix: p("static/page1"), Icon: "fa-solid fa-image", Kind: KindStatic},
		{ID: "video", DisplayTextKey: "portfolio.tabs.video.text", AssetPathPrefix: p("video"), Icon: "fas fa-video", Kind: KindVideo},
		{ID: "gif", DisplayTextKey: "portfolio.tabs.gif.text", AssetPathPrefix: p("gif"), Icon: "fas fa-film", Kind: KindGif},
		{ID: "flash", DisplayTextKey: "portfolio.tabs.flash.text", AssetPathPrefix: p("flash-archive"), Icon: "fas fa-archive", Kind: KindArchive},
		{ID: "3d", DisplayTextKey: "portfolio.tabs.3d.text", AssetPathPrefix: p("3d"), Icon: "fas fa-cube", Kind: KindModel3D},
		{ID: "flexography", DisplayTextKey: "portfolio.tabs.flexography.text", AssetPathPrefix: p("flexography"), Icon: "fas fa-paint-roller", Kind: KindPrint},
	}
}

// Fallback tab labels, used when the dictionary has none.
var fallbackLabels = map[string]string{
	"static":      "Statiskais dizains",
	"video":       "Video materiāli",
	"gif":         "GIF animācija",
	"flash":       "Flash animācija",
	"3d":          "3D modelēšana",
	"flexography": "Fleksogrāfijai",
}

// FallbackLabel returns the built-in label for a category id.
func FallbackLabel(id string) string {
	if l, ok := fallbackLabels[id]; ok {
		return l
	}
	return id
}
