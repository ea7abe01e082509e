package gallery

import "html/template"

// Image is an img reference.
type Image struct {
	Src string
	Alt string
}

type staticGridView struct {
	Leading  []Image
	Double   []Image
	Trailing []Image
}

type collageView struct {
	Src      string
	HDSrc    string
	HDWidth  int
	HDHeight int
	LensSize int
	Alt      string
}

type videoCardView struct {
	ID      int
	Title   string
	Full    string
	Preview string
	Poster  string
}

type gifCardView struct {
	ID        string
	Title     string
	Poster    string
	Src       string
	Animation string
	Aspect    string
	Playing   bool
}

type showcaseView struct {
	Image       string
	Title       string
	Description string
	Points      []string
}

type bannerView struct {
	ID     string
	Title  string
	Video  string
	Poster string
	Aspect string
}

type archiveView struct {
	Showcase showcaseView
	Banners  []bannerView
}

type printProject struct {
	Title      string
	Paragraphs []template.HTML
	Images     []Image
}

type modelView struct {
	EmbedURL    string
	Title       string
	Description string
	Images      []Image
}

type placeholderView struct {
	Title string
	Text  string
}

// TabButton is one entry of the category menu.
type TabButton struct {
	ID     string
	Icon   string
	Text   string
	Active bool
}

// View is the computed gallery content for one category.
type View struct {
	CategoryID  string
	LayoutClass string
	Markup      template.HTML
	Placeholder bool
}
