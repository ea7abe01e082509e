package gallery

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"

	"github.com/samber/lo"

	"github.com/ababenko/portfolio/internal/catalog"
	"github.com/ababenko/portfolio/internal/i18n"
	"github.com/ababenko/portfolio/internal/playback"
)

func (r *Renderer) renderStaticGrid(c catalog.Category, _ *i18n.Dictionary, _ *playback.GifGrid) (template.HTML, bool) {
	images := make([]Image, 0, catalog.StaticImageCount)
	for n := 1; n <= catalog.StaticImageCount; n++ {
		images = append(images, Image{Src: c.Asset(catalog.StaticImage(n)), Alt: fmt.Sprintf("Design %d", n)})
	}
	return r.exec("static-grid", staticGridView{
		Leading:  images[:7],
		Double:   images[7:9],
		Trailing: images[9:],
	})
}

// Collage geometry: the HD image the lens samples from, and the lens side.
const (
	collageHDWidth  = 4000
	collageHDHeight = 5657
	lensSize        = 180
)

func (r *Renderer) renderCollage(c catalog.Category, dict *i18n.Dictionary, _ *playback.GifGrid) (template.HTML, bool) {
	return r.exec("static-collage", collageView{
		Src:      c.Asset(catalog.StaticCollage),
		HDSrc:    c.Asset(catalog.StaticCollageHD),
		HDWidth:  collageHDWidth,
		HDHeight: collageHDHeight,
		LensSize: lensSize,
		Alt:      dict.StringOr("portfolio.static.alt", "Statiskā dizaina kolāža"),
	})
}

func (r *Renderer) renderVideo(c catalog.Category, _ *i18n.Dictionary, _ *playback.GifGrid) (template.HTML, bool) {
	cards := lo.Map(catalog.VideoProjects, func(p catalog.VideoProject, _ int) videoCardView {
		return videoCardView{
			ID:      p.ID,
			Title:   p.Title,
			Full:    c.Asset(p.Full),
			Preview: c.Asset(p.Preview),
			Poster:  c.Asset(p.Poster),
		}
	})
	return r.exec("video", struct{ Cards []videoCardView }{cards})
}

func gifView(c catalog.Category, item catalog.GifItem, card playback.GifCard) gifCardView {
	return gifCardView{
		ID:        item.ID,
		Title:     item.Title,
		Poster:    c.Asset(item.Poster),
		Src:       c.Asset(item.Animation),
		Animation: card.AnimationURL(),
		Aspect:    item.Aspect,
		Playing:   card.Playing,
	}
}

func (r *Renderer) renderGif(c catalog.Category, _ *i18n.Dictionary, gifs *playback.GifGrid) (template.HTML, bool) {
	cards := lo.FilterMap(gifs.Cards(), func(card playback.GifCard, _ int) (gifCardView, bool) {
		item, ok := catalog.FindGif(card.ID)
		if !ok {
			return gifCardView{}, false
		}
		return gifView(c, item, card), true
	})
	return r.exec("gif", struct{ Cards []gifCardView }{cards})
}

func (r *Renderer) renderArchive(c catalog.Category, dict *i18n.Dictionary, _ *playback.GifGrid) (template.HTML, bool) {
	showcase := showcaseView{
		Image:       c.Asset(catalog.ArchiveShowcase.Image),
		Title:       dict.StringOr("portfolio.flash.title", catalog.ArchiveShowcase.Title),
		Description: dict.StringOr("portfolio.flash.description", catalog.ArchiveShowcase.Description),
		Points:      catalog.ArchiveShowcase.Points,
	}
	var points []string
	if dict.Decode("portfolio.flash.points", &points) && len(points) > 0 {
		showcase.Points = points
	}
	banners := lo.Map(catalog.FlashBanners, func(b catalog.Banner, _ int) bannerView {
		return bannerView{ID: b.ID, Title: b.Title, Video: c.Asset(b.Video), Poster: c.Asset(b.Poster), Aspect: b.Aspect}
	})
	return r.exec("archive", archiveView{Showcase: showcase, Banners: banners})
}

// printImage accepts either "file.jpg" or {"src":..., "alt":...}.
type printImage struct {
	Src string `json:"src"`
	Alt string `json:"alt"`
}

func (p *printImage) UnmarshalJSON(raw []byte) error {
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		p.Src = s
		return nil
	}
	type plain printImage
	return json.Unmarshal(raw, (*plain)(p))
}

type printEntry struct {
	Title      string       `json:"title"`
	Paragraphs []string     `json:"paragraphs"`
	Images     []printImage `json:"images"`
}

func resolveAsset(c catalog.Category, src string) string {
	if strings.HasPrefix(src, "/") || strings.HasPrefix(src, "http://") || strings.HasPrefix(src, "https://") || strings.HasPrefix(src, c.AssetPathPrefix) {
		return src
	}
	return c.Asset(src)
}

// renderPrint reads its projects from the dictionary; with none it reports
// false and the placeholder is shown.
func (r *Renderer) renderPrint(c catalog.Category, dict *i18n.Dictionary, _ *playback.GifGrid) (template.HTML, bool) {
	var entries []printEntry
	if !dict.Decode("portfolio.flexography.projects", &entries) || len(entries) == 0 {
		return "", false
	}
	projects := lo.Map(entries, func(e printEntry, _ int) printProject {
		return printProject{
			Title:      e.Title,
			Paragraphs: lo.Map(e.Paragraphs, func(p string, _ int) template.HTML { return r.richText(p) }),
			Images: lo.Map(e.Images, func(img printImage, i int) Image {
				alt := img.Alt
				if alt == "" {
					alt = fmt.Sprintf("%s %d", e.Title, i+1)
				}
				return Image{Src: resolveAsset(c, img.Src), Alt: alt}
			}),
		}
	})
	return r.exec("print", struct{ Projects []printProject }{projects})
}

const (
	modelFallbackTitle       = "3D modelēšana"
	modelFallbackDescription = "Interaktīvs 3D modelis. Pagrieziet un tuviniet ar peli."
)

func (r *Renderer) renderModel(c catalog.Category, dict *i18n.Dictionary, _ *playback.GifGrid) (template.HTML, bool) {
	return r.exec("model3d", modelView{
		EmbedURL:    dict.StringOr("portfolio.3d.embedUrl", r.opts.ModelViewerURL),
		Title:       dict.StringOr("portfolio.3d.title", modelFallbackTitle),
		Description: dict.StringOr("portfolio.3d.description", modelFallbackDescription),
		Images: lo.Map(catalog.ModelImages, func(name string, i int) Image {
			return Image{Src: c.Asset(name), Alt: fmt.Sprintf("3D render %d", i+1)}
		}),
	})
}

func (r *Renderer) exec(name string, data any) (template.HTML, bool) {
	markup, err := execute(name, data)
	if err != nil {
		r.log.WithError(err).WithField("template", name).Warn("render gallery")
		return "", false
	}
	return markup, true
}
