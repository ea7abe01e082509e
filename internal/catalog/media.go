package catalog

import "fmt"

// VideoProject is one card of the video gallery. Paths are relative to the
// video category prefix.
type VideoProject struct {
	ID      int
	Title   string
	Full    string
	Preview string
	Poster  string
}

func videoProject(id int, title, base string) VideoProject {
	return VideoProject{
		ID:      id,
		Title:   title,
		Full:    "full/" + base + "_1024x576_lowQ.webm",
		Preview: "short/" + base + "-short.webm",
		Poster:  "previews/" + base + ".jpg",
	}
}

// VideoProjects in display order.
var VideoProjects = []VideoProject{
	videoProject(10, "New Client Campaign", "Akcija_newClient"),
	videoProject(5, "Outside Sport", "OutsideSport"),
	videoProject(2, "Tennis Ostapenko", "Tennis_Ostapenko_Wuhan2017"),
	videoProject(3, "Basketball Lat-Lit", "Bask_Lat-Lit_2017"),
	videoProject(1, "WC 2018", "WC2018"),
	videoProject(6, "Hockey WC 2018", "hockeyWC2018_Latvia-Germany"),
	videoProject(7, "Football Latvia-Faroe", "football_Latvija_Fareri"),
	videoProject(8, "Split Dinamo R", "Split_Lat-Aus_DinamoR"),
	videoProject(9, "FA Cup Final", "football_FaCupFinal"),
	videoProject(4, "Premier League", "PremierLeague"),
}

// FindVideo looks a video project up by id.
func FindVideo(id int) (VideoProject, bool) {
	for _, p := range VideoProjects {
		if p.ID == id {
			return p, true
		}
	}
	return VideoProject{}, false
}

// GifItem is one animation card; Aspect is the layout hint class.
type GifItem struct {
	ID        string
	Title     string
	Animation string
	Poster    string
	Aspect    string
}

// GifItems in display order.
var GifItems = []GifItem{
	{ID: "olympics", Title: "Olympic Games", Animation: "olympics.gif", Poster: "olympics.jpg", Aspect: "aspect-wide"},
	{ID: "hockey", Title: "Hockey Night", Animation: "hockey.gif", Poster: "hockey.jpg", Aspect: "aspect-wide"},
	{ID: "basketball", Title: "Basketball Cup", Animation: "basketball.gif", Poster: "basketball.jpg", Aspect: "aspect-square"},
	{ID: "tennis", Title: "Tennis Open", Animation: "tennis.gif", Poster: "tennis.jpg", Aspect: "aspect-square"},
	{ID: "football", Title: "Football Weekend", Animation: "football.gif", Poster: "football.jpg", Aspect: "aspect-tall"},
	{ID: "casino", Title: "Casino Promo", Animation: "casino.gif", Poster: "casino.jpg", Aspect: "aspect-tall"},
}

// FindGif looks a GIF item up by id.
func FindGif(id string) (GifItem, bool) {
	for _, g := range GifItems {
		if g.ID == id {
			return g, true
		}
	}
	return GifItem{}, false
}

// Banner is one archived-animation banner, converted to video.
type Banner struct {
	ID     string
	Title  string
	Video  string
	Poster string
	Aspect string
}

// FlashBanners in display order.
var FlashBanners = []Banner{
	{ID: "leaderboard", Title: "Leaderboard 728x90", Video: "banners/leaderboard.webm", Poster: "banners/leaderboard.jpg", Aspect: "banner-leaderboard"},
	{ID: "skyscraper", Title: "Skyscraper 160x600", Video: "banners/skyscraper.webm", Poster: "banners/skyscraper.jpg", Aspect: "banner-skyscraper"},
	{ID: "rectangle", Title: "Rectangle 300x250", Video: "banners/rectangle.webm", Poster: "banners/rectangle.jpg", Aspect: "banner-rectangle"},
	{ID: "billboard", Title: "Billboard 970x250", Video: "banners/billboard.webm", Poster: "banners/billboard.jpg", Aspect: "banner-billboard"},
}

// ArchiveShowcase is the always visible case-study block of the archive tab.
var ArchiveShowcase = struct {
	Image       string
	Title       string
	Description string
	Points      []string
}{
	Image:       "showcase.jpg",
	Title:       "Flash animācijas arhīvs",
	Description: "Reklāmas baneri, kas sākotnēji veidoti Adobe Flash formātā un pārveidoti video.",
	Points: []string{
		"Kadru animācija un ActionScript",
		"Standarta IAB baneru izmēri",
		"Konvertēts uz WebM saglabāšanai",
	},
}

// ModelImages are the renders shown below the 3D viewer.
var ModelImages = []string{"render-1.jpg", "render-2.jpg", "render-3.jpg", "render-4.jpg"}

// StaticImageCount is the size of the fixed static grid.
const StaticImageCount = 10

// StaticImage returns the file name of the n-th static image (1-based).
func StaticImage(n int) string {
	return fmt.Sprintf("ab-portfolio-%d.jpg", n)
}

// Static collage assets.
const (
	StaticCollage   = "collage.jpg"
	StaticCollageHD = "collage-hd.jpg"
)
