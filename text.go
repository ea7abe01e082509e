package main

// Built-in page copy, shown where the loaded dictionary has no value.
const (
	SiteTitle = "Aleksejs Babenko | Portfolio"

	HeroName     = "Aleksejs Babenko"
	HeroTitle    = "Grafiskais dizainers"
	HeroSubtitle = "Statiskais dizains, video, animācija un 3D modelēšana"
	HeroCTA      = "Skatīt darbus"

	AboutTitle = "Par mani"
	AboutIntro = "Grafiskais dizainers ar vairāk nekā desmit gadu pieredzi reklāmā, sporta mārketingā un iepakojuma dizainā."

	PortfolioTitle = "Portfolio"

	ContactTitle    = "Kontakti"
	ContactText     = "Ja vēlaties sadarboties, rakstiet man."
	ContactEmail    = "aleksejs.babenko@example.com"
	ContactLocation = "Rīga, Latvija"

	FooterText    = "© Aleksejs Babenko"
	FooterPrivacy = "Privātums"
)

var sectionLabels = map[string]string{
	"home":      "Sākums",
	"about":     "Par mani",
	"portfolio": "Portfolio",
	"contact":   "Kontakti",
}

var aboutTabLabels = map[string]string{
	"work":      "Darba pieredze",
	"education": "Izglītība",
	"languages": "Valodas",
	"skills":    "Prasmes",
	"interests": "Intereses",
}
