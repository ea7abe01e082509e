package content

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// InfoEntry is one line of an "additional info" block. The dictionary may hold
// a plain string or number (legacy) or a typed object ({type:"text"} /
// {type:"list"}).
type InfoEntry struct {
	Kind  string
	Text  string
	Items []string
}

const (
	InfoText = "text"
	InfoList = "list"
)

func (e *InfoEntry) UnmarshalJSON(raw []byte) error {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return fmt.Errorf("additional info entry: %w", err)
	}
	switch t := v.(type) {
	case string:
		*e = InfoEntry{Kind: InfoText, Text: t}
		return nil
	case float64, bool:
		*e = InfoEntry{Kind: InfoText, Text: string(raw)}
		return nil
	case nil:
		*e = InfoEntry{}
		return nil
	}
	var typed struct {
		Type    string   `json:"type"`
		Content string   `json:"content"`
		Items   []string `json:"items"`
	}
	if err := json.Unmarshal(raw, &typed); err != nil {
		return fmt.Errorf("additional info entry: %w", err)
	}
	*e = InfoEntry{Kind: typed.Type, Text: typed.Content, Items: typed.Items}
	return nil
}

type Experience struct {
	Period         string      `json:"period"`
	Duration       string      `json:"duration"`
	Company        string      `json:"company"`
	Position       string      `json:"position"`
	AdditionalInfo []InfoEntry `json:"additionalInfo"`
}

type Education struct {
	Degree         string      `json:"degree"`
	Institution    string      `json:"institution"`
	Period         string      `json:"period"`
	AdditionalInfo []InfoEntry `json:"additionalInfo"`
}

type Language struct {
	Name       string  `json:"name"`
	Level      string  `json:"level"`
	Percentage Percent `json:"percentage"`
}

// Percent is a language level. Dictionaries write it as a number or as a
// numeric string such as "90" or "90%".
type Percent float64

func (p *Percent) UnmarshalJSON(raw []byte) error {
	var f float64
	if err := json.Unmarshal(raw, &f); err == nil {
		*p = Percent(f)
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return fmt.Errorf("percentage: %w", err)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "%")), 64)
	if err != nil {
		return fmt.Errorf("percentage %q: %w", s, err)
	}
	*p = Percent(f)
	return nil
}

// Width is the progress bar width, clamped to 0..100.
func (l Language) Width() float64 {
	switch {
	case l.Percentage < 0:
		return 0
	case l.Percentage > 100:
		return 100
	}
	return float64(l.Percentage)
}

type SkillCategory struct {
	Name  string   `json:"name"`
	Icon  string   `json:"icon"`
	Items []string `json:"items"`
}

type Skills struct {
	Categories []SkillCategory `json:"categories"`
}

type Interest struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Family bool   `json:"family"`
}

type InterestCategory struct {
	Name  string     `json:"name"`
	Items []Interest `json:"items"`
}

type Interests struct {
	SingleItems []Interest         `json:"singleItems"`
	Categories  []InterestCategory `json:"categories"`
}

var skillIcons = map[string]string{
	"Vadības un komunikācijas prasmes": "fas fa-users-cog",
	"Datorprasmes":                     "fas fa-laptop-code",
	"Tehniskās prasmes":                "fas fa-tools",
	"Poligrāfijas prasmes":             "fas fa-print",
	"Datorgrafika un dizains":          "fas fa-palette",
	"Papildu informācija":              "fas fa-info-circle",
}

// SkillIcon picks the category's own icon, then the known-name table.
func SkillIcon(c SkillCategory) string {
	if c.Icon != "" {
		return c.Icon
	}
	if icon, ok := skillIcons[c.Name]; ok {
		return icon
	}
	return "fas fa-star"
}

// familyInterest is the item highlighted when the dictionary does not flag one.
const familyInterest = "Laiks ar ģimeni"

func (i Interest) IsFamily() bool { return i.Family || i.Name == familyInterest }

// Slug turns a display name into an id fragment.
func Slug(name string) string {
	var b strings.Builder
	dash := false
	for _, r := range strings.ToLower(name) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
