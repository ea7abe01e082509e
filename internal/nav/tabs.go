package nav

import "github.com/samber/lo"

// Top-level sections and about sub-tabs, in declaration order.
var (
	Sections  = []string{"home", "about", "portfolio", "contact"}
	AboutTabs = []string{"work", "education", "languages", "skills", "interests"}
)

// TabGroup is a set of mutually exclusive tabs. The first declared tab starts
// active and exactly one is active at any time.
type TabGroup struct {
	name   string
	ids    []string
	active string
}

func NewTabGroup(name string, ids ...string) *TabGroup {
	g := &TabGroup{name: name, ids: append([]string(nil), ids...)}
	if len(ids) > 0 {
		g.active = ids[0]
	}
	return g
}

// Select activates id. Ids outside the group are ignored.
func (g *TabGroup) Select(id string) bool {
	if !lo.Contains(g.ids, id) {
		return false
	}
	g.active = id
	return true
}

func (g *TabGroup) Name() string   { return g.name }
func (g *TabGroup) Active() string { return g.active }
func (g *TabGroup) IDs() []string  { return append([]string(nil), g.ids...) }

func (g *TabGroup) IsActive(id string) bool { return g.active == id }

// HoverGroup is the skills sidebar: hovering a tab activates it, leaving the
// whole group restores the last clicked tab (the first tab if none was).
type HoverGroup struct {
	TabGroup
	pinned string
}

func NewHoverGroup(name string, ids ...string) *HoverGroup {
	g := &HoverGroup{TabGroup: *NewTabGroup(name, ids...)}
	g.pinned = g.active
	return g
}

// Enter previews id without pinning it.
func (g *HoverGroup) Enter(id string) bool { return g.Select(id) }

// Click activates and pins id.
func (g *HoverGroup) Click(id string) bool {
	if !g.Select(id) {
		return false
	}
	g.pinned = id
	return true
}

// LeaveGroup restores the pinned tab and returns it.
func (g *HoverGroup) LeaveGroup() string {
	g.active = g.pinned
	return g.active
}

// Pinned is the last explicitly selected tab.
func (g *HoverGroup) Pinned() string { return g.pinned }
