package app

import (
	"time"

	"github.com/rimiko/showcase/internal/carousel/strip"
	"github.com/rimiko/showcase/internal/page"
)

// Section ids, matching the navigation anchors.
const (
	sectionHome      = "home"
	sectionProducts  = "products"
	sectionResources = "resources"
	sectionFooter    = "footer"
)

// Section heights in rows.
const (
	homeHeight      = 9
	productsHeight  = 15
	resourcesHeight = 14
	footerHeight    = 3

	// Rows from the top of the products section to the card row.
	cardsOffset = 4
	cardHeight  = 8
)

// navItems are the header links in order.
var navItems = []struct {
	Key    string
	Anchor string
}{
	{"nav.home", page.AnchorHome},
	{"nav.products", page.AnchorProducts},
	{"nav.resources", "#" + sectionResources},
}

func pageLayout() page.Layout {
	return page.NewLayout(
		page.Section{ID: sectionHome, Height: homeHeight},
		page.Section{ID: sectionProducts, Height: productsHeight},
		page.Section{ID: sectionResources, Height: resourcesHeight},
		page.Section{ID: sectionFooter, Height: footerHeight},
	)
}

func productCards() []strip.Card {
	return []strip.Card{
		{TitleKey: "products.items.0.title", DescKey: "products.items.0.desc"},
		{TitleKey: "products.items.1.title", DescKey: "products.items.1.desc"},
		{TitleKey: "products.items.2.title", DescKey: "products.items.2.desc"},
		{TitleKey: "products.items.3.title", DescKey: "products.items.3.desc"},
	}
}

// resourceCount is the number of resources.cards.N entries.
const resourceCount = 6

// resourceLinks are the click targets of the resource cards. Targets that
// start with "#" are page anchors; the rest go to Options.OpenLink.
var resourceLinks = [resourceCount]string{
	"/resources/optimization-tools",
	"/resources/playbook",
	"/resources/windows-lite",
	"/resources/toolkit",
	"/resources/programme",
	"/community",
}

// statusDuration is how long a link notice replaces the key help.
const statusDuration = 3 * time.Second
