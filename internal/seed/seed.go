// Package seed fills a fresh database with the pages and starter content the
// site ships with. Running it again only adds what is missing.
package seed

import (
	"fmt"

	"github.com/potatolake/internal/db"
	"github.com/potatolake/internal/logging"
	"github.com/potatolake/internal/service"
	"gorm.io/gorm"
)

// Result counts the rows a run inserted.
type Result struct {
	FishSpecies int
	DnrLinks    int
}

type species struct {
	name        string
	description string
}

// Species listed on the fishing page, in display order.
var lakeSpecies = []species{
	{"Walleye", "The lake's signature game fish. Best at dawn and dusk along the rocky points."},
	{"Northern Pike", "Aggressive ambush predator found along weed edges in the bays."},
	{"Largemouth Bass", "Holds in shallow cover, docks and lily pads through summer."},
	{"Smallmouth Bass", "Prefers rock and gravel structure in deeper, clearer water."},
	{"Muskellunge", "The fish of ten thousand casts. Catch and release strongly encouraged."},
	{"Black Crappie", "Schools around submerged brush; a spring and early ice favourite."},
	{"Bluegill", "Plentiful panfish near shore, perfect for young anglers."},
	{"Yellow Perch", "Abundant year round and a staple of winter ice fishing."},
	{"Pumpkinseed", "Colourful sunfish found in warm, weedy shallows."},
	{"Rock Bass", "Red-eyed panfish that hangs around rocky shoreline."},
	{"Bullhead", "Bottom feeder most active on warm summer nights."},
}

var dnrLinks = []service.DnrLinkInput{
	{
		Title:       "LakeFinder: Potato Lake",
		URL:         "https://www.dnr.state.mn.us/lakefind/index.html",
		Description: db.StringPtr("Depth maps, water quality and lake survey data."),
	},
	{
		Title:       "Fishing regulations",
		URL:         "https://www.dnr.state.mn.us/regulations/fishing/index.html",
		Description: db.StringPtr("Seasons, size limits and daily bag limits."),
	},
	{
		Title:       "Aquatic invasive species",
		URL:         "https://www.dnr.state.mn.us/invasives/aquatic/index.html",
		Description: db.StringPtr("Clean, drain, dry: how to keep invasives out of the lake."),
	},
}

// Run provisions every page and inserts starter content into empty collections.
func Run(gdb *gorm.DB) (Result, error) {
	var result Result
	if gdb == nil {
		return result, fmt.Errorf("seed: database not initialized")
	}

	if err := service.NewPageService(gdb).EnsureAll(); err != nil {
		return result, fmt.Errorf("seed pages: %w", err)
	}
	content := service.NewContent(gdb)

	count, err := content.FishSpecies.Count()
	if err != nil {
		return result, fmt.Errorf("seed fish species: %w", err)
	}
	if count == 0 {
		for i, s := range lakeSpecies {
			input := service.FishSpeciesInput{Name: s.name, Description: s.description, Order: i + 1}
			if _, err := content.FishSpecies.Create(input); err != nil {
				return result, fmt.Errorf("seed fish species %s: %w", s.name, err)
			}
			result.FishSpecies++
		}
	}

	count, err = content.DnrLinks.Count()
	if err != nil {
		return result, fmt.Errorf("seed dnr links: %w", err)
	}
	if count == 0 {
		for _, link := range dnrLinks {
			if _, err := content.DnrLinks.Create(link); err != nil {
				return result, fmt.Errorf("seed dnr link %s: %w", link.Title, err)
			}
			result.DnrLinks++
		}
	}

	logging.Info().
		Int("fish_species", result.FishSpecies).
		Int("dnr_links", result.DnrLinks).
		Msg("seed complete")
	return result, nil
}
