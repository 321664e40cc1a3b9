package assetcat

import "github.com/fosave/fosave/fosave"

// wellKnownItem is a single built-in-fallback catalog row, ported from
// ali-raheem/fallout-se's WELL_KNOWN_ITEMS / WELL_KNOWN_ITEMS_F2 tables
// (itself derived from the Fallout Community Edition's proto_types.h and
// pro_item.msg). A weight of 0 means unknown/weightless, matching the
// source comment.
type wellKnownItem struct {
	pid    int32
	name   string
	weight int32
}

// wellKnownItems are shared between Game A and Game B.
var wellKnownItems = []wellKnownItem{
	// Armor
	{3, "Power Armor", 60},
	{232, "Hardened Power Armor", 60},

	// Ammo
	{38, "Small Energy Cell", 0},
	{39, "Micro Fusion Cell", 0},

	// Drugs & healing
	{40, "Stimpak", 1},
	{47, "First Aid Kit", 5},
	{48, "RadAway", 1},
	{53, "Mentats", 1},
	{87, "Buffout", 1},
	{91, "Doctor's Bag", 5},
	{106, "Nuka-Cola", 1},
	{110, "Psycho", 1},
	{124, "Beer", 1},
	{125, "Booze", 1},
	{144, "Super Stimpak", 1},

	// Money
	{41, "Bottle Caps", 0},

	// Explosives
	{51, "Dynamite", 3},
	{85, "Plastic Explosives", 3},
	{159, "Molotov Cocktail", 1},
	{206, "Dynamite", 3}, // armed
	{209, "Plastic Explosives", 3}, // armed

	// Tools & misc
	{52, "Geiger Counter", 3},
	{54, "Stealth Boy", 3},
	{59, "Motion Sensor", 5},
	{79, "Flare", 1},
	{205, "Flare", 1},          // lit
	{207, "Geiger Counter", 3}, // active
	{210, "Stealth Boy", 3},    // active

	// Books
	{73, "Big Book of Science", 3},
	{76, "Dean's Electronics", 3},
	{80, "First Aid Book", 3},
	{86, "Scout Handbook", 3},
	{102, "Guns and Bullets", 3},
}

// wellKnownItemsGameBOnly are proto IDs only present in Game B.
var wellKnownItemsGameBOnly = []wellKnownItem{
	{259, "Jet", 1},
	{260, "Jet Antidote", 1},
	{273, "Healing Powder", 2},
	{304, "Deck of Tragic Cards", 0},
	{331, "Cat's Paw Issue #5", 1},
	{348, "Advanced Power Armor", 60},
	{349, "Advanced Power Armor Mk II", 55},
	{383, "Shiv", 1},
	{390, "Solar Scorcher", 4},
	{399, "Super Cattle Prod", 5},
	{407, "Mega Power Fist", 5},
	{408, "Field Medic First Aid Kit", 5},
	{409, "Paramedic's Bag", 5},
	{433, "Mirrored Shades", 1},
	{499, "PIPBoy Lingual Enhancer", 0},
	{516, "PIPBoy Medical Enhancer", 0},
}

func lookupWellKnown(game fosave.Game, pid int32) (Entry, bool) {
	for _, item := range wellKnownItems {
		if item.pid == pid {
			return Entry{PID: pid, DisplayName: item.name, BaseWeight: item.weight}, true
		}
	}
	if game == fosave.GameB {
		for _, item := range wellKnownItemsGameBOnly {
			if item.pid == pid {
				return Entry{PID: pid, DisplayName: item.name, BaseWeight: item.weight}, true
			}
		}
	}
	return Entry{}, false
}
