// Package lookup holds the closed vocabularies of the catalog: the sets a card
// can be printed in and the challenge icons it can carry. Each entry maps the
// display name used by the catalog to the symbol the Elm client declares.
package lookup

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownSet  = errors.New("unknown set")
	ErrUnknownIcon = errors.New("unknown icon")
)

// UnknownError reports a name that is missing from one of the tables
type UnknownError struct {
	Table string // "set" or "icon"
	Key   string
}

func (e *UnknownError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Table, e.Key)
}

// Is lets errors.Is match the sentinel for the table that missed.
func (e *UnknownError) Is(target error) bool {
	switch target {
	case ErrUnknownSet:
		return e.Table == "set"
	case ErrUnknownIcon:
		return e.Table == "icon"
	}
	return false
}

// Icon is a challenge icon as the Elm Icon type models it
type Icon struct {
	Kind  string // Military, Intrigue or Power
	Naval bool
}

// Constructor returns the Elm constructor name, e.g. Icon_Power
func (i Icon) Constructor() string {
	return "Icon_" + i.Kind
}

const navalSuffix = " (Naval)"

var sets = map[string]string{
	"Core":               "Set_Core",
	"Kings of the Sea":   "Set_KingsOfTheSea",
	"Princes of the Sun": "Set_PrincesOfTheSun",
	"Lords of Winter":    "Set_LordsOfWinter",
	"Kings of the Storm": "Set_KingsOfTheStorm",
	"Queen of Dragons":   "Set_QueenOfDragons",
	"Lions of the Rock":  "Set_LionsOfTheRock",

	"The War of Five Kings": "Set_TheWarOfTheFiveKings",
	"Ancient Enemies":       "Set_AncientEnemies",
	"Sacred Bonds":          "Set_SacredBonds",
	"Epic Battles":          "Set_EpicBattles",
	"Battle of Ruby Ford":   "Set_BattleOfRubyFord",
	"Calling the Banners":   "Set_CallingTheBanners",

	"A Song of Summer":    "Set_ASongOfSummer",
	"The Winds of Winter": "Set_TheWindsOfWinter",
	"A Change of Seasons": "Set_AChangeOfSeasons",
	"The Raven's Song":    "Set_TheRavensSong",
	"Refugees of War":     "Set_RefugeesOfWar",
	"Scattered Armies":    "Set_ScatteredArmies",

	"City of Secrets":              "Set_CityOfSecrets",
	"A Time of Trials":             "Set_ATimeOfTrials",
	"The Tower of the Hand":        "Set_TheTowerOfTheHand",
	"Tales from the Red Keep":      "Set_TalesFromTheRedKeep",
	"Secrets and Spies":            "Set_SecretsAndSpies",
	"The Battle of Blackwater Bay": "Set_TheBattleOfBlackwaterBay",

	"Wolves of the North":     "Set_WolvesOfTheNorth",
	"Beyond the Wall":         "Set_BeyondTheWall",
	"A Sword in the Darkness": "Set_ASwordInTheDarkness",
	"The Wildling Horde":      "Set_TheWildlingHorde",
	"A King in the North":     "Set_AKingInTheNorth",
	"Return of the Others":    "Set_ReturnOfTheOthers",

	"Illyrio's Gift":        "Set_IllyriosGift",
	"Rituals of R'hllor":    "Set_RitualsOfRhllor",
	"Mountains of the Moon": "Set_MountainsOfTheMoon",
	"A Song of Silence":     "Set_ASongOfSilence",
	"Of Snakes and Sand":    "Set_OfSnakesAndSand",
	"Dreadfort Betrayal":    "Set_DreadfortBetrayal",

	"Gates of the Citadel":    "Set_GatesOfTheCitadel",
	"Forging the Chain":       "Set_ForgingTheChain",
	"Called by the Conclave":  "Set_CalledByTheConclave",
	"The Isle of Ravens":      "Set_TheIlseOfRavens",
	"Mask of the Archmaester": "Set_MaskOfTheArchmaester",
	"Here to Serve":           "Set_HereToServe",

	"The Tourney for the Hand": "Set_TourneyForTheHand",
	"The Grand Melee":          "Set_TheGrandMelee",
	"On Dangerous Grounds":     "Set_OnDangerousGrounds",
	"Where Loyalty Lies":       "Set_WhereLoyaltyLies",
	"Trial By Combat":          "Set_TrialByCombat",
	"A Poisoned Spear":         "Set_APoisonedSpear",

	"Valar Morghulis":              "Set_ValarMorghulis",
	"Valar Dohaeris":               "Set_ValarDohaeris",
	"Chasing Dragons":              "Set_ChasingDragons",
	"A Harsh Mistress":             "Set_AHarshMistress",
	"The House of Black and White": "Set_TheHouseOfBlackAndWhite",
	"A Roll of the Dice":           "Set_ARollOfTheDice",

	"Reach of the Kraken":   "Set_ReachOfTheKraken",
	"The Grand Fleet":       "Set_TheGrandFleet",
	"The Pirates of Lys":    "Set_ThePiratesOfLys",
	"A Turn of the Tide":    "Set_ATurnOfTheTide",
	"The Captain's Command": "Set_TheCaptainsCommand",
	"A Journey's End":       "Set_AJourneysEnd",

	"The Banners Gather":   "Set_TheBannersGather",
	"Fire and Ice":         "Set_FireAndIce",
	"The Kingsguard":       "Set_TheKingsguard",
	"The Horn that Wakes":  "Set_TheHornThatWakes",
	"Forgotten Fellowship": "Set_ForgottenFellowship",
	"A Hidden Agenda":      "Set_AHiddenAgenda",

	"Spoils of War":          "Set_SpoilsOfWar",
	"The Champion's Purse":   "Set_TheChampionsPurse",
	"Fire Made Flesh":        "Set_FireMadeFlesh",
	"Ancestral Home":         "Set_AncestralHome",
	"The Prize of the North": "Set_ThePrizeOfTheNorth",
	"A Dire Message":         "Set_ADireMessage",

	"Secrets and Schemes": "Set_SecretsAndSchemes",
	"A Deadly Game":       "Set_ADeadlyGame",
	"The Valemen":         "Set_TheValemen",
	"A Time for Wolves":   "Set_ATimeForWolves",
	"House of Talons":     "Set_HouseOfTalons",
	"The Blue is Calling": "Set_TheBlueIsCalling",
}

var icons = buildIcons("Military", "Intrigue", "Power")

// buildIcons registers each kind twice, plain and with the naval suffix
func buildIcons(kinds ...string) map[string]Icon {
	table := make(map[string]Icon, len(kinds)*2)
	for _, kind := range kinds {
		table[kind] = Icon{Kind: kind}
		table[kind+navalSuffix] = Icon{Kind: kind, Naval: true}
	}
	return table
}

// ResolveSet maps a set display name to its Elm symbol
func ResolveSet(name string) (string, error) {
	symbol, ok := sets[name]
	if !ok {
		return "", &UnknownError{Table: "set", Key: name}
	}
	return symbol, nil
}

// ResolveIcon maps an icon display name, such as "Power (Naval)", to its Icon
func ResolveIcon(name string) (Icon, error) {
	icon, ok := icons[name]
	if !ok {
		return Icon{}, &UnknownError{Table: "icon", Key: name}
	}
	return icon, nil
}

// Sets returns every known set display name, sorted
func Sets() []string {
	return sortedKeys(sets)
}

// Icons returns every known icon display name, sorted
func Icons() []string {
	return sortedKeys(icons)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
