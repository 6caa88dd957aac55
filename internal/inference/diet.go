package inference

import (
	"strings"

	"github.com/forkcast/backend/internal/normalize"
	"github.com/forkcast/backend/internal/types"
)

// DietTags classifies a recipe against the diet vocabulary from its
// ingredient list alone. A recipe may carry several tags; explicit
// fields are never consulted.
func DietTags(r types.Recipe) []string {
	names := normalize.IngredientNames(r)

	hasMeat := anyMarker(names, meatWords)
	hasFish := anyMarker(names, fishWords)
	hasDairy := anyMarker(names, dairyWords)
	hasEgg := anyMarker(names, eggWords)
	hasGluten := anyMarker(names, glutenWords)
	hasSugarFamily := anyMarker(names, sugarFamilyWords)

	proteinHits := countMarkers(names, meatWords) +
		countMarkers(names, fishWords) +
		countMarkers(names, proteinExtraWords)
	carbHits := countMarkers(names, glutenWords) +
		countMarkers(names, starchyCarbWords) +
		countMarkers(names, sugaryCarbWords)

	var tags []string
	if !hasDairy {
		tags = append(tags, DietDairyFree)
	}
	if !hasGluten {
		tags = append(tags, DietGlutenFree)
	}

	if !hasMeat && !hasFish && !hasDairy && !hasEgg {
		tags = append(tags, DietVegan, DietVegetarian)
	} else if !hasMeat && !hasFish {
		tags = append(tags, DietVegetarian)
	}

	if proteinHits >= 2 && proteinHits >= carbHits {
		tags = append(tags, DietHighProtein)
	}
	lowCarb := carbHits <= 1 && !hasSugarFamily
	if lowCarb {
		tags = append(tags, DietLowCarb)
	}

	if !hasGluten && !hasDairy && !hasSugarFamily {
		tags = append(tags, DietPaleo)
	}
	if !hasGluten && (lowCarb || proteinHits >= 2) {
		tags = append(tags, DietKeto)
	}

	return dedupeTags(tags)
}

// anyMarker reports whether any ingredient name contains any marker word
func anyMarker(names, markers []string) bool {
	for _, m := range markers {
		for _, n := range names {
			if strings.Contains(n, m) {
				return true
			}
		}
	}
	return false
}

// countMarkers counts distinct marker words present; each marker counts
// once no matter how many ingredients contain it
func countMarkers(names, markers []string) int {
	count := 0
	for _, m := range markers {
		for _, n := range names {
			if strings.Contains(n, m) {
				count++
				break
			}
		}
	}
	return count
}

// dedupeTags removes duplicates and anything outside the vocabulary,
// preserving first-appearance order
func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		if seen[tag] || !isDietTag(tag) {
			continue
		}
		seen[tag] = true
		out = append(out, tag)
	}
	return out
}

func isDietTag(tag string) bool {
	for _, t := range DietTagVocabulary {
		if t == tag {
			return true
		}
	}
	return false
}
