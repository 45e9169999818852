// Package team defines the core data model for NCAA team identity
// resolution: the Team record, the Registry snapshot, canonical-name
// extraction, and alias generation.
//
// Every external data source names the same ~365 teams differently
// ("Miami (FL)" vs "Miami FL" vs "Miami Hurricanes"). This package owns
// the deterministic transformations between those spellings: a display
// name is split into canonical name and mascot using a static mascot
// table, and a canonical/display pair is expanded into the full set of
// normalized aliases a human or external site might use for it.
package team
