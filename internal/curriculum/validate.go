package curriculum

import (
	"fmt"
	"strings"
)

// Validate performs all structural checks on the loaded catalog and override
// table. Returns a combined error describing all problems found, or nil if
// valid.
func Validate() error {
	return validateCatalog(reg)
}

func validateCatalog(r *registry) error {
	var errs []string

	idSet := make(map[MissionID]bool, len(r.missions))
	for _, m := range r.missions {
		if idSet[m.ID] {
			errs = append(errs, fmt.Sprintf("duplicate mission ID: %q", m.ID))
		}
		idSet[m.ID] = true
		errs = append(errs, validateMission(m)...)
	}

	// Every level must be populated.
	for lvl := 1; lvl <= MaxLevel; lvl++ {
		if len(r.byLevel[lvl]) == 0 {
			errs = append(errs, fmt.Sprintf("level %d has no missions", lvl))
		}
	}

	// Overrides must target existing, path-specific slots and carry the
	// slot's own id.
	for key, m := range r.overrides {
		if !key.Path.IsSelected() {
			errs = append(errs, fmt.Sprintf("override for slot %q keyed to no path", key.ID))
		}
		if !idSet[key.ID] {
			errs = append(errs, fmt.Sprintf("override targets nonexistent slot %q", key.ID))
		}
		if !key.ID.PathSpecific() {
			errs = append(errs, fmt.Sprintf("override targets non-path-specific slot %q", key.ID))
		}
		if m.ID != key.ID {
			errs = append(errs, fmt.Sprintf("override for slot %q carries mission id %q", key.ID, m.ID))
		}
		errs = append(errs, validateMission(*m)...)
	}

	// Each path must cover every path-specific slot.
	for _, p := range AllPaths() {
		for _, id := range PathSlotIDs() {
			if !id.PathSpecific() {
				continue
			}
			if _, ok := r.overrides[pathSlot{Path: p, ID: id}]; !ok {
				errs = append(errs, fmt.Sprintf("path %q has no override for slot %q", p, id))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("curriculum validation failed:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

func validateMission(m Mission) []string {
	var errs []string
	prefix := fmt.Sprintf("mission %q", m.ID)

	if m.Title == "" {
		errs = append(errs, prefix+": empty title")
	}
	if len(m.Criteria) == 0 {
		errs = append(errs, prefix+": no criteria")
	}
	if m.RequiredCount() == 0 && len(m.Criteria) > 0 {
		errs = append(errs, prefix+": all criteria are bonus")
	}

	critSet := make(map[string]bool, len(m.Criteria))
	for _, c := range m.Criteria {
		if c.ID == "" {
			errs = append(errs, prefix+": criterion with empty id")
			continue
		}
		if critSet[c.ID] {
			errs = append(errs, fmt.Sprintf("%s: duplicate criterion id %q", prefix, c.ID))
		}
		critSet[c.ID] = true
		if c.Label == "" {
			errs = append(errs, fmt.Sprintf("%s: criterion %q has empty label", prefix, c.ID))
		}
	}
	return errs
}
