package generator

import "sort"

// requiredSection groups variables without a default. It always sorts first.
const requiredSection = "REQUIRED"

// SectionGroup is one rendered section. Name == "" is the unnamed group,
// shown as Miscellaneous and always ordered last.
type SectionGroup struct {
	Name  string
	Calls []*EnvCall
}

// Organize groups call-sites by section and imposes the document order:
// REQUIRED first, named sections ascending, the unnamed group last, and keys
// ascending within each section. The input map is not modified and the
// result is deterministic for a given input.
func Organize(calls map[string]*EnvCall) []SectionGroup {
	bySection := map[string][]*EnvCall{}
	for _, call := range calls {
		section := call.Section()
		bySection[section] = append(bySection[section], call)
	}

	groups := make([]SectionGroup, 0, len(bySection))
	for name, group := range bySection {
		sort.Slice(group, func(i, j int) bool { return group[i].Key < group[j].Key })
		groups = append(groups, SectionGroup{Name: name, Calls: group})
	}

	sort.Slice(groups, func(i, j int) bool {
		a, b := groups[i].Name, groups[j].Name
		switch {
		case a == requiredSection:
			return b != requiredSection
		case b == requiredSection:
			return false
		case a == "":
			return false
		case b == "":
			return true
		default:
			return a < b
		}
	})
	return groups
}
