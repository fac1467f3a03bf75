package submission

import "math"

// Section is a visual grouping of the form used for completion markers.
type Section string

const (
	SectionPersonal  Section = "personal"
	SectionProject   Section = "project"
	SectionResources Section = "resources"
)

// Sections lists the sections in display order. A section's completion
// threshold depends on its position.
var Sections = []Section{SectionPersonal, SectionProject, SectionResources}

// trackedEntries is the number of progress entries: every scalar field plus
// the resource list as a whole.
const trackedEntries = 10

// SectionProgress reports whether one section has reached its threshold.
type SectionProgress struct {
	Section  Section
	Complete bool
}

// Progress is derived from a Record and never stored.
type Progress struct {
	Percent  int
	Filled   int
	Total    int
	Sections []SectionProgress
}

// ComputeProgress counts filled entries: a scalar is filled when its value is
// non-empty, and the resource list is filled when any item carries a remark
// or a link. The percentage is rounded half away from zero. Section i (zero
// based) is complete once the percentage reaches (i+1)/3 of 100.
func ComputeProgress(r Record) Progress {
	filled := 0
	for _, f := range Fields {
		if r.Value(f) != "" {
			filled++
		}
	}
	for _, item := range r.Resources {
		if item.Remark != "" || item.Link != "" {
			filled++
			break
		}
	}

	percent := int(math.Round(float64(filled) / trackedEntries * 100))

	sections := make([]SectionProgress, len(Sections))
	for i, s := range Sections {
		threshold := float64(i+1) / float64(len(Sections)) * 100
		sections[i] = SectionProgress{Section: s, Complete: float64(percent) >= threshold}
	}

	return Progress{
		Percent:  percent,
		Filled:   filled,
		Total:    trackedEntries,
		Sections: sections,
	}
}
