package resume

// Record is the structured extraction returned by the upload-resume
// endpoint. The JSON shape is fixed: a personalInfo object plus three
// arrays, all present even when empty.
type Record struct {
	PersonalInfo   map[string]string `json:"personalInfo"`
	Skills         []Skill           `json:"skills"`
	Experience     []Experience      `json:"experience"`
	Certifications []Certification   `json:"certifications"`
}

// Skill is a named skill with a coarse level label and a 0-100 progress
// percentage, both model-assigned.
type Skill struct {
	Name     string `json:"name"`
	Level    string `json:"level"`
	Progress int    `json:"progress"`
}

type Experience struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Duration    string `json:"duration"`
	Description string `json:"description"`
}

type Certification struct {
	Name string `json:"name"`
	Year string `json:"year"`
}

// EmptyRecord returns the canonical all-empty Record. It marshals as
// {"personalInfo":{},"skills":[],"experience":[],"certifications":[]} and is
// the fallback for every extraction or generation failure.
func EmptyRecord() Record {
	return Record{
		PersonalInfo:   map[string]string{},
		Skills:         []Skill{},
		Experience:     []Experience{},
		Certifications: []Certification{},
	}
}

// fillEmpty replaces nil containers so a parsed Record always marshals with
// the full shape.
func fillEmpty(rec *Record) {
	if rec.PersonalInfo == nil {
		rec.PersonalInfo = map[string]string{}
	}
	if rec.Skills == nil {
		rec.Skills = []Skill{}
	}
	if rec.Experience == nil {
		rec.Experience = []Experience{}
	}
	if rec.Certifications == nil {
		rec.Certifications = []Certification{}
	}
}
