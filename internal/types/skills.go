package types

// Display category names, in the order the extractor declares them.
const (
	CategoryCoreCS    = "Core CS"
	CategoryLanguages = "Languages"
	CategoryWeb       = "Web"
	CategoryData      = "Data"
	CategoryCloud     = "Cloud/DevOps"
	CategoryTesting   = "Testing"
	CategoryGeneral   = "General"
)

// DefaultOtherSkills is the generic fallback stack recorded when a JD
// matches no declared keywords ("general fresher" case).
var DefaultOtherSkills = []string{
	"Communication",
	"Problem solving",
	"Basic coding",
	"Projects",
}

// ExtractedSkills is the canonical 7-key form of detected skills. Each
// slice holds distinct display-cased skill names in keyword order.
type ExtractedSkills struct {
	CoreCS    []string `json:"coreCS"`
	Languages []string `json:"languages"`
	Web       []string `json:"web"`
	Data      []string `json:"data"`
	Cloud     []string `json:"cloud"`
	Testing   []string `json:"testing"`
	Other     []string `json:"other"`
}

// CategorySkills pairs a display category name with its skills.
type CategorySkills struct {
	Name   string
	Skills []string
}

// Display converts canonical skills back to the human category names used
// for presentation and export, in declared category order.
func (s ExtractedSkills) Display() []CategorySkills {
	return []CategorySkills{
		{Name: CategoryCoreCS, Skills: s.CoreCS},
		{Name: CategoryLanguages, Skills: s.Languages},
		{Name: CategoryWeb, Skills: s.Web},
		{Name: CategoryData, Skills: s.Data},
		{Name: CategoryCloud, Skills: s.Cloud},
		{Name: CategoryTesting, Skills: s.Testing},
		{Name: CategoryGeneral, Skills: s.Other},
	}
}

// AllSkills flattens every skill string in canonical key order. This is
// the iteration order used for confidence toggles and live scoring.
func (s ExtractedSkills) AllSkills() []string {
	all := make([]string, 0,
		len(s.CoreCS)+len(s.Languages)+len(s.Web)+len(s.Data)+len(s.Cloud)+len(s.Testing)+len(s.Other))
	all = append(all, s.CoreCS...)
	all = append(all, s.Languages...)
	all = append(all, s.Web...)
	all = append(all, s.Data...)
	all = append(all, s.Cloud...)
	all = append(all, s.Testing...)
	all = append(all, s.Other...)
	return all
}
