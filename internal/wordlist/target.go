// Package wordlist derives candidate passwords and PINs from facts about a
// person or an organization.
package wordlist

// Kind names the variant of a Target.
type Kind string

const (
	KindHuman        Kind = "human"
	KindOrganization Kind = "organization"
)

// Target is a record the generator can mine for tokens. It is implemented
// only by HumanTarget and OrganizationTarget.
type Target interface {
	Kind() Kind
	isTarget()
}

// HumanTarget holds optional facts about a person. Empty fields contribute
// nothing. Lists (children, keywords) are comma separated.
type HumanTarget struct {
	FullName           string `json:"full_name,omitempty"`
	Nickname           string `json:"nickname,omitempty"`
	BirthDate          string `json:"birth_date,omitempty"` // MM/DD/YYYY or MM-DD-YYYY
	MobileNumber       string `json:"mobile_number,omitempty"`
	PetName            string `json:"pet_name,omitempty"`
	SpouseName         string `json:"spouse_name,omitempty"`
	ChildrenNames      string `json:"children_names,omitempty"`
	FavoriteTeam       string `json:"favorite_team,omitempty"`
	FavoriteColor      string `json:"favorite_color,omitempty"`
	Hometown           string `json:"hometown,omitempty"`
	FavoriteHobby      string `json:"favorite_hobby,omitempty"`
	FavoriteMovie      string `json:"favorite_movie,omitempty"`
	AdditionalKeywords string `json:"additional_keywords,omitempty"`
}

// OrganizationTarget holds optional facts about an organization. Location
// and products are comma separated.
type OrganizationTarget struct {
	Name         string `json:"name,omitempty"`
	Abbreviation string `json:"abbreviation,omitempty"`
	FoundingYear string `json:"founding_year,omitempty"`
	Domain       string `json:"domain,omitempty"`
	Location     string `json:"location,omitempty"`
	Industry     string `json:"industry,omitempty"`
	Products     string `json:"products,omitempty"`
	Slogan       string `json:"slogan,omitempty"`
	CEOName      string `json:"ceo_name,omitempty"`
}

func (HumanTarget) Kind() Kind        { return KindHuman }
func (OrganizationTarget) Kind() Kind { return KindOrganization }

func (HumanTarget) isTarget()        {}
func (OrganizationTarget) isTarget() {}
