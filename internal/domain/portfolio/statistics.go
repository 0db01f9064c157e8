package portfolio

// Statistics is a derived display aggregate computed from the profile and its
// content counts. It is never stored.
type Statistics struct {
	YearsExperience  int    `json:"years_experience"`
	YearsAtNokia     int    `json:"years_at_nokia"`
	ProjectsManaged  int    `json:"projects_managed"`
	SecurityDomains  int    `json:"security_domains"`
	TeamsManagedSize int    `json:"teams_managed_size"`
	BudgetManaged    string `json:"budget_managed"`
}
