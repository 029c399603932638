package domain

// ProfileAssignment is the profile-level assignment history entry. It is a
// denormalized mirror of MemberAssignment kept for the member detail view;
// the assignment usecase writes both in the same step.
type ProfileAssignment struct {
	ClientName string `json:"clientName"`
	Role       string `json:"role,omitempty"`
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate,omitempty"`
	IsCurrent  bool   `json:"isCurrent"`
}

// MemberProfile is owned 1:1 by its Member: created alongside it, deleted
// with it.
type MemberProfile struct {
	ID                       string              `json:"id"`
	MemberID                 string              `json:"memberId"`
	Assignments              []ProfileAssignment `json:"assignments"`
	RolesAndTasks            []string            `json:"rolesAndTasks"`
	AppreciationsFromClients []string            `json:"appreciationsFromClients"`
	FeedbackComments         []string            `json:"feedbackComments"`
	PeriodsInTalentPool      []string            `json:"periodsInTalentPool"`
	AboutMe                  string              `json:"aboutMe"`
	Bio                      string              `json:"bio"`
	ContactInfo              string              `json:"contactInfo"`
	SocialConnections        []string            `json:"socialConnections"`
	Status                   string              `json:"status"`
	Badges                   []string            `json:"badges"`
	Certifications           []string            `json:"certifications"`
	Assessments              []string            `json:"assessments"`
	ProfessionalGoals        []string            `json:"professionalGoals"`
	CareerInterests          []string            `json:"careerInterests"`
}
