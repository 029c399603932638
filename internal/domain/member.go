package domain

// Member categories ("techie" levels).
const (
	CategoryStarter = "Starter"
	CategoryBuilder = "Builder"
	CategorySolver  = "Solver"
	CategoryWizard  = "Wizard"
)

const (
	AvailabilityAvailable     = "Available"
	AvailabilityAvailableSoon = "Available Soon"
	AvailabilityAssigned      = "Assigned"
)

type Member struct {
	ID                    string `json:"id"`
	CorporateEmail        string `json:"corporateEmail"`
	FullName              string `json:"fullName"`
	HireDate              string `json:"hireDate"`
	CurrentAssignedClient string `json:"currentAssignedClient"`
	Category              string `json:"category"`
	Location              string `json:"location"`
	AvailabilityStatus    string `json:"availabilityStatus"`
	PhotoURL              string `json:"photoUrl,omitempty"`
}

func ValidCategory(c string) bool {
	switch c {
	case CategoryStarter, CategoryBuilder, CategorySolver, CategoryWizard:
		return true
	}
	return false
}

func ValidAvailability(s string) bool {
	switch s {
	case AvailabilityAvailable, AvailabilityAvailableSoon, AvailabilityAssigned:
		return true
	}
	return false
}
