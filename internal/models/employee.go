package models

// Employee is an immutable snapshot of a record served by the remote record
// store. Local edits replace the whole value; nothing mutates fields in place.
type Employee struct {
	ID                int64  `json:"id"`
	EmployeeNumber    string `json:"employeeNumber"`
	Name              string `json:"name"`
	Designation       string `json:"designation"`
	Division          string `json:"division"`
	Function          string `json:"function"`
	SubgroupCode      string `json:"subgroupCode"`
	Location          string `json:"location"`
	City              string `json:"city"`
	Gender            string `json:"gender"`
	BirthDate         string `json:"birthDate"` // YYYY-MM-DD
	BloodGroup        string `json:"bloodGroup"`
	Status            string `json:"status"`
	Phone             string `json:"phone"`
	Email             string `json:"email"`
	WorkerType        string `json:"workerType"`
	Floor             string `json:"floor"`
	IntercomExtension string `json:"intercomExtension"`

	// Set only on records served by the recycled-records endpoint.
	DeletedOn   string `json:"deletedOn,omitempty"` // YYYY-MM-DD
	WorkerClass string `json:"workerClass,omitempty"`
}

// Grade is not stored by the record store; it is the trailing character of the
// subgroup code ("IOC Ofcr Gr A0" -> "0").
func (e Employee) Grade() string {
	runes := []rune(e.SubgroupCode)
	if len(runes) == 0 {
		return ""
	}
	return string(runes[len(runes)-1])
}

// Pagination contains pagination metadata returned in list responses.
type Pagination struct {
	Page       int `json:"page"`
	PageSize   int `json:"page_size"`
	TotalCount int `json:"total_count"`
}
