package domain

// Hospital represents a registered hospital, locatable by state and district.
type Hospital struct {
	HospitalID    string `json:"hospitalID"`
	Name          string `json:"name"`
	State         string `json:"state"`
	District      string `json:"district"`
	Address       string `json:"address,omitempty"`
	Phone         string `json:"phone,omitempty"`
	Email         string `json:"email,omitempty"`
	BedsTotal     int    `json:"bedsTotal"`
	BedsAvailable int    `json:"bedsAvailable"`
	AuditFields
}
