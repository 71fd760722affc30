package domain

// Client is a customer of the company.
type Client struct {
	ClientID    string `json:"clientID"`
	Name        string `json:"name"`
	CompanyName string `json:"companyName"`
	Email       string `json:"email"`
	AuditFields
}
