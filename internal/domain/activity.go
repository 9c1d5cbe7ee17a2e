package domain

type TimelineEvent struct {
	EventID     string  `json:"event_id"`
	AccountID   string  `json:"account_id,omitempty"`
	EventType   string  `json:"event_type"`
	EventDate   string  `json:"event_date"`
	Title       string  `json:"title,omitempty"`
	Description string  `json:"description"`
	Amount      float64 `json:"amount,omitempty"`
	Status      string  `json:"status,omitempty"`
	Source      string  `json:"source,omitempty"`
}

type Opportunity struct {
	OpportunityID   string  `json:"opportunity_id"`
	AccountID       string  `json:"account_id,omitempty"`
	Name            string  `json:"opportunity_name"`
	Stage           string  `json:"stage"`
	Amount          float64 `json:"amount"`
	Probability     float64 `json:"probability"`
	CloseDate       string  `json:"close_date,omitempty"`
	ProductCategory string  `json:"product_category,omitempty"`
	Owner           string  `json:"owner,omitempty"`
}

type Ticket struct {
	TicketID           string  `json:"ticket_id"`
	AccountID          string  `json:"account_id,omitempty"`
	Subject            string  `json:"subject"`
	Priority           string  `json:"priority"`
	Status             string  `json:"status"`
	Category           string  `json:"category,omitempty"`
	CreatedDate        string  `json:"created_date,omitempty"`
	ResolvedDate       string  `json:"resolved_date,omitempty"`
	ResolutionTimeHrs  float64 `json:"resolution_time_hours,omitempty"`
	SatisfactionRating float64 `json:"satisfaction_rating,omitempty"`
}

type Invoice struct {
	InvoiceID   string  `json:"invoice_id"`
	AccountID   string  `json:"account_id,omitempty"`
	InvoiceDate string  `json:"invoice_date"`
	DueDate     string  `json:"due_date,omitempty"`
	Amount      float64 `json:"amount"`
	Currency    string  `json:"currency,omitempty"`
	Status      string  `json:"status"`
	PaidDate    string  `json:"paid_date,omitempty"`
	DaysOverdue int     `json:"days_overdue,omitempty"`
}
