package navigating

// Kind is which landing page the organization switcher shows.
type Kind string

const (
	KindGroup           Kind = "group"
	KindOpCo            Kind = "opco"
	KindBusinessUnit    Kind = "business_unit"
	KindCustomerProfile Kind = "customer_profile"
)

// Selection holds the switcher's three independent choices.
type Selection struct {
	OpCo         string `json:"opco,omitempty"`
	BusinessUnit string `json:"business_unit,omitempty"`
	CustomerID   string `json:"customer_id,omitempty"`
}

// ViewState is the organization view. Kind is always derived from Selection.
type ViewState struct {
	Kind      Kind      `json:"kind"`
	Selection Selection `json:"selection"`
}

func NewViewState(sel Selection) ViewState {
	return ViewState{Kind: kindOf(sel), Selection: sel}
}

// kindOf: customer, then business unit, then OpCo, then group.
func kindOf(sel Selection) Kind {
	switch {
	case sel.CustomerID != "":
		return KindCustomerProfile
	case sel.BusinessUnit != "":
		return KindBusinessUnit
	case sel.OpCo != "":
		return KindOpCo
	default:
		return KindGroup
	}
}

// SelectOpCo keeps the business unit and customer; the caller rechecks them.
func (v ViewState) SelectOpCo(opCoID string) ViewState {
	sel := v.Selection
	sel.OpCo = opCoID
	return NewViewState(sel)
}

func (v ViewState) SelectBusinessUnit(unitID string) ViewState {
	sel := v.Selection
	sel.BusinessUnit = unitID
	return NewViewState(sel)
}

func (v ViewState) SelectCustomer(customerID string) ViewState {
	sel := v.Selection
	sel.CustomerID = customerID
	return NewViewState(sel)
}

func (v ViewState) ClearCustomer() ViewState {
	return v.SelectCustomer("")
}

func (v ViewState) Reset() ViewState {
	return NewViewState(Selection{})
}

// SelectionEvent is a serialized switcher action.
type SelectionEvent struct {
	Type  string `json:"type"`
	Value string `json:"value,omitempty"`
}

const (
	EventSelectOpCo         = "select_opco"
	EventSelectBusinessUnit = "select_business_unit"
	EventReset              = "reset"
)

func ApplySelection(v ViewState, e SelectionEvent) (ViewState, error) {
	switch e.Type {
	case EventSelectOpCo:
		return v.SelectOpCo(e.Value), nil
	case EventSelectBusinessUnit:
		return v.SelectBusinessUnit(e.Value), nil
	case EventSelectCustomer:
		return v.SelectCustomer(e.Value), nil
	case EventReset:
		return v.Reset(), nil
	default:
		return v, ErrInvalidTransition
	}
}
