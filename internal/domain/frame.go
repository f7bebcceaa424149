package domain

// Action is the closed set of interaction screens. Router transition tables
// and render templates both switch over it, which keeps the two in sync when
// a screen is added.
type Action string

const (
	ActionHome    Action = "home"
	ActionRights  Action = "rights"
	ActionRecord  Action = "record"
	ActionScripts Action = "scripts"
	ActionShare   Action = "share"
)

// Actions lists every screen in a fixed order.
func Actions() []Action {
	return []Action{ActionHome, ActionRights, ActionRecord, ActionScripts, ActionShare}
}

// ParseAction maps an inbound action string onto the closed set. The second
// return is false for anything outside it; callers fall back to the home
// table with an empty content body rather than failing.
func ParseAction(s string) (Action, bool) {
	switch Action(s) {
	case ActionHome, ActionRights, ActionRecord, ActionScripts, ActionShare:
		return Action(s), true
	default:
		return ActionHome, false
	}
}

// FrameRequest is the inbound interaction POST body. TrustedData is accepted
// without signature verification in this scope; a verification hook belongs
// here before buttonIndex is trusted for anything privileged.
type FrameRequest struct {
	UntrustedData struct {
		ButtonIndex int    `json:"buttonIndex"`
		InputText   string `json:"inputText"`
		State       string `json:"state"`
	} `json:"untrustedData"`
	TrustedData struct {
		MessageBytes string `json:"messageBytes"`
	} `json:"trustedData"`
}

// FramePayload is the outbound fc:frame metadata: a fixed key set plus up to
// four fc:frame:button:N labels and an optional input prompt.
type FramePayload map[string]string

type ShareNotification struct {
	IncidentID string `json:"incidentId"`
	UserID     string `json:"userId"`
	Summary    string `json:"summary"`
	SharedAt   string `json:"sharedAt"`
}
