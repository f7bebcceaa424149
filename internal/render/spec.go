// Package render turns an interaction screen into a displayable asset. The
// spec builder is a pure mapping from (action, state, message) to a
// structured RenderSpec; the SVG renderer is one possible backend for it.
package render

import (
	"guardiant/internal/domain"
)

// RenderSpec describes what a frame image should contain, independent of how
// it is drawn. Text fields are raw; escaping is the renderer's job.
type RenderSpec struct {
	Action   domain.Action
	Icon     string
	Title    string
	Subtitle string
	Body     []BodyLine
	// Message, when non-empty, is drawn as an extra highlighted block.
	Message string
	Footer  string
}

type BodyLine struct {
	Text     string
	FontSize int
	Opacity  string
}

// BuildRenderSpec selects the visual template for a screen. Unknown actions
// take the default template. This switch must stay exhaustive over
// domain.Actions(); adding a screen to the router without a template here is
// a bug in whichever change landed second.
func BuildRenderSpec(action domain.Action, state, message string) RenderSpec {
	spec := RenderSpec{
		Action:  action,
		Icon:    "🛡️",
		Title:   "Guardiant",
		Footer:  "Guardiant • Base Mini App • Your Rights, Your Safety",
		Message: message,
	}

	switch action {
	case domain.ActionHome:
		spec.Subtitle = "Your Pocket Rights Advisor & Incident Recorder"
		spec.Body = []BodyLine{
			{"Quick access to legal rights • Discreet recording • Scenario scripts", 24, "0.9"},
			{"Protecting your rights during police interactions", 20, "0.8"},
		}
	case domain.ActionRights:
		spec.Icon = "⚖️"
		spec.Title = "Know Your Rights"
		spec.Subtitle = "State-Specific Legal Information"
		spec.Body = []BodyLine{
			{"• Right to remain silent • Refuse consent to search", 24, "0.9"},
			{"• Ask if you're free to leave • Record interactions", 24, "0.9"},
			{"Location-based legal guidance", 20, "0.8"},
		}
		if state != "" {
			spec.Subtitle = "Legal Rights in " + state
			spec.Body[2] = BodyLine{"Specific to " + state + " law", 20, "0.8"}
		}
	case domain.ActionRecord:
		spec.Icon = "🎙️"
		spec.Title = "Incident Recording"
		spec.Subtitle = "Discreet Evidence Collection"
		spec.Body = []BodyLine{
			{"Secure • Timestamped • Location-tagged", 24, "0.9"},
			{"One-tap recording with automatic incident logging", 20, "0.8"},
			{"Your safety and evidence protection in one tool", 18, "0.7"},
		}
	case domain.ActionScripts:
		spec.Icon = "💬"
		spec.Title = "Scenario Scripts"
		spec.Subtitle = "Pre-written Phrases for Clear Communication"
		spec.Body = []BodyLine{
			{"English & Spanish • Consent • Identification • Search", 24, "0.9"},
			{"Reduce anxiety with ready-to-use phrases", 20, "0.8"},
			{"Clear communication for better outcomes", 18, "0.7"},
		}
	case domain.ActionShare:
		spec.Icon = "📤"
		spec.Title = "Share Summary"
		spec.Subtitle = "Generate Incident Reports"
		spec.Body = []BodyLine{
			{"Automatic summary generation • Shareable format", 24, "0.9"},
			{"Send to trusted contacts or legal aid", 20, "0.8"},
			{"Professional incident documentation", 18, "0.7"},
		}
	default:
		spec.Subtitle = "Your Pocket Rights Advisor"
		spec.Body = []BodyLine{
			{"Empowering citizens with knowledge and tools", 24, "0.9"},
			{"For safer police interactions", 20, "0.8"},
		}
	}

	return spec
}
