// Package content is the read-only registry of per-screen button labels and
// per-jurisdiction legal guidance. Everything here is static data; the
// registry never mutates after construction.
package content

import (
	"fmt"
	"strings"

	"guardiant/internal/domain"
)

type StateGuide struct {
	StateName string
	Rights    []string
	Dos       []string
	Donts     []string
	Scripts   []Script
}

type Script struct {
	ID       string
	Scenario string
	Title    string
	English  string
	Spanish  string
	Category string
}

type Registry struct {
	buttons map[domain.Action][4]string
	prompts map[domain.Action]string
	guides  map[string]StateGuide
	scripts []Script
}

func NewRegistry() *Registry {
	r := &Registry{
		buttons: buttonLabels,
		prompts: inputPrompts,
		guides:  make(map[string]StateGuide, len(guidedStates)),
		scripts: scripts,
	}
	for _, name := range guidedStates {
		g := baseGuide
		g.StateName = name
		g.Scripts = scripts
		r.guides[name] = g
	}
	return r
}

// ButtonLabels returns the four labels for a screen. Every screen has
// exactly four buttons.
func (r *Registry) ButtonLabels(action domain.Action) [4]string {
	return r.buttons[action]
}

// InputPrompt returns the text-input placeholder for a screen, empty when
// the screen takes no input.
func (r *Registry) InputPrompt(action domain.Action) string {
	return r.prompts[action]
}

// Guide returns the rights guide for a state, falling back to a generic
// guide when the state has no specific entry.
func (r *Registry) Guide(state string) StateGuide {
	if g, ok := r.guides[state]; ok {
		return g
	}
	g := baseGuide
	g.StateName = state
	g.Scripts = r.scripts
	return g
}

// GuideSummary renders a one-paragraph snapshot of the guide, used as the
// rightsInfoSummary captured on an incident at creation time.
func (r *Registry) GuideSummary(state string) string {
	g := r.Guide(state)
	return fmt.Sprintf("%s: %s", g.StateName, strings.Join(g.Rights, "; "))
}

func (r *Registry) Scripts() []Script {
	return r.scripts
}

func (r *Registry) StatesSupported() int {
	return len(r.guides)
}

func (r *Registry) ScriptCount() int {
	return len(r.scripts)
}

var buttonLabels = map[domain.Action][4]string{
	domain.ActionHome:    {"View Rights", "Start Recording", "Get Scripts", "Share Summary"},
	domain.ActionRights:  {"Back to Home", "Record Incident", "View Scripts", "Share Rights Info"},
	domain.ActionRecord:  {"Stop Recording", "Back to Home", "View Rights", "Emergency Help"},
	domain.ActionScripts: {"Consent Scripts", "General Scripts", "Back to Home", "Record Incident"},
	domain.ActionShare:   {"Generate Summary", "Copy to Clipboard", "Share on Social", "Back to Home"},
}

var inputPrompts = map[domain.Action]string{
	domain.ActionHome: "Enter your state (optional)",
}

var guidedStates = []string{"California", "New York"}

var baseGuide = StateGuide{
	Rights: []string{
		"You have the right to remain silent",
		"You have the right to refuse consent to search",
		"You have the right to ask if you are free to leave",
		"You have the right to record police interactions",
		"You have the right to an attorney",
	},
	Dos: []string{
		"Keep your hands visible",
		"Stay calm and polite",
		"Ask \"Am I free to leave?\"",
		"Record the interaction if safe",
		"Remember badge numbers and patrol car numbers",
	},
	Donts: []string{
		"Don't resist, even if you believe the stop is unfair",
		"Don't argue or become confrontational",
		"Don't consent to searches",
		"Don't lie or provide false information",
		"Don't reach for anything without permission",
	},
}

var scripts = []Script{
	{
		ID:       "consent-search",
		Scenario: "When asked to consent to a search",
		Title:    "Refusing Consent to Search",
		English:  "I do not consent to any searches. I am exercising my constitutional rights.",
		Spanish:  "No consiento a ninguna búsqueda. Estoy ejerciendo mis derechos constitucionales.",
		Category: "consent",
	},
	{
		ID:       "am-i-free",
		Scenario: "Determining if you can leave",
		Title:    "Am I Free to Leave?",
		English:  "Officer, am I free to leave? If not, I would like to know why I am being detained.",
		Spanish:  "Oficial, ¿soy libre de irme? Si no, me gustaría saber por qué me están deteniendo.",
		Category: "general",
	},
	{
		ID:       "remain-silent",
		Scenario: "Exercising right to remain silent",
		Title:    "Invoking Right to Silence",
		English:  "I am exercising my right to remain silent. I would like to speak to an attorney.",
		Spanish:  "Estoy ejerciendo mi derecho a permanecer en silencio. Me gustaría hablar con un abogado.",
		Category: "general",
	},
	{
		ID:       "recording-notice",
		Scenario: "Informing officer of recording",
		Title:    "Recording Notice",
		English:  "Officer, I am recording this interaction for my safety and yours.",
		Spanish:  "Oficial, estoy grabando esta interacción por mi seguridad y la suya.",
		Category: "general",
	},
}
