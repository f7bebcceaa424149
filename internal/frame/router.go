// Package frame implements the interaction state router: button press in,
// next screen plus protocol payload out. The router holds no state between
// calls; the caller echoes the current screen back on every request.
package frame

import (
	"net/url"

	"guardiant/internal/domain"
)

const (
	WelcomeMessage = "Welcome to Guardiant"

	ogTitle       = "Guardiant - Your Pocket Rights Advisor"
	ogDescription = "Quick access to legal rights information, incident recording, and scenario scripts for police interactions."
)

// ContentRegistry supplies per-screen button labels and input prompts. The
// registry is read-only; the router never writes through it.
type ContentRegistry interface {
	ButtonLabels(action domain.Action) [4]string
	InputPrompt(action domain.Action) string
}

type transition struct {
	next    domain.Action
	message string
}

type Router struct {
	registry ContentRegistry
	baseURL  string
}

func NewRouter(registry ContentRegistry, baseURL string) *Router {
	return &Router{registry: registry, baseURL: baseURL}
}

// transitions maps each screen to its four outbound edges, indexed by
// buttonIndex-1. Every screen has exactly four buttons; the tables must line
// up with the registry's button labels for the same screen.
var transitions = map[domain.Action][4]transition{
	domain.ActionHome: {
		{domain.ActionRights, "Accessing your rights information..."},
		{domain.ActionRecord, "Starting incident recording..."},
		{domain.ActionScripts, "Loading scenario scripts..."},
		{domain.ActionShare, "Generating shareable summary..."},
	},
	domain.ActionRights: {
		{domain.ActionHome, ""},
		{domain.ActionRecord, "Starting incident recording..."},
		{domain.ActionScripts, "Loading scenario scripts..."},
		{domain.ActionShare, "Generating shareable summary..."},
	},
	domain.ActionRecord: {
		{domain.ActionShare, "Recording stopped. Generating shareable summary..."},
		{domain.ActionHome, ""},
		{domain.ActionRights, "Accessing your rights information..."},
		{domain.ActionScripts, "Loading scenario scripts..."},
	},
	domain.ActionScripts: {
		{domain.ActionScripts, "Showing consent scripts..."},
		{domain.ActionScripts, "Showing general scripts..."},
		{domain.ActionHome, ""},
		{domain.ActionRecord, "Starting incident recording..."},
	},
	domain.ActionShare: {
		{domain.ActionShare, "Generating shareable summary..."},
		{domain.ActionShare, "Summary copied to clipboard"},
		{domain.ActionShare, "Preparing social share..."},
		{domain.ActionHome, ""},
	},
}

// Route resolves a button press on the current screen to the next screen and
// an advisory message. Indices outside 1..4 fall back to home with the
// generic welcome; the router never fails closed.
func (r *Router) Route(current domain.Action, buttonIndex int) (domain.Action, string) {
	table, ok := transitions[current]
	if !ok || buttonIndex < 1 || buttonIndex > len(table) {
		return domain.ActionHome, WelcomeMessage
	}
	t := table[buttonIndex-1]
	return t.next, t.message
}

// Describe builds the outbound frame payload for a screen. Deterministic in
// action alone: image reference, callback reference, og header pair and the
// registry's button labels.
func (r *Router) Describe(action domain.Action) domain.FramePayload {
	p := r.basePayload(action)
	p["og:title"] = ogTitle
	p["og:description"] = ogDescription
	r.fillButtons(p, action)
	return p
}

// DescribeFallback is the payload for unknown or malformed action strings:
// the home screen's buttons with an empty content body.
func (r *Router) DescribeFallback() domain.FramePayload {
	p := r.basePayload(domain.ActionHome)
	p["og:title"] = ""
	p["og:description"] = ""
	r.fillButtons(p, domain.ActionHome)
	return p
}

func (r *Router) basePayload(action domain.Action) domain.FramePayload {
	image := r.ImageURL(action, "", "")
	return domain.FramePayload{
		"fc:frame":          "vNext",
		"fc:frame:image":    image,
		"fc:frame:post_url": r.baseURL + "/api/v1/frame",
		"og:image":          image,
	}
}

func (r *Router) fillButtons(p domain.FramePayload, action domain.Action) {
	labels := r.registry.ButtonLabels(action)
	p["fc:frame:button:1"] = labels[0]
	p["fc:frame:button:2"] = labels[1]
	p["fc:frame:button:3"] = labels[2]
	p["fc:frame:button:4"] = labels[3]
	if prompt := r.registry.InputPrompt(action); prompt != "" {
		p["fc:frame:input:text"] = prompt
	}
}

// ImageURL points at the rendering endpoint for a screen. state and message
// are optional display context carried through as query parameters.
func (r *Router) ImageURL(action domain.Action, state, message string) string {
	q := url.Values{}
	q.Set("action", string(action))
	if state != "" {
		q.Set("state", state)
	}
	if message != "" {
		q.Set("message", message)
	}
	return r.baseURL + "/api/v1/frame/image?" + q.Encode()
}
