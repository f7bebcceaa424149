package frame_test

import (
	"strings"
	"testing"

	"guardiant/internal/content"
	"guardiant/internal/domain"
	"guardiant/internal/frame"
)

const testBaseURL = "https://guardiant.app"

func newTestRouter() *frame.Router {
	return frame.NewRouter(content.NewRegistry(), testBaseURL)
}

func TestRoute_HomeTable(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	cases := []struct {
		name   string
		button int
		want   domain.Action
	}{
		{"button_1_rights", 1, domain.ActionRights},
		{"button_2_record", 2, domain.ActionRecord},
		{"button_3_scripts", 3, domain.ActionScripts},
		{"button_4_share", 4, domain.ActionShare},
	}

	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()
			next, msg := r.Route(domain.ActionHome, c.button)
			if next != c.want {
				t.Fatalf("expected next=%q got=%q", c.want, next)
			}
			if msg == "" {
				t.Fatalf("expected a non-empty advisory message")
			}
		})
	}
}

func TestRoute_UnmappedIndexFallsBackToHome(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	for _, idx := range []int{0, -1, 5, 99} {
		next, msg := r.Route(domain.ActionHome, idx)
		if next != domain.ActionHome {
			t.Fatalf("index %d: expected home, got %q", idx, next)
		}
		if msg != frame.WelcomeMessage {
			t.Fatalf("index %d: expected welcome message, got %q", idx, msg)
		}
	}
}

func TestRoute_EveryScreenHasFourTransitions(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	for _, action := range domain.Actions() {
		for idx := 1; idx <= 4; idx++ {
			next, _ := r.Route(action, idx)
			if _, ok := domain.ParseAction(string(next)); !ok {
				t.Fatalf("screen %q button %d routes to unknown action %q", action, idx, next)
			}
		}
	}
}

func TestRoute_ShareLoopsBackToHome(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	next, _ := r.Route(domain.ActionShare, 4)
	if next != domain.ActionHome {
		t.Fatalf("expected share button 4 to return home, got %q", next)
	}
}

func TestRoute_IsDeterministic(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	first, firstMsg := r.Route(domain.ActionRecord, 1)
	for i := 0; i < 10; i++ {
		next, msg := r.Route(domain.ActionRecord, 1)
		if next != first || msg != firstMsg {
			t.Fatalf("route result changed across calls: (%q,%q) vs (%q,%q)", first, firstMsg, next, msg)
		}
	}
}

func TestDescribe_FixedKeySet(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	p := r.Describe(domain.ActionHome)

	for _, key := range []string{
		"fc:frame", "fc:frame:image", "fc:frame:post_url",
		"og:title", "og:description", "og:image",
		"fc:frame:button:1", "fc:frame:button:2", "fc:frame:button:3", "fc:frame:button:4",
	} {
		if _, ok := p[key]; !ok {
			t.Fatalf("payload missing key %q", key)
		}
	}

	if p["fc:frame"] != "vNext" {
		t.Fatalf("expected fc:frame=vNext, got %q", p["fc:frame"])
	}
	if p["fc:frame:post_url"] != testBaseURL+"/api/v1/frame" {
		t.Fatalf("unexpected post_url %q", p["fc:frame:post_url"])
	}
	if !strings.Contains(p["fc:frame:image"], "action=home") {
		t.Fatalf("image url %q does not reference the home screen", p["fc:frame:image"])
	}
	if p["fc:frame:input:text"] == "" {
		t.Fatalf("home screen should carry an input prompt")
	}
}

func TestDescribe_ButtonsComeFromRegistry(t *testing.T) {
	t.Parallel()

	reg := content.NewRegistry()
	r := frame.NewRouter(reg, testBaseURL)

	for _, action := range domain.Actions() {
		p := r.Describe(action)
		labels := reg.ButtonLabels(action)
		for i, want := range labels {
			key := "fc:frame:button:" + string(rune('1'+i))
			if p[key] != want {
				t.Fatalf("screen %q button %d: expected %q got %q", action, i+1, want, p[key])
			}
		}
	}
}

func TestDescribeFallback_HomeButtonsEmptyBody(t *testing.T) {
	t.Parallel()

	reg := content.NewRegistry()
	r := frame.NewRouter(reg, testBaseURL)

	p := r.DescribeFallback()

	if p["og:title"] != "" || p["og:description"] != "" {
		t.Fatalf("fallback payload must carry an empty content body, got title=%q desc=%q",
			p["og:title"], p["og:description"])
	}
	if p["fc:frame:button:1"] != reg.ButtonLabels(domain.ActionHome)[0] {
		t.Fatalf("fallback payload must reuse the home button table")
	}
}

func TestImageURL_EscapesQueryValues(t *testing.T) {
	t.Parallel()

	r := newTestRouter()

	u := r.ImageURL(domain.ActionRights, "New York", "hello & goodbye")
	if strings.Contains(u, " ") {
		t.Fatalf("image url %q contains unescaped spaces", u)
	}
	if !strings.Contains(u, "state=New+York") {
		t.Fatalf("image url %q missing escaped state", u)
	}
}
