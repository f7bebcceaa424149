package render

import (
	"bytes"
	"html/template"
)

const (
	imageWidth  = 1200
	imageHeight = 630
)

// svgTemplate draws a RenderSpec as a 1200x630 frame card. html/template
// escapes every interpolated field, so caller-supplied state and message text
// cannot inject markup into the asset.
const svgTemplate = `<svg width="{{.Width}}" height="{{.Height}}" xmlns="http://www.w3.org/2000/svg">
  <defs>
    <linearGradient id="bg" x1="0%" y1="0%" x2="100%" y2="100%">
      <stop offset="0%" style="stop-color:#8B5CF6;stop-opacity:1" />
      <stop offset="50%" style="stop-color:#3B82F6;stop-opacity:1" />
      <stop offset="100%" style="stop-color:#06B6D4;stop-opacity:1" />
    </linearGradient>
    <filter id="glow">
      <feGaussianBlur stdDeviation="3" result="coloredBlur"/>
      <feMerge>
        <feMergeNode in="coloredBlur"/>
        <feMergeNode in="SourceGraphic"/>
      </feMerge>
    </filter>
  </defs>
  <rect width="{{.Width}}" height="{{.Height}}" fill="url(#bg)"/>
  <rect x="100" y="100" width="1000" height="430" rx="20" fill="rgba(255,255,255,0.1)" stroke="rgba(255,255,255,0.2)" stroke-width="2"/>
  <text x="600" y="200" text-anchor="middle" font-size="80" filter="url(#glow)">{{.Icon}}</text>
  <text x="600" y="280" text-anchor="middle" fill="white" font-size="48" font-weight="bold" filter="url(#glow)">{{.Title}}</text>
  <text x="600" y="320" text-anchor="middle" fill="white" font-size="28" opacity="0.9">{{.Subtitle}}</text>
{{- range .Lines}}
  <text x="600" y="{{.Y}}" text-anchor="middle" fill="white" font-size="{{.FontSize}}" opacity="{{.Opacity}}">{{.Text}}</text>
{{- end}}
{{- if .Message}}
  <rect x="200" y="520" width="800" height="60" rx="30" fill="rgba(255,255,255,0.1)" stroke="rgba(255,255,255,0.3)" stroke-width="1"/>
  <text x="600" y="555" text-anchor="middle" fill="white" font-size="18" opacity="0.9">{{.Message}}</text>
{{- end}}
  <text x="600" y="600" text-anchor="middle" fill="white" font-size="16" opacity="0.6">{{.Footer}}</text>
</svg>
`

type svgLine struct {
	Y        int
	FontSize int
	Opacity  string
	Text     string
}

type svgView struct {
	Width    int
	Height   int
	Icon     string
	Title    string
	Subtitle string
	Lines    []svgLine
	Message  string
	Footer   string
}

type SVGRenderer struct {
	t *template.Template
}

func NewSVGRenderer() *SVGRenderer {
	return &SVGRenderer{
		t: template.Must(template.New("frame").Parse(svgTemplate)),
	}
}

// Render draws the spec. Deterministic for a given spec.
func (r *SVGRenderer) Render(spec RenderSpec) ([]byte, error) {
	view := svgView{
		Width:    imageWidth,
		Height:   imageHeight,
		Icon:     spec.Icon,
		Title:    spec.Title,
		Subtitle: spec.Subtitle,
		Message:  spec.Message,
		Footer:   spec.Footer,
	}
	y := 400
	for _, line := range spec.Body {
		view.Lines = append(view.Lines, svgLine{Y: y, FontSize: line.FontSize, Opacity: line.Opacity, Text: line.Text})
		y += 40
	}

	var buf bytes.Buffer
	if err := r.t.Execute(&buf, view); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
