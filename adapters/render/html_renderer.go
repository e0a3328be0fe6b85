package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/walterBrayan/BackTalentHub/internal/application/service"
)

// htmlRenderer lays out the tailored resume as a self-contained HTML page
// the frontend offers for download or print.
type htmlRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (service.DocumentRenderer, error) {
	tmpl, err := template.New("resume").Parse(resumeTemplate)
	if err != nil {
		return nil, fmt.Errorf("failed to parse resume template: %w", err)
	}
	return &htmlRenderer{tmpl: tmpl}, nil
}

func (r *htmlRenderer) Render(_ context.Context, doc service.ResumeDocument) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, doc); err != nil {
		return nil, fmt.Errorf("failed to render resume document: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *htmlRenderer) ContentType() string {
	return "text/html; charset=utf-8"
}

const resumeTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>{{.Profile.Name}} — {{.JobTitle}}</title>
<style>
  body { font-family: Georgia, serif; max-width: 48rem; margin: 2rem auto; color: #1a1a1a; }
  h1 { margin-bottom: 0; }
  h2 { border-bottom: 1px solid #ccc; padding-bottom: .2rem; margin-top: 1.6rem; }
  .contact { color: #555; margin-top: .2rem; }
  .entry { margin-bottom: .8rem; }
  .entry .dates { color: #777; font-size: .9rem; }
  .skills span { display: inline-block; background: #eee; border-radius: 3px; padding: .1rem .5rem; margin: .1rem; }
</style>
</head>
<body>
<h1>{{.Profile.Name}}</h1>
<p class="contact">
  {{.Profile.Email}}
  {{with .Profile.Phone}} · {{.}}{{end}}
  {{with .Profile.Address}} · {{.}}{{end}}
  {{with .Profile.Linkedin}} · {{.}}{{end}}
  {{with .Profile.Github}} · {{.}}{{end}}
</p>

{{with .Analysis.adapted_summary}}<h2>Summary</h2><p>{{.}}</p>{{end}}

{{if .Profile.WorkExperiences}}
<h2>Work Experience</h2>
{{range .Profile.WorkExperiences}}
<div class="entry">
  <strong>{{.Position}}</strong> — {{.Company}}
  <div class="dates">{{.StartDate}} — {{if .CurrentJob}}present{{else}}{{.EndDate}}{{end}}</div>
  {{with .Description}}<p>{{.}}</p>{{end}}
</div>
{{end}}
{{end}}

{{if .Profile.Educations}}
<h2>Education</h2>
{{range .Profile.Educations}}
<div class="entry">
  <strong>{{.Degree}}</strong> — {{.Institution}}
  <div class="dates">{{.StartDate}}{{with .EndDate}} — {{.}}{{end}}</div>
  {{with .Description}}<p>{{.}}</p>{{end}}
</div>
{{end}}
{{end}}

{{if or .Profile.Skills.Technical .Profile.Skills.Soft}}
<h2>Skills</h2>
<p class="skills">
  {{range .Profile.Skills.Technical}}<span>{{.}}</span>{{end}}
  {{range .Profile.Skills.Soft}}<span>{{.}}</span>{{end}}
</p>
{{end}}

{{if .Profile.Languages}}
<h2>Languages</h2>
{{range .Profile.Languages}}<div class="entry">{{.Language}} — {{.Level}}</div>{{end}}
{{end}}

{{if .Profile.Certificates}}
<h2>Certificates</h2>
{{range .Profile.Certificates}}
<div class="entry">{{.Name}} — {{.Institution}}{{with .Date}} ({{.}}){{end}}</div>
{{end}}
{{end}}
</body>
</html>
`
