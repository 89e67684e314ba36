package render

import (
	"fmt"
	"html"
	"strings"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
)

// imageTag emits an img element, or nothing when no image is set
func imageTag(imagePath, alt string) string {
	if imagePath == "" {
		return ""
	}
	return fmt.Sprintf(`<img src="%s" alt="%s">`,
		html.EscapeString(imagePath), html.EscapeString(alt))
}

// ProjectCard renders one portfolio entry
func ProjectCard(p models.Project) string {
	var b strings.Builder
	b.WriteString(`<article class="card project-card">`)
	b.WriteString(imageTag(p.ImagePath, p.Title))
	fmt.Fprintf(&b, `<h3>%s</h3>`, Plain(p.Title))
	if p.Category != "" {
		fmt.Fprintf(&b, `<span class="tag">%s</span>`, Plain(p.Category))
	}
	fmt.Fprintf(&b, `<span class="tag status-%s">%s</span>`,
		strings.ToLower(html.EscapeString(p.Status)), Plain(p.Status))
	fmt.Fprintf(&b, `<p>%s</p>`, Text(p.Description))
	var meta []string
	if p.Location != "" {
		meta = append(meta, Plain(p.Location))
	}
	if p.Year != "" {
		meta = append(meta, Plain(p.Year))
	}
	if len(meta) > 0 {
		fmt.Fprintf(&b, `<p class="meta">%s</p>`, strings.Join(meta, " &middot; "))
	}
	if p.Link != "" {
		fmt.Fprintf(&b, `<a href="%s" rel="noopener">View project</a>`, html.EscapeString(p.Link))
	}
	b.WriteString(`</article>`)
	return b.String()
}

// ServiceCard renders one service offering
func ServiceCard(s models.Service) string {
	var b strings.Builder
	b.WriteString(`<article class="card service-card">`)
	b.WriteString(imageTag(s.ImagePath, s.Title))
	fmt.Fprintf(&b, `<h3>%s</h3>`, Plain(s.Title))
	fmt.Fprintf(&b, `<p>%s</p>`, Text(s.Description))
	b.WriteString(`</article>`)
	return b.String()
}

// TeamCard renders one team member profile
func TeamCard(m models.TeamMember) string {
	var b strings.Builder
	b.WriteString(`<article class="card team-card">`)
	b.WriteString(imageTag(m.ImagePath, m.Name))
	fmt.Fprintf(&b, `<h3>%s</h3>`, Plain(m.Name))
	fmt.Fprintf(&b, `<p class="role">%s</p>`, Plain(m.Role))
	if m.LinkedinURL != "" {
		fmt.Fprintf(&b, `<a href="%s" rel="noopener">LinkedIn</a>`, html.EscapeString(m.LinkedinURL))
	}
	if m.TwitterURL != "" {
		fmt.Fprintf(&b, `<a href="%s" rel="noopener">Twitter</a>`, html.EscapeString(m.TwitterURL))
	}
	b.WriteString(`</article>`)
	return b.String()
}

// PartnerCard renders one partner logo entry
func PartnerCard(p models.Partner) string {
	var b strings.Builder
	b.WriteString(`<div class="partner">`)
	b.WriteString(imageTag(p.ImagePath, p.Name))
	fmt.Fprintf(&b, `<span>%s</span>`, Plain(p.Name))
	b.WriteString(`</div>`)
	return b.String()
}

// TestimonialCard renders one customer quote
func TestimonialCard(ts models.Testimonial) string {
	var b strings.Builder
	b.WriteString(`<blockquote class="testimonial">`)
	fmt.Fprintf(&b, `<p>%s</p>`, Text(ts.Text))
	fmt.Fprintf(&b, `<cite>%s`, Plain(ts.Author))
	if ts.Company != "" {
		fmt.Fprintf(&b, `, %s`, Plain(ts.Company))
	}
	b.WriteString(`</cite></blockquote>`)
	return b.String()
}

// MissionVisionSection renders the mission/vision copy
func MissionVisionSection(mv models.MissionVision) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="card"><h3>%s</h3><p>%s</p></div>`,
		Plain(mv.MissionTitle), Text(mv.MissionDesc))
	fmt.Fprintf(&b, `<div class="card"><h3>%s</h3><p>%s</p></div>`,
		Plain(mv.VisionTitle), Text(mv.VisionDesc))
	return b.String()
}

// AboutSection renders the about copy with its stats bar
func AboutSection(info models.AboutInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<p class="kicker">%s</p>`, Plain(info.SectionTitle))
	fmt.Fprintf(&b, `<h3>%s</h3>`, Plain(info.MainHeadline))
	if info.SubHeadline != "" {
		fmt.Fprintf(&b, `<h4>%s</h4>`, Plain(info.SubHeadline))
	}
	fmt.Fprintf(&b, `<div class="about-body">%s</div>`, Rich(info.Description))
	b.WriteString(`<div class="stats">`)
	for _, stat := range []struct{ value, label string }{
		{info.StatEngineers, "Engineers"},
		{info.StatCustomers, "Customers"},
		{info.StatProjects, "Projects"},
		{info.StatEstablished, "Established"},
	} {
		if stat.value == "" {
			continue
		}
		fmt.Fprintf(&b, `<div class="stat"><strong>%s</strong><span>%s</span></div>`,
			Plain(stat.value), stat.label)
	}
	b.WriteString(`</div>`)
	return b.String()
}
