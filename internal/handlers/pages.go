package handlers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/adanechmulugeta192-sudo/bushtechs/internal/db"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/models"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/render"
	"github.com/adanechmulugeta192-sudo/bushtechs/internal/theme"
)

// Pages renders the public site. All pages share one shell: nav,
// theme CSS for the current mode, and a footer.
type Pages struct {
	Theme *theme.Controller
}

// NewPages creates the public page renderer
func NewPages(controller *theme.Controller) *Pages {
	return &Pages{Theme: controller}
}

var navLinks = []struct {
	Path  string
	Label string
}{
	{"/", "Home"},
	{"/about-us", "About Us"},
	{"/mission-vision", "Mission & Vision"},
	{"/core-values", "Core Values"},
	{"/technologies", "Technologies"},
	{"/services", "Services"},
	{"/projects", "Projects"},
	{"/contact", "Contact"},
}

func (p *Pages) nav(activePath string) string {
	var b strings.Builder
	b.WriteString(`<nav><ul>`)
	for _, link := range navLinks {
		class := ""
		if link.Path == activePath {
			class = ` class="active"`
		}
		fmt.Fprintf(&b, `<li><a href="%s"%s>%s</a></li>`, link.Path, class, link.Label)
	}
	b.WriteString(`</ul>`)
	b.WriteString(`<form action="/search" method="get"><input type="search" name="q" placeholder="Search"><button type="submit">Go</button></form>`)
	b.WriteString(`</nav>`)
	return b.String()
}

func (p *Pages) css(c *gin.Context) string {
	colors := theme.GenerateColors(theme.GetPalette("bushtechs"), effectiveMode(c, p.Theme))
	return theme.GenerateCSS(colors)
}

func (p *Pages) siteTitle(c *gin.Context) string {
	if settings, exists := c.Get("settings"); exists {
		return settings.(*models.SiteSettings).SiteTitle
	}
	return "BushTechs Solutions"
}

// renderPage writes a full HTML page for one public route
func (p *Pages) renderPage(c *gin.Context, pageTitle, activePath, body string) {
	title := p.siteTitle(c)
	if pageTitle != "" {
		title = pageTitle + " | " + title
	}
	full := p.nav(activePath) + "\n<main>\n" + body + "\n</main>\n" +
		fmt.Sprintf(`<footer><p>&copy; %s</p></footer>`, render.Plain(p.siteTitle(c)))
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(render.Page(title, p.css(c), full)))
}

// Home renders the landing page: services preview, featured projects,
// partners and testimonials
func (p *Pages) Home(c *gin.Context) {
	var services []models.Service
	db.GetDB().Order("sort_order ASC, id ASC").Limit(3).Find(&services)
	var projects []models.Project
	db.GetDB().Order("sort_order ASC, id ASC").Limit(3).Find(&projects)
	var partners []models.Partner
	db.GetDB().Order("sort_order ASC, id ASC").Find(&partners)
	var testimonials []models.Testimonial
	db.GetDB().Order("sort_order ASC, id ASC").Find(&testimonials)

	var b strings.Builder
	b.WriteString(`<header class="hero"><h1>Engineering reliable digital infrastructure</h1>`)
	b.WriteString(`<p>Software, networks and technology consulting for growing organizations.</p>`)
	b.WriteString(`<a class="cta" href="/contact">Work with us</a></header>`)

	var cards []string
	for _, s := range services {
		cards = append(cards, render.ServiceCard(s))
	}
	b.WriteString(render.Section("services", "What we do", strings.Join(cards, "\n")))

	cards = cards[:0]
	for _, pr := range projects {
		cards = append(cards, render.ProjectCard(pr))
	}
	b.WriteString(render.Section("projects", "Recent work", strings.Join(cards, "\n")))

	if len(partners) > 0 {
		cards = cards[:0]
		for _, partner := range partners {
			cards = append(cards, render.PartnerCard(partner))
		}
		b.WriteString(render.Section("partners", "Partners", strings.Join(cards, "\n")))
	}

	if len(testimonials) > 0 {
		cards = cards[:0]
		for _, ts := range testimonials {
			cards = append(cards, render.TestimonialCard(ts))
		}
		b.WriteString(render.Section("testimonials", "What clients say", strings.Join(cards, "\n")))
	}

	p.renderPage(c, "", "/", b.String())
}

// About renders the about page with team profiles
func (p *Pages) About(c *gin.Context) {
	var info models.AboutInfo
	db.GetDB().First(&info)
	var team []models.TeamMember
	db.GetDB().Order("sort_order ASC, id ASC").Find(&team)

	var b strings.Builder
	b.WriteString(render.Section("about", "About Us", render.AboutSection(info)))

	var cards []string
	for _, m := range team {
		cards = append(cards, render.TeamCard(m))
	}
	b.WriteString(render.Section("team", "Our Team", strings.Join(cards, "\n")))

	p.renderPage(c, "About Us", "/about-us", b.String())
}

// MissionVision renders the mission and vision page
func (p *Pages) MissionVision(c *gin.Context) {
	var mv models.MissionVision
	db.GetDB().First(&mv)

	body := render.Section("mission-vision", "Mission & Vision", render.MissionVisionSection(mv))
	p.renderPage(c, "Mission & Vision", "/mission-vision", body)
}

// coreValues is fixed site copy, not admin-editable
var coreValues = []struct {
	Title string
	Text  string
}{
	{"Integrity", "We do what we say and stand behind our work."},
	{"Excellence", "Every deliverable is held to engineering-grade quality."},
	{"Innovation", "We bring current, proven technology to local problems."},
	{"Partnership", "Client relationships outlast individual projects."},
}

// CoreValues renders the core values page
func (p *Pages) CoreValues(c *gin.Context) {
	var cards []string
	for _, value := range coreValues {
		cards = append(cards, fmt.Sprintf(`<div class="card"><h3>%s</h3><p>%s</p></div>`,
			value.Title, value.Text))
	}
	body := render.Section("core-values", "Core Values", strings.Join(cards, "\n"))
	p.renderPage(c, "Core Values", "/core-values", body)
}

var technologies = []string{
	"Go", "React", "PostgreSQL", "MySQL", "Docker", "Kubernetes",
	"AWS", "Cisco networking", "Fiber optics", "IP surveillance",
}

// Technologies renders the technology stack page
func (p *Pages) Technologies(c *gin.Context) {
	var items []string
	for _, tech := range technologies {
		items = append(items, fmt.Sprintf(`<li>%s</li>`, tech))
	}
	body := render.Section("technologies", "Technologies",
		"<ul class=\"tech-list\">"+strings.Join(items, "\n")+"</ul>")
	p.renderPage(c, "Technologies", "/technologies", body)
}

// Services renders the full services catalog
func (p *Pages) Services(c *gin.Context) {
	var services []models.Service
	db.GetDB().Order("sort_order ASC, id ASC").Find(&services)

	var cards []string
	for _, s := range services {
		cards = append(cards, render.ServiceCard(s))
	}
	body := render.Section("services", "Services", strings.Join(cards, "\n"))
	p.renderPage(c, "Services", "/services", body)
}

// Projects renders the full portfolio
func (p *Pages) Projects(c *gin.Context) {
	var projects []models.Project
	db.GetDB().Order("sort_order ASC, id ASC").Find(&projects)

	var cards []string
	for _, pr := range projects {
		cards = append(cards, render.ProjectCard(pr))
	}
	body := render.Section("projects", "Projects", strings.Join(cards, "\n"))
	p.renderPage(c, "Projects", "/projects", body)
}

// Contact renders the contact form page
func (p *Pages) Contact(c *gin.Context) {
	body := render.Section("contact", "Contact Us", `<form id="contact-form" method="post" action="/api/contact">
<label>Name <input type="text" name="name" required></label>
<label>Email <input type="email" name="email" required></label>
<label>Phone <input type="tel" name="phone"></label>
<label>Service <input type="text" name="service_type"></label>
<label>Message <textarea name="message" required></textarea></label>
<button type="submit">Send</button>
</form>`)
	p.renderPage(c, "Contact", "/contact", body)
}
