package output

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/vsinha/churrasco/pkg/application/dto"
	"github.com/vsinha/churrasco/pkg/domain/entities"
)

//go:embed templates/*.html
var templateFS embed.FS

// HTMLPage renders the single-page planner view: summary, shopping list,
// product recommendations and ad placeholders
type HTMLPage struct {
	Title string
}

// Section is one titled group of the shopping list
type Section struct {
	Title string
	Emoji string
	Tone  string
	Items []entities.LineItem
}

// TemplateData contains all data for rendering the HTML template
type TemplateData struct {
	*dto.Plan
	Title       string
	Theme       entities.Theme
	Sections    []Section
	Products    []ProductCard
	TopAd       *entities.AdSlot
	SideAd      *entities.AdSlot
	ShareText   string
	GeneratedAt string
}

// ProductCard is a product ready for display
type ProductCard struct {
	*entities.AffiliateProduct
	PriceText string
}

// NewHTMLPage creates a new page renderer
func NewHTMLPage() *HTMLPage {
	return &HTMLPage{Title: "Bora de Churras!"}
}

// Render executes the page template for plan
func (p *HTMLPage) Render(plan *dto.Plan, config Config) (string, error) {
	theme := config.Theme
	if theme == "" {
		theme = entities.DefaultPreferences().Theme
	}

	data := &TemplateData{
		Plan:        plan,
		Title:       p.Title,
		Theme:       theme,
		Sections:    p.sections(plan.Result),
		ShareText:   ShareText(plan.Result),
		GeneratedAt: time.Now().Format("2006-01-02 15:04:05"),
	}

	for _, product := range config.Products {
		data.Products = append(data.Products, ProductCard{AffiliateProduct: product, PriceText: product.FormattedPrice()})
	}

	for i := range config.AdSlots {
		slot := &config.AdSlots[i]
		switch {
		case slot.Format == entities.AdHorizontal && data.TopAd == nil:
			data.TopAd = slot
		case slot.Format == entities.AdSmall && data.SideAd == nil:
			data.SideAd = slot
		}
	}

	tmpl, err := template.New("page.html").Funcs(template.FuncMap{
		"height": func(f entities.AdFormat) int { return f.HeightPx() },
		"icons":  func(n int, icon string) string { return strings.Repeat(icon, n) },
	}).ParseFS(templateFS, "templates/page.html")
	if err != nil {
		return "", fmt.Errorf("failed to parse template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to execute template: %w", err)
	}

	return buf.String(), nil
}

// sections groups the result the way the shopping list shows it; empty groups are dropped
func (p *HTMLPage) sections(result entities.Result) []Section {
	all := []Section{
		{Title: "Carnes", Emoji: "🥩", Tone: "red", Items: result.Meats},
		{Title: "Bebidas", Emoji: "🍻", Tone: "amber", Items: result.Drinks},
		{Title: "Acompanhamentos", Emoji: "🥗", Tone: "green", Items: result.Sides},
		{Title: "Extras", Emoji: "🧊", Tone: "blue", Items: result.Extras},
	}

	sections := make([]Section, 0, len(all))
	for _, s := range all {
		if len(s.Items) > 0 {
			sections = append(sections, s)
		}
	}
	return sections
}
