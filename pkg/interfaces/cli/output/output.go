package output

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/vsinha/churrasco/pkg/application/dto"
	"github.com/vsinha/churrasco/pkg/domain/entities"
)

// Config holds configuration for output generation
type Config struct {
	Format    string
	OutputDir string
	Verbose   bool
	Theme     entities.Theme
	Products  []*entities.AffiliateProduct
	AdSlots   []entities.AdSlot
	// Writer receives output when OutputDir is empty; defaults to stdout
	Writer io.Writer
}

// Formats lists the supported output formats
var Formats = []string{"text", "json", "csv", "html"}

// Generate creates output in the specified format
func Generate(plan *dto.Plan, config Config) error {
	if config.Writer == nil {
		config.Writer = os.Stdout
	}

	switch config.Format {
	case "text":
		return emit(config, "shopping_list.txt", []byte(ShareText(plan.Result)))
	case "json":
		return generateJSONOutput(plan, config)
	case "csv":
		return generateCSVOutput(plan, config)
	case "html":
		page, err := NewHTMLPage().Render(plan, config)
		if err != nil {
			return err
		}
		return emit(config, "churrasco.html", []byte(page))
	default:
		return fmt.Errorf("unsupported output format: %s", config.Format)
	}
}

// ShareText renders the shopping list in the plain-text form used for copying and sharing
func ShareText(result entities.Result) string {
	var b strings.Builder
	b.WriteString("🔥 Lista de Churrasco - Churrascômetro\n\n")

	writeSection := func(heading string, items []entities.LineItem) {
		b.WriteString(heading)
		b.WriteString("\n")
		for _, item := range items {
			fmt.Fprintf(&b, "  %s %s: %s\n", item.Emoji, item.Name, item.Display)
		}
	}

	writeSection("🥩 CARNES:", result.Meats)
	b.WriteString("\n")
	writeSection("🍻 BEBIDAS:", result.Drinks)
	if len(result.Sides) > 0 {
		b.WriteString("\n")
		writeSection("🥗 ACOMPANHAMENTOS:", result.Sides)
	}
	b.WriteString("\n")
	writeSection("🧊 EXTRAS:", result.Extras)

	return b.String()
}

// generateJSONOutput creates JSON output
func generateJSONOutput(plan *dto.Plan, config Config) error {
	jsonData, err := json.MarshalIndent(plan, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}
	return emit(config, "churrasco.json", append(jsonData, '\n'))
}

// generateCSVOutput writes one row per shopping-list item
func generateCSVOutput(plan *dto.Plan, config Config) error {
	var b strings.Builder
	if err := WriteCSV(&b, plan.Result); err != nil {
		return fmt.Errorf("failed to write shopping list CSV: %w", err)
	}
	return emit(config, "shopping_list.csv", []byte(b.String()))
}

// WriteCSV writes the shopping list as section,item,amount,unit,cans,quantity rows
func WriteCSV(w io.Writer, result entities.Result) error {
	writer := csv.NewWriter(w)
	if err := writer.Write([]string{"section", "item", "amount", "unit", "cans", "quantity"}); err != nil {
		return err
	}

	sections := []string{"meats", "drinks", "sides", "extras"}
	for i, items := range result.Sections() {
		for _, item := range items {
			cans := ""
			if item.Kind == entities.Beer {
				cans = fmt.Sprintf("%d", item.Cans)
			}
			record := []string{sections[i], item.Name, item.Amount.String(), string(item.Unit), cans, item.Display}
			if err := writer.Write(record); err != nil {
				return err
			}
		}
	}

	writer.Flush()
	return writer.Error()
}

// emit writes data to the configured writer, or to filename inside OutputDir
func emit(config Config, filename string, data []byte) error {
	if config.OutputDir == "" {
		if _, err := config.Writer.Write(data); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
		return nil
	}

	// Create output directory if it doesn't exist
	if err := os.MkdirAll(config.OutputDir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}

	path := filepath.Join(config.OutputDir, filename)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if config.Verbose {
		fmt.Fprintf(config.Writer, "💾 Results saved to: %s\n", path)
	}
	return nil
}
