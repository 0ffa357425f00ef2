package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/vsinha/churrasco/pkg/application/services"
	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/infrastructure/events"
	"github.com/vsinha/churrasco/pkg/infrastructure/repositories/csv"
	"github.com/vsinha/churrasco/pkg/infrastructure/repositories/envfile"
	"github.com/vsinha/churrasco/pkg/infrastructure/repositories/memory"
	"github.com/vsinha/churrasco/pkg/interfaces/cli/output"
)

// Config holds configuration for the plan command
type Config struct {
	// EditsFile is an optional step,field,value CSV replayed first
	EditsFile string
	// Sets are field=value edits applied in order after the edits file
	Sets            []string
	OutputDir       string
	Format          string
	Theme           string
	PreferencesFile string
	Strict          bool
	Verbose         bool
	Help            bool
	// Stdout defaults to os.Stdout
	Stdout io.Writer
}

// PlanCommand replays edits into a planner session and renders the result
type PlanCommand struct {
	config Config
	out    io.Writer
}

// NewPlanCommand creates a new plan command with the given configuration
func NewPlanCommand(config Config) *PlanCommand {
	out := config.Stdout
	if out == nil {
		out = os.Stdout
	}
	return &PlanCommand{config: config, out: out}
}

// Execute runs the plan command
func (c *PlanCommand) Execute(ctx context.Context) error {
	if c.config.Help {
		c.showHelp()
		return nil
	}

	if err := c.validateInputs(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	patches, err := c.collectEdits()
	if err != nil {
		return err
	}

	if c.config.Verbose {
		c.printHeader(len(patches))
	}

	store := events.NewInMemoryEventStore()
	if c.config.Verbose {
		if err := c.traceEvents(store); err != nil {
			return err
		}
	}

	plannerConfig := services.DefaultPlannerConfig()
	plannerConfig.Strict = c.config.Strict
	planner := services.NewPlannerServiceWithConfig(plannerConfig, store)

	for i, patch := range patches {
		if err := ctx.Err(); err != nil {
			return err
		}
		if _, err := planner.Apply(patch); err != nil {
			return fmt.Errorf("edit %d: %w", i+1, err)
		}
	}

	prefs, err := c.resolvePreferences(store)
	if err != nil {
		return err
	}

	products, err := memory.NewDefaultCatalogRepository().GetAllProducts()
	if err != nil {
		return fmt.Errorf("failed to load product catalog: %w", err)
	}

	outputConfig := output.Config{
		Format:    c.config.Format,
		OutputDir: c.config.OutputDir,
		Verbose:   c.config.Verbose,
		Theme:     prefs.Theme,
		Products:  products,
		AdSlots: []entities.AdSlot{
			{Format: entities.AdHorizontal},
			{Format: entities.AdSmall},
		},
		Writer: c.out,
	}

	if err := output.Generate(planner.Plan(), outputConfig); err != nil {
		return fmt.Errorf("error generating output: %w", err)
	}

	if c.config.Verbose {
		history, err := planner.History()
		if err != nil {
			return fmt.Errorf("failed to read session history: %w", err)
		}
		fmt.Fprintf(c.out, "📜 Session %s recorded %d events\n", planner.SessionID(), len(history))
		fmt.Fprintln(c.out, "🏁 Churrasco planned!")
	}

	return nil
}

// validateInputs validates the command configuration
func (c *PlanCommand) validateInputs() error {
	valid := false
	for _, f := range output.Formats {
		if c.config.Format == f {
			valid = true
		}
	}
	if !valid {
		return fmt.Errorf("unsupported output format: %s (expected one of %s)",
			c.config.Format, strings.Join(output.Formats, ", "))
	}

	switch c.config.Theme {
	case "", "toggle", string(entities.Dark), string(entities.Light):
	default:
		return fmt.Errorf("unknown theme %q, expected dark, light or toggle", c.config.Theme)
	}

	if c.config.EditsFile != "" {
		if _, err := os.Stat(c.config.EditsFile); os.IsNotExist(err) {
			return fmt.Errorf("edits file not found: %s", c.config.EditsFile)
		}
	}
	return nil
}

// collectEdits reads the edits file, then turns each -set into its own patch
func (c *PlanCommand) collectEdits() ([]entities.Patch, error) {
	var patches []entities.Patch

	if c.config.EditsFile != "" {
		loaded, err := csv.NewLoader().LoadEdits(c.config.EditsFile)
		if err != nil {
			return nil, fmt.Errorf("error loading edits: %w", err)
		}
		patches = append(patches, loaded...)
	}

	for _, set := range c.config.Sets {
		field, value, ok := strings.Cut(set, "=")
		if !ok {
			return nil, fmt.Errorf("invalid -set %q, expected field=value", set)
		}
		var patch entities.Patch
		if err := patch.Set(strings.TrimSpace(field), strings.TrimSpace(value)); err != nil {
			return nil, fmt.Errorf("invalid -set %q: %w", set, err)
		}
		patches = append(patches, patch)
	}

	return patches, nil
}

// resolvePreferences loads the saved theme and applies the -theme flag.
// Without a preferences file the choice lives only for this run.
func (c *PlanCommand) resolvePreferences(store events.EventStore) (entities.Preferences, error) {
	var prefsService *services.PreferencesService
	if c.config.PreferencesFile != "" {
		prefsService = services.NewPreferencesService(envfile.NewPreferencesRepository(c.config.PreferencesFile), store)
	} else {
		prefsService = services.NewPreferencesService(memory.NewPreferencesRepository(), store)
	}

	switch c.config.Theme {
	case "":
		return prefsService.Load()
	case "toggle":
		return prefsService.ToggleTheme()
	default:
		theme, err := entities.ParseTheme(c.config.Theme)
		if err != nil {
			return entities.DefaultPreferences(), err
		}
		return prefsService.SetTheme(theme)
	}
}

// traceEvents prints each accepted edit and theme change as the store records it
func (c *PlanCommand) traceEvents(store events.EventStore) error {
	edits := 0
	err := store.Subscribe([]string{events.ConfigurationChangedEvent}, events.EventHandlerFunc(func(e events.Event) error {
		change, ok := e.Data().(events.ConfigurationChanged)
		if !ok {
			return fmt.Errorf("unexpected payload %T", e.Data())
		}
		edits++
		cfg := change.Current
		_, err := fmt.Fprintf(c.out, "✏️  Edit %d: %d people (%d men, %d women, %d kids), %d beer / %d soft, %sh\n",
			edits, cfg.TotalPeople, cfg.Men, cfg.Women, cfg.Kids, cfg.BeerDrinkers, cfg.SoftDrinkOnly, cfg.Duration)
		return err
	}))
	if err != nil {
		return fmt.Errorf("failed to subscribe to configuration changes: %w", err)
	}

	err = store.Subscribe([]string{events.PreferencesChangedEvent}, events.EventHandlerFunc(func(e events.Event) error {
		change, ok := e.Data().(events.PreferencesChanged)
		if !ok {
			return fmt.Errorf("unexpected payload %T", e.Data())
		}
		_, err := fmt.Fprintf(c.out, "🎨 Theme: %s -> %s\n", change.Previous.Theme, change.Current.Theme)
		return err
	}))
	if err != nil {
		return fmt.Errorf("failed to subscribe to preference changes: %w", err)
	}
	return nil
}

// printHeader prints the command header information
func (c *PlanCommand) printHeader(edits int) {
	fmt.Fprintf(c.out, "🔥 Churrascômetro CLI\n")
	if c.config.EditsFile != "" {
		fmt.Fprintf(c.out, "Edits file: %s\n", c.config.EditsFile)
	}
	fmt.Fprintf(c.out, "Edits to apply: %d\n", edits)
	fmt.Fprintf(c.out, "Output format: %s\n", c.config.Format)
	if c.config.OutputDir != "" {
		fmt.Fprintf(c.out, "Output directory: %s\n", c.config.OutputDir)
	}
	if c.config.Strict {
		fmt.Fprintln(c.out, "Strict mode: out-of-range edits are rejected")
	}
	fmt.Fprintln(c.out)
}

// showHelp displays the help message
func (c *PlanCommand) showHelp() {
	fmt.Fprintf(c.out, `Churrascômetro CLI - Barbecue shopping list planner

USAGE:
    churrasco [options]
    churrasco -people 20 -duration 6 -format html -output out/

OPTIONS:
    -people <n>         Total number of people (re-derives men, women and kids)
    -men <n>            Number of men
    -women <n>          Number of women
    -kids <n>           Number of kids
    -beer <n>           Number of beer drinkers (the rest drink soft drinks)
    -duration <h>       Event length in hours
    -set field=value    Apply one edit; repeatable, applied in order
    -edits <file>       Replay edits from a step,field,value CSV file
    -output <dir>       Output directory for results (optional)
    -format <fmt>       Output format: text, json, csv, html (default: text)
    -theme <t>          Page theme: dark, light or toggle
    -prefs <file>       Dotenv file the theme is saved in
    -strict             Reject out-of-range edits instead of clamping them
    -verbose            Enable verbose output
    -help               Show this help message

FIELDS:
    total_people, men, women, kids, duration, beer_drinkers, soft_drink_only,
    include_chicken, include_sausage, include_pork, include_cheese, include_bread,
    include_garlic, include_vinaigrette, include_rice, include_farofa

EDITS FILE:
    step,field,value
    1,total_people,20
    2,kids,4
    3,include_pork,true

    Rows sharing a step are applied together as one edit.

ENVIRONMENT:
    CHURRASCO_FORMAT, CHURRASCO_OUTPUT and CHURRASCO_PREFERENCES provide
    defaults for -format, -output and -prefs. A .env file in the working
    directory is loaded when present.

EXAMPLES:
    # Shopping list for 20 people over 6 hours
    churrasco -people 20 -duration 6

    # Adjust the breakdown after setting the total
    churrasco -set total_people=15 -set kids=5 -set include_pork=true

    # Render the page in light mode and remember the choice
    churrasco -people 12 -format html -output out/ -theme light -prefs ~/.churrasco.env
`)
}
