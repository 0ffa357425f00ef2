package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/vsinha/churrasco/pkg/domain/entities"
	"github.com/vsinha/churrasco/pkg/interfaces/cli/commands"
)

// setFlags collects repeated -set field=value flags
type setFlags []string

func (s *setFlags) String() string { return strings.Join(*s, ",") }

func (s *setFlags) Set(value string) error {
	*s = append(*s, value)
	return nil
}

func main() {
	// A missing .env is fine; flags and the environment still apply
	_ = godotenv.Load()

	config, err := parseArgs(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Create and execute command
	cmd := commands.NewPlanCommand(config)
	ctx := context.Background()

	if err := cmd.Execute(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// parseArgs turns command line arguments into the command configuration.
// Shorthand flags become edits only when given, ahead of any -set edits.
func parseArgs(args []string) (commands.Config, error) {
	fs := flag.NewFlagSet("churrasco", flag.ContinueOnError)
	var sets setFlags

	// Command line flags
	var (
		people    = fs.Int("people", 0, "Total number of people")
		men       = fs.Int("men", 0, "Number of men")
		women     = fs.Int("women", 0, "Number of women")
		kids      = fs.Int("kids", 0, "Number of kids")
		duration  = fs.Float64("duration", 4, "Event length in hours")
		beer      = fs.Int("beer", 0, "Number of beer drinkers")
		editsFile = fs.String("edits", "", "Path to a step,field,value edits CSV file")
		outputDir = fs.String("output", os.Getenv("CHURRASCO_OUTPUT"), "Output directory for results (optional)")
		format    = fs.String("format", envOr("CHURRASCO_FORMAT", "text"), "Output format: text, json, csv, html")
		theme     = fs.String("theme", "", "Page theme: dark, light or toggle")
		prefsFile = fs.String("prefs", os.Getenv("CHURRASCO_PREFERENCES"), "Dotenv file the theme is saved in")
		strict    = fs.Bool("strict", false, "Reject out-of-range edits instead of clamping them")
		verbose   = fs.Bool("verbose", false, "Enable verbose output")
		help      = fs.Bool("help", false, "Show help message")
	)
	fs.Var(&sets, "set", "Apply one field=value edit (repeatable)")

	if err := fs.Parse(args); err != nil {
		return commands.Config{}, err
	}

	given := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { given[f.Name] = true })

	var edits []string
	addEdit := func(name string, field entities.Field, value string) {
		if given[name] {
			edits = append(edits, fmt.Sprintf("%s=%s", field, value))
		}
	}
	addEdit("people", entities.FieldTotalPeople, strconv.Itoa(*people))
	addEdit("men", entities.FieldMen, strconv.Itoa(*men))
	addEdit("women", entities.FieldWomen, strconv.Itoa(*women))
	addEdit("kids", entities.FieldKids, strconv.Itoa(*kids))
	addEdit("duration", entities.FieldDuration, strconv.FormatFloat(*duration, 'f', -1, 64))
	addEdit("beer", entities.FieldBeerDrinkers, strconv.Itoa(*beer))
	edits = append(edits, sets...)

	return commands.Config{
		EditsFile:       *editsFile,
		Sets:            edits,
		OutputDir:       *outputDir,
		Format:          *format,
		Theme:           *theme,
		PreferencesFile: *prefsFile,
		Strict:          *strict,
		Verbose:         *verbose,
		Help:            *help,
	}, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
