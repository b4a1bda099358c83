// Command roteiro inspects, scores and adapts AI-generated short
// marketing-video scripts.
//
// Usage:
//
//	roteiro inspect [file]        parse a script and print its structure as JSON
//	roteiro adapt [file]          rewrite weak stage blocks and print the result
//	roteiro adapt -cases f.jsonl  adapt every case in a JSONL dataset
//	roteiro view [file]           open the interactive viewer
//
// Scripts are read from the file argument or from stdin. The adapt and
// view commands require GEMINI_API_KEY.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rfandrade/roteiro"
	"github.com/rfandrade/roteiro/bubbletea"
	"github.com/rfandrade/roteiro/clipboard"
	"github.com/rfandrade/roteiro/fs"
	"github.com/rfandrade/roteiro/gemini"
	"github.com/rfandrade/roteiro/jsonl"
	"github.com/rfandrade/roteiro/lipgloss"
	"github.com/rfandrade/roteiro/worddiff"
	"go.uber.org/zap"
)

// ErrNoInput is returned when no script input is provided.
var ErrNoInput = errors.New("no input: pipe a script or provide a file path")

// ErrUsage is returned for an unknown or missing subcommand.
var ErrUsage = errors.New("usage: roteiro <inspect|adapt|view> [file]")

// App encapsulates the application logic for testing.
type App struct {
	Input    io.Reader // Read script from stdin (if FilePath is empty)
	FilePath string    // Read script from file (takes precedence over Input)
	Out      io.Writer

	Validator roteiro.Validator
	Adapter   roteiro.BlockAdapter
	Loader    roteiro.CaseLoader
	Store     roteiro.RecordStore
	Logger    *zap.Logger

	// NewViewer builds the interactive viewer once scores and session are
	// known. Injected so tests can observe what gets viewed.
	NewViewer func(validation *roteiro.ValidationResult, session *roteiro.AdaptationSession) roteiro.Viewer

	CasesPath   string // JSONL eval-case dataset for batch adaptation (optional)
	RecordsPath string // JSONL destination for adaptation records (optional)
	CaseID      string // identifier written to adaptation records
}

// ReadDocument reads and parses the script input.
func (a *App) ReadDocument() (roteiro.Document, error) {
	var input io.Reader
	if a.FilePath != "" {
		f, err := os.Open(a.FilePath)
		if err != nil {
			return roteiro.Document{}, err
		}
		defer f.Close()
		input = f
	} else {
		if a.Input == nil {
			return roteiro.Document{}, ErrNoInput
		}
		input = a.Input
	}

	raw, err := io.ReadAll(input)
	if err != nil {
		return roteiro.Document{}, err
	}
	return roteiro.ParseScript(string(raw)), nil
}

// inspectOutput is the JSON shape printed by the inspect command.
type inspectOutput struct {
	Meta       roteiro.Metadata          `json:"meta"`
	Structured bool                      `json:"structured"`
	Sections   []roteiro.Section         `json:"sections"`
	Validation *roteiro.ValidationResult `json:"validation,omitempty"`
}

// Inspect parses the script and prints its structure, scoring it when a
// validator is configured.
func (a *App) Inspect(ctx context.Context) error {
	doc, err := a.ReadDocument()
	if err != nil {
		return err
	}

	out := inspectOutput{
		Meta:       doc.Meta,
		Structured: doc.Structured,
		Sections:   doc.Sections,
	}

	if a.Validator != nil {
		validation, err := a.Validator.Validate(ctx, doc)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
		out.Validation = validation
	}

	enc := json.NewEncoder(a.Out)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

// Adapt scores the script, rewrites the weak stage blocks and prints the
// adapted script. Records are saved when a store and path are configured.
func (a *App) Adapt(ctx context.Context) error {
	doc, err := a.ReadDocument()
	if err != nil {
		return err
	}

	validation, err := a.Validator.Validate(ctx, doc)
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	session := roteiro.NewAdaptationSession(a.Adapter, roteiro.WithSessionLogger(a.logger()))
	batch, err := session.Adapt(ctx, doc, *validation)
	if err != nil {
		return err
	}
	for stage, stageErr := range batch.Failed {
		a.logger().Warn("stage adaptation failed",
			zap.String("stage", stage.String()),
			zap.Error(stageErr))
	}

	if err := a.saveRecords(session); err != nil {
		return err
	}

	for i, section := range doc.Sections {
		if i > 0 {
			fmt.Fprint(a.Out, "\n\n")
		}
		text := section.Text
		if section.Kind == roteiro.KindStageBlock {
			if block, ok := session.Block(section.Stage); ok && block.IsAdapted() {
				text = block.Adapted
			}
		}
		fmt.Fprint(a.Out, text)
	}
	fmt.Fprintln(a.Out)

	if !batch.Complete() {
		return fmt.Errorf("%d stage(s) failed to adapt", len(batch.Failed))
	}
	return nil
}

// AdaptBatch adapts every case in a JSONL eval dataset. Cases that carry a
// stored validation reuse it; the rest are scored first. Adapted blocks
// for all cases land in the records output, keyed by case ID.
func (a *App) AdaptBatch(ctx context.Context) error {
	cases, err := a.Loader.Load(a.CasesPath)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	var records []roteiro.AdaptationRecord
	for _, c := range cases {
		doc := roteiro.ParseScript(c.Raw)

		validation := c.Validation
		if validation == nil {
			if a.Validator == nil {
				return fmt.Errorf("case %s: no stored validation and no validator configured", c.ID)
			}
			validation, err = a.Validator.Validate(ctx, doc)
			if err != nil {
				return fmt.Errorf("case %s: validation failed: %w", c.ID, err)
			}
		}

		session := roteiro.NewAdaptationSession(a.Adapter, roteiro.WithSessionLogger(a.logger()))
		batch, err := session.Adapt(ctx, doc, *validation)
		if err != nil {
			return fmt.Errorf("case %s: %w", c.ID, err)
		}
		for stage, stageErr := range batch.Failed {
			a.logger().Warn("stage adaptation failed",
				zap.String("case_id", c.ID),
				zap.String("stage", stage.String()),
				zap.Error(stageErr))
		}

		adapted := 0
		for _, block := range session.Blocks() {
			if !block.IsAdapted() {
				continue
			}
			adapted++
			records = append(records, roteiro.AdaptationRecord{
				CaseID:    c.ID,
				Stage:     block.Stage.String(),
				Original:  block.Original,
				Adapted:   block.Adapted,
				ToneNote:  block.ToneNote,
				AdaptedAt: now,
			})
		}
		fmt.Fprintf(a.Out, "%s: %d/%d bloco(s) adaptado(s)\n", c.ID, adapted, len(batch.Requested))
	}

	if a.Store != nil && a.RecordsPath != "" && len(records) > 0 {
		return a.Store.Save(a.RecordsPath, records)
	}
	return nil
}

// View validates the script when possible and opens the viewer.
func (a *App) View(ctx context.Context) error {
	doc, err := a.ReadDocument()
	if err != nil {
		return err
	}

	var validation *roteiro.ValidationResult
	if a.Validator != nil {
		validation, err = a.Validator.Validate(ctx, doc)
		if err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}
	}

	var session *roteiro.AdaptationSession
	if a.Adapter != nil {
		session = roteiro.NewAdaptationSession(a.Adapter, roteiro.WithSessionLogger(a.logger()))
	}

	return a.NewViewer(validation, session).View(ctx, doc)
}

// saveRecords persists the session's adapted blocks as JSONL.
func (a *App) saveRecords(session *roteiro.AdaptationSession) error {
	if a.Store == nil || a.RecordsPath == "" {
		return nil
	}

	now := time.Now().UTC()
	var records []roteiro.AdaptationRecord
	for _, block := range session.Blocks() {
		if !block.IsAdapted() {
			continue
		}
		records = append(records, roteiro.AdaptationRecord{
			CaseID:    a.CaseID,
			Stage:     block.Stage.String(),
			Original:  block.Original,
			Adapted:   block.Adapted,
			ToneNote:  block.ToneNote,
			AdaptedAt: now,
		})
	}
	if len(records) == 0 {
		return nil
	}
	return a.Store.Save(a.RecordsPath, records)
}

func (a *App) logger() *zap.Logger {
	if a.Logger == nil {
		return zap.NewNop()
	}
	return a.Logger
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if len(os.Args) < 2 {
		return ErrUsage
	}
	command := os.Args[1]

	flags := flag.NewFlagSet(command, flag.ContinueOnError)
	casesPath := flags.String("cases", "", "JSONL eval-case dataset to adapt in batch")
	recordsPath := flags.String("records", "", "JSONL file to write adaptation records to")
	caseID := flags.String("case", "", "case identifier written to adaptation records")
	light := flags.Bool("light", false, "use the light terminal theme")
	verbose := flags.Bool("v", false, "verbose logging")
	if err := flags.Parse(os.Args[2:]); err != nil {
		return err
	}

	logger := zap.NewNop()
	if *verbose {
		var err error
		logger, err = zap.NewDevelopment()
		if err != nil {
			return err
		}
		defer logger.Sync()
	}

	app := &App{
		Out:         os.Stdout,
		Logger:      logger,
		CasesPath:   *casesPath,
		RecordsPath: *recordsPath,
		CaseID:      *caseID,
	}

	if flags.NArg() >= 1 {
		app.FilePath = flags.Arg(0)
	} else if *casesPath == "" { // batch mode reads the dataset, not stdin
		stat, err := os.Stdin.Stat()
		if err != nil {
			return fmt.Errorf("error checking stdin: %w", err)
		}
		if (stat.Mode() & os.ModeCharDevice) != 0 {
			return ErrNoInput
		}
		app.Input = os.Stdin
	}

	apiKey := os.Getenv("GEMINI_API_KEY")
	needsAPI := command == "adapt"
	if apiKey == "" && needsAPI {
		return fmt.Errorf("GEMINI_API_KEY environment variable required")
	}

	if apiKey != "" {
		client, err := gemini.NewClient(ctx, apiKey)
		if err != nil {
			return fmt.Errorf("failed to create Gemini client: %w", err)
		}
		defer client.Close()

		app.Validator = gemini.NewValidator(client, gemini.DefaultModel)
		app.Adapter = fs.NewCachedAdapter(
			gemini.NewAdapter(client, gemini.DefaultModel),
			fs.DefaultCacheDir(),
		)
	}

	theme := lipgloss.DefaultTheme()
	if *light {
		theme = lipgloss.LightTheme()
	}

	app.Loader = jsonl.NewLoader()
	app.Store = jsonl.NewStore()
	app.NewViewer = func(validation *roteiro.ValidationResult, session *roteiro.AdaptationSession) roteiro.Viewer {
		opts := []bubbletea.ScriptModelOption{
			bubbletea.WithScriptTheme(theme),
			bubbletea.WithScriptWordDiffer(worddiff.NewDiffer()),
			bubbletea.WithScriptClipboard(clipboard.NewSystem()),
		}
		if validation != nil {
			opts = append(opts, bubbletea.WithScriptValidation(validation))
		}
		if session != nil {
			opts = append(opts, bubbletea.WithScriptSession(session))
		}
		return bubbletea.NewViewer(opts...)
	}

	switch command {
	case "inspect":
		return app.Inspect(ctx)
	case "adapt":
		if app.CasesPath != "" {
			return app.AdaptBatch(ctx)
		}
		return app.Adapt(ctx)
	case "view":
		return app.View(ctx)
	default:
		return ErrUsage
	}
}
