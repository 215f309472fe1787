// Command preprocess segments line-oriented corpus text into the
// paragraph/sentence/word XML format using a selectable tokenizer
// backend.
package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"

	"github.com/blakuxberry/preprocess-corpora-fork/core/corpusxml"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/catalog"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/logging"
	"github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers"

	// Import backend packages to register them.
	_ "github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers/prosetok"
	_ "github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers/punkt"
	_ "github.com/blakuxberry/preprocess-corpora-fork/internal/tokenizers/stanza"
)

const version = "0.1.0"

// CLI defines the command-line interface for preprocess.
var CLI struct {
	// Global flags
	LogLevel  string `help:"Log level (debug, info, warn, error)" default:"info" enum:"debug,info,warn,error"`
	LogFormat string `help:"Log output format" default:"text" enum:"text,json"`

	Tokenize TokenizeCmd `cmd:"" help:"Tokenize a text file into the segmented corpus format"`
	Runs     RunsGroup   `cmd:"" help:"Run catalog operations"`
	Version  VersionCmd  `cmd:"" help:"Print version information"`
}

// TokenizeCmd tokenizes one input file.
type TokenizeCmd struct {
	Input     string `arg:"" help:"Input UTF-8 text file (.xz accepted)" type:"existingfile"`
	Out       string `required:"" help:"Output document path" type:"path"`
	Language  string `short:"l" required:"" help:"Language code (e.g. en, nl)"`
	Tokenizer string `short:"t" default:"punkt" enum:"uplug,punkt,prose,stanza,treetagger" help:"Tokenizer backend"`
	ModelsDir string `help:"Directory holding tokenizer models" env:"PREPROCESS_MODELS_DIR" type:"path"`
	Server    string `help:"Native neural runtime address (stanza)" env:"STANZA_SERVER"`
	UplugBin  string `help:"Uplug executable" env:"UPLUG_BIN"`
	Catalog   string `help:"Record the run in this catalog database" env:"PREPROCESS_CATALOG" type:"path"`
}

func (c *TokenizeCmd) Run() error {
	res, err := tokenizers.Tokenize(tokenizers.Options{
		Input:     c.Input,
		Output:    c.Out,
		Language:  c.Language,
		Backend:   c.Tokenizer,
		ModelsDir: c.ModelsDir,
		ServerURL: c.Server,
		UplugBin:  c.UplugBin,
	})
	if err != nil {
		return err
	}
	if res.Skipped {
		return nil
	}

	if c.Catalog != "" {
		if err := c.record(res); err != nil {
			return fmt.Errorf("recording run: %w", err)
		}
	}
	return nil
}

// record stores the completed run in the catalog. External backends
// number the output themselves, so their counts are recovered by
// parsing the written document; an unparseable or missing output (the
// external tool's accepted failure mode) is recorded without counts or
// skipped.
func (c *TokenizeCmd) record(res *tokenizers.Result) error {
	run := &catalog.Run{
		Input:      c.Input,
		Output:     c.Out,
		Backend:    c.Tokenizer,
		Language:   c.Language,
		Paragraphs: res.Paragraphs,
		Sentences:  res.Sentences,
		Words:      res.Words,
	}

	digest, err := catalog.DigestFile(c.Out)
	if err != nil {
		logging.Warn("output missing, run not recorded", "output", c.Out, "err", err)
		return nil
	}
	run.Digest = digest

	if res.External {
		if doc, err := corpusxml.ParseFile(c.Out); err == nil {
			run.Paragraphs, run.Sentences, run.Words = doc.Counts()
		} else {
			logging.Debug("external output not countable", "output", c.Out, "err", err)
		}
	}

	cat, err := catalog.Open(c.Catalog)
	if err != nil {
		return err
	}
	defer cat.Close()
	return cat.Record(run)
}

// RunsGroup contains catalog inspection operations.
type RunsGroup struct {
	List RunsListCmd `cmd:"" help:"List recorded tokenization runs"`
}

// RunsListCmd lists recorded runs.
type RunsListCmd struct {
	Catalog string `required:"" help:"Catalog database path" env:"PREPROCESS_CATALOG" type:"path"`
}

func (c *RunsListCmd) Run() error {
	cat, err := catalog.Open(c.Catalog)
	if err != nil {
		return err
	}
	defer cat.Close()

	runs, err := cat.List()
	if err != nil {
		return err
	}
	for _, r := range runs {
		fmt.Printf("%s  %s  %s/%s  p=%d s=%d w=%d  %s -> %s\n",
			r.CreatedAt.Format("2006-01-02 15:04:05"), r.ID,
			r.Backend, r.Language,
			r.Paragraphs, r.Sentences, r.Words,
			r.Input, r.Output)
	}
	return nil
}

// VersionCmd prints version information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("preprocess %s\n", version)
	return nil
}

func main() {
	// Optional .env for model/catalog locations; absence is fine.
	_ = godotenv.Load()

	ctx := kong.Parse(&CLI,
		kong.Name("preprocess"),
		kong.Description("Sentence- and word-level tokenization for parallel corpora."),
		kong.UsageOnError(),
	)
	logging.Init(CLI.LogLevel, CLI.LogFormat)
	ctx.FatalIfErrorf(ctx.Run())
}
