package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"sort"
	"sync/atomic"
	"time"

	"github.com/goccy/go-json"

	formatter "github.com/goliatone/go-formatter"
	"github.com/goliatone/go-formatter/pkg/catalog"
	"github.com/goliatone/go-formatter/pkg/format"
	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
	"github.com/goliatone/go-formatter/pkg/orchestrator"
	"github.com/goliatone/go-formatter/pkg/render"
	"github.com/goliatone/go-formatter/pkg/renderers/prompt"
	"github.com/goliatone/go-formatter/pkg/renderers/tui"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err = run(ctx, os.Args[1:], os.Stdout, os.Stderr, cfg)
	stop()
	if err != nil && !errors.Is(err, flag.ErrHelp) {
		log.Fatalf("formatter: %v", err)
	}
}

type options struct {
	format    string
	catalog   string
	openapi   string
	operation string
	field     string

	initial string
	keys    string
	paste   string
	blur    bool

	interactive bool
	tui         bool
	watch       bool
	output      string
	verbose     bool

	extensionKey string
	infer        bool
	allowHTTP    bool
}

func parseFlags(args []string, stderr io.Writer, cfg Config) (options, error) {
	var o options
	fs := flag.NewFlagSet("formatter-cli", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&o.format, "format", "", "preset or catalog formatter name")
	fs.StringVar(&o.catalog, "catalog", cfg.Catalog.Dir, "catalog directory or file (yaml, toml, json)")
	fs.StringVar(&o.openapi, "openapi", "", "OpenAPI document path or URL")
	fs.StringVar(&o.operation, "operation", "", "operation ID holding the field")
	fs.StringVar(&o.field, "field", "", "request body field path, e.g. contacts[].mobile")
	fs.StringVar(&o.initial, "initial", "", "field text before the formatter attaches")
	fs.StringVar(&o.keys, "keys", "", "key script to type, e.g. 5551234567<BS><Left><C-a>")
	fs.StringVar(&o.paste, "paste", "", "text pasted over the whole field")
	fs.BoolVar(&o.blur, "blur", false, "blur the field at the end")
	fs.BoolVar(&o.interactive, "interactive", false, "prompt for values")
	fs.BoolVar(&o.tui, "tui", false, "edit a live field in the terminal")
	fs.BoolVar(&o.watch, "watch", cfg.Catalog.Watch, "reload the catalog directory while running interactively")
	fs.StringVar(&o.output, "output", cfg.Output.Format, "output format: text, pretty or json")
	fs.BoolVar(&o.verbose, "v", false, "log rejected edits")
	fs.StringVar(&o.extensionKey, "extension", cfg.OpenAPI.ExtensionKey, "OpenAPI schema extension naming formatters")
	fs.BoolVar(&o.infer, "infer", cfg.OpenAPI.Infer, "infer formatters from OpenAPI types and formats")
	fs.BoolVar(&o.allowHTTP, "http", cfg.OpenAPI.AllowHTTP, "allow loading OpenAPI documents over HTTP")
	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	switch {
	case o.interactive && o.tui:
		return options{}, errors.New("-interactive and -tui are mutually exclusive")
	case o.openapi != "" && o.format != "":
		return options{}, errors.New("-format and -openapi are mutually exclusive")
	case o.openapi != "" && o.operation == "":
		return options{}, errors.New("-openapi requires -operation")
	case o.watch && o.catalog == "":
		return options{}, errors.New("-watch requires -catalog")
	}
	return o, nil
}

// request builds the orchestrator request for a formatter name, or a field
// path when an OpenAPI document is in play.
func (o options) request(name string) (orchestrator.Request, error) {
	if o.openapi == "" {
		return orchestrator.Request{Name: name}, nil
	}
	src, err := pkgopenapi.SourceFor(o.openapi)
	if err != nil {
		return orchestrator.Request{}, err
	}
	return orchestrator.Request{Source: src, OperationID: o.operation, Field: name}, nil
}

func (o options) selected() string {
	if o.openapi != "" {
		return o.field
	}
	return o.format
}

type app struct {
	opts    options
	loader  pkgopenapi.Loader
	parser  pkgopenapi.Parser
	base    []orchestrator.Option
	current atomic.Pointer[orchestrator.Orchestrator]
	store   *catalog.Store
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer, cfg Config) error {
	opts, err := parseFlags(args, stderr, cfg)
	if err != nil {
		return err
	}
	output, err := render.ParseOutputFormat(opts.output)
	if err != nil {
		return err
	}

	a := &app{opts: opts, store: catalog.New()}
	if opts.catalog != "" {
		if a.store, err = catalog.Load(opts.catalog); err != nil {
			return err
		}
	}

	var loaderOpts []pkgopenapi.LoaderOption
	if opts.allowHTTP {
		loaderOpts = append(loaderOpts, pkgopenapi.WithHTTPFallback(15*time.Second))
	}
	a.loader = formatter.NewLoader(loaderOpts...)
	a.parser = formatter.NewParser(
		pkgopenapi.WithExtensionKey(opts.extensionKey),
		pkgopenapi.WithInference(opts.infer),
	)
	a.base = []orchestrator.Option{
		orchestrator.WithLoader(a.loader),
		orchestrator.WithParser(a.parser),
	}
	if opts.verbose {
		logger := log.New(stderr, "formatter: ", 0)
		a.base = append(a.base, orchestrator.WithLogger(logger.Printf))
	}
	a.swap(a.store)

	if opts.interactive || opts.tui {
		return a.interactive(ctx, stdout, stderr, output)
	}
	return a.script(ctx, stdout, output)
}

// swap installs an orchestrator backed by store.
func (a *app) swap(store *catalog.Store) {
	opts := append(append([]orchestrator.Option(nil), a.base...), orchestrator.WithCatalog(store))
	a.current.Store(orchestrator.New(opts...))
}

func (a *app) resolve(ctx context.Context, name string) (*format.Formatter, error) {
	req, err := a.opts.request(name)
	if err != nil {
		return nil, err
	}
	return a.current.Load().Resolve(ctx, req)
}

func (a *app) script(ctx context.Context, stdout io.Writer, output render.OutputFormat) error {
	name := a.opts.selected()
	if name == "" {
		return errors.New("-format, or -openapi with -field, is required")
	}
	f, err := a.resolve(ctx, name)
	if err != nil {
		return err
	}
	res, err := orchestrator.Run(ctx, f, orchestrator.Script{
		Initial: a.opts.initial,
		Paste:   a.opts.paste,
		Keys:    a.opts.keys,
		Blur:    a.opts.blur,
	})
	if err != nil {
		return err
	}
	return writeResult(stdout, res, output)
}

func (a *app) interactive(ctx context.Context, stdout, stderr io.Writer, output render.OutputFormat) error {
	registry := render.NewRegistry()
	registry.MustRegister(prompt.New(prompt.WithOutput(stderr), prompt.WithTheme(prompt.Theme{InfoPrefix: "  ", ErrorPrefix: "! "})))
	registry.MustRegister(tui.New(tui.WithOutput(stderr)))

	name := "prompt"
	if a.opts.tui {
		name = "tui"
	}
	renderer, err := registry.Get(name)
	if err != nil {
		return err
	}

	names, err := a.names(ctx)
	if err != nil {
		return err
	}

	if a.opts.watch {
		w, err := catalog.NewWatcher(a.opts.catalog)
		if err != nil {
			return err
		}
		defer w.Close()
		watchCtx, cancel := context.WithCancel(ctx)
		defer cancel()
		go func() {
			_ = w.Run(watchCtx, func(store *catalog.Store, err error) {
				if err != nil {
					fmt.Fprintf(stderr, "catalog reload: %v\n", err)
					return
				}
				a.swap(store)
			})
		}()
	}

	entries, err := renderer.Run(ctx, render.Session{
		Name:    a.opts.selected(),
		Names:   names,
		Resolve: a.resolve,
	})
	if err != nil {
		return err
	}
	return render.WriteEntries(stdout, entries, output)
}

// names lists what an interactive session can pick from: the fields of the
// operation, or every catalog entry and preset.
func (a *app) names(ctx context.Context) ([]string, error) {
	if a.opts.openapi != "" {
		src, err := pkgopenapi.SourceFor(a.opts.openapi)
		if err != nil {
			return nil, err
		}
		doc, err := a.loader.Load(ctx, src)
		if err != nil {
			return nil, err
		}
		ops, err := a.parser.Operations(ctx, doc)
		if err != nil {
			return nil, err
		}
		op, ok := ops[a.opts.operation]
		if !ok {
			return nil, fmt.Errorf("operation %q has no formatted fields", a.opts.operation)
		}
		return op.FieldPaths(), nil
	}

	seen := make(map[string]struct{})
	var names []string
	for _, name := range append(a.store.Names(), format.PresetNames()...) {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}

type selectionOutput struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

type resultOutput struct {
	Text          string          `json:"text"`
	Unformatted   string          `json:"unformatted"`
	Selection     selectionOutput `json:"selection"`
	Complete      bool            `json:"complete"`
	Notifications []string        `json:"notifications"`
}

func writeResult(w io.Writer, res orchestrator.Result, output render.OutputFormat) error {
	out := resultOutput{
		Text:          res.Text,
		Unformatted:   res.Unformatted,
		Selection:     selectionOutput{Start: res.Selection.Start, End: res.Selection.End},
		Complete:      res.Complete,
		Notifications: []string{},
	}
	for _, n := range res.Notifications {
		out.Notifications = append(out.Notifications, n.String())
	}

	switch output {
	case render.OutputFormatJSON:
		payload, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return fmt.Errorf("encode result: %w", err)
		}
		_, err = fmt.Fprintln(w, string(payload))
		return err
	case render.OutputFormatPrettyText:
		_, err := fmt.Fprintf(w, "text:        %q\nselection:   %d-%d\nunformatted: %q\ncomplete:    %t\n",
			out.Text, out.Selection.Start, out.Selection.End, out.Unformatted, out.Complete)
		return err
	default:
		_, err := fmt.Fprintln(w, out.Text)
		return err
	}
}
