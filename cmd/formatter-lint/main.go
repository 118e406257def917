package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	formatter "github.com/goliatone/go-formatter"
	"github.com/goliatone/go-formatter/pkg/catalog"
	pkgopenapi "github.com/goliatone/go-formatter/pkg/openapi"
)

func main() {
	catalogDir := flag.String("catalog", "", "catalog directory whose names x-formatter strings may reference")
	key := flag.String("extension", pkgopenapi.DefaultExtensionKey, "schema extension naming formatters")
	flag.Usage = func() {
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] paths...\n", filepath.Base(os.Args[0])); err != nil {
			panic(err)
		}
		if _, err := fmt.Fprintf(flag.CommandLine.Output(), "\nLint OpenAPI documents for invalid %s extensions.\n\n", *key); err != nil {
			panic(err)
		}
		flag.PrintDefaults()
	}
	flag.Parse()

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	store := catalog.New()
	if *catalogDir != "" {
		loaded, err := catalog.Load(*catalogDir)
		if err != nil {
			fmt.Fprintf(os.Stderr, "load catalog: %v\n", err)
			os.Exit(1)
		}
		store = loaded
	}

	l := &linter{
		key:     *key,
		catalog: store,
		parser: formatter.NewParser(
			pkgopenapi.WithExtensionKey(*key),
			pkgopenapi.WithInference(false),
		),
	}

	ctx := context.Background()
	var violations []violation
	for _, path := range paths {
		linted, err := l.lintFile(ctx, path)
		if err != nil {
			fmt.Fprintf(os.Stderr, "lint %s: %v\n", path, err)
			os.Exit(1)
		}
		violations = append(violations, linted...)
	}

	if len(violations) > 0 {
		sortViolations(violations)
		for _, v := range violations {
			fmt.Fprintf(os.Stderr, "%s: %s -> %s\n", v.file, v.location, v.message)
		}
		os.Exit(1)
	}
}
