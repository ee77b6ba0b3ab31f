// Command schemafu-gen builds the blog schema and prints it as SDL, introspection JSON, Go type
// declarations, or a fingerprint.
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"

	schemafu "github.com/ccbrown/schema-fu"
	"github.com/ccbrown/schema-fu/examples/blog"
	"github.com/ccbrown/schema-fu/graphql/schema"
	"github.com/ccbrown/schema-fu/graphql/schema/introspection"
	"github.com/ccbrown/schema-fu/sdl"
	"github.com/ccbrown/schema-fu/typegen"
)

const (
	FormatSDL         = "sdl"
	FormatJSON        = "json"
	FormatGo          = "go"
	FormatFingerprint = "fingerprint"
)

// Run builds the schema according to the given command line arguments and writes the result to w.
func Run(w io.Writer, args ...string) []error {
	flags := pflag.NewFlagSet("schemafu-gen", pflag.ContinueOnError)
	flags.SetOutput(io.Discard)
	format := flags.StringP("format", "f", FormatSDL, "the output format: sdl, json, go, or fingerprint")
	pkg := flags.String("pkg", "", "the package name of the generated output, required for the go format")
	configPath := flags.StringP("config", "c", "", "the path to an hcl file with builder options")
	verbose := flags.BoolP("verbose", "v", false, "log the builder's progress")
	if err := flags.Parse(args); err != nil {
		return []error{err}
	}

	logger := logrus.New()
	logger.Out = os.Stderr
	if *verbose {
		logger.Level = logrus.DebugLevel
	} else {
		logger.Level = logrus.WarnLevel
	}

	cfg := blog.Config(blog.NewSampleStore())
	cfg.Logger = logger

	var sourceTypes map[string]string
	if *configPath != "" {
		file, err := loadConfigFile(*configPath)
		if err != nil {
			return []error{err}
		}
		file.apply(&cfg)
		sourceTypes = file.SourceTypes
	}

	if *format == FormatGo && *pkg == "" {
		return []error{errors.New("the --pkg flag is required for the go format")}
	}

	s, err := schemafu.MakeSchema(cfg)
	if err != nil {
		if merr, ok := err.(*multierror.Error); ok {
			return merr.Errors
		}
		return []error{err}
	}
	logger.WithField("types", len(s.TypeNames())).Debug("built schema")

	output, err := render(s, *format, *pkg, sourceTypes)
	if err != nil {
		return []error{err}
	}
	if _, err := io.WriteString(w, output); err != nil {
		return []error{err}
	}
	return nil
}

func render(s *schema.Schema, format, pkg string, sourceTypes map[string]string) (string, error) {
	switch format {
	case FormatSDL:
		return sdl.Print(s)
	case FormatJSON:
		b, err := introspection.Marshal(s)
		if err != nil {
			return "", err
		}
		return string(b) + "\n", nil
	case FormatGo:
		return typegen.Generate(s, typegen.Config{
			Package:     pkg,
			SourceTypes: sourceTypes,
		})
	case FormatFingerprint:
		fingerprint, err := introspection.Fingerprint(s)
		if err != nil {
			return "", err
		}
		return fingerprint + "\n", nil
	}
	return "", errors.Errorf("unknown format %q", format)
}

func main() {
	if errs := Run(os.Stdout, os.Args[1:]...); len(errs) > 0 {
		for _, err := range errs {
			fmt.Fprintln(os.Stderr, err.Error())
		}
		os.Exit(1)
	}
}
