// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package lookup runs the weather lookup pipeline: credential acquisition,
// keyword construction, search request, and output. Each step returns its
// error to the caller; the command layer decides to terminate.
package lookup

import (
	"context"
	"fmt"
	"io"

	"github.com/pdiddy/weatherctl/internal/credential"
	"github.com/pdiddy/weatherctl/internal/debug"
	"github.com/pdiddy/weatherctl/internal/jsonval"
	"github.com/pdiddy/weatherctl/internal/keyword"
	"github.com/pdiddy/weatherctl/internal/weather"
)

// Output formats for the decoded response.
const (
	FormatDebug = "debug"
	FormatJSON  = "json"
	FormatYAML  = "yaml"
)

// Options configures one pipeline run.
type Options struct {
	// Lookup supplies environment variables; os.LookupEnv in production.
	Lookup credential.LookupFunc

	// Args are the positional arguments, program name already stripped.
	Args []string

	// Client performs the search request.
	Client *weather.Client

	// Format selects how the decoded value is printed: FormatDebug (the
	// default), FormatJSON, or FormatYAML.
	Format string

	// Out receives the printed response; Diag receives the debug dump.
	Out  io.Writer
	Diag io.Writer
}

// Run executes the pipeline once. It stops at the first failing step: a
// missing credential means no request is dispatched, and a transport
// failure means no decode is attempted. An empty argument list is not an
// error; the request goes out with an empty keyword.
func Run(ctx context.Context, opts Options) error {
	token, err := credential.Token(opts.Lookup)
	if err != nil {
		return err
	}

	kw := keyword.FromArgs(opts.Args)

	v, err := opts.Client.Search(ctx, token, kw)
	if err != nil {
		return err
	}

	switch opts.Format {
	case FormatJSON:
		if err := jsonval.EncodeJSON(opts.Out, v); err != nil {
			return fmt.Errorf("encoding response: %w", err)
		}
	case FormatYAML:
		if err := jsonval.EncodeYAML(opts.Out, v); err != nil {
			return fmt.Errorf("encoding response: %w", err)
		}
	case FormatDebug, "":
		debug.Dump(opts.Diag, v)
	default:
		return fmt.Errorf("unknown output format %q", opts.Format)
	}
	return nil
}
