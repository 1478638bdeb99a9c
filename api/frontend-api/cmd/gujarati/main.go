// Copyright (c) 2023-2025 RapidaAI
// Author: Prashant Srivastav <prashant@rapida.ai>
//
// Licensed under GPL-2.0 with Rapida Additional Terms.
// See LICENSE.md or contact sales@rapida.ai for commercial usage.

// Command gujarati runs the front end over text given with --text or read
// line by line from stdin, printing one result per input line in order.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/spf13/pflag"
	"golang.org/x/sync/errgroup"

	internal_frontend "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/frontend"
	internal_normalizers "github.com/rapidaai/gujarati-frontend/api/frontend-api/internal/normalizers"
	"github.com/rapidaai/gujarati-frontend/pkg/commons"
)

const (
	modeNormalize = "normalize"
	modePhonemize = "phonemize"
	modeAnalyze   = "analyze"
)

type options struct {
	mode        string
	text        string
	concurrency int
	rules       string
}

func main() {
	var opts options
	flags := pflag.NewFlagSet("gujarati", pflag.ExitOnError)
	flags.StringVarP(&opts.mode, "mode", "m", modeNormalize, "one of normalize, phonemize, analyze")
	flags.StringVarP(&opts.text, "text", "t", "", "text to process; stdin is read when empty")
	flags.IntVarP(&opts.concurrency, "concurrency", "c", 4, "lines processed at once")
	flags.StringVar(&opts.rules, "rules", "", "comma separated normalizer rules; empty runs all")
	logLevel := flags.String("log-level", "error", "log level")
	flags.Parse(os.Args[1:])

	logger, err := commons.NewApplicationLogger(commons.WithLevel(*logLevel), commons.WithName("gujarati"))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var in io.Reader = os.Stdin
	if opts.text != "" {
		in = strings.NewReader(opts.text)
	}
	if err := run(ctx, logger, opts, in, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, logger commons.Logger, opts options, in io.Reader, out io.Writer) error {
	process, err := processor(opts.mode)
	if err != nil {
		return err
	}

	serviceOpts := []internal_frontend.Option{internal_frontend.WithConcurrency(opts.concurrency)}
	if rules := strings.Split(opts.rules, commons.SEPARATOR); opts.rules != "" {
		pipeline, err := internal_normalizers.BuildNormalizerPipeline(logger, rules)
		if err != nil {
			return err
		}
		serviceOpts = append(serviceOpts, internal_frontend.WithNormalizer(pipeline))
	}
	service, err := internal_frontend.NewService(logger, serviceOpts...)
	if err != nil {
		return err
	}

	lines, err := readLines(in)
	if err != nil {
		return err
	}

	results := make([]string, len(lines))
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.concurrency, 1))
	for i, line := range lines {
		i, line := i, line
		g.Go(func() error {
			result, err := process(gCtx, service, line)
			if err != nil {
				return err
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	w := bufio.NewWriter(out)
	for _, r := range results {
		fmt.Fprintln(w, r)
	}
	return w.Flush()
}

type processFunc func(ctx context.Context, service *internal_frontend.Service, line string) (string, error)

func processor(mode string) (processFunc, error) {
	switch mode {
	case modeNormalize:
		return func(ctx context.Context, s *internal_frontend.Service, line string) (string, error) {
			r, err := s.Normalize(ctx, line)
			if err != nil && !errors.Is(err, internal_frontend.ErrInvalidCharacters) {
				return "", err
			}
			return r.Normalized, nil
		}, nil
	case modePhonemize:
		return func(ctx context.Context, s *internal_frontend.Service, line string) (string, error) {
			r, err := s.Phonemize(ctx, line, true)
			if err != nil && !errors.Is(err, internal_frontend.ErrInvalidCharacters) {
				return "", err
			}
			return strings.Join(r.Phonemes, " "), nil
		}, nil
	case modeAnalyze:
		return func(ctx context.Context, s *internal_frontend.Service, line string) (string, error) {
			a, err := s.Analyze(ctx, line, "")
			if err != nil {
				if errors.Is(err, internal_frontend.ErrInvalidCharacters) {
					return internal_normalizers.ErrorMarker, nil
				}
				return "", err
			}
			encoded, err := json.Marshal(a)
			if err != nil {
				return "", err
			}
			return string(encoded), nil
		}, nil
	}
	return nil, fmt.Errorf("unknown mode %q", mode)
}

func readLines(in io.Reader) ([]string, error) {
	lines := make([]string, 0)
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}
	return lines, nil
}
