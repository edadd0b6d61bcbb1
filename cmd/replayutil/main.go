package main

import (
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/seqguard/go-replay"
	"github.com/seqguard/go-replay/bitmask"
)

var log = replay.Logger

var (
	windowSize uint64
	maxSeq     uint64
	backend    string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.Uint64Var(&windowSize, "window", 64, "number of sequence numbers tracked behind the latest one")
	pf.Uint64Var(&maxSeq, "max-seq", 1<<32-1, "highest acceptable sequence number")
	pf.StringVar(&backend, "backend", "words", "bit window implementation: words or cells")
	pf.StringVar(&logLevel, "log-level", "", "log level, overrides "+replay.LogEnv)

	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(simulateCmd)
}

var rootCmd = &cobra.Command{
	Use:   "replayutil",
	Short: "Replay detection diagnostics",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if logLevel == "" {
			return nil
		}
		return replay.SetLogLevel(logLevel)
	},
}

// newDetector builds a detector from the command line flags.
func newDetector() (*replay.Detector[replay.Mask], error) {
	cfg := replay.Config{
		MaxSeq:     maxSeq,
		WindowSize: windowSize,
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	switch backend {
	case "words":
		cfg.Mask = bitmask.NewWords(windowSize)
	case "cells":
		cfg.Mask = bitmask.NewCells(windowSize)
	default:
		return nil, errors.Errorf("unknown backend %q", backend)
	}
	log.WithFields(logrus.Fields{
		"backend": backend,
		"window":  windowSize,
		"max_seq": maxSeq,
	}).Debug("created detector")
	return replay.NewFromConfig(cfg)
}

// verdict describes the outcome of CheckAndAccept.
func verdict(latest bool, err error) string {
	switch {
	case err == nil && latest:
		return "newest"
	case err == nil:
		return "accepted"
	case replay.IsErrDuplicate(err):
		return "duplicate"
	case replay.IsErrOutOfRange(err):
		return "out-of-range"
	default:
		return "error"
	}
}
