// Package logic runs a single encrypt or decrypt operation and reports its outcome.
package logic

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/sirupsen/logrus"

	"github.com/idelchi/imgenc/internal/config"
	"github.com/idelchi/imgenc/internal/encryption"
)

// ErrReported is returned when the operation failed and its failure has already been reported.
var ErrReported = errors.New("operation failed")

// Run performs the operation described by cfg and writes the JSON Result to out.
// It returns ErrReported when the Result is unsuccessful.
func Run(cfg *config.Config, out io.Writer, logger *logrus.Logger) error {
	result := execute(cfg, logger)

	if err := Report(out, result); err != nil {
		return err
	}

	if !result.Success {
		return ErrReported
	}

	return nil
}

// Report writes result to w as a single JSON object.
func Report(w io.Writer, result encryption.Result) error {
	if err := json.NewEncoder(w).Encode(result); err != nil {
		return fmt.Errorf("writing result: %w", err)
	}

	return nil
}

func execute(cfg *config.Config, logger *logrus.Logger) encryption.Result {
	start := time.Now()

	entry := logger.WithFields(logrus.Fields{
		"op":    cfg.Operation,
		"input": cfg.Input,
	})

	maxSize, err := cfg.MaxBytes()
	if err != nil {
		return encryption.Failure(err)
	}

	if maxSize > 0 {
		//nolint:gosec // maxSize is positive
		entry = entry.WithField("limit", humanize.IBytes(uint64(maxSize)))
	}

	entry.Debug("starting")

	proc := encryption.NewProcessor(
		encryption.WithMaxSize(maxSize),
		encryption.WithImagesOnly(cfg.ImagesOnly),
	)

	var result encryption.Result

	switch cfg.Operation {
	case config.Encrypt:
		result = proc.EncryptFile(cfg.Input, cfg.Key)
		entry = entry.WithField("output", result.EncryptedPath)
	case config.Decrypt:
		result = proc.DecryptFile(cfg.Input, cfg.Key, cfg.Output)
		entry = entry.WithField("output", result.DecryptedPath)
	default:
		result = encryption.Failure(fmt.Errorf("invalid operation %q", cfg.Operation))
	}

	entry = entry.WithField("duration", time.Since(start).Round(time.Millisecond))

	if !result.Success {
		entry.WithError(result.Err).Warn("operation failed")

		return result
	}

	//nolint:gosec // sizes of written files are never negative
	entry.WithField("size", humanize.IBytes(uint64(result.Size))).Info("operation completed")

	return result
}
