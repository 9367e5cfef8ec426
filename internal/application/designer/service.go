// Package designer coordinates the theme store, the palette generator and the
// export surface for the CLI and the TUI.
package designer

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/skinlab/internal/domain/theme"
	"github.com/alexisbeaulieu97/skinlab/internal/export"
	"github.com/alexisbeaulieu97/skinlab/internal/infrastructure/logging"
	"github.com/alexisbeaulieu97/skinlab/internal/ports"
	skinerrors "github.com/alexisbeaulieu97/skinlab/pkg/errors"
)

var (
	// ErrBusy is returned when Generate is called while another generation is
	// still in flight. The trigger is dropped, not queued.
	ErrBusy = errors.New("a generation is already in progress")
	// ErrThemeNotFound is returned by Select for ids that are neither a preset
	// nor in history.
	ErrThemeNotFound = errors.New("theme not found")
)

// IDMinter produces a fresh theme id for a generation finished at now.
type IDMinter func(now time.Time) string

// DefaultIDMinter returns ids like gen-1718031234567-3f2a9c1d.
func DefaultIDMinter(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	return fmt.Sprintf("gen-%d-%s", now.UnixMilli(), suffix)
}

// Options configures a Service. Store and Generator are required.
type Options struct {
	Store     *theme.Store
	Generator ports.PaletteGenerator
	Logger    ports.Logger
	Events    ports.EventPublisher
	MintID    IDMinter
	Now       func() time.Time
}

// Service runs generations against a theme store. At most one generation is
// in flight per Service.
type Service struct {
	store     *theme.Store
	generator ports.PaletteGenerator
	logger    ports.Logger
	events    ports.EventPublisher
	mintID    IDMinter
	now       func() time.Time

	busy     atomic.Bool
	commitMu sync.Mutex
}

// NewService constructs a designer service.
func NewService(opts Options) (*Service, error) {
	if opts.Store == nil {
		return nil, errors.New("designer: store is required")
	}
	if opts.Generator == nil {
		return nil, errors.New("designer: generator is required")
	}
	if opts.Logger == nil {
		opts.Logger = logging.NewNoOpLogger()
	}
	if opts.MintID == nil {
		opts.MintID = DefaultIDMinter
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	return &Service{
		store:     opts.Store,
		generator: opts.Generator,
		logger:    opts.Logger,
		events:    opts.Events,
		mintID:    opts.MintID,
		now:       opts.Now,
	}, nil
}

// Store exposes the underlying theme store for read access.
func (s *Service) Store() *theme.Store {
	return s.store
}

// Generator describes the configured palette generator.
func (s *Service) Generator() ports.GeneratorInfo {
	return s.generator.Describe()
}

// Busy reports whether a generation is in flight.
func (s *Service) Busy() bool {
	return s.busy.Load()
}

// Generate asks the generator for a palette, merges it onto the active theme,
// activates the result and records it in history. Any error leaves the store
// untouched.
func (s *Service) Generate(ctx context.Context, prompt string) (theme.Theme, error) {
	prompt = strings.TrimSpace(prompt)
	if prompt == "" {
		return theme.Theme{}, skinerrors.NewGenerationError(skinerrors.ReasonEmptyPrompt, &skinerrors.EmptyPromptError{})
	}

	if !s.busy.CompareAndSwap(false, true) {
		s.logger.Debug(ctx, "generation rejected while busy")
		s.emit(ctx, ports.EventGenerationRejected, "prompt_chars", len([]rune(prompt)))
		return theme.Theme{}, ErrBusy
	}
	defer s.busy.Store(false)

	info := s.generator.Describe()
	started := s.now()
	s.logger.Info(ctx, "generating palette", "provider", info.Provider, "model", info.Model)
	s.emit(ctx, ports.EventGenerationStarted, "provider", info.Provider, "model", info.Model)

	result, err := s.generator.Generate(ctx, prompt)
	if err != nil {
		err = asGenerationError(err)
		s.logger.Error(ctx, "palette generation failed", "error", err.Error(), "duration", s.now().Sub(started))
		s.emit(ctx, ports.EventGenerationFailed, "reason", string(reasonOf(err)))
		return theme.Theme{}, err
	}

	for _, issue := range result.Issues {
		s.logger.Warn(ctx, "ignored part of generated palette", "issue", issue)
	}

	s.commitMu.Lock()
	finished := s.now()
	generated := theme.Merge(s.store.Active(), result.Fragment, prompt, s.mintID(finished))
	s.store.SetActive(generated)
	s.store.RecordGenerated(generated)
	s.commitMu.Unlock()

	s.logger.Info(ctx, "palette generated",
		"theme_id", generated.ID,
		"slots", len(result.Fragment.Colors),
		"issues", len(result.Issues),
		"duration", finished.Sub(started),
	)
	s.emit(ctx, ports.EventGenerationCompleted,
		"theme_id", generated.ID,
		"name", generated.Name,
		"slots", len(result.Fragment.Colors),
		"issues", len(result.Issues),
	)
	return generated, nil
}

// Select activates a preset or a history entry. History is not reordered.
func (s *Service) Select(ctx context.Context, id string) (theme.Theme, error) {
	s.commitMu.Lock()
	defer s.commitMu.Unlock()

	t, ok := s.store.Lookup(id)
	if !ok {
		return theme.Theme{}, fmt.Errorf("%w: %s", ErrThemeNotFound, id)
	}
	s.store.SetActive(t)
	s.logger.Debug(ctx, "theme selected", "theme_id", id)
	s.emit(ctx, ports.EventThemeSelected, "theme_id", id)
	return t, nil
}

// Export renders the copy-paste bundle for t.
func (s *Service) Export(ctx context.Context, t theme.Theme) string {
	bundle := export.Bundle(t)
	s.emit(ctx, ports.EventThemeExported, "theme_id", t.ID, "bytes", len(bundle))
	return bundle
}

func asGenerationError(err error) error {
	var genErr *skinerrors.GenerationError
	if errors.As(err, &genErr) {
		return err
	}
	return skinerrors.NewGenerationError(skinerrors.ReasonTransport, err)
}

func reasonOf(err error) skinerrors.GenerationReason {
	var genErr *skinerrors.GenerationError
	if errors.As(err, &genErr) {
		return genErr.Reason
	}
	return ""
}
