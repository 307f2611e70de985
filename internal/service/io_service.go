package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"logdemo/loghub/internal/repository"
)

// Store keys shared by every backend instance.
const (
	KeyAwaitingIO  = "awaiting_io"
	KeyUserMessage = "user_message"
)

const (
	flagTrue  = "true"
	flagFalse = "false"
)

// LogsResult is either a waiting marker or a batch of sampled logs.
type LogsResult struct {
	Waiting bool
	Logs    []string
}

type IOService interface {
	// Start marks the system as awaiting input. Calling it while already
	// awaiting leaves the state unchanged.
	Start(ctx context.Context) error
	// Write stores the message and then clears the wait flag. The two
	// store writes are not atomic.
	Write(ctx context.Context, message string) error
	// Read returns the stored message regardless of the wait flag.
	Read(ctx context.Context) (string, error)
	// Logs reports waiting while the flag is set, otherwise samples logs.
	Logs(ctx context.Context) (*LogsResult, error)
}

type ioService struct {
	store   repository.StateStore
	sampler *LogSampler
	logger  *zap.Logger
}

func NewIOService(store repository.StateStore, sampler *LogSampler, logger *zap.Logger) IOService {
	return &ioService{
		store:   store,
		sampler: sampler,
		logger:  logger,
	}
}

func (s *ioService) Start(ctx context.Context) error {
	if err := s.store.Set(ctx, KeyAwaitingIO, flagTrue); err != nil {
		return fmt.Errorf("set %s: %w", KeyAwaitingIO, err)
	}
	s.logger.Debug("io wait started")
	return nil
}

func (s *ioService) Write(ctx context.Context, message string) error {
	if message == "" {
		return ErrMessageRequired
	}

	// 1. Replace the stored message
	if err := s.store.Set(ctx, KeyUserMessage, message); err != nil {
		return fmt.Errorf("set %s: %w", KeyUserMessage, err)
	}

	// 2. Unblock; a failure here leaves the system awaiting until the next write
	if err := s.store.Set(ctx, KeyAwaitingIO, flagFalse); err != nil {
		s.logger.Warn("message stored but wait flag not cleared", zap.Error(err))
		return fmt.Errorf("set %s: %w", KeyAwaitingIO, err)
	}

	s.logger.Debug("io write completed", zap.Int("message_len", len(message)))
	return nil
}

func (s *ioService) Read(ctx context.Context) (string, error) {
	message, ok, err := s.store.Get(ctx, KeyUserMessage)
	if err != nil {
		return "", fmt.Errorf("get %s: %w", KeyUserMessage, err)
	}
	if !ok || message == "" {
		return "", ErrMessageNotFound
	}
	return message, nil
}

func (s *ioService) Logs(ctx context.Context) (*LogsResult, error) {
	waiting, err := s.awaiting(ctx)
	if err != nil {
		return nil, err
	}
	if waiting {
		return &LogsResult{Waiting: true}, nil
	}
	return &LogsResult{Logs: s.sampler.Sample()}, nil
}

func (s *ioService) awaiting(ctx context.Context) (bool, error) {
	value, ok, err := s.store.Get(ctx, KeyAwaitingIO)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", KeyAwaitingIO, err)
	}
	if !ok {
		return false, nil
	}
	switch value {
	case flagTrue:
		return true, nil
	case flagFalse:
		return false, nil
	default:
		return false, fmt.Errorf("%w: %q", ErrInvalidWaitFlag, value)
	}
}

var _ IOService = (*ioService)(nil)
