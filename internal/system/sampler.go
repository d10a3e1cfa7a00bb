package system

import (
	"context"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"chatdj/internal/queue"
)

// Sampler periodically records device transport state and queue length to the
// log. Diagnostics only; nothing in the pipeline reads it back.
type Sampler struct {
	cron   *cron.Cron
	player queue.Player
	logger *log.Logger
	spec   string
}

// NewSampler creates a status sampler. An empty cron spec disables it.
func NewSampler(spec string, player queue.Player, logger *log.Logger) *Sampler {
	if logger == nil {
		logger = log.Default()
	}
	return &Sampler{
		cron:   cron.New(),
		player: player,
		logger: logger,
		spec:   spec,
	}
}

// Start schedules sampling. No-op when disabled.
func (s *Sampler) Start() error {
	if s.spec == "" {
		return nil
	}
	if _, err := s.cron.AddFunc(s.spec, s.sample); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts the schedule and waits for a running sample to finish.
func (s *Sampler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Sampler) sample() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	state, err := s.player.State(ctx)
	if err != nil {
		s.logger.Printf("status sample: device state unavailable: %v", err)
		return
	}
	snapshot, err := s.player.Queue(ctx)
	if err != nil {
		s.logger.Printf("status sample: transport=%s queue unavailable: %v", state, err)
		return
	}
	s.logger.Printf("status sample: transport=%s queue_len=%d", state, snapshot.Total)
}
