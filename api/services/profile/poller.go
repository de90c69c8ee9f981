package profile

import (
	"context"
	"fmt"
	"time"

	"riftbook/riot"

	"github.com/go-co-op/gocron/v2"
	"github.com/rs/zerolog"
)

// LivePoller periodically refreshes the live game snapshot of one player and
// pushes updates to the callback. Stops cleanly on Stop or context cancel.
type LivePoller struct {
	service   *Service
	scheduler gocron.Scheduler
	logger    zerolog.Logger
}

// NewLivePoller starts polling the live game of a player every interval.
// The callback receives nil when the player leaves the game.
func NewLivePoller(
	ctx context.Context,
	service *Service,
	regionCode string,
	puuid string,
	interval time.Duration,
	onUpdate func(*riot.LiveGame),
	logger zerolog.Logger,
) (*LivePoller, error) {
	scheduler, err := gocron.NewScheduler(gocron.WithLocation(time.UTC))
	if err != nil {
		return nil, fmt.Errorf("couldn't create poller scheduler: %w", err)
	}

	poller := &LivePoller{
		service:   service,
		scheduler: scheduler,
		logger:    logger,
	}

	_, err = scheduler.NewJob(
		gocron.DurationJob(interval),
		gocron.NewTask(func() {
			liveGame, err := service.LiveGame(ctx, regionCode, puuid)
			if err != nil {
				logger.Warn().Err(err).Str("puuid", puuid).
					Msg("live game poll failed")
				return
			}
			onUpdate(liveGame)
		}),
		gocron.WithName("live-game-poll"),
		gocron.JobOption(gocron.WithStartImmediately()),
	)
	if err != nil {
		return nil, fmt.Errorf("couldn't create poll job: %w", err)
	}

	scheduler.Start()

	// Tear down with the parent context so abandoned pollers don't leak.
	go func() {
		<-ctx.Done()
		poller.Stop()
	}()

	return poller, nil
}

// StartLivePoller starts a poller on the service's configured interval.
func (s *Service) StartLivePoller(
	ctx context.Context,
	regionCode string,
	puuid string,
	onUpdate func(*riot.LiveGame),
) (*LivePoller, error) {
	return NewLivePoller(ctx, s, regionCode, puuid, s.livePollInterval, onUpdate, s.logger)
}

// Stop shuts down the poller. Safe to call more than once.
func (p *LivePoller) Stop() {
	if err := p.scheduler.Shutdown(); err != nil {
		p.logger.Warn().Err(err).Msg("couldn't shut down live poller")
	}
}
