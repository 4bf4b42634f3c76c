package site

import (
	"sync"
	"time"

	"github.com/mosheDeveloper/league-standings/internal/config"
	"github.com/mosheDeveloper/league-standings/internal/logger"
)

// Scheduler rebuilds the site on a fixed interval. The first build runs
// immediately so serve mode never hosts a stale or missing site.
type Scheduler struct {
	cfg      config.Config
	interval time.Duration

	// OnBuild, when set, is called after every successful build.
	OnBuild func(*Result)

	stop chan struct{}
	once sync.Once
	wg   sync.WaitGroup
}

func NewScheduler(cfg config.Config, interval time.Duration) *Scheduler {
	return &Scheduler{
		cfg:      cfg,
		interval: interval,
		stop:     make(chan struct{}),
	}
}

// Start runs the initial build synchronously, then rebuilds on the
// interval in the background. An interval of 0 means build once and
// never again. A failed rebuild is logged and the previous artifacts
// stay in place.
func (s *Scheduler) Start() (*Result, error) {
	res, err := Build(s.cfg)
	if err != nil {
		return nil, err
	}
	s.notify(res)

	if s.interval > 0 {
		s.wg.Add(1)
		go s.loop()
	}
	return res, nil
}

func (s *Scheduler) loop() {
	defer s.wg.Done()
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			res, err := Build(s.cfg)
			if err != nil {
				logger.L().Error("scheduled rebuild failed", "err", err)
				continue
			}
			logger.L().Info("site rebuilt",
				"build_id", res.BuildID,
				"teams", len(res.Standings),
				"matches", len(res.Matches))
			s.notify(res)
		case <-s.stop:
			return
		}
	}
}

func (s *Scheduler) notify(res *Result) {
	if s.OnBuild != nil {
		s.OnBuild(res)
	}
}

// Stop ends the rebuild loop and waits for it to finish.
func (s *Scheduler) Stop() {
	s.once.Do(func() { close(s.stop) })
	s.wg.Wait()
}
