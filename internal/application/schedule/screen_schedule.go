package schedule

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"weather-app/internal/domain/usecase/screen"
	"weather-app/pkg/log"
	"weather-app/pkg/msg"
)

type ScreenScheduler struct {
	cron   *cron.Cron
	reaper *screen.Reaper
	spec   string
}

func NewScreenScheduler(reaper *screen.Reaper, spec string) *ScreenScheduler {
	return &ScreenScheduler{cron: cron.New(), reaper: reaper, spec: spec}
}

// InitScreenScheduleTasks schedules the expired screen reaper and starts the cron
func (scheduler *ScreenScheduler) InitScreenScheduleTasks() error {
	if _, err := scheduler.cron.AddFunc(scheduler.spec, scheduler.ReapExpiredScreens); err != nil {
		return err
	}

	scheduler.cron.Start()
	log.Info(msg.GetMessage("screen.cron.scheduled", scheduler.spec))
	return nil
}

func (scheduler *ScreenScheduler) ReapExpiredScreens() {
	log.Debug(msg.GetMessage("screen.cron.start"))

	reaped, err := scheduler.reaper.Reap(context.Background(), time.Now())
	if err != nil {
		log.Error(msg.GetMessage("screen.cron.reap-failed", err), zap.Error(err))
		return
	}

	log.Debug(msg.GetMessage("screen.cron.end", reaped.Screens, reaped.Lifetimes))
}

// Stop waits for a running reap to finish
func (scheduler *ScreenScheduler) Stop() {
	<-scheduler.cron.Stop().Done()
}
