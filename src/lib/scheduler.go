package lib

import (
	"log"
	"time"

	"github.com/go-co-op/gocron/v2"
)

var scheduler gocron.Scheduler

func NewScheduler(s gocron.Scheduler) {
	scheduler = s
}

func GetScheduler() (gocron.Scheduler, error) {
	if scheduler != nil {
		return scheduler, nil
	}
	sched, err := gocron.NewScheduler()
	if err != nil {
		log.Printf("Error initializing Scheduler: %s\n", err.Error())
		return nil, err
	}
	scheduler = sched
	numJobs := len(sched.Jobs())
	log.Printf("Jobs in queue: %d\n", numJobs)
	return sched, nil
}

// CreateDailyJob schedules handler every day at the given hour and minute.
func CreateDailyJob(handler any, hour uint, minute uint, args ...any) (*string, error) {
	sched, err := GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return nil, err
	}
	j, err := sched.NewJob(
		gocron.DailyJob(1, gocron.NewAtTimes(gocron.NewAtTime(hour, minute, 0))),
		gocron.NewTask(handler, args...),
	)
	if err != nil {
		return nil, err
	}
	id := j.ID().String()
	return &id, nil
}

func CreateCronJob(handler any, duration time.Duration, args ...any) (*string, error) {
	sched, err := GetScheduler()
	if err != nil {
		log.Println("An error has occurred. Check logs for info")
		return nil, err
	}
	j, err := sched.NewJob(
		gocron.DurationJob(duration),
		gocron.NewTask(handler, args...),
	)
	if err != nil {
		return nil, err
	}
	id := j.ID().String()
	return &id, nil
}

func StartScheduler() {
	sched, err := GetScheduler()
	if err != nil {
		return
	}
	sched.Start()
}

func StopScheduler() {
	if scheduler == nil {
		return
	}
	if err := scheduler.Shutdown(); err != nil {
		log.Printf("Error shutting down scheduler: %s\n", err.Error())
	}
}
