package boot

import (
	"log"

	"hbs/src/db"
	"hbs/src/lib"
	"hbs/src/models"
	"hbs/src/utils"

	"gorm.io/gorm"
)

func InitDb() *gorm.DB {
	db := db.GetDb()

	err := db.AutoMigrate(
		&models.Guest{},
		&models.Room{},
		&models.Bed{},
		&models.HostelService{},
		&models.StayPackage{},
		&models.Booking{},
		&models.RoomAssignment{},
		&models.ServiceAssignment{},
		&models.CheckInRecord{},
		&models.LoyaltyTransaction{},
	)
	if err != nil {
		log.Fatalf("error migration: %s", err.Error())
	}

	return db
}

// InitScheduler registers the nightly no-show sweep and starts the scheduler.
// The sweep runs after the front desk closes so same-day late arrivals are
// not swept prematurely.
func InitScheduler() {
	id, err := lib.CreateDailyJob(utils.SweepNoShows, 2, 0)
	if err != nil {
		log.Printf("Error scheduling no-show sweep: %s\n", err.Error())
		return
	}
	log.Printf("Job ID: %s\n", *id)
	lib.StartScheduler()
}

func StopScheduler() {
	lib.StopScheduler()
}
