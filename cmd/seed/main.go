// Сидирование справочных данных: площадка, корты, временные слоты и
// админский пользователь. Запускается отдельно после миграций; повторный
// запуск безопасен - вставки идемпотентны.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/lib/pq"

	"github.com/m04kA/Eclipse-BookingService/internal/config"
	"github.com/m04kA/Eclipse-BookingService/internal/domain"
	courtRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/court"
	locationRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/location"
	timeSlotRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/timeslot"
	userRepo "github.com/m04kA/Eclipse-BookingService/internal/infra/storage/user"
	"github.com/m04kA/Eclipse-BookingService/pkg/logger"
	"github.com/m04kA/Eclipse-BookingService/pkg/types"
)

const defaultPricePerHour = 600

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	locations := locationRepo.NewRepository(db)
	courts := courtRepo.NewRepository(db)
	timeSlots := timeSlotRepo.NewRepository(db)
	users := userRepo.NewRepository(db)

	// Площадка
	loc, err := locations.Create(ctx, &domain.Location{
		Name:    "Eclipse Pickleball Club",
		Address: "Vesu, Surat, Gujarat",
		Status:  domain.LocationActive,
		Active:  true,
	})
	if err != nil {
		log.Fatal("Failed to seed location: %v", err)
	}
	log.Info("Seeded location id=%d name=%q", loc.ID, loc.Name)

	// Корты 1..7 во внутренней нумерации
	for n := 1; n <= domain.TotalCourts; n++ {
		court, err := courts.Create(ctx, &domain.Court{
			LocationID:   loc.ID,
			Name:         fmt.Sprintf("Court %d", domain.DisplayCourtNumber(n)),
			CourtNumber:  n,
			CourtType:    domain.CourtOutdoor,
			Status:       domain.CourtAvailable,
			PricePerHour: defaultPricePerHour,
			Active:       true,
		})
		if err != nil {
			log.Fatal("Failed to seed court %d: %v", n, err)
		}
		log.Info("Seeded court id=%d number=%d", court.ID, court.CourtNumber)
	}

	// Слоты: m1..m6 -> 06:00..11:00, a1..a6 -> 12:00..17:00, e1..e6 -> 18:00..23:00.
	// У слотов нет натурального ключа для ON CONFLICT, поэтому при повторном
	// запуске справочник просто не трогаем.
	existing, err := timeSlots.ListActive(ctx)
	if err != nil {
		log.Fatal("Failed to list time slots: %v", err)
	}
	if len(existing) > 0 {
		log.Info("Time slots already seeded (%d), skipping", len(existing))
	} else {
		seedTimeSlots(ctx, timeSlots, log)
	}

	// Админ
	admin, err := users.Create(ctx, &domain.User{
		Name:        "Eclipse Admin",
		PhoneNumber: "9999999999",
		Role:        domain.RoleAdmin,
		Active:      true,
	})
	if err != nil {
		log.Fatal("Failed to seed admin user: %v", err)
	}
	log.Info("Seeded admin user id=%d", admin.ID)

	log.Info("Seeding completed")
}

func seedTimeSlots(ctx context.Context, timeSlots *timeSlotRepo.Repository, log *logger.Logger) {
	sections := []struct {
		section  domain.Section
		baseHour int
	}{
		{domain.SectionMorning, 6},
		{domain.SectionAfternoon, 12},
		{domain.SectionEvening, 18},
	}

	seeded := 0
	for _, sec := range sections {
		for i := 0; i < 6; i++ {
			startHour := sec.baseHour + i
			start, err := types.NewTimeStringFromHourMinute(startHour, 0)
			if err != nil {
				log.Fatal("Failed to build slot start for hour %d: %v", startHour, err)
			}
			end, err := start.AddMinutes(60)
			if err != nil {
				log.Fatal("Failed to build slot end for hour %d: %v", startHour, err)
			}

			slot, err := timeSlots.Create(ctx, &domain.TimeSlot{
				StartTime: start,
				EndTime:   end,
				Section:   sec.section,
				Active:    true,
			})
			if err != nil {
				log.Fatal("Failed to seed time slot %s: %v", start, err)
			}
			seeded++
			log.Info("Seeded time slot id=%d start=%s section=%s", slot.ID, slot.StartTime, slot.Section)
		}
	}
	log.Info("Seeded %d time slots", seeded)
}
