package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/Jayantx07/Education-Point/internal/models"
	"github.com/Jayantx07/Education-Point/internal/repository"
	"github.com/Jayantx07/Education-Point/migrations"
	"github.com/Jayantx07/Education-Point/pkg/config"
	"github.com/Jayantx07/Education-Point/pkg/database"
	"github.com/Jayantx07/Education-Point/pkg/logger"
)

type seeder struct {
	users        *repository.UserRepository
	courses      *repository.CourseRepository
	testimonials *repository.TestimonialRepository
	contacts     *repository.ContactRepository
}

func newSeeder(db *sqlx.DB) seeder {
	return seeder{
		users:        repository.NewUserRepository(db),
		courses:      repository.NewCourseRepository(db),
		testimonials: repository.NewTestimonialRepository(db),
		contacts:     repository.NewContactRepository(db),
	}
}

func main() {
	destroy := flag.Bool("d", false, "destroy all data without importing samples")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if err := run(context.Background(), cfg, logr, *destroy); err != nil {
		logr.Fatal("seeding failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg *config.Config, logr *zap.Logger, destroy bool) error {
	db, err := database.NewPostgres(ctx, cfg.Database, logr)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer db.Close() //nolint:errcheck

	if err := migrations.Up(db.DB, logr); err != nil {
		return err
	}

	s := newSeeder(db)

	if err := s.clear(ctx); err != nil {
		return fmt.Errorf("destroy data: %w", err)
	}
	if destroy {
		logr.Info("all data destroyed from database")
		return nil
	}
	logr.Info("data cleared from database")

	if err := s.importSamples(ctx, logr); err != nil {
		return fmt.Errorf("import data: %w", err)
	}
	logr.Info("data import completed successfully")
	return nil
}

func (s seeder) clear(ctx context.Context) error {
	if err := s.users.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.courses.DeleteAll(ctx); err != nil {
		return err
	}
	if err := s.testimonials.DeleteAll(ctx); err != nil {
		return err
	}
	return s.contacts.DeleteAll(ctx)
}

func (s seeder) importSamples(ctx context.Context, logr *zap.Logger) error {
	for _, u := range sampleUsers {
		hash, err := bcrypt.GenerateFromPassword([]byte(u.password), bcrypt.DefaultCost)
		if err != nil {
			return fmt.Errorf("hash password for %s: %w", u.email, err)
		}
		user := &models.User{Name: u.name, Email: u.email, PasswordHash: string(hash), IsAdmin: u.admin}
		if err := s.users.Create(ctx, user); err != nil {
			return err
		}
	}
	logr.Info("users imported", zap.Int("count", len(sampleUsers)))

	for i := range sampleCourses {
		course := sampleCourses[i]
		if err := s.courses.Create(ctx, &course); err != nil {
			return err
		}
	}
	logr.Info("courses imported", zap.Int("count", len(sampleCourses)))

	for i := range sampleTestimonials {
		item := sampleTestimonials[i]
		if err := s.testimonials.Create(ctx, &item); err != nil {
			return err
		}
	}
	logr.Info("testimonials imported", zap.Int("count", len(sampleTestimonials)))

	for i := range sampleContacts {
		contact := sampleContacts[i]
		if err := s.contacts.Create(ctx, &contact); err != nil {
			return err
		}
	}
	logr.Info("contacts imported", zap.Int("count", len(sampleContacts)))
	return nil
}
