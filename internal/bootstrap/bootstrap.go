package bootstrap

import (
	"strings"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appRepos "github.com/yigit/academia/internal/app/repositories"
	appServices "github.com/yigit/academia/internal/app/services"
	"github.com/yigit/academia/internal/config"
	"github.com/yigit/academia/internal/pkg/logger"
	"github.com/yigit/academia/internal/session"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos             *appRepos.Repositories
	AuthService       *appServices.AuthService
	StudentService    *appServices.StudentService
	FacultyService    *appServices.FacultyService
	CourseService     *appServices.CourseService
	EnrollmentService *appServices.EnrollmentService
	Dispatcher        *session.Dispatcher
	Logger            zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied before the config is read
// so env overrides work in development without exporting anything.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, zerolog.Logger, error) {
	_ = godotenv.Load()

	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// BuildDependencies opens the record collections and wires repositories,
// services and the session dispatcher together.
func BuildDependencies(cfg *config.Config, lgr zerolog.Logger) (*Dependencies, error) {
	repos, err := appRepos.NewRepositories(cfg.Storage.DataDir)
	if err != nil {
		lgr.Error().Err(err).Str("dataDir", cfg.Storage.DataDir).Msg("Failed to open record collections")
		return nil, err
	}
	lgr.Info().Str("dataDir", cfg.Storage.DataDir).Msg("Record collections opened")

	admin := appServices.AdminCredentials{
		ID:       cfg.Admin.ID,
		Password: cfg.Admin.Password,
	}

	authService := appServices.NewAuthService(repos.StudentRepository, repos.FacultyRepository, admin, lgr)
	studentService := appServices.NewStudentService(repos.StudentRepository, lgr)
	facultyService := appServices.NewFacultyService(repos.FacultyRepository, lgr)
	courseService := appServices.NewCourseService(repos.CourseRepository, repos.EnrollmentRepository, lgr)
	enrollmentService := appServices.NewEnrollmentService(repos.CourseRepository, repos.EnrollmentRepository, lgr)

	dispatcher := session.NewDispatcher(
		authService,
		studentService,
		facultyService,
		courseService,
		enrollmentService,
		lgr,
	)

	return &Dependencies{
		Repos:             repos,
		AuthService:       authService,
		StudentService:    studentService,
		FacultyService:    facultyService,
		CourseService:     courseService,
		EnrollmentService: enrollmentService,
		Dispatcher:        dispatcher,
		Logger:            lgr,
	}, nil
}
