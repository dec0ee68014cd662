package v1

import (
	"skilltrack/internal/database"
	"skilltrack/internal/delivery/http/handler"
	"skilltrack/internal/infrastructure/cache"
	"skilltrack/internal/repository"
	"skilltrack/internal/usecase"

	"github.com/gofiber/fiber/v3"
)

func Register(r fiber.Router, db database.DB, c *cache.Redis) {
	if r == nil {
		return
	}

	skillRepo := repository.NewPostgresSkillRepository(db)
	ratingRepo := repository.NewPostgresRatingRepository(db)
	checkerRepo := repository.NewPostgresCheckerRepository(db)
	sessionRepo := repository.NewPostgresSessionRepository(db)

	skillUC := usecase.NewSkillUsecase(skillRepo, ratingRepo, c)
	progressUC := usecase.NewProgressUsecase(skillRepo, ratingRepo)
	ratingUC := usecase.NewRatingUsecase(skillRepo, ratingRepo, c)
	checkerUC := usecase.NewCheckerUsecase(skillRepo, checkerRepo)
	sessionUC := usecase.NewSessionUsecase(sessionRepo)

	skillHandler := handler.NewSkillHandler(skillUC)
	progressHandler := handler.NewProgressHandler(progressUC)
	ratingHandler := handler.NewRatingHandler(ratingUC)
	checkerHandler := handler.NewCheckerHandler(checkerUC)
	sessionHandler := handler.NewSessionHandler(sessionUC)

	skillsGroup := r.Group("/skills")
	skillHandler.RegisterRoutes(skillsGroup)
	progressHandler.RegisterRoutes(skillsGroup)
	ratingHandler.RegisterRoutes(skillsGroup)
	checkerHandler.RegisterSkillRoutes(skillsGroup)

	checkersGroup := r.Group("/checkers")
	checkerHandler.RegisterRoutes(checkersGroup)

	sessionsGroup := r.Group("/sessions")
	sessionHandler.RegisterRoutes(sessionsGroup)
}
