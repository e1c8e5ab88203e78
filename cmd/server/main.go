package main

import (
	"context"
	"log"

	"teamcall_backend/internal/app/router"
	"teamcall_backend/internal/config"
	meetingadapters "teamcall_backend/internal/feature/meeting/adapters"
	meetinghandler "teamcall_backend/internal/feature/meeting/transport/handler"
	meetingusecase "teamcall_backend/internal/feature/meeting/usecase"
	participantadapters "teamcall_backend/internal/feature/participant/adapters"
	participanthandler "teamcall_backend/internal/feature/participant/transport/handler"
	participantusecase "teamcall_backend/internal/feature/participant/usecase"
	summaryadapters "teamcall_backend/internal/feature/summary/adapters"
	"teamcall_backend/internal/feature/summary/adapters/gemini"
	summaryhandler "teamcall_backend/internal/feature/summary/transport/handler"
	summaryusecase "teamcall_backend/internal/feature/summary/usecase"
	useradapters "teamcall_backend/internal/feature/user/adapters"
	userhandler "teamcall_backend/internal/feature/user/transport/handler"
	userusecase "teamcall_backend/internal/feature/user/usecase"
	"teamcall_backend/internal/platform/email"
	"teamcall_backend/internal/platform/googleauth"
	jwtmw "teamcall_backend/internal/platform/jwt"
	platformmongo "teamcall_backend/internal/platform/mongo"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	client, err := platformmongo.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal(err)
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Println("[ERROR] Failed to disconnect mongo client:", err)
		}
	}()
	db := client.Database(cfg.MongoDB)

	// Email
	var sender email.Sender
	if cfg.SendGridAPIKey == "" {
		log.Println("[WARN] SENDGRID_API_KEY is not set. Emails are logged, not sent.")
		sender = email.LogSender{}
	} else {
		sender = email.NewSendGridSender(cfg.SendGridAPIKey, cfg.EmailFrom)
	}
	mailer := email.NewDispatcher(sender)

	// Gemini
	generator, err := gemini.NewGeminiGenerator(context.Background())
	if err != nil {
		log.Fatal(err)
	}

	issuer := jwtmw.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)
	verifier := googleauth.NewVerifier(cfg.GoogleClientID)

	// Repository
	userRepo := useradapters.NewUserMongo(db)
	meetingRepo := meetingadapters.NewMeetingMongo(db)
	participantRepo := participantadapters.NewParticipantMongo(db)
	summaryRepo := summaryadapters.NewSummaryMongo(db)

	// Usecase
	userUC := userusecase.NewUserUsecase(userRepo, issuer, mailer, cfg.ResetBaseURL())
	meetingUC := meetingusecase.NewMeetingUsecase(meetingRepo)
	participantUC := participantusecase.NewParticipantUsecase(participantRepo, meetingUC, mailer)
	summaryUC := summaryusecase.NewSummaryUsecase(summaryRepo, generator)

	// Handler
	h := router.Handlers{
		Users:        userhandler.NewUserHandler(userUC),
		Meetings:     meetinghandler.NewMeetingHandler(meetingUC),
		Participants: participanthandler.NewParticipantHandler(participantUC),
		Summaries:    summaryhandler.NewSummaryHandler(summaryUC),
	}

	r := router.NewRouter(h, issuer, verifier, cfg.Origins())
	if err := r.Run(cfg.Addr); err != nil {
		log.Fatal(err)
	}
}
