package main

import (
	"log"

	"github.com/JMacalaguing/DynaHCare-V2/internal/api/handlers"
	"github.com/JMacalaguing/DynaHCare-V2/internal/api/middleware"
	"github.com/JMacalaguing/DynaHCare-V2/internal/api/routes"
	"github.com/JMacalaguing/DynaHCare-V2/internal/application"
	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"github.com/JMacalaguing/DynaHCare-V2/internal/config/db"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/account"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/formbuilder"
	"github.com/JMacalaguing/DynaHCare-V2/internal/domain/logbook"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/mailer"
	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	middleware.Init()

	db.Init()

	if err := db.DB.AutoMigrate(
		&account.User{},
		&account.AuthToken{},
		&account.PasswordResetCode{},
		&formbuilder.Template{},
		&formbuilder.Form{},
		&formbuilder.FormResponse{},
		&logbook.LogEntry{},
	); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	repos := repository.New(db.DB)
	services := application.New(repos, mailer.New())

	r := gin.Default()
	r.Use(middleware.CORSMiddleware())
	routes.Register(r, handlers.New(services), repos)

	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
