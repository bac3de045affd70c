package testutils

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/api/handlers"
	"github.com/JMacalaguing/DynaHCare-V2/internal/api/routes"
	"github.com/JMacalaguing/DynaHCare-V2/internal/application"
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/mailer"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

func SetupRouter(db *gorm.DB, mail mailer.Sender) *gin.Engine {
	gin.SetMode(gin.TestMode)
	repos := repository.New(db)
	services := application.New(repos, mail)
	r := gin.New()
	routes.Register(r, handlers.New(services), repos)
	return r
}
