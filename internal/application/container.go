package application

import (
	"github.com/JMacalaguing/DynaHCare-V2/internal/repository"
	"github.com/JMacalaguing/DynaHCare-V2/pkg/mailer"
)

type Services struct {
	Account  *AccountService
	Template *TemplateService
	Form     *FormService
	Response *ResponseService
	Logbook  *LogbookService
}

func New(repos *repository.Repos, mail mailer.Sender) *Services {
	return &Services{
		Account:  NewAccountService(repos, mail),
		Template: NewTemplateService(repos),
		Form:     NewFormService(repos),
		Response: NewResponseService(repos),
		Logbook:  NewLogbookService(repos),
	}
}
