package handlers

import "github.com/JMacalaguing/DynaHCare-V2/internal/application"

type Handlers struct {
	Account  *AccountHandler
	Template *TemplateHandler
	Form     *FormHandler
	Response *ResponseHandler
	Logbook  *LogbookHandler
}

func New(services *application.Services) *Handlers {
	return &Handlers{
		Account:  NewAccountHandler(services.Account),
		Template: NewTemplateHandler(services.Template),
		Form:     NewFormHandler(services.Form, services.Response),
		Response: NewResponseHandler(services.Response),
		Logbook:  NewLogbookHandler(services.Logbook),
	}
}
