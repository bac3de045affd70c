package formbuilder

import "encoding/json"

type CreateTemplateInput struct {
	TemplateName string          `json:"templatename" binding:"required"`
	Title        string          `json:"title" binding:"required"`
	Schema       json.RawMessage `json:"schema" binding:"required"`
	Description  string          `json:"description"`
}

type UpdateTemplateInput struct {
	TemplateName *string         `json:"templatename"`
	Title        *string         `json:"title"`
	Schema       json.RawMessage `json:"schema"`
	Description  *string         `json:"description"`
}

type CreateFormInput struct {
	Title       string          `json:"title" binding:"required"`
	Schema      json.RawMessage `json:"schema" binding:"required"`
	Description string          `json:"description"`
	Status      string          `json:"status"`
	TemplateID  *uint           `json:"template"`
}

type UpdateFormInput struct {
	Title       *string         `json:"title"`
	Schema      json.RawMessage `json:"schema"`
	Description *string         `json:"description"`
	Status      *string         `json:"status"`
	TemplateID  *uint           `json:"template"`
}

type UpdateFormStatusInput struct {
	Status string `json:"status" binding:"required"`
}

type SubmitResponseInput struct {
	ResponseData map[string]any `json:"response_data"`
	Sender       string         `json:"sender"`
}

type CreateResponseInput struct {
	FormID       uint           `json:"form" binding:"required"`
	ResponseData map[string]any `json:"response_data" binding:"required"`
	Sender       string         `json:"sender"`
}

type UpdateResponseDataInput struct {
	ResponseData map[string]any `json:"response_data"`
}
