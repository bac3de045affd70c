package integration

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/JMacalaguing/DynaHCare-V2/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type templateBody struct {
	ID           uint   `json:"id"`
	TemplateName string `json:"templatename"`
	Title        string `json:"title"`
}

type formBody struct {
	ID       uint   `json:"id"`
	Title    string `json:"title"`
	Status   string `json:"status"`
	Template *uint  `json:"template"`
}

type responseBody struct {
	ID           uint           `json:"id"`
	FormID       uint           `json:"form"`
	ResponseData map[string]any `json:"response_data"`
	Sender       string         `json:"sender"`
	Status       string         `json:"status"`
}

func createTemplate(t *testing.T, name string) templateBody {
	w := doRequest(t, "POST", "/formbuilder/api/templates", "", map[string]any{
		"templatename": name,
		"title":        name + " Title",
		"schema":       map[string]any{"fields": []string{"Name"}},
	}, http.StatusCreated)

	var tpl templateBody
	decodeBody(t, w, &tpl)
	require.NotZero(t, tpl.ID)
	return tpl
}

func createForm(t *testing.T, title string, templateID *uint) formBody {
	payload := map[string]any{
		"title":  title,
		"schema": map[string]any{"fields": []string{"Name"}},
	}
	if templateID != nil {
		payload["template"] = *templateID
	}
	w := doRequest(t, "POST", "/formbuilder/api/forms", "", payload, http.StatusCreated)

	var f formBody
	decodeBody(t, w, &f)
	require.NotZero(t, f.ID)
	return f
}

func TestTemplateCRUD(t *testing.T) {
	tpl := createTemplate(t, "Checkup")

	w := doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/templates/%d", tpl.ID), "", nil, http.StatusOK)
	var got templateBody
	decodeBody(t, w, &got)
	assert.Equal(t, "Checkup", got.TemplateName)

	newName := "Checkup v2"
	doRequest(t, "PUT", fmt.Sprintf("/formbuilder/api/templates/%d", tpl.ID), "",
		map[string]any{"templatename": newName}, http.StatusOK)

	w = doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/templates/%d", tpl.ID), "", nil, http.StatusOK)
	decodeBody(t, w, &got)
	assert.Equal(t, newName, got.TemplateName)

	doRequest(t, "DELETE", fmt.Sprintf("/formbuilder/api/templates/%d", tpl.ID), "", nil, http.StatusNoContent)
	doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/templates/%d", tpl.ID), "", nil, http.StatusNotFound)
}

func TestDeleteTemplate_DetachesForms(t *testing.T) {
	tpl := createTemplate(t, "Immunization Template")
	f := createForm(t, "Immunization Form", &tpl.ID)
	require.NotNil(t, f.Template)
	assert.Equal(t, tpl.ID, *f.Template)

	// The template's forms are listed before deletion.
	w := doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/templates/%d/forms", tpl.ID), "", nil, http.StatusOK)
	var forms []formBody
	decodeBody(t, w, &forms)
	require.Len(t, forms, 1)

	doRequest(t, "DELETE", fmt.Sprintf("/formbuilder/api/templates/%d", tpl.ID), "", nil, http.StatusNoContent)

	// The form survives without a template reference.
	w = doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/forms/%d", f.ID), "", nil, http.StatusOK)
	var got formBody
	decodeBody(t, w, &got)
	assert.Nil(t, got.Template)
}

func TestFormStatusWorkflow(t *testing.T) {
	f := createForm(t, "Status Form", nil)
	assert.Equal(t, "Not Started", f.Status)

	for _, status := range []string{"In Progress", "Under Review", "Completed"} {
		w := doRequest(t, "PUT", fmt.Sprintf("/formbuilder/api/forms/%d/update_status", f.ID), "",
			map[string]string{"status": status}, http.StatusOK)
		var got formBody
		decodeBody(t, w, &got)
		assert.Equal(t, status, got.Status)
	}

	doRequest(t, "PUT", fmt.Sprintf("/formbuilder/api/forms/%d/update_status", f.ID), "",
		map[string]string{"status": "Archived"}, http.StatusBadRequest)
}

func TestSubmitAndListResponses(t *testing.T) {
	f := createForm(t, "Survey", nil)

	w := doRequest(t, "POST", fmt.Sprintf("/formbuilder/api/forms/%d/submit", f.ID), "",
		map[string]any{
			"response_data": map[string]any{"question1": "yes"},
			"sender":        "mobile",
		}, http.StatusCreated)

	var submit struct {
		Message string       `json:"message"`
		Data    responseBody `json:"data"`
	}
	decodeBody(t, w, &submit)
	assert.Equal(t, "Form submitted successfully", submit.Message)
	assert.Equal(t, "yes", submit.Data.ResponseData["question1"])
	assert.Equal(t, "mobile", submit.Data.Sender)
	assert.Equal(t, "pending", submit.Data.Status)

	// Both listing routes see the submission.
	w = doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/responses?form_id=%d", f.ID), "", nil, http.StatusOK)
	var listed []responseBody
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)

	w = doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/responses/%d/for_form", f.ID), "", nil, http.StatusOK)
	decodeBody(t, w, &listed)
	require.Len(t, listed, 1)

	// Wholesale payload replacement.
	w = doRequest(t, "PUT", fmt.Sprintf("/formbuilder/api/responses/%d/update_response_data", listed[0].ID), "",
		map[string]any{"response_data": map[string]any{"question1": "no"}}, http.StatusOK)
	var updated responseBody
	decodeBody(t, w, &updated)
	assert.Equal(t, "no", updated.ResponseData["question1"])

	doRequest(t, "POST", fmt.Sprintf("/formbuilder/api/responses/%d/clear_responses", f.ID), "", nil, http.StatusOK)
	w = doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/responses/%d/for_form", f.ID), "", nil, http.StatusOK)
	decodeBody(t, w, &listed)
	assert.Empty(t, listed)
}

func TestDeleteForm_CascadesResponses(t *testing.T) {
	f := createForm(t, "Doomed Form", nil)

	doRequest(t, "POST", fmt.Sprintf("/formbuilder/api/forms/%d/submit", f.ID), "",
		map[string]any{"response_data": map[string]any{"a": "1"}}, http.StatusCreated)

	doRequest(t, "DELETE", fmt.Sprintf("/formbuilder/api/forms/%d", f.ID), "", nil, http.StatusNoContent)

	w := doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/responses?form_id=%d", f.ID), "", nil, http.StatusOK)
	var listed []responseBody
	decodeBody(t, w, &listed)
	assert.Empty(t, listed)
}

func TestImmunizationMerge(t *testing.T) {
	f := createForm(t, "Immunization", nil)

	old := config.ImmunizationFormID
	config.ImmunizationFormID = f.ID
	t.Cleanup(func() { config.ImmunizationFormID = old })

	submit := func(vaccine, date string, expectStatus int) responseBody {
		w := doRequest(t, "POST", fmt.Sprintf("/formbuilder/api/forms/%d/submit", f.ID), "",
			map[string]any{
				"response_data": map[string]any{
					"Immunization": map[string]any{
						"Name":    "Juan Dela Cruz",
						"Age":     "2",
						"Sex":     "M",
						"Vaccine": vaccine,
						"Date":    date,
					},
				},
			}, expectStatus)

		var body struct {
			Data responseBody `json:"data"`
		}
		decodeBody(t, w, &body)
		return body.Data
	}

	first := submit("BCG", "2025-01-10", http.StatusCreated)
	rec := first.ResponseData["Immunization"].(map[string]any)
	assert.NotContains(t, rec, "Date")
	assert.Len(t, rec["Vaccine"].([]any), 1)

	// Same patient, new vaccine: merged into the existing record.
	second := submit("OPV", "2025-02-20", http.StatusOK)
	assert.Equal(t, first.ID, second.ID)
	rec = second.ResponseData["Immunization"].(map[string]any)
	entries := rec["Vaccine"].([]any)
	require.Len(t, entries, 2)

	// Same vaccine again: the date is updated in place.
	third := submit("BCG", "2025-03-01", http.StatusOK)
	assert.Equal(t, first.ID, third.ID)
	rec = third.ResponseData["Immunization"].(map[string]any)
	entries = rec["Vaccine"].([]any)
	require.Len(t, entries, 2)

	var bcgDate string
	for _, e := range entries {
		entry := e.(map[string]any)
		if entry["name"] == "BCG" {
			bcgDate = entry["date"].(string)
		}
	}
	assert.Equal(t, "2025-03-01", bcgDate)

	// Only one record exists for the patient.
	w := doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/responses?form_id=%d", f.ID), "", nil, http.StatusOK)
	var listed []responseBody
	decodeBody(t, w, &listed)
	assert.Len(t, listed, 1)

	// Incomplete immunization payloads are rejected.
	doRequest(t, "POST", fmt.Sprintf("/formbuilder/api/forms/%d/submit", f.ID), "",
		map[string]any{
			"response_data": map[string]any{
				"Immunization": map[string]any{"Name": "Maria Santos"},
			},
		}, http.StatusBadRequest)
}

func TestCreateResponse_DirectEndpoint(t *testing.T) {
	f := createForm(t, "Direct Response Form", nil)

	w := doRequest(t, "POST", "/formbuilder/api/responses", "", map[string]any{
		"form":          f.ID,
		"response_data": map[string]any{"field": "value"},
		"sender":        "dashboard",
	}, http.StatusCreated)

	var resp responseBody
	decodeBody(t, w, &resp)
	assert.Equal(t, f.ID, resp.FormID)

	doRequest(t, "DELETE", fmt.Sprintf("/formbuilder/api/responses/%d", resp.ID), "", nil, http.StatusNoContent)
	doRequest(t, "GET", fmt.Sprintf("/formbuilder/api/responses/%d", resp.ID), "", nil, http.StatusNotFound)
}

func TestSubmit_UnknownFormAndEmptyPayload(t *testing.T) {
	doRequest(t, "POST", "/formbuilder/api/forms/999999/submit", "",
		map[string]any{"response_data": map[string]any{"a": "1"}}, http.StatusNotFound)

	f := createForm(t, "Empty Payload Form", nil)
	doRequest(t, "POST", fmt.Sprintf("/formbuilder/api/forms/%d/submit", f.ID), "",
		map[string]any{"response_data": map[string]any{}}, http.StatusBadRequest)
}
